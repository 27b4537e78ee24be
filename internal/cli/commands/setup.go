package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/leaptype/internal/cli/config"
	"github.com/leapstack-labs/leaptype/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/leaptype/internal/config"
	"github.com/leapstack-labs/leaptype/internal/starlark"
	"github.com/leapstack-labs/leaptype/pkg/adapter"
	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/datatype"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	// Registry is the default registry plus configured overrides and scripts, frozen
	Registry *datatype.Registry
	Resolver datatype.TypeResolver
}

type commandContextKey struct{}

// WithCommandContext stores cc in ctx.
func WithCommandContext(ctx context.Context, cc *CommandContext) context.Context {
	return context.WithValue(ctx, commandContextKey{}, cc)
}

// NewCommandContext builds the registry and resolver for cfg.
func NewCommandContext(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (*CommandContext, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	reg, resolver, err := buildResolver(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output)),
		Registry: reg,
		Resolver: resolver,
	}, nil
}

// buildResolver layers cfg's overrides and scripts on a clone of the default
// registry, so the process-wide registry is never modified, and wraps the
// frozen result in a resolver.
func buildResolver(cfg *config.Config, logger *slog.Logger) (*datatype.Registry, datatype.TypeResolver, error) {
	reg := datatype.Default().Clone()
	if err := sharedcfg.ApplyOverrides(reg, cfg.Overrides); err != nil {
		return nil, nil, fmt.Errorf("failed to apply overrides: %w", err)
	}
	if len(cfg.Scripts) > 0 {
		if err := starlark.NewLoader(logger).RegisterFiles(reg, cfg.Scripts...); err != nil {
			return nil, nil, fmt.Errorf("failed to load rule scripts: %w", err)
		}
	}
	reg.Freeze()

	var resolver datatype.TypeResolver = datatype.NewResolver(reg, logger)
	if cfg.CacheSize > 0 {
		cached, err := datatype.NewCachingResolver(resolver, cfg.CacheSize)
		if err != nil {
			return nil, nil, err
		}
		resolver = cached
	}
	return reg, resolver, nil
}

// reload rebuilds the registry and resolver from the configuration, picking
// up edited rule scripts. On error the previous rules stay in place.
func (c *CommandContext) reload() error {
	reg, resolver, err := buildResolver(c.Cfg, c.Logger)
	if err != nil {
		return err
	}
	c.Registry, c.Resolver = reg, resolver
	return nil
}

// GetCommandContext returns the context stored by the root command, or one
// built from default settings when the command runs standalone.
func GetCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	if cmd.Context() != nil {
		if cc, ok := cmd.Context().Value(commandContextKey{}).(*CommandContext); ok {
			return cc, nil
		}
	}
	cfg := &config.Config{
		Dialect:   config.DefaultDialect,
		Output:    config.DefaultOutput,
		CacheSize: config.DefaultCacheSize,
	}
	return NewCommandContext(cmd, cfg, nil)
}

// Dialect builds the target dialect handle.
//
// name falls back to the configured dialect. A positive version pins the
// major version; otherwise the configured db_version is used, and with none
// the version is unknown (assumed newest) unless probe is set, in which case
// the configured target is queried lazily.
func (c *CommandContext) Dialect(ctx context.Context, name string, version int, probe bool) (dialect.Dialect, func(), error) {
	if name == "" {
		name = c.Cfg.Dialect
	}
	if name == "" {
		return dialect.Dialect{}, nil, dialect.ErrDialectRequired
	}
	kind, ok := dialect.Lookup(name)
	if !ok {
		return dialect.Dialect{}, nil, fmt.Errorf("unknown dialect %q (available: %v)", name, dialect.List())
	}

	if version <= 0 {
		version = c.Cfg.DBVersion
	}
	if version > 0 {
		return dialect.Versioned(kind, version), func() {}, nil
	}
	if !probe {
		return dialect.New(kind, nil), func() {}, nil
	}

	a, err := c.connect(ctx)
	if err != nil {
		return dialect.Dialect{}, nil, err
	}
	if a.Kind() != kind {
		c.Logger.Warn("target database does not match dialect",
			slog.String("dialect", string(kind)),
			slog.String("target", string(a.Kind())))
	}
	cleanup := func() { _ = a.Close() }
	return dialect.New(kind, dialect.Cached(a)), cleanup, nil
}

// connect opens the configured target.
func (c *CommandContext) connect(ctx context.Context) (adapter.Adapter, error) {
	if c.Cfg.Target == nil || c.Cfg.Target.Type == "" {
		return nil, fmt.Errorf("no target configured (set target.type in %s or LEAPTYPE_TARGET__TYPE)", config.ConfigFileName)
	}
	return adapter.Connect(ctx, c.Cfg.Target.AdapterConfig(), c.Logger)
}

// resolveText parses text and resolves it for d.
func (c *CommandContext) resolveText(ctx context.Context, text string, d dialect.Dialect) (core.TypeSpec, core.DialectType, error) {
	spec := c.Registry.Parse(text)
	got, err := c.Resolver.Resolve(ctx, spec, d)
	return spec, got, err
}
