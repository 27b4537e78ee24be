package datatype

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// TypeResolver translates canonical specs into dialect types.
type TypeResolver interface {
	Resolve(ctx context.Context, spec core.TypeSpec, d dialect.Dialect) (core.DialectType, error)
}

// Resolver walks rule chains from a Registry.
// It keeps no per-call state and is safe for concurrent use once the
// registry is frozen.
type Resolver struct {
	registry *Registry
	logger   *slog.Logger
}

// NewResolver creates a resolver over reg.
// If logger is nil, a discard logger is used.
func NewResolver(reg *Registry, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{registry: reg, logger: logger}
}

// Resolve translates spec for d.
//
// The only error returned is *core.UnknownTypeError. Probe failures and
// malformed parameters are absorbed by the rules.
func (r *Resolver) Resolve(ctx context.Context, spec core.TypeSpec, d dialect.Dialect) (core.DialectType, error) {
	def, chain, ok := r.registry.Lookup(spec.Name)
	if !ok {
		return core.DialectType{}, &core.UnknownTypeError{
			Type:    spec.Name,
			Dialect: d.Kind,
			Known:   r.registry.Names(),
		}
	}

	spec = Normalize(spec.WithName(def.Name), def.Synonyms)

	if keep := def.ClampParams(len(spec.Params)); keep < len(spec.Params) {
		r.logger.Debug("dropping extra type parameters",
			slog.String("type", def.Name),
			slog.Int("given", len(spec.Params)),
			slog.Int("kept", keep))
		spec = spec.WithParams(spec.Params[:keep])
	}
	if len(spec.Params) < def.MinParams {
		r.logger.Debug("fewer type parameters than required",
			slog.String("type", def.Name),
			slog.Int("given", len(spec.Params)),
			slog.Int("min", def.MinParams))
	}

	rule, ok := chain.Match(d.Kind)
	if !ok {
		r.logger.Debug("no rule matched, passing type through",
			slog.String("type", def.Name),
			slog.String("dialect", string(d.Kind)))
		return core.NewDialectType(spec.Name, spec.Params, spec.Modifiers), nil
	}

	r.logger.Debug("resolving type",
		slog.String("type", def.Name),
		slog.String("dialect", string(d.Kind)),
		slog.String("rule", rule.Name),
		slog.Int("specificity", rule.Specificity))

	out := rule.Transform(ctx, spec, r.observe(d))
	out.Params = core.CloneParams(out.Params)
	return out, nil
}

// observe wraps the dialect's probe so failures are logged before the
// fail-open default applies.
func (r *Resolver) observe(d dialect.Dialect) dialect.Dialect {
	inner := d.Probe
	if inner == nil {
		inner = dialect.ProbeFunc(func(context.Context) (int, error) { return 0, core.ErrNoProbe })
	}
	d.Probe = dialect.ProbeFunc(func(ctx context.Context) (int, error) {
		v, err := inner.MajorVersion(ctx)
		if err != nil {
			r.logger.Debug("version probe failed, assuming newest version",
				slog.String("dialect", string(d.Kind)),
				slog.String("error", err.Error()))
		}
		return v, err
	})
	return d
}

var defaultResolver = NewResolver(defaultRegistry, nil)

// Resolve translates spec for d using the default registry.
func Resolve(ctx context.Context, spec core.TypeSpec, d dialect.Dialect) (core.DialectType, error) {
	return defaultResolver.Resolve(ctx, spec, d)
}
