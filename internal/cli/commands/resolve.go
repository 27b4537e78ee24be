package commands

import (
	"context"
	"strconv"

	"github.com/leapstack-labs/leaptype/internal/cli/output"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
	"github.com/spf13/cobra"
)

// ResolveOptions holds options for the resolve command.
type ResolveOptions struct {
	Dialects []string
	All      bool
	Probe    bool
}

// ResolveResult is one resolved type, as rendered in JSON and YAML output.
type ResolveResult struct {
	Input     string   `json:"input" yaml:"input"`
	Canonical string   `json:"canonical" yaml:"canonical"`
	Dialect   string   `json:"dialect" yaml:"dialect"`
	Version   *int     `json:"version,omitempty" yaml:"version,omitempty"`
	Type      string   `json:"type" yaml:"type"`
	Name      string   `json:"name" yaml:"name"`
	Params    []string `json:"params" yaml:"params"`
	Modifiers string   `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand() *cobra.Command {
	opts := &ResolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve <type>...",
		Short: "Translate canonical types into dialect types",
		Long: `Translate canonical type definitions into the type each dialect accepts.

Each argument is a type definition such as "nvarchar(5000)" or
"national character varying(10) COLLATE Latin1_General_CI_AS". The target
dialect comes from --in (repeatable), --all, or --dialect and the
configured dialect.

Without --db-version the database version is unknown and the newest
version is assumed. --probe asks the configured target for its version.`,
		Example: `  # SQL Server 2000 limits nvarchar to 4000 characters
  leaptype resolve "nvarchar(5000)" -d mssql --db-version 8

  # Compare every dialect
  leaptype resolve uuid boolean --all

  # Ask the configured database for its version
  leaptype resolve "nvarchar(MAX)" --probe -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Dialects, "in", nil, "Dialects to resolve for (repeatable, overrides --dialect)")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Resolve for every registered dialect")
	cmd.Flags().BoolVar(&opts.Probe, "probe", false, "Query the configured target for its version")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string, opts *ResolveOptions) error {
	cc, err := GetCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	names := opts.Dialects
	if opts.All {
		names = nil
		for _, k := range dialect.List() {
			names = append(names, string(k))
		}
	}
	if len(names) == 0 {
		names = []string{cc.Cfg.Dialect}
	}

	var results []ResolveResult
	for _, name := range names {
		d, cleanup, err := cc.Dialect(ctx, name, 0, opts.Probe)
		if err != nil {
			return err
		}
		for _, arg := range args {
			res, err := resolveOne(ctx, cc, arg, d)
			if err != nil {
				cleanup()
				return err
			}
			results = append(results, res)
		}
		cleanup()
	}

	r := cc.Renderer
	if ok, err := r.Structured(results); ok {
		return err
	}
	renderResolveResults(r, results, len(names) > 1)
	return nil
}

func resolveOne(ctx context.Context, cc *CommandContext, text string, d dialect.Dialect) (ResolveResult, error) {
	spec, got, err := cc.resolveText(ctx, text, d)
	if err != nil {
		return ResolveResult{}, err
	}
	res := ResolveResult{
		Input:     text,
		Canonical: spec.String(),
		Dialect:   string(d.Kind),
		Type:      got.String(),
		Name:      got.Name,
		Params:    got.ParamStrings(),
		Modifiers: got.Modifiers,
	}
	if v, err := d.Version(ctx); err == nil {
		res.Version = &v
	}
	return res, nil
}

func renderResolveResults(r *output.Renderer, results []ResolveResult, multiDialect bool) {
	if len(results) == 1 && !multiDialect {
		res := results[0]
		if r.EffectiveMode() == output.ModeMarkdown {
			r.Println(res.Type)
			return
		}
		r.Println(r.Styles().Type.Render(res.Type))
		return
	}

	rows := make([][]string, 0, len(results))
	for _, res := range results {
		version := "newest"
		if res.Version != nil {
			version = strconv.Itoa(*res.Version)
		}
		rows = append(rows, []string{res.Input, res.Dialect, version, res.Type})
	}
	r.Table([]string{"Input", "Dialect", "Version", "Type"}, rows)
}
