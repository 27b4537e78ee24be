package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/datatype"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// OverrideConfig declares a user rule for one canonical type:
//
//	overrides:
//	  - type: nvarchar
//	    dialects: [oracle]
//	    name: VARCHAR2
//	    params: ["4000 CHAR"]
type OverrideConfig struct {
	// Type is the canonical type (or alias) the rule is attached to
	Type string `koanf:"type"`
	// Dialects restricts the rule; empty applies it everywhere
	Dialects []string `koanf:"dialects"`
	// Specificity defaults to datatype.PriorityOverride
	Specificity int `koanf:"specificity"`
	// Name replaces the type name; empty keeps the canonical name
	Name string `koanf:"name"`
	// Params replaces the parameters when set
	Params []string `koanf:"params"`
	// DropParams removes all parameters
	DropParams bool `koanf:"drop_params"`
	// DefaultParams fill in parameters when the spec has none
	DefaultParams []string `koanf:"default_params"`
}

// Rule converts the override into a datatype rule.
// Dialect names are resolved through the dialect registry, so aliases such
// as "sqlserver" are accepted.
func (o OverrideConfig) Rule() (datatype.Rule, error) {
	if strings.TrimSpace(o.Type) == "" {
		return datatype.Rule{}, fmt.Errorf("override requires a type")
	}
	if o.DropParams && len(o.Params) > 0 {
		return datatype.Rule{}, fmt.Errorf("override for %s: params and drop_params are mutually exclusive", o.Type)
	}

	kinds := make([]core.DialectKind, 0, len(o.Dialects))
	for _, name := range o.Dialects {
		kind, ok := dialect.Lookup(name)
		if !ok {
			return datatype.Rule{}, fmt.Errorf("override for %s: unknown dialect %q (available: %v)", o.Type, name, dialect.List())
		}
		kinds = append(kinds, kind)
	}

	specificity := o.Specificity
	if specificity == 0 {
		specificity = datatype.PriorityOverride
	}

	ruleName := "config." + strings.ToLower(o.Type)
	if len(kinds) > 0 {
		ruleName += "[" + strings.Join(o.Dialects, ",") + "]"
	}

	return datatype.Rule{
		Name:        ruleName,
		Dialects:    kinds,
		Specificity: specificity,
		Transform:   o.transform(),
	}, nil
}

func (o OverrideConfig) transform() datatype.TransformFunc {
	params := parseParams(o.Params)
	defaults := parseParams(o.DefaultParams)
	return func(_ context.Context, spec core.TypeSpec, _ dialect.Dialect) core.DialectType {
		name := spec.Name
		if o.Name != "" {
			name = o.Name
		}
		out := spec.Params
		switch {
		case o.DropParams:
			out = nil
		case params != nil:
			out = params
		case len(out) == 0:
			out = defaults
		}
		return core.NewDialectType(name, out, spec.Modifiers)
	}
}

func parseParams(raw []string) []core.Param {
	if raw == nil {
		return nil
	}
	out := make([]core.Param, len(raw))
	for i, s := range raw {
		out[i] = core.ParseParam(s)
	}
	return out
}

// ApplyOverrides registers every override on reg.
func ApplyOverrides(reg *datatype.Registry, overrides []OverrideConfig) error {
	for i, o := range overrides {
		rule, err := o.Rule()
		if err != nil {
			return fmt.Errorf("overrides[%d]: %w", i, err)
		}
		if err := reg.Register(o.Type, rule); err != nil {
			return fmt.Errorf("overrides[%d]: %w", i, err)
		}
	}
	return nil
}
