// Package datatype translates canonical type descriptions into dialect types.
//
// Each canonical type (nvarchar, decimal, ...) is described by a TypeDef and
// owns an ordered chain of Rules. A Rule declares which dialect kinds it
// applies to and a specificity; the Resolver picks the most specific rule
// that applies to the target dialect, falling back to the canonical form
// verbatim when none does.
//
// Rules are registered during program initialization, usually from the
// init() functions of pkg/dialects/*/ packages:
//
//	func init() {
//		datatype.MustRegister("nvarchar", datatype.Rule{
//			Name:        "oracle.nvarchar",
//			Dialects:    []core.DialectKind{dialect.Oracle},
//			Specificity: datatype.PriorityDatabase,
//			Transform:   datatype.Rename("NVARCHAR2"),
//		})
//	}
//
// After initialization the registry is frozen and resolution is lock-free.
package datatype

import (
	"context"
	"slices"

	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// Rule specificities. Higher wins.
const (
	// PriorityDefault is used by generic rules that apply to any dialect.
	PriorityDefault = 1
	// PriorityDatabase is used by rules written for specific dialects.
	PriorityDatabase = 5
	// PriorityOverride is used by user-supplied overrides (config, scripts).
	PriorityOverride = 10
)

// TransformFunc maps a canonical spec to a dialect type.
// It must not modify spec and must return a fresh value.
type TransformFunc func(ctx context.Context, spec core.TypeSpec, d dialect.Dialect) core.DialectType

// Rule is a single override for one canonical type.
type Rule struct {
	// Name identifies the rule in logs and listings (e.g. "mssql.nvarchar")
	Name string
	// Dialects the rule applies to; empty means every dialect
	Dialects []core.DialectKind
	// Specificity orders rules within a chain; higher wins
	Specificity int
	// Transform produces the dialect type
	Transform TransformFunc
}

// AppliesTo reports whether the rule applies to kind.
func (r Rule) AppliesTo(kind core.DialectKind) bool {
	return len(r.Dialects) == 0 || slices.Contains(r.Dialects, kind)
}
