package datatype

import (
	"github.com/leapstack-labs/leaptype/pkg/core"
)

// TypeRule pairs a canonical type name with the transform a dialect uses for it.
type TypeRule struct {
	Type      string
	Transform TransformFunc
}

// RegisterDialect registers one PriorityDatabase rule per entry for kind.
// Rule names take the form "<kind>.<type>".
func (r *Registry) RegisterDialect(kind core.DialectKind, rules ...TypeRule) error {
	for _, tr := range rules {
		err := r.Register(tr.Type, Rule{
			Name:        string(kind) + "." + tr.Type,
			Dialects:    []core.DialectKind{kind},
			Specificity: PriorityDatabase,
			Transform:   tr.Transform,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// MustRegisterDialect registers dialect rules on the default registry and
// panics on error. Intended for init() functions.
func MustRegisterDialect(kind core.DialectKind, rules ...TypeRule) {
	if err := defaultRegistry.RegisterDialect(kind, rules...); err != nil {
		panic(err)
	}
}
