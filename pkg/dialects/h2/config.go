// Package h2 registers the H2 dialect and its type rules.
// This package is pure Go with no database driver dependencies.
package h2

import (
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// Info is the H2 dialect metadata.
var Info = dialect.Info{
	Kind:        dialect.H2,
	Name:        "H2",
	Aliases:     []string{"h2database"},
	Identifiers: dialect.ANSIIdentifiers,
}
