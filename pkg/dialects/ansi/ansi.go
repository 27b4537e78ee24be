// Package ansi registers the SQL standard dialect.
//
// ANSI has no type rules of its own: every canonical type resolves to its
// generic form.
package ansi

import (
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// Info is the ANSI dialect metadata.
var Info = dialect.Info{
	Kind:        dialect.ANSI,
	Name:        "ANSI SQL",
	Aliases:     []string{"sql", "standard"},
	Identifiers: dialect.ANSIIdentifiers,
}

func init() {
	dialect.Register(Info)
}
