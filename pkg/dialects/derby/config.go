// Package derby registers the Apache Derby dialect and its type rules.
// This package is pure Go with no database driver dependencies.
package derby

import (
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// Info is the Apache Derby dialect metadata.
var Info = dialect.Info{
	Kind:        dialect.Derby,
	Name:        "Apache Derby",
	Aliases:     []string{"javadb"},
	Identifiers: dialect.ANSIIdentifiers,
}
