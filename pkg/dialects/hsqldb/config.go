// Package hsqldb registers the HyperSQL dialect and its type rules.
// This package is pure Go with no database driver dependencies.
package hsqldb

import (
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// Info is the HyperSQL dialect metadata.
var Info = dialect.Info{
	Kind:        dialect.HSQL,
	Name:        "HyperSQL",
	Aliases:     []string{"hsql", "hypersql"},
	Identifiers: dialect.ANSIIdentifiers,
}
