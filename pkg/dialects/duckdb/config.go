// Package duckdb registers the DuckDB dialect and its type rules.
// This package is pure Go with no database driver dependencies.
package duckdb

import (
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// Info is the DuckDB dialect metadata.
var Info = dialect.Info{
	Kind:        dialect.DuckDB,
	Name:        "DuckDB",
	Aliases:     []string{"duck"},
	Identifiers: dialect.ANSIIdentifiers,
}
