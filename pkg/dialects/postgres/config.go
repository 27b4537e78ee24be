// Package postgres registers the PostgreSQL dialect and its type rules.
// This package is pure Go with no database driver dependencies.
package postgres

import (
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// Info is the PostgreSQL dialect metadata.
var Info = dialect.Info{
	Kind:        dialect.Postgres,
	Name:        "PostgreSQL",
	Aliases:     []string{"postgresql", "pg", "pgx"},
	Identifiers: dialect.ANSIIdentifiers,
}
