// Package sqlite registers the SQLite dialect and its type rules.
// This package is pure Go with no database driver dependencies.
package sqlite

import (
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// Info is the SQLite dialect metadata.
var Info = dialect.Info{
	Kind:        dialect.SQLite,
	Name:        "SQLite",
	Aliases:     []string{"sqlite3"},
	Identifiers: dialect.ANSIIdentifiers,
}
