// Package oracle registers the Oracle dialect and its type rules.
// This package is pure Go with no database driver dependencies.
package oracle

import (
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// Info is the Oracle dialect metadata.
var Info = dialect.Info{
	Kind:        dialect.Oracle,
	Name:        "Oracle",
	Aliases:     []string{"oracledb", "ora"},
	Identifiers: dialect.ANSIIdentifiers,
}
