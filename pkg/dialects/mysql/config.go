// Package mysql registers the MySQL dialect and its type rules.
// This package is pure Go with no database driver dependencies.
package mysql

import (
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// Info is the MySQL dialect metadata.
var Info = dialect.Info{
	Kind:        dialect.MySQL,
	Name:        "MySQL",
	Aliases:     []string{"mariadb"},
	Identifiers: dialect.IdentifierConfig{Quote: "`", QuoteEnd: "`", Escape: "``"},
}
