// Package all registers every built-in dialect.
//
//	import _ "github.com/leapstack-labs/leaptype/pkg/dialects/all"
package all

import (
	_ "github.com/leapstack-labs/leaptype/pkg/dialects/ansi"
	_ "github.com/leapstack-labs/leaptype/pkg/dialects/derby"
	_ "github.com/leapstack-labs/leaptype/pkg/dialects/duckdb"
	_ "github.com/leapstack-labs/leaptype/pkg/dialects/h2"
	_ "github.com/leapstack-labs/leaptype/pkg/dialects/hsqldb"
	_ "github.com/leapstack-labs/leaptype/pkg/dialects/mssql"
	_ "github.com/leapstack-labs/leaptype/pkg/dialects/mysql"
	_ "github.com/leapstack-labs/leaptype/pkg/dialects/oracle"
	_ "github.com/leapstack-labs/leaptype/pkg/dialects/postgres"
	_ "github.com/leapstack-labs/leaptype/pkg/dialects/sqlite"
)
