// Package all registers every built-in version probe adapter.
//
//	import _ "github.com/leapstack-labs/leaptype/pkg/adapters/all"
package all

import (
	_ "github.com/leapstack-labs/leaptype/pkg/adapters/duckdb"
	_ "github.com/leapstack-labs/leaptype/pkg/adapters/mssql"
	_ "github.com/leapstack-labs/leaptype/pkg/adapters/mysql"
	_ "github.com/leapstack-labs/leaptype/pkg/adapters/postgres"
	_ "github.com/leapstack-labs/leaptype/pkg/adapters/sqlite"
)
