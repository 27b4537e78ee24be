package mssql

import (
	"log/slog"

	"github.com/leapstack-labs/leaptype/pkg/adapter"
)

func init() {
	factory := func(logger *slog.Logger) adapter.Adapter { return New(logger) }
	adapter.Register("mssql", factory)
	adapter.Register("sqlserver", factory)
}
