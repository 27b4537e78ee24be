package mysql

import (
	"log/slog"

	"github.com/leapstack-labs/leaptype/pkg/adapter"
)

func init() {
	factory := func(logger *slog.Logger) adapter.Adapter { return New(logger) }
	adapter.Register("mysql", factory)
	adapter.Register("mariadb", factory)
}
