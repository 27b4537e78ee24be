package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
)

// ErrNotConnected is returned when an adapter is used before Connect.
var ErrNotConnected = errors.New("database connection not established")

// BaseSQLAdapter provides common database/sql functionality for adapters.
// Embed this struct in concrete adapter implementations to get standard
// Close, ServerVersion and MajorVersion implementations.
type BaseSQLAdapter struct {
	DB     *sql.DB
	Logger *slog.Logger
	// VersionQuery returns a single row with a single text column
	VersionQuery string
}

// Open opens and pings a database/sql connection and stores it on b.
func (b *BaseSQLAdapter) Open(ctx context.Context, driver, dsn string) error {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open %s connection: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping %s: %w", driver, err)
	}
	b.DB = db
	return nil
}

// Close closes the database connection.
func (b *BaseSQLAdapter) Close() error {
	if b.DB != nil {
		if b.Logger != nil {
			b.Logger.Debug("closing database connection")
		}
		return b.DB.Close()
	}
	return nil
}

// IsConnected returns true if the database connection is established.
func (b *BaseSQLAdapter) IsConnected() bool {
	return b.DB != nil
}

// ServerVersion runs the version query and returns its result.
func (b *BaseSQLAdapter) ServerVersion(ctx context.Context) (string, error) {
	if b.DB == nil {
		return "", ErrNotConnected
	}
	if b.VersionQuery == "" {
		return "", fmt.Errorf("no version query configured")
	}
	var version string
	if err := b.DB.QueryRowContext(ctx, b.VersionQuery).Scan(&version); err != nil {
		return "", fmt.Errorf("failed to query server version: %w", err)
	}
	return version, nil
}

// MajorVersion returns the leading version number reported by the server.
func (b *BaseSQLAdapter) MajorVersion(ctx context.Context) (int, error) {
	version, err := b.ServerVersion(ctx)
	if err != nil {
		return 0, err
	}
	major, err := ParseMajorVersion(version)
	if err != nil {
		return 0, err
	}
	if b.Logger != nil {
		b.Logger.Debug("probed server version",
			slog.String("version", version),
			slog.Int("major", major))
	}
	return major, nil
}

// ParseMajorVersion extracts the first run of digits from a version string:
// "PostgreSQL 16.2 on x86_64" and "16.0.1000.6" both give 16, "v1.1.3" gives 1.
func ParseMajorVersion(version string) (int, error) {
	start := -1
	for i := 0; i < len(version); i++ {
		isDigit := version[i] >= '0' && version[i] <= '9'
		if isDigit && start < 0 {
			start = i
		}
		if !isDigit && start >= 0 {
			return atoi(version, version[start:i])
		}
	}
	if start < 0 {
		return 0, fmt.Errorf("no version number in %q", version)
	}
	return atoi(version, version[start:])
}

func atoi(version, digits string) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid version number in %q: %w", version, err)
	}
	return n, nil
}
