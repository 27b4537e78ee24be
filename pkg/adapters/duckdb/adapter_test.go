package duckdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaptype/pkg/adapter"
	"github.com/leapstack-labs/leaptype/pkg/core"
)

func TestAdapter_Connect(t *testing.T) {
	tests := []struct {
		name      string
		setupPath func(t *testing.T) string
		verify    func(t *testing.T, path string)
	}{
		{
			name: "in-memory",
			setupPath: func(_ *testing.T) string {
				return ":memory:"
			},
		},
		{
			name: "file-based",
			setupPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "test.duckdb")
			},
			verify: func(t *testing.T, path string) {
				_, err := os.Stat(path)
				assert.False(t, os.IsNotExist(err), "database file was not created")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			adp := New(nil)

			dbPath := tt.setupPath(t)
			require.NoError(t, adp.Connect(ctx, core.AdapterConfig{Path: dbPath}))
			defer func() { _ = adp.Close() }()

			if tt.verify != nil {
				tt.verify(t, dbPath)
			}
		})
	}
}

func TestAdapter_MajorVersion(t *testing.T) {
	ctx := context.Background()
	adp := New(nil)
	require.NoError(t, adp.Connect(ctx, core.AdapterConfig{}))
	defer func() { _ = adp.Close() }()

	version, err := adp.ServerVersion(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, version)

	major, err := adp.MajorVersion(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, major, 0)

	d := adapter.Dialect(adp)
	v, err := d.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, major, v)
}

func TestAdapter_NotConnected(t *testing.T) {
	_, err := New(nil).MajorVersion(context.Background())
	assert.ErrorIs(t, err, adapter.ErrNotConnected)
}
