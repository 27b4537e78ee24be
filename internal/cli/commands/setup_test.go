package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaptype/internal/cli/config"
	"github.com/leapstack-labs/leaptype/internal/cli/output"
	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/datatype"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

func TestNewCommandContext_Defaults(t *testing.T) {
	cc, _ := newTestContext(t, testConfig(), output.ModeText)

	assert.True(t, cc.Registry.Frozen())
	assert.False(t, datatype.Default().Frozen(), "default registry must stay open")
	assert.IsType(t, &datatype.CachingResolver{}, cc.Resolver)
	assert.NotNil(t, cc.Logger)
}

func TestNewCommandContext_NoCache(t *testing.T) {
	cfg := testConfig()
	cfg.CacheSize = 0
	cc, _ := newTestContext(t, cfg, output.ModeText)
	assert.IsType(t, &datatype.Resolver{}, cc.Resolver)
}

func TestNewCommandContext_Repeatable(t *testing.T) {
	for range 2 {
		cc, _ := newTestContext(t, testConfig(), output.ModeText)
		assert.True(t, cc.Registry.Known("nvarchar"))
	}
}

func TestNewCommandContext_Overrides(t *testing.T) {
	cfg := testConfig()
	cfg.Overrides = []config.OverrideConfig{
		{Type: "uuid", Dialects: []string{"mysql"}, Name: "CHAR", Params: []string{"36"}},
	}
	cc, _ := newTestContext(t, cfg, output.ModeText)

	d, cleanup, err := cc.Dialect(context.Background(), "mysql", 0, false)
	require.NoError(t, err)
	defer cleanup()

	_, got, err := cc.resolveText(context.Background(), "uuid", d)
	require.NoError(t, err)
	assert.Equal(t, "CHAR(36)", got.String())

	def, chain, ok := datatype.Default().Lookup("uuid")
	require.True(t, ok)
	assert.Equal(t, "uuid", def.Name)
	for _, r := range chain.Rules() {
		assert.NotEqual(t, "config.uuid[mysql]", r.Name, "override leaked into the default registry")
	}
}

func TestNewCommandContext_Scripts(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "oracle.star")
	require.NoError(t, os.WriteFile(script, []byte(`
def oracle_nvarchar(spec, dialect):
    if dialect.at_most(11):
        return {"name": "NVARCHAR2", "params": [2000]}
    return "NVARCHAR2"

rule(type = "nvarchar", dialects = ["oracle"], transform = oracle_nvarchar)
`), 0o600))

	cfg := testConfig()
	cfg.Scripts = []string{script}
	cc, _ := newTestContext(t, cfg, output.ModeText)

	tests := []struct {
		version int
		want    string
	}{
		{version: 11, want: "NVARCHAR2(2000)"},
		{version: 19, want: "NVARCHAR2(5000)"},
	}
	for _, tt := range tests {
		d, cleanup, err := cc.Dialect(context.Background(), "oracle", tt.version, false)
		require.NoError(t, err)
		_, got, err := cc.resolveText(context.Background(), "nvarchar(5000)", d)
		cleanup()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String(), "version %d", tt.version)
	}
}

func TestNewCommandContext_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr string
	}{
		{
			name: "bad override dialect",
			mutate: func(cfg *config.Config) {
				cfg.Overrides = []config.OverrideConfig{{Type: "uuid", Dialects: []string{"nope"}}}
			},
			wantErr: "failed to apply overrides",
		},
		{
			name: "missing script",
			mutate: func(cfg *config.Config) {
				cfg.Scripts = []string{filepath.Join(t.TempDir(), "missing.star")}
			},
			wantErr: "failed to load rule scripts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)
			_, err := NewCommandContext(&cobra.Command{}, cfg, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetCommandContext(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		cc, _ := newTestContext(t, testConfig(), output.ModeText)
		cmd := &cobra.Command{}
		cmd.SetContext(WithCommandContext(context.Background(), cc))

		got, err := GetCommandContext(cmd)
		require.NoError(t, err)
		assert.Same(t, cc, got)
	})

	t.Run("fallback", func(t *testing.T) {
		got, err := GetCommandContext(&cobra.Command{})
		require.NoError(t, err)
		assert.Equal(t, config.DefaultDialect, got.Cfg.Dialect)
		assert.True(t, got.Registry.Frozen())
	})
}

func TestCommandContext_Dialect(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		cfgDialect  string
		cfgVersion  int
		dialectName string
		version     int
		wantKind    core.DialectKind
		wantVersion int
		wantErr     error
	}{
		{name: "configured dialect", cfgDialect: "postgres", wantKind: dialect.Postgres},
		{name: "alias", dialectName: "sqlserver", wantKind: dialect.MSSQL},
		{name: "explicit version", dialectName: "mssql", version: 8, wantKind: dialect.MSSQL, wantVersion: 8},
		{name: "configured version", dialectName: "mssql", cfgVersion: 10, wantKind: dialect.MSSQL, wantVersion: 10},
		{name: "explicit beats configured", dialectName: "mssql", cfgVersion: 10, version: 9, wantKind: dialect.MSSQL, wantVersion: 9},
		{name: "no dialect", wantErr: dialect.ErrDialectRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Dialect = tt.cfgDialect
			cfg.DBVersion = tt.cfgVersion
			cc, _ := newTestContext(t, cfg, output.ModeText)

			d, cleanup, err := cc.Dialect(ctx, tt.dialectName, tt.version, false)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer cleanup()

			assert.Equal(t, tt.wantKind, d.Kind)
			v, err := d.Version(ctx)
			if tt.wantVersion == 0 {
				var pe *core.ProbeError
				assert.ErrorAs(t, err, &pe)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, v)
		})
	}
}

func TestCommandContext_DialectUnknown(t *testing.T) {
	cc, _ := newTestContext(t, testConfig(), output.ModeText)
	_, _, err := cc.Dialect(context.Background(), "informix", 0, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown dialect "informix"`)
}

func TestCommandContext_DialectProbe(t *testing.T) {
	ctx := context.Background()

	t.Run("no target", func(t *testing.T) {
		cc, _ := newTestContext(t, testConfig(), output.ModeText)
		_, _, err := cc.Dialect(ctx, "sqlite", 0, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no target configured")
	})

	t.Run("sqlite in memory", func(t *testing.T) {
		cfg := testConfig()
		cfg.Target = &config.TargetConfig{Type: "sqlite", Path: ":memory:"}
		cc, _ := newTestContext(t, cfg, output.ModeText)

		d, cleanup, err := cc.Dialect(ctx, "sqlite", 0, true)
		require.NoError(t, err)
		defer cleanup()

		v, err := d.Version(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, v)
	})

	t.Run("pinned version skips probe", func(t *testing.T) {
		cc, _ := newTestContext(t, testConfig(), output.ModeText)
		d, cleanup, err := cc.Dialect(ctx, "mssql", 8, true)
		require.NoError(t, err)
		defer cleanup()
		v, err := d.Version(ctx)
		require.NoError(t, err)
		assert.Equal(t, 8, v)
	})
}
