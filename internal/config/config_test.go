package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaptype/pkg/adapter"
	_ "github.com/leapstack-labs/leaptype/pkg/adapters/sqlite"
	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/datatype"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
	_ "github.com/leapstack-labs/leaptype/pkg/dialects/all"
)

func TestTargetConfig_ApplyDefaults(t *testing.T) {
	tests := []struct {
		name     string
		target   TargetConfig
		wantPort int
	}{
		{name: "postgres", target: TargetConfig{Type: "Postgres"}, wantPort: 5432},
		{name: "mssql", target: TargetConfig{Type: "mssql"}, wantPort: 1433},
		{name: "explicit port", target: TargetConfig{Type: "mysql", Port: 3307}, wantPort: 3307},
		{name: "dsn keeps zero port", target: TargetConfig{Type: "mysql", DSN: "x"}, wantPort: 0},
		{name: "file database", target: TargetConfig{Type: "sqlite"}, wantPort: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tt.target
			target.ApplyDefaults()
			assert.Equal(t, tt.wantPort, target.Port)
		})
	}
}

func TestTargetConfig_Validate(t *testing.T) {
	require.Error(t, (&TargetConfig{}).Validate())

	err := (&TargetConfig{Type: "oracle"}).Validate()
	var uae *adapter.UnknownAdapterError
	require.ErrorAs(t, err, &uae)
	assert.Contains(t, uae.Available, "sqlite")

	assert.NoError(t, (&TargetConfig{Type: "sqlite"}).Validate())
}

func TestTargetConfig_ExpandEnv(t *testing.T) {
	t.Setenv("LEAPTYPE_TEST_PASSWORD", "s3cret")
	t.Setenv("LEAPTYPE_TEST_HOST", "db.internal")

	target := &TargetConfig{
		Host:     "${LEAPTYPE_TEST_HOST}",
		Password: "${LEAPTYPE_TEST_PASSWORD}",
		User:     "${LEAPTYPE_TEST_UNSET}",
		Database: "app",
	}
	target.ExpandEnv()

	assert.Equal(t, "db.internal", target.Host)
	assert.Equal(t, "s3cret", target.Password)
	assert.Equal(t, "${LEAPTYPE_TEST_UNSET}", target.User)
	assert.Equal(t, "app", target.Database)
}

func TestTargetConfig_AdapterConfig(t *testing.T) {
	target := &TargetConfig{
		Type:     "postgres",
		Host:     "h",
		Port:     5432,
		Database: "d",
		User:     "u",
		Password: "p",
		Options:  map[string]string{"sslmode": "require"},
	}
	cfg := target.AdapterConfig()
	assert.Equal(t, core.AdapterConfig{
		Type:     "postgres",
		Host:     "h",
		Port:     5432,
		Database: "d",
		Username: "u",
		Password: "p",
		Options:  map[string]string{"sslmode": "require"},
	}, cfg)

	cfg.Options["sslmode"] = "disable"
	assert.Equal(t, "require", target.Options["sslmode"])
}

func TestOverrideConfig_Rule(t *testing.T) {
	tests := []struct {
		name    string
		o       OverrideConfig
		wantErr string
		check   func(t *testing.T, r datatype.Rule)
	}{
		{
			name:    "missing type",
			o:       OverrideConfig{Name: "X"},
			wantErr: "requires a type",
		},
		{
			name:    "unknown dialect",
			o:       OverrideConfig{Type: "nvarchar", Dialects: []string{"db2"}},
			wantErr: `unknown dialect "db2"`,
		},
		{
			name:    "conflicting params",
			o:       OverrideConfig{Type: "nvarchar", Params: []string{"1"}, DropParams: true},
			wantErr: "mutually exclusive",
		},
		{
			name: "dialect alias and default specificity",
			o:    OverrideConfig{Type: "nvarchar", Dialects: []string{"sqlserver"}, Name: "NTEXT", DropParams: true},
			check: func(t *testing.T, r datatype.Rule) {
				assert.Equal(t, []core.DialectKind{dialect.MSSQL}, r.Dialects)
				assert.Equal(t, datatype.PriorityOverride, r.Specificity)
				assert.Equal(t, "config.nvarchar[sqlserver]", r.Name)
			},
		},
		{
			name: "explicit specificity",
			o:    OverrideConfig{Type: "uuid", Specificity: 3},
			check: func(t *testing.T, r datatype.Rule) {
				assert.Empty(t, r.Dialects)
				assert.Equal(t, 3, r.Specificity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tt.o.Rule()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, r)
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	reg := datatype.NewRegistry()
	require.NoError(t, datatype.DefineBuiltins(reg))

	require.NoError(t, ApplyOverrides(reg, []OverrideConfig{
		{Type: "nvarchar", Dialects: []string{"oracle"}, Name: "VARCHAR2", Params: []string{"4000 CHAR"}},
		{Type: "uuid", Name: "CHAR", DefaultParams: []string{"36"}},
		{Type: "geometry", Name: "GEOMETRY"},
	}))
	reg.Freeze()
	res := datatype.NewResolver(reg, nil)
	ctx := context.Background()

	tests := []struct {
		spec string
		kind core.DialectKind
		want string
	}{
		{spec: "nvarchar(10)", kind: dialect.Oracle, want: "VARCHAR2(4000 CHAR)"},
		{spec: "nvarchar(10)", kind: dialect.ANSI, want: "nvarchar(10)"},
		{spec: "uuid", kind: dialect.Postgres, want: "CHAR(36)"},
		{spec: "geometry(4326)", kind: dialect.Postgres, want: "GEOMETRY(4326)"},
	}

	for _, tt := range tests {
		t.Run(tt.spec+"/"+string(tt.kind), func(t *testing.T) {
			out, err := res.Resolve(ctx, reg.Parse(tt.spec), dialect.New(tt.kind, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestApplyOverrides_Error(t *testing.T) {
	reg := datatype.NewRegistry()
	err := ApplyOverrides(reg, []OverrideConfig{{Type: "x"}, {Type: ""}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overrides[1]")

	reg.Freeze()
	err = ApplyOverrides(reg, []OverrideConfig{{Type: "x"}})
	assert.ErrorIs(t, err, datatype.ErrRegistryFrozen)
}
