package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaptype/internal/cli/output"
)

func newTestSession(t *testing.T, dialectName string, version int) (*replSession, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg := testConfig()
	cfg.Dialect = dialectName
	cfg.DBVersion = version
	cc, _ := newTestContext(t, cfg, output.ModeText)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return newREPLSession(cc, out, errOut), out, errOut
}

func TestREPL_Prompt(t *testing.T) {
	s, _, _ := newTestSession(t, "sqlserver", 0)
	assert.Equal(t, "mssql> ", s.prompt())

	s.version = 8
	assert.Equal(t, "mssql@8> ", s.prompt())
}

func TestREPL_HandleLine(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		wantOut string
		wantErr string
		quit    bool
	}{
		{
			name:    "resolve",
			lines:   []string{"nvarchar(5000)"},
			wantOut: "nvarchar(5000) -> nvarchar(MAX)\n",
		},
		{
			name:    "pin version",
			lines:   []string{".version 8", "nvarchar(5000)"},
			wantOut: "nvarchar(5000) -> nvarchar(4000)\n",
		},
		{
			name:    "unpin version",
			lines:   []string{".version 8", ".version newest", ".version"},
			wantOut: "version: newest\n",
		},
		{
			name:    "switch dialect",
			lines:   []string{".dialect pg", ".dialect", "uuid"},
			wantOut: "dialect: postgres\nuuid -> UUID\n",
		},
		{
			name:  "blank line",
			lines: []string{"   "},
		},
		{
			name:    "unknown type",
			lines:   []string{"geometry"},
			wantErr: `Error: unknown data type "geometry"`,
		},
		{
			name:    "unknown dialect",
			lines:   []string{".dialect informix"},
			wantErr: "Unknown dialect: informix",
		},
		{
			name:    "bad version",
			lines:   []string{".version -1"},
			wantErr: "Usage: .version <major>|newest",
		},
		{
			name:    "unknown command",
			lines:   []string{".frobnicate"},
			wantErr: "Unknown command: .frobnicate",
		},
		{
			name:  "quit",
			lines: []string{".quit"},
			quit:  true,
		},
		{
			name:  "exit",
			lines: []string{".EXIT"},
			quit:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out, errOut := newTestSession(t, "mssql", 0)

			var quit bool
			for _, line := range tt.lines {
				quit = s.handleLine(context.Background(), line)
			}

			assert.Equal(t, tt.quit, quit)
			assert.Equal(t, tt.wantOut, out.String())
			if tt.wantErr == "" {
				assert.Empty(t, errOut.String())
			} else {
				assert.Contains(t, errOut.String(), tt.wantErr)
			}
		})
	}
}

func TestREPL_Listings(t *testing.T) {
	s, out, _ := newTestSession(t, "ansi", 0)

	s.handleLine(context.Background(), ".types")
	assert.Contains(t, out.String(), "nvarchar")

	out.Reset()
	s.handleLine(context.Background(), ".dialects")
	assert.Contains(t, out.String(), "mssql")
	assert.Contains(t, out.String(), "postgres")

	out.Reset()
	s.handleLine(context.Background(), ".help")
	assert.Contains(t, out.String(), ".dialect [name]")
}

func TestREPL_Completer(t *testing.T) {
	s, _, _ := newTestSession(t, "ansi", 0)
	c := newTypeCompleter(s.cc)

	var names []string
	for _, child := range c.GetChildren() {
		names = append(names, string(child.GetName()))
	}
	assert.Contains(t, names, ".dialect ")
	assert.Contains(t, names, "nvarchar ")
}

// newScriptSession starts a mysql session whose uuid rule comes from a
// script; the returned func rewrites the script to emit another name.
func newScriptSession(t *testing.T) (*replSession, *bytes.Buffer, func(name string)) {
	t.Helper()
	script := filepath.Join(t.TempDir(), "rules.star")
	write := func(name string) {
		src := fmt.Sprintf("rule(type = \"uuid\", dialects = [\"mysql\"], transform = lambda s, d: %q)\n", name)
		require.NoError(t, os.WriteFile(script, []byte(src), 0o600))
	}
	write("BINARY")

	cfg := testConfig()
	cfg.Dialect = "mysql"
	cfg.Scripts = []string{script}
	cc, _ := newTestContext(t, cfg, output.ModeText)
	out := &bytes.Buffer{}
	return newREPLSession(cc, out, &bytes.Buffer{}), out, write
}

func TestREPL_ReloadCommand(t *testing.T) {
	s, out, write := newScriptSession(t)
	ctx := context.Background()

	s.handleLine(ctx, "uuid")
	assert.Equal(t, "uuid -> BINARY\n", out.String())

	write("VARBINARY")
	out.Reset()
	s.handleLine(ctx, "uuid")
	assert.Equal(t, "uuid -> BINARY\n", out.String(), "rules stay fixed until reloaded")

	out.Reset()
	s.handleLine(ctx, ".reload")
	s.handleLine(ctx, "uuid")
	assert.Equal(t, "rules reloaded\nuuid -> VARBINARY\n", out.String())
}

func TestREPL_ReloadsChangedScripts(t *testing.T) {
	s, out, write := newScriptSession(t)
	ctx := context.Background()

	sw, err := newScriptWatcher(s.cc.Cfg.Scripts, s.cc.Logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sw.Close() })
	s.scripts = sw

	write("VARBINARY")
	require.Eventually(t, sw.stale.Load, 5*time.Second, 10*time.Millisecond)

	s.handleLine(ctx, "uuid")
	assert.Equal(t, "rules reloaded\nuuid -> VARBINARY\n", out.String())
	assert.False(t, sw.Stale(), "change is consumed by the reload")
}

func TestREPL_ReloadKeepsRulesOnError(t *testing.T) {
	s, out, _ := newScriptSession(t)
	ctx := context.Background()
	require.NoError(t, os.WriteFile(s.cc.Cfg.Scripts[0], []byte("rule(\n"), 0o600))

	errOut := &bytes.Buffer{}
	s.errOut = errOut
	s.handleLine(ctx, ".reload")
	assert.Contains(t, errOut.String(), "keeping previous rules")

	s.handleLine(ctx, "uuid")
	assert.Equal(t, "uuid -> BINARY\n", out.String())
}
