package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
	"github.com/spf13/cobra"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Resolve types interactively",
		Long: `Start an interactive session that resolves each entered type definition
for the current dialect and version.

Use .dialect and .version to switch targets; .help lists all commands.
Configured rule scripts are reloaded when they change on disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := GetCommandContext(cmd)
			if err != nil {
				return err
			}
			return runREPL(cmd, cc)
		},
	}
}

// replSession holds the state of an interactive session.
type replSession struct {
	cc      *CommandContext
	out     io.Writer
	errOut  io.Writer
	dialect string
	version int
	// scripts is nil when no rule scripts are configured
	scripts *scriptWatcher
}

func newREPLSession(cc *CommandContext, out, errOut io.Writer) *replSession {
	name := cc.Cfg.Dialect
	if kind, ok := dialect.Lookup(name); ok {
		name = string(kind)
	}
	return &replSession{
		cc:      cc,
		out:     out,
		errOut:  errOut,
		dialect: name,
		version: cc.Cfg.DBVersion,
	}
}

func (s *replSession) prompt() string {
	if s.version > 0 {
		return fmt.Sprintf("%s@%d> ", s.dialect, s.version)
	}
	return s.dialect + "> "
}

func runREPL(cmd *cobra.Command, cc *CommandContext) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s := newREPLSession(cc, cmd.OutOrStdout(), cmd.ErrOrStderr())

	if len(cc.Cfg.Scripts) > 0 {
		sw, err := newScriptWatcher(cc.Cfg.Scripts, cc.Logger)
		if err != nil {
			cc.Logger.Warn("rule scripts will not be reloaded", slog.String("error", err.Error()))
		} else {
			defer func() { _ = sw.Close() }()
			s.scripts = sw
		}
	}

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".leaptype_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt(),
		HistoryFile:     historyFile,
		AutoComplete:    newTypeCompleter(cc),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(s.out, "leaptype REPL")
	_, _ = fmt.Fprintln(s.out, "Type a definition such as nvarchar(5000), .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(s.out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if quit := s.handleLine(ctx, line); quit {
			break
		}
		rl.SetPrompt(s.prompt())
	}
	return nil
}

// handleLine evaluates one input line and reports whether the session ends.
func (s *replSession) handleLine(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if s.scripts != nil && s.scripts.Stale() {
		s.reload()
	}
	if strings.HasPrefix(line, ".") {
		return s.handleDotCommand(line)
	}

	d, cleanup, err := s.cc.Dialect(ctx, s.dialect, s.version, false)
	if err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
		return false
	}
	defer cleanup()

	spec, got, err := s.cc.resolveText(ctx, line, d)
	if err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
		return false
	}
	_, _ = fmt.Fprintf(s.out, "%s -> %s\n", spec.String(), got.String())
	return false
}

// reload rebuilds the session's rules from the configuration.
func (s *replSession) reload() {
	if err := s.cc.reload(); err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v (keeping previous rules)\n", err)
		return
	}
	_, _ = fmt.Fprintln(s.out, "rules reloaded")
}

func (s *replSession) handleDotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".dialect":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(s.out, "dialect: %s\n", s.dialect)
			return false
		}
		kind, ok := dialect.Lookup(parts[1])
		if !ok {
			_, _ = fmt.Fprintf(s.errOut, "Unknown dialect: %s (available: %v)\n", parts[1], dialect.List())
			return false
		}
		s.dialect = string(kind)

	case ".version":
		if len(parts) < 2 {
			if s.version > 0 {
				_, _ = fmt.Fprintf(s.out, "version: %d\n", s.version)
			} else {
				_, _ = fmt.Fprintln(s.out, "version: newest")
			}
			return false
		}
		if strings.EqualFold(parts[1], "newest") {
			s.version = 0
			return false
		}
		v, err := strconv.Atoi(parts[1])
		if err != nil || v <= 0 {
			_, _ = fmt.Fprintln(s.errOut, "Usage: .version <major>|newest")
			return false
		}
		s.version = v

	case ".reload":
		s.reload()

	case ".types":
		_, _ = fmt.Fprintln(s.out, strings.Join(s.cc.Registry.Names(), " "))

	case ".dialects":
		names := make([]string, 0)
		for _, k := range dialect.List() {
			names = append(names, string(k))
		}
		_, _ = fmt.Fprintln(s.out, strings.Join(names, " "))

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help              Show this help message
  .dialect [name]    Show or switch the target dialect
  .version [n]       Show or pin the major version ("newest" to unpin)
  .reload            Reload overrides and rule scripts
  .types             List canonical types
  .dialects          List dialects
  .quit / .exit      Exit the REPL

Anything else is resolved as a type definition, e.g.
  nvarchar(5000)
  national character varying(10) COLLATE Latin1_General_CI_AS
`
	_, _ = fmt.Fprintln(w, help)
}

// newTypeCompleter completes dot-commands, dialect names and type names.
func newTypeCompleter(cc *CommandContext) *readline.PrefixCompleter {
	var dialectItems []readline.PrefixCompleterInterface
	for _, k := range dialect.List() {
		dialectItems = append(dialectItems, readline.PcItem(string(k)))
	}

	items := []readline.PrefixCompleterInterface{
		readline.PcItem(".help"),
		readline.PcItem(".dialect", dialectItems...),
		readline.PcItem(".version", readline.PcItem("newest")),
		readline.PcItem(".reload"),
		readline.PcItem(".types"),
		readline.PcItem(".dialects"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	}
	for _, name := range cc.Registry.Names() {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}
