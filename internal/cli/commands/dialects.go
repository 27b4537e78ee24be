package commands

import (
	"fmt"

	"github.com/leapstack-labs/leaptype/pkg/dialect"
	"github.com/spf13/cobra"
)

// DialectInfo describes a registered dialect in listings.
type DialectInfo struct {
	Kind    string   `json:"kind" yaml:"kind"`
	Name    string   `json:"name" yaml:"name"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Quote   string   `json:"quote" yaml:"quote"`
	Default bool     `json:"default,omitempty" yaml:"default,omitempty"`
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported dialects",
		Long: `List every registered dialect with the aliases accepted by --dialect
and the identifier quoting used when type names need escaping.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := GetCommandContext(cmd)
			if err != nil {
				return err
			}
			return runDialects(cc)
		},
	}
}

func runDialects(cc *CommandContext) error {
	current, _ := dialect.Lookup(cc.Cfg.Dialect)

	var infos []DialectInfo
	for _, kind := range dialect.List() {
		info, ok := dialect.Get(kind)
		if !ok {
			continue
		}
		infos = append(infos, DialectInfo{
			Kind:    string(kind),
			Name:    info.Name,
			Aliases: info.Aliases,
			Quote:   info.Identifiers.QuoteIdentifier("name"),
			Default: kind == current,
		})
	}

	r := cc.Renderer
	if ok, err := r.Structured(infos); ok {
		return err
	}

	r.Header(1, fmt.Sprintf("Dialects (%d total)", len(infos)))
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		kind := info.Kind
		if info.Default {
			kind += " *"
		}
		rows = append(rows, []string{kind, info.Name, joinOrDash(info.Aliases), info.Quote})
	}
	r.Table([]string{"Kind", "Name", "Aliases", "Quoting"}, rows)
	return nil
}
