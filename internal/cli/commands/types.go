package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leaptype/internal/cli/output"
	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/datatype"
	"github.com/spf13/cobra"
)

// TypeInfo describes a canonical type in listings.
type TypeInfo struct {
	Name      string     `json:"name" yaml:"name"`
	Aliases   []string   `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Synonyms  []string   `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
	Params    string     `json:"params" yaml:"params"`
	Parent    string     `json:"parent,omitempty" yaml:"parent,omitempty"`
	RuleCount int        `json:"rule_count" yaml:"rule_count"`
	Rules     []RuleInfo `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// RuleInfo describes one rule of a type's chain.
type RuleInfo struct {
	Name        string   `json:"name" yaml:"name"`
	Dialects    []string `json:"dialects" yaml:"dialects"`
	Specificity int      `json:"specificity" yaml:"specificity"`
}

// NewTypesCommand creates the types command.
func NewTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types [type]",
		Short: "List canonical types or show one type's rule chain",
		Long: `List the canonical type catalogue with aliases, parameter arity and parent.

With a type name (or alias), show that type's rule chain in evaluation
order, including rules inherited from parent types and rules added by
configured overrides and scripts.`,
		Example: `  leaptype types
  leaptype types nvarchar2 -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := GetCommandContext(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return runTypeDetail(cc, args[0])
			}
			return runTypeList(cc)
		},
	}
}

func typeInfo(reg *datatype.Registry, def datatype.TypeDef, withRules bool) TypeInfo {
	info := TypeInfo{
		Name:     def.Name,
		Aliases:  def.Aliases,
		Synonyms: def.Synonyms,
		Params:   describeParams(def.MinParams, def.MaxParams),
		Parent:   def.Parent,
	}
	if _, chain, ok := reg.Lookup(def.Name); ok {
		info.RuleCount = chain.Len()
		if withRules {
			for _, rule := range chain.Rules() {
				info.Rules = append(info.Rules, RuleInfo{
					Name:        rule.Name,
					Dialects:    kindStrings(rule.Dialects),
					Specificity: rule.Specificity,
				})
			}
		}
	}
	return info
}

func runTypeList(cc *CommandContext) error {
	defs := cc.Registry.Types()
	infos := make([]TypeInfo, 0, len(defs))
	for _, def := range defs {
		infos = append(infos, typeInfo(cc.Registry, def, false))
	}

	r := cc.Renderer
	if ok, err := r.Structured(infos); ok {
		return err
	}

	r.Header(1, fmt.Sprintf("Types (%d total)", len(infos)))
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{
			info.Name,
			joinOrDash(info.Aliases),
			info.Params,
			orDash(info.Parent),
			strconv.Itoa(info.RuleCount),
		})
	}
	r.Table([]string{"Type", "Aliases", "Params", "Parent", "Rules"}, rows)
	return nil
}

func runTypeDetail(cc *CommandContext, name string) error {
	def, _, ok := cc.Registry.Lookup(name)
	if !ok {
		return &core.UnknownTypeError{Type: name, Dialect: core.DialectKind(cc.Cfg.Dialect), Known: cc.Registry.Names()}
	}
	info := typeInfo(cc.Registry, def, true)

	r := cc.Renderer
	if ok, err := r.Structured(info); ok {
		return err
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, info.Name))
		r.Println("")
		r.Println(output.FormatKeyValue("Aliases", joinOrDash(info.Aliases)))
		r.Println(output.FormatKeyValue("Synonyms", joinOrDash(info.Synonyms)))
		r.Println(output.FormatKeyValue("Params", info.Params))
		r.Println(output.FormatKeyValue("Parent", orDash(info.Parent)))
		r.Println("")
	} else {
		styles := r.Styles()
		r.Println(styles.Type.Render(info.Name))
		r.Printf("   Aliases:  %s\n", joinOrDash(info.Aliases))
		r.Printf("   Synonyms: %s\n", joinOrDash(info.Synonyms))
		r.Printf("   Params:   %s\n", info.Params)
		r.Printf("   Parent:   %s\n", orDash(info.Parent))
		r.Println("")
	}

	rows := make([][]string, 0, len(info.Rules))
	for i, rule := range info.Rules {
		dialects := "any"
		if len(rule.Dialects) > 0 {
			dialects = strings.Join(rule.Dialects, ", ")
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), rule.Name, dialects, strconv.Itoa(rule.Specificity)})
	}
	r.Table([]string{"#", "Rule", "Dialects", "Specificity"}, rows)
	return nil
}

func kindStrings(kinds []core.DialectKind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}

// describeParams renders an arity for listings, e.g. "0-1" or "2+".
func describeParams(minParams, maxParams int) string {
	switch {
	case maxParams == datatype.Unlimited:
		return fmt.Sprintf("%d+", minParams)
	case minParams == maxParams:
		return strconv.Itoa(maxParams)
	default:
		return fmt.Sprintf("%d-%d", minParams, maxParams)
	}
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
