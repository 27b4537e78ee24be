package datatype

import (
	"sort"

	"github.com/leapstack-labs/leaptype/pkg/core"
)

// Chain is the ordered rule list for one canonical type: the type's own
// rules, then its parent's, then the grandparent's. Within each level rules
// are stably sorted by descending specificity, so earlier registrations win
// ties. Any own rule beats every inherited rule regardless of specificity.
type Chain struct {
	Type  string
	rules []Rule
}

// newChain builds a chain from rules grouped by inheritance depth, own rules
// first.
func newChain(typeName string, levels ...[]Rule) *Chain {
	var out []Rule
	for _, level := range levels {
		sorted := make([]Rule, len(level))
		copy(sorted, level)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Specificity > sorted[j].Specificity
		})
		out = append(out, sorted...)
	}
	return &Chain{Type: typeName, rules: out}
}

// Match returns the first rule that applies to kind.
func (c *Chain) Match(kind core.DialectKind) (Rule, bool) {
	for _, r := range c.rules {
		if r.AppliesTo(kind) {
			return r, true
		}
	}
	return Rule{}, false
}

// Rules returns the chain in evaluation order.
func (c *Chain) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Len returns the number of rules in the chain.
func (c *Chain) Len() int {
	return len(c.rules)
}
