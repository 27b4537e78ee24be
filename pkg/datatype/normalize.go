package datatype

import (
	"strings"

	"github.com/leapstack-labs/leaptype/pkg/core"
	"golang.org/x/text/cases"
)

// Normalize drops the words of a legacy synonym (e.g. "national character
// varying") that the parser left at the front of spec's modifiers, since
// they only restate the type. Any real trailing clause such as COLLATE is
// kept. Modifiers are only touched when they are exactly the raw text's
// remainder after the type name, so modifiers supplied separately survive.
// Normalize is idempotent.
func Normalize(spec core.TypeSpec, synonyms []string) core.TypeSpec {
	if spec.Raw == "" || spec.Modifiers == "" || len(synonyms) == 0 {
		return spec
	}
	fold := cases.Fold()
	rawWords := strings.Fields(fold.String(withoutParams(spec.Raw)))
	modWords := strings.Fields(fold.String(spec.Modifiers))
	for _, phrase := range synonyms {
		words := strings.Fields(fold.String(phrase))
		if len(words) < 2 || !hasWordPrefix(rawWords, words) {
			continue
		}
		// k is how many phrase words the parser took as the name.
		for k := 1; k < len(words); k++ {
			if equalWords(rawWords[k:], modWords) {
				rest := strings.Fields(spec.Modifiers)[len(words)-k:]
				return spec.WithModifiers(strings.Join(rest, " "))
			}
		}
	}
	return spec
}

// withoutParams removes the first parenthesised group from a type definition.
func withoutParams(s string) string {
	head, _, tail, ok := splitParens(strings.TrimSpace(s))
	if !ok {
		return s
	}
	return head + " " + tail
}

func hasWordPrefix(words, prefix []string) bool {
	return len(words) >= len(prefix) && equalWords(words[:len(prefix)], prefix)
}

func equalWords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
