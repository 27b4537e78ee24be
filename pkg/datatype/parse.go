package datatype

import (
	"strings"

	"github.com/leapstack-labs/leaptype/pkg/core"
)

// Parse splits a type definition such as
// "nvarchar(255) COLLATE Latin1_General_CI_AS" into a TypeSpec.
//
// The name is the longest run of leading words known to the registry, so
// "double precision" or "character varying(20)" keep their multi-word
// names. Words after the name and text after the closing parenthesis become
// modifiers. Unbalanced parentheses leave the whole text as the name.
// Raw always holds text exactly as given.
func (r *Registry) Parse(text string) core.TypeSpec {
	s := strings.TrimSpace(text)
	if s == "" {
		return core.TypeSpec{Raw: text}
	}

	head, inner, tail, ok := splitParens(s)
	if !ok {
		return core.TypeSpec{Name: s, Raw: text}
	}

	words := strings.Fields(head)
	if len(words) == 0 {
		return core.TypeSpec{Name: s, Raw: text}
	}
	n := 1
	for k := len(words); k > 0; k-- {
		if r.Known(strings.Join(words[:k], " ")) {
			n = k
			break
		}
	}

	var params []core.Param
	if strings.TrimSpace(inner) != "" {
		for _, tok := range strings.Split(inner, ",") {
			params = append(params, core.ParseParam(tok))
		}
	}

	var mods []string
	if n < len(words) {
		mods = append(mods, strings.Join(words[n:], " "))
	}
	if tail != "" {
		mods = append(mods, tail)
	}
	return core.TypeSpec{
		Name:      strings.Join(words[:n], " "),
		Params:    params,
		Modifiers: strings.Join(mods, " "),
		Raw:       text,
	}
}

// Parse parses a type definition against the default registry.
func Parse(text string) core.TypeSpec {
	return defaultRegistry.Parse(text)
}

// splitParens returns the text before the first parenthesised group, the
// group's contents and the trimmed text after it. ok is false when the
// parentheses do not balance.
func splitParens(s string) (head, inner, tail string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		if strings.IndexByte(s, ')') >= 0 {
			return "", "", "", false
		}
		return s, "", "", true
	}
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[:open], s[open+1 : i], strings.TrimSpace(s[i+1:]), true
			}
		}
	}
	return "", "", "", false
}
