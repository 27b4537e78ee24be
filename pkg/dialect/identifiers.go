package dialect

import "strings"

// IdentifierConfig defines how identifiers are quoted.
type IdentifierConfig struct {
	Quote    string // Quote character: ", `, [
	QuoteEnd string // End quote character (usually same as Quote, ] for [)
	Escape   string // Escape sequence: "", ``, ]]
}

// ANSIIdentifiers is the SQL standard double-quote style.
var ANSIIdentifiers = IdentifierConfig{Quote: `"`, QuoteEnd: `"`, Escape: `""`}

// QuoteIdentifier quotes an identifier using the configured quote characters.
func (c IdentifierConfig) QuoteIdentifier(name string) string {
	if c.Quote == "" {
		return name
	}
	// Escape any existing quote end characters in the name (e.g., ] -> ]])
	escaped := strings.ReplaceAll(name, c.QuoteEnd, c.Escape)
	return c.Quote + escaped + c.QuoteEnd
}

// EscapeTypeName quotes each dot-separated part of a type name that is not a
// plain identifier. Parts that are already quoted are left alone.
func (c IdentifierConfig) EscapeTypeName(name string) string {
	if !strings.Contains(name, ".") {
		return c.escapePart(name)
	}
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = c.escapePart(p)
	}
	return strings.Join(parts, ".")
}

func (c IdentifierConfig) escapePart(part string) string {
	if part == "" || isPlainIdentifier(part) {
		return part
	}
	if c.Quote != "" && strings.HasPrefix(part, c.Quote) && strings.HasSuffix(part, c.QuoteEnd) && len(part) > 1 {
		return part
	}
	return c.QuoteIdentifier(part)
}

func isPlainIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
