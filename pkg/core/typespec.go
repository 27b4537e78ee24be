package core

import (
	"strconv"
	"strings"
)

// TypeSpec is a canonical, dialect-neutral type description.
//
// TypeSpec is a value: every With* method returns a modified copy and the
// parameter slice is never shared with the receiver.
type TypeSpec struct {
	// Name is the canonical type name (e.g. "nvarchar")
	Name string
	// Params holds length/precision parameters in declaration order
	Params []Param
	// Modifiers is a free-form trailing clause (e.g. "COLLATE Latin1_General_CI_AS")
	Modifiers string
	// Raw is the original user-supplied definition, used only to sniff legacy synonyms
	Raw string
}

// NewTypeSpec builds a TypeSpec, copying params.
func NewTypeSpec(name string, params []Param, modifiers, raw string) TypeSpec {
	return TypeSpec{
		Name:      strings.TrimSpace(name),
		Params:    CloneParams(params),
		Modifiers: strings.TrimSpace(modifiers),
		Raw:       raw,
	}
}

// WithName returns a copy with a different name.
func (s TypeSpec) WithName(name string) TypeSpec {
	s.Params = CloneParams(s.Params)
	s.Name = name
	return s
}

// WithParams returns a copy with different parameters.
func (s TypeSpec) WithParams(params []Param) TypeSpec {
	s.Params = CloneParams(params)
	return s
}

// WithModifiers returns a copy with different modifiers.
func (s TypeSpec) WithModifiers(modifiers string) TypeSpec {
	s.Params = CloneParams(s.Params)
	s.Modifiers = modifiers
	return s
}

// Key returns a stable string identifying the spec, suitable for map keys.
// Every field is length-prefixed, so distinct specs never share a key.
func (s TypeSpec) Key() string {
	var b strings.Builder
	writeField(&b, strings.ToLower(s.Name))
	b.WriteString(strconv.Itoa(len(s.Params)))
	b.WriteByte('#')
	for _, p := range s.Params {
		b.WriteString(strconv.Itoa(int(p.kind)))
		writeField(&b, p.String())
	}
	writeField(&b, s.Modifiers)
	writeField(&b, s.Raw)
	return b.String()
}

func writeField(b *strings.Builder, v string) {
	b.WriteString(strconv.Itoa(len(v)))
	b.WriteByte(':')
	b.WriteString(v)
}

// String renders the spec in its canonical form, e.g. "nvarchar(255)".
func (s TypeSpec) String() string {
	return render(s.Name, s.Params, s.Modifiers)
}

func render(name string, params []Param, modifiers string) string {
	var b strings.Builder
	b.WriteString(name)
	if len(params) > 0 {
		b.WriteByte('(')
		for i, p := range params {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
		b.WriteByte(')')
	}
	if modifiers != "" {
		b.WriteByte(' ')
		b.WriteString(modifiers)
	}
	return b.String()
}
