package core

// DialectType is a resolved, dialect-specific type.
// It is built once per resolution and never modified afterwards.
type DialectType struct {
	Name      string
	Params    []Param
	Modifiers string
}

// NewDialectType builds a DialectType, copying params.
func NewDialectType(name string, params []Param, modifiers string) DialectType {
	return DialectType{Name: name, Params: CloneParams(params), Modifiers: modifiers}
}

// String renders the type the way a statement builder would, e.g. "nvarchar(MAX)".
// The engine never emits statements itself; this is for diagnostics and the CLI.
func (t DialectType) String() string {
	return render(t.Name, t.Params, t.Modifiers)
}

// ParamStrings returns the parameters as strings.
func (t DialectType) ParamStrings() []string {
	out := make([]string, len(t.Params))
	for i, p := range t.Params {
		out[i] = p.String()
	}
	return out
}

// Equal reports whether two resolved types are identical.
func (t DialectType) Equal(o DialectType) bool {
	if t.Name != o.Name || t.Modifiers != o.Modifiers || len(t.Params) != len(o.Params) {
		return false
	}
	for i := range t.Params {
		if t.Params[i] != o.Params[i] {
			return false
		}
	}
	return true
}
