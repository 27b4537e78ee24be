package datatype

var builtins = []TypeDef{
	{Name: "char", Aliases: []string{"character", "java.sql.Types.CHAR"}, MaxParams: 1},
	{Name: "varchar", Aliases: []string{"character varying", "java.sql.Types.VARCHAR", "varchar2"}, MaxParams: 1, Parent: "char"},
	{Name: "nchar", Aliases: []string{"national char", "java.sql.Types.NCHAR"}, MaxParams: 1, Parent: "char"},
	{
		Name:      "nvarchar",
		Aliases:   []string{"java.sql.Types.NVARCHAR", "nvarchar2", "national"},
		Synonyms:  []string{"national character varying"},
		MaxParams: 1,
		Parent:    "char",
	},
	{Name: "clob", Aliases: []string{"text", "longvarchar", "java.sql.Types.CLOB"}},
	{Name: "boolean", Aliases: []string{"bool", "bit", "java.sql.Types.BOOLEAN"}},
	{Name: "int", Aliases: []string{"integer", "int4", "java.sql.Types.INTEGER"}, MaxParams: 1},
	{Name: "bigint", Aliases: []string{"int8", "long", "java.sql.Types.BIGINT"}, MaxParams: 1, Parent: "int"},
	{Name: "decimal", Aliases: []string{"numeric", "number", "java.sql.Types.DECIMAL"}, MaxParams: 2},
	{Name: "uuid", Aliases: []string{"uniqueidentifier", "java.util.UUID"}},
	{Name: "datetime", Aliases: []string{"timestamp", "java.sql.Types.TIMESTAMP"}, MaxParams: 1},
}

// Builtins returns the canonical type definitions every registry created by
// this package starts from.
func Builtins() []TypeDef {
	out := make([]TypeDef, len(builtins))
	copy(out, builtins)
	return out
}

// DefineBuiltins adds the built-in catalogue to r. Each root type gets a
// generic rule that passes the canonical form through; child types inherit
// it so their parent's dialect rules stay reachable.
func DefineBuiltins(r *Registry) error {
	for _, def := range builtins {
		if err := r.Define(def); err != nil {
			return err
		}
		if def.Parent != "" {
			continue
		}
		if err := r.Register(def.Name, Rule{
			Name:        def.Name + ".default",
			Specificity: PriorityDefault,
			Transform:   Keep(),
		}); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	if err := DefineBuiltins(defaultRegistry); err != nil {
		panic(err)
	}
}
