package evaluator

type ObjectType string

const (
	SYMBOL_OBJ       = "SYMBOL"
	INTEGER_OBJ      = "INTEGER"
	BOOLEAN_OBJ      = "BOOLEAN"
	STRING_OBJ       = "STRING"
	LIST_OBJ         = "LIST"
	UNSPECIFIED_OBJ  = "UNSPECIFIED"
	BUILTIN_OBJ      = "BUILTIN"
	LAMBDA_OBJ       = "LAMBDA"
	CONTINUATION_OBJ = "CONTINUATION"
)

// Object is both the expression and the value representation: the reader
// produces Objects, and evaluation maps Objects to Objects. Expressions are
// never mutated after the parser builds them, so quoted forms can be handed
// out as values directly.
type Object interface {
	Type() ObjectType
	Inspect() string
}
