package evaluator

import (
	"strconv"
	"strings"
)

type Symbol struct {
	Value string
}

func NewSymbol(name string) *Symbol { return &Symbol{Value: name} }

func (s *Symbol) Type() ObjectType { return SYMBOL_OBJ }
func (s *Symbol) Inspect() string  { return s.Value }

type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return strconv.FormatInt(i.Value, 10) }

type Boolean struct {
	Value bool
}

// True and False are the only Boolean instances the interpreter produces.
var (
	True  = &Boolean{Value: true}
	False = &Boolean{Value: false}
)

func nativeBoolToBooleanObject(v bool) *Boolean {
	if v {
		return True
	}
	return False
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "#t"
	}
	return "#f"
}

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return strconv.Quote(s.Value) }

// List is the composite: a parsed form, a quoted literal, or runtime list
// data, depending on where it shows up.
type List struct {
	Elements []Object
}

func NewList(elements ...Object) *List { return &List{Elements: elements} }

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.Inspect()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Unspecified is the result of forms that have no useful value, like define
// and a one-armed if whose test is false.
type Unspecified struct{}

var TheUnspecified = &Unspecified{}

func (u *Unspecified) Type() ObjectType { return UNSPECIFIED_OBJ }
func (u *Unspecified) Inspect() string  { return "#<unspecified>" }

// isTruthy follows Scheme: #f is the only falsy value.
func isTruthy(obj Object) bool {
	return obj != False
}
