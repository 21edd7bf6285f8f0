package evaluator

import (
	"fmt"
	"os"
)

// evalBuiltin and applyBuiltin are identities the application path
// intercepts: both need to drive the stack machine, which an ordinary
// builtin cannot do.
var (
	evalBuiltin  = &Builtin{Name: "eval"}
	applyBuiltin = &Builtin{Name: "apply"}
)

// Builtins is the host procedure library. The driver copies it into the
// global environment at startup.
var Builtins = map[string]*Builtin{
	"eval":  evalBuiltin,
	"apply": applyBuiltin,

	"+": {Name: "+", Fn: func(args []Object) (Object, error) {
		var sum int64
		for _, a := range args {
			n, err := wantInteger(a)
			if err != nil {
				return nil, err
			}
			sum += n
		}
		return &Integer{Value: sum}, nil
	}},

	"-": {Name: "-", Fn: func(args []Object) (Object, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("expects at least one argument")
		}
		first, err := wantInteger(args[0])
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return &Integer{Value: -first}, nil
		}
		acc := first
		for _, a := range args[1:] {
			n, err := wantInteger(a)
			if err != nil {
				return nil, err
			}
			acc -= n
		}
		return &Integer{Value: acc}, nil
	}},

	"*": {Name: "*", Fn: func(args []Object) (Object, error) {
		var prod int64 = 1
		for _, a := range args {
			n, err := wantInteger(a)
			if err != nil {
				return nil, err
			}
			prod *= n
		}
		return &Integer{Value: prod}, nil
	}},

	"/": {Name: "/", Fn: func(args []Object) (Object, error) {
		if len(args) < 2 {
			return nil, fmt.Errorf("expects at least two arguments")
		}
		acc, err := wantInteger(args[0])
		if err != nil {
			return nil, err
		}
		for _, a := range args[1:] {
			n, err := wantInteger(a)
			if err != nil {
				return nil, err
			}
			if n == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			acc /= n
		}
		return &Integer{Value: acc}, nil
	}},

	"=": {Name: "=", Fn: compareChain(func(a, b int64) bool { return a == b })},
	"<": {Name: "<", Fn: compareChain(func(a, b int64) bool { return a < b })},
	">": {Name: ">", Fn: compareChain(func(a, b int64) bool { return a > b })},

	"list": {Name: "list", Fn: func(args []Object) (Object, error) {
		return NewList(args...), nil
	}},

	"cons": {Name: "cons", Fn: func(args []Object) (Object, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("expects two arguments")
		}
		rest, ok := args[1].(*List)
		if !ok {
			return nil, fmt.Errorf("second argument must be a list, got %s", args[1].Inspect())
		}
		elements := make([]Object, 0, len(rest.Elements)+1)
		elements = append(elements, args[0])
		elements = append(elements, rest.Elements...)
		return NewList(elements...), nil
	}},

	"car": {Name: "car", Fn: func(args []Object) (Object, error) {
		lst, err := wantNonEmptyList(args)
		if err != nil {
			return nil, err
		}
		return lst.Elements[0], nil
	}},

	"cdr": {Name: "cdr", Fn: func(args []Object) (Object, error) {
		lst, err := wantNonEmptyList(args)
		if err != nil {
			return nil, err
		}
		return NewList(lst.Elements[1:]...), nil
	}},

	"null?": {Name: "null?", Fn: func(args []Object) (Object, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expects one argument")
		}
		lst, ok := args[0].(*List)
		return nativeBoolToBooleanObject(ok && len(lst.Elements) == 0), nil
	}},

	"length": {Name: "length", Fn: func(args []Object) (Object, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expects one argument")
		}
		lst, ok := args[0].(*List)
		if !ok {
			return nil, fmt.Errorf("argument must be a list, got %s", args[0].Inspect())
		}
		return &Integer{Value: int64(len(lst.Elements))}, nil
	}},

	"not": {Name: "not", Fn: func(args []Object) (Object, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expects one argument")
		}
		return nativeBoolToBooleanObject(!isTruthy(args[0])), nil
	}},

	"display": {Name: "display", Fn: func(args []Object) (Object, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expects one argument")
		}
		if s, ok := args[0].(*String); ok {
			fmt.Fprint(os.Stdout, s.Value)
		} else {
			fmt.Fprint(os.Stdout, args[0].Inspect())
		}
		return TheUnspecified, nil
	}},

	"newline": {Name: "newline", Fn: func(args []Object) (Object, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("expects no arguments")
		}
		fmt.Fprintln(os.Stdout)
		return TheUnspecified, nil
	}},
}

// NewGlobalEnvironment builds a root environment with every builtin bound.
func NewGlobalEnvironment() *Environment {
	env := NewEnvironment()
	for name, builtin := range Builtins {
		env.Set(name, builtin)
	}
	return env
}

func wantInteger(obj Object) (int64, error) {
	n, ok := obj.(*Integer)
	if !ok {
		return 0, fmt.Errorf("expects integers, got %s", obj.Inspect())
	}
	return n.Value, nil
}

func wantNonEmptyList(args []Object) (*List, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expects one argument")
	}
	lst, ok := args[0].(*List)
	if !ok {
		return nil, fmt.Errorf("argument must be a list, got %s", args[0].Inspect())
	}
	if len(lst.Elements) == 0 {
		return nil, fmt.Errorf("argument is the empty list")
	}
	return lst, nil
}

func compareChain(cmp func(a, b int64) bool) BuiltinFunction {
	return func(args []Object) (Object, error) {
		if len(args) < 2 {
			return nil, fmt.Errorf("expects at least two arguments")
		}
		prev, err := wantInteger(args[0])
		if err != nil {
			return nil, err
		}
		for _, a := range args[1:] {
			n, err := wantInteger(a)
			if err != nil {
				return nil, err
			}
			if !cmp(prev, n) {
				return False, nil
			}
			prev = n
		}
		return True, nil
	}
}
