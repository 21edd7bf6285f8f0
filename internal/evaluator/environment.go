package evaluator

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Environment is a chained symbol table. Lambdas, frames, and continuation
// snapshots share environments by reference; the evaluator is single-threaded,
// so no locking guards the store.
type Environment struct {
	store map[string]Object
	outer *Environment
}

// Get looks the name up in this environment, then along the parent chain.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		obj, ok = e.outer.Get(name)
	}
	return obj, ok
}

// Set inserts or overwrites a binding in this environment only (define).
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}

// Update overwrites the nearest existing binding along the chain (set!).
// It reports false when no environment binds the name.
func (e *Environment) Update(name string, val Object) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return true
	}
	if e.outer != nil {
		return e.outer.Update(name, val)
	}
	return false
}

// Extend builds a child environment binding each parameter to the
// corresponding argument. Parameter and argument counts must match exactly.
func (e *Environment) Extend(params []string, args []Object) (*Environment, error) {
	if len(params) != len(args) {
		return nil, arityMismatch("procedure", len(params), len(args))
	}
	env := NewEnclosedEnvironment(e)
	for i, p := range params {
		env.store[p] = args[i]
	}
	return env, nil
}
