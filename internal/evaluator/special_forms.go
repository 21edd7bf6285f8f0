package evaluator

// sfEffect says what a special form's application did with the frame.
type sfEffect int

const (
	sfDone  sfEffect = iota // the returned value is the frame's result
	sfTail                  // the returned expression replaces the frame in tail position
	sfRetry                 // the frame was rewritten in place; apply it again
)

// specialForm is a per-form evaluation policy: validate checks the shape at
// frame construction, next picks which slot to evaluate (or -1 when the form
// is ready), and apply performs the form's effect.
type specialForm struct {
	name     string
	validate func(f *Frame) error
	next     func(f *Frame) int
	apply    func(ev *Evaluator, f *Frame) (Object, sfEffect, error)
}

// specialForms is the syntactic keyword table. A symbol that appears here is
// recognized at the head of a composite before anything is evaluated, so
// these names cannot be shadowed by bindings.
var specialForms map[string]*specialForm

// returnForm marks a frame that only forwards the value of a pushed lambda
// body; it never evaluates anything itself.
var returnForm = &specialForm{
	name:     "",
	validate: func(f *Frame) error { return nil },
	next:     func(f *Frame) int { return -1 },
	apply: func(ev *Evaluator, f *Frame) (Object, sfEffect, error) {
		return f.slots[0], sfDone, nil
	},
}

func init() {
	specialForms = map[string]*specialForm{
		"quote": {
			name: "quote",
			validate: func(f *Frame) error {
				if len(f.slots) != 2 {
					return malformedForm("quote", "takes exactly one operand")
				}
				return nil
			},
			next: func(f *Frame) int { return -1 },
			apply: func(ev *Evaluator, f *Frame) (Object, sfEffect, error) {
				return f.slots[1], sfDone, nil
			},
		},

		"define": {
			name: "define",
			validate: func(f *Frame) error {
				if len(f.slots) != 3 {
					return malformedForm("define", "takes a name and a value")
				}
				if _, ok := f.slots[1].(*Symbol); !ok {
					return malformedForm("define", "name must be a symbol")
				}
				return nil
			},
			next: func(f *Frame) int {
				if f.pos <= 2 {
					return 2
				}
				return -1
			},
			apply: func(ev *Evaluator, f *Frame) (Object, sfEffect, error) {
				name := f.slots[1].(*Symbol)
				f.env.Set(name.Value, f.slots[2])
				return TheUnspecified, sfDone, nil
			},
		},

		"set!": {
			name: "set!",
			validate: func(f *Frame) error {
				if len(f.slots) != 3 {
					return malformedForm("set!", "takes a name and a value")
				}
				if _, ok := f.slots[1].(*Symbol); !ok {
					return malformedForm("set!", "name must be a symbol")
				}
				return nil
			},
			next: func(f *Frame) int {
				if f.pos <= 2 {
					return 2
				}
				return -1
			},
			apply: func(ev *Evaluator, f *Frame) (Object, sfEffect, error) {
				name := f.slots[1].(*Symbol)
				if !f.env.Update(name.Value, f.slots[2]) {
					return nil, sfDone, unboundVariable(name.Value)
				}
				return TheUnspecified, sfDone, nil
			},
		},

		"if": {
			name: "if",
			validate: func(f *Frame) error {
				if len(f.slots) != 3 && len(f.slots) != 4 {
					return malformedForm("if", "takes a test, a consequent, and an optional alternate")
				}
				return nil
			},
			// only the test is evaluated; the chosen branch replaces the
			// frame, so the other branch never runs
			next: func(f *Frame) int {
				if f.pos <= 1 {
					return 1
				}
				return -1
			},
			apply: func(ev *Evaluator, f *Frame) (Object, sfEffect, error) {
				if isTruthy(f.slots[1]) {
					return f.slots[2], sfTail, nil
				}
				if len(f.slots) == 4 {
					return f.slots[3], sfTail, nil
				}
				return TheUnspecified, sfDone, nil
			},
		},

		"begin": {
			name: "begin",
			validate: func(f *Frame) error {
				if len(f.slots) < 2 {
					return malformedForm("begin", "takes at least one expression")
				}
				return nil
			},
			// every expression but the last is evaluated and discarded;
			// the last replaces the frame (the form's tail-call guarantee)
			next: func(f *Frame) int {
				i := f.pos
				if i < 1 {
					i = 1
				}
				if i < len(f.slots)-1 {
					return i
				}
				return -1
			},
			apply: func(ev *Evaluator, f *Frame) (Object, sfEffect, error) {
				return f.slots[len(f.slots)-1], sfTail, nil
			},
		},

		"lambda": {
			name: "lambda",
			validate: func(f *Frame) error {
				if len(f.slots) != 3 {
					return malformedForm("lambda", "takes a parameter list and one body expression")
				}
				params, ok := f.slots[1].(*List)
				if !ok {
					return malformedForm("lambda", "parameter list must be a list")
				}
				for _, p := range params.Elements {
					if _, ok := p.(*Symbol); !ok {
						return malformedForm("lambda", "parameters must be symbols")
					}
				}
				return nil
			},
			next: func(f *Frame) int { return -1 },
			apply: func(ev *Evaluator, f *Frame) (Object, sfEffect, error) {
				params := f.slots[1].(*List)
				names := make([]string, len(params.Elements))
				for i, p := range params.Elements {
					names[i] = p.(*Symbol).Value
				}
				return &Lambda{Params: names, Body: f.slots[2], Env: f.env}, sfDone, nil
			},
		},

		"call/cc": {
			name: "call/cc",
			validate: func(f *Frame) error {
				if len(f.slots) != 2 {
					return malformedForm("call/cc", "takes exactly one procedure")
				}
				return nil
			},
			next: func(f *Frame) int {
				if f.pos <= 1 {
					return 1
				}
				return -1
			},
			apply: func(ev *Evaluator, f *Frame) (Object, sfEffect, error) {
				fn := f.slots[1]
				k := ev.capture()
				// the frame becomes the application (fn k); both slots are
				// already values, so the next step applies it normally
				f.form = nil
				f.slots = []Object{fn, k}
				f.pos = 2
				f.active = -1
				return nil, sfRetry, nil
			},
		},
	}
}
