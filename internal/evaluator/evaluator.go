package evaluator

import (
	"fmt"
	"io"
)

// Evaluator drives the explicit call stack. Nested expressions become
// frames on the stack, never recursive Go calls, so nesting depth is bounded
// by memory and the whole control state can be captured by call/cc.
type Evaluator struct {
	stack Stack

	// Trace, when set, receives the rendered stack after every step.
	Trace io.Writer

	// Steps counts evaluation steps across the evaluator's lifetime.
	Steps int
	// MaxDepth is the high-water frame count across the evaluator's lifetime.
	MaxDepth int
}

func New() *Evaluator {
	return &Evaluator{}
}

// Eval evaluates one top-level expression in env, running the stack machine
// until the stack empties. On error the stack for this form is discarded;
// effects already applied to env stay.
func (ev *Evaluator) Eval(expr Object, env *Environment) (Object, error) {
	list, ok := expr.(*List)
	if !ok {
		return ev.evalAtom(expr, env)
	}
	if len(list.Elements) == 0 {
		return list, nil
	}

	f, err := newFrame(list, env, false)
	if err != nil {
		return nil, err
	}
	ev.stack.reset()
	ev.stack.Push(f)

	for {
		result, err := ev.run()
		if err != nil {
			ev.stack.reset()
			return nil, err
		}
		if result != nil {
			return result, nil
		}
	}
}

// run executes one step: advance the top frame by one slot, or apply it if
// every slot it needs is ready. A non-nil result means the stack emptied and
// the whole form is done.
func (ev *Evaluator) run() (Object, error) {
	ev.Steps++
	if d := ev.stack.Len(); d > ev.MaxDepth {
		ev.MaxDepth = d
	}
	if ev.Trace != nil {
		fmt.Fprintln(ev.Trace, ev.stack.String())
	}

	f := ev.stack.Top()

	if i := f.nextSlot(); i >= 0 {
		sub := f.slots[i]
		if list, ok := sub.(*List); ok && len(list.Elements) > 0 {
			child, err := newFrame(list, f.env, false)
			if err != nil {
				return nil, err
			}
			f.active = i
			ev.stack.Push(child)
			return nil, nil
		}
		v, err := ev.evalAtom(sub, f.env)
		if err != nil {
			return nil, err
		}
		f.complete(i, v)
		return nil, nil
	}

	var v Object
	var done bool
	var err error
	if f.form != nil {
		v, done, err = ev.applyForm(f)
	} else {
		v, done, err = ev.applyFrame(f)
	}
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, nil
	}
	return ev.collapse(v), nil
}

// collapse finishes the top frame with value v: pop it and store v into the
// parent's awaiting slot. A non-nil return means there was no parent left.
func (ev *Evaluator) collapse(v Object) Object {
	if ev.stack.Len() == 0 {
		// a continuation replaced the stack with an empty snapshot
		return v
	}
	ev.stack.Pop()
	if ev.stack.Len() == 0 {
		return v
	}
	parent := ev.stack.Top()
	parent.complete(parent.active, v)
	return nil
}

// evalAtom evaluates a non-composite expression: symbols via lookup,
// everything else to itself.
func (ev *Evaluator) evalAtom(expr Object, env *Environment) (Object, error) {
	if sym, ok := expr.(*Symbol); ok {
		v, ok := env.Get(sym.Value)
		if !ok {
			return nil, unboundVariable(sym.Value)
		}
		return v, nil
	}
	return expr, nil
}

// applyForm applies a ready special-form frame.
func (ev *Evaluator) applyForm(f *Frame) (Object, bool, error) {
	v, effect, err := f.form.apply(ev, f)
	if err != nil {
		return nil, false, err
	}
	switch effect {
	case sfTail:
		return ev.rewriteFrame(f, v, f.env)
	case sfRetry:
		return nil, false, nil
	default:
		return v, true, nil
	}
}

// rewriteFrame replaces the frame's content with expr in tail position.
// Atoms are evaluated on the spot and finish the frame.
func (ev *Evaluator) rewriteFrame(f *Frame, expr Object, env *Environment) (Object, bool, error) {
	f.env = env
	list, ok := expr.(*List)
	if !ok {
		v, err := ev.evalAtom(expr, env)
		return v, true, err
	}
	if len(list.Elements) == 0 {
		return list, true, nil
	}
	f.tail = true
	return nil, false, f.load(list)
}

// applyFrame applies a ready procedure-application frame: slot 0 is the
// operator, the rest are argument values.
func (ev *Evaluator) applyFrame(f *Frame) (Object, bool, error) {
	if len(f.slots) == 0 {
		return NewList(), true, nil
	}

	for {
		op := f.slots[0]
		args := f.slots[1:]

		switch fn := op.(type) {
		case *Builtin:
			switch fn {
			case evalBuiltin:
				if len(args) != 1 {
					return nil, false, arityMismatch("eval", 1, len(args))
				}
				return ev.rewriteFrame(f, args[0], f.env)
			case applyBuiltin:
				if len(args) != 2 {
					return nil, false, arityMismatch("apply", 2, len(args))
				}
				spread, ok := args[1].(*List)
				if !ok {
					return nil, false, builtinError("apply", fmt.Errorf("second argument must be a list, got %s", args[1].Inspect()))
				}
				slots := make([]Object, 0, len(spread.Elements)+1)
				slots = append(slots, args[0])
				slots = append(slots, spread.Elements...)
				f.slots = slots
				f.pos = len(slots)
				continue
			}
			v, err := fn.Fn(args)
			if err != nil {
				return nil, false, builtinError(fn.Name, err)
			}
			return v, true, nil

		case *Lambda:
			env, err := fn.Env.Extend(fn.Params, args)
			if err != nil {
				return nil, false, err
			}
			if f.tail {
				// tail call: the body takes over this frame, the stack
				// does not grow
				return ev.rewriteFrame(f, fn.Body, env)
			}
			body, ok := fn.Body.(*List)
			if !ok || len(body.Elements) == 0 {
				v, err := ev.evalAtom(fn.Body, env)
				return v, true, err
			}
			child, err := newFrame(body, env, false)
			if err != nil {
				return nil, false, err
			}
			f.becomeReturnBarrier()
			ev.stack.Push(child)
			return nil, false, nil

		case *Continuation:
			if len(args) != 1 {
				return nil, false, arityMismatch("continuation", 1, len(args))
			}
			return ev.invokeContinuation(fn, args[0])

		default:
			return nil, false, notApplicable(op)
		}
	}
}

// capture snapshots every frame below the current top (the rest of the
// computation) and records which slot of the topmost captured frame awaits
// the continuation value.
func (ev *Evaluator) capture() *Continuation {
	below := ev.stack.Len() - 1
	if below == 0 {
		return newContinuation(nil, -1)
	}
	slot := ev.stack.frames[below-1].active
	return newContinuation(ev.stack.snapshot(below), slot)
}

// invokeContinuation discards the current stack and resumes a fresh copy of
// the snapshot with v stored in the awaiting slot. Side effects performed on
// the abandoned frames are not undone; only control position is restored.
func (ev *Evaluator) invokeContinuation(k *Continuation, v Object) (Object, bool, error) {
	frames := copyFrames(k.frames)
	ev.stack.replace(frames)
	if len(frames) == 0 {
		return v, true, nil
	}
	frames[len(frames)-1].complete(k.slot, v)
	return nil, false, nil
}
