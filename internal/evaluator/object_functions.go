package evaluator

import (
	"strings"

	"github.com/google/uuid"
)

// BuiltinFunction is the calling convention for host procedures: evaluated
// argument values in, one value out. A returned error aborts the current
// top-level evaluation as a builtin failure.
type BuiltinFunction func(args []Object) (Object, error)

type Builtin struct {
	Name string
	Fn   BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "#<builtin " + b.Name + ">" }

// Lambda is a user procedure: parameter names, a single body expression,
// and the environment it closed over.
type Lambda struct {
	Params []string
	Body   Object
	Env    *Environment
}

func (l *Lambda) Type() ObjectType { return LAMBDA_OBJ }
func (l *Lambda) Inspect() string {
	return "#<lambda (" + strings.Join(l.Params, " ") + ")>"
}

// Continuation is a captured stack: the frames that were pending below a
// call/cc application, plus the slot in the topmost captured frame that the
// continuation value lands in. The snapshot is never mutated; every
// invocation works on a fresh copy, so continuations are multi-shot.
type Continuation struct {
	ID     string
	frames []*Frame
	slot   int // -1 when the snapshot is empty (top-level call/cc)
}

func newContinuation(frames []*Frame, slot int) *Continuation {
	return &Continuation{ID: uuid.NewString(), frames: frames, slot: slot}
}

func (c *Continuation) Type() ObjectType { return CONTINUATION_OBJ }
func (c *Continuation) Inspect() string {
	return "#<continuation " + c.ID[:8] + ">"
}
