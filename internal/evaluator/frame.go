package evaluator

import "strings"

// Frame tracks one composite expression mid-evaluation. slots starts as a
// copy of the composite's elements; slots before pos have been replaced by
// their values. active is the slot a child frame is currently computing.
type Frame struct {
	slots  []Object
	env    *Environment
	form   *specialForm // nil for a plain procedure application
	pos    int
	active int
	tail   bool // frame replaced its predecessor in place (if/begin rewriting)
}

func newFrame(list *List, env *Environment, tail bool) (*Frame, error) {
	f := &Frame{env: env, tail: tail}
	if err := f.load(list); err != nil {
		return nil, err
	}
	return f, nil
}

// load (re)initializes the frame with a composite's elements, recognizing a
// special-form head and validating its shape.
func (f *Frame) load(list *List) error {
	f.slots = make([]Object, len(list.Elements))
	copy(f.slots, list.Elements)
	f.pos = 0
	f.active = -1
	f.form = nil
	if len(f.slots) > 0 {
		if head, ok := f.slots[0].(*Symbol); ok {
			if sf, ok := specialForms[head.Value]; ok {
				f.form = sf
				return sf.validate(f)
			}
		}
	}
	return nil
}

// nextSlot returns the index of the next slot to evaluate, or -1 when the
// frame is ready to apply.
func (f *Frame) nextSlot() int {
	if f.form != nil {
		return f.form.next(f)
	}
	if f.pos < len(f.slots) {
		return f.pos
	}
	return -1
}

// complete stores a finished value into slot i and advances the cursor.
func (f *Frame) complete(i int, v Object) {
	f.slots[i] = v
	f.active = -1
	if i >= f.pos {
		f.pos = i + 1
	}
}

// becomeReturnBarrier turns an applied frame into a single awaiting slot:
// the pushed body frame's value lands here and passes through unchanged.
func (f *Frame) becomeReturnBarrier() {
	f.slots = []Object{nil}
	f.form = returnForm
	f.pos = 0
	f.active = 0
}

// clone copies the frame record and its slot slice. Slot contents and the
// environment are shared; both are immutable or mutation-transparent by
// design, which is what makes snapshots cheap.
func (f *Frame) clone() *Frame {
	c := *f
	c.slots = make([]Object, len(f.slots))
	copy(c.slots, f.slots)
	return &c
}

// String renders the frame the way the tracer shows it, with $$ marking the
// slot a child frame is computing.
func (f *Frame) String() string {
	parts := make([]string, len(f.slots))
	for i, s := range f.slots {
		switch {
		case i == f.active:
			parts[i] = "$$"
		case s == nil:
			parts[i] = "$$"
		default:
			parts[i] = s.Inspect()
		}
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Stack is the explicit call stack: last frame is the innermost, currently
// active one.
type Stack struct {
	frames []*Frame
}

func (s *Stack) Push(f *Frame) {
	s.frames = append(s.frames, f)
}

func (s *Stack) Pop() *Frame {
	n := len(s.frames) - 1
	f := s.frames[n]
	s.frames[n] = nil
	s.frames = s.frames[:n]
	return f
}

func (s *Stack) Top() *Frame {
	return s.frames[len(s.frames)-1]
}

func (s *Stack) Len() int { return len(s.frames) }

// replace swaps the whole stack for another frame sequence; used when a
// continuation is invoked.
func (s *Stack) replace(frames []*Frame) {
	s.frames = frames
}

func (s *Stack) reset() {
	s.frames = s.frames[:0]
}

// snapshot copies frames[0:n] into an immutable point-in-time copy.
func (s *Stack) snapshot(n int) []*Frame {
	return copyFrames(s.frames[:n])
}

func copyFrames(frames []*Frame) []*Frame {
	dst := make([]*Frame, len(frames))
	for i, f := range frames {
		dst[i] = f.clone()
	}
	return dst
}

// String renders the stack bottom-to-top, one frame after another.
func (s *Stack) String() string {
	parts := make([]string, len(s.frames))
	for i, f := range s.frames {
		parts[i] = f.String()
	}
	return strings.Join(parts, " ")
}
