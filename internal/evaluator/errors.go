package evaluator

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrUnboundVariable      ErrorKind = "unbound variable"
	ErrArityMismatch        ErrorKind = "arity mismatch"
	ErrMalformedSpecialForm ErrorKind = "malformed special form"
	ErrNotApplicable        ErrorKind = "not applicable"
	ErrBuiltin              ErrorKind = "builtin error"
)

// Error is any failure raised during evaluation. It aborts the current
// top-level form; the global environment keeps whatever definitions and
// mutations already happened.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error // underlying failure for ErrBuiltin
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func unboundVariable(name string) *Error {
	return newError(ErrUnboundVariable, "%s", name)
}

func arityMismatch(what string, want, got int) *Error {
	return newError(ErrArityMismatch, "%s expects %d arguments, got %d", what, want, got)
}

func malformedForm(form, reason string) *Error {
	return newError(ErrMalformedSpecialForm, "%s: %s", form, reason)
}

func notApplicable(obj Object) *Error {
	return newError(ErrNotApplicable, "%s is not a procedure", obj.Inspect())
}

func builtinError(name string, err error) *Error {
	e := newError(ErrBuiltin, "%s: %s", name, err)
	e.Err = err
	return e
}

// IsKind reports whether err is an evaluation *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
