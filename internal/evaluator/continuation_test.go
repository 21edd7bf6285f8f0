package evaluator_test

import (
	"testing"

	"github.com/morsel-lang/morsel/internal/evaluator"
)

func TestCallCCWithoutInvocation(t *testing.T) {
	// the continuation is captured but never called; the operand's result
	// flows out normally
	testIntegerObject(t, evalString(t, "(call/cc (lambda (k) 3))"), 3)
	testIntegerObject(t, evalString(t, "(+ 1 (call/cc (lambda (k) 3)))"), 4)
}

func TestCallCCEscapes(t *testing.T) {
	// invoking k abandons the pending (+ 2 ...) computation entirely
	testIntegerObject(t, evalString(t, "(+ 1 (call/cc (lambda (k) (+ 2 (k 3)))))"), 4)
	testIntegerObject(t, evalString(t, "(call/cc (lambda (k) (+ 1 (k 2))))"), 2)
	testIntegerObject(t, evalString(t, "(+ 3 (call/cc (lambda (k) (+ 1 (k 2)))))"), 5)
}

func TestCallCCValueIsContinuation(t *testing.T) {
	ev := evaluator.New()
	env := evaluator.NewGlobalEnvironment()
	result := runEval(t, ev, env, "(call/cc (lambda (k) k))")
	if _, ok := result.(*evaluator.Continuation); !ok {
		t.Fatalf("object is not Continuation. got=%T (%+v)", result, result)
	}
}

func TestContinuationIsReentrant(t *testing.T) {
	ev := evaluator.New()
	env := evaluator.NewGlobalEnvironment()

	runEval(t, ev, env, `
		(define saved #f)
		(define capture
		  (lambda ()
		    (+ 1 (call/cc (lambda (k) (begin (set! saved k) 1))))))`)

	testIntegerObject(t, runEval(t, ev, env, "(capture)"), 2)

	// invoking the saved continuation from later top-level forms replaces
	// the whole stack with the snapshot, each time independently
	testIntegerObject(t, runEval(t, ev, env, "(saved 10)"), 11)
	testIntegerObject(t, runEval(t, ev, env, "(saved 20)"), 21)
	testIntegerObject(t, runEval(t, ev, env, "(saved 10)"), 11)
}

func TestContinuationPreservesSideEffects(t *testing.T) {
	ev := evaluator.New()
	env := evaluator.NewGlobalEnvironment()

	runEval(t, ev, env, `
		(define count 0)
		(define resume #f)
		(define trial
		  (lambda ()
		    (begin
		      (call/cc (lambda (k) (set! resume k)))
		      (set! count (+ count 1))
		      count)))`)

	// each re-entry runs the post-capture mutation again; nothing is
	// rolled back between runs
	testIntegerObject(t, runEval(t, ev, env, "(trial)"), 1)
	testIntegerObject(t, runEval(t, ev, env, "(resume #f)"), 2)
	testIntegerObject(t, runEval(t, ev, env, "(resume #f)"), 3)
}

func TestAbandonedFramesEffectsAreNotUndone(t *testing.T) {
	ev := evaluator.New()
	env := evaluator.NewGlobalEnvironment()

	// (k 3) abandons the surrounding (+ (begin ...) ...) computation, but
	// the set! that already ran stays visible
	testIntegerObject(t, runEval(t, ev, env, `
		(define effect 0)
		(+ 1 (call/cc (lambda (k) (+ (begin (set! effect 99) 1) (k 3)))))`), 4)

	v, _ := env.Get("effect")
	testIntegerObject(t, v, 99)
}

func TestTopLevelContinuation(t *testing.T) {
	// capturing at the top level snapshots an empty stack: invoking the
	// continuation just yields the value
	testIntegerObject(t, evalString(t, "(call/cc (lambda (k) (k 42)))"), 42)
}

func TestContinuationArity(t *testing.T) {
	ev := evaluator.New()
	env := evaluator.NewGlobalEnvironment()
	runEval(t, ev, env, "(define saved #f) (+ 1 (call/cc (lambda (k) (begin (set! saved k) 0))))")

	if _, err := ev.Eval(parse(t, "(saved 1 2)")[0], env); !evaluator.IsKind(err, evaluator.ErrArityMismatch) {
		t.Fatalf("expected arity mismatch error, got %v", err)
	}
}

func TestCallCCNonProcedure(t *testing.T) {
	err := evalErr(t, "(call/cc 5)")
	if !evaluator.IsKind(err, evaluator.ErrNotApplicable) {
		t.Fatalf("expected not applicable error, got %v", err)
	}
}

func TestDistinctCapturesAreDistinct(t *testing.T) {
	ev := evaluator.New()
	env := evaluator.NewGlobalEnvironment()

	a := runEval(t, ev, env, "(call/cc (lambda (k) k))").(*evaluator.Continuation)
	b := runEval(t, ev, env, "(call/cc (lambda (k) k))").(*evaluator.Continuation)
	if a.ID == b.ID {
		t.Fatal("two captures share an identity")
	}
	if a.Inspect() == b.Inspect() {
		t.Fatal("two captures render identically")
	}
}
