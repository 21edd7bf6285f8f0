package evaluator

import "testing"

func TestEnvironmentGetWalksTheChain(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("a", intObj(1))
	inner := NewEnclosedEnvironment(outer)
	inner.Set("b", intObj(2))

	if v, ok := inner.Get("a"); !ok || v.Inspect() != "1" {
		t.Errorf("inner.Get(a): got=%v, %t", v, ok)
	}
	if v, ok := inner.Get("b"); !ok || v.Inspect() != "2" {
		t.Errorf("inner.Get(b): got=%v, %t", v, ok)
	}
	if _, ok := outer.Get("b"); ok {
		t.Error("outer sees inner binding")
	}
	if _, ok := inner.Get("missing"); ok {
		t.Error("lookup invented a binding")
	}
}

func TestEnvironmentShadowing(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", intObj(1))
	inner := NewEnclosedEnvironment(outer)
	inner.Set("x", intObj(2))

	if v, _ := inner.Get("x"); v.Inspect() != "2" {
		t.Errorf("inner x: got=%s", v.Inspect())
	}
	if v, _ := outer.Get("x"); v.Inspect() != "1" {
		t.Errorf("outer x: got=%s", v.Inspect())
	}
}

func TestEnvironmentUpdate(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", intObj(1))
	inner := NewEnclosedEnvironment(outer)

	// no binding here: the nearest binder (outer) is updated
	if !inner.Update("x", intObj(9)) {
		t.Fatal("Update failed for a bound name")
	}
	if v, _ := outer.Get("x"); v.Inspect() != "9" {
		t.Errorf("outer x after update: got=%s", v.Inspect())
	}

	// shadowed binding: only the inner one changes
	inner.Set("x", intObj(5))
	inner.Update("x", intObj(6))
	if v, _ := outer.Get("x"); v.Inspect() != "9" {
		t.Errorf("outer x touched through shadow: got=%s", v.Inspect())
	}

	if inner.Update("missing", intObj(1)) {
		t.Error("Update succeeded for an unbound name")
	}
}

func TestEnvironmentExtend(t *testing.T) {
	outer := NewEnvironment()
	env, err := outer.Extend([]string{"x", "y"}, []Object{intObj(1), intObj(2)})
	if err != nil {
		t.Fatalf("Extend: %s", err)
	}
	if v, _ := env.Get("x"); v.Inspect() != "1" {
		t.Errorf("x: got=%s", v.Inspect())
	}
	if v, _ := env.Get("y"); v.Inspect() != "2" {
		t.Errorf("y: got=%s", v.Inspect())
	}
	if _, ok := outer.Get("x"); ok {
		t.Error("Extend bound parameters in the parent")
	}

	_, err = outer.Extend([]string{"x", "y"}, []Object{intObj(1)})
	if !IsKind(err, ErrArityMismatch) {
		t.Fatalf("expected arity mismatch, got %v", err)
	}
}
