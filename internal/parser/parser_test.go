package parser

import (
	"strings"
	"testing"

	"github.com/morsel-lang/morsel/internal/evaluator"
	"github.com/morsel-lang/morsel/internal/lexer"
)

func parseOne(t *testing.T, input string) evaluator.Object {
	t.Helper()
	program, err := Parse(input)
	if err != nil {
		t.Fatalf("parse error: %s", err)
	}
	if len(program) != 1 {
		t.Fatalf("expected one expression, got %d", len(program))
	}
	return program[0]
}

func TestParseAtoms(t *testing.T) {
	n, ok := parseOne(t, "42").(*evaluator.Integer)
	if !ok || n.Value != 42 {
		t.Fatalf("integer: got=%+v", n)
	}

	if b := parseOne(t, "#t"); b != evaluator.True {
		t.Fatalf("#t: got=%+v", b)
	}
	if b := parseOne(t, "#f"); b != evaluator.False {
		t.Fatalf("#f: got=%+v", b)
	}

	s, ok := parseOne(t, "foo").(*evaluator.Symbol)
	if !ok || s.Value != "foo" {
		t.Fatalf("symbol: got=%+v", s)
	}

	str, ok := parseOne(t, `"bar"`).(*evaluator.String)
	if !ok || str.Value != "bar" {
		t.Fatalf("string: got=%+v", str)
	}
}

func TestParseNestedLists(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"()", "()"},
		{"(+ 1 2)", "(+ 1 2)"},
		{"(if (foo bar) #t 33)", "(if (foo bar) #t 33)"},
		{"(lambda (x) (+ x 1))", "(lambda (x) (+ x 1))"},
		{"(a (b (c (d))))", "(a (b (c (d))))"},
	}
	for _, tt := range tests {
		expr := parseOne(t, tt.input)
		if got := expr.Inspect(); got != tt.expected {
			t.Errorf("%q: got=%s", tt.input, got)
		}
	}
}

func TestParseQuoteSugar(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"'x", "(quote x)"},
		{"'(1 2)", "(quote (1 2))"},
		{"''x", "(quote (quote x))"},
		{"('a 'b)", "((quote a) (quote b))"},
	}
	for _, tt := range tests {
		expr := parseOne(t, tt.input)
		if got := expr.Inspect(); got != tt.expected {
			t.Errorf("%q: got=%s", tt.input, got)
		}
	}
}

func TestParseProgram(t *testing.T) {
	program, err := Parse("(define x 1)\n(+ x 2) ; comment\n42")
	if err != nil {
		t.Fatalf("parse error: %s", err)
	}
	if len(program) != 3 {
		t.Fatalf("expected 3 forms, got %d", len(program))
	}
	if got := program[1].Inspect(); got != "(+ x 2)" {
		t.Errorf("second form: got=%s", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(foo", "never closed"},
		{")", "unexpected ')'"},
		{"(a))", "unexpected ')'"},
		{"'", "after quote"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.input)
		if err == nil {
			t.Errorf("%q: expected an error", tt.input)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%q: got=%q, want substring %q", tt.input, err, tt.want)
		}
	}
}

func TestParseExpressionSequence(t *testing.T) {
	p := New(lexer.New("1 2"))
	first, err := p.ParseExpression()
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.ParseExpression()
	if err != nil {
		t.Fatal(err)
	}
	third, err := p.ParseExpression()
	if err != nil {
		t.Fatal(err)
	}
	if first.Inspect() != "1" || second.Inspect() != "2" {
		t.Errorf("got %s, %s", first.Inspect(), second.Inspect())
	}
	if third != nil {
		t.Errorf("expected nil at EOF, got %v", third)
	}
}
