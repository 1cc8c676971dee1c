package formula

import (
	"fmt"
	"strings"
	"testing"
)

func mustParse(t *testing.T, expr string) *Formula {
	t.Helper()
	f, err := ParseString(expr)
	if err != nil {
		t.Fatalf("could not parse %q: %v", expr, err)
	}
	return f
}

func TestString(t *testing.T) {
	f := Implies(Not(And(Var("x"), Var("y"))), Xor(Var("x"), Var("z")))
	const expected = "(~(x&y)->(x+z))"
	if f.String() != expected {
		t.Errorf("string representation of formula not as expected: wanted %q, got %q", expected, f.String())
	}
}

var evalTests = []struct {
	expr     string
	model    map[string]bool
	expected bool
}{
	{"T", nil, true},
	{"F", nil, false},
	{"x", map[string]bool{"x": true}, true},
	{"~x", map[string]bool{"x": true}, false},
	{"x&y", map[string]bool{"x": true, "y": false}, false},
	{"x|y", map[string]bool{"x": true, "y": false}, true},
	{"x->y", map[string]bool{"x": true, "y": false}, false},
	{"x->y", map[string]bool{"x": false, "y": false}, true},
	{"x+y", map[string]bool{"x": true, "y": false}, true},
	{"x+y", map[string]bool{"x": true, "y": true}, false},
	{"x<->y", map[string]bool{"x": false, "y": false}, true},
	{"x<->y", map[string]bool{"x": true, "y": false}, false},
	{"x-&y", map[string]bool{"x": true, "y": true}, false},
	{"x-&y", map[string]bool{"x": true, "y": false}, true},
	{"x-|y", map[string]bool{"x": false, "y": false}, true},
	{"x-|y", map[string]bool{"x": true, "y": false}, false},
	{"~(x&y) -> (y|z)", map[string]bool{"x": true, "y": false, "z": false}, false},
}

func TestEval(t *testing.T) {
	for _, tt := range evalTests {
		f := mustParse(t, tt.expr)
		if got := f.Eval(tt.model); got != tt.expected {
			t.Errorf("for %q under %v, expected %t, got %t", tt.expr, tt.model, tt.expected, got)
		}
	}
}

func TestEvalUnboundVariable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic when evaluating with an unbound variable")
		}
	}()
	mustParse(t, "x&y").Eval(map[string]bool{"x": true})
}

func TestVars(t *testing.T) {
	tests := []struct {
		expr     string
		expected string
	}{
		{"T", ""},
		{"x", "x"},
		{"(b|a) -> ~(c&a)", "a b c"},
		{"x + x + x", "x"},
	}
	for _, tt := range tests {
		f := mustParse(t, tt.expr)
		if got := strings.Join(f.Vars(), " "); got != tt.expected {
			t.Errorf("for %q, expected variables %q, got %q", tt.expr, tt.expected, got)
		}
	}
}

func TestOps(t *testing.T) {
	f := mustParse(t, "~(x<->y) -& T")
	for _, op := range []Op{OpNot, OpIff, OpNand, OpTrue, OpVar} {
		if !f.Ops()[op] {
			t.Errorf("expected %s in operator set of %s", op, f)
		}
	}
	for _, op := range []Op{OpAnd, OpOr, OpImplies, OpXor, OpNor, OpFalse} {
		if f.Ops()[op] {
			t.Errorf("unexpected %s in operator set of %s", op, f)
		}
	}
}

var equivalentTests = []struct {
	a, b     string
	expected bool
}{
	{"a->b", "~a|b", true},
	{"a+b", "~(a<->b)", true},
	{"a-&b", "~(a&b)", true},
	{"a-|b", "~a&~b", true},
	{"T", "p|~p", true},
	{"F", "p&~p", true},
	{"a", "b", false},
	{"a+b", "a<->b", false},
	{"a&b", "a|b", false},
}

func TestEquivalent(t *testing.T) {
	for _, tt := range equivalentTests {
		a, b := mustParse(t, tt.a), mustParse(t, tt.b)
		if got := Equivalent(a, b); got != tt.expected {
			t.Errorf("Equivalent(%q, %q): expected %t, got %t", tt.a, tt.b, tt.expected, got)
		}
	}
}

func ExampleFormula_Eval() {
	f, _ := ParseString("~(x&y) -> (x+z)")
	fmt.Println(f.Eval(map[string]bool{"x": false, "y": true, "z": false}))
	fmt.Println(f.Eval(map[string]bool{"x": true, "y": true, "z": true}))
	// Output:
	// false
	// true
}
