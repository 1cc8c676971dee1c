package formula

import (
	"fmt"
	"strings"
	"testing"
)

// To each expression, associate the expected String form of its parse.
var exprToFormula = map[string]string{
	"foo":                 "foo",
	"~foo":                "~foo",
	"~~foo":               "~~foo",
	"(foo)":               "foo",
	"T":                   "T",
	"F":                   "F",
	"a | b":               "(a|b)",
	"a & b":               "(a&b)",
	"a -> b":              "(a->b)",
	"a <-> b":             "(a<->b)",
	"a + b":               "(a+b)",
	"a -& b":              "(a-&b)",
	"a -| b":              "(a-|b)",
	"~(a|  b)":            "~(a|b)",
	"a & b & c":           "(a&(b&c))",
	"a & (b & c) & d":     "(a&((b&c)&d))",
	"x + y & z":           "(x+(y&z))",
	"a <-> b|c -> ~(d&e)": "(a<->((b|c)->~(d&e)))",
	"~T -> (x -| F)":      "(~T->(x-|F))",
	"(a+b) -& (a<->~b)":   "((a+b)-&(a<->~b))",
}

// Expressions for which Parse must report an error.
var badExprs = []string{
	"",
	"| a",
	"a |",
	"a -",
	"a <- b",
	"(a",
	"a)",
	"a b",
	"123",
	"~",
	"a & & b",
}

func TestParse(t *testing.T) {
	for expr, expected := range exprToFormula {
		f, err := Parse(strings.NewReader(expr))
		if err != nil {
			t.Errorf("could not parse expression %q: %v", expr, err)
		} else if f.String() != expected {
			t.Errorf("for expression %q, expected formula %q, got %q", expr, expected, f.String())
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, expr := range badExprs {
		if f, err := ParseString(expr); err == nil {
			t.Errorf("expected error for expression %q, got formula %q", expr, f.String())
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, expected := range exprToFormula {
		f, err := ParseString(expected)
		if err != nil {
			t.Errorf("could not re-parse %q: %v", expected, err)
		} else if f.String() != expected {
			t.Errorf("round trip of %q gave %q", expected, f.String())
		}
	}
}

func ExampleParse() {
	expr := "a & ~(b -> c) & (c <-> d | ~a)"
	f, err := Parse(strings.NewReader(expr))
	if err != nil {
		fmt.Printf("could not parse expression %q: %v", expr, err)
		return
	}
	fmt.Println(f)
	// Output:
	// (a&(~(b->c)&(c<->(d|~a))))
}
