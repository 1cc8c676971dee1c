package basis

import (
	"fmt"

	"github.com/logic-tools/proplog/formula"
)

// helperVar is the variable used to encode the constants T and F as
// tautologies and contradictions, e.g. (p|~p) for T. It is a fixed name,
// not freshened against the input: a formula already containing "p" still
// converts correctly, since the encodings are tautological regardless of
// how p is bound.
const helperVar = "p"

// Convert rewrites f into an equivalent formula restricted to the given
// basis. The input is never modified.
func Convert(f *formula.Formula, b Basis) *formula.Formula {
	switch b {
	case NotAndOr:
		return ToNotAndOr(f)
	case NotAnd:
		return ToNotAnd(f)
	case NandOnly:
		return ToNand(f)
	case ImpliesNot:
		return ToImpliesNot(f)
	case ImpliesFalse:
		return ToImpliesFalse(f)
	}
	panic(fmt.Sprintf("unknown basis %s", b))
}

// ToNotAndOr returns a formula with the same truth table as f that contains
// no constants or operators beyond ~, & and |.
func ToNotAndOr(f *formula.Formula) *formula.Formula {
	switch f.Op() {
	case formula.OpVar:
		return f
	case formula.OpTrue:
		p := formula.Var(helperVar)
		return formula.Or(p, formula.Not(p))
	case formula.OpFalse:
		p := formula.Var(helperVar)
		return formula.And(p, formula.Not(p))
	case formula.OpNot:
		return formula.Not(ToNotAndOr(f.First()))
	}
	first := ToNotAndOr(f.First())
	second := ToNotAndOr(f.Second())
	switch f.Op() {
	case formula.OpAnd:
		return formula.And(first, second)
	case formula.OpOr:
		return formula.Or(first, second)
	case formula.OpImplies: // a->b == ~a|b
		return formula.Or(formula.Not(first), second)
	case formula.OpXor: // a+b == (a&~b)|(~a&b)
		return formula.Or(
			formula.And(first, formula.Not(second)),
			formula.And(formula.Not(first), second))
	case formula.OpIff: // a<->b == (a&b)|(~a&~b)
		return formula.Or(
			formula.And(first, second),
			formula.And(formula.Not(first), formula.Not(second)))
	case formula.OpNand:
		return formula.Not(formula.And(first, second))
	case formula.OpNor:
		return formula.Not(formula.Or(first, second))
	}
	panic(fmt.Sprintf("unknown operator %s", f.Op()))
}

// ToNotAnd returns a formula with the same truth table as f that contains no
// constants or operators beyond ~ and &. Disjunctions are eliminated with
// De Morgan's law at every point where ToNotAndOr would produce one, so no
// intermediate | node is ever built.
func ToNotAnd(f *formula.Formula) *formula.Formula {
	switch f.Op() {
	case formula.OpVar:
		return f
	case formula.OpTrue, formula.OpFalse:
		p := formula.Var(helperVar)
		contradiction := formula.And(p, formula.Not(p))
		if f.Op() == formula.OpFalse {
			return contradiction
		}
		return formula.Not(contradiction)
	case formula.OpNot:
		return formula.Not(ToNotAnd(f.First()))
	}
	first := ToNotAnd(f.First())
	second := ToNotAnd(f.Second())
	switch f.Op() {
	case formula.OpAnd:
		return formula.And(first, second)
	case formula.OpOr: // a|b == ~(~a&~b)
		return formula.Not(formula.And(formula.Not(first), formula.Not(second)))
	case formula.OpImplies: // a->b == ~(a&~b)
		return formula.Not(formula.And(first, formula.Not(second)))
	case formula.OpXor: // a+b == ~(~(a&~b)&~(~a&b))
		left := formula.And(first, formula.Not(second))
		right := formula.And(formula.Not(first), second)
		return formula.Not(formula.And(formula.Not(left), formula.Not(right)))
	case formula.OpIff: // a<->b == ~(a+b)
		return formula.Not(ToNotAnd(formula.Xor(f.First(), f.Second())))
	case formula.OpNand:
		return formula.Not(formula.And(first, second))
	case formula.OpNor: // a-|b == ~a&~b
		return formula.And(formula.Not(first), formula.Not(second))
	}
	panic(fmt.Sprintf("unknown operator %s", f.Op()))
}

// ToNand returns a formula with the same truth table as f that contains no
// constants or operators beyond -&. The input is first normalized to the
// {~,&} basis, then both remaining operators are encoded as nands:
// ~a == (a-&a) and a&b == ((a-&b)-&(a-&b)).
func ToNand(f *formula.Formula) *formula.Formula {
	return nandRec(ToNotAnd(f))
}

func nandRec(f *formula.Formula) *formula.Formula {
	switch f.Op() {
	case formula.OpVar:
		return f
	case formula.OpNot:
		inner := nandRec(f.First())
		return formula.Nand(inner, inner)
	case formula.OpAnd:
		nand := formula.Nand(nandRec(f.First()), nandRec(f.Second()))
		return formula.Nand(nand, nand)
	}
	panic(fmt.Sprintf("unexpected operator %s in {~,&} formula", f.Op()))
}

// ToImpliesNot returns a formula with the same truth table as f that
// contains no constants or operators beyond -> and ~.
func ToImpliesNot(f *formula.Formula) *formula.Formula {
	imp := formula.Implies
	neg := formula.Not
	switch f.Op() {
	case formula.OpVar:
		return f
	case formula.OpTrue, formula.OpFalse:
		p := formula.Var(helperVar)
		tautology := imp(p, p)
		if f.Op() == formula.OpTrue {
			return tautology
		}
		return neg(tautology)
	case formula.OpNot:
		return neg(ToImpliesNot(f.First()))
	}
	first := ToImpliesNot(f.First())
	second := ToImpliesNot(f.Second())
	switch f.Op() {
	case formula.OpImplies:
		return imp(first, second)
	case formula.OpOr: // a|b == ~a->b
		return imp(neg(first), second)
	case formula.OpAnd: // a&b == ~(a->~b)
		return neg(imp(first, neg(second)))
	case formula.OpXor: // a+b == (a->b)->~(b->a)
		return imp(imp(first, second), neg(imp(second, first)))
	case formula.OpIff: // a<->b == ~(a+b)
		return neg(imp(imp(first, second), neg(imp(second, first))))
	case formula.OpNand: // a-&b == a->~b
		return imp(first, neg(second))
	case formula.OpNor: // a-|b == ~(~a->b)
		return neg(imp(neg(first), second))
	}
	panic(fmt.Sprintf("unknown operator %s", f.Op()))
}

// ToImpliesFalse returns a formula with the same truth table as f that
// contains no constants or operators beyond -> and F. The input is first
// normalized to the {->,~} basis, then every negation is encoded as
// ~a == (a->F).
func ToImpliesFalse(f *formula.Formula) *formula.Formula {
	return impliesFalseRec(ToImpliesNot(f))
}

func impliesFalseRec(f *formula.Formula) *formula.Formula {
	switch f.Op() {
	case formula.OpVar:
		return f
	case formula.OpNot:
		return formula.Implies(impliesFalseRec(f.First()), formula.False())
	case formula.OpImplies:
		return formula.Implies(impliesFalseRec(f.First()), impliesFalseRec(f.Second()))
	}
	panic(fmt.Sprintf("unexpected operator %s in {->,~} formula", f.Op()))
}
