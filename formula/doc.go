// Package formula defines immutable propositional formula trees.
//
// A formula is either a variable, one of the constants T and F, a negation,
// or a binary application of one of the connectives &, |, ->, + (xor), <->,
// -& (nand) and -| (nor). Trees are built with the constructor functions and
// are never mutated afterwards, so they can be shared and rewritten freely.
//
// For example, the formula !(x & y) -> (x xor z) is built as:
//
//	f := Implies(Not(And(Var("x"), Var("y"))), Xor(Var("x"), Var("z")))
//
// or parsed from its textual form:
//
//	f, err := ParseString("~(x&y) -> (x+z)")
//
// Formulas can be printed back with String, evaluated under a model with
// Eval, and compared for semantic equality with Equivalent.
package formula
