// Package basis rewrites propositional formulas so that they only use a
// restricted set of operators, while preserving their truth table.
//
// Five target bases are supported. ToNotAndOr eliminates constants,
// implications, biconditionals, xors, nands and nors in favor of ~, & and |.
// ToNotAnd additionally eliminates | with De Morgan's law, and ToNand then
// encodes both remaining operators as nands, yielding an equivalent formula
// built from a single connective. Independently, ToImpliesNot rewrites
// everything in terms of -> and ~, and ToImpliesFalse eliminates the
// remaining negations as implications of the constant F.
//
// Every conversion is a pure function from one immutable formula to a newly
// built one; the input tree is never touched. Constants are encoded as
// tautologies or contradictions over a helper variable named p, e.g.
// ToNotAndOr rewrites T as (p|~p).
package basis
