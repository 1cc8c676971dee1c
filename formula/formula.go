package formula

import (
	"fmt"
	"sort"
)

// An Op identifies what a formula node is: a variable, one of the two
// constants, or one of the unary/binary operators.
type Op uint8

// The full set of node tags. Every switch over an Op must handle all of
// them; an out-of-range tag means the tree was corrupted.
const (
	OpVar Op = iota
	OpTrue
	OpFalse
	OpNot
	OpAnd
	OpOr
	OpImplies
	OpXor
	OpIff
	OpNand
	OpNor
)

// String returns the surface syntax of the operator, as understood by Parse.
func (op Op) String() string {
	switch op {
	case OpVar:
		return "var"
	case OpTrue:
		return "T"
	case OpFalse:
		return "F"
	case OpNot:
		return "~"
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpImplies:
		return "->"
	case OpXor:
		return "+"
	case OpIff:
		return "<->"
	case OpNand:
		return "-&"
	case OpNor:
		return "-|"
	}
	return fmt.Sprintf("Op(%d)", op)
}

// A Formula is an immutable propositional formula tree.
// Nodes are never modified after construction, so a formula can be shared,
// evaluated and rewritten freely, including from several goroutines at once.
type Formula struct {
	op     Op
	name   string // variable name, only set when op == OpVar
	first  *Formula
	second *Formula
}

// Op returns the tag identifying this node.
func (f *Formula) Op() Op { return f.op }

// Name returns the variable name of an OpVar node, and "" for any other node.
func (f *Formula) Name() string { return f.name }

// First returns the sole operand of a unary node, or the left operand of a
// binary node. It is nil for leaves.
func (f *Formula) First() *Formula { return f.first }

// Second returns the right operand of a binary node. It is nil for leaves
// and unary nodes.
func (f *Formula) Second() *Formula { return f.second }

// Var builds a named boolean variable.
func Var(name string) *Formula {
	return &Formula{op: OpVar, name: name}
}

// True builds the constant T.
func True() *Formula { return &Formula{op: OpTrue} }

// False builds the constant F.
func False() *Formula { return &Formula{op: OpFalse} }

// Not builds the negation of f.
func Not(f *Formula) *Formula {
	return &Formula{op: OpNot, first: f}
}

// And builds the conjunction of a and b.
func And(a, b *Formula) *Formula {
	return &Formula{op: OpAnd, first: a, second: b}
}

// Or builds the disjunction of a and b.
func Or(a, b *Formula) *Formula {
	return &Formula{op: OpOr, first: a, second: b}
}

// Implies builds the implication from a to b.
func Implies(a, b *Formula) *Formula {
	return &Formula{op: OpImplies, first: a, second: b}
}

// Xor builds the exclusive disjunction of a and b.
func Xor(a, b *Formula) *Formula {
	return &Formula{op: OpXor, first: a, second: b}
}

// Iff builds the biconditional between a and b.
func Iff(a, b *Formula) *Formula {
	return &Formula{op: OpIff, first: a, second: b}
}

// Nand builds the negated conjunction of a and b.
func Nand(a, b *Formula) *Formula {
	return &Formula{op: OpNand, first: a, second: b}
}

// Nor builds the negated disjunction of a and b.
func Nor(a, b *Formula) *Formula {
	return &Formula{op: OpNor, first: a, second: b}
}

// String returns the formula in the syntax understood by Parse: every binary
// application is wrapped in parentheses, negation binds to its operand.
func (f *Formula) String() string {
	switch f.op {
	case OpVar:
		return f.name
	case OpTrue:
		return "T"
	case OpFalse:
		return "F"
	case OpNot:
		return "~" + f.first.String()
	case OpAnd, OpOr, OpImplies, OpXor, OpIff, OpNand, OpNor:
		return "(" + f.first.String() + f.op.String() + f.second.String() + ")"
	}
	panic(fmt.Sprintf("unknown operator %s", f.op))
}

// Eval returns the truth value of the formula under the given model.
// It panics if the model lacks a binding for one of the formula's variables.
func (f *Formula) Eval(model map[string]bool) bool {
	switch f.op {
	case OpVar:
		b, ok := model[f.name]
		if !ok {
			panic(fmt.Errorf("model lacks binding for variable %s", f.name))
		}
		return b
	case OpTrue:
		return true
	case OpFalse:
		return false
	case OpNot:
		return !f.first.Eval(model)
	case OpAnd:
		return f.first.Eval(model) && f.second.Eval(model)
	case OpOr:
		return f.first.Eval(model) || f.second.Eval(model)
	case OpImplies:
		return !f.first.Eval(model) || f.second.Eval(model)
	case OpXor:
		return f.first.Eval(model) != f.second.Eval(model)
	case OpIff:
		return f.first.Eval(model) == f.second.Eval(model)
	case OpNand:
		return !(f.first.Eval(model) && f.second.Eval(model))
	case OpNor:
		return !(f.first.Eval(model) || f.second.Eval(model))
	}
	panic(fmt.Sprintf("unknown operator %s", f.op))
}

// Vars returns the sorted names of the distinct variables occurring in f.
func (f *Formula) Vars() []string {
	seen := make(map[string]bool)
	f.collectVars(seen)
	vars := make([]string, 0, len(seen))
	for name := range seen {
		vars = append(vars, name)
	}
	sort.Strings(vars)
	return vars
}

func (f *Formula) collectVars(seen map[string]bool) {
	if f.op == OpVar {
		seen[f.name] = true
		return
	}
	if f.first != nil {
		f.first.collectVars(seen)
	}
	if f.second != nil {
		f.second.collectVars(seen)
	}
}

// Ops returns the set of tags occurring anywhere in f.
func (f *Formula) Ops() map[Op]bool {
	ops := make(map[Op]bool)
	f.collectOps(ops)
	return ops
}

func (f *Formula) collectOps(ops map[Op]bool) {
	ops[f.op] = true
	if f.first != nil {
		f.first.collectOps(ops)
	}
	if f.second != nil {
		f.second.collectOps(ops)
	}
}

// Equivalent reports whether f and g have the same truth table, by evaluating
// both under all assignments to the union of their variables. The cost is
// exponential in the number of variables; it is meant for small formulas.
func Equivalent(f, g *Formula) bool {
	seen := make(map[string]bool)
	f.collectVars(seen)
	g.collectVars(seen)
	vars := make([]string, 0, len(seen))
	for name := range seen {
		vars = append(vars, name)
	}
	sort.Strings(vars)
	model := make(map[string]bool, len(vars))
	for bits := 0; bits < 1<<uint(len(vars)); bits++ {
		for i, name := range vars {
			model[name] = bits&(1<<uint(i)) != 0
		}
		if f.Eval(model) != g.Eval(model) {
			return false
		}
	}
	return true
}
