package basis

import (
	"fmt"

	"github.com/logic-tools/proplog/formula"
)

// A Basis is a restricted set of operators and constants that a converted
// formula is allowed to use. Variables are legal in every basis.
type Basis uint8

// The five supported target bases.
const (
	NotAndOr Basis = iota // ~, &, |
	NotAnd                // ~, &
	NandOnly              // -&
	ImpliesNot            // ->, ~
	ImpliesFalse          // ->, F
)

// String returns the name understood by ParseBasis.
func (b Basis) String() string {
	switch b {
	case NotAndOr:
		return "not-and-or"
	case NotAnd:
		return "not-and"
	case NandOnly:
		return "nand"
	case ImpliesNot:
		return "implies-not"
	case ImpliesFalse:
		return "implies-false"
	}
	return fmt.Sprintf("Basis(%d)", b)
}

// ParseBasis returns the basis with the given name.
func ParseBasis(name string) (Basis, error) {
	for _, b := range []Basis{NotAndOr, NotAnd, NandOnly, ImpliesNot, ImpliesFalse} {
		if b.String() == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown basis %q", name)
}

// Allows reports whether formulas restricted to this basis may contain the
// given operator.
func (b Basis) Allows(op formula.Op) bool {
	if op == formula.OpVar {
		return true
	}
	switch b {
	case NotAndOr:
		return op == formula.OpNot || op == formula.OpAnd || op == formula.OpOr
	case NotAnd:
		return op == formula.OpNot || op == formula.OpAnd
	case NandOnly:
		return op == formula.OpNand
	case ImpliesNot:
		return op == formula.OpImplies || op == formula.OpNot
	case ImpliesFalse:
		return op == formula.OpImplies || op == formula.OpFalse
	}
	panic(fmt.Sprintf("unknown basis %s", b))
}

// Holds reports whether every operator and constant occurring in f belongs
// to this basis.
func (b Basis) Holds(f *formula.Formula) bool {
	for op := range f.Ops() {
		if !b.Allows(op) {
			return false
		}
	}
	return true
}
