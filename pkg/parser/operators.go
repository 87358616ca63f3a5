package parser

import "sort"

// DefaultOperators is the set of Symbol texts accepted as binary operators
// in assignment expressions: bitwise and, or, xor and the arithmetic
// operators the subset carries. '~' is unary in Verilog and is excluded.
var DefaultOperators = []string{"&", "|", "^", "+", "-", "*"}

// OperatorSet decides which Symbol tokens act as binary operators.
type OperatorSet struct {
	ops map[string]struct{}
}

// NewOperatorSet builds a set from operator spellings.
func NewOperatorSet(ops ...string) OperatorSet {
	s := OperatorSet{ops: make(map[string]struct{}, len(ops))}
	for _, op := range ops {
		s.ops[op] = struct{}{}
	}
	return s
}

// Contains reports whether op is a binary operator.
func (s OperatorSet) Contains(op string) bool {
	_, ok := s.ops[op]
	return ok
}

// List returns the operators in sorted order.
func (s OperatorSet) List() []string {
	out := make([]string, 0, len(s.ops))
	for op := range s.ops {
		out = append(out, op)
	}
	sort.Strings(out)
	return out
}

// IsOperatorText reports whether op could ever be produced as an operator
// token: a single Symbol character other than the ';' terminator.
func IsOperatorText(op string) bool {
	return len(op) == 1 && isSymbol(op[0]) && op != ";"
}
