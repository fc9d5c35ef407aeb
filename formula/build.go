package formula

// Variable returns a single-node Formula for the variable with the given
// 1-based identity, negated if neg is true.
func Variable(value int, neg bool) Formula {
	op := Nop
	if neg {
		op = Not
	}
	return Formula{Nodes: []Node{{
		Term:     Term{Kind: KindVariable, Op: op, Value: value},
		Relation: Relation{Self: 0, Left: Invalid, Right: Invalid, Parent: Invalid},
	}}}
}

// Constant returns a single-node Formula for the constant with the given
// 1-based identity, negated if neg is true.
func Constant(value int, neg bool) Formula {
	op := Nop
	if neg {
		op = Not
	}
	return Formula{Nodes: []Node{{
		Term:     Term{Kind: KindConstant, Op: op, Value: value},
		Relation: Relation{Self: 0, Left: Invalid, Right: Invalid, Parent: Invalid},
	}}}
}
