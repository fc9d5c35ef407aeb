package formula

// Equal reports structural equality between a and b over their node
// vectors. A Function node is equal only to another Function node with
// the same connective and equal children; a Function is never equal to
// a non-Function. A leaf is equal only to a leaf of the same Op
// (polarity) and Value; whether its Kind must also match is governed by
// varIgnore.
//
// varIgnore selects §4.A's equals(var_ignore) reading: when true, a
// Variable leaf and a Constant leaf of equal Op and Value compare equal
// — the reading proof matching needs to compare a locked (Constant)
// target against Variable-kind theorem schemata. When false, Kind must
// match too, giving plain structural equality. Either way the caller is
// expected to have already run Normalize on both formulas so that
// α-equivalent formulas carry identical Variable identities before
// Equal ever runs; Equal itself never renames or reconciles variable
// spaces.
func Equal(a, b Formula, varIgnore bool) bool {
	return equalAt(a, a.Root(), b, b.Root(), varIgnore)
}

func equalAt(a Formula, ai int, b Formula, bi int, varIgnore bool) bool {
	if ai == Invalid && bi == Invalid {
		return true
	}
	if ai == Invalid || bi == Invalid {
		return false
	}
	na, nb := a.Nodes[ai], b.Nodes[bi]

	aFn, bFn := na.Kind == KindFunction, nb.Kind == KindFunction
	if aFn != bFn {
		return false
	}
	if aFn {
		if na.Op != nb.Op {
			return false
		}
		return equalAt(a, na.Left, b, nb.Left, varIgnore) && equalAt(a, na.Right, b, nb.Right, varIgnore)
	}
	if na.Op != nb.Op || na.Value != nb.Value {
		return false
	}
	return varIgnore || na.Kind == nb.Kind
}
