package formula

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// aImplB builds A>B (Variables A=1, B=2).
func aImplB() Formula {
	return Construct(Variable(1, false), Impl, Variable(2, false))
}

func TestConstructAndString(t *testing.T) {
	f := aImplB()
	assert.Equal(t, "A>B", f.String())
	assert.Equal(t, 3, f.Len())
}

func TestSubtreeCopyStructuralEquality(t *testing.T) {
	f := Construct(aImplB(), And, Variable(3, true))
	cp := f.SubtreeCopy(f.Root())

	require.True(t, Equal(f, cp, true))
	fNorm, cpNorm := f.SubtreeCopy(f.Root()), cp.SubtreeCopy(cp.Root())
	fNorm.Normalize()
	cpNorm.Normalize()
	assert.Equal(t, fNorm.String(), cpNorm.String())
}

func TestSubtreeCopyProducesStructurallyIdenticalNodeVector(t *testing.T) {
	f := Construct(aImplB(), And, Variable(3, true))
	cp := f.SubtreeCopy(f.Root())

	if diff := cmp.Diff(f.Nodes, cp.Nodes); diff != "" {
		t.Errorf("SubtreeCopy produced a different node vector (-want +got):\n%s", diff)
	}
}

func TestNegateLeafIsInvolution(t *testing.T) {
	f := Variable(1, false)
	f.Negate(f.Root())
	assert.Equal(t, "!A", f.String())
	f.Negate(f.Root())
	assert.Equal(t, "A", f.String())
}

func TestNegateImplAndAndFollowDeMorganDuals(t *testing.T) {
	// Negate(Impl(A,B)) == And(A, !B): ¬(A→B) ≡ A∧¬B.
	f := aImplB()
	f.Negate(f.Root())
	assert.Equal(t, "A*!B", f.String())

	// Negate(And(A,B)) == Or(!A,!B): ¬(A∧B) ≡ ¬A∨¬B.
	g := Construct(Variable(1, false), And, Variable(2, false))
	g.Negate(g.Root())
	assert.Equal(t, "!A|!B", g.String())
}

func TestChangeVariablesShiftsPrintedLetters(t *testing.T) {
	f := aImplB()
	f.ChangeVariables(5)
	// min was 1, bound 5 => shift +4: A(1)->E(5), B(2)->F(6)
	assert.Equal(t, "E>F", f.String())
}

func TestStandardizeEliminatesOr(t *testing.T) {
	f := Construct(Variable(1, false), Or, Variable(2, false))
	f.Standardize()
	for _, n := range f.Nodes {
		assert.NotEqual(t, Or, n.Op, "standardize must not leave an Or connective")
	}
	assert.Equal(t, "!A>B", f.String())
}

func TestNormalizeCanonicalFormMatchesAlphaEquivalence(t *testing.T) {
	f := Construct(Variable(7, false), Impl, Variable(3, false))
	g := Construct(Variable(2, false), Impl, Variable(9, false))

	assert.Equal(t, Canonical(f), Canonical(g))
}

func TestMakePermanentLocksVariables(t *testing.T) {
	f := aImplB()
	f.MakePermanent()
	assert.Equal(t, "a>b", f.String())
	for _, n := range f.Nodes {
		assert.NotEqual(t, KindVariable, n.Kind)
	}
}

func TestReplaceGraftsFreshCopyPerOccurrence(t *testing.T) {
	// (A>A) with A replaced by (B*C) should graft two independent copies.
	f := Construct(Variable(1, false), Impl, Variable(1, false))
	phi := Construct(Variable(2, false), And, Variable(3, false))

	out := f.Replace(1, phi)
	assert.Equal(t, "(B*C)>(B*C)", out.String())
	// f itself is untouched.
	assert.Equal(t, "A>A", f.String())
}

func TestReplaceHonorsNegatedOccurrence(t *testing.T) {
	f := Variable(1, true) // !A
	phi := Construct(Variable(2, false), And, Variable(3, false))
	out := f.Replace(1, phi)
	assert.Equal(t, "!B|!C", out.String())
}

func TestReplaceAbsentVariableIsNoOp(t *testing.T) {
	f := aImplB()
	out := f.Replace(99, Constant(1, false))
	assert.Equal(t, f.String(), out.String())
}

func TestVariablesOccurrenceOrder(t *testing.T) {
	f := Construct(Construct(Variable(3, false), And, Variable(1, false)), Impl, Variable(2, false))
	assert.Equal(t, []int{3, 1, 2}, f.Variables())
}

func TestMaxMinValue(t *testing.T) {
	f := Construct(Variable(5, false), And, Variable(2, false))
	assert.Equal(t, 5, f.MaxValue())
	assert.Equal(t, 2, f.MinValue())

	empty := Formula{}
	assert.Equal(t, 0, empty.MaxValue())
	assert.Equal(t, 0, empty.MinValue())
}

func TestSubtreeInvalidIndexReturnsEmptyRelation(t *testing.T) {
	f := aImplB()
	assert.Equal(t, emptyRelation(), f.Subtree(Invalid))
	assert.Equal(t, emptyRelation(), f.Subtree(100))
}
