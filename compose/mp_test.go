package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/prover/formula"
)

func TestModusPonensEmptyInputsReturnEmpty(t *testing.T) {
	a := formula.Variable(1, false)
	b := formula.Construct(formula.Variable(1, false), formula.Impl, formula.Variable(2, false))

	assert.True(t, ModusPonens(formula.Formula{}, b).Empty())
	assert.True(t, ModusPonens(a, formula.Formula{}).Empty())
}

func TestModusPonensNonImplicationReturnsEmpty(t *testing.T) {
	a := formula.Variable(1, false)
	b := formula.Construct(formula.Variable(1, false), formula.And, formula.Variable(2, false))

	assert.True(t, ModusPonens(a, b).Empty())
}

func TestModusPonensUnificationFailureReturnsEmpty(t *testing.T) {
	a := formula.Constant(1, false)
	b := formula.Construct(formula.Constant(2, false), formula.Impl, formula.Variable(1, false))

	assert.True(t, ModusPonens(a, b).Empty())
}

func TestModusPonensDerivesConsequent(t *testing.T) {
	// axiom 1: A>(B>A); A := p, B := q  =>  p>(q>p)
	axiom1 := formula.Construct(
		formula.Variable(1, false),
		formula.Impl,
		formula.Construct(formula.Variable(2, false), formula.Impl, formula.Variable(1, false)),
	)
	p := formula.Constant(7, false)
	out := ModusPonens(p, axiom1)
	require.False(t, out.Empty())
	// Only A binds to p; B is left free and renumbers to the sole
	// remaining variable identity under Normalize.
	assert.Equal(t, "A>g", out.String())
}

func TestModusPonensSoundnessAgainstUnifier(t *testing.T) {
	// mp(A, B) must equal B's consequent under the σ that unified A
	// against B's antecedent (§8's universal invariant for mp).
	a := formula.Construct(formula.Variable(1, false), formula.And, formula.Variable(2, false))
	b := formula.Construct(
		formula.Construct(formula.Variable(3, false), formula.And, formula.Variable(4, false)),
		formula.Impl,
		formula.Variable(5, false),
	)

	out := ModusPonens(a, b)
	require.False(t, out.Empty())

	// B's antecedent is shaped exactly like A (A*B), so A itself satisfies
	// B's antecedent schema with the identity substitution; the
	// consequent variable is unconstrained and must come back unbound.
	assert.Equal(t, formula.Canonical(formula.Variable(1, false)), formula.Canonical(out))
}

func TestModusPonensLeavesUnrelatedConsequentVariableFree(t *testing.T) {
	// axiom1: A>(B>A); A bound directly to a Constant (no fresh-witness
	// mint involved), B must survive into the consequent as a free
	// variable, distinct from the bound leaf.
	axiom1 := formula.Construct(
		formula.Variable(1, false),
		formula.Impl,
		formula.Construct(formula.Variable(2, false), formula.Impl, formula.Variable(1, false)),
	)
	a := formula.Constant(3, false)
	out := ModusPonens(a, axiom1)
	require.False(t, out.Empty())
	assert.Equal(t, "A>c", out.String())
}
