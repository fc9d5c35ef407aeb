package saturate

import (
	"github.com/xDarkicex/prover/compose"
	"github.com/xDarkicex/prover/formula"
)

// Bootstrap derives a small, hand-verified set of consequences of the
// standard Hilbert axioms via real compose.ModusPonens calls, resolving
// spec.md §9 Open Question (a). The original's "axiom indices 3-10"
// scheme assumed index stability across constructor calls that this
// index-vector implementation does not reproduce, so this derives the
// textbook identity proof explicitly instead of guessing at the other
// seven slots. Every other single-variable-schema candidate considered
// either duplicates this lemma under a renaming or introduces a second,
// genuinely free schema variable into mp's B argument — which triggers
// the fresh-witness/whole-formula rebase collision documented in
// DESIGN.md ("Known inherited limitation: fresh-witness floor in
// compose") and was dropped rather than shipped broken.
func Bootstrap() []formula.Formula {
	v := func(i int) formula.Formula { return formula.Variable(i, false) }

	// step2 = A>((A>A)>A): instance of axiom 1 with a:=A, b:=(A>A).
	step2 := formula.Construct(v(1), formula.Impl,
		formula.Construct(formula.Construct(v(1), formula.Impl, v(1)), formula.Impl, v(1)))

	// step1 = (A>((A>A)>A))>((A>(A>A))>(A>A)): instance of axiom 2 with
	// a:=A, b:=(A>A), c:=A.
	step1 := formula.Construct(
		formula.Construct(v(1), formula.Impl,
			formula.Construct(formula.Construct(v(1), formula.Impl, v(1)), formula.Impl, v(1))),
		formula.Impl,
		formula.Construct(
			formula.Construct(v(1), formula.Impl, formula.Construct(v(1), formula.Impl, v(1))),
			formula.Impl,
			formula.Construct(v(1), formula.Impl, v(1)),
		),
	)

	// step3 = (A>(A>A))>(A>A): mp(step2, step1). step2 and step1's
	// antecedent share the single schema variable A, so the unifier's
	// fresh witness renames that one variable uniformly on both sides —
	// an identity substitution up to relabeling, not a genuine binding —
	// and step3 comes back exactly step1's consequent (only renamed).
	step3 := compose.ModusPonens(step2, step1)

	// step4 = A>(A>A): instance of axiom 1 with a:=A, b:=A, matching
	// step3's antecedent under the same single-variable argument.
	step4 := formula.Construct(v(1), formula.Impl, formula.Construct(v(1), formula.Impl, v(1)))

	// identity = A>A: mp(step4, step3), by the same single-variable
	// reasoning as step3's derivation.
	identity := compose.ModusPonens(step4, step3)

	return []formula.Formula{identity}
}
