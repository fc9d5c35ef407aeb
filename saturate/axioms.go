package saturate

import "github.com/xDarkicex/prover/formula"

// StandardAxioms returns the three Hilbert schemata spec.md §6 requires
// as the opening entries of any axiom list:
//
//  1. a>(b>a)
//  2. (a>(b>c))>((a>b)>(a>c))
//  3. (!a>!b)>((!a>b)>a)
//
// §6's lowercase spelling is read as informal schema notation, not a
// literal instruction to build Constant leaves: §8's worked example 4
// substitutes "A -> A, B -> B" into axiom 1, which only type-checks if
// its leaves are Variable-kind (DESIGN.md, Open-question resolution (d)).
// Each call returns a fresh copy; callers are free to mutate their own.
func StandardAxioms() []formula.Formula {
	return []formula.Formula{axiom1(), axiom2(), axiom3()}
}

// axiom1 builds a>(b>a), variables a=1, b=2.
func axiom1() formula.Formula {
	a, b := formula.Variable(1, false), formula.Variable(2, false)
	return formula.Construct(a, formula.Impl, formula.Construct(b, formula.Impl, formula.Variable(1, false)))
}

// axiom2 builds (a>(b>c))>((a>b)>(a>c)), variables a=1, b=2, c=3.
func axiom2() formula.Formula {
	v := func(i int) formula.Formula { return formula.Variable(i, false) }
	left := formula.Construct(v(1), formula.Impl, formula.Construct(v(2), formula.Impl, v(3)))
	right := formula.Construct(
		formula.Construct(v(1), formula.Impl, v(2)),
		formula.Impl,
		formula.Construct(v(1), formula.Impl, v(3)),
	)
	return formula.Construct(left, formula.Impl, right)
}

// axiom3 builds (!a>!b)>((!a>b)>a), variables a=1, b=2.
func axiom3() formula.Formula {
	notA, notB := formula.Variable(1, true), formula.Variable(2, true)
	left := formula.Construct(notA, formula.Impl, notB)
	right := formula.Construct(
		formula.Construct(formula.Variable(1, true), formula.Impl, formula.Variable(2, false)),
		formula.Impl,
		formula.Variable(1, false),
	)
	return formula.Construct(left, formula.Impl, right)
}

// ContrapositionLemma builds (!a>!b)>(b>a), the §4.D step 1 "hard-coded
// lemma" enqueued alongside the axioms at the start of every run.
func ContrapositionLemma() formula.Formula {
	notA, notB := formula.Variable(1, true), formula.Variable(2, true)
	return formula.Construct(
		formula.Construct(notA, formula.Impl, notB),
		formula.Impl,
		formula.Construct(formula.Variable(2, false), formula.Impl, formula.Variable(1, false)),
	)
}
