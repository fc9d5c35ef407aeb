// Package compose implements the modus-ponens composer (§4.C): given a
// proved formula A and a proved implication B, derive B's consequent
// under the substitution that lets A stand in for B's antecedent.
package compose

import (
	"github.com/xDarkicex/prover/formula"
	"github.com/xDarkicex/prover/internal/unify"
)

// ModusPonens derives the consequent of B under A, or the empty Formula
// if A or B is empty, B's root is not an Impl, or A does not unify
// against B's antecedent (§4.C, §8: "Empty formula inputs to mp return
// empty", "mp(A, B) with B not an implication returns empty").
//
// B is normalized internally before use. That guarantees its antecedent
// subtree and the whole formula share the same MinValue — the left
// child of a normalized Impl root always carries the formula's lowest
// variable identity, since Normalize assigns identities in left-to-right
// occurrence order — which in turn guarantees that the variable rebase
// unify.Unify applies internally to the antecedent copy it receives and
// the rebase ModusPonens applies to its own whole-formula copy land on
// the exact same shifted identities. Without that shared MinValue the
// two rebases would diverge and σ's keys would no longer line up with R.
func ModusPonens(a, b formula.Formula) formula.Formula {
	if a.Empty() || b.Empty() {
		return formula.Formula{}
	}

	bn := b.SubtreeCopy(b.Root())
	bn.Normalize()

	root := bn.Nodes[bn.Root()]
	if root.Kind != formula.KindFunction || root.Op != formula.Impl {
		return formula.Formula{}
	}

	antecedent := bn.SubtreeCopy(root.Left)
	sigma, ok := unify.Unify(a, antecedent)
	if !ok {
		return formula.Formula{}
	}

	r := bn.SubtreeCopy(bn.Root())
	r.ChangeVariables(a.MaxValue() + 1)

	seen := make(map[int]bool)
	for _, v := range r.Variables() {
		if seen[v] {
			continue
		}
		seen[v] = true
		if _, bound := sigma[v]; !bound {
			continue
		}
		resolved := unify.Resolve(v, sigma)
		r = r.Replace(v, resolved)
	}

	consequent := r.SubtreeCopy(r.Nodes[r.Root()].Right)
	consequent.Normalize()
	return consequent
}
