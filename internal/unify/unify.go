// Package unify implements the negation-aware first-order unifier over
// formula.Formula trees (§4.B): a most-general substitution σ such that
// σ(L) and σ(R) become structurally equal, where a Variable may bind to
// either a formula φ or its negation ¬φ depending on the polarity the
// variable carries at each occurrence.
package unify

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/xDarkicex/prover/formula"
)

// Substitution maps a variable identity to its replacement Formula. A
// variable may map to a Formula whose own root is another Variable;
// chains are resolved on demand by Resolve, not eagerly by Unify, except
// for the single closure pass Unify runs before returning (§4.B
// "Post-pass").
type Substitution map[int]formula.Formula

type pair struct{ left, right int }

// Unify returns a substitution σ such that σ(L) ≡ σ(R), or ok=false if
// no such σ exists. L and R are never mutated; Unify works over private
// subtree copies throughout.
func Unify(l, r formula.Formula) (sigma Substitution, ok bool) {
	lw := l.SubtreeCopy(l.Root())
	rw := r.SubtreeCopy(r.Root())
	rw.ChangeVariables(lw.MaxValue() + 1)
	fresh := rw.MaxValue() + 1

	sigma = Substitution{}
	queue := []pair{{lw.Root(), rw.Root()}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		ln, rn := lw.Nodes[p.left], rw.Nodes[p.right]
		if ln.Kind == formula.KindFunction && rn.Kind == formula.KindFunction {
			if ln.Op != rn.Op {
				return nil, false
			}
			queue = append(queue, pair{ln.Left, rn.Left}, pair{ln.Right, rn.Right})
			continue
		}

		cl := dereferenceChain(lw.SubtreeCopy(p.left), sigma)
		cr := dereferenceChain(rw.SubtreeCopy(p.right), sigma)
		if !resolvePair(cl, cr, sigma, &fresh) {
			return nil, false
		}
	}

	if !closeSubstitution(sigma) {
		return nil, false
	}
	return sigma, true
}

// dereferenceChain follows f through σ while its root is a bound
// Variable, negating the looked-up image whenever the chain's current
// link carries Not polarity, and returns the first non-chaining formula
// reached (a Constant, an unbound Variable, or a Function subtree).
func dereferenceChain(f formula.Formula, sigma Substitution) formula.Formula {
	for {
		root := f.Nodes[f.Root()]
		if root.Kind != formula.KindVariable {
			return f
		}
		image, bound := sigma[root.Value]
		if !bound {
			return f
		}
		next := image.SubtreeCopy(image.Root())
		if root.Op == formula.Not {
			next.Negate(next.Root())
		}
		f = next
	}
}

// Resolve is dereferenceChain's public face, used by compose.ModusPonens
// (§4.C step 5) to resolve a bare variable identity through an already
// computed σ with the same polarity handling the unifier itself uses.
func Resolve(v int, sigma Substitution) formula.Formula {
	return dereferenceChain(formula.Variable(v, false), sigma)
}

// resolvePair case-analyses two already-dereferenced roots (§4.B step 3).
func resolvePair(cl, cr formula.Formula, sigma Substitution, fresh *int) bool {
	lt := cl.Nodes[cl.Root()].Term
	rt := cr.Nodes[cr.Root()].Term

	switch {
	case lt.Kind == formula.KindConstant && rt.Kind == formula.KindConstant:
		return lt.Value == rt.Value && lt.Op == rt.Op

	case lt.Kind == formula.KindConstant && rt.Kind == formula.KindVariable:
		return bindToAtom(rt, cl, sigma)
	case lt.Kind == formula.KindVariable && rt.Kind == formula.KindConstant:
		return bindToAtom(lt, cr, sigma)

	case lt.Kind == formula.KindVariable && rt.Kind == formula.KindVariable:
		if lt.Value == rt.Value {
			return lt.Op == rt.Op
		}
		return bindFreshWitness(lt, rt, sigma, fresh)

	case lt.Kind == formula.KindFunction && rt.Kind == formula.KindVariable:
		return bindToAtom(rt, cl, sigma)
	case lt.Kind == formula.KindVariable && rt.Kind == formula.KindFunction:
		return bindToAtom(lt, cr, sigma)

	default:
		return false
	}
}

// bindToAtom binds a Variable to the other (Constant or Function) side,
// negating a copy of that side first when the Variable carries Not
// polarity (§4.B: "Constant vs Variable" and "Function vs Variable").
func bindToAtom(v formula.Term, other formula.Formula, sigma Substitution) bool {
	img := other.SubtreeCopy(other.Root())
	if v.Op == formula.Not {
		img.Negate(img.Root())
	}
	return addConstraint(v.Value, img, sigma)
}

// bindFreshWitness handles Variable/Variable pairs of distinct identity:
// mint a fresh Variable V, and bind each side to V or ¬V depending on
// its polarity so both reduce to the same witness under dereferenceChain.
func bindFreshWitness(l, r formula.Term, sigma Substitution, fresh *int) bool {
	vid := *fresh
	*fresh++
	pos := formula.Variable(vid, false)
	neg := formula.Variable(vid, true)

	limg, rimg := pos, pos
	if l.Op == formula.Not {
		limg = neg
	}
	if r.Op == formula.Not {
		rimg = neg
	}
	if !addConstraint(l.Value, limg, sigma) {
		return false
	}
	return addConstraint(r.Value, rimg, sigma)
}

// addConstraint records σ[x] := φ, failing the occurs-check when φ is a
// Function subtree that already contains an occurrence of x.
func addConstraint(x int, phi formula.Formula, sigma Substitution) bool {
	if phi.Nodes[phi.Root()].Kind == formula.KindFunction && occurs(phi, x) {
		return false
	}
	sigma[x] = phi
	return true
}

// occurs reports whether variable identity x appears anywhere in phi,
// using a bitset over the variable identity space rather than a linear
// rescan for every add_constraint call.
func occurs(phi formula.Formula, x int) bool {
	vars := phi.Variables()
	if len(vars) == 0 {
		return false
	}
	max := x
	for _, v := range vars {
		if v > max {
			max = v
		}
	}
	seen := bitset.New(uint(max + 1))
	for _, v := range vars {
		seen.Set(uint(v))
	}
	return seen.Test(uint(x))
}

// closeSubstitution is §4.B's post-pass: for every σ-bound variable
// whose image is a Function, resolve any of its own contained variables
// that are themselves bound in σ, substituting the resolved value in
// place. A resolved replacement that still contains the variable being
// closed over is a cycle, and fails the whole unification.
func closeSubstitution(sigma Substitution) bool {
	for x, phi := range sigma {
		if phi.Nodes[phi.Root()].Kind != formula.KindFunction {
			continue
		}
		seen := make(map[int]bool)
		for _, w := range phi.Variables() {
			if seen[w] {
				continue
			}
			seen[w] = true
			if _, bound := sigma[w]; !bound {
				continue
			}
			resolved := Resolve(w, sigma)
			if containsVariable(resolved, x) {
				return false
			}
			phi = phi.Replace(w, resolved)
		}
		sigma[x] = phi
	}
	return true
}

func containsVariable(f formula.Formula, x int) bool {
	for _, v := range f.Variables() {
		if v == x {
			return true
		}
	}
	return false
}
