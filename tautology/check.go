// Package tautology provides a soundness oracle for the prover: it
// compiles a formula.Formula into a gini boolean circuit and asks a SAT
// backend whether its negation is unsatisfiable (SPEC_FULL.md DOMAIN
// STACK "Soundness oracle").
//
// This is deliberately independent of the prover kernel (formula, unify,
// compose, saturate): a tautology check never substitutes for a
// derivation, it only validates one after the fact.
package tautology

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/xDarkicex/prover/formula"
	"github.com/xDarkicex/prover/internal/proverr"
)

// Check reports whether f is a tautology: true under every assignment to
// its free variables. Constants are treated as distinct propositional
// atoms from Variables of the same identity, matching formula.Formula's
// own kind distinction (§4.A).
func Check(f formula.Formula) (bool, error) {
	if f.Empty() {
		return false, proverr.New("tautology", "Check", "empty formula has no truth value", proverr.KindSoundness)
	}

	c := logic.NewC()
	vars := make(map[formula.AtomKey]z.Lit)

	lit, err := compile(f, f.Root(), c, vars)
	if err != nil {
		return false, err
	}

	g := gini.New()
	c.ToCnf(g)
	g.Assume(lit.Not())
	switch g.Solve() {
	case 1:
		return false, nil // a falsifying assignment exists: not a tautology
	case -1:
		return true, nil // negation unsatisfiable: f holds under every assignment
	default:
		return false, proverr.New("tautology", "Check", "solver returned an indeterminate result", proverr.KindSoundness)
	}
}

func compile(f formula.Formula, i int, c *logic.C, vars map[formula.AtomKey]z.Lit) (z.Lit, error) {
	node := f.Nodes[i]

	switch node.Kind {
	case formula.KindVariable, formula.KindConstant:
		key := formula.AtomKey{Kind: node.Kind, Value: node.Value}
		lit, ok := vars[key]
		if !ok {
			lit = c.Lit()
			vars[key] = lit
		}
		if node.Negated() {
			lit = lit.Not()
		}
		return lit, nil

	case formula.KindFunction:
		left, err := compile(f, node.Left, c, vars)
		if err != nil {
			return z.LitNull, err
		}
		if node.Op == formula.Not {
			return left.Not(), nil
		}
		right, err := compile(f, node.Right, c, vars)
		if err != nil {
			return z.LitNull, err
		}
		switch node.Op {
		case formula.And:
			return c.Ands(left, right), nil
		case formula.Or:
			return c.Ors(left, right), nil
		case formula.Impl:
			return c.Implies(left, right), nil
		case formula.Xor:
			return c.Xor(left, right), nil
		case formula.Equiv:
			return c.Xor(left, right).Not(), nil
		default:
			return z.LitNull, proverr.Newf("tautology", "compile", proverr.KindSoundness,
				"unsupported connective %d", node.Op)
		}

	default:
		return z.LitNull, proverr.Newf("tautology", "compile", proverr.KindSoundness,
			"unsupported term kind %d", node.Kind)
	}
}
