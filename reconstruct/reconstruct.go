// Package reconstruct walks a saturation run's derivation log back from a
// winning formula to the axioms that produced it (§4.F), and assembles
// the narrative text blob spec.md §6 describes.
package reconstruct

import (
	"sort"
	"strings"

	"github.com/xDarkicex/prover/formula"
	"github.com/xDarkicex/prover/internal/unify"
	"github.com/xDarkicex/prover/saturate"
)

// Step is one ancestor of the winning formula, in emission order.
type Step struct {
	Canonical string
	Rule      string
	Parents   []string
}

// Walk marks every ancestor of winner reachable through the log's parent
// links, then returns them in the log's own admission order — which is
// already topological, since an entry can only name an already-admitted
// formula as a parent (§4.F: "walks the log in reverse from the winner,
// marks reachable ancestors, then emits them in ancestor-first order").
func Walk(log *saturate.Log, winner string) []Step {
	reachable := make(map[string]bool)
	var mark func(canon string)
	mark = func(canon string) {
		if reachable[canon] {
			return
		}
		entry, ok := log.Lookup(canon)
		if !ok {
			return
		}
		reachable[canon] = true
		for _, p := range entry.Parents {
			mark(p)
		}
	}
	mark(winner)

	steps := make([]Step, 0, len(reachable))
	for _, canon := range log.Order() {
		if !reachable[canon] {
			continue
		}
		entry, _ := log.Lookup(canon)
		steps = append(steps, Step{Canonical: canon, Rule: entry.Rule, Parents: entry.Parents})
	}
	return steps
}

// Lines formats steps per spec.md §6: `φ mp ψ1 ψ2` or `φ axiom`.
func Lines(steps []Step) []string {
	lines := make([]string, 0, len(steps))
	for _, s := range steps {
		if s.Rule == "axiom" {
			lines = append(lines, s.Canonical+" axiom")
			continue
		}
		lines = append(lines, strings.Join(append([]string{s.Canonical, "mp"}, s.Parents...), " "))
	}
	return lines
}

// Substitution formats σ as sorted `X -> θ` lines (§4.F: "prints the
// substitution as capital-letter bindings").
func Substitution(sigma unify.Substitution) []string {
	ids := make([]int, 0, len(sigma))
	for v := range sigma {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	lines := make([]string, 0, len(ids))
	for _, v := range ids {
		lhs := formula.Variable(v, false).String()
		lines = append(lines, lhs+" -> "+unify.Resolve(v, sigma).String())
	}
	return lines
}

// Narrative assembles the full text blob (§6 "Narrative output"):
// zero or more deduction-theorem lines, the ancestor-first derivation
// transcript, and — when unifying the proved target against the winning
// formula yields a non-empty substitution — a "change variables:"/"proved:"
// block.
func Narrative(result *saturate.Result) string {
	var lines []string
	lines = append(lines, result.DeductionLines...)

	if result.Proved {
		steps := Walk(result.Log, result.WinningCanonical)
		lines = append(lines, Lines(steps)...)

		sigma, ok := unify.Unify(result.TargetProved, result.Winner)
		if ok && len(sigma) > 0 {
			lines = append(lines, "change variables: "+result.Winner.String())
			lines = append(lines, Substitution(sigma)...)
			lines = append(lines, "proved: "+result.TargetProved.String())
		}
	} else {
		lines = append(lines, "No proof was found in the time allotted")
	}

	return strings.Join(lines, "\n")
}
