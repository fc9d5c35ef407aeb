// Package saturate implements the forward-chaining saturation engine
// (§4.D) and the deduction-theorem target preprocessor (§4.E).
package saturate

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/xDarkicex/prover/compose"
	"github.com/xDarkicex/prover/formula"
	"github.com/xDarkicex/prover/tautology"
)

// Stats reports search counters alongside a Result (SPEC_FULL.md
// SUPPLEMENTED FEATURES "Proof statistics").
type Stats struct {
	Iterations int
	Produced   int
	Admitted   int
	KnownSize  int
	TimedOut   bool
}

// Result is the outcome of a single Engine.Run call.
type Result struct {
	Proved           bool
	Winner           formula.Formula
	WinningCanonical string
	TargetProved     formula.Formula
	Targets          []formula.Formula
	DeductionLines   []string
	Log              *Log
	Stats            Stats
}

// Engine runs one saturation search per Run call; it owns no state
// across calls (§5: "All formulas, substitutions, and logs are owned by
// the engine instance and have a lifetime bounded by the enclosing solve
// call").
type Engine struct {
	cfg    Config
	logger *logrus.Logger
}

// NewEngine validates cfg and returns a ready Engine.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{cfg: cfg, logger: logger}, nil
}

// Run searches for a proof of target under the Engine's Config (§4.D,
// §4.E). It never mutates the target formula passed in; it works from a
// standardized, normalized, locked copy instead. Standardize rewrites
// away any Or connective into the Impl-normal form the search assumes,
// Normalize puts its variables in canonical occurrence order, and
// MakePermanent then converts every variable to a Constant so the
// unifier used elsewhere in the search can never instantiate the
// theorem being sought — only formula.Equal's α-equivalence reading can
// discharge it (§4.D, §8).
func (e *Engine) Run(target formula.Formula) (*Result, error) {
	target = target.SubtreeCopy(target.Root())
	target.Standardize()
	target.Normalize()
	target.MakePermanent()

	log := NewLog(nil)
	lenTarget := target.Len()

	targets, gained, deductionLines := e.decompose(target)

	axioms := append([]formula.Formula{}, e.cfg.Axioms...)
	for _, f := range axioms {
		e.verifySound(formula.Canonical(f), f)
	}
	axioms = e.bootstrap(axioms, log)
	axioms = append(axioms, gained...)

	for _, f := range axioms {
		log.RecordAxiom(formula.Canonical(f))
	}
	lemma := ContrapositionLemma()
	e.verifySound(formula.Canonical(lemma), lemma)
	log.RecordAxiom(formula.Canonical(lemma))

	produced := append([]formula.Formula{}, axioms...)
	produced = append(produced, lemma)

	known := make(map[string]bool)
	proved := make([]formula.Formula, 0, len(axioms))

	lenBound := e.cfg.lengthFactor() * lenTarget
	deadline := time.Now().Add(e.cfg.TimeLimit)

	stats := Stats{}
	result := &Result{Targets: targets, DeductionLines: deductionLines, Log: log}

	provesAny := func(phi formula.Formula) (formula.Formula, bool) {
		for _, t := range targets {
			if formula.Equal(t, phi, true) {
				return t, true
			}
		}
		return formula.Formula{}, false
	}

	admit := func(phi formula.Formula) (formula.Formula, string, bool) {
		phi = phi.SubtreeCopy(phi.Root())
		phi.Normalize()
		canon := phi.String()
		if known[canon] {
			return formula.Formula{}, "", false
		}
		known[canon] = true
		proved = append(proved, phi)
		stats.Admitted++
		return phi, canon, true
	}

	won := false
passes:
	for e.withinPassBudget(stats.Iterations) && time.Now().Before(deadline) {
		stats.Iterations++
		iterationSize := len(produced)
		if iterationSize == 0 {
			break
		}

		for i := 0; i < iterationSize; i++ {
			if !time.Now().Before(deadline) {
				stats.TimedOut = true
				break passes
			}
			if len(produced) == 0 {
				break
			}
			raw := produced[0]
			produced = produced[1:]

			if raw.Len() > lenBound {
				continue
			}
			phi, _, ok := admit(raw)
			if !ok {
				continue
			}

			e.logger.WithFields(logrus.Fields{
				"iteration": stats.Iterations,
				"admitted":  stats.Admitted,
				"known":     len(known),
			}).Debug("admitted candidate")

			if winT, ok := provesAny(phi); ok {
				result.Winner = phi
				result.WinningCanonical = phi.String()
				result.TargetProved = winT
				won = true
				break passes
			}

			n := len(proved)
			for j := 0; j < n; j++ {
				psi := proved[j]
				if j == n-1 {
					r := compose.ModusPonens(psi, phi)
					if e.produceAndCheck(r, psi, phi, lenBound, log, &produced, provesAny, result) {
						won = true
						break passes
					}
					continue
				}
				r1 := compose.ModusPonens(psi, phi)
				if e.produceAndCheck(r1, psi, phi, lenBound, log, &produced, provesAny, result) {
					won = true
					break passes
				}
				r2 := compose.ModusPonens(phi, psi)
				if e.produceAndCheck(r2, phi, psi, lenBound, log, &produced, provesAny, result) {
					won = true
					break passes
				}
			}
		}
	}

	if !won && !time.Now().Before(deadline) {
		stats.TimedOut = true
	}

	stats.Produced = stats.Admitted + len(produced)
	stats.KnownSize = len(known)
	result.Proved = won
	result.Stats = stats

	if won {
		e.logger.WithField("proved", result.WinningCanonical).Info("proof found")
	} else {
		e.logger.WithField("deadline_exceeded", stats.TimedOut).Warn("no proof found in time")
	}

	return result, nil
}

// produceAndCheck enqueues a non-empty, length-bounded mp result,
// records it with its parents, and reports whether it already proves a
// target (§4.D step 3: "After every such mp check whether the result
// already proves a target; if so, admit it and return success").
func (e *Engine) produceAndCheck(
	r, parentA, parentB formula.Formula,
	lenBound int,
	log *Log,
	produced *[]formula.Formula,
	provesAny func(formula.Formula) (formula.Formula, bool),
	result *Result,
) bool {
	if r.Empty() || r.Len() > lenBound {
		return false
	}
	*produced = append(*produced, r)
	log.RecordMP(formula.Canonical(r), parentA.String(), parentB.String())

	normalized := r.SubtreeCopy(r.Root())
	normalized.Normalize()

	winT, ok := provesAny(normalized)
	if !ok {
		return false
	}
	result.Winner = normalized
	result.WinningCanonical = normalized.String()
	result.TargetProved = winT
	return true
}

func (e *Engine) withinPassBudget(iterations int) bool {
	return e.cfg.MaxPasses == 0 || iterations < e.cfg.MaxPasses
}

// decompose repeatedly applies §4.E's deduction-theorem rewrite to the
// current last target until its root is no longer Impl, narrating one
// "deduction theorem: ..." line per step. Each antecedent it peels off is
// made permanent (formula.Formula.MakePermanent) before joining the
// assumption set Γ: once the deduction theorem moves alpha from the goal
// into the givens, alpha is a fixed premise, not a schema still open to
// substitution. Run already locks target before calling decompose, so
// this is a no-op against the nodes decompose sees directly, but it also
// covers any caller that reaches decompose with a still-Variable target.
func (e *Engine) decompose(target formula.Formula) ([]formula.Formula, []formula.Formula, []string) {
	targets := []formula.Formula{target}
	var gained []formula.Formula
	var lines []string

	current := target
	for {
		alpha, beta, ok := decompositionStep(current)
		if !ok {
			break
		}
		alpha.MakePermanent()
		gained = append(gained, alpha)
		targets = append(targets, beta)
		lines = append(lines, fmt.Sprintf(
			"deduction theorem: Γ ⊢ %s ⇔ Γ ∪ {%s} ⊢ %s",
			current.String(), alpha.String(), beta.String()))
		e.logger.WithFields(logrus.Fields{
			"from": current.String(),
			"to":   beta.String(),
		}).Info("deduction theorem decomposition")
		current = beta
	}
	return targets, gained, lines
}

// decompositionStep is deduction_theorem_decomposition(φ) (§4.E): if φ
// is non-empty and its root is Impl, it returns φ's antecedent and
// consequent and ok=true; otherwise ok=false.
func decompositionStep(phi formula.Formula) (alpha, beta formula.Formula, ok bool) {
	if phi.Empty() {
		return formula.Formula{}, formula.Formula{}, false
	}
	root := phi.Nodes[phi.Root()]
	if root.Kind != formula.KindFunction || root.Op != formula.Impl {
		return formula.Formula{}, formula.Formula{}, false
	}
	return phi.SubtreeCopy(root.Left), phi.SubtreeCopy(root.Right), true
}

// bootstrap appends Bootstrap()'s derived lemmas to axioms when
// BootstrapHilbert is set and axioms opens with the standard three
// Hilbert schemata (§4.D "Initial seeding"); otherwise axioms is
// returned unchanged ("otherwise the bootstrap may be skipped").
func (e *Engine) bootstrap(axioms []formula.Formula, log *Log) []formula.Formula {
	if !e.cfg.BootstrapHilbert || !isStandardHilbert(axioms) {
		return axioms
	}
	for _, f := range Bootstrap() {
		f = f.SubtreeCopy(f.Root())
		f.Normalize()
		canon := f.String()
		e.verifySound(canon, f)
		log.RecordMP(canon, "bootstrap")
		axioms = append(axioms, f)
	}
	return axioms
}

// verifySound asks the tautology oracle to confirm f holds under every
// assignment, logging a Warn-level line (never failing the run) if it
// does not (SPEC_FULL.md DOMAIN STACK "Soundness oracle"). It is a no-op
// unless Config.VerifyTautologies is set.
func (e *Engine) verifySound(canon string, f formula.Formula) {
	if !e.cfg.VerifyTautologies {
		return
	}
	ok, err := tautology.Check(f)
	if err != nil {
		e.logger.WithError(err).WithField("formula", canon).Warn("tautology check failed to run")
		return
	}
	if !ok {
		e.logger.WithField("formula", canon).Warn("bootstrapped formula is not a tautology")
	}
}

func isStandardHilbert(axioms []formula.Formula) bool {
	if len(axioms) < 3 {
		return false
	}
	std := StandardAxioms()
	for i := 0; i < 3; i++ {
		if formula.Canonical(axioms[i]) != formula.Canonical(std[i]) {
			return false
		}
	}
	return true
}
