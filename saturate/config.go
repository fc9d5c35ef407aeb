package saturate

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/xDarkicex/prover/formula"
	"github.com/xDarkicex/prover/internal/proverr"
)

// Config parameterizes a single Engine run (§4.D, §6 "Axiom set").
type Config struct {
	// Axioms is the caller-supplied axiom list. Its first three entries
	// must be the standard Hilbert schemata (§6); additional axioms are
	// permitted. At least three are required.
	Axioms []formula.Formula

	// TimeLimit is the wall-clock budget for the main loop (§6 "Deadline
	// input"), relative to Run's entry.
	TimeLimit time.Duration

	// MaxPasses bounds the number of produce() passes; 0 means unbounded
	// (the deadline is the only stop condition).
	MaxPasses int

	// LengthFactor is the §4.D length-bound multiplier (default 2 when
	// zero): a candidate longer than LengthFactor*len(target) is dropped.
	LengthFactor int

	// BootstrapHilbert enables §4.D's bootstrap pass, which is only
	// meaningful when Axioms opens with the standard three Hilbert
	// schemata (§6).
	BootstrapHilbert bool

	// VerifyTautologies, when set, asks the tautology package to check
	// every caller-supplied axiom, every bootstrap formula and the
	// contraposition lemma, and emits a Warn-level log line (never an
	// error) if one fails — see SPEC_FULL.md's DOMAIN STACK section.
	VerifyTautologies bool

	// Logger receives structured diagnostics (AMBIENT STACK "Logging");
	// a default is installed by NewEngine when nil.
	Logger *logrus.Logger
}

// Validate reports a KindConfig error when fewer than three axioms are
// supplied (§7 "Configuration error").
func (c Config) Validate() error {
	if len(c.Axioms) < 3 {
		return proverr.Newf("saturate", "Config.Validate", proverr.KindConfig,
			"at least three axioms required, got %d", len(c.Axioms))
	}
	return nil
}

func (c Config) lengthFactor() int {
	if c.LengthFactor <= 0 {
		return 2
	}
	return c.LengthFactor
}
