// Package prover is the module's facade: it wires saturate's search
// engine to reconstruct's narrative assembly so a caller hands over a
// target formula and axiom set and gets back a proved/not-proved
// verdict with a human-readable derivation, without touching either
// subpackage directly.
package prover

import (
	"github.com/xDarkicex/prover/formula"
	"github.com/xDarkicex/prover/reconstruct"
	"github.com/xDarkicex/prover/saturate"
)

// Result is the outcome of a single Solve call: whether target was
// proved, the assembled §6 narrative text, and the raw search result
// underneath for callers who need the derivation log or winning formula
// directly.
type Result struct {
	Proved    bool
	Narrative string
	Stats     saturate.Stats
	Search    *saturate.Result
}

// Solve runs a saturation search for target under cfg and assembles its
// narrative. It is the single entry point most callers need; Engine and
// Log remain exported by saturate for callers who want to drive the
// search themselves.
func Solve(cfg saturate.Config, target formula.Formula) (*Result, error) {
	engine, err := saturate.NewEngine(cfg)
	if err != nil {
		return nil, err
	}

	raw, err := engine.Run(target)
	if err != nil {
		return nil, err
	}

	return &Result{
		Proved:    raw.Proved,
		Narrative: reconstruct.Narrative(raw),
		Stats:     raw.Stats,
		Search:    raw,
	}, nil
}
