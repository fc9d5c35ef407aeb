// Package proverr defines the error type shared across the prover's
// packages, generalizing the teacher's single-purpose LogicError with a
// Kind so callers can branch on the category of failure with errors.Is.
package proverr

import "fmt"

// Kind categorizes an Error for errors.Is comparisons.
type Kind int

const (
	// KindConfig marks an invalid saturate.Config (§4.D precondition).
	KindConfig Kind = iota
	// KindUnification marks a unifier failure surfaced past its normal
	// boolean return, e.g. when a caller demands a reason string.
	KindUnification
	// KindBudget marks a saturation run that exhausted its time or pass
	// budget without proving the target (§4.D "Halting conditions").
	KindBudget
	// KindSoundness marks a failure inside the tautology oracle itself
	// (an empty formula, an unsupported connective, an indeterminate SAT
	// result), distinct from the oracle's true/false verdict.
	KindSoundness
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindUnification:
		return "unification"
	case KindBudget:
		return "budget"
	case KindSoundness:
		return "soundness"
	default:
		return "unknown"
	}
}

// Error is the prover's error type: which component and operation
// failed, why, and under what Kind.
type Error struct {
	Component string
	Op        string
	Message   string
	Kind      Kind
}

func (e *Error) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s error in %s.%s: %s", e.Kind, e.Component, e.Op, e.Message)
	}
	return fmt.Sprintf("%s error in %s: %s", e.Kind, e.Op, e.Message)
}

// Is reports whether target is an *Error of the same Kind, enabling
// errors.Is(err, proverr.New("", "", "", proverr.KindBudget)) style
// checks without comparing Component/Op/Message.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New constructs an Error.
func New(component, op, message string, kind Kind) *Error {
	return &Error{Component: component, Op: op, Message: message, Kind: kind}
}

// Newf constructs an Error with a formatted message.
func Newf(component, op string, kind Kind, format string, args ...any) *Error {
	return New(component, op, fmt.Sprintf(format, args...), kind)
}
