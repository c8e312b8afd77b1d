package loginform

import "github.com/nfrund/loginform/internal/validation"

// Phase is the step of the submit cycle the form is in, or the step the last
// cycle ended in.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseHaltedWithErrors
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseHaltedWithErrors:
		return "halted_with_errors"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is everything a view needs to draw the form.
type State struct {
	Email    string
	Password string
	// Errors holds inline messages from the last submit. Reset on every submit.
	Errors validation.FieldErrors
	// Message is the status line from the last completed request. A submit
	// that halts at validation leaves it untouched.
	Message string
	Phase   Phase
}

// InFlight reports whether a request is outstanding.
func (s State) InFlight() bool {
	return s.Phase == PhaseSubmitting
}
