// Package wizard models the authoring flow as an explicit finite state
// machine: five named steps with forward/back transitions, plus the
// UI-state flags that debounce duplicate save/download submissions.
package wizard

import "github.com/socialxspark/invoice-api/internal/domain/entity"

// Step is one screen of the authoring flow.
type Step int

const (
	StepDetails Step = iota
	StepItems
	StepAgency
	StepPayment
	StepReview
)

var stepNames = [...]string{"DETAILS", "ITEMS", "AGENCY", "PAYMENT", "REVIEW"}

func (s Step) String() string {
	if s < StepDetails || s > StepReview {
		return "UNKNOWN"
	}
	return stepNames[s]
}

// Next advances one step, saturating at Review.
func (s Step) Next() Step {
	if s >= StepReview {
		return StepReview
	}
	return s + 1
}

// Back retreats one step, saturating at Details.
func (s Step) Back() Step {
	if s <= StepDetails {
		return StepDetails
	}
	return s - 1
}

// Session is one single-user editing session: the draft being mutated, the
// current step, and the in-flight flags. The flags are debouncing by
// UI state, not a concurrency primitive; all mutation here is synchronous.
type Session struct {
	Invoice *entity.Invoice
	Step    Step

	saving      bool
	downloading bool
}

// NewSession starts an editing session at the Details step.
func NewSession(inv *entity.Invoice) *Session {
	return &Session{Invoice: inv, Step: StepDetails}
}

// Next moves the session forward one step.
func (s *Session) Next() { s.Step = s.Step.Next() }

// Back moves the session back one step.
func (s *Session) Back() { s.Step = s.Step.Back() }

// BeginSave marks a save in flight. Returns false, refusing the duplicate,
// when one already is.
func (s *Session) BeginSave() bool {
	if s.saving {
		return false
	}
	s.saving = true
	return true
}

// EndSave clears the in-flight save flag.
func (s *Session) EndSave() { s.saving = false }

// Saving reports whether a save is in flight.
func (s *Session) Saving() bool { return s.saving }

// BeginDownload marks a render/download in flight. Returns false when one
// already is.
func (s *Session) BeginDownload() bool {
	if s.downloading {
		return false
	}
	s.downloading = true
	return true
}

// EndDownload clears the in-flight download flag.
func (s *Session) EndDownload() { s.downloading = false }

// Downloading reports whether a render/download is in flight.
func (s *Session) Downloading() bool { return s.downloading }
