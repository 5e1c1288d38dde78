package booking

import "errors"

var (
	// ErrInvalidTransition is returned when a transition is requested from
	// a step that does not allow it.
	ErrInvalidTransition = errors.New("booking: transition not allowed from current step")

	// ErrNoCategory is returned when a details edit arrives before a
	// category has been selected.
	ErrNoCategory = errors.New("booking: no category selected")

	// ErrFieldNotInCategory is returned when an edit targets a field that
	// belongs to the other category's variant.
	ErrFieldNotInCategory = errors.New("booking: field does not belong to the selected category")
)

// FailureKind identifies a validation rule violation.
type FailureKind string

const (
	KindMissingSelection     FailureKind = "missing_selection"
	KindInvalidName          FailureKind = "invalid_name"
	KindInvalidPhone         FailureKind = "invalid_phone"
	KindPastDate             FailureKind = "past_date"
	KindMissingTime          FailureKind = "missing_time"
	KindMissingCategoryField FailureKind = "missing_category_field"
	KindOutsideHours         FailureKind = "outside_hours"
)

// Failure is a structured validation violation. The UI layer owns the
// localized presentation; Reason is for logs and API debugging.
type Failure struct {
	Kind   FailureKind `json:"kind"`
	Field  string      `json:"field"`
	Reason string      `json:"reason"`
}

// ValidationResult aggregates every violated rule from one Advance call.
// Warnings are advisory and never block progression.
type ValidationResult struct {
	Failures []Failure `json:"failures,omitempty"`
	Warnings []Failure `json:"warnings,omitempty"`
}

// OK reports whether the draft passed hard validation.
func (r ValidationResult) OK() bool {
	return len(r.Failures) == 0
}

// First returns the first failure, matching fail-fast consumers.
func (r ValidationResult) First() (Failure, bool) {
	if len(r.Failures) == 0 {
		return Failure{}, false
	}
	return r.Failures[0], true
}
