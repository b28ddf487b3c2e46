package models

import (
	"errors"
	"fmt"
)

// Custom errors
var (
	ErrMissingPriorInput    = errors.New("competitor has no standings entry or resolvable team tier")
	ErrInsufficientHistory  = errors.New("insufficient event history for evaluation")
	ErrDuplicatePosition    = errors.New("duplicate qualifying position in ground truth")
	ErrMissingGroundTruth   = errors.New("event has no ground-truth result")
	ErrUnknownScoringMethod = errors.New("unknown scoring method")
)

// EventError attaches an event to a failure so per-event problems can be
// reported alongside successful results instead of aborting the run
type EventError struct {
	EventID string `json:"event_id"`
	Err     error  `json:"-"`
	Reason  string `json:"reason"`
}

// NewEventError wraps err for the given event
func NewEventError(eventID string, err error) EventError {
	return EventError{EventID: eventID, Err: err, Reason: err.Error()}
}

func (e EventError) Error() string {
	return fmt.Sprintf("event %s: %s", e.EventID, e.Reason)
}

// Unwrap exposes the underlying failure for errors.Is checks
func (e EventError) Unwrap() error {
	return e.Err
}
