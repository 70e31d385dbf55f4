package simulation

import (
	"errors"
	"fmt"

	"arthsaathi/internal/core"
)

var (
	// ErrEmptySession is returned when a report is requested before any event was answered.
	ErrEmptySession = errors.New("simulation: report requires at least one response")
	// ErrSessionOverflow is returned for response lists longer than MaxSessionEvents.
	ErrSessionOverflow = errors.New("simulation: more responses than the session allows")
	// ErrSessionComplete is returned when choosing after the last event.
	ErrSessionComplete = errors.New("simulation: session already complete")
)

// InvalidChoiceError reports a choice id that does not belong to the event.
type InvalidChoiceError struct {
	EventID  string
	ChoiceID string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("simulation: choice %q not found in event %q", e.ChoiceID, e.EventID)
}

// InvalidBaselineError is the core baseline error, re-exported for callers
// that only import this package.
type InvalidBaselineError = core.InvalidBaselineError
