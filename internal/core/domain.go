package core

import (
	"errors"
	"fmt"
	"strings"
)

// MaxSessionEvents bounds how many events a single simulation session plays,
// even when the persona defines more.
const MaxSessionEvents = 8

const (
	minChoices = 2
	maxChoices = 4
)

type (
	// Choice is one option within an Event.
	Choice struct {
		ID               string
		Text             string
		FinancialImpact  int64 // rupees, positive = gain
		FutureLiability  int64 // > 0 marks deferred financial risk
		BehavioralTag    string
		OutcomeNarrative string
		TimeImpact       string
	}

	// Event is a single simulated scenario with mutually exclusive choices.
	Event struct {
		ID          string
		Title       string
		Description string
		Choices     []Choice
	}

	// Baseline is the persona's starting financial position.
	Baseline struct {
		AvgMonthlyIncome int64
		SavingsBalance   int64
		DebtTotal        int64
		FixedExpenses    int64
	}

	DisplayProfile struct {
		Name       string
		Occupation string
		City       string
	}

	PsychometricProfile struct {
		PrimaryStressor string
	}

	// Persona is a synthetic gig-worker profile with its decision events.
	Persona struct {
		ID           string
		Type         string
		Profile      DisplayProfile
		Psychometric PsychometricProfile
		Baseline     Baseline
		Events       []Event
	}
)

var (
	ErrEmptyID           = errors.New("empty id")
	ErrEmptyTag          = errors.New("empty behavioral tag")
	ErrEmptyTitle        = errors.New("empty event title")
	ErrNegativeLiability = errors.New("negative future liability")
	ErrTooFewChoices     = errors.New("event needs at least 2 choices")
	ErrTooManyChoices    = errors.New("event allows at most 4 choices")
	ErrDuplicateChoice   = errors.New("duplicate choice id")
	ErrNoEvents          = errors.New("persona has no events")
)

// InvalidBaselineError reports a negative income, savings or debt figure.
type InvalidBaselineError struct {
	Field string
	Value int64
}

func (e *InvalidBaselineError) Error() string {
	return fmt.Sprintf("invalid baseline: %s must not be negative (got %d)", e.Field, e.Value)
}

func (b Baseline) Validate() error {
	if b.AvgMonthlyIncome < 0 {
		return &InvalidBaselineError{Field: "avg_monthly_income", Value: b.AvgMonthlyIncome}
	}
	if b.SavingsBalance < 0 {
		return &InvalidBaselineError{Field: "savings_balance", Value: b.SavingsBalance}
	}
	if b.DebtTotal < 0 {
		return &InvalidBaselineError{Field: "debt_total", Value: b.DebtTotal}
	}
	return nil
}

func (c Choice) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(c.BehavioralTag) == "" {
		return ErrEmptyTag
	}
	if c.FutureLiability < 0 {
		return ErrNegativeLiability
	}
	return nil
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if len(e.Choices) < minChoices {
		return ErrTooFewChoices
	}
	if len(e.Choices) > maxChoices {
		return ErrTooManyChoices
	}
	seen := make(map[string]struct{}, len(e.Choices))
	for _, c := range e.Choices {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("choice %q: %w", c.ID, err)
		}
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("choice %q: %w", c.ID, ErrDuplicateChoice)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

// Choice returns the choice with the given id.
func (e Event) Choice(id string) (Choice, bool) {
	for _, c := range e.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

func (p Persona) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrEmptyID
	}
	if err := p.Baseline.Validate(); err != nil {
		return err
	}
	if len(p.Events) == 0 {
		return ErrNoEvents
	}
	for i, e := range p.Events {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("event %d (%s): %w", i, e.ID, err)
		}
	}
	return nil
}

// SessionLength is the number of events a session for this persona plays.
func (p Persona) SessionLength() int {
	return min(len(p.Events), MaxSessionEvents)
}

// DisplayName falls back to the persona id when the profile has no name.
func (p Persona) DisplayName() string {
	if name := strings.TrimSpace(p.Profile.Name); name != "" {
		return name
	}
	return p.ID
}
