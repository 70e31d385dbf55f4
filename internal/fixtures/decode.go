package fixtures

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"arthsaathi/internal/core"
)

// ErrMissingField is wrapped by decode errors for required fields left out
// of a fixture.
var ErrMissingField = errors.New("missing required field")

// Wire types mirror the fixture layout. Required numbers are pointers so an
// absent field is distinguishable from zero.
type (
	wireCatalog struct {
		Personas []wirePersona `json:"personas" yaml:"personas"`
	}

	wirePersona struct {
		ID           string           `json:"id" yaml:"id"`
		Type         string           `json:"type" yaml:"type"`
		Profile      wireProfile      `json:"display_profile" yaml:"display_profile"`
		Psychometric wirePsychometric `json:"psychometric_profile" yaml:"psychometric_profile"`
		Baseline     *wireBaseline    `json:"financial_baseline" yaml:"financial_baseline"`
		Events       []wireEvent      `json:"events" yaml:"events"`
	}

	wireProfile struct {
		Name       string `json:"name" yaml:"name"`
		Occupation string `json:"occupation" yaml:"occupation"`
		City       string `json:"city" yaml:"city"`
	}

	wirePsychometric struct {
		PrimaryStressor string `json:"primary_stressor" yaml:"primary_stressor"`
	}

	wireBaseline struct {
		AvgMonthlyIncome *int64 `json:"avg_monthly_income" yaml:"avg_monthly_income"`
		SavingsBalance   *int64 `json:"savings_balance" yaml:"savings_balance"`
		DebtTotal        *int64 `json:"debt_total" yaml:"debt_total"`
		FixedExpenses    *int64 `json:"fixed_expenses" yaml:"fixed_expenses"`
	}

	wireEvent struct {
		ID          string       `json:"event_id" yaml:"event_id"`
		Title       string       `json:"title" yaml:"title"`
		Description string       `json:"description" yaml:"description"`
		Choices     []wireChoice `json:"choices" yaml:"choices"`
	}

	wireChoice struct {
		ID               string `json:"id" yaml:"id"`
		Text             string `json:"text" yaml:"text"`
		FinancialImpact  *int64 `json:"financial_impact" yaml:"financial_impact"`
		FutureLiability  *int64 `json:"future_liability" yaml:"future_liability"`
		BehavioralTag    string `json:"behavioral_tag" yaml:"behavioral_tag"`
		OutcomeNarrative string `json:"outcome_narrative" yaml:"outcome_narrative"`
		TimeImpact       string `json:"time_impact" yaml:"time_impact"`
	}
)

// Decode reads a catalogue in the given format. Unknown keys, fractional or
// missing amounts and invalid records are all rejected.
func Decode(r io.Reader, format Format) (*Catalog, error) {
	var wc wireCatalog
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&wc); err != nil {
			return nil, fmt.Errorf("decode json fixture: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&wc); err != nil {
			return nil, fmt.Errorf("decode yaml fixture: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	personas := make([]core.Persona, 0, len(wc.Personas))
	for i, wp := range wc.Personas {
		p, err := wp.toCore()
		if err != nil {
			return nil, fmt.Errorf("persona %d (%s): %w", i, wp.ID, err)
		}
		personas = append(personas, p)
	}
	return newCatalog(personas)
}

func (wp wirePersona) toCore() (core.Persona, error) {
	if wp.Baseline == nil {
		return core.Persona{}, fmt.Errorf("%w: financial_baseline", ErrMissingField)
	}
	baseline, err := wp.Baseline.toCore()
	if err != nil {
		return core.Persona{}, err
	}

	events := make([]core.Event, 0, len(wp.Events))
	for i, we := range wp.Events {
		e, err := we.toCore()
		if err != nil {
			return core.Persona{}, fmt.Errorf("event %d (%s): %w", i, we.ID, err)
		}
		events = append(events, e)
	}

	return core.Persona{
		ID:   wp.ID,
		Type: wp.Type,
		Profile: core.DisplayProfile{
			Name:       wp.Profile.Name,
			Occupation: wp.Profile.Occupation,
			City:       wp.Profile.City,
		},
		Psychometric: core.PsychometricProfile{PrimaryStressor: wp.Psychometric.PrimaryStressor},
		Baseline:     baseline,
		Events:       events,
	}, nil
}

func (wb wireBaseline) toCore() (core.Baseline, error) {
	required := []struct {
		name string
		v    *int64
	}{
		{"avg_monthly_income", wb.AvgMonthlyIncome},
		{"savings_balance", wb.SavingsBalance},
		{"debt_total", wb.DebtTotal},
	}
	for _, f := range required {
		if f.v == nil {
			return core.Baseline{}, fmt.Errorf("%w: financial_baseline.%s", ErrMissingField, f.name)
		}
	}
	return core.Baseline{
		AvgMonthlyIncome: *wb.AvgMonthlyIncome,
		SavingsBalance:   *wb.SavingsBalance,
		DebtTotal:        *wb.DebtTotal,
		FixedExpenses:    valueOr(wb.FixedExpenses, 0),
	}, nil
}

func (we wireEvent) toCore() (core.Event, error) {
	choices := make([]core.Choice, 0, len(we.Choices))
	for _, wc := range we.Choices {
		if wc.FinancialImpact == nil {
			return core.Event{}, fmt.Errorf("choice %q: %w: financial_impact", wc.ID, ErrMissingField)
		}
		choices = append(choices, core.Choice{
			ID:               wc.ID,
			Text:             wc.Text,
			FinancialImpact:  *wc.FinancialImpact,
			FutureLiability:  valueOr(wc.FutureLiability, 0),
			BehavioralTag:    wc.BehavioralTag,
			OutcomeNarrative: wc.OutcomeNarrative,
			TimeImpact:       wc.TimeImpact,
		})
	}
	return core.Event{
		ID:          we.ID,
		Title:       we.Title,
		Description: we.Description,
		Choices:     choices,
	}, nil
}

func valueOr(v *int64, def int64) int64 {
	if v == nil {
		return def
	}
	return *v
}
