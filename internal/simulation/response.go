// Package simulation turns persona decision events into per-choice responses
// and a final session report.
//
// Every function here is pure: callers own session state and persistence.
package simulation

import (
	"math"
	"strings"

	"arthsaathi/internal/core"
)

// UrgencyType classifies a decision as planned or reactive.
type UrgencyType string

const (
	Impulse   UrgencyType = "Impulse"
	Strategic UrgencyType = "Strategic"
)

const (
	impulseImpactThreshold = -2000
	sustainabilityBase     = 6
	sustainabilityStep     = 5000
	regretCap              = 0.8
)

// AlternativePath describes a choice the user did not take.
type AlternativePath struct {
	ChoiceID            string `json:"choiceId"`
	Text                string `json:"text"`
	FinancialImpact     int64  `json:"financialImpact"`
	FutureLiability     int64  `json:"futureLiability"`
	FinancialDifference int64  `json:"financialDifference"` // alternative minus selected
	BehavioralTag       string `json:"behavioralTag"`
	OutcomeNarrative    string `json:"outcomeNarrative"`
}

// Response is the recorded outcome of one event.
type Response struct {
	EventID             string            `json:"eventId"`
	EventTitle          string            `json:"eventTitle"`
	Choice              core.Choice       `json:"-"`
	ChoiceID            string            `json:"choiceId"`
	ImmediateImpact     int64             `json:"immediateImpact"`
	CumulativeImpact    int64             `json:"cumulativeImpact"`
	FutureLiability     int64             `json:"futureLiability"`
	BehavioralPattern   string            `json:"behavioralPattern"`
	NarrativeOutcome    string            `json:"narrativeOutcome"`
	TimeImpact          string            `json:"timeImpact"`
	SustainabilityScore int               `json:"sustainabilityScore"`
	UrgencyType         UrgencyType       `json:"urgencyType"`
	RegretLikelihood    float64           `json:"regretLikelihood"`
	WasOptimal          bool              `json:"wasOptimal"`
	DominatedBy         []string          `json:"dominatedBy,omitempty"`
	PathsNotTaken       []AlternativePath `json:"pathsNotTaken,omitempty"`
	LearningOpportunity string            `json:"learningOpportunity"`
}

// RecordChoice derives the Response for choosing choiceID in event, given the
// responses already recorded in this session. It does not modify prior.
func RecordChoice(event core.Event, choiceID string, prior []Response) (Response, error) {
	selected, ok := event.Choice(choiceID)
	if !ok {
		return Response{}, &InvalidChoiceError{EventID: event.ID, ChoiceID: choiceID}
	}

	var cumulative int64
	for _, r := range prior {
		cumulative += r.ImmediateImpact
	}
	cumulative += selected.FinancialImpact

	var dominatedBy []string
	var paths []AlternativePath
	for _, alt := range event.Choices {
		if alt.ID == selected.ID {
			continue
		}
		if dominates(alt, selected) {
			dominatedBy = append(dominatedBy, alt.ID)
		}
		paths = append(paths, AlternativePath{
			ChoiceID:            alt.ID,
			Text:                alt.Text,
			FinancialImpact:     alt.FinancialImpact,
			FutureLiability:     alt.FutureLiability,
			FinancialDifference: alt.FinancialImpact - selected.FinancialImpact,
			BehavioralTag:       alt.BehavioralTag,
			OutcomeNarrative:    alt.OutcomeNarrative,
		})
	}

	return Response{
		EventID:             event.ID,
		EventTitle:          event.Title,
		Choice:              selected,
		ChoiceID:            selected.ID,
		ImmediateImpact:     selected.FinancialImpact,
		CumulativeImpact:    cumulative,
		FutureLiability:     selected.FutureLiability,
		BehavioralPattern:   selected.BehavioralTag,
		NarrativeOutcome:    selected.OutcomeNarrative,
		TimeImpact:          selected.TimeImpact,
		SustainabilityScore: sustainabilityScore(selected.FinancialImpact),
		UrgencyType:         urgency(selected),
		RegretLikelihood:    regretLikelihood(len(dominatedBy)),
		WasOptimal:          len(dominatedBy) == 0,
		DominatedBy:         dominatedBy,
		PathsNotTaken:       paths,
		LearningOpportunity: learningOpportunity(selected.BehavioralTag),
	}, nil
}

// dominates reports whether b is strictly better money now without more
// deferred liability than a.
func dominates(b, a core.Choice) bool {
	return b.FinancialImpact > a.FinancialImpact && b.FutureLiability <= a.FutureLiability
}

func sustainabilityScore(impact int64) int {
	step := int(math.Floor(float64(impact) / sustainabilityStep))
	return clampInt(sustainabilityBase+step, 1, 10)
}

func urgency(c core.Choice) UrgencyType {
	if c.FutureLiability > 0 || c.FinancialImpact < impulseImpactThreshold {
		return Impulse
	}
	return Strategic
}

func regretLikelihood(dominating int) float64 {
	// 0.2 baseline plus 0.3 per dominating alternative, computed in tenths
	// so 0.5 and 0.8 stay exact.
	return math.Min(float64(2+3*dominating)/10, regretCap)
}

func learningOpportunity(tag string) string {
	switch {
	case strings.Contains(tag, "Risk") || strings.Contains(tag, "Reckless"):
		return "High-risk decision made. Opportunity to practice risk assessment."
	case strings.Contains(tag, "Prudent"):
		return "Cautious approach. Opportunity to explore calculated risks."
	default:
		return "Opportunity to reflect on decision-making patterns."
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
