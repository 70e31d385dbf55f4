// Package survey holds the financial personality questionnaire and the
// rules that map its answers to an archetype.
package survey

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownQuestion = errors.New("unknown question")
	ErrUnknownOption   = errors.New("unknown option")
)

type (
	Option struct {
		ID    string
		Text  string
		Value string
	}

	Question struct {
		ID      string
		Prompt  string
		Options []Option
	}
)

var bank = []Question{
	{ID: "q1", Prompt: "What is your primary source of income?", Options: []Option{
		{"a", "Salary (Fixed monthly)", "salary"},
		{"b", "Freelance/Project-based", "freelance"},
		{"c", "Daily wages/Gig work", "gig"},
		{"d", "Business/Self-employed", "business"},
	}},
	{ID: "q2", Prompt: "How predictable is your monthly income?", Options: []Option{
		{"a", "Very predictable (Same amount)", "predictable"},
		{"b", "Somewhat predictable (±20%)", "moderate"},
		{"c", "Unpredictable (Varies a lot)", "unpredictable"},
		{"d", "Seasonal (Good/Bad months)", "seasonal"},
	}},
	{ID: "q3", Prompt: "What is your biggest financial worry?", Options: []Option{
		{"a", "Not having emergency savings", "emergency"},
		{"b", "Managing debt/loans", "debt"},
		{"c", "Planning for future goals", "goals"},
		{"d", "Daily survival/expenses", "survival"},
	}},
	{ID: "q4", Prompt: "How do you typically make spending decisions?", Options: []Option{
		{"a", "I track and budget everything", "planned"},
		{"b", "I spend when I have money", "impulsive"},
		{"c", "I prioritize necessities first", "necessity"},
		{"d", "I often borrow/use credit", "credit"},
	}},
	{ID: "q5", Prompt: "What best describes your financial goal for the next year?", Options: []Option{
		{"a", "Build emergency fund", "emergency_fund"},
		{"b", "Clear all debts", "debt_free"},
		{"c", "Save for big purchase", "big_purchase"},
		{"d", "Increase income streams", "income_increase"},
	}},
	{ID: "q6", Prompt: "How comfortable are you with financial risk?", Options: []Option{
		{"a", "Very cautious (Safety first)", "low_risk"},
		{"b", "Moderate (Calculated risks)", "medium_risk"},
		{"c", "High (Big risks, big rewards)", "high_risk"},
		{"d", "Depends on the situation", "situational"},
	}},
	{ID: "q7", Prompt: "What percentage of income do you currently save?", Options: []Option{
		{"a", "Less than 5%", "very_low"},
		{"b", "5-15%", "low"},
		{"c", "15-30%", "medium"},
		{"d", "More than 30%", "high"},
	}},
	{ID: "q8", Prompt: "How often do you face unexpected expenses?", Options: []Option{
		{"a", "Rarely (Once a year)", "rare"},
		{"b", "Sometimes (Few times a year)", "occasional"},
		{"c", "Often (Monthly)", "frequent"},
		{"d", "Very often (Weekly)", "very_frequent"},
	}},
}

// Questions returns the question bank in order.
func Questions() []Question {
	return append([]Question(nil), bank...)
}

func lookup(questionID string) (Question, bool) {
	for _, q := range bank {
		if q.ID == questionID {
			return q, true
		}
	}
	return Question{}, false
}

// Answers maps question ids to the selected option value.
type Answers map[string]string

// Answer records optionID for questionID, replacing any earlier answer.
func (a Answers) Answer(questionID, optionID string) error {
	q, ok := lookup(questionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	for _, o := range q.Options {
		if o.ID == optionID {
			a[questionID] = o.Value
			return nil
		}
	}
	return fmt.Errorf("%w: %s/%s", ErrUnknownOption, questionID, optionID)
}

// Missing lists unanswered question ids in bank order.
func (a Answers) Missing() []string {
	var out []string
	for _, q := range bank {
		if _, ok := a[q.ID]; !ok {
			out = append(out, q.ID)
		}
	}
	return out
}

func (a Answers) value(questionID string) string {
	if v, ok := a[questionID]; ok {
		return v
	}
	return "unknown"
}
