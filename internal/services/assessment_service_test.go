package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arthsaathi/internal/assessment"
	"arthsaathi/internal/core"
	"arthsaathi/internal/survey"
)

func fullAnswers(t *testing.T, overrides map[string]string) survey.Answers {
	t.Helper()
	a := survey.Answers{}
	for _, q := range survey.Questions() {
		opt := "b"
		if o, ok := overrides[q.ID]; ok {
			opt = o
		}
		require.NoError(t, a.Answer(q.ID, opt))
	}
	return a
}

func TestAssessmentService_RequiresAllAnswers(t *testing.T) {
	h := newHarness(t)
	a := survey.Answers{}
	require.NoError(t, a.Answer("q1", "c"))

	_, err := h.assessment.Assess(context.Background(), a)
	assert.ErrorIs(t, err, ErrIncompleteSurvey)
	assert.ErrorContains(t, err, "q2")
}

func TestAssessmentService_RecordsArchetype(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	arch, err := h.assessment.Assess(ctx, fullAnswers(t, map[string]string{"q1": "c", "q2": "c"}))
	require.NoError(t, err)
	assert.Equal(t, survey.HustleWarrior, arch.Name)
	assert.Equal(t, "gig", arch.Profile.IncomeSource)

	entries, err := h.timeline.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, core.EntryAssessment, entries[0].Type)
	assert.Equal(t, survey.HustleWarrior, entries[0].Archetype)
	assert.Equal(t, int64(1_700_000_000_004), entries[0].Timestamp)
	assert.Empty(t, entries[0].UserEmail)
}

func TestAssessmentService_Classification(t *testing.T) {
	h := newHarness(t)
	// all "b": freelance, moderate, debt worry -> Debt Navigator
	arch, err := h.assessment.Assess(context.Background(), fullAnswers(t, nil))
	require.NoError(t, err)
	assert.Equal(t, survey.DebtNavigator, arch.Name)

	arch, err = h.assessment.Assess(context.Background(), fullAnswers(t, map[string]string{"q3": "a"}))
	require.NoError(t, err)
	assert.Equal(t, survey.BalancedPlanner, arch.Name)
}

func TestAssessmentService_MindsetTwoStages(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, err := h.accounts.SignIn(ctx, "asha@example.com", "pw")
	require.NoError(t, err)

	a := assessment.Answers{}
	// three investor answers out of five baseline questions
	for _, q := range []string{"b1", "b2", "b3"} {
		require.NoError(t, a.Answer(q, "b"))
	}
	require.NoError(t, a.Answer("b4", "a"))
	require.NoError(t, a.Answer("b5", "c"))

	_, err = h.assessment.AssessMindset(ctx, a)
	assert.ErrorIs(t, err, assessment.ErrIncomplete)
	assert.ErrorContains(t, err, "investor_1")

	for _, q := range assessment.DeepDive(assessment.Investor) {
		require.NoError(t, a.Answer(q.ID, "c"))
	}
	res, err := h.assessment.AssessMindset(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, assessment.Investor, res.Archetype)
	assert.Equal(t, "The Calculated Risk-Taker", res.Report.Title)
	assert.Equal(t, 90, res.Report.Scores.RiskTolerance)

	entries, err := h.timeline.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, core.EntryAssessment, entries[0].Type)
	assert.Equal(t, "The Calculated Risk-Taker", entries[0].Archetype)
	assert.Equal(t, "asha@example.com", entries[0].UserEmail)
}
