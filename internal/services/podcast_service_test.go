package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arthsaathi/internal/core"
)

func TestEpisodeFor(t *testing.T) {
	cases := []struct {
		name     string
		entry    core.TimelineEntry
		category string
		color    string
		insight0 string
		insight1 string
		minutes  int
	}{
		{
			name:     "strong positive",
			entry:    core.TimelineEntry{PersonaName: "Ramesh", TotalImpact: 12000, HealthScore: 70, DominantBehavior: "Strategic Planner", Timestamp: 16},
			category: "Wealth Building",
			color:    "#D7FF00",
			insight0: "positive impact of ₹12,000",
			insight1: "strong",
			minutes:  12,
		},
		{
			name:     "moderate negative",
			entry:    core.TimelineEntry{PersonaName: "Anita", TotalImpact: -3000, HealthScore: 50, DominantBehavior: "Risk Taker", Timestamp: 1_700_000_000_003},
			category: "Investment Strategy",
			color:    "#FF6B6B",
			insight0: "financial impact of -₹3,000",
			insight1: "moderate",
			minutes:  15,
		},
		{
			name:     "unknown behavior falls back",
			entry:    core.TimelineEntry{PersonaName: "Javier", TotalImpact: 0, HealthScore: 49.9, DominantBehavior: "Prudent Planner", Timestamp: 7},
			category: "Financial Planning",
			color:    "#A78BFA",
			insight0: "positive impact of ₹0",
			insight1: "needs attention",
			minutes:  19,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ep := EpisodeFor(tc.entry)
			assert.Equal(t, "Financial Journey Insights: "+tc.entry.PersonaName, ep.Title)
			assert.Equal(t, tc.category, ep.Category)
			assert.Equal(t, tc.color, ep.Color)
			require.Len(t, ep.Insights, 3)
			assert.Contains(t, ep.Insights[0], tc.insight0)
			assert.Contains(t, ep.Insights[1], tc.insight1)
			assert.Contains(t, ep.Insights[2], tc.entry.DominantBehavior)
			assert.Equal(t, tc.minutes, ep.Minutes)
			assert.Equal(t, EpisodeFor(tc.entry), ep, "episodes are deterministic")
		})
	}
}

func TestPodcastService_EpisodesForUser(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	for _, e := range []core.TimelineEntry{
		{Type: core.EntrySimulation, PersonaName: "Mine", UserEmail: "asha@example.com", Timestamp: 1},
		{Type: core.EntrySimulation, PersonaName: "Theirs", UserEmail: "ravi@example.com", Timestamp: 2},
		{Type: core.EntrySimulation, PersonaName: "Anonymous", Timestamp: 3},
		{Type: core.EntryAssessment, Archetype: "Hustle Warrior", UserEmail: "asha@example.com", Timestamp: 4},
	} {
		require.NoError(t, h.timeline.Append(ctx, e))
	}
	_, err := h.accounts.SignIn(ctx, "asha@example.com", "pw")
	require.NoError(t, err)

	eps, err := h.podcasts.Episodes(ctx)
	require.NoError(t, err)
	require.Len(t, eps, 2)
	assert.Equal(t, "Mine", eps[0].PersonaName)
	assert.Equal(t, "Anonymous", eps[1].PersonaName)
	assert.Equal(t, "13 min", eps[0].Duration())
}
