package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arthsaathi/internal/core"
	"arthsaathi/internal/fixtures"
	"arthsaathi/internal/log"
	"arthsaathi/internal/simulation"
)

func TestSimulationService_FullSession(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, err := h.accounts.SignIn(ctx, "asha@example.com", "pw")
	require.NoError(t, err)

	sess, err := h.sims.Start(ctx, "alpha")
	require.NoError(t, err)
	_, err = uuid.Parse(sess.ID)
	assert.NoError(t, err, "session ids are uuids")
	assert.Equal(t, 3, sess.Length())

	for _, c := range []string{"a", "a", "a"} {
		_, err := h.sims.Choose(ctx, sess, c)
		require.NoError(t, err)
	}
	_, err = h.sims.Choose(ctx, sess, "a")
	assert.ErrorIs(t, err, simulation.ErrSessionComplete)

	rep, err := h.sims.Finish(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rep.TotalImpact)
	assert.Equal(t, int64(10000), rep.FinalSavings)
	assert.InDelta(t, 55.0, rep.HealthScore, 1e-9)
	assert.Equal(t, "Cautious Saver", rep.DominantBehavior)

	entries, err := h.timeline.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, core.TimelineEntry{
		Type:             core.EntrySimulation,
		PersonaName:      "Alpha Rider",
		TotalImpact:      0,
		FinalSavings:     10000,
		HealthScore:      rep.HealthScore,
		DominantBehavior: "Cautious Saver",
		EventsCompleted:  3,
		Timestamp:        1_700_000_000_003,
		UserEmail:        "asha@example.com",
	}, entries[0])
}

func TestSimulationService_InvalidChoiceDoesNotAdvance(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	sess, err := h.sims.Start(ctx, "beta")
	require.NoError(t, err)

	_, err = h.sims.Choose(ctx, sess, "z")
	var ice *simulation.InvalidChoiceError
	require.ErrorAs(t, err, &ice)
	assert.Equal(t, "e1", ice.EventID)
	assert.Zero(t, sess.Answered())

	_, err = h.sims.Finish(ctx, sess)
	assert.ErrorIs(t, err, simulation.ErrEmptySession)
}

func TestSimulationService_UnknownPersona(t *testing.T) {
	h := newHarness(t)
	_, err := h.sims.Start(context.Background(), "nobody")
	assert.ErrorIs(t, err, fixtures.ErrPersonaNotFound)
}

func TestSimulationService_MaxEvents(t *testing.T) {
	cat, err := fixtures.Decode(strings.NewReader(testCatalog), fixtures.JSON)
	require.NoError(t, err)
	sims := NewSimulationService(staticCatalog{cat}, SimulationConfig{MaxEvents: 2}, nil, nil, log.Discard())

	sess, err := sims.Start(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Equal(t, 2, sess.Length())

	ps, err := sims.Personas(context.Background())
	require.NoError(t, err)
	assert.Len(t, ps, 2)
}

func TestSimulationService_TimelineFailureIsNotFatal(t *testing.T) {
	cat, err := fixtures.Decode(strings.NewReader(testCatalog), fixtures.JSON)
	require.NoError(t, err)
	logger := log.Discard()
	timeline := NewTimelineService(failingStore{}, 10, logger)
	sims := NewSimulationService(staticCatalog{cat}, SimulationConfig{}, timeline, nil, logger)

	ctx := context.Background()
	sess, err := sims.Start(ctx, "beta")
	require.NoError(t, err)
	for _, c := range []string{"a", "b"} {
		_, err := sims.Choose(ctx, sess, c)
		require.NoError(t, err)
	}
	rep, err := sims.Finish(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rep.TotalImpact)
}
