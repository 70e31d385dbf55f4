package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arthsaathi/internal/fixtures"
	"arthsaathi/internal/log"
	"arthsaathi/internal/simulation"
)

func TestDecodeReplay(t *testing.T) {
	scripts, err := DecodeReplay(strings.NewReader(`
scripts:
  - persona: alpha
    choices: [a, b, a]
  - persona: beta
    choices: [b]
`))
	require.NoError(t, err)
	require.Len(t, scripts, 2)
	assert.Equal(t, []string{"a", "b", "a"}, scripts[0].Choices)

	_, err = DecodeReplay(strings.NewReader("scripts:\n  - persona: alpha\n"))
	assert.ErrorIs(t, err, ErrEmptyScript)

	_, err = DecodeReplay(strings.NewReader("scripts:\n  - persona: alpha\n    choices: [a]\n    speed: 2\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestReplayService_PreservesScriptOrder(t *testing.T) {
	h := newHarness(t)
	replay := NewReplayService(h.sims, 3, log.Discard())

	var scripts []ReplayScript
	for i := 0; i < 12; i++ {
		if i%2 == 0 {
			scripts = append(scripts, ReplayScript{Persona: "alpha", Choices: []string{"a", "a", "a"}})
		} else {
			scripts = append(scripts, ReplayScript{Persona: "beta", Choices: []string{"a", "a"}})
		}
	}

	results, err := replay.Run(context.Background(), scripts)
	require.NoError(t, err)
	require.Len(t, results, len(scripts))
	seen := map[string]bool{}
	for i, r := range results {
		assert.Equal(t, scripts[i].Persona, r.Script.Persona)
		assert.False(t, seen[r.SessionID], "session ids are unique")
		seen[r.SessionID] = true
		if i%2 == 0 {
			assert.Equal(t, int64(0), r.Report.TotalImpact)
			assert.Len(t, r.Responses, 3)
		} else {
			assert.Equal(t, int64(1000), r.Report.TotalImpact)
			assert.InDelta(t, 51.0, r.Report.HealthScore, 1e-9)
		}
	}

	entries, err := h.timeline.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, len(scripts), "every replayed session is recorded")
}

func TestReplayService_PartialScriptEndsEarly(t *testing.T) {
	h := newHarness(t)
	results, err := NewReplayService(h.sims, 1, log.Discard()).Run(context.Background(),
		[]ReplayScript{{Persona: "alpha", Choices: []string{"b"}}})
	require.NoError(t, err)
	rep := results[0].Report
	assert.Equal(t, 1, rep.EventsCompleted)
	assert.Equal(t, 3, rep.PlannedEvents)
}

func TestReplayService_FailureStopsRun(t *testing.T) {
	h := newHarness(t)
	replay := NewReplayService(h.sims, 2, log.Discard())

	_, err := replay.Run(context.Background(), []ReplayScript{
		{Persona: "alpha", Choices: []string{"a"}},
		{Persona: "beta", Choices: []string{"a", "a", "a"}},
	})
	assert.ErrorIs(t, err, simulation.ErrSessionComplete)
	assert.ErrorContains(t, err, "script 1 (beta)")

	_, err = replay.Run(context.Background(), []ReplayScript{{Persona: "ghost", Choices: []string{"a"}}})
	assert.ErrorIs(t, err, fixtures.ErrPersonaNotFound)
}
