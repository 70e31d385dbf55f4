package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arthsaathi/internal/core"
	"arthsaathi/internal/kvstore"
	"arthsaathi/internal/kvstore/memory"
	"arthsaathi/internal/log"
)

func TestTimelineService_CapKeepsNewest(t *testing.T) {
	ctx := context.Background()
	tl := NewTimelineService(memory.New(), 0, log.Discard())

	for i := int64(1); i <= 105; i++ {
		require.NoError(t, tl.Append(ctx, core.TimelineEntry{Type: core.EntrySimulation, Timestamp: i}))
	}
	entries, err := tl.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, DefaultTimelineCap)
	assert.Equal(t, int64(6), entries[0].Timestamp)
	assert.Equal(t, int64(105), entries[len(entries)-1].Timestamp)
}

func TestTimelineService_CustomCap(t *testing.T) {
	ctx := context.Background()
	tl := NewTimelineService(memory.New(), 2, log.Discard())
	for i := int64(1); i <= 3; i++ {
		require.NoError(t, tl.Append(ctx, core.TimelineEntry{Timestamp: i}))
	}
	entries, err := tl.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, []int64{entries[0].Timestamp, entries[1].Timestamp})
}

func TestTimelineService_ListForUser(t *testing.T) {
	ctx := context.Background()
	tl := NewTimelineService(memory.New(), 10, log.Discard())
	for _, email := range []string{"", "a@x.com", "b@x.com", "a@x.com"} {
		require.NoError(t, tl.Append(ctx, core.TimelineEntry{UserEmail: email}))
	}

	got, err := tl.ListForUser(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, got, 3)
	for _, e := range got {
		assert.NotEqual(t, "b@x.com", e.UserEmail)
	}

	got, err = tl.ListForUser(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, 1, "anonymous users only see unattributed entries")
}

func TestTimelineService_CorruptDocument(t *testing.T) {
	ctx := context.Background()
	tl := NewTimelineService(memory.NewWith(map[string]string{kvstore.KeyTimeline: "{not json"}), 10, log.Discard())
	_, err := tl.List(ctx)
	assert.ErrorContains(t, err, "decode timeline")
	assert.Error(t, tl.Append(ctx, core.TimelineEntry{}))
}

func TestTimelineService_WireFormat(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	tl := NewTimelineService(store, 10, log.Discard())
	require.NoError(t, tl.Append(ctx, core.TimelineEntry{
		Type: core.EntrySimulation, PersonaName: "Ramesh", TotalImpact: -500, HealthScore: 48.5, Timestamp: 7,
	}))
	raw, ok, err := store.Get(ctx, kvstore.KeyTimeline)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"type":"simulation","personaName":"Ramesh","totalImpact":-500,"finalSavings":0,
		"healthScore":48.5,"eventsCompleted":0,"timestamp":7}]`, raw)
}
