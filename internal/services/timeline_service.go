package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"arthsaathi/internal/core"
	"arthsaathi/internal/kvstore"
	"arthsaathi/internal/log"
)

// DefaultTimelineCap is the number of entries kept when no cap is configured.
const DefaultTimelineCap = 100

// TimelineService stores entries as one JSON array, oldest first, trimmed
// to the newest cap entries on every append.
type TimelineService struct {
	store  kvstore.Store
	cap    int
	logger *log.Logger

	mu sync.Mutex // serialises read-modify-write of the array
}

func NewTimelineService(store kvstore.Store, cap int, logger *log.Logger) *TimelineService {
	if cap < 1 {
		cap = DefaultTimelineCap
	}
	return &TimelineService{
		store:  store,
		cap:    cap,
		logger: componentLogger(logger, log.ComponentTimeline),
	}
}

func (s *TimelineService) Append(ctx context.Context, entry core.TimelineEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	if len(entries) > s.cap {
		entries = entries[len(entries)-s.cap:]
	}

	b, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode timeline: %w", err)
	}
	if err := s.store.Set(ctx, kvstore.KeyTimeline, string(b)); err != nil {
		return fmt.Errorf("save timeline: %w", err)
	}
	s.logger.DebugContext(ctx, "Timeline entry appended",
		log.FieldOperation, log.OpAppend,
		log.FieldEntryType, entry.Type,
		log.FieldCount, len(entries))
	return nil
}

// List returns every stored entry, oldest first.
func (s *TimelineService) List(ctx context.Context) ([]core.TimelineEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// ListForUser keeps entries with no email or a matching one.
func (s *TimelineService) ListForUser(ctx context.Context, email string) ([]core.TimelineEntry, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]core.TimelineEntry, 0, len(all))
	for _, e := range all {
		if e.VisibleTo(email) {
			out = append(out, e)
		}
	}
	s.logger.DebugContext(ctx, "Timeline listed",
		log.FieldOperation, log.OpList,
		log.FieldUserEmail, email,
		log.FieldCount, len(out))
	return out, nil
}

func (s *TimelineService) load(ctx context.Context) ([]core.TimelineEntry, error) {
	raw, ok, err := s.store.Get(ctx, kvstore.KeyTimeline)
	if err != nil {
		return nil, fmt.Errorf("load timeline: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var entries []core.TimelineEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode timeline: %w", err)
	}
	return entries, nil
}
