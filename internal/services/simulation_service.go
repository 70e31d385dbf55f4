package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"arthsaathi/internal/core"
	"arthsaathi/internal/fixtures"
	"arthsaathi/internal/log"
	"arthsaathi/internal/simulation"
)

// CatalogSource yields the persona catalogue stored at a fixture path.
type CatalogSource interface {
	Get(ctx context.Context, path string) (*fixtures.Catalog, error)
}

// SimulationConfig holds the knobs the simulation service reads from config.
type SimulationConfig struct {
	PersonasFile string // empty selects the embedded catalogue
	MaxEvents    int    // session cap, at most core.MaxSessionEvents
}

// SimulationService runs sessions and records finished ones on the timeline.
type SimulationService struct {
	catalogs CatalogSource
	config   SimulationConfig
	timeline *TimelineService
	accounts *AccountService
	logger   *log.Logger

	now   func() time.Time
	newID func() string
}

// NewSimulationService wires the service. timeline and accounts may be nil,
// in which case finished sessions are not recorded or not attributed.
func NewSimulationService(catalogs CatalogSource, cfg SimulationConfig, timeline *TimelineService, accounts *AccountService, logger *log.Logger) *SimulationService {
	if cfg.MaxEvents < 1 || cfg.MaxEvents > core.MaxSessionEvents {
		cfg.MaxEvents = core.MaxSessionEvents
	}
	return &SimulationService{
		catalogs: catalogs,
		config:   cfg,
		timeline: timeline,
		accounts: accounts,
		logger:   componentLogger(logger, log.ComponentSimulation),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (s *SimulationService) Personas(ctx context.Context) ([]core.Persona, error) {
	cat, err := s.catalogs.Get(ctx, s.config.PersonasFile)
	if err != nil {
		return nil, err
	}
	return cat.Personas(), nil
}

func (s *SimulationService) Start(ctx context.Context, personaID string) (*simulation.Session, error) {
	cat, err := s.catalogs.Get(ctx, s.config.PersonasFile)
	if err != nil {
		return nil, err
	}
	persona, err := cat.Persona(personaID)
	if err != nil {
		return nil, err
	}
	sess := simulation.NewLimitedSession(s.newID(), persona, s.now(), s.config.MaxEvents)
	s.logger.InfoContext(ctx, "Session started",
		log.NewFields().WithOperation(log.OpStart).WithSession(sess.ID, persona.ID).ToSlice()...)
	return sess, nil
}

// Choose records choiceID on the session's current event.
func (s *SimulationService) Choose(ctx context.Context, sess *simulation.Session, choiceID string) (simulation.Response, error) {
	event, _ := sess.CurrentEvent()
	resp, err := sess.Choose(choiceID)
	if err != nil {
		s.logger.WarnContext(ctx, "Choice rejected",
			log.FieldOperation, log.OpChoose,
			log.FieldSessionID, sess.ID,
			log.FieldEventID, event.ID,
			log.FieldChoiceID, choiceID,
			log.FieldError, err)
		return simulation.Response{}, err
	}
	s.logger.DebugContext(ctx, "Choice recorded",
		log.FieldOperation, log.OpChoose,
		log.FieldSessionID, sess.ID,
		log.FieldEventID, resp.EventID,
		log.FieldChoiceID, choiceID)
	return resp, nil
}

// Finish builds the report and appends a timeline entry. Persisting the
// entry is best effort: failures are logged, the report is still returned.
func (s *SimulationService) Finish(ctx context.Context, sess *simulation.Session) (simulation.Report, error) {
	rep, err := sess.Report()
	if err != nil {
		return simulation.Report{}, fmt.Errorf("session %s: %w", sess.ID, err)
	}
	fields := log.NewFields().WithOperation(log.OpFinish).
		WithSession(sess.ID, sess.Persona.ID).
		WithOutcome(rep.TotalImpact, rep.HealthScore)
	s.logger.InfoContext(ctx, "Session finished", fields.ToSlice()...)

	if s.timeline == nil {
		return rep, nil
	}
	entry := core.TimelineEntry{
		Type:             core.EntrySimulation,
		PersonaName:      sess.Persona.DisplayName(),
		TotalImpact:      rep.TotalImpact,
		FinalSavings:     rep.FinalSavings,
		HealthScore:      rep.HealthScore,
		DominantBehavior: rep.DominantBehavior,
		EventsCompleted:  rep.EventsCompleted,
		Timestamp:        s.now().UnixMilli(),
	}
	if s.accounts != nil {
		entry.UserEmail = s.accounts.CurrentEmail(ctx)
	}
	if err := s.timeline.Append(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "Failed to record session on timeline",
			fields.WithError(err).ToSlice()...)
	}
	return rep, nil
}
