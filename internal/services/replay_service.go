package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"arthsaathi/internal/log"
	"arthsaathi/internal/simulation"
)

var ErrEmptyScript = errors.New("replay script has no choices")

// ReplayScript is one scripted session: a persona and the choice ids to
// pick, in event order. Fewer choices than events ends the session early.
type ReplayScript struct {
	Persona string   `yaml:"persona"`
	Choices []string `yaml:"choices"`
}

type replayFile struct {
	Scripts []ReplayScript `yaml:"scripts"`
}

// DecodeReplay reads a YAML document of the form {scripts: [{persona, choices}]}.
func DecodeReplay(r io.Reader) ([]ReplayScript, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f replayFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	for i, s := range f.Scripts {
		if s.Persona == "" {
			return nil, fmt.Errorf("script %d: persona is required", i)
		}
		if len(s.Choices) == 0 {
			return nil, fmt.Errorf("script %d (%s): %w", i, s.Persona, ErrEmptyScript)
		}
	}
	return f.Scripts, nil
}

// ReplayResult is the outcome of one script.
type ReplayResult struct {
	Script    ReplayScript
	SessionID string
	Responses []simulation.Response
	Report    simulation.Report
}

// ReplayService runs scripts concurrently. Each session is owned by a single
// goroutine; only the timeline is shared.
type ReplayService struct {
	sims        *SimulationService
	concurrency int
	logger      *log.Logger
}

func NewReplayService(sims *SimulationService, concurrency int, logger *log.Logger) *ReplayService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &ReplayService{
		sims:        sims,
		concurrency: concurrency,
		logger:      componentLogger(logger, log.ComponentReplay),
	}
}

// Run replays every script and returns results in script order. The first
// failing script cancels the rest.
func (s *ReplayService) Run(ctx context.Context, scripts []ReplayScript) ([]ReplayResult, error) {
	start := time.Now()
	results := make([]ReplayResult, len(scripts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, script := range scripts {
		i, script := i, script
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.runOne(gctx, script)
			if err != nil {
				if gctx.Err() == nil {
					s.logger.WarnContext(ctx, "Replay script failed",
						log.FieldScriptIndex, i,
						log.FieldPersonaID, script.Persona,
						log.FieldError, err)
				}
				return fmt.Errorf("script %d (%s): %w", i, script.Persona, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "Replay failed", log.FieldOperation, log.OpReplay, log.FieldError, err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "Replay finished",
		log.FieldOperation, log.OpReplay,
		log.FieldCount, len(scripts),
		log.FieldConcurrency, s.concurrency,
		log.FieldDuration, time.Since(start))
	return results, nil
}

func (s *ReplayService) runOne(ctx context.Context, script ReplayScript) (ReplayResult, error) {
	if len(script.Choices) == 0 {
		return ReplayResult{}, ErrEmptyScript
	}
	sess, err := s.sims.Start(ctx, script.Persona)
	if err != nil {
		return ReplayResult{}, err
	}
	for _, choiceID := range script.Choices {
		if _, err := s.sims.Choose(ctx, sess, choiceID); err != nil {
			return ReplayResult{}, err
		}
	}
	rep, err := s.sims.Finish(ctx, sess)
	if err != nil {
		return ReplayResult{}, err
	}
	return ReplayResult{
		Script:    script,
		SessionID: sess.ID,
		Responses: sess.Responses(),
		Report:    rep,
	}, nil
}
