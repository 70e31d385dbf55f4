package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"arthsaathi/internal/assessment"
	"arthsaathi/internal/core"
	"arthsaathi/internal/log"
	"arthsaathi/internal/survey"
)

var ErrIncompleteSurvey = errors.New("survey incomplete")

// AssessmentService classifies completed surveys and records the archetype.
type AssessmentService struct {
	timeline *TimelineService
	accounts *AccountService
	logger   *log.Logger
	now      func() time.Time
}

func NewAssessmentService(timeline *TimelineService, accounts *AccountService, logger *log.Logger) *AssessmentService {
	return &AssessmentService{
		timeline: timeline,
		accounts: accounts,
		logger:   componentLogger(logger, log.ComponentAssessment),
		now:      time.Now,
	}
}

// Assess requires every question answered. The timeline write is best effort.
func (s *AssessmentService) Assess(ctx context.Context, answers survey.Answers) (survey.Archetype, error) {
	if missing := answers.Missing(); len(missing) > 0 {
		return survey.Archetype{}, fmt.Errorf("%w: unanswered %s", ErrIncompleteSurvey, strings.Join(missing, ", "))
	}
	arch := survey.Classify(answers)
	s.logger.InfoContext(ctx, "Survey classified",
		log.FieldOperation, log.OpClassify,
		log.FieldArchetype, arch.Name)

	s.record(ctx, arch.Name)
	return arch, nil
}

// AssessMindset scores the two-stage mindset assessment: the baseline answers
// select an archetype whose deep dive must also be answered. The report title
// is recorded on the timeline, best effort.
func (s *AssessmentService) AssessMindset(ctx context.Context, answers assessment.Answers) (assessment.Result, error) {
	res, err := assessment.Evaluate(answers)
	if err != nil {
		return assessment.Result{}, err
	}
	s.logger.InfoContext(ctx, "Mindset assessed",
		log.FieldOperation, log.OpClassify,
		log.FieldArchetype, res.Archetype,
		"report", res.Report.Title)
	s.record(ctx, res.Report.Title)
	return res, nil
}

func (s *AssessmentService) record(ctx context.Context, archetype string) {
	if s.timeline == nil {
		return
	}
	entry := core.TimelineEntry{
		Type:      core.EntryAssessment,
		Archetype: archetype,
		Timestamp: s.now().UnixMilli(),
	}
	if s.accounts != nil {
		entry.UserEmail = s.accounts.CurrentEmail(ctx)
	}
	if err := s.timeline.Append(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "Failed to record assessment on timeline",
			log.FieldArchetype, archetype,
			log.FieldError, err)
	}
}
