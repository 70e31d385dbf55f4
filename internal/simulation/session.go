package simulation

import (
	"time"

	"arthsaathi/internal/core"
)

// Session is a single-owner, append-only run through a persona's events.
// It is not safe for concurrent use.
type Session struct {
	ID        string
	Persona   core.Persona
	StartedAt time.Time

	length    int
	responses []Response
}

// NewSession starts a session that plays persona.SessionLength() events.
func NewSession(id string, persona core.Persona, startedAt time.Time) *Session {
	return NewLimitedSession(id, persona, startedAt, core.MaxSessionEvents)
}

// NewLimitedSession is NewSession with a lower event cap. Limits outside
// 1..core.MaxSessionEvents fall back to the default cap.
func NewLimitedSession(id string, persona core.Persona, startedAt time.Time, limit int) *Session {
	length := persona.SessionLength()
	if limit >= 1 && limit < length {
		length = limit
	}
	return &Session{
		ID:        id,
		Persona:   persona,
		StartedAt: startedAt,
		length:    length,
		responses: make([]Response, 0, length),
	}
}

// Length is the planned number of events.
func (s *Session) Length() int { return s.length }

// Answered is the number of events responded to so far.
func (s *Session) Answered() int { return len(s.responses) }

// Done reports whether every planned event has a response.
func (s *Session) Done() bool { return len(s.responses) >= s.length }

// CurrentEvent returns the next unanswered event.
func (s *Session) CurrentEvent() (core.Event, bool) {
	if s.Done() {
		return core.Event{}, false
	}
	return s.Persona.Events[len(s.responses)], true
}

// Choose records choiceID for the current event and appends the response.
func (s *Session) Choose(choiceID string) (Response, error) {
	event, ok := s.CurrentEvent()
	if !ok {
		return Response{}, ErrSessionComplete
	}
	resp, err := RecordChoice(event, choiceID, s.responses)
	if err != nil {
		return Response{}, err
	}
	s.responses = append(s.responses, resp)
	return resp, nil
}

// Responses returns a copy of the recorded responses in event order.
func (s *Session) Responses() []Response {
	return append([]Response(nil), s.responses...)
}

// CumulativeImpact is the running balance after the last response.
func (s *Session) CumulativeImpact() int64 {
	if len(s.responses) == 0 {
		return 0
	}
	return s.responses[len(s.responses)-1].CumulativeImpact
}

// Report derives the session report. It may be called before the session is
// done; projections still use the planned length.
func (s *Session) Report() (Report, error) {
	return BuildReport(s.responses, s.Persona.Baseline, s.length)
}
