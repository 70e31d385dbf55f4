package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldSessionID   = "session_id"
	FieldPersonaID   = "persona_id"
	FieldEventID     = "event_id"
	FieldChoiceID    = "choice_id"
	FieldUserEmail   = "user_email"
	FieldPath        = "path"
	FieldBackend     = "backend"
	FieldCount       = "count"
	FieldDuration    = "duration"
	FieldTotalImpact = "total_impact"
	FieldHealthScore = "health_score"
	FieldArchetype   = "archetype"
	FieldEntryType   = "entry_type"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldScriptIndex = "script_index"
	FieldConcurrency = "concurrency"
)

// Components defines standard component names
const (
	ComponentApp        = "app"
	ComponentCLI        = "cli"
	ComponentSimulation = "simulation"
	ComponentTimeline   = "timeline"
	ComponentAccount    = "account"
	ComponentAssessment = "assessment"
	ComponentPodcast    = "podcast"
	ComponentReplay     = "replay"
	ComponentStorage    = "storage"
	ComponentCache      = "cache"
	ComponentFixtures   = "fixtures"
)

// Operations defines standard operation names
const (
	OpStart    = "start"
	OpChoose   = "choose"
	OpFinish   = "finish"
	OpAppend   = "append"
	OpList     = "list"
	OpSignUp   = "sign_up"
	OpSignIn   = "sign_in"
	OpSignOut  = "sign_out"
	OpClassify = "classify"
	OpReplay   = "replay"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithSession adds session and persona ids
func (f LogFields) WithSession(sessionID, personaID string) LogFields {
	f[FieldSessionID] = sessionID
	f[FieldPersonaID] = personaID
	return f
}

// WithOutcome adds the headline numbers of a finished session
func (f LogFields) WithOutcome(totalImpact int64, healthScore float64) LogFields {
	f[FieldTotalImpact] = totalImpact
	f[FieldHealthScore] = healthScore
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
