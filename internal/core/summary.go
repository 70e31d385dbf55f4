package core

// Timeline entry kinds.
const (
	EntrySimulation = "simulation"
	EntryAssessment = "assessment"
)

// TimelineEntry is the compact record persisted after a simulation or survey.
// Field names match the on-device JSON layout.
type TimelineEntry struct {
	Type             string  `json:"type"`
	PersonaName      string  `json:"personaName,omitempty"`
	TotalImpact      int64   `json:"totalImpact"`
	FinalSavings     int64   `json:"finalSavings"`
	HealthScore      float64 `json:"healthScore"`
	DominantBehavior string  `json:"dominantBehavior,omitempty"`
	EventsCompleted  int     `json:"eventsCompleted"`
	Archetype        string  `json:"archetype,omitempty"`
	Timestamp        int64   `json:"timestamp"` // unix milliseconds
	UserEmail        string  `json:"userEmail,omitempty"`
}

// VisibleTo reports whether the entry belongs to the user. Entries written
// before sign-in carry no email and are shown to everyone.
func (e TimelineEntry) VisibleTo(email string) bool {
	return e.UserEmail == "" || e.UserEmail == email
}

// User is the mocked local account.
type User struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"createdAt"` // unix milliseconds
}
