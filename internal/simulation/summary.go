package simulation

import (
	"fmt"
	"strings"

	"arthsaathi/internal/core"
)

// Summarize writes a short narrative for one decision.
func Summarize(event core.Event, r Response) string {
	var b strings.Builder

	title := event.Title
	if title == "" {
		title = "Unknown Event"
	}
	fmt.Fprintf(&b, "In the event '%s', the persona chose: '%s' with %s immediate financial impact. ",
		title, r.Choice.Text, core.FormatSignedRupees(r.ImmediateImpact))
	fmt.Fprintf(&b, "This reflects a '%s' behavioral pattern. ", r.BehavioralPattern)

	if r.WasOptimal {
		b.WriteString("This was an optimal financial choice among available alternatives. ")
	} else {
		fmt.Fprintf(&b, "However, %d better financial alternative(s) existed. ", len(r.DominatedBy))
	}

	switch {
	case r.RegretLikelihood > 0.6:
		b.WriteString("There is a moderate-to-high likelihood of regret. ")
	case r.RegretLikelihood > 0.3:
		b.WriteString("There is some regret risk, but manageable. ")
	default:
		b.WriteString("This choice has low regret likelihood. ")
	}

	if r.LearningOpportunity != "" {
		b.WriteString("Key learning: ")
		b.WriteString(r.LearningOpportunity)
	}
	return strings.TrimSpace(b.String())
}
