package simulation

import (
	"math"
	"strings"

	"arthsaathi/internal/core"
)

const (
	healthBase         = 50.0
	savingsWeight      = 10.0
	debtWeight         = 20.0
	recoveryDivisor    = 10 // a tenth of monthly income goes to recovery
	riskTagSubstring   = "Risk"
	sixMonthDivisor    = 1000.0
	twelveMonthDivisor = 500.0
)

// Horizons are the projection windows in months.
var Horizons = [...]int{3, 6, 12}

// Projection is a linear extrapolation of the session's average impact.
type Projection struct {
	Months             int     `json:"months"`
	ProjectedSavings   float64 `json:"projectedSavings"`
	HealthScore        float64 `json:"healthScore"`
	RecoveryTimeMonths int     `json:"recoveryTimeMonths,omitempty"`
	RecoveryUnbounded  bool    `json:"recoveryUnbounded,omitempty"`
}

// Report is the derived summary of a session. It is recomputable from the
// responses and baseline at any time.
type Report struct {
	TotalImpact          int64           `json:"totalImpact"`
	FinalSavings         int64           `json:"finalSavings"`
	FinalDebt            int64           `json:"finalDebt"`
	DominantBehavior     string          `json:"dominantBehavior"`
	BehaviorCounts       []BehaviorCount `json:"behaviorCounts"`
	HealthScore          float64         `json:"healthScore"`
	AvgImpact            float64         `json:"avgImpact"`
	PositiveDecisions    int             `json:"positiveDecisions"`
	RiskDecisions        int             `json:"riskDecisions"`
	OptimalDecisions     int             `json:"optimalDecisions"`
	ImpulseDecisions     int             `json:"impulseDecisions"`
	TotalFutureLiability int64           `json:"totalFutureLiability"`
	EventsCompleted      int             `json:"eventsCompleted"`
	PlannedEvents        int             `json:"plannedEvents"`
	MonthlyAvgImpact     float64         `json:"monthlyAvgImpact"`
	Projections          []Projection    `json:"projections"`
}

// BuildReport aggregates responses against the persona baseline.
//
// plannedEvents is the intended session length, not the number answered: an
// abandoned session spreads its impact over the full length. It is raised to
// len(responses) when smaller (so values <= 0 fall back to it) and capped at
// core.MaxSessionEvents.
func BuildReport(responses []Response, baseline core.Baseline, plannedEvents int) (Report, error) {
	if len(responses) == 0 {
		return Report{}, ErrEmptySession
	}
	if len(responses) > core.MaxSessionEvents {
		return Report{}, ErrSessionOverflow
	}
	if err := baseline.Validate(); err != nil {
		return Report{}, err
	}
	plannedEvents = min(max(plannedEvents, len(responses)), core.MaxSessionEvents)

	r := Report{
		FinalDebt:       baseline.DebtTotal,
		EventsCompleted: len(responses),
		PlannedEvents:   plannedEvents,
	}
	for _, resp := range responses {
		r.TotalImpact += resp.ImmediateImpact
		r.TotalFutureLiability += resp.FutureLiability
		if resp.ImmediateImpact >= 0 {
			r.PositiveDecisions++
		}
		// Tag vocabulary is supplied by fixtures; the substring match is a
		// content convention and breaks silently if tags are renamed.
		if strings.Contains(resp.BehavioralPattern, riskTagSubstring) {
			r.RiskDecisions++
		}
		if resp.WasOptimal {
			r.OptimalDecisions++
		}
		if resp.UrgencyType == Impulse {
			r.ImpulseDecisions++
		}
	}

	r.FinalSavings = baseline.SavingsBalance + r.TotalImpact
	r.BehaviorCounts = tallyBehaviors(responses)
	r.DominantBehavior = dominantBehavior(r.BehaviorCounts)
	r.HealthScore = healthScore(float64(r.FinalSavings), baseline, 0)
	r.AvgImpact = float64(r.TotalImpact) / float64(len(responses))
	r.MonthlyAvgImpact = float64(r.TotalImpact) / float64(plannedEvents)
	r.Projections = project(r, baseline)

	return r, nil
}

// healthScore is 50 plus ten points per month of income saved, minus twenty
// per month of income owed, clamped to [0, 100]. Zero income zeroes both ratios.
func healthScore(savings float64, b core.Baseline, adjustment float64) float64 {
	var savingsRatio, debtRatio float64
	if b.AvgMonthlyIncome > 0 {
		income := float64(b.AvgMonthlyIncome)
		savingsRatio = savings / income
		debtRatio = float64(b.DebtTotal) / income
	}
	return clamp(healthBase+savingsWeight*savingsRatio-debtWeight*debtRatio+adjustment, 0, 100)
}

func project(r Report, b core.Baseline) []Projection {
	out := make([]Projection, 0, len(Horizons))
	for _, months := range Horizons {
		// The session itself covers the first month.
		savings := float64(r.FinalSavings) + r.MonthlyAvgImpact*float64(months-1)

		var adj float64
		switch months {
		case 6:
			adj = r.MonthlyAvgImpact / sixMonthDivisor
		case 12:
			adj = r.MonthlyAvgImpact / twelveMonthDivisor
		}

		p := Projection{
			Months:           months,
			ProjectedSavings: savings,
			HealthScore:      healthScore(savings, b, adj),
		}
		if months == 12 {
			p.RecoveryTimeMonths, p.RecoveryUnbounded = recoveryTime(r.TotalImpact, b.AvgMonthlyIncome)
		}
		out = append(out, p)
	}
	return out
}

func recoveryTime(totalImpact, income int64) (int, bool) {
	if totalImpact >= 0 {
		return 0, false
	}
	if income == 0 {
		return 0, true
	}
	monthly := float64(income) / recoveryDivisor
	return int(math.Ceil(float64(-totalImpact) / monthly)), false
}
