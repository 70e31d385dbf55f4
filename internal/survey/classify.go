package survey

// Profile is the answered survey, one value per question.
type Profile struct {
	IncomeSource       string `json:"incomeSource"`
	Predictability     string `json:"predictability"`
	Worry              string `json:"worry"`
	SpendingStyle      string `json:"spendingStyle"`
	Goal               string `json:"goal"`
	RiskProfile        string `json:"riskProfile"`
	SavingsRate        string `json:"savingsRate"`
	UnexpectedExpenses string `json:"unexpectedExpenses"`
}

// Archetype is the financial personality derived from a Profile.
type Archetype struct {
	Name            string   `json:"personaType"`
	Emoji           string   `json:"emoji"`
	Description     string   `json:"description"`
	Strengths       []string `json:"strengths"`
	Challenges      []string `json:"challenges"`
	Recommendations []string `json:"recommendations"`
	Profile         Profile  `json:"profile"`
}

const (
	HustleWarrior    = "Hustle Warrior"
	StrategicSaver   = "Strategic Saver"
	DebtNavigator    = "Debt Navigator"
	SeasonalSurvivor = "Seasonal Survivor"
	BalancedPlanner  = "Balanced Planner"
)

type rule struct {
	match func(Profile) bool
	tmpl  Archetype
}

// Rules are evaluated in order; the first match wins.
var rules = []rule{
	{
		match: func(p Profile) bool { return p.IncomeSource == "gig" && p.Predictability == "unpredictable" },
		tmpl: Archetype{
			Name:        HustleWarrior,
			Emoji:       "⚡",
			Description: "You thrive in the gig economy with irregular income. Your financial life is dynamic and requires smart cash flow management.",
			Strengths:   []string{"Adaptable to income fluctuations", "Multiple income streams", "Comfortable with uncertainty"},
			Challenges:  []string{"Income volatility creates stress", "Difficult to budget long-term", "Emergency funds are critical"},
			Recommendations: []string{
				"Build 6-month emergency fund",
				"Track income patterns monthly",
				"Set aside 20% of each payment",
				"Use envelope budgeting method",
			},
		},
	},
	{
		match: func(p Profile) bool { return p.SpendingStyle == "planned" && p.SavingsRate == "high" },
		tmpl: Archetype{
			Name:        StrategicSaver,
			Emoji:       "🎯",
			Description: "You're disciplined and forward-thinking. Your financial habits show strong planning and control.",
			Strengths:   []string{"Excellent budgeting skills", "High savings rate", "Goal-oriented approach"},
			Challenges:  []string{"May be too restrictive", "Could miss growth opportunities", "Risk of burnout from over-control"},
			Recommendations: []string{
				"Explore investment options",
				"Balance saving with experiences",
				"Consider automating investments",
				"Set reward milestones",
			},
		},
	},
	{
		match: func(p Profile) bool { return p.Worry == "debt" || p.SpendingStyle == "credit" },
		tmpl: Archetype{
			Name:        DebtNavigator,
			Emoji:       "🧭",
			Description: "You're managing debt while trying to build stability. You need a clear path to financial freedom.",
			Strengths:   []string{"Aware of debt situation", "Willing to make changes", "Seeking solutions"},
			Challenges:  []string{"High-interest debt burden", "Limited savings capacity", "Credit dependency"},
			Recommendations: []string{
				"List all debts (highest interest first)",
				"Negotiate lower interest rates",
				"Use snowball/avalanche method",
				"Avoid new debt strictly",
			},
		},
	},
	{
		match: func(p Profile) bool { return p.Predictability == "seasonal" && p.UnexpectedExpenses == "frequent" },
		tmpl: Archetype{
			Name:        SeasonalSurvivor,
			Emoji:       "🌊",
			Description: "Your income ebbs and flows with seasons. You need strategies to smooth out the peaks and valleys.",
			Strengths:   []string{"Experience with income fluctuation", "Resilient mindset", "Understand business cycles"},
			Challenges:  []string{"Cashflow management in lean months", "Temptation to overspend in good months", "Planning for off-season"},
			Recommendations: []string{
				"Save 40% during peak season",
				"Create fixed monthly budget",
				"Diversify income sources",
				"Plan expenses for entire year",
			},
		},
	},
}

var balanced = Archetype{
	Name:            BalancedPlanner,
	Emoji:           "⚖️",
	Description:     "Your answers show no single dominant pressure. Keep a steady budget and revisit it as your income changes.",
	Strengths:       []string{"Even approach to money", "Room to adapt"},
	Challenges:      []string{"No clear financial priority"},
	Recommendations: []string{"Pick one goal for the next year", "Automate a fixed monthly saving"},
}

// ProfileOf reads the answers into a Profile; unanswered questions are "unknown".
func ProfileOf(a Answers) Profile {
	return Profile{
		IncomeSource:       a.value("q1"),
		Predictability:     a.value("q2"),
		Worry:              a.value("q3"),
		SpendingStyle:      a.value("q4"),
		Goal:               a.value("q5"),
		RiskProfile:        a.value("q6"),
		SavingsRate:        a.value("q7"),
		UnexpectedExpenses: a.value("q8"),
	}
}

// Classify maps answers to an archetype. Partial answers are allowed.
func Classify(a Answers) Archetype {
	p := ProfileOf(a)
	out := balanced
	for _, r := range rules {
		if r.match(p) {
			out = r.tmpl
			break
		}
	}
	out.Strengths = append([]string(nil), out.Strengths...)
	out.Challenges = append([]string(nil), out.Challenges...)
	out.Recommendations = append([]string(nil), out.Recommendations...)
	out.Profile = p
	return out
}
