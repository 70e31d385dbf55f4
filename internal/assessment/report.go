package assessment

type (
	// MindsetScores are 0-100 ratings shown alongside the report.
	MindsetScores struct {
		Literacy      int `json:"literacy"`
		Anxiety       int `json:"anxiety"`
		Discipline    int `json:"discipline"`
		RiskTolerance int `json:"risk_tolerance"`
	}

	ActionStep struct {
		Title       string `json:"title"`
		Subtitle    string `json:"subtitle"`
		Description string `json:"description"`
	}

	Report struct {
		Title       string        `json:"title"`
		Icon        string        `json:"icon"`
		Color       string        `json:"color"`
		Scores      MindsetScores `json:"mindsetScores"`
		Summary     string        `json:"summary"`
		GoodNews    string        `json:"goodNews"`
		KeyBlockers []string      `json:"keyBlockers"`
		ActionPlan  []ActionStep  `json:"actionPlan"`
	}
)

// ReportFor returns the report for a; archetypes without their own report
// (Universal) get the saver report.
func ReportFor(a Archetype) Report {
	r, ok := reports[a]
	if !ok {
		r = reports[Saver]
	}
	r.KeyBlockers = append([]string(nil), r.KeyBlockers...)
	r.ActionPlan = append([]ActionStep(nil), r.ActionPlan...)
	return r
}

var reports = map[Archetype]Report{
	Saver: {
		Title:  "The Anxious Guardian",
		Icon:   "🛡️",
		Color:  "#4ECDC4",
		Scores: MindsetScores{Literacy: 75, Anxiety: 85, Discipline: 95, RiskTolerance: 15},
		Summary: "Your financial history suggests a background where money was scarce or a source of conflict. " +
			"As a result, you have developed a 'Scarcity Mindset.' You are excellent at saving and avoiding debt, " +
			"but your anxiety prevents you from enjoying your money or investing it for growth. You view money as " +
			"a shield against danger rather than a tool for opportunity.",
		GoodNews: "You have a superpower that 90% of people lack: discipline. Most people struggle with impulse " +
			"control and consumer debt. You have the opposite traits. You are cautious, responsible, and have built " +
			"a strong defense. However, in finance as in sports, defense keeps you in the game, but offense wins it.",
		KeyBlockers: []string{
			"Fear of market volatility and investment risk",
			"Guilt associated with non-essential spending",
			"Hoarding cash that loses value to inflation (silent thief)",
			"Checking bank balance multiple times daily",
		},
		ActionPlan: []ActionStep{
			{
				Title:    "The 'Mandatory Fun' Rule",
				Subtitle: "To cure guilt",
				Description: "Open a separate account and put 5% of your monthly income into it. You MUST spend this " +
					"money by month-end on something frivolous. If you save it, you've failed the assignment. By " +
					"making spending a 'rule,' you trick your brain into accepting it as responsible.",
			},
			{
				Title:    "Automated 'Exposure Therapy'",
				Subtitle: "To cure risk fear",
				Description: "Set up automatic ₹5,000/month transfer into a low-cost index fund. You're forbidden from " +
					"checking this account for 90 days. You can afford to lose ₹5,000. Over time, you'll see markets " +
					"fluctuate, but the world doesn't end. This builds your 'investment muscle.'",
			},
			{
				Title:    "The 'CFO Meeting'",
				Subtitle: "To cure anxiety",
				Description: "Delete banking apps from your phone. Schedule a recurring Friday 9 AM calendar invite - " +
					"this is your 'CFO Meeting.' This is the ONLY time you check balances and pay bills. Move from " +
					"'obsessive worrying' to 'strategic managing.'",
			},
		},
	},
	Investor: {
		Title:  "The Calculated Risk-Taker",
		Icon:   "📈",
		Color:  "#D7FF00",
		Scores: MindsetScores{Literacy: 85, Anxiety: 35, Discipline: 70, RiskTolerance: 90},
		Summary: "You understand that money is a tool for growth, not just security. You're willing to take " +
			"calculated risks and have educated yourself on investment principles. However, your confidence in " +
			"risk-taking may sometimes lead to overextension or neglecting emergency funds for immediate opportunities.",
		GoodNews: "You have the growth mindset that builds wealth. You understand leverage, compounding, and " +
			"opportunity cost. Most people stay poor because they're too afraid to invest. You're not one of them.",
		KeyBlockers: []string{
			"Overconfidence leading to concentrated positions",
			"Neglecting liquid emergency funds",
			"Chasing returns without risk assessment",
			"FOMO (Fear of Missing Out) driving decisions",
		},
		ActionPlan: []ActionStep{
			{
				Title:    "The 'Sleep Well' Buffer",
				Subtitle: "Balance growth with security",
				Description: "Before investing another rupee, build 6 months of expenses in a high-yield savings " +
					"account. This buffer lets you ride out market crashes without panic-selling. Your aggressive " +
					"portfolio is only an asset if you can hold it.",
			},
			{
				Title:    "The 'Portfolio Audit'",
				Subtitle: "Manage concentration risk",
				Description: "Review your holdings monthly. If any single stock exceeds 20% of your portfolio, trim it. " +
					"Wealth is built through returns; it's protected through diversification. Don't let one winning " +
					"bet become a losing bet.",
			},
			{
				Title:    "The 'Red Flag' Checklist",
				Subtitle: "Prevent emotional investing",
				Description: "Before any investment, ask: (1) Can I explain this to my grandmother? (2) Would I be " +
					"okay if this went to zero? (3) Am I buying because of FOMO? If you can't answer confidently, " +
					"don't invest.",
			},
		},
	},
	Spender: {
		Title:  "The Experience Maximizer",
		Icon:   "🎪",
		Color:  "#FF6B6B",
		Scores: MindsetScores{Literacy: 55, Anxiety: 40, Discipline: 35, RiskTolerance: 60},
		Summary: "You believe money exists to be enjoyed, and you're not wrong. You prioritize experiences and " +
			"immediate gratification over delayed rewards. However, 'Retail Therapy' and impulse purchases may be " +
			"masking deeper emotional needs, and the lack of financial buffer creates future vulnerability.",
		GoodNews: "You understand what many 'savers' don't: life is short, and experiences matter. The key is " +
			"making sure today's fun doesn't steal from tomorrow's security. We're going to build a system that " +
			"lets you enjoy life without the guilt or risk.",
		KeyBlockers: []string{
			"Impulse buying as emotional coping mechanism",
			"Lack of budget leading to 'money disappears' feeling",
			"Hiding purchases from partners (shame spiral)",
			"No emergency fund for unexpected expenses",
		},
		ActionPlan: []ActionStep{
			{
				Title:    "The '24-Hour Rule'",
				Subtitle: "Break impulse loops",
				Description: "For any non-essential purchase over ₹5,000, wait 24 hours before buying. Add it to a " +
					"wishlist. If you still want it tomorrow, buy it guilt-free. This breaks the dopamine-driven " +
					"impulse while still allowing pleasure.",
			},
			{
				Title:    "The 'Fun Budget'",
				Subtitle: "Spend without guilt",
				Description: "Calculate 20% of your monthly income as your 'No Questions Asked' fund. This money is " +
					"for experiences, treats, impulse buys - whatever. Once it's gone, it's gone. This prevents " +
					"overspending while allowing freedom.",
			},
			{
				Title:    "The 'Future You' Fund",
				Subtitle: "Build your safety net",
				Description: "Automate 10% of income to a savings account you can't easily access. Label it 'Future " +
					"You Fund.' This isn't for investing - it's your cushion. When you hit 3 months of expenses, " +
					"you've won. Then keep going.",
			},
		},
	},
	Avoider: {
		Title:  "The Ostrich Syndrome",
		Icon:   "🙈",
		Color:  "#FFD93D",
		Scores: MindsetScores{Literacy: 40, Anxiety: 95, Discipline: 30, RiskTolerance: 10},
		Summary: "Financial anxiety has led you to avoid looking at bills, balances, and statements altogether. " +
			"This avoidance creates a vicious cycle: the less you know, the more you fear, and the more you fear, " +
			"the less you want to know. This paralysis is keeping you stuck in a dangerous place.",
		GoodNews: "The fact that you're taking this assessment means you're ready to face this. Avoidance is a " +
			"trauma response, not a character flaw. With the right system, you can reduce anxiety and take back control.",
		KeyBlockers: []string{
			"Unopened bills and ignored statements",
			"No idea of actual net worth or debt total",
			"Paralysis preventing action on solvable problems",
			"Shame preventing asking for help",
		},
		ActionPlan: []ActionStep{
			{
				Title:    "The 'Financial Detox'",
				Subtitle: "Face the numbers",
				Description: "Set aside 2 hours this weekend. Open every bill, log into every account, write down " +
					"every balance. Yes, it will be uncomfortable. But you're going to discover it's not as bad as " +
					"the story in your head. Knowledge is the antidote to fear.",
			},
			{
				Title:    "The 'Accountability Partner'",
				Subtitle: "Break the shame cycle",
				Description: "Tell one trusted person about your financial situation. Ask them to check in weekly: " +
					"'Did you open your mail this week?' Shame thrives in silence. The moment you speak it out loud, " +
					"it loses 50% of its power.",
			},
			{
				Title:    "The 'Micro-Win Strategy'",
				Subtitle: "Build momentum",
				Description: "Pick the smallest debt or bill you have. Pay it off completely this month, even if it's " +
					"just ₹500. Then celebrate. Your brain needs to associate 'dealing with money' with 'winning,' " +
					"not 'suffering.' Stack small wins.",
			},
		},
	},
	DebtFocused: {
		Title:  "The Burden Carrier",
		Icon:   "⚖️",
		Color:  "#9B59B6",
		Scores: MindsetScores{Literacy: 65, Anxiety: 75, Discipline: 80, RiskTolerance: 25},
		Summary: "Your debt feels like a moral failure, not just a mathematical problem. You're disciplined about " +
			"payments, but the emotional weight of debt is affecting your self-worth and preventing you from seeing " +
			"beyond 'just paying it off.' Debt is a tool that was misused - it doesn't define you.",
		GoodNews: "Your discipline and focus on debt repayment show incredible strength. Many people ignore debt " +
			"entirely. You're confronting it head-on. Now we need to shift from 'shame-driven payoff' to 'strategic " +
			"elimination' while protecting your mental health.",
		KeyBlockers: []string{
			"Viewing debt as personal failure vs. math problem",
			"Sacrificing all quality of life to pay minimums",
			"Not distinguishing between high-interest and low-interest debt",
			"Neglecting savings while paying off debt",
		},
		ActionPlan: []ActionStep{
			{
				Title:    "The 'Debt Triage' System",
				Subtitle: "Strategic prioritization",
				Description: "List all debts by interest rate. Attack highest-interest debt aggressively (credit " +
					"cards, personal loans). For low-interest debt (student loans, mortgages), pay minimums and " +
					"invest the difference. This is math, not morality.",
			},
			{
				Title:    "The 'Parallel Build' Method",
				Subtitle: "Save while paying",
				Description: "Even while in debt, save ₹2,000/month in an emergency fund. Why? Because one " +
					"unexpected expense will force you back into debt. You need a buffer. Build to ₹20,000, then " +
					"refocus on debt. This prevents backsliding.",
			},
			{
				Title:    "The 'Freedom Date' Vision",
				Subtitle: "Shift from shame to strategy",
				Description: "Calculate your exact debt-free date based on current payments. Pin it on your wall. " +
					"This is your 'Financial Independence Day.' Every payment brings you closer. Debt is temporary; " +
					"your worth is permanent.",
			},
		},
	},
}
