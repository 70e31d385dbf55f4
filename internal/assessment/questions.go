// Package assessment runs the two-stage money-mindset assessment: a
// baseline round whose answers pick a mindset archetype, then a deep dive
// into that archetype plus the universal questions, ending in a report.
package assessment

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownQuestion = errors.New("unknown assessment question")
	ErrUnknownOption   = errors.New("unknown assessment option")
	ErrIncomplete      = errors.New("assessment incomplete")
)

type (
	// Option's Value is the mindset indicator the answer signals.
	Option struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Value string `json:"value"`
	}

	Question struct {
		ID       string   `json:"id"`
		Category string   `json:"category"`
		Text     string   `json:"text"`
		Options  []Option `json:"options"`
	}
)

var baseline = []Question{
	{ID: "b1", Category: "windfall", Text: "An unexpected ₹10,000 lands in your account. What do you do first?", Options: []Option{
		{"a", "Move it straight into savings", "saver"},
		{"b", "Put it into something that can grow", "investor"},
		{"c", "Treat myself or my family", "spender"},
		{"d", "Leave it and try not to think about it", "avoider"},
	}},
	{ID: "b2", Category: "awareness", Text: "How often do you check your bank balance?", Options: []Option{
		{"a", "Several times a day, just to be sure", "hyper_aware"},
		{"b", "When I review how my investments are doing", "investor"},
		{"c", "Rarely, I would rather not know", "anxiety_prone"},
		{"d", "Mostly to see what I still owe", "debt_focused"},
	}},
	{ID: "b3", Category: "credit", Text: "How do you think about loans and credit?", Options: []Option{
		{"a", "I avoid borrowing completely", "debt_averse"},
		{"b", "Useful leverage when the opportunity is good", "investor"},
		{"c", "Handy for things I want now", "spender"},
		{"d", "Paying off what I owe comes before anything else", "debt_focused"},
	}},
	{ID: "b4", Category: "spending", Text: "What makes a purchase feel good?", Options: []Option{
		{"a", "Getting the best price after comparing", "saver"},
		{"b", "Knowing it pays me back later", "investor"},
		{"c", "The rush of buying something new", "satisfaction_prone"},
		{"d", "Relief that the decision is over", "avoider"},
	}},
	{ID: "b5", Category: "bills", Text: "A large bill arrives. What happens next?", Options: []Option{
		{"a", "I pay it the same day", "saver"},
		{"b", "I pay it and move what is left to investments", "investor"},
		{"c", "It stays unopened for a while", "avoider"},
		{"d", "I feel a knot in my stomach", "anxiety_prone"},
	}},
}

var deepDive = map[Archetype][]Question{
	Saver: {
		{ID: "saver_1", Category: "anxiety", Text: "How do you feel after a non-essential purchase?", Options: []Option{
			{"a", "Guilty for days", "guilt"},
			{"b", "Uneasy until I check my balance", "checking"},
			{"c", "Fine if it was planned", "planned"},
			{"d", "Happy, I earned it", "relaxed"},
		}},
		{ID: "saver_2", Category: "risk_tolerance", Text: "Where does most of your spare money sit?", Options: []Option{
			{"a", "Cash or a savings account", "cash"},
			{"b", "Fixed deposits", "fixed"},
			{"c", "A mix with some market funds", "mixed"},
			{"d", "Mostly invested", "invested"},
		}},
	},
	Investor: {
		{ID: "investor_1", Category: "discipline", Text: "How many months of expenses do you keep liquid?", Options: []Option{
			{"a", "None, it is all invested", "none"},
			{"b", "Less than three", "thin"},
			{"c", "Three to six", "buffer"},
			{"d", "More than six", "deep"},
		}},
		{ID: "investor_2", Category: "risk_tolerance", Text: "A stock you hold doubles. What do you do?", Options: []Option{
			{"a", "Buy more", "concentrate"},
			{"b", "Hold and watch", "hold"},
			{"c", "Trim it back to my target weight", "rebalance"},
			{"d", "Sell everything", "exit"},
		}},
	},
	Spender: {
		{ID: "spender_1", Category: "discipline", Text: "When do you usually shop online?", Options: []Option{
			{"a", "When I am bored or stressed", "emotional"},
			{"b", "When a sale notification arrives", "triggered"},
			{"c", "When I actually need something", "needs"},
			{"d", "Almost never", "rare"},
		}},
		{ID: "spender_2", Category: "literacy", Text: "Do you know where last month's money went?", Options: []Option{
			{"a", "No idea, it just disappears", "unknown"},
			{"b", "Roughly", "rough"},
			{"c", "Yes, I track it", "tracked"},
			{"d", "I would rather not look", "avoid"},
		}},
	},
	Avoider: {
		{ID: "avoider_1", Category: "anxiety", Text: "How many unopened bills or statements do you have right now?", Options: []Option{
			{"a", "None", "none"},
			{"b", "One or two", "few"},
			{"c", "A pile", "pile"},
			{"d", "I do not know", "unknown"},
		}},
		{ID: "avoider_2", Category: "literacy", Text: "Could you state your total debt within ₹5,000?", Options: []Option{
			{"a", "Yes", "yes"},
			{"b", "Probably", "probably"},
			{"c", "Not really", "no"},
			{"d", "I am afraid to find out", "afraid"},
		}},
	},
	DebtFocused: {
		{ID: "debt_1", Category: "literacy", Text: "Which debt do you pay off first?", Options: []Option{
			{"a", "The one with the highest interest", "avalanche"},
			{"b", "The smallest balance", "snowball"},
			{"c", "Whichever lender calls most", "pressure"},
			{"d", "I split payments evenly", "even"},
		}},
		{ID: "debt_2", Category: "anxiety", Text: "How does your debt make you feel about yourself?", Options: []Option{
			{"a", "Like a failure", "shame"},
			{"b", "Stressed but in control", "stressed"},
			{"c", "It is just numbers", "neutral"},
			{"d", "Motivated", "motivated"},
		}},
	},
	Universal: {
		{ID: "u1", Category: "literacy", Text: "How confident are you explaining how interest compounds?", Options: []Option{
			{"a", "Very confident", "high"},
			{"b", "Somewhat", "medium"},
			{"c", "Not really", "low"},
			{"d", "Never heard of it", "none"},
		}},
		{ID: "u2", Category: "discipline", Text: "Do you follow a monthly budget?", Options: []Option{
			{"a", "Every month", "always"},
			{"b", "Most months", "mostly"},
			{"c", "I start and give up", "sometimes"},
			{"d", "No", "never"},
		}},
	},
}

// Baseline returns the first-round questions in order.
func Baseline() []Question {
	return append([]Question(nil), baseline...)
}

// DeepDive returns the archetype's follow-up questions followed by the
// universal ones. Universal alone gets only the universal questions.
func DeepDive(a Archetype) []Question {
	out := append([]Question(nil), deepDive[a]...)
	if a != Universal {
		out = append(out, deepDive[Universal]...)
	}
	return out
}

func lookup(questionID string) (Question, bool) {
	for _, q := range baseline {
		if q.ID == questionID {
			return q, true
		}
	}
	for _, qs := range deepDive {
		for _, q := range qs {
			if q.ID == questionID {
				return q, true
			}
		}
	}
	return Question{}, false
}

// Answers maps question ids to the chosen option's value.
type Answers map[string]string

// Answer records optionID for questionID from either stage.
func (a Answers) Answer(questionID, optionID string) error {
	q, ok := lookup(questionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	for _, o := range q.Options {
		if o.ID == optionID {
			a[questionID] = o.Value
			return nil
		}
	}
	return fmt.Errorf("%w: %s for %s", ErrUnknownOption, optionID, questionID)
}

// Missing lists unanswered questions: the baseline first, and only once
// that is complete, the deep dive for the archetype it selects.
func (a Answers) Missing() []string {
	var missing []string
	for _, q := range baseline {
		if _, ok := a[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		return missing
	}
	for _, q := range DeepDive(a.Archetype()) {
		if _, ok := a[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

// Archetype is the archetype the baseline answers given so far select.
func (a Answers) Archetype() Archetype {
	return Determine(a.baselineValues())
}

// baselineValues returns the answered baseline values in question order.
func (a Answers) baselineValues() []string {
	values := make([]string, 0, len(baseline))
	for _, q := range baseline {
		if v, ok := a[q.ID]; ok {
			values = append(values, v)
		}
	}
	return values
}
