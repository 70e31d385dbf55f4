package survey

import (
	"errors"
	"testing"
)

func answers(t *testing.T, pairs ...string) Answers {
	t.Helper()
	a := Answers{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := a.Answer(pairs[i], pairs[i+1]); err != nil {
			t.Fatalf("answer %s=%s: %v", pairs[i], pairs[i+1], err)
		}
	}
	return a
}

func TestAnswerValidation(t *testing.T) {
	a := Answers{}
	if err := a.Answer("q9", "a"); !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("expected unknown question, got %v", err)
	}
	if err := a.Answer("q1", "e"); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected unknown option, got %v", err)
	}
	if err := a.Answer("q1", "c"); err != nil || a["q1"] != "gig" {
		t.Fatalf("unexpected answer: %v %v", a, err)
	}
	if got := len(a.Missing()); got != 7 {
		t.Fatalf("expected 7 missing, got %d", got)
	}
}

func TestClassifyRulesInOrder(t *testing.T) {
	cases := []struct {
		name  string
		pairs []string
		want  string
	}{
		{"gig unpredictable", []string{"q1", "c", "q2", "c"}, HustleWarrior},
		// gig + unpredictable wins even with credit spending
		{"hustle beats debt", []string{"q1", "c", "q2", "c", "q4", "d"}, HustleWarrior},
		{"planned high savings", []string{"q4", "a", "q7", "d"}, StrategicSaver},
		{"planned beats debt worry", []string{"q3", "b", "q4", "a", "q7", "d"}, StrategicSaver},
		{"debt worry", []string{"q3", "b"}, DebtNavigator},
		{"credit spending", []string{"q4", "d"}, DebtNavigator},
		{"debt beats seasonal", []string{"q2", "d", "q3", "b", "q8", "c"}, DebtNavigator},
		{"seasonal frequent", []string{"q2", "d", "q8", "c"}, SeasonalSurvivor},
		{"seasonal very frequent", []string{"q2", "d", "q8", "d"}, BalancedPlanner},
		{"empty", nil, BalancedPlanner},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(answers(t, tc.pairs...))
			if got.Name != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got.Name)
			}
			if got.Emoji == "" || got.Description == "" || len(got.Recommendations) == 0 {
				t.Fatalf("archetype text missing: %+v", got)
			}
		})
	}
}

func TestClassifyProfile(t *testing.T) {
	got := Classify(answers(t, "q1", "a", "q6", "b"))
	if got.Profile.IncomeSource != "salary" || got.Profile.RiskProfile != "medium_risk" {
		t.Fatalf("unexpected profile: %+v", got.Profile)
	}
	if got.Profile.Goal != "unknown" {
		t.Fatalf("unanswered question should be unknown, got %q", got.Profile.Goal)
	}

	got.Recommendations[0] = "mutated"
	if Classify(Answers{}).Recommendations[0] == "mutated" {
		t.Fatalf("Classify must not share slices with its templates")
	}
}

func TestQuestionBank(t *testing.T) {
	qs := Questions()
	if len(qs) != 8 {
		t.Fatalf("expected 8 questions, got %d", len(qs))
	}
	for _, q := range qs {
		if len(q.Options) != 4 {
			t.Fatalf("%s: expected 4 options, got %d", q.ID, len(q.Options))
		}
	}
}
