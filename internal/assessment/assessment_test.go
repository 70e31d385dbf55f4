package assessment

import (
	"errors"
	"testing"
)

func TestDetermine(t *testing.T) {
	cases := []struct {
		name   string
		values []string
		want   Archetype
	}{
		{"saver", []string{"saver", "saver", "investor"}, Saver},
		{"debt averse counts as saver", []string{"debt_averse", "debt_averse", "spender"}, Saver},
		{"hyper aware counts as saver", []string{"hyper_aware"}, Saver},
		{"investor", []string{"investor", "spender", "investor"}, Investor},
		{"satisfaction prone spender", []string{"satisfaction_prone", "satisfaction_prone", "avoider"}, Spender},
		{"anxiety prone avoider", []string{"anxiety_prone", "anxiety_prone", "saver"}, Avoider},
		{"debt focused", []string{"debt_focused", "investor", "debt_focused"}, DebtFocused},
		{"tie goes to first answered", []string{"spender", "investor", "investor", "spender"}, Spender},
		{"unmapped value", []string{"guilt", "guilt", "saver"}, Universal},
		{"no answers", nil, Universal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Determine(tc.values); got != tc.want {
				t.Fatalf("Determine(%v) = %s, want %s", tc.values, got, tc.want)
			}
		})
	}
}

func TestTallyKeepsFirstSeenOrder(t *testing.T) {
	got := Tally([]string{"b", "a", "b", "c", "a", "b"})
	want := []IndicatorCount{{"b", 3}, {"a", 2}, {"c", 1}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReportForFallsBackToSaver(t *testing.T) {
	if got := ReportFor(Universal).Title; got != "The Anxious Guardian" {
		t.Fatalf("universal report = %q", got)
	}
	if got := ReportFor(Archetype("bogus")).Title; got != "The Anxious Guardian" {
		t.Fatalf("unknown archetype report = %q", got)
	}

	titles := map[Archetype]string{
		Investor:    "The Calculated Risk-Taker",
		Spender:     "The Experience Maximizer",
		Avoider:     "The Ostrich Syndrome",
		DebtFocused: "The Burden Carrier",
	}
	for a, want := range titles {
		r := ReportFor(a)
		if r.Title != want {
			t.Fatalf("%s: title %q, want %q", a, r.Title, want)
		}
		if len(r.ActionPlan) != 3 || len(r.KeyBlockers) == 0 {
			t.Fatalf("%s: incomplete report %+v", a, r)
		}
	}

	r := ReportFor(Saver)
	if r.Scores != (MindsetScores{Literacy: 75, Anxiety: 85, Discipline: 95, RiskTolerance: 15}) {
		t.Fatalf("unexpected saver scores %+v", r.Scores)
	}
	r.KeyBlockers[0] = "mutated"
	if ReportFor(Saver).KeyBlockers[0] == "mutated" {
		t.Fatalf("ReportFor must return a copy")
	}
}

func TestDeepDiveIncludesUniversal(t *testing.T) {
	qs := DeepDive(Investor)
	if len(qs) != 4 || qs[0].ID != "investor_1" || qs[3].ID != "u2" {
		t.Fatalf("unexpected investor deep dive %v", ids(qs))
	}
	if qs := DeepDive(Universal); len(qs) != 2 || qs[0].ID != "u1" {
		t.Fatalf("unexpected universal deep dive %v", ids(qs))
	}
}

func TestAnswersValidationAndMissing(t *testing.T) {
	a := Answers{}
	if err := a.Answer("b9", "a"); !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("expected unknown question, got %v", err)
	}
	if err := a.Answer("b1", "z"); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected unknown option, got %v", err)
	}

	if got := a.Missing(); len(got) != len(Baseline()) {
		t.Fatalf("expected every baseline question missing, got %v", got)
	}
	for _, q := range Baseline() {
		if err := a.Answer(q.ID, "d"); err != nil {
			t.Fatalf("answer %s: %v", q.ID, err)
		}
	}
	// avoider and debt_focused tie at two; avoider was answered first
	missing := a.Missing()
	if len(missing) != 4 || missing[0] != "avoider_1" || missing[3] != "u2" {
		t.Fatalf("expected the avoider deep dive missing, got %v", missing)
	}
	if _, err := Evaluate(a); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected incomplete, got %v", err)
	}
}

func TestEvaluate(t *testing.T) {
	a := Answers{}
	for _, pair := range [][2]string{
		{"b1", "d"}, {"b2", "c"}, {"b3", "a"}, {"b4", "d"}, {"b5", "d"},
		{"avoider_1", "c"}, {"avoider_2", "d"}, {"u1", "c"}, {"u2", "d"},
	} {
		if err := a.Answer(pair[0], pair[1]); err != nil {
			t.Fatalf("answer %v: %v", pair, err)
		}
	}
	res, err := Evaluate(a)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	// avoider x2, anxiety_prone x2, debt_averse x1: avoider was answered first
	if res.Archetype != Avoider || res.Report.Title != "The Ostrich Syndrome" {
		t.Fatalf("unexpected result %s / %s", res.Archetype, res.Report.Title)
	}
	if len(res.Tally) != 3 || res.Tally[0].Value != "avoider" || res.Tally[0].Count != 2 {
		t.Fatalf("unexpected tally %v", res.Tally)
	}
}

func ids(qs []Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}
