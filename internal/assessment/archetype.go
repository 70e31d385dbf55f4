package assessment

import (
	"fmt"
	"strings"
)

// Archetype is the mindset selected by the baseline round.
type Archetype string

const (
	Saver       Archetype = "saver"
	Investor    Archetype = "investor"
	Spender     Archetype = "spender"
	Avoider     Archetype = "avoider"
	DebtFocused Archetype = "debt_focused"
	Universal   Archetype = "universal"
)

// indicators maps answer values to the archetype they point at. Values not
// listed here select Universal.
var indicators = map[string]Archetype{
	"saver":              Saver,
	"debt_averse":        Saver,
	"hyper_aware":        Saver,
	"investor":           Investor,
	"spender":            Spender,
	"satisfaction_prone": Spender,
	"avoider":            Avoider,
	"anxiety_prone":      Avoider,
	"debt_focused":       DebtFocused,
}

// IndicatorCount is one row of the baseline tally, in first-seen order.
type IndicatorCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Tally counts answer values in the order they first appear.
func Tally(values []string) []IndicatorCount {
	var counts []IndicatorCount
	index := make(map[string]int, len(values))
	for _, v := range values {
		if pos, ok := index[v]; ok {
			counts[pos].Count++
			continue
		}
		index[v] = len(counts)
		counts = append(counts, IndicatorCount{Value: v, Count: 1})
	}
	return counts
}

// Determine picks the archetype of the most frequent value. On a tie the
// value answered first wins; no answers at all gives Universal.
func Determine(values []string) Archetype {
	counts := Tally(values)
	best := -1
	for i, c := range counts {
		if best < 0 || c.Count > counts[best].Count {
			best = i
		}
	}
	if best < 0 {
		return Universal
	}
	if a, ok := indicators[counts[best].Value]; ok {
		return a
	}
	return Universal
}

// Result is a finished assessment.
type Result struct {
	Archetype Archetype        `json:"archetype"`
	Tally     []IndicatorCount `json:"tally"`
	Report    Report           `json:"report"`
}

// Evaluate scores complete answers. It fails with ErrIncomplete naming the
// unanswered questions.
func Evaluate(a Answers) (Result, error) {
	if missing := a.Missing(); len(missing) > 0 {
		return Result{}, fmt.Errorf("%w: unanswered %s", ErrIncomplete, strings.Join(missing, ", "))
	}
	values := a.baselineValues()
	arch := Determine(values)
	return Result{
		Archetype: arch,
		Tally:     Tally(values),
		Report:    ReportFor(arch),
	}, nil
}
