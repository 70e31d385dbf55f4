package simulation

// BehaviorCount is one row of the behavioral tally, in first-seen order.
type BehaviorCount struct {
	Tag        string `json:"tag"`
	FirstIndex int    `json:"firstIndex"`
	Count      int    `json:"count"`
}

// tallyBehaviors counts tags in the order they first appear. The slice, not a
// map, carries the ordering so tie-breaks do not depend on map iteration.
func tallyBehaviors(responses []Response) []BehaviorCount {
	var counts []BehaviorCount
	index := make(map[string]int, len(responses))
	for i, r := range responses {
		if pos, ok := index[r.BehavioralPattern]; ok {
			counts[pos].Count++
			continue
		}
		index[r.BehavioralPattern] = len(counts)
		counts = append(counts, BehaviorCount{Tag: r.BehavioralPattern, FirstIndex: i, Count: 1})
	}
	return counts
}

// dominantBehavior returns the most frequent tag; on a tie the tag seen
// earliest in the session wins.
func dominantBehavior(counts []BehaviorCount) string {
	best := -1
	for i, c := range counts {
		if best < 0 || c.Count > counts[best].Count {
			best = i
		}
	}
	if best < 0 {
		return ""
	}
	return counts[best].Tag
}
