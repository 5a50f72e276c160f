package observations

import "strings"

// Normalize converts stored health logs into scorer-facing observations.
//
// The input is trusted to be ordered most-recent-first; this function does
// not reorder. Individual fields that fail to parse become the unknown
// sentinel, and a missing weight stays nil so that weight-change rules can
// skip it instead of reading a bogus zero.
func Normalize(logs []HealthLog) []Observation {
	out := make([]Observation, 0, len(logs))
	for _, l := range logs {
		out = append(out, Observation{
			Date:        l.Date,
			Weight:      copyWeight(l.Weight),
			FoodType:    strings.TrimSpace(l.FoodType),
			Mood:        ParseMood(l.Mood),
			Stool:       ParseStool(l.StoolInfo),
			Appetite:    ParseAppetite(l.Appetite),
			Activity:    ParseActivity(l.Activity),
			Temperature: ParseTemperature(l.Temperature),
			Breathing:   ParseBreathing(l.Breathing),
			Symptoms:    strings.TrimSpace(l.Symptoms),
			Notes:       strings.TrimSpace(l.Notes),
		})
	}
	return out
}

// copyWeight detaches the pointer from the source log. Non-positive stored
// weights are treated as absent.
func copyWeight(w *float64) *float64 {
	if w == nil || *w <= 0 {
		return nil
	}
	v := *w
	return &v
}
