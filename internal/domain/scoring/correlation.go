package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// minCorrelationRecords is the smallest history the analyzer will look at;
// below it every result list stays empty rather than erroring.
const minCorrelationRecords = 3

// triggerMinFrequency is how often a (food, symptom) pair must co-occur
// before it is reported as a trigger.
const triggerMinFrequency = 2

// AnalyzeCorrelations scans a most-recent-first record sequence for
// diet→mood, diet→symptom and activity→symptom transitions and aggregates
// repeated (food, symptom) pairs into confidence-scored triggers.
//
// This is a structural pattern matcher, not causal inference: any pair that
// co-occurs often enough is reported, and deciding plausibility is left to
// the consumer of the result.
func AnalyzeCorrelations(recs []CorrelationRecord) CorrelationResult {
	res := CorrelationResult{
		DietMoodLinks:        []DietMoodLink{},
		ActivitySymptomLinks: []ActivitySymptomLink{},
		FoodIntakePatterns:   []FoodIntakePattern{},
		DetectedTriggers:     []Trigger{},
	}
	if len(recs) < minCorrelationRecords {
		return res
	}

	for i := 0; i+1 < len(recs); i++ {
		cur, prev := recs[i], recs[i+1]

		curFood := strings.TrimSpace(cur.FoodType)
		prevFood := strings.TrimSpace(prev.FoodType)
		curSymptoms := symptomText(cur.Symptoms)
		curActivity := strings.TrimSpace(cur.Activity)

		if curFood != "" && curFood != prevFood && cur.Mood != prev.Mood {
			res.DietMoodLinks = append(res.DietMoodLinks, DietMoodLink{
				Date:       cur.Date,
				DietChange: dietChangeText(prevFood, curFood),
				MoodBefore: prev.Mood,
				MoodAfter:  cur.Mood,
			})
		}

		if curFood != "" && curSymptoms != "" {
			res.FoodIntakePatterns = append(res.FoodIntakePatterns, FoodIntakePattern{
				Date:     cur.Date,
				Food:     curFood,
				Symptoms: curSymptoms,
				Notes:    strings.TrimSpace(cur.Notes),
			})
		}

		if curActivity != "" && curSymptoms != "" && curActivity != strings.TrimSpace(prev.Activity) {
			res.ActivitySymptomLinks = append(res.ActivitySymptomLinks, ActivitySymptomLink{
				Date:     cur.Date,
				Activity: curActivity,
				Previous: strings.TrimSpace(prev.Activity),
				Symptoms: curSymptoms,
			})
		}
	}

	res.DetectedTriggers = detectTriggers(recs)
	return res
}

type pairKey struct {
	food    string
	symptom string
}

// detectTriggers counts (food, symptom) co-occurrences across all records
// and reports every pair seen at least twice. Output order is fixed
// (frequency desc, then food, then symptom) so identical input always
// produces identical output.
func detectTriggers(recs []CorrelationRecord) []Trigger {
	counts := make(map[pairKey]int)
	for _, r := range recs {
		food := strings.TrimSpace(r.FoodType)
		symptom := symptomText(r.Symptoms)
		if food == "" || symptom == "" {
			continue
		}
		counts[pairKey{food, symptom}]++
	}

	triggers := make([]Trigger, 0, len(counts))
	for k, n := range counts {
		if n < triggerMinFrequency {
			continue
		}
		triggers = append(triggers, Trigger{
			Trigger:    k.food,
			Effect:     k.symptom,
			Frequency:  n,
			Confidence: triggerConfidence(n),
		})
	}

	sort.Slice(triggers, func(i, j int) bool {
		if triggers[i].Frequency != triggers[j].Frequency {
			return triggers[i].Frequency > triggers[j].Frequency
		}
		if triggers[i].Trigger != triggers[j].Trigger {
			return triggers[i].Trigger < triggers[j].Trigger
		}
		return triggers[i].Effect < triggers[j].Effect
	})
	return triggers
}

func triggerConfidence(frequency int) float64 {
	// 0.3*3 rounds below 0.9 in float64; return the cap directly once the
	// frequency reaches it.
	if frequency >= 3 {
		return 0.9
	}
	return 0.3 * float64(frequency)
}

func dietChangeText(from, to string) string {
	if from == "" {
		from = "unrecorded"
	}
	return fmt.Sprintf("changed from %s to %s", from, to)
}

// symptomText returns the cleaned symptom text, treating "" and the literal
// "none" as absent.
func symptomText(s string) string {
	t := strings.TrimSpace(s)
	if strings.EqualFold(t, "none") {
		return ""
	}
	return t
}
