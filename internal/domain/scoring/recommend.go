package scoring

import (
	"fmt"

	"pet-health-bot/internal/domain/observations"
)

// rootCauseConfidence is the trigger confidence above which a detected
// trigger is promoted to a root cause.
const rootCauseConfidence = 0.6

// dietMoodPenalty is fed back into the numeric score for every diet change
// that flipped the mood from positive to negative. Correlation findings
// lower the score beyond the base rule set on purpose.
const dietMoodPenalty = 5

// EnhancedScore runs the advanced scorer and folds correlation findings and
// stored learning patterns back into the result: root causes, a further
// score adjustment, and the prioritized recommendation list.
func EnhancedScore(obs []Observation, profile Profile, corr CorrelationResult, patterns []LearningPattern) Result {
	res := AdvancedScore(obs, profile)

	score := res.Score
	var causes []RootCause

	for _, t := range corr.DetectedTriggers {
		if t.Confidence <= rootCauseConfidence {
			continue
		}
		causes = append(causes, RootCause{
			Cause:    t.Trigger,
			Effect:   t.Effect,
			Evidence: fmt.Sprintf("co-occurred %d times (confidence %.1f)", t.Frequency, t.Confidence),
		})
	}

	for _, l := range corr.DietMoodLinks {
		before := observations.ParseMood(l.MoodBefore)
		after := observations.ParseMood(l.MoodAfter)
		if !goodMood(before) || !badMood(after) {
			continue
		}
		causes = append(causes, RootCause{
			Cause:    l.DietChange,
			Effect:   fmt.Sprintf("mood shifted from %s to %s", l.MoodBefore, l.MoodAfter),
			Evidence: "diet change on " + l.Date,
		})
		score -= dietMoodPenalty
	}

	for _, p := range patterns {
		if p.Confidence <= rootCauseConfidence {
			continue
		}
		causes = append(causes, RootCause{
			Cause:    p.Type,
			Effect:   p.Data,
			Evidence: fmt.Sprintf("learned pattern (confidence %.1f)", p.Confidence),
		})
	}

	res.Score = clampScore(score)
	res.RootCauses = causes
	res.Recommendations = Recommendations(res.RiskLevel, profile, obs, 8)
	return res
}

// Recommendations assembles the ordered advice list: risk-driven first, then
// age-specific, then findings from the most recent observation, with generic
// care items only when nothing specific was produced. The list is capped at
// limit entries.
func Recommendations(riskLevel int, profile Profile, obs []Observation, limit int) []string {
	if limit <= 0 {
		limit = 6
	}
	var recs []string

	switch {
	case riskLevel >= RiskCritical:
		recs = append(recs,
			"see a veterinarian immediately",
			"contact an emergency clinic")
	case riskLevel >= RiskHigh:
		recs = append(recs,
			"schedule a veterinary visit as soon as possible",
			"prepare a symptom list for the vet")
	case riskLevel >= RiskModerate:
		recs = append(recs,
			"monitor health status closely",
			"keep logging daily observations")
	}

	if profile.AgeYears > 8 {
		recs = append(recs,
			"regular checkups for a senior pet",
			"consider a senior-specific diet")
	} else if profile.AgeYears < 1 {
		recs = append(recs,
			"extra care for a young pet",
			"keep the vaccination schedule on track")
	}

	if len(obs) > 0 {
		latest := obs[0]
		if latest.Mood == observations.MoodTiredLethargic {
			recs = append(recs, "investigate the cause of fatigue", "provide a calm resting environment")
		}
		if latest.Stool == observations.StoolBloody {
			recs = append(recs, "urgent vet visit for blood in stool")
		}
		if latest.Activity == observations.ActivityLow {
			recs = append(recs, "encourage gradual activity", "offer stimulating play")
		}
	}

	if len(recs) == 0 {
		recs = append(recs,
			"provide fresh, clean water",
			"keep feeding regular and balanced",
			"maintain hygiene of the living area",
			"continue daily health logging")
	}

	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}
