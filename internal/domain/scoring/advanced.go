package scoring

import (
	"fmt"

	"pet-health-bot/internal/domain/observations"
)

const (
	riskWindow  = 7 // risk-factor accumulation
	trendWindow = 5 // trend summary derivation
)

// AdvancedScore computes the premium-tier score, alerts, risk level and
// trend summary over a rolling window of the most recent observations.
// Observations must be ordered most-recent-first.
func AdvancedScore(obs []Observation, profile Profile) Result {
	if len(obs) == 0 {
		return Result{
			Score:        50,
			RiskLevel:    RiskLow,
			TrendSummary: "insufficient data for trend analysis",
		}
	}

	window := obs
	if len(window) > riskWindow {
		window = window[:riskWindow]
	}

	score := 100
	risk := RiskLow
	var alerts []Alert
	var details []string

	// Weight: pairwise percent changes between consecutive recorded weights.
	weights := make([]float64, 0, len(window))
	for _, o := range window {
		if o.Weight != nil {
			weights = append(weights, *o.Weight)
		}
	}
	if len(weights) >= 2 {
		var changes []float64
		for i := 0; i+1 < len(weights); i++ {
			if weights[i+1] > 0 {
				changes = append(changes, abs(weights[i]-weights[i+1])/weights[i+1]*100)
			}
		}
		if len(changes) > 0 {
			maxChange, sum := 0.0, 0.0
			for _, c := range changes {
				if c > maxChange {
					maxChange = c
				}
				sum += c
			}
			avgChange := sum / float64(len(changes))

			switch {
			case maxChange > 10:
				score -= 25
				risk = maxRisk(risk, RiskCritical)
				alerts = append(alerts, Alert{SeverityCritical, "critical weight change"})
				details = append(details, fmt.Sprintf("max weight change %.1f%%", maxChange))
			case maxChange > 5:
				score -= 15
				risk = maxRisk(risk, RiskHigh)
				alerts = append(alerts, Alert{SeverityWarning, "notable weight change"})
			case avgChange > 2:
				score -= 8
				risk = maxRisk(risk, RiskModerate)
				alerts = append(alerts, Alert{SeverityNotice, "weight fluctuation"})
			}
		}
	}

	// Mood: fraction of known moods that are bad.
	moodKnown, moodBad := 0, 0
	for _, o := range window {
		if o.Mood == observations.MoodUnknown {
			continue
		}
		moodKnown++
		if badMood(o.Mood) {
			moodBad++
		}
	}
	if moodKnown > 0 {
		ratio := float64(moodBad) / float64(moodKnown)
		switch {
		case ratio >= 0.8:
			score -= 20
			risk = maxRisk(risk, RiskCritical)
			alerts = append(alerts, Alert{SeverityCritical, "persistently poor mood"})
		case ratio >= 0.6:
			score -= 15
			risk = maxRisk(risk, RiskHigh)
			alerts = append(alerts, Alert{SeverityWarning, "poor mood pattern"})
		case ratio >= 0.4:
			score -= 8
			risk = maxRisk(risk, RiskModerate)
			alerts = append(alerts, Alert{SeverityNotice, "mood concern"})
		}
	}

	// Digestive: bloody stool dominates everything else.
	bloody, abnormal := 0, 0
	for _, o := range window {
		switch o.Stool {
		case observations.StoolBloody:
			bloody++
		case observations.StoolSoft, observations.StoolHard:
			abnormal++
		}
	}
	switch {
	case bloody >= 2:
		score -= 30
		risk = RiskCritical
		alerts = append([]Alert{{SeverityCritical, "persistent blood in stool — emergency"}}, alerts...)
	case bloody == 1:
		score -= 20
		risk = maxRisk(risk, RiskHigh)
		alerts = append(alerts, Alert{SeverityCritical, "blood in stool"})
	case abnormal >= 3:
		score -= 15
		risk = maxRisk(risk, RiskHigh)
		alerts = append(alerts, Alert{SeverityWarning, "ongoing digestive trouble"})
	case abnormal >= 1:
		score -= 8
		risk = maxRisk(risk, RiskModerate)
		alerts = append(alerts, Alert{SeverityNotice, "digestive irregularity"})
	}

	// Activity: fraction of known entries at the low level.
	actKnown, actLow := 0, 0
	for _, o := range window {
		if o.Activity == observations.ActivityUnknown {
			continue
		}
		actKnown++
		if o.Activity == observations.ActivityLow {
			actLow++
		}
	}
	if actKnown > 0 {
		ratio := float64(actLow) / float64(actKnown)
		switch {
		case ratio >= 0.8:
			score -= 15
			risk = maxRisk(risk, RiskHigh)
			alerts = append(alerts, Alert{SeverityWarning, "very low activity"})
		case ratio >= 0.6:
			score -= 10
			risk = maxRisk(risk, RiskModerate)
			alerts = append(alerts, Alert{SeverityNotice, "low activity"})
		case ratio >= 0.4:
			score -= 5
			alerts = append(alerts, Alert{SeverityNotice, "reduced activity"})
		}
	}

	// Age modifiers.
	if profile.AgeYears > 10 {
		score -= 5
		risk = maxRisk(risk, RiskModerate)
		details = append(details, "senior age risk factor")
	} else if profile.AgeYears < 1 {
		score -= 3
		details = append(details, "young age sensitivity")
	}

	// Trend bonus/penalty: only with enough history to split into a recent
	// and an older sub-window. Fractions, not counts, since the sub-windows
	// have different sizes.
	if len(obs) >= 7 {
		older := obs[3:]
		if len(older) > 4 {
			older = older[:4]
		}
		recentFrac, recentOK := goodMoodFraction(obs[:3])
		olderFrac, olderOK := goodMoodFraction(older)
		if recentOK && olderOK {
			if recentFrac > olderFrac {
				score += 5
				details = append(details, "improving mood trend")
			} else if recentFrac < olderFrac {
				score -= 5
				details = append(details, "declining mood trend")
			}
		}
	}

	return Result{
		Score:        clampScore(score),
		Alerts:       alerts,
		RiskLevel:    risk,
		TrendSummary: trendSummary(obs),
		Details:      details,
	}
}

// goodMoodFraction reports the share of known moods that are positive; the
// bool is false when no mood in the slice is known.
func goodMoodFraction(obs []Observation) (float64, bool) {
	known, good := 0, 0
	for _, o := range obs {
		if o.Mood == observations.MoodUnknown {
			continue
		}
		known++
		if goodMood(o.Mood) {
			good++
		}
	}
	if known == 0 {
		return 0, false
	}
	return float64(good) / float64(known), true
}

// trendSummary describes weight, mood and activity direction over the trend
// window. It is derived independently of the penalty arithmetic.
func trendSummary(obs []Observation) string {
	if len(obs) < 3 {
		return "insufficient data for trend analysis"
	}

	window := obs
	if len(window) > trendWindow {
		window = window[:trendWindow]
	}

	var parts []string

	weights := make([]float64, 0, len(window))
	for _, o := range window {
		if o.Weight != nil {
			weights = append(weights, *o.Weight)
		}
	}
	if len(weights) >= 3 {
		newest, oldest := weights[0], weights[len(weights)-1]
		switch {
		case newest > oldest:
			parts = append(parts, "weight: increasing")
		case newest < oldest:
			parts = append(parts, "weight: decreasing")
		default:
			parts = append(parts, "weight: stable")
		}
	}

	moodKnown, moodGood := 0, 0
	for _, o := range window {
		if o.Mood == observations.MoodUnknown {
			continue
		}
		moodKnown++
		if goodMood(o.Mood) {
			moodGood++
		}
	}
	if moodKnown > 0 {
		pct := float64(moodGood) / float64(moodKnown) * 100
		var bucket string
		switch {
		case pct >= 80:
			bucket = "stable/positive"
		case pct >= 60:
			bucket = "fairly positive"
		case pct >= 40:
			bucket = "variable"
		default:
			bucket = "concerning"
		}
		parts = append(parts, "mood: "+bucket)
	}

	actKnown, actHigh, actLow := 0, 0, 0
	for _, o := range window {
		switch o.Activity {
		case observations.ActivityUnknown:
			continue
		case observations.ActivityHigh:
			actHigh++
		case observations.ActivityLow:
			actLow++
		}
		actKnown++
	}
	if actKnown > 0 {
		switch {
		case actHigh >= actKnown/2 && actHigh > 0:
			parts = append(parts, "activity: active")
		case actLow >= actKnown/2 && actLow > 0:
			parts = append(parts, "activity: low-activity")
		default:
			parts = append(parts, "activity: moderate")
		}
	}

	if len(parts) == 0 {
		return "no discernible trends"
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += "; " + p
	}
	return out
}
