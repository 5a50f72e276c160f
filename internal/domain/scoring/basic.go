package scoring

import "pet-health-bot/internal/domain/observations"

// BasicScore computes the free-tier health score from the most recent
// observation, plus a single weight comparison against the one before it.
//
// An empty observation list is not an error: it yields the neutral
// insufficient-data default of 50 with no alerts.
func BasicScore(obs []Observation) (int, []Alert) {
	if len(obs) == 0 {
		return 50, nil
	}

	score := 100
	var alerts []Alert
	latest := obs[0]

	if latest.Stool == observations.StoolBloody {
		score -= 30
		alerts = append(alerts, Alert{SeverityCritical, "bloody stool — seek veterinary care immediately"})
	}
	if latest.Mood == observations.MoodTiredLethargic {
		score -= 15
		alerts = append(alerts, Alert{SeverityWarning, "lethargy"})
	}
	if latest.Activity == observations.ActivityLow {
		score -= 10
		alerts = append(alerts, Alert{SeverityNotice, "low activity"})
	}

	// Weight comparison needs two recorded weights and a usable denominator.
	// The 10% threshold is strict: exactly 10.0% does not fire.
	if len(obs) >= 2 && latest.Weight != nil && obs[1].Weight != nil && *obs[1].Weight > 0 {
		w0, w1 := *latest.Weight, *obs[1].Weight
		pct := abs(w0-w1) / w1 * 100
		if pct > 10 {
			score -= 20
			alerts = append(alerts, Alert{SeverityCritical, "large weight change"})
		}
	}

	return clampScore(score), alerts
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
