package bot

import (
	"fmt"
	"strings"

	"pet-health-bot/internal/domain/observations"
	"pet-health-bot/internal/domain/pets"
	"pet-health-bot/internal/domain/scoring"
	"pet-health-bot/internal/domain/subscriptions"
)

func renderPetCard(p pets.Pet) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", speciesEmoji(p.Species), p.Name)
	fmt.Fprintf(&sb, "Species: %s\n", p.Species)
	if p.Breed != "" {
		fmt.Fprintf(&sb, "Breed: %s\n", p.Breed)
	}
	fmt.Fprintf(&sb, "Sex: %s\n", p.Sex)
	fmt.Fprintf(&sb, "Age: %s\n", p.Age())
	if p.Weight != nil {
		fmt.Fprintf(&sb, "Weight: %.1f kg\n", *p.Weight)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderPetProfileLine is the one-line profile fed into chat prompts.
func renderPetProfileLine(p pets.Pet) string {
	parts := []string{string(p.Species), p.Name, "age " + p.Age()}
	if p.Breed != "" {
		parts = append(parts, p.Breed)
	}
	if p.Weight != nil {
		parts = append(parts, fmt.Sprintf("%.1f kg", *p.Weight))
	}
	return strings.Join(parts, ", ")
}

func renderHistory(petName string, logs []observations.HealthLog) string {
	if len(logs) == 0 {
		return "No entries for " + petName + " yet."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "📖 Recent entries for %s:\n", petName)
	for _, l := range logs {
		fmt.Fprintf(&sb, "\n%s", l.Date.Format("Mon 02 Jan"))
		if l.Weight != nil {
			fmt.Fprintf(&sb, " · %.1f kg", *l.Weight)
		}
		if l.Mood != "" {
			fmt.Fprintf(&sb, " · mood %s", strings.ReplaceAll(l.Mood, "_", " "))
		}
		if l.StoolInfo != "" {
			fmt.Fprintf(&sb, " · stool %s", l.StoolInfo)
		}
		if s := strings.TrimSpace(l.Symptoms); s != "" && !strings.EqualFold(s, "none") {
			fmt.Fprintf(&sb, " · ⚠ %s", s)
		}
	}
	return sb.String()
}

func renderBasicAnalysis(petName string, score int, alerts []scoring.Alert) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Health check for %s\n\n", petName)
	fmt.Fprintf(&sb, "%s Score: %d/100\n", scoreEmoji(score), score)

	if len(alerts) > 0 {
		sb.WriteString("\nFindings:\n")
		for _, a := range alerts {
			fmt.Fprintf(&sb, "%s %s\n", severityEmoji(a.Severity), a.Message)
		}
	} else {
		sb.WriteString("\nNo issues found in the recent entries. 👍\n")
	}

	sb.WriteString("\n⭐ Premium adds trend analysis, food-symptom correlations and personalized recommendations.")
	return sb.String()
}

func renderAdvancedAnalysis(petName string, res scoring.Result, corr scoring.CorrelationResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Full analysis for %s\n\n", petName)
	sb.WriteString(renderScoreLine(res))

	if res.TrendSummary != "" {
		fmt.Fprintf(&sb, "\n📈 Trend: %s\n", res.TrendSummary)
	}

	if len(res.Alerts) > 0 {
		sb.WriteString("\nFindings:\n")
		for _, a := range res.Alerts {
			fmt.Fprintf(&sb, "%s %s\n", severityEmoji(a.Severity), a.Message)
		}
	}

	if len(corr.DetectedTriggers) > 0 {
		sb.WriteString("\n🔍 Detected triggers:\n")
		for _, t := range corr.DetectedTriggers {
			fmt.Fprintf(&sb, "• %s → %s (seen %d times, confidence %.0f%%)\n",
				t.Trigger, t.Effect, t.Frequency, t.Confidence*100)
		}
	}

	if len(res.RootCauses) > 0 {
		sb.WriteString("\n🧩 Likely causes:\n")
		for _, rc := range res.RootCauses {
			fmt.Fprintf(&sb, "• %s → %s (%s)\n", rc.Cause, rc.Effect, rc.Evidence)
		}
	}

	if len(res.Recommendations) > 0 {
		sb.WriteString("\n✅ Recommendations:\n")
		for _, r := range res.Recommendations {
			fmt.Fprintf(&sb, "• %s\n", r)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderScoreLine(res scoring.Result) string {
	return fmt.Sprintf("%s Score: %d/100 · risk: %s\n", scoreEmoji(res.Score), res.Score, riskLabel(res.RiskLevel))
}

func renderSubscription(sub subscriptions.Subscription) string {
	var sb strings.Builder
	switch {
	case sub.Premium && sub.Trial:
		sb.WriteString("⭐ Plan: premium trial\n")
	case sub.Premium:
		sb.WriteString("⭐ Plan: premium\n")
	default:
		sb.WriteString("Plan: free\n")
	}
	if sub.EndDate != nil {
		fmt.Fprintf(&sb, "Valid until: %s\n", sub.EndDate.Format("2006-01-02"))
	}

	if sub.Premium {
		sb.WriteString("\nIncluded: up to 10 pets, unlimited AI chat, advanced analysis.")
	} else {
		sb.WriteString("\nFree plan: 1 pet, 3 AI messages per day, basic analysis.\nPremium: up to 10 pets, unlimited AI chat, advanced analysis with correlations.")
	}
	return sb.String()
}

// analysisPromptData serializes the computed results for the narration
// prompt. The LLM only narrates; every number comes from the scorer.
func analysisPromptData(p pets.Pet, res scoring.Result, corr scoring.CorrelationResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Pet: %s\n", renderPetProfileLine(p))
	fmt.Fprintf(&sb, "Health score: %d/100, risk level %s\n", res.Score, riskLabel(res.RiskLevel))
	if res.TrendSummary != "" {
		fmt.Fprintf(&sb, "Trend: %s\n", res.TrendSummary)
	}
	for _, a := range res.Alerts {
		fmt.Fprintf(&sb, "Alert (%s): %s\n", a.Severity, a.Message)
	}
	for _, t := range corr.DetectedTriggers {
		fmt.Fprintf(&sb, "Trigger: %s causes %s (frequency %d, confidence %.1f)\n",
			t.Trigger, t.Effect, t.Frequency, t.Confidence)
	}
	for _, rc := range res.RootCauses {
		fmt.Fprintf(&sb, "Root cause: %s -> %s (%s)\n", rc.Cause, rc.Effect, rc.Evidence)
	}
	for _, r := range res.Recommendations {
		fmt.Fprintf(&sb, "Recommendation: %s\n", r)
	}
	return sb.String()
}

func riskLabel(level int) string {
	switch level {
	case scoring.RiskCritical:
		return "critical"
	case scoring.RiskHigh:
		return "high"
	case scoring.RiskModerate:
		return "moderate"
	default:
		return "low"
	}
}

func scoreEmoji(score int) string {
	switch {
	case score >= 80:
		return "🟢"
	case score >= 60:
		return "🟡"
	case score >= 40:
		return "🟠"
	default:
		return "🔴"
	}
}

func severityEmoji(s scoring.Severity) string {
	switch s {
	case scoring.SeverityCritical:
		return "🚨"
	case scoring.SeverityWarning:
		return "⚠️"
	default:
		return "ℹ️"
	}
}

func speciesEmoji(s pets.Species) string {
	switch s {
	case pets.SpeciesDog:
		return "🐶"
	case pets.SpeciesCat:
		return "🐱"
	default:
		return "🐾"
	}
}
