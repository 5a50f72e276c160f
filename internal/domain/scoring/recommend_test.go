package scoring

import (
	"strings"
	"testing"

	obs "pet-health-bot/internal/domain/observations"
)

func TestEnhancedScore_DietMoodFlipLowersScore(t *testing.T) {
	in := nHealthy(5, 5.0)
	base := AdvancedScore(in, adultProfile())

	corr := CorrelationResult{
		DietMoodLinks: []DietMoodLink{{
			Date:       "2025-06-03",
			DietChange: "changed from kibble to raw chicken",
			MoodBefore: "happy_energetic",
			MoodAfter:  "anxious",
		}},
	}
	res := EnhancedScore(in, adultProfile(), corr, nil)

	if res.Score != base.Score-dietMoodPenalty {
		t.Fatalf("expected %d, got %d", base.Score-dietMoodPenalty, res.Score)
	}
	if len(res.RootCauses) != 1 {
		t.Fatalf("expected 1 root cause, got %v", res.RootCauses)
	}
	if !strings.Contains(res.RootCauses[0].Effect, "anxious") {
		t.Fatalf("unexpected root cause: %+v", res.RootCauses[0])
	}
}

func TestEnhancedScore_NegativeToPositiveFlipIgnored(t *testing.T) {
	in := nHealthy(5, 5.0)
	corr := CorrelationResult{
		DietMoodLinks: []DietMoodLink{{
			DietChange: "changed from raw chicken to kibble",
			MoodBefore: "anxious",
			MoodAfter:  "happy_energetic",
		}},
	}
	res := EnhancedScore(in, adultProfile(), corr, nil)
	if res.Score != 100 || len(res.RootCauses) != 0 {
		t.Fatalf("recovery flip must not penalize: %+v", res)
	}
}

// Confidence must be strictly above 0.6 to become a root cause: a pair seen
// twice (0.6) stays out, three times (0.9) gets in.
func TestEnhancedScore_TriggerConfidenceCutoff(t *testing.T) {
	in := nHealthy(5, 5.0)

	weak := CorrelationResult{DetectedTriggers: []Trigger{
		{Trigger: "tuna", Effect: "vomiting", Frequency: 2, Confidence: 0.6},
	}}
	res := EnhancedScore(in, adultProfile(), weak, nil)
	if len(res.RootCauses) != 0 {
		t.Fatalf("confidence 0.6 must not produce a root cause: %v", res.RootCauses)
	}

	strong := CorrelationResult{DetectedTriggers: []Trigger{
		{Trigger: "tuna", Effect: "vomiting", Frequency: 3, Confidence: 0.9},
	}}
	res = EnhancedScore(in, adultProfile(), strong, nil)
	if len(res.RootCauses) != 1 || res.RootCauses[0].Cause != "tuna" {
		t.Fatalf("expected tuna root cause, got %v", res.RootCauses)
	}
	// Root causes alone do not change the score; only diet-mood flips do.
	if res.Score != 100 {
		t.Fatalf("expected unchanged score 100, got %d", res.Score)
	}
}

func TestEnhancedScore_LearningPatterns(t *testing.T) {
	in := nHealthy(5, 5.0)
	patterns := []LearningPattern{
		{Type: "seasonal_allergy", Data: "spring itching episodes", Confidence: 0.8},
		{Type: "weak_hint", Data: "ignored", Confidence: 0.5},
	}
	res := EnhancedScore(in, adultProfile(), CorrelationResult{}, patterns)
	if len(res.RootCauses) != 1 || res.RootCauses[0].Cause != "seasonal_allergy" {
		t.Fatalf("expected only the confident pattern, got %v", res.RootCauses)
	}
}

func TestRecommendations_PriorityOrderAndCap(t *testing.T) {
	in := []Observation{{
		Mood:     obs.MoodTiredLethargic,
		Stool:    obs.StoolBloody,
		Activity: obs.ActivityLow,
	}}
	recs := Recommendations(RiskCritical, Profile{AgeYears: 12}, in, 4)
	if len(recs) != 4 {
		t.Fatalf("expected cap of 4, got %d: %v", len(recs), recs)
	}
	if recs[0] != "see a veterinarian immediately" {
		t.Fatalf("risk-driven advice must come first, got %v", recs)
	}
	if !strings.Contains(recs[2], "senior") {
		t.Fatalf("age-specific advice must follow risk advice, got %v", recs)
	}
}

func TestRecommendations_GenericFallbackOnlyWhenNothingSpecific(t *testing.T) {
	recs := Recommendations(RiskLow, adultProfile(), nHealthy(3, 5.0), 6)
	if len(recs) == 0 {
		t.Fatal("expected generic fallback items")
	}
	for _, r := range recs {
		if strings.Contains(r, "veterinarian immediately") {
			t.Fatalf("unexpected urgent advice for a healthy pet: %v", recs)
		}
	}

	withRisk := Recommendations(RiskModerate, adultProfile(), nHealthy(3, 5.0), 6)
	for _, r := range withRisk {
		if strings.Contains(r, "fresh, clean water") {
			t.Fatalf("generic items must not appear next to specific ones: %v", withRisk)
		}
	}
}

func TestEnhancedScore_Deterministic(t *testing.T) {
	in := nHealthy(7, 5.0)
	in[0].Stool = obs.StoolSoft
	corr := CorrelationResult{
		DetectedTriggers: []Trigger{{Trigger: "tuna", Effect: "vomiting", Frequency: 3, Confidence: 0.9}},
		DietMoodLinks: []DietMoodLink{{
			DietChange: "changed from kibble to tuna",
			MoodBefore: "normal",
			MoodAfter:  "tired_lethargic",
		}},
	}
	r1 := EnhancedScore(in, adultProfile(), corr, nil)
	r2 := EnhancedScore(in, adultProfile(), corr, nil)
	if r1.Score != r2.Score || len(r1.RootCauses) != len(r2.RootCauses) || len(r1.Recommendations) != len(r2.Recommendations) {
		t.Fatalf("EnhancedScore not deterministic:\n%+v\n%+v", r1, r2)
	}
}
