package bot

import (
	"strings"
	"testing"
	"time"

	"pet-health-bot/internal/domain/analytics"
	"pet-health-bot/internal/domain/observations"
	"pet-health-bot/internal/domain/pets"
	"pet-health-bot/internal/domain/scoring"
)

func TestParseWeight(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantNil bool
		wantErr bool
	}{
		{in: "4.5", want: 4.5},
		{in: "4,5", want: 4.5},
		{in: " 12 ", want: 12},
		{in: "", wantNil: true},
		{in: "abc", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "0", wantErr: true},
	}
	for _, tc := range cases {
		got, err := parseWeight(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseWeight(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseWeight(%q): unexpected error %v", tc.in, err)
			continue
		}
		if tc.wantNil {
			if got != nil {
				t.Errorf("parseWeight(%q): expected nil, got %v", tc.in, *got)
			}
			continue
		}
		if got == nil || *got != tc.want {
			t.Errorf("parseWeight(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRenderBasicAnalysis(t *testing.T) {
	out := renderBasicAnalysis("Rex", 45, []scoring.Alert{
		{Severity: scoring.SeverityCritical, Message: "bloody stool — seek veterinary care immediately"},
	})
	if !strings.Contains(out, "Rex") || !strings.Contains(out, "45/100") {
		t.Fatalf("missing score line: %q", out)
	}
	if !strings.Contains(out, "bloody stool") {
		t.Fatalf("missing alert: %q", out)
	}
	if !strings.Contains(out, "Premium") {
		t.Fatalf("basic analysis must nudge toward premium: %q", out)
	}
}

func TestRenderAdvancedAnalysis(t *testing.T) {
	res := scoring.Result{
		Score:        72,
		RiskLevel:    scoring.RiskModerate,
		TrendSummary: "weight trending down; mood stable and positive",
		Alerts: []scoring.Alert{
			{Severity: scoring.SeverityWarning, Message: "noticeable weight change"},
		},
		RootCauses: []scoring.RootCause{
			{Cause: "tuna", Effect: "vomiting", Evidence: "co-occurred 3 times (confidence 0.9)"},
		},
		Recommendations: []string{"monitor health status closely"},
	}
	corr := scoring.CorrelationResult{
		DetectedTriggers: []scoring.Trigger{
			{Trigger: "tuna", Effect: "vomiting", Frequency: 3, Confidence: 0.9},
		},
	}

	out := renderAdvancedAnalysis("Misha", res, corr)
	for _, want := range []string{"72/100", "moderate", "weight trending down", "tuna", "vomiting", "monitor health status closely"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderHistory(t *testing.T) {
	if out := renderHistory("Rex", nil); !strings.Contains(out, "No entries") {
		t.Fatalf("empty history: %q", out)
	}

	w := 5.2
	logs := []observations.HealthLog{
		{Date: time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC), Weight: &w, Mood: "tired_lethargic", Symptoms: "vomiting"},
		{Date: time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC), Mood: "normal", Symptoms: "none"},
	}
	out := renderHistory("Rex", logs)
	if !strings.Contains(out, "5.2 kg") || !strings.Contains(out, "tired lethargic") {
		t.Fatalf("missing fields: %q", out)
	}
	if !strings.Contains(out, "vomiting") {
		t.Fatalf("symptom missing: %q", out)
	}
	// "none" symptoms stay hidden.
	if strings.Contains(out, "none") {
		t.Fatalf("\"none\" must not render as a symptom: %q", out)
	}
}

func TestCorrelationRecords(t *testing.T) {
	w := 5.0
	logs := []observations.HealthLog{
		{
			Date:      time.Date(2025, 12, 22, 9, 30, 0, 0, time.UTC),
			FoodType:  "tuna",
			Mood:      "normal",
			StoolInfo: "soft",
			Symptoms:  "vomiting",
			Weight:    &w,
			Activity:  "low",
			Notes:     "ate fast",
		},
	}
	recs := correlationRecords(logs)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	r := recs[0]
	if r.Date != "2025-12-22" || r.FoodType != "tuna" || r.Symptoms != "vomiting" || r.Weight == nil || *r.Weight != 5.0 {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestRiskLabelAndEmojis(t *testing.T) {
	if riskLabel(scoring.RiskCritical) != "critical" || riskLabel(scoring.RiskLow) != "low" {
		t.Fatalf("risk labels wrong")
	}
	if scoreEmoji(90) != "🟢" || scoreEmoji(10) != "🔴" {
		t.Fatalf("score emoji wrong")
	}
	if speciesEmoji(pets.SpeciesDog) != "🐶" || speciesEmoji(pets.SpeciesOther) != "🐾" {
		t.Fatalf("species emoji wrong")
	}
}

func TestSessionStore_ResetKeepsPet(t *testing.T) {
	s := newSessionStore()
	sess := s.get(1)
	sess.Flow = flowLogHealth
	sess.Step = stepLogMood
	sess.PetID = "pet-1"

	s.reset(1)
	got := s.get(1)
	if got.Flow != flowNone || got.Step != 0 {
		t.Fatalf("flow not reset: %+v", got)
	}
	if got.PetID != "pet-1" {
		t.Fatalf("pet selection must survive reset, got %q", got.PetID)
	}
}

func TestApplyLogChoice_FullChain(t *testing.T) {
	steps := []struct {
		field, value string
		from, to     int
	}{
		{"mood", "normal", stepLogMood, stepLogStool},
		{"stool", "soft", stepLogStool, stepLogAppetite},
		{"appetite", "low", stepLogAppetite, stepLogWater},
		{"water", "none", stepLogWater, stepLogTemperature},
		{"temp", "fever", stepLogTemperature, stepLogBreathing},
		{"breathing", "fast", stepLogBreathing, stepLogActivity},
		{"activity", "low", stepLogActivity, stepLogSymptoms},
	}

	var d observations.LogInput
	step := stepLogMood
	for _, s := range steps {
		next, ok := applyLogChoice(&d, s.field, s.value, step)
		if !ok {
			t.Fatalf("%s at step %d rejected", s.field, step)
		}
		if step != s.from || next != s.to {
			t.Fatalf("%s: step %d -> %d, want %d -> %d", s.field, step, next, s.from, s.to)
		}
		step = next
	}

	if d.Mood != "normal" || d.StoolInfo != "soft" || d.Appetite != "low" {
		t.Fatalf("draft enums not recorded: %+v", d)
	}
	if d.WaterIntake != "none" || d.Temperature != "fever" || d.Breathing != "fast" {
		t.Fatalf("water/temperature/breathing not recorded: %+v", d)
	}
	if d.Activity != "low" {
		t.Fatalf("activity not recorded: %+v", d)
	}
	if observations.ParseTemperature(d.Temperature) != observations.TemperatureFever {
		t.Fatalf("temperature %q does not parse to a known value", d.Temperature)
	}
	if observations.ParseBreathing(d.Breathing) != observations.BreathingFast {
		t.Fatalf("breathing %q does not parse to a known value", d.Breathing)
	}
}

func TestApplyLogChoice_RejectsStaleButton(t *testing.T) {
	var d observations.LogInput
	next, ok := applyLogChoice(&d, "mood", "normal", stepLogWater)
	if ok || next != stepLogWater {
		t.Fatalf("stale mood button at water step: ok=%v next=%d", ok, next)
	}
	if d.Mood != "" {
		t.Fatalf("stale button wrote to draft: %+v", d)
	}
}

func TestRenderDailySummary(t *testing.T) {
	out := renderDailySummary(analytics.Summary{
		Date:           "2026-08-28",
		TotalEvents:    12,
		UniqueUsers:    4,
		PremiumUsers:   1,
		AIChats:        3,
		PetActions:     2,
		HealthActions:  5,
		PremiumActions: 1,
		TopActions: []analytics.ActionCount{
			{Action: "main_menu", Count: 6},
			{Action: "health_logged", Count: 5},
		},
	})

	for _, want := range []string{
		"2026-08-28",
		"Active users: 4 (premium: 1)",
		"Total events: 12",
		"1. main_menu: 6",
		"2. health_logged: 5",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}
