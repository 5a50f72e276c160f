package observations

import (
	"testing"
	"time"
)

func TestNormalize_MapsKnownValues(t *testing.T) {
	w := 4.2
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	logs := []HealthLog{{
		Date:        date,
		Weight:      &w,
		FoodType:    " kibble ",
		Mood:        "Tired_Lethargic",
		StoolInfo:   "bloody",
		Appetite:    "low",
		Activity:    "medium",
		Temperature: "fever",
		Breathing:   "cough",
		Symptoms:    " none ",
		Notes:       "slept all day",
	}}

	out := Normalize(logs)
	if len(out) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(out))
	}
	o := out[0]
	if o.Mood != MoodTiredLethargic || o.Stool != StoolBloody || o.Appetite != AppetiteLow {
		t.Fatalf("unexpected enums: %+v", o)
	}
	if o.Activity != ActivityMedium || o.Temperature != TemperatureFever || o.Breathing != BreathingCough {
		t.Fatalf("unexpected enums: %+v", o)
	}
	if o.FoodType != "kibble" || o.Date != date {
		t.Fatalf("unexpected fields: %+v", o)
	}
	if o.Weight == nil || *o.Weight != 4.2 {
		t.Fatalf("weight not carried over: %+v", o.Weight)
	}
	if o.SymptomPresent() {
		t.Fatal("literal 'none' must mean no symptoms")
	}
}

func TestNormalize_UnparsableBecomesUnknown(t *testing.T) {
	logs := []HealthLog{{
		Mood:      "grumpy-ish",
		StoolInfo: "??",
		Appetite:  "",
	}}
	o := Normalize(logs)[0]
	if o.Mood != MoodUnknown || o.Stool != StoolUnknown || o.Appetite != AppetiteUnknown {
		t.Fatalf("expected unknown sentinels, got %+v", o)
	}
	if o.Activity != ActivityUnknown || o.Temperature != TemperatureUnknown || o.Breathing != BreathingUnknown {
		t.Fatalf("expected unknown sentinels, got %+v", o)
	}
}

func TestNormalize_WeightNeverZeroSubstituted(t *testing.T) {
	zero := 0.0
	neg := -1.5
	logs := []HealthLog{
		{Weight: nil},
		{Weight: &zero},
		{Weight: &neg},
	}
	for i, o := range Normalize(logs) {
		if o.Weight != nil {
			t.Fatalf("log %d: expected nil weight, got %v", i, *o.Weight)
		}
	}
}

func TestNormalize_PreservesOrder(t *testing.T) {
	d1 := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	out := Normalize([]HealthLog{{Date: d1}, {Date: d2}})
	if !out[0].Date.Equal(d1) || !out[1].Date.Equal(d2) {
		t.Fatalf("caller ordering must be preserved: %+v", out)
	}
}

func TestSymptomPresent(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"none", false},
		{"  None ", false},
		{"vomiting", true},
	}
	for _, tc := range cases {
		o := Observation{Symptoms: tc.in}
		if o.SymptomPresent() != tc.want {
			t.Fatalf("SymptomPresent(%q) = %v, want %v", tc.in, !tc.want, tc.want)
		}
	}
}
