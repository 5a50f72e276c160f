package scoring

import (
	"reflect"
	"testing"
)

func rec(date, food, mood, symptoms, activity string) CorrelationRecord {
	return CorrelationRecord{
		Date:     date,
		FoodType: food,
		Mood:     mood,
		Symptoms: symptoms,
		Activity: activity,
	}
}

func TestAnalyzeCorrelations_TooFewRecords(t *testing.T) {
	res := AnalyzeCorrelations([]CorrelationRecord{
		rec("2025-06-02", "kibble", "normal", "", "high"),
		rec("2025-06-01", "kibble", "normal", "", "high"),
	})
	if len(res.DietMoodLinks)+len(res.ActivitySymptomLinks)+len(res.FoodIntakePatterns)+len(res.DetectedTriggers) != 0 {
		t.Fatalf("expected empty result for short history, got %+v", res)
	}
}

func TestAnalyzeCorrelations_DietMoodLink(t *testing.T) {
	recs := []CorrelationRecord{
		rec("2025-06-03", "raw chicken", "anxious", "", "medium"),
		rec("2025-06-02", "kibble", "happy_energetic", "", "medium"),
		rec("2025-06-01", "kibble", "happy_energetic", "", "medium"),
	}
	res := AnalyzeCorrelations(recs)
	if len(res.DietMoodLinks) != 1 {
		t.Fatalf("expected 1 diet-mood link, got %v", res.DietMoodLinks)
	}
	l := res.DietMoodLinks[0]
	if l.Date != "2025-06-03" || l.DietChange != "changed from kibble to raw chicken" {
		t.Fatalf("unexpected link: %+v", l)
	}
	if l.MoodBefore != "happy_energetic" || l.MoodAfter != "anxious" {
		t.Fatalf("unexpected moods: %+v", l)
	}
}

func TestAnalyzeCorrelations_NoLinkWithoutMoodChange(t *testing.T) {
	recs := []CorrelationRecord{
		rec("2025-06-03", "raw chicken", "normal", "", "medium"),
		rec("2025-06-02", "kibble", "normal", "", "medium"),
		rec("2025-06-01", "kibble", "normal", "", "medium"),
	}
	res := AnalyzeCorrelations(recs)
	if len(res.DietMoodLinks) != 0 {
		t.Fatalf("expected no diet-mood link, got %v", res.DietMoodLinks)
	}
}

func TestAnalyzeCorrelations_ActivitySymptomLink(t *testing.T) {
	recs := []CorrelationRecord{
		rec("2025-06-03", "", "normal", "limping", "low"),
		rec("2025-06-02", "", "normal", "", "high"),
		rec("2025-06-01", "", "normal", "", "high"),
	}
	res := AnalyzeCorrelations(recs)
	if len(res.ActivitySymptomLinks) != 1 {
		t.Fatalf("expected 1 activity-symptom link, got %v", res.ActivitySymptomLinks)
	}
	l := res.ActivitySymptomLinks[0]
	if l.Activity != "low" || l.Previous != "high" || l.Symptoms != "limping" {
		t.Fatalf("unexpected link: %+v", l)
	}
}

func TestAnalyzeCorrelations_FoodIntakePatternIndependentOfChange(t *testing.T) {
	recs := []CorrelationRecord{
		rec("2025-06-03", "kibble", "normal", "itching", "high"),
		rec("2025-06-02", "kibble", "normal", "", "high"),
		rec("2025-06-01", "kibble", "normal", "", "high"),
	}
	res := AnalyzeCorrelations(recs)
	if len(res.FoodIntakePatterns) != 1 {
		t.Fatalf("expected 1 food-intake pattern, got %v", res.FoodIntakePatterns)
	}
	if p := res.FoodIntakePatterns[0]; p.Food != "kibble" || p.Symptoms != "itching" {
		t.Fatalf("unexpected pattern: %+v", p)
	}
}

func TestAnalyzeCorrelations_NoneSymptomsMeanAbsent(t *testing.T) {
	recs := []CorrelationRecord{
		rec("2025-06-03", "kibble", "normal", "none", "high"),
		rec("2025-06-02", "kibble", "normal", "None", "low"),
		rec("2025-06-01", "kibble", "normal", "", "high"),
	}
	res := AnalyzeCorrelations(recs)
	if len(res.FoodIntakePatterns) != 0 || len(res.ActivitySymptomLinks) != 0 || len(res.DetectedTriggers) != 0 {
		t.Fatalf("expected 'none' symptoms to be ignored, got %+v", res)
	}
}

func TestAnalyzeCorrelations_TriggerConfidence(t *testing.T) {
	cases := []struct {
		occurrences int
		confidence  float64
	}{
		{2, 0.6},
		{3, 0.9},
		{4, 0.9},
		{7, 0.9},
	}
	for _, tc := range cases {
		recs := make([]CorrelationRecord, 0, tc.occurrences+1)
		for i := 0; i < tc.occurrences; i++ {
			recs = append(recs, rec("2025-06-05", "tuna", "normal", "vomiting", "high"))
		}
		recs = append(recs, rec("2025-06-01", "kibble", "normal", "", "high"))

		res := AnalyzeCorrelations(recs)
		if len(res.DetectedTriggers) != 1 {
			t.Fatalf("%d occurrences: expected 1 trigger, got %v", tc.occurrences, res.DetectedTriggers)
		}
		tr := res.DetectedTriggers[0]
		if tr.Trigger != "tuna" || tr.Effect != "vomiting" || tr.Frequency != tc.occurrences {
			t.Fatalf("unexpected trigger: %+v", tr)
		}
		if tr.Confidence != tc.confidence {
			t.Fatalf("%d occurrences: expected confidence %v, got %v", tc.occurrences, tc.confidence, tr.Confidence)
		}
	}
}

func TestAnalyzeCorrelations_SingleOccurrenceNotATrigger(t *testing.T) {
	recs := []CorrelationRecord{
		rec("2025-06-03", "tuna", "normal", "vomiting", "high"),
		rec("2025-06-02", "kibble", "normal", "", "high"),
		rec("2025-06-01", "kibble", "normal", "", "high"),
	}
	res := AnalyzeCorrelations(recs)
	if len(res.DetectedTriggers) != 0 {
		t.Fatalf("expected no trigger for a single co-occurrence, got %v", res.DetectedTriggers)
	}
}

func TestAnalyzeCorrelations_Deterministic(t *testing.T) {
	recs := []CorrelationRecord{
		rec("2025-06-06", "tuna", "anxious", "vomiting", "low"),
		rec("2025-06-05", "beef", "normal", "itching", "high"),
		rec("2025-06-04", "tuna", "normal", "vomiting", "high"),
		rec("2025-06-03", "beef", "normal", "itching", "medium"),
		rec("2025-06-02", "tuna", "happy_energetic", "vomiting", "high"),
		rec("2025-06-01", "kibble", "normal", "", "high"),
	}
	r1 := AnalyzeCorrelations(recs)
	r2 := AnalyzeCorrelations(recs)
	if !reflect.DeepEqual(r1, r2) {
		t.Fatalf("AnalyzeCorrelations not deterministic:\n%+v\n%+v", r1, r2)
	}
	if len(r1.DetectedTriggers) != 2 {
		t.Fatalf("expected 2 triggers, got %v", r1.DetectedTriggers)
	}
	// tuna x3 sorts before beef x2.
	if r1.DetectedTriggers[0].Trigger != "tuna" || r1.DetectedTriggers[1].Trigger != "beef" {
		t.Fatalf("unexpected trigger order: %v", r1.DetectedTriggers)
	}
}
