package observations

import (
	"strings"
	"time"
)

// HealthLog is one stored daily health entry, exactly as recorded.
// Categorical fields hold whatever the logging flow (or a legacy import)
// wrote; Normalize turns them into typed Observations for the scorer.
type HealthLog struct {
	ID    string
	PetID string

	Date time.Time

	Weight      *float64 // kilograms; nil when not recorded
	FoodType    string
	Mood        string
	StoolInfo   string
	Appetite    string
	WaterIntake string
	Activity    string
	Temperature string
	Breathing   string
	Symptoms    string
	Notes       string

	RecordedAt time.Time
}

// Observation is the normalized, scorer-facing view of a HealthLog.
type Observation struct {
	Date time.Time

	Weight      *float64
	FoodType    string
	Mood        Mood
	Stool       Stool
	Appetite    Appetite
	Activity    Activity
	Temperature Temperature
	Breathing   Breathing
	Symptoms    string
	Notes       string
}

// SymptomPresent reports whether the free-text symptoms field records an
// actual symptom. Empty and the literal "none" both mean no symptoms.
func (o Observation) SymptomPresent() bool {
	s := strings.ToLower(strings.TrimSpace(o.Symptoms))
	return s != "" && s != "none"
}
