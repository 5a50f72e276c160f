// Package scoring implements the rule-based health-risk engine: a basic
// (free-tier) scorer over the latest observation, an advanced (premium)
// scorer over a rolling window, a correlation analyzer over a 30-day slice,
// and the root-cause/recommendation formatter layered on top.
//
// Every function here is a pure function of its inputs: no clock, no I/O,
// no shared state. Callers may invoke them concurrently for different pets
// without coordination.
package scoring

import (
	"errors"

	"pet-health-bot/internal/domain/observations"
)

var (
	// ErrInvalidInput marks a contract violation by the caller (for example
	// a nil profile where one is required). Sparse or missing data is never
	// an error; it degrades to neutral defaults instead.
	ErrInvalidInput = errors.New("invalid input")
)

// Severity orders alerts from most to least urgent.
type Severity int

const (
	SeverityNotice Severity = iota
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityWarning:
		return "warning"
	default:
		return "notice"
	}
}

// Alert is one short severity-tagged finding.
type Alert struct {
	Severity Severity
	Message  string
}

// Risk levels (coarse 0-3 buckets, computed alongside the numeric score but
// not derived from it).
const (
	RiskLow      = 0
	RiskModerate = 1
	RiskHigh     = 2
	RiskCritical = 3
)

// Profile is the slice of a pet profile the scorer reads. Age acts as a risk
// modifier; species/breed are carried through for the formatter only.
type Profile struct {
	AgeYears  int
	AgeMonths int
	Species   string
	Breed     string
}

// Result is the advanced/enhanced scoring output.
type Result struct {
	Score        int // clamped to [0,100]
	Alerts       []Alert
	RiskLevel    int // 0..3
	TrendSummary string
	Details      []string

	// Populated by EnhancedScore only.
	RootCauses      []RootCause
	Recommendations []string
}

// CorrelationRecord is the simplified per-day tuple the correlation analyzer
// consumes, ordered most-recent-first by the caller.
type CorrelationRecord struct {
	Date      string
	FoodType  string
	Mood      string
	StoolInfo string
	Symptoms  string
	Weight    *float64
	Activity  string
	Notes     string
}

// DietMoodLink records a diet change coinciding with a mood change.
type DietMoodLink struct {
	Date       string
	DietChange string
	MoodBefore string
	MoodAfter  string
}

// ActivitySymptomLink records an activity change coinciding with symptoms.
type ActivitySymptomLink struct {
	Date     string
	Activity string
	Previous string
	Symptoms string
}

// FoodIntakePattern pairs a food entry with same-day symptoms, independent
// of whether anything changed.
type FoodIntakePattern struct {
	Date     string
	Food     string
	Symptoms string
	Notes    string
}

// Trigger is a (cause, effect) pair whose co-occurrence count crossed the
// frequency threshold. Confidence is min(0.9, 0.3 * Frequency).
type Trigger struct {
	Trigger    string
	Effect     string
	Frequency  int
	Confidence float64
}

// CorrelationResult groups everything the analyzer found. All slices are
// empty (never nil-vs-populated semantics) when fewer than three records
// were available.
type CorrelationResult struct {
	DietMoodLinks        []DietMoodLink
	ActivitySymptomLinks []ActivitySymptomLink
	FoodIntakePatterns   []FoodIntakePattern
	DetectedTriggers     []Trigger
}

// RootCause is one human-readable causal statement with its evidence.
type RootCause struct {
	Cause    string
	Effect   string
	Evidence string
}

// LearningPattern is a stored per-pet pattern accumulated by earlier
// analysis runs, fed back into enhanced scoring.
type LearningPattern struct {
	Type       string
	Data       string
	Confidence float64
}

type Observation = observations.Observation

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func maxRisk(cur, candidate int) int {
	if candidate > cur {
		return candidate
	}
	return cur
}

func badMood(m observations.Mood) bool {
	return m == observations.MoodTiredLethargic || m == observations.MoodAnxious
}

func goodMood(m observations.Mood) bool {
	return m == observations.MoodHappyEnergetic || m == observations.MoodNormal
}
