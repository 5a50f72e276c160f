package observations

import "strings"

// Mood is the categorical mood of a pet on a given day.
type Mood string

const (
	MoodHappyEnergetic Mood = "happy_energetic"
	MoodNormal         Mood = "normal"
	MoodTiredLethargic Mood = "tired_lethargic"
	MoodAnxious        Mood = "anxious"
	MoodUnknown        Mood = "unknown"
)

type Stool string

const (
	StoolNormal  Stool = "normal"
	StoolSoft    Stool = "soft"
	StoolHard    Stool = "hard"
	StoolBloody  Stool = "bloody"
	StoolUnknown Stool = "unknown"
)

type Appetite string

const (
	AppetiteHigh    Appetite = "high"
	AppetiteNormal  Appetite = "normal"
	AppetiteLow     Appetite = "low"
	AppetiteNone    Appetite = "none"
	AppetiteUnknown Appetite = "unknown"
)

type Activity string

const (
	ActivityHigh    Activity = "high"
	ActivityMedium  Activity = "medium"
	ActivityLow     Activity = "low"
	ActivityUnknown Activity = "unknown"
)

type Temperature string

const (
	TemperatureNormal  Temperature = "normal"
	TemperatureHot     Temperature = "hot"
	TemperatureCold    Temperature = "cold"
	TemperatureFever   Temperature = "fever"
	TemperatureUnknown Temperature = "unknown"
)

type Breathing string

const (
	BreathingNormal  Breathing = "normal"
	BreathingFast    Breathing = "fast"
	BreathingSlow    Breathing = "slow"
	BreathingCough   Breathing = "cough"
	BreathingNoisy   Breathing = "noisy"
	BreathingUnknown Breathing = "unknown"
)

// ParseMood maps a stored value to a Mood, falling back to MoodUnknown.
// Values that fail to parse are never an error (data quality, not a bug).
func ParseMood(s string) Mood {
	switch Mood(canon(s)) {
	case MoodHappyEnergetic, MoodNormal, MoodTiredLethargic, MoodAnxious:
		return Mood(canon(s))
	default:
		return MoodUnknown
	}
}

func ParseStool(s string) Stool {
	switch Stool(canon(s)) {
	case StoolNormal, StoolSoft, StoolHard, StoolBloody:
		return Stool(canon(s))
	default:
		return StoolUnknown
	}
}

func ParseAppetite(s string) Appetite {
	switch Appetite(canon(s)) {
	case AppetiteHigh, AppetiteNormal, AppetiteLow, AppetiteNone:
		return Appetite(canon(s))
	default:
		return AppetiteUnknown
	}
}

func ParseActivity(s string) Activity {
	switch Activity(canon(s)) {
	case ActivityHigh, ActivityMedium, ActivityLow:
		return Activity(canon(s))
	default:
		return ActivityUnknown
	}
}

func ParseTemperature(s string) Temperature {
	switch Temperature(canon(s)) {
	case TemperatureNormal, TemperatureHot, TemperatureCold, TemperatureFever:
		return Temperature(canon(s))
	default:
		return TemperatureUnknown
	}
}

func ParseBreathing(s string) Breathing {
	switch Breathing(canon(s)) {
	case BreathingNormal, BreathingFast, BreathingSlow, BreathingCough, BreathingNoisy:
		return Breathing(canon(s))
	default:
		return BreathingUnknown
	}
}

func canon(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
