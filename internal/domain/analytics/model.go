package analytics

import "time"

// Kind classifies a usage event so the daily summary can break traffic
// down without parsing free-form action names.
type Kind string

const (
	KindUserAction    Kind = "user_action"
	KindPetAction     Kind = "pet_action"
	KindHealthAction  Kind = "health_action"
	KindAIChat        Kind = "ai_chat"
	KindPremiumAction Kind = "premium_action"
)

// Event is a single append-only usage record.
type Event struct {
	ID        string
	UserID    int64
	Username  string
	Kind      Kind
	Action    string
	Details   map[string]string
	Premium   bool
	CreatedAt time.Time
}

// ActionCount pairs an action name with how often it occurred.
type ActionCount struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}

// Summary aggregates one calendar day of events for the admin API.
type Summary struct {
	Date           string         `json:"date"`
	TotalEvents    int            `json:"total_events"`
	UniqueUsers    int            `json:"unique_users"`
	PremiumUsers   int            `json:"premium_users"`
	AIChats        int            `json:"ai_chats"`
	PetActions     int            `json:"pet_actions"`
	HealthActions  int            `json:"health_actions"`
	PremiumActions int            `json:"premium_actions"`
	TopActions     []ActionCount  `json:"top_actions"`
	ByKind         map[string]int `json:"by_kind"`
}
