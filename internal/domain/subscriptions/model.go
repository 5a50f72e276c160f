package subscriptions

import "time"

// Plan names the subscription tier.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanTrial   Plan = "trial"
	PlanPremium Plan = "premium"
)

// Feature keys gated behind the premium tier.
type Feature string

const (
	FeatureMultiplePets     Feature = "multiple_pets"
	FeatureUnlimitedAIChat  Feature = "unlimited_ai_chat"
	FeatureAdvancedAnalysis Feature = "advanced_analysis"
	FeatureCustomReminders  Feature = "custom_reminders"
	FeatureExportReports    Feature = "export_reports"
)

// Subscription is the stored tier record for one Telegram user. A missing
// row means the free plan.
type Subscription struct {
	UserID int64

	Premium bool
	Plan    Plan
	Trial   bool

	StartDate time.Time
	EndDate   *time.Time // nil = open-ended

	PaymentReference string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the subscription ran out at the given instant.
func (s Subscription) Expired(at time.Time) bool {
	return s.EndDate != nil && at.After(*s.EndDate)
}
