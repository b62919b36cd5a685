package models

import "time"

// Plan tiers for the 'subscriptions' table. Only 'pro' is exempt from
// the token ceiling.
const (
	PlanTrial    = "trial"
	PlanStandard = "standard"
	PlanPro      = "pro"
)

// Subscription defines the model for the 'subscriptions' table.
// TokensUsed is the cumulative metered usage; it only ever grows and is
// mutated exclusively by the AI service after a successful generation.
type Subscription struct {
	ID                 int64      `json:"id" db:"id"`
	UserID             int64      `json:"userId" db:"user_id"`
	Plan               string     `json:"plan" db:"plan"`
	Status             string     `json:"status" db:"status"`
	TokensUsed         int        `json:"tokensUsed" db:"tokens_used"`
	TokensLimit        int        `json:"tokensLimit" db:"tokens_limit"`
	CurrentPeriodStart *time.Time `json:"currentPeriodStart,omitempty" db:"current_period_start"`
	CurrentPeriodEnd   *time.Time `json:"currentPeriodEnd,omitempty" db:"current_period_end"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time  `json:"updatedAt" db:"updated_at"`
}
