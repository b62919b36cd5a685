package models

import "time"

// Activity is the model for the 'activities' table. Rows are
// append-only audit entries; nothing in the API updates or deletes
// them.
type Activity struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	Type        string    `json:"type" db:"type"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	TokensUsed  int       `json:"tokensUsed" db:"tokens_used"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
