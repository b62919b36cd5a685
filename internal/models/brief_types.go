package models

import "time"

// Brief is the model for the 'briefs' table: stored strategic-brief
// artifacts. Writes are best-effort copies of generation results, so a
// missing row for a generation the user saw is normal.
type Brief struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	Title      string    `json:"title" db:"title"`
	Objective  string    `json:"objective" db:"objective"`
	Model      string    `json:"model" db:"model"`
	Tone       *string   `json:"tone,omitempty" db:"tone"`
	Result     string    `json:"result" db:"result"`
	TokensUsed int       `json:"tokensUsed" db:"tokens_used"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
