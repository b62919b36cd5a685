package handlers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/launchpilot/launchpilot-golang/internal/ai"
	"github.com/launchpilot/launchpilot-golang/internal/models"
)

// UsageSummary reports the caller's current metering state alongside
// the activity feed.
type UsageSummary struct {
	TokensUsed    int        `json:"tokensUsed"`
	TokensTotal   int        `json:"tokensTotal"`
	DaysRemaining int        `json:"daysRemaining"`
	Plan          string     `json:"plan"`
	PeriodEnd     *time.Time `json:"periodEnd"`
}

// GetActivity is the handler for GET /v1/activity. It returns the
// user's most recent activity entries plus a usage summary derived
// from their newest subscription row.
func (h *Handlers) GetActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	// 1. --- Recent activity entries ---
	rows, err := h.DB.Query(`
		SELECT id, user_id, type, title, description, tokens_used, created_at
		FROM activities
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT 10`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}
	defer rows.Close()

	activities := []models.Activity{}
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Title, &a.Description, &a.TokensUsed, &a.CreatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
			return
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}

	// 2. --- Usage summary from the newest subscription ---
	usage := UsageSummary{
		TokensTotal: ai.DefaultTokensLimit,
		Plan:        "free",
	}
	var sub models.Subscription
	err = h.DB.QueryRow(`
		SELECT plan, tokens_used, tokens_limit, current_period_end
		FROM subscriptions
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT 1`, userID).Scan(&sub.Plan, &sub.TokensUsed, &sub.TokensLimit, &sub.CurrentPeriodEnd)
	if err == nil {
		usage.Plan = sub.Plan
		usage.TokensUsed = sub.TokensUsed
		if sub.TokensLimit > 0 {
			usage.TokensTotal = sub.TokensLimit
		}
		if sub.CurrentPeriodEnd != nil {
			usage.PeriodEnd = sub.CurrentPeriodEnd
			remaining := time.Until(*sub.CurrentPeriodEnd).Hours() / 24
			usage.DaysRemaining = int(math.Max(0, math.Ceil(remaining)))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"activities": activities,
			"usage":      usage,
		},
	})
}
