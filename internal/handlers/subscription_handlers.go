package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/launchpilot/launchpilot-golang/internal/ai"
	"github.com/launchpilot/launchpilot-golang/internal/models"
)

// GetMySubscriptions is the handler for GET /v1/subscriptions.
func (h *Handlers) GetMySubscriptions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rows, err := h.DB.Query(`
		SELECT id, user_id, plan, status, tokens_used, tokens_limit,
		       current_period_start, current_period_end, created_at, updated_at
		FROM subscriptions
		WHERE user_id = ?
		ORDER BY created_at DESC`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscriptions"})
		return
	}
	defer rows.Close()

	subscriptions := []models.Subscription{}
	for rows.Next() {
		var s models.Subscription
		err := rows.Scan(&s.ID, &s.UserID, &s.Plan, &s.Status, &s.TokensUsed, &s.TokensLimit,
			&s.CurrentPeriodStart, &s.CurrentPeriodEnd, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscriptions"})
			return
		}
		subscriptions = append(subscriptions, s)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscriptions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"subscriptions": subscriptions}})
}

// StartTrial is the handler for POST /v1/subscriptions/trial. It
// activates a 7-day trial with the default token allowance unless the
// user already has an active subscription.
func (h *Handlers) StartTrial(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var existing int
	err := h.DB.QueryRow(
		"SELECT COUNT(*) FROM subscriptions WHERE user_id = ? AND status = 'active'", userID,
	).Scan(&existing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check subscription"})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You already have an active subscription"})
		return
	}

	periodStart := time.Now()
	periodEnd := periodStart.AddDate(0, 0, 7)

	query := `
		INSERT INTO subscriptions
		(user_id, plan, status, tokens_used, tokens_limit, current_period_start, current_period_end, created_at, updated_at)
		VALUES (?, ?, 'active', 0, ?, ?, ?, ?, ?)`
	res, err := h.DB.Exec(query, userID, models.PlanTrial, ai.DefaultTokensLimit,
		periodStart, periodEnd, periodStart, periodStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start trial"})
		return
	}

	subID, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"id":          subID,
			"plan":        models.PlanTrial,
			"status":      "active",
			"tokensLimit": ai.DefaultTokensLimit,
			"periodEnd":   periodEnd,
		},
	})
}
