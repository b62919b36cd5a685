package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/launchpilot/launchpilot-golang/internal/models"
)

// GetMyBriefs is the handler for GET /v1/briefs. It lists the caller's
// stored strategic-brief artifacts, newest first.
func (h *Handlers) GetMyBriefs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rows, err := h.DB.Query(`
		SELECT id, user_id, title, objective, model, tone, result, tokens_used, created_at
		FROM briefs
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT 50`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch briefs"})
		return
	}
	defer rows.Close()

	briefs := []models.Brief{}
	for rows.Next() {
		var b models.Brief
		err := rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Objective, &b.Model, &b.Tone, &b.Result, &b.TokensUsed, &b.CreatedAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch briefs"})
			return
		}
		briefs = append(briefs, b)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch briefs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"briefs": briefs}})
}

// GetBrief is the handler for GET /v1/briefs/:id. Briefs are private
// to their owner, so the lookup is scoped by user ID.
func (h *Handlers) GetBrief(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var b models.Brief
	err := h.DB.QueryRow(`
		SELECT id, user_id, title, objective, model, tone, result, tokens_used, created_at
		FROM briefs
		WHERE id = ? AND user_id = ?`, c.Param("id"), userID).
		Scan(&b.ID, &b.UserID, &b.Title, &b.Objective, &b.Model, &b.Tone, &b.Result, &b.TokensUsed, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Brief not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brief"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": b})
}
