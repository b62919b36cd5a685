package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/launchpilot/launchpilot-golang/internal/ai"
)

// aiError maps pipeline errors onto HTTP responses. Quota failures and
// generation-endpoint outages surface their fixed messages; anything
// else is an internal error.
func (h *Handlers) aiError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ai.ErrQuotaExceeded):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ai.ErrServiceUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		h.Log.WithError(err).Error("generation request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

// GenerateIntel handles POST /v1/intel: market analysis with a
// structured JSON result.
func (h *Handlers) GenerateIntel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input ai.IntelRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.AIService.GenerateIntel(c.Request.Context(), userID, input)
	if err != nil {
		h.aiError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// RefineContent handles POST /v1/refine: text refinement.
func (h *Handlers) RefineContent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input ai.RefineRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.AIService.RefineContent(c.Request.Context(), userID, input)
	if err != nil {
		h.aiError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// GenerateBrief handles POST /v1/start: strategic brief generation.
func (h *Handlers) GenerateBrief(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input ai.BriefRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.AIService.GenerateBrief(c.Request.Context(), userID, input)
	if err != nil {
		h.aiError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
