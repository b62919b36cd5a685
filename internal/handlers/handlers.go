package handlers

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/launchpilot/launchpilot-golang/internal/ai"
	"github.com/sirupsen/logrus"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB        *sql.DB
	AIService *ai.AIService
	Log       *logrus.Logger
}

// currentUserID pulls the authenticated user's ID set by the auth
// middleware.
func currentUserID(c *gin.Context) (int64, bool) {
	raw, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := raw.(int64)
	return id, ok
}
