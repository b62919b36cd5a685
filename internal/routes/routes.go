package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/launchpilot/launchpilot-golang/internal/handlers"
	"github.com/launchpilot/launchpilot-golang/internal/middleware"
)

// CORSMiddleware allows the local frontend to talk to the API during
// development.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:5173")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupRouter wires all API routes.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	v1 := router.Group("/v1")
	{
		// --- Public Routes ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})
		v1.POST("/register", h.Register)
		v1.POST("/login", h.Login)

		// --- Protected Routes (Login Required) ---
		auth := v1.Group("/")
		auth.Use(middleware.AuthMiddleware())
		{
			// AI generation pipeline
			auth.POST("/intel", h.GenerateIntel)
			auth.POST("/refine", h.RefineContent)
			auth.POST("/start", h.GenerateBrief)

			// Activity feed & usage
			auth.GET("/activity", h.GetActivity)

			// Subscriptions
			auth.GET("/subscriptions", h.GetMySubscriptions)
			auth.POST("/subscriptions/trial", h.StartTrial)

			// Stored brief artifacts
			auth.GET("/briefs", h.GetMyBriefs)
			auth.GET("/briefs/:id", h.GetBrief)
		}
	}

	return router
}
