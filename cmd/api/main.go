package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/launchpilot/launchpilot-golang/internal/ai"
	"github.com/launchpilot/launchpilot-golang/internal/database"
	"github.com/launchpilot/launchpilot-golang/internal/handlers"
	"github.com/launchpilot/launchpilot-golang/internal/routes"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.StandardLogger()

	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Warn("could not load .env file, relying on system environment variables")
	}

	// --- Database Connection ---
	db, err := database.OpenDB()
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	// --- AI Service ---
	gateway := ai.NewGateway(os.Getenv("AI_API_BASE"))
	aiService := ai.NewAIService(db, gateway, log)

	// --- Application Setup ---
	app := &handlers.Handlers{
		DB:        db,
		AIService: aiService,
		Log:       log,
	}

	router := routes.SetupRouter(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).Info("starting LaunchPilot API server")
	if err := router.Run(":" + port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
