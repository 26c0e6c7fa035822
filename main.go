package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hazard-report/bot-go/config"
	"github.com/hazard-report/bot-go/dialog"
	"github.com/hazard-report/bot-go/messaging"
	"github.com/hazard-report/bot-go/repository"
	"github.com/hazard-report/bot-go/routes"
	"github.com/hazard-report/bot-go/storage"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(os.Stdout)

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, relying on environment")
	}

	// Initialize database
	db := config.InitDB()

	botConfig := config.GetBotConfig()

	// External collaborators
	photoStore := storage.NewR2PhotoStore(config.GetR2Config())
	client := messaging.NewClient(botConfig.ChannelAccessToken)

	// The dialog core
	dialogController := dialog.NewController(
		dialog.NewMemoryStore(),
		repository.NewReportRepository(db),
		photoStore,
		client,
		dialog.WithPhotoCap(botConfig.PhotoCap),
		dialog.WithBatchSize(botConfig.ListBatchSize),
	)

	// Create a new Gin router
	r := gin.Default()

	// Initialize routes
	routes.SetupRoutes(r, db, dialogController, botConfig)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("starting server")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
