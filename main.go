package main

import (
	"os"
	"time"

	"nailstudio-backend/config"
	"nailstudio-backend/metrics"
	"nailstudio-backend/models"
	"nailstudio-backend/repository"
	"nailstudio-backend/routes"
	"nailstudio-backend/services"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}
	config.SetupLogger()
	config.ConnectDB()
	config.ConnectRedis()
	metrics.Register()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Entry{},
		&models.Post{},
		&models.SocialMedia{},
		&models.ReminderLog{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cache := repository.NewScheduleCache(config.Redis, 5*time.Minute)
	entryRepo := repository.NewEntryRepository(config.DB, cache)

	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	r := routes.SetupRouter(entryRepo)
	log.Info().Str("port", port).Msg("starting server")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
