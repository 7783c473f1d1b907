package main

import (
	"fmt"

	"churchpro-backend/config"
	"churchpro-backend/routes"
	"churchpro-backend/services"
	"churchpro-backend/storage"
	"churchpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	utils.InitLogger()
	cfg := config.Load()

	store, err := storage.Open()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer store.Close()

	repo := services.NewRepository(store)
	lifecycle := services.NewLifecycle(repo)
	stats := services.NewStats(repo, lifecycle)

	if cfg.SeedSampleData {
		if err := services.SeedSampleData(repo); err != nil {
			log.Fatal().Err(err).Msg("failed to seed sample data")
		}
	}

	reminders := services.NewReminderService(repo)
	if reminders.Enabled() {
		reminders.StartScheduler()
	} else {
		log.Info().Msg("twilio not configured, renewal reminders disabled")
	}

	r := routes.SetupRouter(repo, lifecycle, stats)
	printRoutes(r)

	log.Info().Str("port", cfg.Port).Str("driver", string(store.Driver())).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
