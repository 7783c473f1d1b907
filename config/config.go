package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config carries process-level settings. Storage settings are read by the
// storage factory itself; Twilio settings by the reminder service.
type Config struct {
	Port           string
	SeedSampleData bool
}

// Load reads .env when present and assembles the config from the
// environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		Port:           port,
		SeedSampleData: os.Getenv("SEED_SAMPLE_DATA") == "true",
	}
}
