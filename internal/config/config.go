package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Discord Bot
	DiscordToken string

	// Database
	DatabaseURL string

	// Web Server
	WebBind string

	// Conversation policies
	InputMode      string
	TrackBathPayer bool
}

func Load() (*Config, error) {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		WebBind:      getEnvDefault("WEB_BIND", "0.0.0.0:3000"),
		InputMode:    getEnvDefault("INPUT_MODE", "menu"),
	}

	trackBathPayer, err := strconv.ParseBool(getEnvDefault("TRACK_BATH_PAYER", "false"))
	if err != nil {
		return nil, fmt.Errorf("TRACK_BATH_PAYER must be a boolean: %w", err)
	}
	cfg.TrackBathPayer = trackBathPayer

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
