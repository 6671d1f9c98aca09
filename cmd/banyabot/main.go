package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/developerDD/banyabot/internal/api"
	"github.com/developerDD/banyabot/internal/bot"
	"github.com/developerDD/banyabot/internal/config"
	"github.com/developerDD/banyabot/internal/db"
	"github.com/developerDD/banyabot/internal/logging"
	"github.com/developerDD/banyabot/internal/session"
)

func main() {
	logging.Setup()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	mode, err := session.ParseInputMode(cfg.InputMode)
	if err != nil {
		slog.Error("failed to parse input mode", "error", err)
		os.Exit(1)
	}

	// Connect to database
	database, err := db.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Session manager over the persisted snapshots
	mgr := session.NewManager(database, session.Options{
		Mode:           mode,
		TrackBathPayer: cfg.TrackBathPayer,
	})
	if err := mgr.LoadRoster(context.Background()); err != nil {
		slog.Error("failed to load roster", "error", err)
		os.Exit(1)
	}

	// Initialize Discord bot
	discordBot, err := bot.New(cfg.DiscordToken, mgr)
	if err != nil {
		slog.Error("failed to create discord bot", "error", err)
		os.Exit(1)
	}

	// Initialize API server
	apiServer := api.New(cfg, mgr)

	// Start Discord bot
	if err := discordBot.Start(); err != nil {
		slog.Error("failed to start discord bot", "error", err)
		os.Exit(1)
	}
	defer discordBot.Stop()

	// Start API server
	go func() {
		if err := apiServer.Start(); err != nil {
			slog.Error("api server error", "error", err)
		}
	}()

	// Wait for signal to stop
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
}
