package bot

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/developerDD/banyabot/internal/session"
)

type Bot struct {
	session *discordgo.Session
	mgr     *session.Manager
}

func New(token string, mgr *session.Manager) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	bot := &Bot{
		session: s,
		mgr:     mgr,
	}

	// Register event handlers
	s.AddHandler(bot.onReady)
	s.AddHandler(bot.onGuildCreate)
	s.AddHandler(bot.onMessageCreate)
	s.AddHandler(bot.onInteractionCreate)

	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	return bot, nil
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	slog.Info("discord bot is running")
	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) registerGuildCommands(guildID string) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:         "start",
			Description:  "Почати новий розрахунок витрат",
			DMPermission: boolPtr(false),
		},
		{
			Name:         "status",
			Description:  "Показати поточний стан розрахунку",
			DMPermission: boolPtr(false),
		},
	}

	// Delete existing commands and register new ones
	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, guildID, commands)
	if err != nil {
		return err
	}

	slog.Info("registered application commands", "guild", guildID)
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}
