package bot

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

const storeFailMsg = "⚠️ Не вдалося зберегти дані. Спробуйте ще раз."

func (b *Bot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	slog.Info("connected", "user", event.User.Username)

	// Register commands for all guilds
	for _, guild := range event.Guilds {
		if err := b.registerGuildCommands(guild.ID); err != nil {
			slog.Error("failed to register commands", "guild", guild.ID, "error", err)
		}
	}
}

func (b *Bot) onGuildCreate(s *discordgo.Session, event *discordgo.GuildCreate) {
	slog.Info("guild available, ensuring commands", "guild", event.Name, "id", event.ID)
	if err := b.registerGuildCommands(event.ID); err != nil {
		slog.Error("failed to register commands", "guild", event.ID, "error", err)
	}
}

// onMessageCreate routes free text in the channel to the state machine as
// an utterance. Phases that expect no text keep silent, so ordinary chat
// passes through unanswered.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.Bot {
		return
	}

	replies, err := b.mgr.HandleText(context.Background(), m.ChannelID, m.Content)
	if err != nil {
		slog.Error("failed to handle message", "channel", m.ChannelID, "error", err)
		b.sendText(m.ChannelID, storeFailMsg)
		return
	}
	b.sendReplies(m.ChannelID, replies)
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleApplicationCommand(s, i)
	case discordgo.InteractionMessageComponent:
		b.handleComponent(s, i)
	}
}

func (b *Bot) handleApplicationCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	data := i.ApplicationCommandData()

	switch data.Name {
	case "start":
		replies, err := b.mgr.Start(ctx, i.ChannelID)
		if err != nil {
			slog.Error("failed to start session", "channel", i.ChannelID, "error", err)
			b.respondText(i, storeFailMsg)
			return
		}
		b.respondReplies(i, replies)
	case "status":
		b.respondText(i, b.statusText(ctx, i.ChannelID))
	}
}

// handleComponent turns a button press or a select-menu pick into a
// selection event. Select menus carry the picked option id in Values;
// buttons carry it in the custom id itself.
func (b *Bot) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	id := data.CustomID
	if len(data.Values) > 0 {
		id = data.Values[0]
	}

	replies, err := b.mgr.HandleSelect(context.Background(), i.ChannelID, id)
	if err != nil {
		slog.Error("failed to handle selection", "channel", i.ChannelID, "id", id, "error", err)
		b.respondText(i, storeFailMsg)
		return
	}
	b.respondReplies(i, replies)
}
