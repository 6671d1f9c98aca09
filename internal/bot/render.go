package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/developerDD/banyabot/internal/session"
)

// components renders a reply's options: the menu becomes a select list,
// the buttons a second action row.
func components(r session.Reply) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent

	if len(r.Menu) > 0 {
		opts := make([]discordgo.SelectMenuOption, 0, len(r.Menu))
		for _, o := range r.Menu {
			opts = append(opts, discordgo.SelectMenuOption{
				Label: o.Label,
				Value: o.ID,
			})
		}
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    "banya_select",
					Placeholder: "Оберіть зі списку",
					Options:     opts,
				},
			},
		})
	}

	if len(r.Buttons) > 0 {
		buttons := make([]discordgo.MessageComponent, 0, len(r.Buttons))
		for _, o := range r.Buttons {
			buttons = append(buttons, discordgo.Button{
				CustomID: o.ID,
				Label:    o.Label,
				Style:    discordgo.SecondaryButton,
			})
		}
		rows = append(rows, discordgo.ActionsRow{Components: buttons})
	}

	return rows
}

func (b *Bot) sendText(channelID, content string) {
	if _, err := b.session.ChannelMessageSend(channelID, content); err != nil {
		slog.Error("failed to send message", "channel", channelID, "error", err)
	}
}

func (b *Bot) sendReplies(channelID string, replies []session.Reply) {
	for _, r := range replies {
		_, err := b.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
			Content:    r.Text,
			Components: components(r),
		})
		if err != nil {
			slog.Error("failed to send reply", "channel", channelID, "error", err)
		}
	}
}

func (b *Bot) respondText(i *discordgo.InteractionCreate, content string) {
	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		slog.Error("failed to respond to interaction", "error", err)
	}
}

// respondReplies answers the interaction with the first reply and sends any
// remaining replies as plain channel messages.
func (b *Bot) respondReplies(i *discordgo.InteractionCreate, replies []session.Reply) {
	if len(replies) == 0 {
		// Nothing to say; acknowledge so the client stops waiting.
		err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredMessageUpdate,
		})
		if err != nil {
			slog.Error("failed to acknowledge interaction", "error", err)
		}
		return
	}

	first := replies[0]
	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    first.Text,
			Components: components(first),
		},
	})
	if err != nil {
		slog.Error("failed to respond to interaction", "error", err)
	}

	b.sendReplies(i.ChannelID, replies[1:])
}

func (b *Bot) statusText(ctx context.Context, channelID string) string {
	s, ok, err := b.mgr.Snapshot(ctx, channelID)
	if err != nil {
		slog.Error("failed to read session", "channel", channelID, "error", err)
		return storeFailMsg
	}
	if !ok {
		return "Наразі немає активного розрахунку. Використайте /start."
	}
	if s.Phase == session.PhaseIdle && s.Report != nil {
		return s.Report.Summary()
	}

	var sb strings.Builder
	sb.WriteString("📋 Поточний стан:\n")
	fmt.Fprintf(&sb, "Учасники: %s\n", joinOrDash(s.Participants))
	fmt.Fprintf(&sb, "Пили алкоголь: %s\n", joinOrDash(s.Drinkers))
	fmt.Fprintf(&sb, "Баня: %d грн\n", s.BathCost)
	fmt.Fprintf(&sb, "Їжа: %d грн\n", sumAmounts(s.Food))
	fmt.Fprintf(&sb, "Алкоголь: %d грн\n", sumAmounts(s.Alcohol))
	return sb.String()
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "—"
	}
	return strings.Join(names, ", ")
}

func sumAmounts(amounts map[string]int64) int64 {
	var total int64
	for _, v := range amounts {
		total += v
	}
	return total
}
