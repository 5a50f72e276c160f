package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pet-health-bot/internal/domain/analytics"
)

// Operator commands, restricted to the configured admin user IDs. They
// mirror the admin HTTP API so an operator on the move does not need curl.

func (b *Bot) adminAnalytics(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		b.send(msg.Chat.ID, "❌ You don't have access to this command.")
		return
	}

	sum, err := b.svc.Analytics.DailySummary(ctx, time.Time{})
	if err != nil {
		b.sendError(msg.Chat.ID)
		return
	}
	b.send(msg.Chat.ID, renderDailySummary(sum))
}

func (b *Bot) adminReloadPrompts(msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		b.send(msg.Chat.ID, "❌ You don't have access to this command.")
		return
	}

	if err := b.prompts.Reload(); err != nil {
		b.send(msg.Chat.ID, "⚠️ Reload failed, previous prompts kept:\n"+err.Error())
		return
	}
	st := b.prompts.Status()
	b.send(msg.Chat.ID, fmt.Sprintf("✅ Prompts reloaded.\nVersion: %s\nTemplates: %d", st.Version, st.Templates))
}

func renderDailySummary(s analytics.Summary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Daily report — %s\n\n", s.Date)
	fmt.Fprintf(&sb, "👥 Active users: %d (premium: %d)\n", s.UniqueUsers, s.PremiumUsers)
	fmt.Fprintf(&sb, "📈 Total events: %d\n", s.TotalEvents)
	fmt.Fprintf(&sb, "💬 AI chats: %d\n", s.AIChats)
	fmt.Fprintf(&sb, "🐾 Pet actions: %d\n", s.PetActions)
	fmt.Fprintf(&sb, "📋 Health logs: %d\n", s.HealthActions)
	fmt.Fprintf(&sb, "⭐ Premium actions: %d\n", s.PremiumActions)

	if len(s.TopActions) > 0 {
		sb.WriteString("\n🔥 Top actions:\n")
		for i, a := range s.TopActions {
			fmt.Fprintf(&sb, "%d. %s: %d\n", i+1, a.Action, a.Count)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
