package bot

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pet-health-bot/internal/domain/analytics"
	"pet-health-bot/internal/domain/subscriptions"
)

func (b *Bot) showPremium(ctx context.Context, chatID, userID int64) {
	sub, err := b.svc.Subscriptions.Status(ctx, userID)
	if err != nil {
		b.sendError(chatID)
		return
	}
	msg := tgbotapi.NewMessage(chatID, renderSubscription(sub))
	msg.ReplyMarkup = premiumKeyboard(sub.Premium)
	b.sendMsg(msg)
}

func (b *Bot) premiumCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, action string) {
	chatID := cb.Message.Chat.ID
	userID := cb.From.ID

	switch action {
	case "trial":
		sub, err := b.svc.Subscriptions.StartTrial(ctx, userID)
		if err != nil {
			if errors.Is(err, subscriptions.ErrInvalidInput) {
				b.send(chatID, "You already have an active premium subscription.")
				return
			}
			b.sendError(chatID)
			return
		}
		b.record(ctx, cb.From, analytics.KindPremiumAction, "start_trial")
		b.send(chatID, "🎁 Trial started!\n\n"+renderSubscription(sub))
		b.sendMenu(chatID, "Main menu:")

	case "upgrade":
		// Payments are out of band; the reference ties the manual payment
		// to the subscription row.
		sub, err := b.svc.Subscriptions.Upgrade(ctx, userID, "manual", 1)
		if err != nil {
			b.sendError(chatID)
			return
		}
		b.record(ctx, cb.From, analytics.KindPremiumAction, "upgrade_to_premium")
		b.send(chatID, "⭐ Welcome to premium!\n\n"+renderSubscription(sub))
		b.sendMenu(chatID, "Main menu:")
	}
}
