package bot

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"pet-health-bot/internal/adapters/llm"
	"pet-health-bot/internal/domain/analytics"
	"pet-health-bot/internal/prompts"
)

const llmChatLimit = 20 * time.Second

var chatKinds = map[string]string{
	"general":   prompts.KindChatGeneral,
	"nutrition": prompts.KindChatNutrition,
	"behavior":  prompts.KindChatBehavior,
	"emergency": prompts.KindChatEmergency,
}

func (b *Bot) showChatModes(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "What would you like to ask about?")
	msg.ReplyMarkup = chatModesKeyboard()
	b.sendMsg(msg)
}

func (b *Bot) startAIChat(ctx context.Context, cb *tgbotapi.CallbackQuery, mode string) {
	chatID := cb.Message.Chat.ID
	kind, ok := chatKinds[mode]
	if !ok {
		return
	}

	sess := b.sessions.get(chatID)
	petID := sess.PetID
	*sess = session{Flow: flowAIChat, PetID: petID, ChatKind: kind}

	b.record(ctx, cb.From, analytics.KindUserAction, "chat_mode_"+mode)
	b.send(chatID, "Send your question. /cancel to stop.")
}

func (b *Bot) aiChatText(ctx context.Context, msg *tgbotapi.Message, sess *session) {
	chatID := msg.Chat.ID
	userID := msg.From.ID
	question := strings.TrimSpace(msg.Text)
	if question == "" {
		b.send(chatID, "Please send your question as text.")
		return
	}

	allowed, err := b.svc.Subscriptions.AllowAIMessage(ctx, userID)
	if err != nil {
		b.sendError(chatID)
		return
	}
	if !allowed {
		b.record(ctx, msg.From, analytics.KindPremiumAction, "chat_quota_hit")
		m := tgbotapi.NewMessage(chatID, "You've used today's 3 free AI messages. Premium chat is unlimited.")
		m.ReplyMarkup = upgradeNudgeKeyboard()
		b.sendMsg(m)
		return
	}

	sub, err := b.svc.Subscriptions.Status(ctx, userID)
	if err != nil {
		b.sendError(chatID)
		return
	}
	tier := "free"
	if sub.Premium {
		tier = "premium"
	}

	tpl := b.prompts.Get(sess.ChatKind, tier)
	vars := map[string]string{"user_message": question}
	if sess.PetID != "" {
		if p, err := b.svc.Pets.GetOwned(ctx, userID, sess.PetID); err == nil {
			vars["pet_profile"] = renderPetProfileLine(p)
		}
	}

	cctx, cancel := context.WithTimeout(ctx, llmChatLimit)
	defer cancel()

	answer, err := b.llm.Complete(cctx, llm.Request{
		System:      tpl.System,
		User:        tpl.Render(vars),
		Model:       tpl.Model,
		MaxTokens:   tpl.MaxTokens,
		Temperature: tpl.Temperature,
	})
	if err != nil || answer == "" {
		if err != nil && err != llm.ErrUnavailable {
			log.Warn().Err(err).Msg("ai chat completion failed")
		}
		b.send(chatID, "The AI assistant is unavailable right now. For anything urgent, contact a veterinary clinic directly.")
		return
	}

	if err := b.svc.Subscriptions.RecordAIMessage(ctx, userID); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("ai usage count failed")
	}
	b.svc.Analytics.Record(ctx, analytics.Event{
		UserID:   userID,
		Username: msg.From.UserName,
		Kind:     analytics.KindAIChat,
		Action:   sess.ChatKind,
		Premium:  sub.Premium,
	})

	b.send(chatID, answer+"\n\n⚠️ This is general guidance, not a diagnosis.")
}
