// Package bot implements the Telegram front end: menu navigation, the pet
// registration and health logging conversations, analysis rendering and
// the AI chat modes. All domain logic lives in the services it is given.
package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"pet-health-bot/internal/adapters/llm"
	"pet-health-bot/internal/domain/analytics"
	"pet-health-bot/internal/domain/observations"
	"pet-health-bot/internal/domain/pets"
	"pet-health-bot/internal/domain/subscriptions"
	"pet-health-bot/internal/prompts"
)

// Services groups the domain services the bot drives.
type Services struct {
	Pets          *pets.Service
	Observations  *observations.Service
	Subscriptions *subscriptions.Service
	Analytics     *analytics.Service
}

type Bot struct {
	api      *tgbotapi.BotAPI
	svc      Services
	prompts  *prompts.Manager
	llm      llm.Completer
	isAdmin  func(userID int64) bool
	sessions *sessionStore
}

// New connects to the Telegram API. isAdmin gates the operator commands;
// nil means no Telegram user is an admin.
func New(token string, svc Services, pm *prompts.Manager, completer llm.Completer, isAdmin func(int64) bool) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}
	if isAdmin == nil {
		isAdmin = func(int64) bool { return false }
	}
	return &Bot{
		api:      api,
		svc:      svc,
		prompts:  pm,
		llm:      completer,
		isAdmin:  isAdmin,
		sessions: newSessionStore(),
	}, nil
}

// Run long-polls for updates until ctx is done. Updates are handled
// sequentially; the conversation state machine assumes one in-flight
// update per chat.
func (b *Bot) Run(ctx context.Context) error {
	log.Info().Str("username", b.api.Self.UserName).Msg("bot started")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			log.Info().Msg("bot stopped")
			return nil
		case update := <-updates:
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("update handler panicked")
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.sessions.reset(chatID)
			b.record(ctx, msg.From, analytics.KindUserAction, "start")
			b.sendMenu(chatID, "👋 Welcome to the pet health tracker!\nPick an option below.")
		case "menu":
			b.sessions.reset(chatID)
			b.sendMenu(chatID, "Main menu:")
		case "cancel":
			b.sessions.reset(chatID)
			b.send(chatID, "Cancelled.")
			b.sendMenu(chatID, "Main menu:")
		case "help":
			b.send(chatID, helpText)
		case "analytics":
			b.adminAnalytics(ctx, msg)
		case "reload_prompts":
			b.adminReloadPrompts(msg)
		default:
			b.send(chatID, "Unknown command. Try /menu.")
		}
		return
	}

	sess := b.sessions.get(chatID)
	switch sess.Flow {
	case flowRegisterPet:
		b.petRegistrationText(ctx, msg, sess)
	case flowLogHealth:
		b.healthLogText(ctx, msg, sess)
	case flowAIChat:
		b.aiChatText(ctx, msg, sess)
	default:
		b.sendMenu(chatID, "Pick an option:")
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.From == nil {
		return
	}
	// Acknowledge first so the client stops its spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Warn().Err(err).Msg("callback ack failed")
	}

	chatID := cb.Message.Chat.ID
	data := cb.Data
	sess := b.sessions.get(chatID)

	action, arg, _ := strings.Cut(data, ":")
	switch action {
	case "menu":
		b.menuCallback(ctx, cb, arg)
	case "pet":
		if arg == "new" {
			b.startPetRegistration(ctx, cb)
		}
	case "petsel":
		b.petSelected(ctx, cb, arg)
	case "species", "sex":
		b.petRegistrationChoice(ctx, cb, sess, action, arg)
	case "mood", "stool", "appetite", "water", "temp", "breathing", "activity":
		b.healthLogChoice(ctx, cb, sess, action, arg)
	case "skip":
		b.skipStep(ctx, cb, sess)
	case "chatmode":
		b.startAIChat(ctx, cb, arg)
	case "premium":
		b.premiumCallback(ctx, cb, arg)
	default:
		log.Debug().Str("data", data).Msg("unhandled callback")
	}
}

func (b *Bot) menuCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, item string) {
	chatID := cb.Message.Chat.ID
	userID := cb.From.ID

	b.record(ctx, cb.From, analytics.KindUserAction, "menu_"+item)

	switch item {
	case "main":
		b.sessions.reset(chatID)
		b.sendMenu(chatID, "Main menu:")
	case "pets":
		b.showPets(ctx, chatID, userID)
	case "log":
		b.choosePet(ctx, chatID, userID, "log", "Which pet is this entry for?")
	case "analysis":
		b.choosePet(ctx, chatID, userID, "analysis", "Which pet should I analyze?")
	case "history":
		b.choosePet(ctx, chatID, userID, "history", "Whose history do you want to see?")
	case "chat":
		b.showChatModes(chatID)
	case "premium":
		b.showPremium(ctx, chatID, userID)
	}
}

// choosePet shows the pet picker for a follow-up action, short-circuiting
// when the owner has exactly one pet.
func (b *Bot) choosePet(ctx context.Context, chatID, userID int64, purpose, prompt string) {
	list, err := b.svc.Pets.ListByOwner(ctx, userID)
	if err != nil {
		b.sendError(chatID)
		return
	}
	if len(list) == 0 {
		b.send(chatID, "You have no pets registered yet. Add one first from \"My pets\".")
		b.sendMenu(chatID, "Main menu:")
		return
	}
	if len(list) == 1 {
		b.dispatchPetPurpose(ctx, chatID, userID, purpose, list[0].ID)
		return
	}
	msg := tgbotapi.NewMessage(chatID, prompt)
	msg.ReplyMarkup = petsMenuKeyboard(list, purpose)
	b.sendMsg(msg)
}

func (b *Bot) petSelected(ctx context.Context, cb *tgbotapi.CallbackQuery, arg string) {
	purpose, petID, ok := strings.Cut(arg, ":")
	if !ok {
		return
	}
	b.dispatchPetPurpose(ctx, cb.Message.Chat.ID, cb.From.ID, purpose, petID)
}

func (b *Bot) dispatchPetPurpose(ctx context.Context, chatID, userID int64, purpose, petID string) {
	switch purpose {
	case "pets":
		b.showPetCard(ctx, chatID, userID, petID)
	case "log":
		b.startHealthLog(ctx, chatID, userID, petID)
	case "analysis":
		b.runAnalysis(ctx, chatID, userID, petID)
	case "history":
		b.showHistory(ctx, chatID, userID, petID)
	}
}

// record emits a usage event; analytics failures never surface to users.
func (b *Bot) record(ctx context.Context, from *tgbotapi.User, kind analytics.Kind, action string) {
	b.svc.Analytics.Record(ctx, analytics.Event{
		UserID:   from.ID,
		Username: from.UserName,
		Kind:     kind,
		Action:   action,
	})
}

func (b *Bot) send(chatID int64, text string) {
	b.sendMsg(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendMenu(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = mainMenuKeyboard()
	b.sendMsg(msg)
}

func (b *Bot) sendError(chatID int64) {
	b.send(chatID, "Something went wrong, please try again.")
}

func (b *Bot) sendMsg(msg tgbotapi.MessageConfig) {
	if _, err := b.api.Send(msg); err != nil {
		log.Warn().Err(err).Int64("chat_id", msg.ChatID).Msg("send failed")
	}
}

const helpText = `This bot tracks your pet's daily health and warns you about risks.

/start — main menu
/menu — main menu
/cancel — abort the current step
/help — this message

Log a short health entry every day; after a few days the analysis can spot weight changes, mood trends and food-symptom patterns.`
