package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pet-health-bot/internal/domain/analytics"
	"pet-health-bot/internal/domain/observations"
)

const historyEntries = 7

func (b *Bot) startHealthLog(ctx context.Context, chatID, userID int64, petID string) {
	p, err := b.svc.Pets.GetOwned(ctx, userID, petID)
	if err != nil {
		b.sendError(chatID)
		return
	}

	sess := b.sessions.get(chatID)
	*sess = session{Flow: flowLogHealth, Step: stepLogWeight, PetID: p.ID}

	m := tgbotapi.NewMessage(chatID, "Logging today's entry for "+p.Name+".\n\nWeight in kg? (or skip)")
	m.ReplyMarkup = skipKeyboard()
	b.sendMsg(m)
}

// healthLogText consumes the free-text steps: weight, food, symptoms, notes.
func (b *Bot) healthLogText(ctx context.Context, msg *tgbotapi.Message, sess *session) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	switch sess.Step {
	case stepLogWeight:
		w, err := parseWeight(text)
		if err != nil {
			b.send(chatID, "Please send the weight in kg, e.g. 4.5, or skip.")
			return
		}
		sess.LogDraft.Weight = w
		b.askLogFood(chatID, sess)

	case stepLogFood:
		sess.LogDraft.FoodType = text
		b.askLogMood(chatID, sess)

	case stepLogSymptoms:
		sess.LogDraft.Symptoms = text
		b.askLogNotes(chatID, sess)

	case stepLogNotes:
		sess.LogDraft.Notes = text
		b.finishHealthLog(ctx, msg.From, chatID, sess)

	default:
		b.send(chatID, "Please use the buttons above.")
	}
}

// applyLogChoice stores a button answer on the draft and returns the step
// that follows. ok is false when the button does not belong to the current
// step (a stale keyboard from an earlier message).
func applyLogChoice(d *observations.LogInput, field, value string, step int) (int, bool) {
	switch {
	case field == "mood" && step == stepLogMood:
		d.Mood = value
		return stepLogStool, true
	case field == "stool" && step == stepLogStool:
		d.StoolInfo = value
		return stepLogAppetite, true
	case field == "appetite" && step == stepLogAppetite:
		d.Appetite = value
		return stepLogWater, true
	case field == "water" && step == stepLogWater:
		d.WaterIntake = value
		return stepLogTemperature, true
	case field == "temp" && step == stepLogTemperature:
		d.Temperature = value
		return stepLogBreathing, true
	case field == "breathing" && step == stepLogBreathing:
		d.Breathing = value
		return stepLogActivity, true
	case field == "activity" && step == stepLogActivity:
		d.Activity = value
		return stepLogSymptoms, true
	}
	return step, false
}

// healthLogChoice consumes the button steps: mood, stool, appetite, water,
// temperature, breathing, activity.
func (b *Bot) healthLogChoice(ctx context.Context, cb *tgbotapi.CallbackQuery, sess *session, field, value string) {
	chatID := cb.Message.Chat.ID
	if sess.Flow != flowLogHealth {
		return
	}

	next, ok := applyLogChoice(&sess.LogDraft, field, value, sess.Step)
	if !ok {
		return
	}
	sess.Step = next

	m := tgbotapi.NewMessage(chatID, "")
	switch next {
	case stepLogStool:
		m.Text = "Stool?"
		m.ReplyMarkup = stoolKeyboard()
	case stepLogAppetite:
		m.Text = "Appetite?"
		m.ReplyMarkup = appetiteKeyboard()
	case stepLogWater:
		m.Text = "Water intake?"
		m.ReplyMarkup = waterKeyboard()
	case stepLogTemperature:
		m.Text = "Body temperature?"
		m.ReplyMarkup = temperatureKeyboard()
	case stepLogBreathing:
		m.Text = "Breathing?"
		m.ReplyMarkup = breathingKeyboard()
	case stepLogActivity:
		m.Text = "Activity level?"
		m.ReplyMarkup = activityKeyboard()
	case stepLogSymptoms:
		m.Text = "Any symptoms? Describe them, or skip if none."
		m.ReplyMarkup = skipKeyboard()
	}
	b.sendMsg(m)
}

// skipStep advances past an optional step in whichever flow is active.
func (b *Bot) skipStep(ctx context.Context, cb *tgbotapi.CallbackQuery, sess *session) {
	chatID := cb.Message.Chat.ID

	switch sess.Flow {
	case flowRegisterPet:
		switch sess.Step {
		case stepPetBreed:
			sess.Step = stepPetSex
			m := tgbotapi.NewMessage(chatID, "Sex?")
			m.ReplyMarkup = sexKeyboard()
			b.sendMsg(m)
		case stepPetAgeMonths:
			b.askPetWeight(chatID, sess)
		case stepPetWeight:
			b.finishPetRegistration(ctx, cb.From, chatID, sess)
		}

	case flowLogHealth:
		switch sess.Step {
		case stepLogWeight:
			b.askLogFood(chatID, sess)
		case stepLogFood:
			b.askLogMood(chatID, sess)
		case stepLogSymptoms:
			sess.LogDraft.Symptoms = "none"
			b.askLogNotes(chatID, sess)
		case stepLogNotes:
			b.finishHealthLog(ctx, cb.From, chatID, sess)
		}
	}
}

func (b *Bot) askLogFood(chatID int64, sess *session) {
	sess.Step = stepLogFood
	m := tgbotapi.NewMessage(chatID, "What food did your pet eat today? (or skip)")
	m.ReplyMarkup = skipKeyboard()
	b.sendMsg(m)
}

func (b *Bot) askLogMood(chatID int64, sess *session) {
	sess.Step = stepLogMood
	m := tgbotapi.NewMessage(chatID, "Mood today?")
	m.ReplyMarkup = moodKeyboard()
	b.sendMsg(m)
}

func (b *Bot) askLogNotes(chatID int64, sess *session) {
	sess.Step = stepLogNotes
	m := tgbotapi.NewMessage(chatID, "Anything else worth noting? (or skip)")
	m.ReplyMarkup = skipKeyboard()
	b.sendMsg(m)
}

func (b *Bot) finishHealthLog(ctx context.Context, from *tgbotapi.User, chatID int64, sess *session) {
	petID := sess.PetID
	draft := sess.LogDraft
	b.sessions.reset(chatID)

	if _, err := b.svc.Observations.Log(ctx, petID, draft); err != nil {
		b.sendError(chatID)
		return
	}
	b.record(ctx, from, analytics.KindHealthAction, "health_logged")
	b.send(chatID, "✅ Entry saved. Log daily for the best analysis.")
	b.sendMenu(chatID, "Main menu:")
}

func (b *Bot) showHistory(ctx context.Context, chatID, userID int64, petID string) {
	p, err := b.svc.Pets.GetOwned(ctx, userID, petID)
	if err != nil {
		b.sendError(chatID)
		return
	}
	logs, err := b.svc.Observations.RecentLogs(ctx, petID, historyEntries)
	if err != nil {
		b.sendError(chatID)
		return
	}
	b.send(chatID, renderHistory(p.Name, logs))
	b.sendMenu(chatID, "Main menu:")
}
