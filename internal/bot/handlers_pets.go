package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pet-health-bot/internal/domain/analytics"
	"pet-health-bot/internal/domain/pets"
)

func (b *Bot) showPets(ctx context.Context, chatID, userID int64) {
	list, err := b.svc.Pets.ListByOwner(ctx, userID)
	if err != nil {
		b.sendError(chatID)
		return
	}
	text := "Your pets:"
	if len(list) == 0 {
		text = "You have no pets yet. Add your first one!"
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = petsMenuKeyboard(list, "pets")
	b.sendMsg(msg)
}

func (b *Bot) showPetCard(ctx context.Context, chatID, userID int64, petID string) {
	p, err := b.svc.Pets.GetOwned(ctx, userID, petID)
	if err != nil {
		b.sendError(chatID)
		return
	}
	sess := b.sessions.get(chatID)
	sess.PetID = p.ID
	b.send(chatID, renderPetCard(p))
	b.sendMenu(chatID, "Main menu:")
}

func (b *Bot) startPetRegistration(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	userID := cb.From.ID

	// Free tier allows one pet; fail early instead of at the last step.
	limit := b.svc.Subscriptions.PetLimit(ctx, userID)
	n, err := b.countPets(ctx, userID)
	if err != nil {
		b.sendError(chatID)
		return
	}
	if n >= limit {
		b.record(ctx, cb.From, analytics.KindPremiumAction, "pet_limit_hit")
		msg := tgbotapi.NewMessage(chatID, "The free plan tracks one pet. Premium tracks up to 10.")
		msg.ReplyMarkup = upgradeNudgeKeyboard()
		b.sendMsg(msg)
		return
	}

	sess := b.sessions.get(chatID)
	*sess = session{Flow: flowRegisterPet, Step: stepPetName}
	b.record(ctx, cb.From, analytics.KindPetAction, "register_pet_started")
	b.send(chatID, "What is your pet's name?")
}

func (b *Bot) countPets(ctx context.Context, userID int64) (int, error) {
	list, err := b.svc.Pets.ListByOwner(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

// petRegistrationText consumes free-text answers for the current step.
func (b *Bot) petRegistrationText(ctx context.Context, msg *tgbotapi.Message, sess *session) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	switch sess.Step {
	case stepPetName:
		if text == "" {
			b.send(chatID, "Please send the name as text.")
			return
		}
		sess.PetDraft.Name = text
		sess.Step = stepPetSpecies
		m := tgbotapi.NewMessage(chatID, "What species is "+text+"?")
		m.ReplyMarkup = speciesKeyboard()
		b.sendMsg(m)

	case stepPetBreed:
		sess.PetDraft.Breed = text
		sess.Step = stepPetSex
		m := tgbotapi.NewMessage(chatID, "Sex?")
		m.ReplyMarkup = sexKeyboard()
		b.sendMsg(m)

	case stepPetAgeYears:
		years, err := strconv.Atoi(text)
		if err != nil || years < 0 {
			b.send(chatID, "Please send the age in whole years, e.g. 3.")
			return
		}
		sess.PetDraft.AgeYears = years
		sess.Step = stepPetAgeMonths
		m := tgbotapi.NewMessage(chatID, "And how many extra months? (0-11)")
		m.ReplyMarkup = skipKeyboard()
		b.sendMsg(m)

	case stepPetAgeMonths:
		months, err := strconv.Atoi(text)
		if err != nil || months < 0 || months > 11 {
			b.send(chatID, "Months must be a number between 0 and 11.")
			return
		}
		sess.PetDraft.AgeMonths = months
		b.askPetWeight(chatID, sess)

	case stepPetWeight:
		w, err := parseWeight(text)
		if err != nil {
			b.send(chatID, "Please send the weight in kg, e.g. 4.5.")
			return
		}
		sess.PetDraft.Weight = w
		b.finishPetRegistration(ctx, msg.From, chatID, sess)

	default:
		b.send(chatID, "Please use the buttons above.")
	}
}

// petRegistrationChoice consumes button answers (species, sex).
func (b *Bot) petRegistrationChoice(ctx context.Context, cb *tgbotapi.CallbackQuery, sess *session, field, value string) {
	chatID := cb.Message.Chat.ID
	if sess.Flow != flowRegisterPet {
		return
	}

	switch {
	case field == "species" && sess.Step == stepPetSpecies:
		sess.PetDraft.Species = value
		sess.Step = stepPetBreed
		m := tgbotapi.NewMessage(chatID, "Breed? (or skip)")
		m.ReplyMarkup = skipKeyboard()
		b.sendMsg(m)

	case field == "sex" && sess.Step == stepPetSex:
		sess.PetDraft.Sex = value
		sess.Step = stepPetAgeYears
		b.send(chatID, "How old is your pet, in whole years?")
	}
}

func (b *Bot) askPetWeight(chatID int64, sess *session) {
	sess.Step = stepPetWeight
	m := tgbotapi.NewMessage(chatID, "Current weight in kg? (or skip)")
	m.ReplyMarkup = skipKeyboard()
	b.sendMsg(m)
}

func (b *Bot) finishPetRegistration(ctx context.Context, from *tgbotapi.User, chatID int64, sess *session) {
	p, err := b.svc.Pets.Create(ctx, from.ID, sess.PetDraft)
	b.sessions.reset(chatID)
	if err != nil {
		if errors.Is(err, pets.ErrPetLimit) {
			msg := tgbotapi.NewMessage(chatID, "The free plan tracks one pet. Premium tracks up to 10.")
			msg.ReplyMarkup = upgradeNudgeKeyboard()
			b.sendMsg(msg)
			return
		}
		b.sendError(chatID)
		return
	}

	newSess := b.sessions.get(chatID)
	newSess.PetID = p.ID
	b.record(ctx, from, analytics.KindPetAction, "register_pet_done")
	b.send(chatID, "✅ "+p.Name+" is registered!\n\n"+renderPetCard(p))
	b.sendMenu(chatID, "Main menu:")
}

// parseWeight accepts "4.5" and "4,5"; empty means not recorded.
func parseWeight(text string) (*float64, error) {
	text = strings.TrimSpace(strings.ReplaceAll(text, ",", "."))
	if text == "" {
		return nil, nil
	}
	w, err := strconv.ParseFloat(text, 64)
	if err != nil || w <= 0 {
		return nil, errors.New("invalid weight")
	}
	return &w, nil
}
