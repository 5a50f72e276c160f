package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pet-health-bot/internal/domain/pets"
)

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🐾 My pets", "menu:pets"),
			tgbotapi.NewInlineKeyboardButtonData("📋 Log health", "menu:log"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Analysis", "menu:analysis"),
			tgbotapi.NewInlineKeyboardButtonData("📖 History", "menu:history"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💬 Ask the vet AI", "menu:chat"),
			tgbotapi.NewInlineKeyboardButtonData("⭐ Premium", "menu:premium"),
		),
	)
}

func petsMenuKeyboard(list []pets.Pet, purpose string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(list)+2)
	for _, p := range list {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(p.Name, "petsel:"+purpose+":"+p.ID),
		))
	}
	if purpose == "pets" {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Add a pet", "pet:new"),
		))
	}
	rows = append(rows, backRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func speciesKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🐶 Dog", "species:dog"),
			tgbotapi.NewInlineKeyboardButtonData("🐱 Cat", "species:cat"),
			tgbotapi.NewInlineKeyboardButtonData("🦜 Other", "species:other"),
		),
	)
}

func sexKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Male", "sex:male"),
			tgbotapi.NewInlineKeyboardButtonData("Female", "sex:female"),
			tgbotapi.NewInlineKeyboardButtonData("Unknown", "sex:unknown"),
		),
	)
}

func moodKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("😃 Happy & energetic", "mood:happy_energetic"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🙂 Normal", "mood:normal"),
			tgbotapi.NewInlineKeyboardButtonData("😔 Tired / lethargic", "mood:tired_lethargic"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("😟 Anxious", "mood:anxious"),
		),
	)
}

func stoolKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Normal", "stool:normal"),
			tgbotapi.NewInlineKeyboardButtonData("Soft", "stool:soft"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Hard", "stool:hard"),
			tgbotapi.NewInlineKeyboardButtonData("🩸 Bloody", "stool:bloody"),
		),
	)
}

func appetiteKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("High", "appetite:high"),
			tgbotapi.NewInlineKeyboardButtonData("Normal", "appetite:normal"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Low", "appetite:low"),
			tgbotapi.NewInlineKeyboardButtonData("Not eating", "appetite:none"),
		),
	)
}

func waterKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("High", "water:high"),
			tgbotapi.NewInlineKeyboardButtonData("Normal", "water:normal"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Low", "water:low"),
			tgbotapi.NewInlineKeyboardButtonData("Not drinking", "water:none"),
		),
	)
}

func temperatureKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Normal", "temp:normal"),
			tgbotapi.NewInlineKeyboardButtonData("🔥 Hot", "temp:hot"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❄️ Cold", "temp:cold"),
			tgbotapi.NewInlineKeyboardButtonData("🤒 Fever", "temp:fever"),
		),
	)
}

func breathingKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Normal", "breathing:normal"),
			tgbotapi.NewInlineKeyboardButtonData("Fast", "breathing:fast"),
			tgbotapi.NewInlineKeyboardButtonData("Slow", "breathing:slow"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Coughing", "breathing:cough"),
			tgbotapi.NewInlineKeyboardButtonData("Noisy", "breathing:noisy"),
		),
	)
}

func activityKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("High", "activity:high"),
			tgbotapi.NewInlineKeyboardButtonData("Medium", "activity:medium"),
			tgbotapi.NewInlineKeyboardButtonData("Low", "activity:low"),
		),
	)
}

func skipKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Skip", "skip"),
		),
	)
}

func chatModesKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💬 General", "chatmode:general"),
			tgbotapi.NewInlineKeyboardButtonData("🍖 Nutrition", "chatmode:nutrition"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🐕 Behavior", "chatmode:behavior"),
			tgbotapi.NewInlineKeyboardButtonData("🚨 Emergency", "chatmode:emergency"),
		),
		backRow(),
	)
}

func premiumKeyboard(premium bool) tgbotapi.InlineKeyboardMarkup {
	if premium {
		return tgbotapi.NewInlineKeyboardMarkup(backRow())
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎁 Start 7-day trial", "premium:trial"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⭐ Upgrade to premium", "premium:upgrade"),
		),
		backRow(),
	)
}

func upgradeNudgeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⭐ See premium", "menu:premium"),
		),
		backRow(),
	)
}

func backRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", "menu:main"),
	)
}
