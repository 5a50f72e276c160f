package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"pet-health-bot/internal/adapters/llm"
	"pet-health-bot/internal/domain/analytics"
	"pet-health-bot/internal/domain/observations"
	"pet-health-bot/internal/domain/pets"
	"pet-health-bot/internal/domain/scoring"
	"pet-health-bot/internal/domain/subscriptions"
	"pet-health-bot/internal/prompts"
)

const (
	analysisWindow    = 7  // observations fed into the scorers
	correlationDays   = 30 // lookback for the correlation analyzer
	llmNarrationLimit = 5 * time.Second
)

// runAnalysis renders the health analysis for one pet. Free users get the
// basic score with an upgrade nudge; premium users get the full advanced
// analysis with correlations, root causes and an optional LLM narration.
func (b *Bot) runAnalysis(ctx context.Context, chatID, userID int64, petID string) {
	p, err := b.svc.Pets.GetOwned(ctx, userID, petID)
	if err != nil {
		b.sendError(chatID)
		return
	}
	obs, err := b.svc.Observations.Recent(ctx, petID, analysisWindow)
	if err != nil {
		b.sendError(chatID)
		return
	}
	if len(obs) == 0 {
		b.send(chatID, "No health entries for "+p.Name+" yet. Log a few days first.")
		b.sendMenu(chatID, "Main menu:")
		return
	}

	blocked, err := b.svc.Subscriptions.Blocked(ctx, userID, subscriptions.FeatureAdvancedAnalysis)
	if err != nil {
		b.sendError(chatID)
		return
	}

	if blocked {
		b.svc.Analytics.Record(ctx, analytics.Event{UserID: userID, Kind: analytics.KindHealthAction, Action: "analysis_basic"})
		b.basicAnalysis(chatID, p, obs)
		return
	}
	b.svc.Analytics.Record(ctx, analytics.Event{UserID: userID, Kind: analytics.KindHealthAction, Action: "analysis_advanced", Premium: true})
	b.advancedAnalysis(ctx, chatID, userID, p, obs)
}

func (b *Bot) basicAnalysis(chatID int64, p pets.Pet, obs []observations.Observation) {
	score, alerts := scoring.BasicScore(obs)

	msg := tgbotapi.NewMessage(chatID, renderBasicAnalysis(p.Name, score, alerts))
	msg.ReplyMarkup = upgradeNudgeKeyboard()
	b.sendMsg(msg)
}

func (b *Bot) advancedAnalysis(ctx context.Context, chatID, userID int64, p pets.Pet, obs []observations.Observation) {
	profile := scoring.Profile{
		AgeYears:  p.AgeYears,
		AgeMonths: p.AgeMonths,
		Species:   string(p.Species),
		Breed:     p.Breed,
	}

	logs, err := b.svc.Observations.Window(ctx, p.ID, correlationDays)
	if err != nil {
		b.sendError(chatID)
		return
	}
	corr := scoring.AnalyzeCorrelations(correlationRecords(logs))
	res := scoring.EnhancedScore(obs, profile, corr, nil)

	text := renderAdvancedAnalysis(p.Name, res, corr)
	if narrated, ok := b.narrate(ctx, userID, p, res, corr); ok {
		text = narrated + "\n\n" + renderScoreLine(res)
	}
	b.send(chatID, text)
	b.sendMenu(chatID, "Main menu:")
}

// narrate asks the LLM to write the premium analysis summary. Any failure
// falls back to the locally rendered text.
func (b *Bot) narrate(ctx context.Context, userID int64, p pets.Pet, res scoring.Result, corr scoring.CorrelationResult) (string, bool) {
	tpl := b.prompts.Get(prompts.KindHealthAnalysis, "premium")

	cctx, cancel := context.WithTimeout(ctx, llmNarrationLimit)
	defer cancel()

	out, err := b.llm.Complete(cctx, llm.Request{
		System:      tpl.System,
		User:        tpl.Render(map[string]string{"health_data": analysisPromptData(p, res, corr)}),
		Model:       tpl.Model,
		MaxTokens:   tpl.MaxTokens,
		Temperature: tpl.Temperature,
	})
	if err != nil || out == "" {
		if err != nil && err != llm.ErrUnavailable {
			log.Warn().Err(err).Msg("analysis narration failed, using local rendering")
		}
		return "", false
	}

	b.svc.Analytics.Record(ctx, analytics.Event{
		UserID:  userID,
		Kind:    analytics.KindAIChat,
		Action:  "analysis_narration",
		Premium: true,
	})
	return out, true
}

// correlationRecords flattens stored logs into the per-day tuples the
// correlation analyzer works on.
func correlationRecords(logs []observations.HealthLog) []scoring.CorrelationRecord {
	out := make([]scoring.CorrelationRecord, 0, len(logs))
	for _, l := range logs {
		out = append(out, scoring.CorrelationRecord{
			Date:      l.Date.Format("2006-01-02"),
			FoodType:  l.FoodType,
			Mood:      l.Mood,
			StoolInfo: l.StoolInfo,
			Symptoms:  l.Symptoms,
			Weight:    l.Weight,
			Activity:  l.Activity,
			Notes:     l.Notes,
		})
	}
	return out
}
