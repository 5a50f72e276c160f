package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"pet-health-bot/internal/adapters/llm"
	pg "pet-health-bot/internal/adapters/storage/postgres"
	lite "pet-health-bot/internal/adapters/storage/sqlite"
	"pet-health-bot/internal/bot"
	"pet-health-bot/internal/domain/analytics"
	"pet-health-bot/internal/domain/observations"
	"pet-health-bot/internal/domain/pets"
	"pet-health-bot/internal/domain/subscriptions"
	"pet-health-bot/internal/platform/config"
	"pet-health-bot/internal/platform/logger"
	"pet-health-bot/internal/prompts"
	"pet-health-bot/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Setup("info", "console")
		log.Fatal().Err(err).Msg("config")
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, repos, err := openStorage(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("storage")
	}
	defer db.Close()

	subSvc := subscriptions.NewService(repos.subscriptions, repos.usage)
	petSvc := pets.NewService(repos.pets, subSvc)
	obsSvc := observations.NewService(repos.healthLogs)
	anaSvc := analytics.NewService(repos.analytics)

	pm, err := prompts.NewManager(cfg.PromptsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("prompts")
	}
	go func() {
		if err := pm.Watch(ctx); err != nil {
			log.Warn().Err(err).Msg("prompt watcher stopped")
		}
	}()

	completer := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	b, err := bot.New(cfg.BotToken, bot.Services{
		Pets:          petSvc,
		Observations:  obsSvc,
		Subscriptions: subSvc,
		Analytics:     anaSvc,
	}, pm, completer, cfg.IsAdmin)
	if err != nil {
		log.Fatal().Err(err).Msg("bot")
	}

	srv := &http.Server{
		Addr: cfg.AdminAddr,
		Handler: router.NewRouter(router.Options{
			Analytics:  anaSvc,
			Prompts:    pm,
			AdminToken: cfg.AdminToken,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("addr", cfg.AdminAddr).Msg("admin api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("admin api")
		}
	}()

	if err := b.Run(ctx); err != nil {
		log.Error().Err(err).Msg("bot run")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("admin api shutdown")
	}
}

type repositories struct {
	pets          pets.Repository
	healthLogs    observations.Repository
	subscriptions subscriptions.Repository
	usage         subscriptions.UsageRepository
	analytics     analytics.Repository
}

// openStorage picks the backend: DB_DSN selects postgres, otherwise the
// bot runs on a local sqlite file.
func openStorage(cfg config.Config) (*sql.DB, repositories, error) {
	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, repositories{}, err
		}
		log.Info().Msg("using postgres storage")
		return db, repositories{
			pets:          pg.NewPetsRepo(db),
			healthLogs:    pg.NewHealthLogsRepo(db),
			subscriptions: pg.NewSubscriptionsRepo(db),
			usage:         pg.NewUsageRepo(db),
			analytics:     pg.NewAnalyticsRepo(db),
		}, nil
	}

	db, err := lite.Open(cfg.SQLitePath)
	if err != nil {
		return nil, repositories{}, err
	}
	log.Info().Str("path", cfg.SQLitePath).Msg("using sqlite storage")
	return db, repositories{
		pets:          lite.NewPetsRepo(db),
		healthLogs:    lite.NewHealthLogsRepo(db),
		subscriptions: lite.NewSubscriptionsRepo(db),
		usage:         lite.NewUsageRepo(db),
		analytics:     lite.NewAnalyticsRepo(db),
	}, nil
}
