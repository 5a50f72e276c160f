// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	BotToken string

	OpenAIAPIKey string
	OpenAIModel  string

	// DBDSN selects postgres; when empty the bot runs on sqlite at
	// SQLitePath.
	DBDSN      string
	SQLitePath string

	AdminAddr    string
	AdminToken   string
	AdminUserIDs []int64

	PromptsPath string

	LogLevel  string
	LogFormat string // "console" or "json"
}

// Load reads the configuration from the environment. Only BOT_TOKEN is
// mandatory; everything else has a dev-friendly default.
func Load() (Config, error) {
	cfg := Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getenv("OPENAI_MODEL", ""),
		DBDSN:        os.Getenv("DB_DSN"),
		SQLitePath:   getenv("SQLITE_PATH", "pet_health.db"),
		AdminAddr:    getenv("ADMIN_ADDR", ":8080"),
		AdminToken:   os.Getenv("ADMIN_TOKEN"),
		PromptsPath:  getenv("PROMPTS_PATH", "prompts.yaml"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFormat:    getenv("LOG_FORMAT", "console"),
	}

	if strings.TrimSpace(cfg.BotToken) == "" {
		return Config{}, errors.New("config: BOT_TOKEN is required")
	}

	ids, err := parseUserIDs(os.Getenv("ADMIN_USER_IDS"))
	if err != nil {
		return Config{}, err
	}
	cfg.AdminUserIDs = ids

	return cfg, nil
}

// IsAdmin reports whether the Telegram user is in the admin allowlist.
func (c Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseUserIDs(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, errors.New("config: ADMIN_USER_IDS must be comma-separated integers")
		}
		out = append(out, id)
	}
	return out, nil
}
