// Package router exposes the operational HTTP API that runs next to the
// bot: a health probe and token-guarded admin endpoints for analytics and
// prompt management.
package router

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"pet-health-bot/internal/domain/analytics"
	"pet-health-bot/internal/prompts"
)

type Options struct {
	Analytics *analytics.Service
	Prompts   *prompts.Manager

	// AdminToken guards /admin. Empty disables the admin routes entirely.
	AdminToken string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/admin", func(ar chi.Router) {
		ar.Use(bearerAuth(opts.AdminToken))

		ar.Get("/analytics/summary", analyticsSummaryHandler(opts.Analytics))
		ar.Get("/prompts/status", promptsStatusHandler(opts.Prompts))
		ar.Post("/prompts/reload", promptsReloadHandler(opts.Prompts))
	})

	return r
}

// bearerAuth requires "Authorization: Bearer <token>". An empty configured
// token rejects everything rather than opening the admin surface.
func bearerAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				writeError(w, http.StatusForbidden, "admin api disabled")
				return
			}
			got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func analyticsSummaryHandler(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var day time.Time
		if raw := r.URL.Query().Get("date"); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
				return
			}
			day = parsed
		}

		sum, err := svc.DailySummary(r.Context(), day)
		if err != nil {
			log.Error().Err(err).Msg("daily summary failed")
			writeError(w, http.StatusInternalServerError, "summary unavailable")
			return
		}
		writeJSON(w, http.StatusOK, sum)
	}
}

func promptsStatusHandler(pm *prompts.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, pm.Status())
	}
}

func promptsReloadHandler(pm *prompts.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := pm.Reload(); err != nil {
			log.Warn().Err(err).Msg("prompt reload via admin api failed")
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"reloaded": true,
			"status":   pm.Status(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
