package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"aipolyglot/internal/billing"
	"aipolyglot/internal/infra"
	"aipolyglot/internal/middleware"
	"aipolyglot/internal/providers/translate"
	"aipolyglot/internal/quota"
	"aipolyglot/internal/speech"
	"aipolyglot/internal/sqlinline"
)

// App bundles everything the HTTP handlers reach for.
type App struct {
	Config     *infra.Config
	Logger     infra.Logger
	SQL        infra.SQLExecutor
	JWTSecret  string
	Translator *translate.Service
	Ledger     *quota.Ledger
	Billing    *billing.Bridge
	Speech     *speech.Adapter
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{"error": message, "code": code})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

func (a *App) currentUserEmail(r *http.Request) string {
	return middleware.UserEmailFromContext(r.Context())
}

// logUsage records an analytics event. Failures are logged, never surfaced;
// analytics must not break the user-facing call.
func (a *App) logUsage(ctx context.Context, userID, eventType, direction string, success bool, latencyMS int64, props json.RawMessage) {
	if props == nil {
		props = json.RawMessage(`{}`)
	}
	_, err := a.SQL.Exec(ctx, sqlinline.QInsertUsageEvent, userID, eventType, direction, success, latencyMS, props)
	if err != nil && !errors.Is(err, context.Canceled) {
		a.Logger.Error().Err(err).Str("event_type", eventType).Msg("log usage failed")
	}
}
