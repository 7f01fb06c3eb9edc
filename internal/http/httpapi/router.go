package httpapi

import (
	"net/http"
	"time"

	"aipolyglot/internal/http/handlers"
	appmw "aipolyglot/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the HTTP surface. The translation endpoints live at the
// root so the browser client keeps its existing paths; everything newer
// sits under /v1.
func NewRouter(app *handlers.App, countryLookup appmw.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		appmw.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		appmw.Logger(app.Logger),
		appmw.CORS(app.Config.AllowedOrigins),
		appmw.RateLimit(app.Config.RateLimitPerMin, time.Minute),
		appmw.NativeLanguage(countryLookup),
	)

	// Webhooks carry their own signature, never a bearer token.
	r.Post("/webhooks/stripe", app.StripeWebhook)

	r.Group(func(r chi.Router) {
		r.Use(appmw.AuthOptional(app.JWTSecret))
		r.Post("/translate", app.Translate)
		r.Post("/translate-bidirectional", app.TranslateBidirectional)
		r.Post("/v1/voice/transcriptions", app.VoiceTranscription)
	})

	r.Group(func(r chi.Router) {
		r.Use(appmw.AuthJWT(app.JWTSecret))
		r.Post("/create-checkout-session", app.CreateCheckoutSession)
		r.Get("/v1/me", app.Me)
	})

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/languages", app.Languages)
	r.Get("/v1/billing/config", app.BillingConfig)
	r.Get("/v1/stats/summary", app.StatsSummary)

	return r
}
