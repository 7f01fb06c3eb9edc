package handlers

import (
	"errors"
	"io"
	"net/http"

	"aipolyglot/internal/domain"
)

// maxWebhookBody bounds the raw payload read; Stripe events are small.
const maxWebhookBody = 1 << 20

// StripeWebhook applies signed billing events. The raw body is needed for
// signature verification, so this handler never JSON-decodes the request
// before the signature check passes.
func (a *App) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "unreadable payload")
		return
	}
	signature := r.Header.Get("Stripe-Signature")
	if signature == "" {
		a.error(w, http.StatusBadRequest, "bad_signature", "missing signature header")
		return
	}

	if err := a.Billing.HandleWebhook(r.Context(), payload, signature); err != nil {
		switch {
		case errors.Is(err, domain.ErrBadSignature):
			a.error(w, http.StatusBadRequest, "bad_signature", "signature verification failed")
		case errors.Is(err, domain.ErrNotConfigured):
			a.error(w, http.StatusInternalServerError, "not_configured", "webhook secret is not configured")
		default:
			a.Logger.Error().Err(err).Msg("webhook apply failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to apply event")
		}
		return
	}
	a.json(w, http.StatusOK, map[string]bool{"received": true})
}
