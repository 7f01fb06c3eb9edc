package handlers

import (
	"errors"
	"net/http"

	"aipolyglot/internal/domain"
)

// CreateCheckoutSession starts a Stripe subscription checkout for the
// authenticated account and returns the redirect URL.
func (a *App) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.billingError(w, domain.ErrUnauthorized)
		return
	}
	if _, err := a.Ledger.Ensure(r.Context(), userID, a.currentUserEmail(r)); err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("ensure account failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load account")
		return
	}

	url, err := a.Billing.CreateCheckoutSession(r.Context(), userID, a.currentUserEmail(r))
	if err != nil {
		a.billingError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"url": url})
}

func (a *App) billingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
	case errors.Is(err, domain.ErrNotConfigured):
		a.error(w, http.StatusInternalServerError, "not_configured", "billing is not configured")
	case errors.Is(err, domain.ErrInvalidInput):
		a.error(w, http.StatusBadRequest, "bad_request", "invalid checkout request")
	default:
		a.error(w, http.StatusBadGateway, "upstream", "failed to start checkout, please try again")
	}
}

// BillingConfig exposes the client-side Stripe configuration.
func (a *App) BillingConfig(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"enabled":         a.Billing.Configured(),
		"publishable_key": a.Billing.PublishableKey(),
		"price_id":        a.Billing.PriceID(),
	})
}
