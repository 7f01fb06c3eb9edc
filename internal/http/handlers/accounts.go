package handlers

import (
	"errors"
	"net/http"

	"aipolyglot/internal/domain"
)

type accountDTO struct {
	ID                    string `json:"id"`
	Email                 string `json:"email"`
	TranslationCount      int    `json:"translation_count"`
	HasPaid               bool   `json:"has_paid"`
	RemainingTranslations int    `json:"remaining_translations"`
	FreeLimit             int    `json:"free_limit"`
}

// Me returns the caller's ledger row plus how much free usage is left.
// Remaining is -1 for paid accounts.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	acct, err := a.Ledger.Account(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			acct, err = a.Ledger.Ensure(r.Context(), userID, a.currentUserEmail(r))
		}
		if err != nil {
			a.Logger.Error().Err(err).Str("user_id", userID).Msg("load account failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to load account")
			return
		}
	}
	a.json(w, http.StatusOK, accountDTO{
		ID:                    acct.ID,
		Email:                 acct.Email,
		TranslationCount:      acct.TranslationCount,
		HasPaid:               acct.HasPaid,
		RemainingTranslations: a.Ledger.Remaining(acct),
		FreeLimit:             a.Ledger.FreeLimit(),
	})
}
