package handlers

import (
	"net/http"

	"aipolyglot/internal/sqlinline"
)

func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	row := a.SQL.QueryRow(r.Context(), sqlinline.QStatsSummary)
	var totalAccounts, paidAccounts, translationsTotal, translationsFailed, translations24, voiceCaptures int64
	if err := row.Scan(&totalAccounts, &paidAccounts, &translationsTotal, &translationsFailed, &translations24, &voiceCaptures); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"total_accounts":        totalAccounts,
		"paid_accounts":         paidAccounts,
		"translations_total":    translationsTotal,
		"translations_failed":   translationsFailed,
		"translations_last_24h": translations24,
		"voice_captures_total":  voiceCaptures,
	})
}
