package handlers

import (
	"net/http"

	"aipolyglot/internal/langs"
	"aipolyglot/internal/middleware"
)

type languageDTO struct {
	Code      string `json:"code"`
	Label     string `json:"label"`
	SpeechTag string `json:"speech_tag,omitempty"`
	RTL       bool   `json:"rtl,omitempty"`
}

// Languages lists the supported native languages plus the session's
// detected default.
func (a *App) Languages(w http.ResponseWriter, r *http.Request) {
	items := make([]languageDTO, 0, len(langs.Supported))
	for _, l := range langs.Supported {
		items = append(items, languageDTO{
			Code:      l.Code,
			Label:     l.Label,
			SpeechTag: l.SpeechTag,
			RTL:       l.RTL,
		})
	}
	a.json(w, http.StatusOK, map[string]any{
		"items":    items,
		"detected": middleware.NativeLanguageFromContext(r.Context()),
	})
}
