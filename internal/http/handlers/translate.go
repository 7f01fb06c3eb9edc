package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"aipolyglot/internal/domain"
	"aipolyglot/internal/langs"
)

type translateRequest struct {
	Text string `json:"text"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

type bidirectionalRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
	SourceLanguage string `json:"sourceLanguage"`
	// AutoDetect is a pointer so an absent field keeps the auto default;
	// only an explicit false selects a manual mode.
	AutoDetect *bool `json:"autoDetect"`
}

type bidirectionalResponse struct {
	TranslatedText         string `json:"translatedText"`
	TranslationDirection   string `json:"translationDirection"`
	DetectedSourceLanguage string `json:"detectedSourceLanguage"`
}

// Translate is the legacy one-way endpoint: whatever comes in, English
// comes out.
func (a *App) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	acct, blocked := a.gateQuota(w, r)
	if blocked {
		return
	}

	start := time.Now()
	text, err := a.Translator.TranslateToEnglish(r.Context(), req.Text)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		a.logUsage(r.Context(), a.currentUserID(r), "TRANSLATE", string(domain.DirectionNativeToEnglish), false, latency, nil)
		a.translateError(w, err)
		return
	}

	a.settleTranslation(r, acct, string(domain.DirectionNativeToEnglish), latency)
	a.json(w, http.StatusOK, translateResponse{TranslatedText: text})
}

// TranslateBidirectional handles both directions, auto-detecting the input
// language unless the caller pinned a source.
func (a *App) TranslateBidirectional(w http.ResponseWriter, r *http.Request) {
	var req bidirectionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	acct, blocked := a.gateQuota(w, r)
	if blocked {
		return
	}

	target := req.TargetLanguage
	if target == "" {
		target = langs.DefaultNativeLanguage
	}
	tr := domain.TranslationRequest{
		Text:           req.Text,
		NativeLanguage: target,
		SourceLanguage: req.SourceLanguage,
		Mode:           resolveMode(req),
	}

	start := time.Now()
	result, err := a.Translator.Translate(r.Context(), tr)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		a.logUsage(r.Context(), a.currentUserID(r), "TRANSLATE", string(tr.Mode), false, latency, nil)
		a.translateError(w, err)
		return
	}

	a.settleTranslation(r, acct, string(result.Direction), latency)
	a.json(w, http.StatusOK, bidirectionalResponse{
		TranslatedText:         result.Text,
		TranslationDirection:   string(result.Direction),
		DetectedSourceLanguage: result.DetectedSource,
	})
}

func resolveMode(req bidirectionalRequest) domain.DirectionMode {
	if req.AutoDetect == nil || *req.AutoDetect {
		return domain.ModeAuto
	}
	source := strings.TrimSpace(req.SourceLanguage)
	if strings.EqualFold(source, "en") || strings.EqualFold(source, "english") {
		return domain.ModeToNative
	}
	return domain.ModeToEnglish
}

// gateQuota loads the caller's ledger row and blocks exhausted free
// accounts before any upstream spend. Anonymous callers pass through with
// a nil account.
func (a *App) gateQuota(w http.ResponseWriter, r *http.Request) (*domain.Account, bool) {
	userID := a.currentUserID(r)
	if userID == "" {
		return nil, false
	}
	acct, err := a.Ledger.Ensure(r.Context(), userID, a.currentUserEmail(r))
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("quota lookup failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to check usage")
		return nil, true
	}
	if !a.Ledger.CanTranslate(acct) {
		a.translateError(w, domain.ErrQuotaExceeded)
		return nil, true
	}
	return &acct, false
}

// settleTranslation charges the quota and records the usage event after a
// successful upstream call.
func (a *App) settleTranslation(r *http.Request, acct *domain.Account, direction string, latencyMS int64) {
	userID := ""
	if acct != nil {
		userID = acct.ID
		if _, err := a.Ledger.Record(r.Context(), *acct); err != nil {
			a.Logger.Error().Err(err).Str("user_id", acct.ID).Msg("record translation failed")
		}
	}
	a.logUsage(r.Context(), userID, "TRANSLATE", direction, true, latencyMS, nil)
}

func (a *App) translateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrQuotaExceeded):
		a.error(w, http.StatusForbidden, "quota_exceeded", "free translation limit reached")
	case errors.Is(err, domain.ErrInvalidInput):
		a.error(w, http.StatusBadRequest, "bad_request", "text is required")
	case errors.Is(err, domain.ErrNotConfigured):
		a.error(w, http.StatusInternalServerError, "not_configured", "translation is not configured")
	case errors.Is(err, domain.ErrUpstream):
		a.error(w, http.StatusBadGateway, "upstream", "translation failed, please try again")
	default:
		a.error(w, http.StatusInternalServerError, "internal", "translation failed")
	}
}
