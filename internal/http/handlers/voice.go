package handlers

import (
	"errors"
	"net/http"
	"time"

	"aipolyglot/internal/domain"
	"aipolyglot/internal/middleware"
	"aipolyglot/internal/speech"
)

// maxAudioBody bounds an uploaded clip. The capture window caps clips at a
// few seconds of audio anyway.
const maxAudioBody = 25 << 20

type transcriptionResponse struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// VoiceTranscription accepts one multipart audio clip and returns its
// transcript. The language rotation is driven by the session's native
// language, detected by the locale middleware.
func (a *App) VoiceTranscription(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAudioBody)
	file, header, err := r.FormFile("audio")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "audio file is required")
		return
	}
	defer file.Close()

	native := middleware.NativeLanguageFromContext(r.Context())
	start := time.Now()
	transcript, err := a.Speech.Capture(r.Context(), native, file, header.Filename)
	latency := time.Since(start).Milliseconds()
	userID := a.currentUserID(r)
	if err != nil {
		a.logUsage(r.Context(), userID, "VOICE_CAPTURE", "", false, latency, nil)
		a.voiceError(w, err)
		return
	}

	a.logUsage(r.Context(), userID, "VOICE_CAPTURE", transcript.Language, true, latency, nil)
	a.json(w, http.StatusOK, transcriptionResponse{
		Text:     transcript.Text,
		Language: transcript.Language,
	})
}

func (a *App) voiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, speech.ErrCaptureActive):
		a.error(w, http.StatusConflict, "capture_active", "a capture is already running")
	case errors.Is(err, speech.ErrNoSpeech), errors.Is(err, speech.ErrTimedOut):
		a.error(w, http.StatusUnprocessableEntity, "no_speech", "no speech detected, please try again")
	case errors.Is(err, speech.ErrUnsupported):
		a.error(w, http.StatusBadRequest, "unsupported", "speech recognition is unsupported for this language")
	case errors.Is(err, speech.ErrPermissionDenied):
		a.error(w, http.StatusForbidden, "permission_denied", "audio input permission denied")
	case errors.Is(err, domain.ErrNotConfigured):
		a.error(w, http.StatusInternalServerError, "not_configured", "voice capture is not configured")
	case errors.Is(err, domain.ErrUpstream):
		a.error(w, http.StatusBadGateway, "upstream", "transcription failed, please try again")
	default:
		a.error(w, http.StatusInternalServerError, "internal", "transcription failed")
	}
}
