package domain

import (
	"fmt"
	"strings"
)

// DirectionMode selects how the translation direction is decided.
type DirectionMode string

const (
	// ModeAuto lets the model decide which way to translate; a follow-up
	// classification call labels the realized direction.
	ModeAuto DirectionMode = "auto"
	// ModeToEnglish always translates native-language input into English.
	ModeToEnglish DirectionMode = "to-english"
	// ModeToNative always translates English input into the native language.
	ModeToNative DirectionMode = "to-native"
)

// Direction labels which way a completed translation went.
type Direction string

const (
	DirectionEnglishToNative Direction = "english-to-native"
	DirectionNativeToEnglish Direction = "native-to-english"
)

// Detected source-language tags reported to clients. The classifier is only
// ever asked "English or not", so the detected tag is binary.
const (
	SourceEnglish = "en"
	SourceOther   = "other"
)

// TranslationRequest is the ephemeral per-call input. NativeLanguage is a
// display label from the supported-language table, not a BCP 47 tag.
type TranslationRequest struct {
	Text           string
	NativeLanguage string
	SourceLanguage string
	Mode           DirectionMode
}

// Validate rejects requests that must never reach the upstream model.
func (r TranslationRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	switch r.Mode {
	case ModeAuto, ModeToEnglish, ModeToNative:
		return nil
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, r.Mode)
	}
}

// TranslationResult is the ephemeral per-call output. Text is guaranteed
// non-empty; an empty completion is treated as an upstream failure instead.
type TranslationResult struct {
	Text           string
	Direction      Direction
	DetectedSource string
}
