package translate

import (
	"context"
	"fmt"
	"strings"

	"aipolyglot/internal/domain"
	"aipolyglot/internal/langs"
)

// Models groups the model names used per call type.
type Models struct {
	// Translation handles the bidirectional prompt pair.
	Translation string
	// Detection answers the "english or other" classification.
	Detection string
	// Legacy serves the plain to-English endpoint.
	Legacy string
}

// Service resolves translation direction around the completion gateway.
type Service struct {
	gateway Completer
	models  Models
}

func NewService(gateway Completer, models Models) *Service {
	if models.Translation == "" {
		models.Translation = "gpt-4"
	}
	if models.Detection == "" {
		models.Detection = models.Translation
	}
	if models.Legacy == "" {
		models.Legacy = "gpt-3.5-turbo"
	}
	return &Service{gateway: gateway, models: models}
}

// TranslateToEnglish is the legacy single-direction call backing
// POST /translate.
func (s *Service) TranslateToEnglish(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: text is required", domain.ErrInvalidInput)
	}
	out, err := s.gateway.Complete(ctx, CompletionRequest{
		Model:       s.models.Legacy,
		System:      simpleSystemPrompt,
		User:        simpleUserPrompt(text),
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

// Translate performs a bidirectional translation and labels its direction.
//
// In auto mode two independent model calls run sequentially: the translation
// itself, then a classification of the ORIGINAL input as English or not.
// The classifier's verdict is authoritative for the label even when it
// disagrees with whatever direction the translation call actually chose, so
// a result can in rare cases be correctly translated but mislabeled. The
// two signals are deliberately not reconciled here.
func (s *Service) Translate(ctx context.Context, req domain.TranslationRequest) (*domain.TranslationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	native := req.NativeLanguage
	if native == "" {
		native = langs.DefaultNativeLanguage
	}
	native = langs.Canonical(native)

	switch req.Mode {
	case domain.ModeAuto:
		return s.translateAuto(ctx, req.Text, native)
	case domain.ModeToEnglish:
		source := req.SourceLanguage
		if source == "" {
			source = native
		}
		return s.translateManual(ctx, req.Text, manualLabel(source), "English", domain.DirectionNativeToEnglish, domain.SourceOther)
	case domain.ModeToNative:
		return s.translateManual(ctx, req.Text, "English", native, domain.DirectionEnglishToNative, domain.SourceEnglish)
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidInput, req.Mode)
	}
}

func (s *Service) translateAuto(ctx context.Context, text, native string) (*domain.TranslationResult, error) {
	translated, err := s.gateway.Complete(ctx, CompletionRequest{
		Model:       s.models.Translation,
		System:      autoSystemPrompt(native),
		User:        autoUserPrompt(text, native),
		Temperature: 0.2,
		MaxTokens:   1500,
	})
	if err != nil {
		return nil, err
	}

	// Best-effort classification of the raw input. Anything that is not an
	// exact English token is treated as non-English.
	direction := domain.DirectionNativeToEnglish
	source := domain.SourceOther
	verdict, err := s.gateway.Complete(ctx, CompletionRequest{
		Model:       s.models.Detection,
		System:      detectionSystemPrompt,
		User:        detectionUserPrompt(text),
		Temperature: 0.1,
		MaxTokens:   10,
	})
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(strings.TrimSpace(verdict), "english") {
		direction = domain.DirectionEnglishToNative
		source = domain.SourceEnglish
	}

	return &domain.TranslationResult{
		Text:           translated,
		Direction:      direction,
		DetectedSource: source,
	}, nil
}

func (s *Service) translateManual(ctx context.Context, text, fromLang, toLang string, direction domain.Direction, source string) (*domain.TranslationResult, error) {
	translated, err := s.gateway.Complete(ctx, CompletionRequest{
		Model:       s.models.Translation,
		System:      manualSystemPrompt(fromLang, toLang),
		User:        manualUserPrompt(text, fromLang, toLang),
		Temperature: 0.2,
		MaxTokens:   1500,
	})
	if err != nil {
		return nil, err
	}
	return &domain.TranslationResult{
		Text:           translated,
		Direction:      direction,
		DetectedSource: source,
	}, nil
}
