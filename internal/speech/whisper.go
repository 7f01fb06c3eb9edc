package speech

import (
	"context"
	"fmt"
	"io"
	"strings"

	"aipolyglot/internal/domain"

	openai "github.com/sashabaranov/go-openai"
)

// WhisperEngine transcribes audio clips through the OpenAI audio API.
type WhisperEngine struct {
	client *openai.Client
	model  string
}

type WhisperOptions struct {
	APIKey  string
	BaseURL string
	Model   string
}

func NewWhisperEngine(opts WhisperOptions) (*WhisperEngine, error) {
	key := strings.TrimSpace(opts.APIKey)
	if key == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY is missing", domain.ErrNotConfigured)
	}
	cfg := openai.DefaultConfig(key)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	model := opts.Model
	if model == "" {
		model = openai.Whisper1
	}
	return &WhisperEngine{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

// StartOnce sends one clip for transcription. lang is a BCP 47 speech tag;
// the audio API only wants the base language code.
func (e *WhisperEngine) StartOnce(ctx context.Context, lang string, audio io.Reader, filename string) (Transcript, error) {
	resp, err := e.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    e.model,
		Reader:   audio,
		FilePath: filename,
		Language: baseLanguage(lang),
	})
	if err != nil {
		if ctx.Err() != nil {
			return Transcript{}, ctx.Err()
		}
		return Transcript{}, fmt.Errorf("%w: transcription: %v", domain.ErrUpstream, err)
	}
	return Transcript{Text: strings.TrimSpace(resp.Text), Language: lang}, nil
}

func baseLanguage(tag string) string {
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	return strings.ToLower(tag)
}

var _ Capability = (*WhisperEngine)(nil)
