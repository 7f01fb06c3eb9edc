package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"aipolyglot/internal/domain"
)

// Completer is the single-call completion contract the resolver depends on.
// Each call is independent and at-most-once: no caching, retries or rate
// limiting happen below this interface.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest carries one system/user prompt pair to the model.
type CompletionRequest struct {
	Model       string
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// GatewayOptions configures the OpenAI-backed gateway.
type GatewayOptions struct {
	APIKey  string
	BaseURL string
}

// Gateway relays prompt pairs to the OpenAI chat completions endpoint.
type Gateway struct {
	client *openai.Client
}

// NewGateway builds the gateway. A missing API key is a configuration
// error: the operator forgot a credential, not the user.
func NewGateway(opts GatewayOptions) (*Gateway, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY is missing", domain.ErrNotConfigured)
	}
	cfg := openai.DefaultConfig(strings.TrimSpace(opts.APIKey))
	if strings.TrimSpace(opts.BaseURL) != "" {
		cfg.BaseURL = strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	}
	return &Gateway{client: openai.NewClientWithConfig(cfg)}, nil
}

func (g *Gateway) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: chat completion: %v", domain.ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", domain.ErrUpstream)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", domain.ErrUpstream)
	}
	return text, nil
}

var _ Completer = (*Gateway)(nil)

// IsUpstream reports whether err came from the model endpoint rather than
// this service.
func IsUpstream(err error) bool {
	return errors.Is(err, domain.ErrUpstream)
}
