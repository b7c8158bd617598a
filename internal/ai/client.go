package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/idea-agent/internal/config"
	"github.com/idea-agent/pkg/logger"
)

var (
	// ErrNotConfigured means the selected provider has no credential
	ErrNotConfigured   = errors.New("generation provider not configured")
	ErrUnknownProvider = errors.New("unknown generation provider")
	ErrEmptyResponse   = errors.New("empty model response")
)

// Completer sends one prompt to a generative text service and returns its
// JSON-formatted answer
type Completer interface {
	CompleteJSON(ctx context.Context, systemPrompt, userMessage string) (string, error)
	Provider() string
}

// Client turns topics into content ideas using a Completer
type Client struct {
	completer Completer
	log       *logger.Logger
}

// NewClient creates a client on top of an existing completer
func NewClient(completer Completer, log *logger.Logger) *Client {
	return &Client{
		completer: completer,
		log:       log.WithComponent("ai"),
	}
}

// New builds the client for the provider selected in cfg. It returns
// ErrNotConfigured when the provider's credential is missing.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Client, error) {
	completer, err := NewCompleter(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return NewClient(completer, log), nil
}

// NewCompleter creates the completer for the configured provider
func NewCompleter(ctx context.Context, cfg *config.Config, log *logger.Logger) (Completer, error) {
	switch cfg.AI.Provider {
	case config.ProviderOpenAI, "":
		return NewOpenAIClient(cfg.OpenAI, log)
	case config.ProviderAnthropic:
		return NewAnthropicClient(cfg.Anthropic, log)
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg.Gemini, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.AI.Provider)
	}
}

// Provider returns the name of the underlying provider
func (c *Client) Provider() string {
	return c.completer.Provider()
}
