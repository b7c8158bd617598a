package ai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/idea-agent/internal/config"
	"github.com/idea-agent/pkg/logger"
)

// OpenAIClient wraps the OpenAI SDK client (chat completions in JSON mode)
type OpenAIClient struct {
	client      openai.Client
	model       string
	maxTokens   int
	temperature float64
	log         *logger.Logger
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(cfg config.OpenAIConfig, log *logger.Logger) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: openai.api_key is empty", ErrNotConfigured)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIClient{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		log:         log.WithComponent("openai"),
	}, nil
}

// Provider returns "openai"
func (c *OpenAIClient) Provider() string {
	return config.ProviderOpenAI
}

// CompleteJSON sends a chat completion request with the json_object response format
func (c *OpenAIClient) CompleteJSON(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	c.log.Debug().
		Str("model", c.model).
		Int("max_tokens", c.maxTokens).
		Msg("Sending request to OpenAI")

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userMessage),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
		Temperature: openai.Float(c.temperature),
		MaxTokens:   openai.Int(int64(c.maxTokens)),
	})
	if err != nil {
		c.log.Error().Err(err).Msg("OpenAI API error")
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	c.log.Debug().
		Int("input_tokens", int(resp.Usage.PromptTokens)).
		Int("output_tokens", int(resp.Usage.CompletionTokens)).
		Msg("Received OpenAI response")

	return resp.Choices[0].Message.Content, nil
}
