package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/idea-agent/internal/config"
	"github.com/idea-agent/pkg/logger"
)

// GeminiClient wraps the Google Gen AI client
type GeminiClient struct {
	client      *genai.Client
	model       string
	maxTokens   int
	temperature float64
	log         *logger.Logger
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig, log *logger.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini.api_key is empty", ErrNotConfigured)
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:      client,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		log:         log.WithComponent("gemini"),
	}, nil
}

// Provider returns "gemini"
func (c *GeminiClient) Provider() string {
	return config.ProviderGemini
}

// CompleteJSON generates content with an application/json response MIME type
func (c *GeminiClient) CompleteJSON(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	c.log.Debug().
		Str("model", c.model).
		Int("max_tokens", c.maxTokens).
		Msg("Sending request to Gemini")

	temperature := float32(c.temperature)
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userMessage), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		Temperature:      &temperature,
		MaxOutputTokens:  int32(c.maxTokens),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		c.log.Error().Err(err).Msg("Gemini API error")
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}

	return sb.String(), nil
}
