package ideas

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idea-agent/internal/config"
	"github.com/idea-agent/pkg/logger"
)

func TestNewFromConfigWithoutCredential(t *testing.T) {
	cfg := &config.Config{AI: config.AIConfig{Provider: config.ProviderOpenAI}}

	g := NewFromConfig(context.Background(), cfg, logger.Nop())
	assert.False(t, g.LiveEnabled())

	batch := g.Generate(context.Background(), "drones", "tech")
	assert.Equal(t, ReasonNotConfigured, batch.Reason)
}

func TestNewFromConfigUnknownProvider(t *testing.T) {
	cfg := &config.Config{AI: config.AIConfig{Provider: "parrot"}}

	g := NewFromConfig(context.Background(), cfg, logger.Nop())
	assert.False(t, g.LiveEnabled())
}

func TestNewFromConfigWithCredential(t *testing.T) {
	cfg := &config.Config{
		AI:     config.AIConfig{Provider: config.ProviderOpenAI},
		OpenAI: config.OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o", MaxTokens: 1000, Temperature: 0.7},
	}

	g := NewFromConfig(context.Background(), cfg, logger.Nop())
	assert.True(t, g.LiveEnabled())
	assert.Equal(t, config.ProviderOpenAI, g.Provider())
}
