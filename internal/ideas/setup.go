package ideas

import (
	"context"
	"errors"

	"github.com/idea-agent/internal/ai"
	"github.com/idea-agent/internal/config"
	"github.com/idea-agent/pkg/logger"
)

// NewFromConfig builds the generator for the configured provider. When the
// credential is missing or the client cannot be created, live generation is
// disabled and every call uses the template bank.
func NewFromConfig(ctx context.Context, cfg *config.Config, log *logger.Logger) *Generator {
	client, err := ai.New(ctx, cfg, log)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			log.Warn().
				Str("provider", cfg.AI.Provider).
				Msg("No API key configured, live idea generation disabled")
		} else {
			log.Error().
				Err(err).
				Str("provider", cfg.AI.Provider).
				Msg("Error initializing generation client, live idea generation disabled")
		}
		return NewGenerator(nil, log)
	}

	return NewGenerator(client, log)
}
