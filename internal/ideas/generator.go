package ideas

import (
	"context"
	"errors"

	"github.com/idea-agent/internal/ai"
	"github.com/idea-agent/internal/models"
	"github.com/idea-agent/pkg/logger"
)

// Reasons recorded on a batch when the template bank was used
const (
	ReasonNotConfigured     = "not_configured"
	ReasonServiceError      = "service_error"
	ReasonMalformedResponse = "malformed_response"
)

// IdeaSource produces ideas from a generative model
type IdeaSource interface {
	GenerateIdeas(ctx context.Context, topic string, category models.Category) ([]models.ContentIdea, error)
	Provider() string
}

// Generator tries the model first and falls back to templates on any failure.
// It never returns an error; Batch.Provenance tells callers which path ran.
type Generator struct {
	source IdeaSource
	log    *logger.Logger
}

// NewGenerator creates a generator. A nil source disables live generation
// for the lifetime of the generator.
func NewGenerator(source IdeaSource, log *logger.Logger) *Generator {
	return &Generator{
		source: source,
		log:    log.WithComponent("ideas"),
	}
}

// LiveEnabled reports whether a model is wired in
func (g *Generator) LiveEnabled() bool {
	return g.source != nil
}

// Provider returns the provider name, or "" when live generation is disabled
func (g *Generator) Provider() string {
	if g.source == nil {
		return ""
	}
	return g.source.Provider()
}

// Generate returns ideas for a topic and category
func (g *Generator) Generate(ctx context.Context, topic string, category models.Category) *models.Batch {
	log := g.log.WithRequest(topic, category.String())

	if g.source == nil {
		log.Warn().Msg("Using template ideas as no generation provider is configured")
		return g.fallback(topic, category, ReasonNotConfigured)
	}

	ideas, err := g.source.GenerateIdeas(ctx, topic, category)
	if err != nil {
		reason := ReasonServiceError
		if errors.Is(err, ai.ErrMalformedResponse) {
			reason = ReasonMalformedResponse
		}
		log.Error().
			Err(err).
			Str("reason", reason).
			Msg("Error generating content ideas, using template ideas")
		return g.fallback(topic, category, reason)
	}

	log.Info().
		Int("count", len(ideas)).
		Str("provider", g.source.Provider()).
		Msg("Generated content ideas")

	return &models.Batch{
		Topic:      topic,
		Category:   category,
		Ideas:      ideas,
		Provenance: models.ProvenanceLive,
		Provider:   g.source.Provider(),
	}
}

// GenerateContentIdeas is Generate without the provenance details
func (g *Generator) GenerateContentIdeas(ctx context.Context, topic string, category models.Category) []models.ContentIdea {
	return g.Generate(ctx, topic, category).Ideas
}

func (g *Generator) fallback(topic string, category models.Category, reason string) *models.Batch {
	g.log.Info().
		Str("topic", topic).
		Str("category", category.String()).
		Msg("Generating template content ideas")

	return &models.Batch{
		Topic:      topic,
		Category:   category,
		Ideas:      Fallback(topic, category),
		Provenance: models.ProvenanceFallback,
		Reason:     reason,
	}
}
