package custom

import (
	"context"
	"time"

	"github.com/idea-agent/internal/config"
	"github.com/idea-agent/internal/models"
	"github.com/idea-agent/internal/source"
	"github.com/idea-agent/pkg/logger"
)

// Source implements TopicSource for a fixed watchlist of topics
type Source struct {
	topics []string
	now    func() time.Time
	log    *logger.Logger
}

// New creates a new custom source
func New(cfg config.CustomConfig, log *logger.Logger) *Source {
	return &Source{
		topics: cfg.Topics,
		now:    time.Now,
		log:    log.WithSource("custom", "watchlist"),
	}
}

// Name returns the source name
func (s *Source) Name() string {
	return "custom-watchlist"
}

// Type returns "custom"
func (s *Source) Type() string {
	return "custom"
}

// Fetch returns the configured topics as suggestions
func (s *Source) Fetch(ctx context.Context) ([]*models.TopicSuggestion, error) {
	topics := make([]*models.TopicSuggestion, 0, len(s.topics))
	now := s.now()

	for _, t := range s.topics {
		topics = append(topics, &models.TopicSuggestion{
			Title:       t,
			SourceType:  "custom",
			SourceName:  "watchlist",
			Keywords:    []string{t},
			PublishedAt: now,
		})
	}

	s.log.Debug().
		Int("count", len(topics)).
		Msg("Returned watchlist topics")

	return topics, nil
}

// HealthCheck always succeeds for custom source
func (s *Source) HealthCheck(ctx context.Context) error {
	return nil
}

// Ensure Source implements source.TopicSource
var _ source.TopicSource = (*Source)(nil)
