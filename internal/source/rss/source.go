package rss

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/idea-agent/internal/config"
	"github.com/idea-agent/internal/models"
	"github.com/idea-agent/internal/source"
	"github.com/idea-agent/pkg/logger"
)

// DefaultMaxAge is used when the configured max age is empty or invalid
const DefaultMaxAge = 7 * 24 * time.Hour

// Source implements TopicSource for RSS feeds
type Source struct {
	name   string
	url    string
	maxAge time.Duration
	parser *gofeed.Parser
	now    func() time.Time
	log    *logger.Logger
}

// New creates a new RSS source for a single feed
func New(feed config.RSSFeed, maxAge time.Duration, log *logger.Logger) *Source {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Source{
		name:   feed.Name,
		url:    feed.URL,
		maxAge: maxAge,
		parser: gofeed.NewParser(),
		now:    time.Now,
		log:    log.WithSource("rss", feed.Name),
	}
}

// NewMultiple creates multiple RSS sources from config
func NewMultiple(cfg config.RSSConfig, log *logger.Logger) []*Source {
	maxAge, err := time.ParseDuration(cfg.MaxAge)
	if err != nil {
		maxAge = DefaultMaxAge
	}

	sources := make([]*Source, 0, len(cfg.Feeds))
	for _, feed := range cfg.Feeds {
		sources = append(sources, New(feed, maxAge, log))
	}
	return sources
}

// Name returns the source name
func (s *Source) Name() string {
	return s.name
}

// Type returns "rss"
func (s *Source) Type() string {
	return "rss"
}

// Fetch retrieves topic suggestions from the RSS feed
func (s *Source) Fetch(ctx context.Context) ([]*models.TopicSuggestion, error) {
	s.log.Debug().Str("url", s.url).Msg("Fetching RSS feed")

	feed, err := s.parser.ParseURLWithContext(s.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed %s: %w", s.name, err)
	}

	now := s.now()
	topics := make([]*models.TopicSuggestion, 0, len(feed.Items))

	for _, item := range feed.Items {
		publishedAt := now
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
			if now.Sub(publishedAt) > s.maxAge {
				continue
			}
		}

		title := cleanText(item.Title)
		if title == "" {
			continue
		}

		topics = append(topics, &models.TopicSuggestion{
			Title:       title,
			Description: cleanText(item.Description),
			URL:         item.Link,
			SourceType:  "rss",
			SourceName:  s.name,
			Keywords:    extractKeywords(item),
			PublishedAt: publishedAt,
			RawData: map[string]string{
				"guid":      item.GUID,
				"published": item.Published,
			},
		})
	}

	s.log.Info().
		Int("count", len(topics)).
		Str("feed", s.name).
		Msg("Fetched RSS topics")

	return topics, nil
}

// HealthCheck verifies the RSS feed is accessible
func (s *Source) HealthCheck(ctx context.Context) error {
	_, err := s.parser.ParseURLWithContext(s.url, ctx)
	return err
}

// cleanText removes HTML tags and extra whitespace
func cleanText(text string) string {
	text = strings.ReplaceAll(text, "<br>", " ")
	text = strings.ReplaceAll(text, "<br/>", " ")
	text = strings.ReplaceAll(text, "<br />", " ")
	text = strings.ReplaceAll(text, "</p>", " ")
	text = strings.ReplaceAll(text, "<p>", "")

	var result strings.Builder
	inTag := false
	for _, r := range text {
		if r == '<' {
			inTag = true
		} else if r == '>' {
			inTag = false
		} else if !inTag {
			result.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(result.String()), " ")
}

// extractKeywords collects the item's categories and author
func extractKeywords(item *gofeed.Item) []string {
	keywords := make([]string, 0, len(item.Categories)+1)
	keywords = append(keywords, item.Categories...)

	if item.Author != nil && item.Author.Name != "" {
		keywords = append(keywords, item.Author.Name)
	}

	return keywords
}

// Ensure Source implements source.TopicSource
var _ source.TopicSource = (*Source)(nil)
