package source

import (
	"context"
	"sort"
	"strings"

	"github.com/idea-agent/internal/models"
)

// TopicSource defines the interface for topic suggestion sources
type TopicSource interface {
	// Name returns the unique name of this source
	Name() string

	// Type returns the source type (rss, custom)
	Type() string

	// Fetch retrieves topic suggestions from the source
	Fetch(ctx context.Context) ([]*models.TopicSuggestion, error)

	// HealthCheck verifies the source is accessible
	HealthCheck(ctx context.Context) error
}

// Manager manages multiple topic sources
type Manager struct {
	sources []TopicSource
}

// NewManager creates a new source manager
func NewManager() *Manager {
	return &Manager{
		sources: make([]TopicSource, 0),
	}
}

// Register adds a source to the manager
func (m *Manager) Register(source TopicSource) {
	m.sources = append(m.sources, source)
}

// GetSources returns all registered sources
func (m *Manager) GetSources() []TopicSource {
	return m.sources
}

// GetSourceByName returns a source by name
func (m *Manager) GetSourceByName(name string) TopicSource {
	for _, s := range m.sources {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// FetchAll fetches suggestions from all sources concurrently
func (m *Manager) FetchAll(ctx context.Context) ([]*models.TopicSuggestion, []error) {
	type result struct {
		topics []*models.TopicSuggestion
		err    error
	}

	results := make(chan result, len(m.sources))

	for _, source := range m.sources {
		go func(s TopicSource) {
			topics, err := s.Fetch(ctx)
			results <- result{topics: topics, err: err}
		}(source)
	}

	var allTopics []*models.TopicSuggestion
	var errors []error

	for range m.sources {
		r := <-results
		if r.err != nil {
			errors = append(errors, r.err)
		} else {
			allTopics = append(allTopics, r.topics...)
		}
	}

	return allTopics, errors
}

// Suggest returns up to limit suggestions, newest first, with repeated titles removed.
// A limit of zero or less means no limit.
func (m *Manager) Suggest(ctx context.Context, limit int) ([]*models.TopicSuggestion, []error) {
	topics, errs := m.FetchAll(ctx)

	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].PublishedAt.After(topics[j].PublishedAt)
	})

	seen := make(map[string]bool, len(topics))
	unique := make([]*models.TopicSuggestion, 0, len(topics))
	for _, t := range topics {
		key := strings.ToLower(strings.TrimSpace(t.Title))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, t)
		if limit > 0 && len(unique) >= limit {
			break
		}
	}

	return unique, errs
}
