package source

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idea-agent/internal/models"
)

type staticSource struct {
	name   string
	topics []*models.TopicSuggestion
	err    error
}

func (s *staticSource) Name() string { return s.name }
func (s *staticSource) Type() string { return "static" }
func (s *staticSource) Fetch(context.Context) ([]*models.TopicSuggestion, error) {
	return s.topics, s.err
}
func (s *staticSource) HealthCheck(context.Context) error { return s.err }

func suggestion(title string, age time.Duration) *models.TopicSuggestion {
	return &models.TopicSuggestion{Title: title, PublishedAt: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC).Add(-age)}
}

func TestManagerSuggest(t *testing.T) {
	m := NewManager()
	m.Register(&staticSource{name: "a", topics: []*models.TopicSuggestion{
		suggestion("Old story", 48*time.Hour),
		suggestion("Fresh story", time.Hour),
	}})
	m.Register(&staticSource{name: "b", topics: []*models.TopicSuggestion{
		suggestion("fresh STORY", 2*time.Hour),
		suggestion("Middle story", 24*time.Hour),
		suggestion("  ", 0),
	}})
	m.Register(&staticSource{name: "down", err: errors.New("timeout")})

	topics, errs := m.Suggest(context.Background(), 0)
	require.Len(t, errs, 1)

	var titles []string
	for _, topic := range topics {
		titles = append(titles, topic.Title)
	}
	assert.Equal(t, []string{"Fresh story", "Middle story", "Old story"}, titles)

	limited, _ := m.Suggest(context.Background(), 2)
	assert.Len(t, limited, 2)
}

func TestManagerLookup(t *testing.T) {
	m := NewManager()
	m.Register(&staticSource{name: "a"})

	assert.Len(t, m.GetSources(), 1)
	assert.NotNil(t, m.GetSourceByName("a"))
	assert.Nil(t, m.GetSourceByName("missing"))
}
