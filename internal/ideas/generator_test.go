package ideas

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idea-agent/internal/ai"
	"github.com/idea-agent/internal/models"
	"github.com/idea-agent/pkg/logger"
)

type stubSource struct {
	ideas []models.ContentIdea
	err   error
	calls int
}

func (s *stubSource) GenerateIdeas(_ context.Context, _ string, _ models.Category) ([]models.ContentIdea, error) {
	s.calls++
	return s.ideas, s.err
}

func (s *stubSource) Provider() string { return "stub" }

type stubCompleter struct{ response string }

func (s stubCompleter) CompleteJSON(context.Context, string, string) (string, error) {
	return s.response, nil
}

func (s stubCompleter) Provider() string { return "stub" }

func TestGenerateLive(t *testing.T) {
	live := []models.ContentIdea{{Title: "Live idea", Category: models.CategoryTech}}
	src := &stubSource{ideas: live}
	g := NewGenerator(src, logger.Nop())

	batch := g.Generate(context.Background(), "drones", models.CategoryTech)
	assert.Equal(t, models.ProvenanceLive, batch.Provenance)
	assert.Equal(t, "stub", batch.Provider)
	assert.Equal(t, live, batch.Ideas)
	assert.Empty(t, batch.Reason)
	assert.False(t, batch.IsFallback())
	assert.Equal(t, 1, src.calls)
}

func TestGenerateNotConfigured(t *testing.T) {
	g := NewGenerator(nil, logger.Nop())
	assert.False(t, g.LiveEnabled())
	assert.Empty(t, g.Provider())

	batch := g.Generate(context.Background(), "drones", models.CategoryTech)
	assert.True(t, batch.IsFallback())
	assert.Equal(t, ReasonNotConfigured, batch.Reason)
	require.Len(t, batch.Ideas, 2)
	assert.Equal(t, "5 drones Hacks You Never Knew Existed", batch.Ideas[0].Title)
}

func TestGenerateServiceError(t *testing.T) {
	src := &stubSource{err: errors.New("dial tcp: connection refused")}
	g := NewGenerator(src, logger.Nop())

	batch := g.Generate(context.Background(), "drones", models.CategoryAll)
	assert.True(t, batch.IsFallback())
	assert.Equal(t, ReasonServiceError, batch.Reason)
	assert.Len(t, batch.Ideas, MaxMixedIdeas)
}

func TestGenerateMalformedResponse(t *testing.T) {
	src := &stubSource{err: fmt.Errorf("failed to parse ideas response: %w", ai.ErrUnexpectedShape)}
	g := NewGenerator(src, logger.Nop())

	batch := g.Generate(context.Background(), "drones", models.CategoryFitness)
	assert.Equal(t, ReasonMalformedResponse, batch.Reason)
	assert.Equal(t, Fallback("drones", models.CategoryFitness), batch.Ideas)
}

func TestGenerateWithUnparsableModelOutput(t *testing.T) {
	client := ai.NewClient(stubCompleter{response: "I'm sorry, I can't do JSON today"}, logger.Nop())
	g := NewGenerator(client, logger.Nop())

	var ideas []models.ContentIdea
	assert.NotPanics(t, func() {
		ideas = g.GenerateContentIdeas(context.Background(), "drones", models.CategoryTech)
	})
	assert.Equal(t, Fallback("drones", models.CategoryTech), ideas)
}

func TestGenerateWithWrappedModelOutput(t *testing.T) {
	client := ai.NewClient(stubCompleter{response: `{"ideas": [{"title": "Drone racing 101", "description": "d", "content_type": "video", "virality": "high", "target_audience": "a", "category": "tech"}]}`}, logger.Nop())
	g := NewGenerator(client, logger.Nop())

	batch := g.Generate(context.Background(), "drones", models.CategoryTech)
	assert.Equal(t, models.ProvenanceLive, batch.Provenance)
	require.Len(t, batch.Ideas, 1)
	assert.Equal(t, "Drone racing 101", batch.Ideas[0].Title)
}
