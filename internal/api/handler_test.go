package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idea-agent/internal/ideas"
	"github.com/idea-agent/internal/models"
	"github.com/idea-agent/pkg/logger"
)

type liveStub struct{}

func (liveStub) GenerateIdeas(_ context.Context, topic string, category models.Category) ([]models.ContentIdea, error) {
	return []models.ContentIdea{{Title: "Live " + topic, Category: models.CategoryHumor}}, nil
}

func (liveStub) Provider() string { return "stub" }

func newTestRouter(source ideas.IdeaSource) http.Handler {
	g := ideas.NewGenerator(source, logger.Nop())
	return NewRouter(NewHandler(g, logger.Nop()), logger.Nop())
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetIdeasFallback(t *testing.T) {
	rec := get(t, newTestRouter(nil), "/api/ideas?topic=drones&category=tech")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var batch models.Batch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &batch))
	assert.Equal(t, models.ProvenanceFallback, batch.Provenance)
	assert.Equal(t, ideas.ReasonNotConfigured, batch.Reason)
	require.Len(t, batch.Ideas, 2)
	assert.Equal(t, "5 drones Hacks You Never Knew Existed", batch.Ideas[0].Title)
}

func TestGetIdeasDefaultsToAll(t *testing.T) {
	rec := get(t, newTestRouter(nil), "/api/ideas?topic=coffee")
	require.Equal(t, http.StatusOK, rec.Code)

	var batch models.Batch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &batch))
	assert.Equal(t, models.CategoryAll, batch.Category)
	assert.Len(t, batch.Ideas, 5)
}

func TestGetIdeasLive(t *testing.T) {
	rec := get(t, newTestRouter(liveStub{}), "/api/ideas?topic=cats&category=humor")
	require.Equal(t, http.StatusOK, rec.Code)

	var batch models.Batch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &batch))
	assert.Equal(t, models.ProvenanceLive, batch.Provenance)
	assert.Equal(t, "stub", batch.Provider)
	assert.Equal(t, "Live cats", batch.Ideas[0].Title)
}

func TestGetIdeasHTML(t *testing.T) {
	rec := get(t, newTestRouter(nil), "/api/ideas?topic=drones&category=tech&format=html")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<h2>5 drones Hacks You Never Knew Existed</h2>")
}

func TestGetIdeasValidation(t *testing.T) {
	tests := map[string]string{
		"missing topic": "/api/ideas?category=tech",
		"blank topic":   "/api/ideas?topic=%20%20",
		"bad category":  "/api/ideas?topic=x&category=cooking",
		"bad format":    "/api/ideas?topic=x&format=pdf",
	}
	for name, target := range tests {
		t.Run(name, func(t *testing.T) {
			rec := get(t, newTestRouter(nil), target)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "invalid_parameter", resp.Error)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestGetCategories(t *testing.T) {
	rec := get(t, newTestRouter(nil), "/api/categories")
	require.Equal(t, http.StatusOK, rec.Code)

	var cats []CategoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cats))
	require.Len(t, cats, 7)
	assert.Equal(t, models.CategoryAll, cats[0].ID)
	assert.Equal(t, "Lifestyle and daily vlog content", cats[6].Description)
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestRouter(liveStub{}), "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.True(t, health.LiveGeneration)
	assert.Equal(t, "stub", health.Provider)
}
