package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idea-agent/internal/models"
)

func sampleBatch() *models.Batch {
	return &models.Batch{
		Topic:    "drones",
		Category: models.CategoryTech,
		Ideas: []models.ContentIdea{{
			Title:          "5 drones Hacks You Never Knew Existed",
			Description:    "Quick technical tips.",
			ContentType:    models.ContentTypeTutorial,
			Virality:       models.ViralityMedium,
			TargetAudience: "Tech enthusiasts",
			Category:       models.CategoryTech,
		}},
		Provenance: models.ProvenanceFallback,
		Reason:     "not_configured",
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = ParseFormat("MD")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, f)

	_, err = ParseFormat("pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestText(t *testing.T) {
	out := Text(sampleBatch())
	assert.Contains(t, out, "[1] 5 drones Hacks You Never Knew Existed")
	assert.Contains(t, out, "template fallback (not_configured)")
}

func TestMarkdownAndHTML(t *testing.T) {
	md := Markdown(sampleBatch())
	assert.Contains(t, md, "## 5 drones Hacks You Never Knew Existed")

	html, err := HTML(sampleBatch())
	require.NoError(t, err)
	assert.Contains(t, html, "<h2>5 drones Hacks You Never Knew Existed</h2>")
	assert.Contains(t, html, "<strong>Virality:</strong> medium")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleBatch(), FormatJSON))

	var decoded models.Batch
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, models.ProvenanceFallback, decoded.Provenance)
	assert.Len(t, decoded.Ideas, 1)
}

func TestWriteLiveLabel(t *testing.T) {
	batch := sampleBatch()
	batch.Provenance = models.ProvenanceLive
	batch.Provider = "openai"
	batch.Reason = ""

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, batch, FormatText))
	assert.Contains(t, buf.String(), "live (openai)")
}
