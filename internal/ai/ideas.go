package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/idea-agent/internal/models"
)

var (
	// ErrMalformedResponse covers every response that cannot be turned into ideas
	ErrMalformedResponse = errors.New("malformed response")
	ErrUnexpectedShape   = fmt.Errorf("%w: expected an idea array or an object with an ideas array", ErrMalformedResponse)
	ErrNoIdeas           = fmt.Errorf("%w: response contained no ideas", ErrMalformedResponse)
)

// BuildIdeaPrompt returns the user prompt for a topic and category
func BuildIdeaPrompt(topic string, category models.Category) string {
	if category == models.CategoryAll {
		return fmt.Sprintf(MixedIdeaUserPrompt, topic)
	}
	return fmt.Sprintf(CategoryIdeaUserPrompt, topic, category.Description(), category)
}

// extractJSON drops markdown fences and any prose around the JSON payload.
// Both an object and an array span are tried; the earliest one that decodes
// wins, so brackets in leading prose do not hide the payload.
func extractJSON(response string) string {
	response = strings.TrimSpace(response)

	best, bestStart := "", -1
	fallback, fallbackStart := response, -1
	for _, pair := range [][2]string{{"{", "}"}, {"[", "]"}} {
		startIdx := strings.Index(response, pair[0])
		endIdx := strings.LastIndex(response, pair[1])
		if startIdx == -1 || endIdx < startIdx {
			continue
		}

		candidate := response[startIdx : endIdx+1]
		if json.Valid([]byte(candidate)) {
			if bestStart == -1 || startIdx < bestStart {
				best, bestStart = candidate, startIdx
			}
			continue
		}
		if fallbackStart == -1 || startIdx < fallbackStart {
			fallback, fallbackStart = candidate, startIdx
		}
	}

	if bestStart != -1 {
		return best
	}
	return fallback
}

// ParseIdeas decodes a model response into ideas. It accepts either a bare
// array of idea objects or an object wrapping them in an "ideas" field.
func ParseIdeas(response string) ([]models.ContentIdea, error) {
	payload := []byte(extractJSON(response))
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedResponse)
	}

	var ideas []models.ContentIdea
	switch payload[0] {
	case '[':
		if err := json.Unmarshal(payload, &ideas); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	case '{':
		var wrapper struct {
			Ideas json.RawMessage `json:"ideas"`
		}
		if err := json.Unmarshal(payload, &wrapper); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		if len(wrapper.Ideas) == 0 || !bytes.HasPrefix(bytes.TrimSpace(wrapper.Ideas), []byte("[")) {
			return nil, ErrUnexpectedShape
		}
		if err := json.Unmarshal(wrapper.Ideas, &ideas); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	default:
		return nil, ErrUnexpectedShape
	}

	if len(ideas) == 0 {
		return nil, ErrNoIdeas
	}

	return ideas, nil
}

// normalizeIdeas trims fields and fills in the category for category-specific requests
func normalizeIdeas(ideas []models.ContentIdea, category models.Category) []models.ContentIdea {
	for i := range ideas {
		idea := &ideas[i]
		idea.Title = strings.TrimSpace(idea.Title)
		idea.Description = strings.TrimSpace(idea.Description)
		idea.TargetAudience = strings.TrimSpace(idea.TargetAudience)
		idea.ContentType = models.ContentType(strings.ToLower(strings.TrimSpace(string(idea.ContentType))))
		idea.Virality = models.Virality(strings.ToLower(strings.TrimSpace(string(idea.Virality))))
		idea.Category = models.Category(strings.ToLower(strings.TrimSpace(string(idea.Category))))

		if idea.Category == "" && category != models.CategoryAll {
			idea.Category = category
		}
	}
	return ideas
}

// GenerateIdeas asks the model for ideas about a topic
func (c *Client) GenerateIdeas(ctx context.Context, topic string, category models.Category) ([]models.ContentIdea, error) {
	userPrompt := BuildIdeaPrompt(topic, category)

	response, err := c.completer.CompleteJSON(ctx, IdeaSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	ideas, err := ParseIdeas(response)
	if err != nil {
		c.log.Error().
			Err(err).
			Str("response", response).
			Msg("Failed to parse ideas response")
		return nil, fmt.Errorf("failed to parse ideas response: %w", err)
	}

	c.log.Debug().
		Int("count", len(ideas)).
		Str("provider", c.completer.Provider()).
		Msg("Parsed ideas response")

	return normalizeIdeas(ideas, category), nil
}
