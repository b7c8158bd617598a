package models

import (
	"time"
)

// TopicSuggestion is a candidate topic pulled from an external feed.
// Suggestions are only used to seed idea generation and are never stored.
type TopicSuggestion struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	URL         string            `json:"url,omitempty"`
	SourceType  string            `json:"source_type"` // rss
	SourceName  string            `json:"source_name"`
	Keywords    []string          `json:"keywords,omitempty"`
	PublishedAt time.Time         `json:"published_at"`
	RawData     map[string]string `json:"-"`
}
