// Package render formats idea batches for terminals, documents and browsers.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/idea-agent/internal/models"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported formats
var ErrUnknownFormat = errors.New("unknown output format")

// Format is an output format
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// ParseFormat validates a user supplied format name. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatMarkdown, FormatHTML, FormatJSON:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write renders batch in the given format to w
func Write(w io.Writer, batch *models.Batch, format Format) error {
	var out string
	switch format {
	case FormatText, "":
		out = Text(batch)
	case FormatMarkdown:
		out = Markdown(batch)
	case FormatHTML:
		html, err := HTML(batch)
		if err != nil {
			return err
		}
		out = html
	case FormatJSON:
		data, err := json.MarshalIndent(batch, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode batch: %w", err)
		}
		out = string(data) + "\n"
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	_, err := io.WriteString(w, out)
	return err
}

// Text renders a plain terminal listing
func Text(batch *models.Batch) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n=== Content Ideas: %s (%s) ===\n", batch.Topic, batch.Category)
	fmt.Fprintf(&sb, "Source: %s\n", sourceLabel(batch))

	for i, idea := range batch.Ideas {
		fmt.Fprintf(&sb, "\n[%d] %s\n", i+1, idea.Title)
		fmt.Fprintf(&sb, "    %s\n", idea.Description)
		fmt.Fprintf(&sb, "    Type: %s | Virality: %s | Category: %s\n", idea.ContentType, idea.Virality, idea.Category)
		fmt.Fprintf(&sb, "    Audience: %s\n", idea.TargetAudience)
	}

	return sb.String()
}

// Markdown renders the batch as a Markdown document
func Markdown(batch *models.Batch) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Content ideas for %s\n\n", batch.Topic)
	fmt.Fprintf(&sb, "_Category: %s. Source: %s._\n", batch.Category, sourceLabel(batch))

	for _, idea := range batch.Ideas {
		fmt.Fprintf(&sb, "\n## %s\n\n", idea.Title)
		fmt.Fprintf(&sb, "%s\n\n", idea.Description)
		fmt.Fprintf(&sb, "- **Type:** %s\n", idea.ContentType)
		fmt.Fprintf(&sb, "- **Virality:** %s\n", idea.Virality)
		fmt.Fprintf(&sb, "- **Category:** %s\n", idea.Category)
		fmt.Fprintf(&sb, "- **Audience:** %s\n", idea.TargetAudience)
	}

	return sb.String()
}

// HTML renders the Markdown document to HTML
func HTML(batch *models.Batch) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(batch)), &buf); err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}
	return buf.String(), nil
}

func sourceLabel(batch *models.Batch) string {
	if batch.IsFallback() {
		return "template fallback (" + batch.Reason + ")"
	}
	if batch.Provider != "" {
		return "live (" + batch.Provider + ")"
	}
	return "live"
}
