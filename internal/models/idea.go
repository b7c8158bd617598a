package models

// Virality is a qualitative estimate of how far an idea could spread
type Virality string

const (
	ViralityLow    Virality = "low"
	ViralityMedium Virality = "medium"
	ViralityHigh   Virality = "high"
)

// ContentType is the format an idea is meant to be published in
type ContentType string

const (
	ContentTypeVideo    ContentType = "video"
	ContentTypeReel     ContentType = "reel"
	ContentTypeStory    ContentType = "story"
	ContentTypePost     ContentType = "post"
	ContentTypeTutorial ContentType = "tutorial"
	ContentTypeSeries   ContentType = "series"
	ContentTypeVlog     ContentType = "vlog"
)

// MaxTitleLength is the title limit requested from the model
const MaxTitleLength = 60

// ContentIdea is a single social media content idea
type ContentIdea struct {
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	ContentType    ContentType `json:"content_type"`
	Virality       Virality    `json:"virality"`
	TargetAudience string      `json:"target_audience"`
	Category       Category    `json:"category"`
}

// Provenance tells whether a batch came from the model or the template bank
type Provenance string

const (
	ProvenanceLive     Provenance = "live"
	ProvenanceFallback Provenance = "fallback"
)

// Batch is the result of one generation request
type Batch struct {
	Topic      string        `json:"topic"`
	Category   Category      `json:"category"`
	Ideas      []ContentIdea `json:"ideas"`
	Provenance Provenance    `json:"provenance"`
	Provider   string        `json:"provider,omitempty"`
	Reason     string        `json:"reason,omitempty"` // Why the fallback was used
}

// IsFallback returns true if the ideas came from the static templates
func (b *Batch) IsFallback() bool {
	return b.Provenance == ProvenanceFallback
}
