// internal/domain/protest/model.go

package protest

import (
	"time"
)

// Period identifies a named observation window, usually a year
type Period string

// Known observation periods
const (
	Period2024 Period = "2024"
	Period2025 Period = "2025"
)

// EventType names the specific sub-event a post belongs to
type EventType string

// Known sub-events
const (
	EventFinanceBill EventType = "finance_bill_protests"
	EventSabaSaba    EventType = "saba_saba_protests"
	EventOngoing     EventType = "ongoing_unrest"
)

// Intensity is a categorical severity label for the moment a post was made
type Intensity string

// Intensity levels, ordered from least to most severe
const (
	IntensityMedium   Intensity = "medium"
	IntensityHigh     Intensity = "high"
	IntensityVeryHigh Intensity = "very_high"
)

// SentimentLabel is the categorical sentiment class attached to a post
type SentimentLabel string

// Sentiment labels
const (
	SentimentNegative SentimentLabel = "NEG"
	SentimentNeutral  SentimentLabel = "NEU"
	SentimentPositive SentimentLabel = "POS"
)

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Engagement holds the share/like counters observed on a post
type Engagement struct {
	Shares int `json:"shares"`
	Likes  int `json:"likes"`
}

// PostRecord represents one social media post observation. Sentiment scores
// are pre-computed upstream; this core never re-analyzes the text.
type PostRecord struct {
	ID                string         `json:"id"`
	Period            Period         `json:"period"`
	EventType         EventType      `json:"event_type"`
	Timestamp         time.Time      `json:"timestamp"`
	Text              string         `json:"text"`
	Location          string         `json:"location"`
	Coordinates       *Coordinates   `json:"coordinates,omitempty"`
	Engagement        Engagement     `json:"engagement"`
	SentimentPolarity float64        `json:"sentiment_polarity"`
	SentimentLabel    SentimentLabel `json:"sentiment_label"`
	CasualtyContext   int            `json:"casualty_context"`
	Intensity         Intensity      `json:"intensity"`
}

// ValidIntensity reports whether v is a known intensity level
func ValidIntensity(v Intensity) bool {
	switch v {
	case IntensityMedium, IntensityHigh, IntensityVeryHigh:
		return true
	}
	return false
}

// ValidSentimentLabel reports whether v is a known sentiment label
func ValidSentimentLabel(v SentimentLabel) bool {
	switch v {
	case SentimentNegative, SentimentNeutral, SentimentPositive:
		return true
	}
	return false
}
