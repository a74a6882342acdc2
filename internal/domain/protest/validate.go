// internal/domain/protest/validate.go

package protest

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord marks a record that fails schema validation. Such records
// are rejected at ingestion and excluded from aggregation; they never abort
// the batch.
var ErrInvalidRecord = errors.New("invalid record")

// Validate checks that a record carries every field the pipeline requires.
// A nil return means the record is safe to aggregate.
func Validate(r PostRecord) error {
	if r.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}
	if r.Period == "" {
		return fmt.Errorf("%w: missing period", ErrInvalidRecord)
	}
	if r.Timestamp.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrInvalidRecord)
	}
	if r.SentimentPolarity < -1 || r.SentimentPolarity > 1 {
		return fmt.Errorf("%w: sentiment polarity %f outside [-1, 1]", ErrInvalidRecord, r.SentimentPolarity)
	}
	if !ValidSentimentLabel(r.SentimentLabel) {
		return fmt.Errorf("%w: unknown sentiment label %q", ErrInvalidRecord, r.SentimentLabel)
	}
	if !ValidIntensity(r.Intensity) {
		return fmt.Errorf("%w: unknown intensity %q", ErrInvalidRecord, r.Intensity)
	}
	if r.CasualtyContext < 0 {
		return fmt.Errorf("%w: negative casualty context", ErrInvalidRecord)
	}
	if r.Engagement.Shares < 0 || r.Engagement.Likes < 0 {
		return fmt.Errorf("%w: negative engagement counts", ErrInvalidRecord)
	}
	return nil
}
