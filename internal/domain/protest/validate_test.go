package protest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validRecord() PostRecord {
	return PostRecord{
		ID:                "2024_post_0",
		Period:            Period2024,
		EventType:         EventFinanceBill,
		Timestamp:         time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC),
		Text:              "post",
		Location:          "Nairobi",
		Engagement:        Engagement{Shares: 10, Likes: 20},
		SentimentPolarity: -0.4,
		SentimentLabel:    SentimentNegative,
		CasualtyContext:   39,
		Intensity:         IntensityMedium,
	}
}

func TestValidateAcceptsCompleteRecord(t *testing.T) {
	assert.NoError(t, Validate(validRecord()))
}

func TestValidateRejectsIncompleteRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PostRecord)
	}{
		{"missing id", func(r *PostRecord) { r.ID = "" }},
		{"missing period", func(r *PostRecord) { r.Period = "" }},
		{"missing timestamp", func(r *PostRecord) { r.Timestamp = time.Time{} }},
		{"polarity below range", func(r *PostRecord) { r.SentimentPolarity = -1.5 }},
		{"polarity above range", func(r *PostRecord) { r.SentimentPolarity = 1.5 }},
		{"unknown label", func(r *PostRecord) { r.SentimentLabel = "ANGRY" }},
		{"unknown intensity", func(r *PostRecord) { r.Intensity = "extreme" }},
		{"negative casualties", func(r *PostRecord) { r.CasualtyContext = -1 }},
		{"negative shares", func(r *PostRecord) { r.Engagement.Shares = -1 }},
		{"negative likes", func(r *PostRecord) { r.Engagement.Likes = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(&record)

			err := Validate(record)
			assert.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}
