// internal/service/synth/events.go

package synth

import (
	"time"

	"maandamano/internal/domain/protest"
)

// SentimentRange is a bounded uniform polarity sampling range
type SentimentRange struct {
	Min float64
	Max float64
}

// EngagementRange bounds the uniform share/like sampling before the
// engagement multiplier is applied.
type EngagementRange struct {
	MinShares int
	MaxShares int
	MinLikes  int
	MaxLikes  int
}

// PeakSpec overrides the base generation rules inside a one-day sub-window,
// producing the bimodal mixture observed on flagship protest days.
type PeakSpec struct {
	Date       time.Time
	Sentiment  SentimentRange
	Label      protest.SentimentLabel
	Multiplier float64
	Intensity  protest.Intensity
}

// EventSpec describes how to synthesize records for one sub-event: its date
// window, location pool, text templates, sentiment rule and record count.
// A production deployment replaces synthesis with a real-data adapter while
// keeping the record schema.
type EventSpec struct {
	IDPrefix    string
	Period      protest.Period
	EventType   protest.EventType
	WindowStart time.Time
	WindowEnd   time.Time
	Count       int
	Locations   []string
	Templates   []string
	Sentiment   SentimentRange
	FixedLabel  protest.SentimentLabel // empty derives the label from polarity
	Engagement  EngagementRange
	Multiplier  float64
	Intensity   protest.Intensity
	Casualties  int
	Peak        *PeakSpec
	Exclude     []time.Time // calendar days sampled around, never emitted
}

// DefaultEvents returns the built-in 2024/2025 Kenya protest event
// specifications used for the demonstration corpus.
func DefaultEvents() []EventSpec {
	return []EventSpec{
		{
			IDPrefix:    "2024_post",
			Period:      protest.Period2024,
			EventType:   protest.EventFinanceBill,
			WindowStart: time.Date(2024, time.June, 18, 0, 0, 0, 0, time.UTC),
			WindowEnd:   time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
			Count:       300,
			Locations:   []string{"Nairobi", "Mombasa", "Kisumu", "Nakuru", "Eldoret"},
			Templates: []string{
				"Gen Z standing up! #RejectFinanceBill2024 #GenZProtest We will not be silenced in %s!",
				"The Finance Bill 2024 is killing our future! #RutoMustGo #GenZProtest",
				"Peaceful protests in %s but police brutality continues #RejectFinanceBill2024",
				"39 young people died for this cause. We cannot forget! #GenZProtest #JusticeForFallen",
				"Economic oppression ends now! %s stands with Gen Z #RejectFinanceBill2024",
			},
			Sentiment:  SentimentRange{Min: -0.7, Max: -0.1},
			Engagement: EngagementRange{MinShares: 50, MaxShares: 500, MinLikes: 100, MaxLikes: 1000},
			Multiplier: 1.5,
			Intensity:  protest.IntensityMedium,
			Casualties: 39,
			Peak: &PeakSpec{
				Date:       time.Date(2024, time.June, 25, 0, 0, 0, 0, time.UTC),
				Sentiment:  SentimentRange{Min: -0.9, Max: -0.4},
				Label:      protest.SentimentNegative,
				Multiplier: 3.0,
				Intensity:  protest.IntensityHigh,
			},
		},
		{
			IDPrefix:    "2025_saba",
			Period:      protest.Period2025,
			EventType:   protest.EventSabaSaba,
			WindowStart: time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC),
			WindowEnd:   time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC),
			Count:       150,
			Locations:   []string{"Nairobi", "Mombasa", "Kisumu", "Nakuru"},
			Templates: []string{
				"#SabaSaba2025 - history repeats itself. More bloodshed in %s #KenyaProtests",
				"Saba Saba 2025 - the deadliest protest yet. When will this end? #SabaSaba2025",
				"12 lives lost today in %s. #SabaSaba2025 #JusticeNow",
				"Saba Saba tradition continues but at what cost? #SabaSaba2025 #Maandamano",
				"Government must listen! Saba Saba 2025 in %s #KenyaProtests",
			},
			Sentiment:  SentimentRange{Min: -0.95, Max: -0.6},
			FixedLabel: protest.SentimentNegative,
			Engagement: EngagementRange{MinShares: 200, MaxShares: 800, MinLikes: 400, MaxLikes: 1500},
			Multiplier: 1.0,
			Intensity:  protest.IntensityVeryHigh,
			Casualties: 12,
		},
		{
			IDPrefix:    "2025_ongoing",
			Period:      protest.Period2025,
			EventType:   protest.EventOngoing,
			WindowStart: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			WindowEnd:   time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			Count:       200,
			Locations:   []string{"Nairobi", "Mombasa", "Kisumu", "Nakuru", "Eldoret", "Thika"},
			Templates: []string{
				"Cost of living still unbearable in %s #KenyaProtests #EconomicJustice",
				"2025 and nothing has changed since 2024 protests #KenyaProtests",
				"Ongoing struggle for economic justice in %s #Maandamano",
				"Government promises vs reality - the gap widens #KenyaProtests",
				"Youth unemployment crisis continues in %s #EconomicJustice",
			},
			Sentiment:  SentimentRange{Min: -0.6, Max: 0.1},
			Engagement: EngagementRange{MinShares: 20, MaxShares: 200, MinLikes: 50, MaxLikes: 400},
			Multiplier: 1.0,
			Intensity:  protest.IntensityMedium,
			Casualties: 0,
			// Saba Saba claims July 7; the ongoing-unrest generator samples
			// around it so the date is not double counted.
			Exclude: []time.Time{time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC)},
		},
	}
}
