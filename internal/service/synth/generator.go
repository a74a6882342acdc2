// internal/service/synth/generator.go

package synth

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"maandamano/internal/domain/geo"
	"maandamano/internal/domain/protest"
)

// Polarity below this threshold derives a negative label; otherwise neutral.
const negativeLabelThreshold = -0.2

// Generator synthesizes annotated post records from event specifications.
// The random source is seeded explicitly so corpora are reproducible.
type Generator struct {
	gazetteer *geo.Gazetteer
	rng       *rand.Rand
	log       *logrus.Logger
}

// NewGenerator creates a new corpus generator
func NewGenerator(seed int64, gazetteer *geo.Gazetteer, log *logrus.Logger) *Generator {
	return &Generator{
		gazetteer: gazetteer,
		rng:       rand.New(rand.NewSource(seed)),
		log:       log,
	}
}

// GenerateCorpus synthesizes records for every event specification and
// returns them as a single record set.
func (g *Generator) GenerateCorpus(specs []EventSpec) ([]protest.PostRecord, error) {
	var records []protest.PostRecord

	for _, spec := range specs {
		generated, err := g.Generate(spec)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", spec.EventType, err)
		}
		records = append(records, generated...)
	}

	return records, nil
}

// Generate synthesizes exactly spec.Count records for one sub-event
func (g *Generator) Generate(spec EventSpec) ([]protest.PostRecord, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	records := make([]protest.PostRecord, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		timestamp, err := g.sampleTimestamp(spec)
		if err != nil {
			return nil, err
		}

		peak := spec.Peak != nil && sameDay(timestamp, spec.Peak.Date)

		polarity := g.samplePolarity(spec, peak)
		label := spec.FixedLabel
		if peak {
			label = spec.Peak.Label
		}
		if label == "" {
			label = deriveLabel(polarity)
		}

		multiplier := spec.Multiplier
		intensity := spec.Intensity
		if peak {
			multiplier = spec.Peak.Multiplier
			intensity = spec.Peak.Intensity
		}

		location := spec.Locations[g.rng.Intn(len(spec.Locations))]
		coords := g.gazetteer.Resolve(location)

		records = append(records, protest.PostRecord{
			ID:          fmt.Sprintf("%s_%d", spec.IDPrefix, i),
			Period:      spec.Period,
			EventType:   spec.EventType,
			Timestamp:   timestamp,
			Text:        renderTemplate(spec.Templates[g.rng.Intn(len(spec.Templates))], location),
			Location:    location,
			Coordinates: &coords,
			Engagement: protest.Engagement{
				Shares: int(float64(g.intBetween(spec.Engagement.MinShares, spec.Engagement.MaxShares)) * multiplier),
				Likes:  int(float64(g.intBetween(spec.Engagement.MinLikes, spec.Engagement.MaxLikes)) * multiplier),
			},
			SentimentPolarity: polarity,
			SentimentLabel:    label,
			CasualtyContext:   spec.Casualties,
			Intensity:         intensity,
		})
	}

	g.log.WithFields(logrus.Fields{
		"event_type": spec.EventType,
		"period":     spec.Period,
		"count":      len(records),
	}).Info("Synthesized records")

	return records, nil
}

// sampleTimestamp picks a uniform offset within the event window. Single-day
// windows jitter by up to twelve hours around the declared date; multi-day
// windows pick a day, resampling away from excluded dates.
func (g *Generator) sampleTimestamp(spec EventSpec) (time.Time, error) {
	if sameDay(spec.WindowStart, spec.WindowEnd) {
		jitter := time.Duration(g.intBetween(-12, 12)) * time.Hour
		return spec.WindowStart.Add(jitter), nil
	}

	days := int(spec.WindowEnd.Sub(spec.WindowStart).Hours() / 24)
	for attempt := 0; attempt < 1000; attempt++ {
		candidate := spec.WindowStart.AddDate(0, 0, g.rng.Intn(days+1))
		if !excluded(candidate, spec.Exclude) {
			return candidate, nil
		}
	}

	return time.Time{}, fmt.Errorf("event %s: every date in the window is excluded", spec.EventType)
}

func (g *Generator) samplePolarity(spec EventSpec, peak bool) float64 {
	bounds := spec.Sentiment
	if peak {
		bounds = spec.Peak.Sentiment
	}
	return bounds.Min + g.rng.Float64()*(bounds.Max-bounds.Min)
}

// intBetween returns a uniform integer in [min, max]
func (g *Generator) intBetween(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

func deriveLabel(polarity float64) protest.SentimentLabel {
	if polarity < negativeLabelThreshold {
		return protest.SentimentNegative
	}
	return protest.SentimentNeutral
}

func renderTemplate(template, location string) string {
	if strings.Contains(template, "%s") {
		return strings.ReplaceAll(template, "%s", location)
	}
	return template
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func excluded(candidate time.Time, exclude []time.Time) bool {
	for _, day := range exclude {
		if sameDay(candidate, day) {
			return true
		}
	}
	return false
}

func validateSpec(spec EventSpec) error {
	if spec.Count <= 0 {
		return fmt.Errorf("event %s: record count must be positive", spec.EventType)
	}
	if spec.WindowEnd.Before(spec.WindowStart) {
		return fmt.Errorf("event %s: window end precedes window start", spec.EventType)
	}
	if len(spec.Locations) == 0 {
		return fmt.Errorf("event %s: location pool is empty", spec.EventType)
	}
	if len(spec.Templates) == 0 {
		return fmt.Errorf("event %s: template pool is empty", spec.EventType)
	}
	if spec.Sentiment.Min > spec.Sentiment.Max {
		return fmt.Errorf("event %s: inverted sentiment range", spec.EventType)
	}
	if spec.Multiplier <= 0 {
		return fmt.Errorf("event %s: engagement multiplier must be positive", spec.EventType)
	}
	return nil
}
