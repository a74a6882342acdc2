// internal/service/analytics/aggregator.go

package analytics

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"maandamano/internal/domain/analysis"
	"maandamano/internal/domain/protest"
)

// Aggregator computes per-period statistics over a record set. It is
// constructed with the declared period set; requesting any other period tag
// is a configuration error.
type Aggregator struct {
	periods map[protest.Period]bool
	log     *logrus.Logger
}

// NewAggregator creates an aggregator for the declared periods
func NewAggregator(periods []protest.Period, log *logrus.Logger) *Aggregator {
	known := make(map[protest.Period]bool, len(periods))
	for _, p := range periods {
		known[p] = true
	}

	return &Aggregator{
		periods: known,
		log:     log,
	}
}

// Aggregate filters records by period and computes means and group counts in
// a single pass. Input ordering is irrelevant; the aggregation is
// commutative. An empty filtered set yields the sentinel aggregate rather
// than a divide-by-zero.
func (a *Aggregator) Aggregate(records []protest.PostRecord, period protest.Period) (analysis.PeriodAggregate, error) {
	if !a.periods[period] {
		return analysis.PeriodAggregate{}, fmt.Errorf("%w: %q", analysis.ErrUnknownPeriod, period)
	}

	aggregate := analysis.PeriodAggregate{
		Period:          period,
		IntensityCounts: make(map[protest.Intensity]int),
		SentimentCounts: make(map[protest.SentimentLabel]int),
	}

	var sentimentSum float64
	locations := make(map[string]bool)

	for _, record := range records {
		if record.Period != period {
			continue
		}

		aggregate.RecordCount++
		sentimentSum += record.SentimentPolarity
		aggregate.IntensityCounts[record.Intensity]++
		aggregate.SentimentCounts[record.SentimentLabel]++
		aggregate.TotalCasualtyContext += record.CasualtyContext
		locations[record.Location] = true
	}

	aggregate.DistinctLocationCount = len(locations)

	if aggregate.RecordCount == 0 {
		a.log.WithField("period", period).Warn("No records for period, returning sentinel aggregate")
		return aggregate, nil
	}

	meanSentiment := sentimentSum / float64(aggregate.RecordCount)
	meanCasualty := aggregate.TotalCasualtyContext / aggregate.RecordCount
	aggregate.MeanSentiment = &meanSentiment
	aggregate.MeanCasualtyContext = &meanCasualty

	return aggregate, nil
}
