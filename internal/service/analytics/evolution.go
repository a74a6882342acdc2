// internal/service/analytics/evolution.go

package analytics

import (
	"fmt"
	"math"

	"maandamano/internal/domain/analysis"
	"maandamano/internal/domain/protest"
)

// Compare derives the delta metrics between an earlier and a later period
// aggregate. It is a pure function; both inputs must carry data, a sentinel
// aggregate on either side is surfaced as an insufficient-data failure.
func Compare(earlier, later analysis.PeriodAggregate) (analysis.ComparativeAnalysis, error) {
	if earlier.Empty() || later.Empty() {
		return analysis.ComparativeAnalysis{}, fmt.Errorf(
			"%w: comparing %q and %q requires records in both periods",
			analysis.ErrInsufficientData, earlier.Period, later.Period,
		)
	}

	delta := *later.MeanSentiment - *earlier.MeanSentiment

	comparative := analysis.ComparativeAnalysis{
		EarlierPeriod:       earlier.Period,
		LaterPeriod:         later.Period,
		SentimentDelta:      delta,
		EscalationTrend:     escalationTrend(earlier, later),
		ViolenceEscalation:  later.TotalCasualtyContext > earlier.TotalCasualtyContext,
		GeographicExpansion: later.DistinctLocationCount > earlier.DistinctLocationCount,
	}

	// The ratio is undefined against a zero baseline; leave the percent
	// unset rather than emitting an infinity.
	if *earlier.MeanSentiment != 0 {
		percent := delta / math.Abs(*earlier.MeanSentiment) * 100
		comparative.DeteriorationPercent = &percent
	}

	return comparative, nil
}

// escalationTrend classifies the very-high intensity direction. Equal counts
// are stable; escalation requires a strictly greater later count.
func escalationTrend(earlier, later analysis.PeriodAggregate) analysis.EscalationTrend {
	if later.IntensityCounts[protest.IntensityVeryHigh] > earlier.IntensityCounts[protest.IntensityVeryHigh] {
		return analysis.TrendEscalating
	}
	return analysis.TrendStable
}
