package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maandamano/internal/domain/analysis"
	"maandamano/internal/domain/protest"
)

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func aggregateFixture(period protest.Period, mean float64, counts map[protest.Intensity]int, locations, totalCasualties int) analysis.PeriodAggregate {
	records := 0
	for _, c := range counts {
		records += c
	}
	return analysis.PeriodAggregate{
		Period:                period,
		RecordCount:           records,
		MeanSentiment:         floatPtr(mean),
		IntensityCounts:       counts,
		MeanCasualtyContext:   intPtr(0),
		TotalCasualtyContext:  totalCasualties,
		DistinctLocationCount: locations,
	}
}

func TestCompareEscalationScenario(t *testing.T) {
	earlier := aggregateFixture(protest.Period2024, -0.41, map[protest.Intensity]int{
		protest.IntensityMedium: 200,
		protest.IntensityHigh:   100,
	}, 5, 500)
	later := aggregateFixture(protest.Period2025, -0.47, map[protest.Intensity]int{
		protest.IntensityMedium:   150,
		protest.IntensityHigh:     100,
		protest.IntensityVeryHigh: 150,
	}, 6, 400)

	comparative, err := Compare(earlier, later)
	require.NoError(t, err)

	assert.InDelta(t, -0.06, comparative.SentimentDelta, 1e-9)
	require.NotNil(t, comparative.DeteriorationPercent)
	assert.InDelta(t, -14.6, *comparative.DeteriorationPercent, 0.05)
	assert.Equal(t, analysis.TrendEscalating, comparative.EscalationTrend)
	assert.False(t, comparative.ViolenceEscalation)
	assert.True(t, comparative.GeographicExpansion)
}

func TestCompareTieBreakIsStable(t *testing.T) {
	earlier := aggregateFixture(protest.Period2024, -0.3, map[protest.Intensity]int{
		protest.IntensityVeryHigh: 5,
	}, 3, 100)
	later := aggregateFixture(protest.Period2025, -0.4, map[protest.Intensity]int{
		protest.IntensityVeryHigh: 5,
	}, 3, 100)

	comparative, err := Compare(earlier, later)
	require.NoError(t, err)

	assert.Equal(t, analysis.TrendStable, comparative.EscalationTrend)
}

func TestCompareZeroBaselineLeavesPercentUndefined(t *testing.T) {
	earlier := aggregateFixture(protest.Period2024, 0, map[protest.Intensity]int{
		protest.IntensityMedium: 10,
	}, 2, 0)
	later := aggregateFixture(protest.Period2025, -0.2, map[protest.Intensity]int{
		protest.IntensityMedium: 10,
	}, 2, 0)

	comparative, err := Compare(earlier, later)
	require.NoError(t, err)

	assert.Nil(t, comparative.DeteriorationPercent)
	assert.InDelta(t, -0.2, comparative.SentimentDelta, 1e-9)
}

func TestCompareViolenceEscalation(t *testing.T) {
	earlier := aggregateFixture(protest.Period2024, -0.3, map[protest.Intensity]int{
		protest.IntensityMedium: 10,
	}, 2, 100)
	later := aggregateFixture(protest.Period2025, -0.3, map[protest.Intensity]int{
		protest.IntensityMedium: 10,
	}, 2, 250)

	comparative, err := Compare(earlier, later)
	require.NoError(t, err)

	assert.True(t, comparative.ViolenceEscalation)
	assert.False(t, comparative.GeographicExpansion)
}

func TestCompareRejectsSentinelAggregate(t *testing.T) {
	earlier := analysis.PeriodAggregate{Period: protest.Period2024}
	later := aggregateFixture(protest.Period2025, -0.3, map[protest.Intensity]int{
		protest.IntensityMedium: 10,
	}, 2, 0)

	_, err := Compare(earlier, later)
	assert.ErrorIs(t, err, analysis.ErrInsufficientData)

	_, err = Compare(later, earlier)
	assert.ErrorIs(t, err, analysis.ErrInsufficientData)
}
