package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maandamano/internal/domain/analysis"
	"maandamano/internal/domain/protest"
)

func composeFixture(t *testing.T, comparative analysis.ComparativeAnalysis, prediction analysis.RiskPrediction) analysis.Report {
	t.Helper()

	earlier := aggregateFixture(protest.Period2024, -0.41, map[protest.Intensity]int{
		protest.IntensityMedium: 200,
	}, 5, 100)
	later := aggregateFixture(protest.Period2025, -0.47, map[protest.Intensity]int{
		protest.IntensityVeryHigh: 150,
	}, 6, 50)

	composer := NewComposer(ComposerConfig{})
	return composer.Compose("run-1", earlier, later, comparative, prediction, time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC))
}

func TestComposeFormatsPercentToOneDecimal(t *testing.T) {
	report := composeFixture(t, analysis.ComparativeAnalysis{
		EarlierPeriod:        protest.Period2024,
		LaterPeriod:          protest.Period2025,
		SentimentDelta:       -0.06,
		DeteriorationPercent: floatPtr(-14.6341),
		EscalationTrend:      analysis.TrendEscalating,
	}, analysis.RiskPrediction{RiskLevel: analysis.RiskHigh})

	assert.Contains(t, report.ExecutiveSummary,
		"Sentiment deteriorated by -14.6% from 2024 to 2025")
}

func TestComposeUpperCasesRiskLabel(t *testing.T) {
	report := composeFixture(t, analysis.ComparativeAnalysis{
		EarlierPeriod:   protest.Period2024,
		LaterPeriod:     protest.Period2025,
		EscalationTrend: analysis.TrendStable,
	}, analysis.RiskPrediction{RiskLevel: analysis.RiskHigh})

	assert.Contains(t, report.ExecutiveSummary, "Electoral risk assessment: HIGH")
}

func TestComposeReportsInsufficientDataWhenPercentUndefined(t *testing.T) {
	report := composeFixture(t, analysis.ComparativeAnalysis{
		EarlierPeriod:   protest.Period2024,
		LaterPeriod:     protest.Period2025,
		EscalationTrend: analysis.TrendStable,
	}, analysis.RiskPrediction{RiskLevel: analysis.RiskModerate})

	found := false
	for _, line := range report.ExecutiveSummary {
		if strings.HasPrefix(line, "Insufficient data") {
			found = true
		}
	}
	assert.True(t, found, "expected an insufficient data line, got %v", report.ExecutiveSummary)
}

func TestComposeIncludesGeographicSpreadAndHotspots(t *testing.T) {
	report := composeFixture(t, analysis.ComparativeAnalysis{
		EarlierPeriod:   protest.Period2024,
		LaterPeriod:     protest.Period2025,
		EscalationTrend: analysis.TrendEscalating,
	}, analysis.RiskPrediction{
		RiskLevel: analysis.RiskHigh,
		Hotspots: []analysis.Hotspot{
			{Location: "Kisumu", MeanSentiment: -0.8, PeriodCount: 2},
			{Location: "Nairobi", MeanSentiment: -0.6, PeriodCount: 2},
		},
	})

	assert.Contains(t, report.ExecutiveSummary, "Geographic spread: 6 areas affected in 2025 vs 5 in 2024")
	assert.Contains(t, report.ExecutiveSummary, "Persistent negative sentiment hotspots: Kisumu, Nairobi")
}

func TestComposeAssemblesReportMetadata(t *testing.T) {
	comparative := analysis.ComparativeAnalysis{
		EarlierPeriod:   protest.Period2024,
		LaterPeriod:     protest.Period2025,
		EscalationTrend: analysis.TrendStable,
	}
	prediction := analysis.RiskPrediction{RiskLevel: analysis.RiskModerate}

	report := composeFixture(t, comparative, prediction)

	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, DefaultTitle, report.Title)
	assert.Equal(t, DefaultMethodology, report.Methodology)
	assert.Equal(t, time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC), report.GeneratedAt)
	assert.Equal(t, comparative, report.DetailedAnalysis.Comparative)
	assert.Equal(t, prediction, report.DetailedAnalysis.Prediction)
	require.NotNil(t, report.DetailedAnalysis.Earlier.MeanSentiment)
	assert.Equal(t, protest.Period2024, report.DetailedAnalysis.Earlier.Period)
	assert.Equal(t, protest.Period2025, report.DetailedAnalysis.Later.Period)
}
