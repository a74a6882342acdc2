// internal/service/analytics/composer.go

package analytics

import (
	"fmt"
	"strings"
	"time"

	"maandamano/internal/domain/analysis"
)

// Default report framing
const (
	DefaultTitle = "Kenya Protest Analysis: 2024-2025 Comparative Study & 2027 Election Predictions"

	DefaultMethodology = "Comparative sentiment analysis using social media data, casualty reports, and geographic distribution patterns"
)

// ComposerConfig contains configuration for the report composer
type ComposerConfig struct {
	Title       string
	Methodology string
}

// Composer assembles the final structured report. No analytic computation
// happens here; every line is formatting over already-derived values.
type Composer struct {
	config ComposerConfig
}

// NewComposer creates a report composer
func NewComposer(config ComposerConfig) *Composer {
	if config.Title == "" {
		config.Title = DefaultTitle
	}
	if config.Methodology == "" {
		config.Methodology = DefaultMethodology
	}

	return &Composer{config: config}
}

// Compose builds the report from the derived artifacts of a run. The result
// is immutable; callers serialize it and retain no references.
func (c *Composer) Compose(
	runID string,
	earlier, later analysis.PeriodAggregate,
	comparative analysis.ComparativeAnalysis,
	prediction analysis.RiskPrediction,
	now time.Time,
) analysis.Report {
	return analysis.Report{
		RunID:            runID,
		Title:            c.config.Title,
		ExecutiveSummary: c.executiveSummary(earlier, later, comparative, prediction),
		DetailedAnalysis: analysis.DetailedAnalysis{
			Earlier:     earlier,
			Later:       later,
			Comparative: comparative,
			Prediction:  prediction,
		},
		GeneratedAt: now,
		Methodology: c.config.Methodology,
	}
}

func (c *Composer) executiveSummary(
	earlier, later analysis.PeriodAggregate,
	comparative analysis.ComparativeAnalysis,
	prediction analysis.RiskPrediction,
) []string {
	summary := make([]string, 0, 5)

	if comparative.DeteriorationPercent != nil {
		summary = append(summary, fmt.Sprintf(
			"Sentiment deteriorated by %.1f%% from %s to %s",
			*comparative.DeteriorationPercent, comparative.EarlierPeriod, comparative.LaterPeriod,
		))
	} else {
		summary = append(summary, fmt.Sprintf(
			"Insufficient data to quantify sentiment deterioration between %s and %s",
			comparative.EarlierPeriod, comparative.LaterPeriod,
		))
	}

	if comparative.EscalationTrend == analysis.TrendEscalating {
		summary = append(summary, "Protest intensity escalation observed with very high intensity events increasing")
	} else {
		summary = append(summary, "Protest intensity stable relative to the previous period")
	}

	summary = append(summary, fmt.Sprintf(
		"Geographic spread: %d areas affected in %s vs %d in %s",
		later.DistinctLocationCount, comparative.LaterPeriod,
		earlier.DistinctLocationCount, comparative.EarlierPeriod,
	))

	if len(prediction.Hotspots) > 0 {
		names := make([]string, len(prediction.Hotspots))
		for i, hotspot := range prediction.Hotspots {
			names[i] = hotspot.Location
		}
		summary = append(summary, fmt.Sprintf(
			"Persistent negative sentiment hotspots: %s", strings.Join(names, ", "),
		))
	}

	summary = append(summary, fmt.Sprintf(
		"Electoral risk assessment: %s", strings.ToUpper(string(prediction.RiskLevel)),
	))

	return summary
}
