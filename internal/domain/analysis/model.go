// internal/domain/analysis/model.go

package analysis

import (
	"time"

	"maandamano/internal/domain/protest"
)

// EscalationTrend is the qualitative direction of peak-severity event
// frequency between two periods
type EscalationTrend string

// Escalation trends. Equal very-high counts classify as stable; escalation
// requires a strictly greater count in the later period.
const (
	TrendEscalating EscalationTrend = "escalating"
	TrendStable     EscalationTrend = "stable"
)

// RiskLevel is the qualitative outcome of the risk assessment
type RiskLevel string

// Risk levels, ordered from least to most severe
const (
	RiskModerate RiskLevel = "moderate"
	RiskElevated RiskLevel = "elevated"
	RiskHigh     RiskLevel = "high"
	RiskSevere   RiskLevel = "severe"
)

// PeriodAggregate holds the derived per-period statistics. A zero RecordCount
// marks the empty-period sentinel: mean fields are nil and downstream stages
// must treat the aggregate as insufficient data.
type PeriodAggregate struct {
	Period                protest.Period                 `json:"period"`
	RecordCount           int                            `json:"record_count"`
	MeanSentiment         *float64                       `json:"mean_sentiment"`
	IntensityCounts       map[protest.Intensity]int      `json:"intensity_counts"`
	SentimentCounts       map[protest.SentimentLabel]int `json:"sentiment_counts"`
	MeanCasualtyContext   *int                           `json:"mean_casualty_context"`
	TotalCasualtyContext  int                            `json:"total_casualty_context"`
	DistinctLocationCount int                            `json:"distinct_location_count"`
}

// Empty reports whether the aggregate is the empty-period sentinel
func (a PeriodAggregate) Empty() bool {
	return a.RecordCount == 0
}

// ComparativeAnalysis holds the delta metrics between an earlier and a later
// period. DeteriorationPercent is nil when the earlier mean sentiment is
// zero, since the ratio is undefined there.
type ComparativeAnalysis struct {
	EarlierPeriod        protest.Period  `json:"earlier_period"`
	LaterPeriod          protest.Period  `json:"later_period"`
	SentimentDelta       float64         `json:"sentiment_delta"`
	DeteriorationPercent *float64        `json:"deterioration_percent"`
	EscalationTrend      EscalationTrend `json:"escalation_trend"`
	ViolenceEscalation   bool            `json:"violence_escalation"`
	GeographicExpansion  bool            `json:"geographic_expansion"`
}

// Hotspot is a location flagged as a persistent source of strongly negative
// sentiment across multiple periods.
type Hotspot struct {
	Location      string  `json:"location"`
	MeanSentiment float64 `json:"mean_sentiment"`
	PeriodCount   int     `json:"period_count"`
}

// Scenarios holds the qualitative outcome narratives
type Scenarios struct {
	Best   string `json:"best"`
	Likely string `json:"likely"`
	Worst  string `json:"worst"`
}

// RiskPrediction is the terminal artifact of the analytic stages
type RiskPrediction struct {
	RiskLevel       RiskLevel `json:"risk_level"`
	KeyFactors      []string  `json:"key_factors"`
	Hotspots        []Hotspot `json:"hotspots"`
	Scenarios       Scenarios `json:"scenarios"`
	Recommendations []string  `json:"recommendations"`
}

// DetailedAnalysis nests the derived artifacts of a run
type DetailedAnalysis struct {
	Earlier     PeriodAggregate     `json:"earlier"`
	Later       PeriodAggregate     `json:"later"`
	Comparative ComparativeAnalysis `json:"comparative"`
	Prediction  RiskPrediction      `json:"prediction"`
}

// Report is the final structured report assembled by the composer
type Report struct {
	RunID            string           `json:"run_id"`
	Title            string           `json:"title"`
	ExecutiveSummary []string         `json:"executive_summary"`
	DetailedAnalysis DetailedAnalysis `json:"detailed_analysis"`
	GeneratedAt      time.Time        `json:"generated_at"`
	Methodology      string           `json:"methodology"`
}

// RunManifest identifies a pipeline run and the snapshots it produced.
// It replaces file-timestamp inference as the source of run identity.
type RunManifest struct {
	RunID          string    `json:"run_id"`
	Seed           int64     `json:"seed"`
	GeneratedAt    time.Time `json:"generated_at"`
	RecordCount    int       `json:"record_count"`
	RejectedCount  int       `json:"rejected_count"`
	RecordSnapshot string    `json:"record_snapshot,omitempty"`
	ReportSnapshot string    `json:"report_snapshot,omitempty"`
}
