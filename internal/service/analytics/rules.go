// internal/service/analytics/rules.go

package analytics

import (
	"maandamano/internal/domain/analysis"
)

// RiskRule pairs a predicate over the comparative analysis with the factor
// message it contributes. Rules are evaluated uniformly; adding a rule is
// additive data, not new control flow.
type RiskRule struct {
	Name      string
	Condition func(analysis.ComparativeAnalysis) bool
	Message   string
}

// DefaultRules returns the built-in risk factor rules. The deterioration
// threshold comes from configuration; the remaining rules key off the
// comparative flags directly.
func DefaultRules(sentimentDeltaThreshold float64) []RiskRule {
	return []RiskRule{
		{
			Name: "sentiment_deterioration",
			Condition: func(c analysis.ComparativeAnalysis) bool {
				return c.SentimentDelta < sentimentDeltaThreshold
			},
			Message: "Significant sentiment deterioration indicates growing anti-government sentiment",
		},
		{
			Name: "intensity_escalation",
			Condition: func(c analysis.ComparativeAnalysis) bool {
				return c.EscalationTrend == analysis.TrendEscalating
			},
			Message: "Rising frequency of very high intensity events points to escalating confrontation",
		},
		{
			Name: "violence_escalation",
			Condition: func(c analysis.ComparativeAnalysis) bool {
				return c.ViolenceEscalation
			},
			Message: "Casualty figures exceed the previous period, signalling escalating violence",
		},
		{
			Name: "geographic_expansion",
			Condition: func(c analysis.ComparativeAnalysis) bool {
				return c.GeographicExpansion
			},
			Message: "Protest activity has spread to more regions than the previous period",
		},
	}
}
