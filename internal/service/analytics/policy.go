// internal/service/analytics/policy.go

package analytics

import (
	"maandamano/internal/domain/analysis"
)

// Scenario narratives and policy recommendations are static policy content,
// kept as lookup tables separable from the analytic logic and supplied to
// the predictor as configuration.

// DefaultScenarios returns the built-in electoral scenario narratives
func DefaultScenarios() analysis.Scenarios {
	return analysis.Scenarios{
		Best:   "Peaceful elections with high turnout, government makes concessions",
		Likely: "Contested elections with protests, regional variations in violence",
		Worst:  "Widespread election violence, potential constitutional crisis",
	}
}

// DefaultRecommendations returns the built-in policy recommendations
func DefaultRecommendations() []string {
	return []string{
		"Immediate economic relief measures targeting youth employment",
		"Transparent governance reforms to rebuild public trust",
		"Regional dialogue initiatives for identified hotspots",
		"Constitutional review process to address systemic issues",
		"Investment in social programs to reduce inequality",
	}
}
