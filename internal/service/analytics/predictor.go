// internal/service/analytics/predictor.go

package analytics

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"maandamano/internal/domain/analysis"
	"maandamano/internal/domain/protest"
)

// PredictorConfig contains configuration for the risk predictor
type PredictorConfig struct {
	// HotspotSentimentThreshold is the all-periods mean sentiment below
	// which a multi-period location qualifies as a hotspot.
	HotspotSentimentThreshold float64

	// SentimentDeltaThreshold is the sentiment delta below which the
	// deterioration rule triggers.
	SentimentDeltaThreshold float64

	Scenarios       analysis.Scenarios
	Recommendations []string
}

// Predictor applies the risk rule set to a comparative analysis plus the raw
// records, producing a risk level, triggered factors and ranked hotspots.
type Predictor struct {
	config PredictorConfig
	rules  []RiskRule
	log    *logrus.Logger
}

// NewPredictor creates a risk predictor, validating that every threshold the
// rule set references is defined.
func NewPredictor(config PredictorConfig, log *logrus.Logger) (*Predictor, error) {
	if config.HotspotSentimentThreshold >= 0 {
		return nil, fmt.Errorf("%w: hotspot sentiment threshold must be negative", analysis.ErrInvalidThreshold)
	}
	if config.SentimentDeltaThreshold >= 0 {
		return nil, fmt.Errorf("%w: sentiment delta threshold must be negative", analysis.ErrInvalidThreshold)
	}

	return &Predictor{
		config: config,
		rules:  DefaultRules(config.SentimentDeltaThreshold),
		log:    log,
	}, nil
}

// Predict produces the risk prediction for a comparative analysis
func (p *Predictor) Predict(records []protest.PostRecord, comparative analysis.ComparativeAnalysis) analysis.RiskPrediction {
	factors := make([]string, 0, len(p.rules))
	triggered := 0
	for _, rule := range p.rules {
		if rule.Condition(comparative) {
			factors = append(factors, rule.Message)
			triggered++
		}
	}

	prediction := analysis.RiskPrediction{
		RiskLevel:       riskLevel(triggered),
		KeyFactors:      factors,
		Hotspots:        p.hotspots(records),
		Scenarios:       p.config.Scenarios,
		Recommendations: p.config.Recommendations,
	}

	p.log.WithFields(logrus.Fields{
		"risk_level": prediction.RiskLevel,
		"factors":    triggered,
		"hotspots":   len(prediction.Hotspots),
	}).Info("Risk prediction complete")

	return prediction
}

// riskLevel maps the count of triggered rules to a qualitative label. Each
// rule contributes equally; three or more concurrent factors read as severe.
func riskLevel(triggered int) analysis.RiskLevel {
	switch {
	case triggered >= 3:
		return analysis.RiskSevere
	case triggered == 2:
		return analysis.RiskHigh
	case triggered == 1:
		return analysis.RiskElevated
	default:
		return analysis.RiskModerate
	}
}

// hotspots flags locations with persistently negative sentiment. A location
// qualifies when it has data in more than one period and the mean of its
// per-period sentiment means is below the configured threshold. The result
// is ranked most negative first.
func (p *Predictor) hotspots(records []protest.PostRecord) []analysis.Hotspot {
	type periodStats struct {
		sum   float64
		count int
	}

	byLocation := make(map[string]map[protest.Period]*periodStats)
	for _, record := range records {
		periods, ok := byLocation[record.Location]
		if !ok {
			periods = make(map[protest.Period]*periodStats)
			byLocation[record.Location] = periods
		}
		stats, ok := periods[record.Period]
		if !ok {
			stats = &periodStats{}
			periods[record.Period] = stats
		}
		stats.sum += record.SentimentPolarity
		stats.count++
	}

	hotspots := make([]analysis.Hotspot, 0)
	for location, periods := range byLocation {
		if len(periods) <= 1 {
			continue
		}

		var meanSum float64
		for _, stats := range periods {
			meanSum += stats.sum / float64(stats.count)
		}
		overall := meanSum / float64(len(periods))

		if overall < p.config.HotspotSentimentThreshold {
			hotspots = append(hotspots, analysis.Hotspot{
				Location:      location,
				MeanSentiment: overall,
				PeriodCount:   len(periods),
			})
		}
	}

	sort.Slice(hotspots, func(i, j int) bool {
		if hotspots[i].MeanSentiment != hotspots[j].MeanSentiment {
			return hotspots[i].MeanSentiment < hotspots[j].MeanSentiment
		}
		return hotspots[i].Location < hotspots[j].Location
	})

	return hotspots
}
