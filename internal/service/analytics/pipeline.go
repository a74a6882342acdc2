// internal/service/analytics/pipeline.go

package analytics

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"maandamano/internal/domain/analysis"
	"maandamano/internal/domain/protest"
)

// PipelineConfig contains configuration for the analysis pipeline
type PipelineConfig struct {
	EarlierPeriod protest.Period
	LaterPeriod   protest.Period
}

// Pipeline runs the full analytic chain over a record set: validation,
// per-period aggregation, evolution comparison, risk prediction and report
// composition. Stages consume the prior stage's immutable output; nothing is
// mutated after creation.
type Pipeline struct {
	config     PipelineConfig
	aggregator *Aggregator
	predictor  *Predictor
	composer   *Composer
	log        *logrus.Logger
}

// Result bundles the artifacts of one pipeline run
type Result struct {
	Manifest analysis.RunManifest
	Records  []protest.PostRecord
	Report   analysis.Report
}

// NewPipeline creates an analysis pipeline
func NewPipeline(
	config PipelineConfig,
	aggregator *Aggregator,
	predictor *Predictor,
	composer *Composer,
	log *logrus.Logger,
) *Pipeline {
	return &Pipeline{
		config:     config,
		aggregator: aggregator,
		predictor:  predictor,
		composer:   composer,
		log:        log,
	}
}

// Run executes the pipeline over a record collection. Records failing schema
// validation are rejected and counted, never aborting the batch; structural
// failures such as an empty period surface as errors.
func (p *Pipeline) Run(records []protest.PostRecord) (*Result, error) {
	runID := uuid.New().String()
	accepted, rejected := p.screen(records)

	// Period aggregates are independent; compute them in parallel and join
	// before the comparison.
	var (
		wg               sync.WaitGroup
		earlier, later   analysis.PeriodAggregate
		earlErr, lateErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		earlier, earlErr = p.aggregator.Aggregate(accepted, p.config.EarlierPeriod)
	}()
	go func() {
		defer wg.Done()
		later, lateErr = p.aggregator.Aggregate(accepted, p.config.LaterPeriod)
	}()
	wg.Wait()

	if earlErr != nil {
		return nil, fmt.Errorf("aggregating %s: %w", p.config.EarlierPeriod, earlErr)
	}
	if lateErr != nil {
		return nil, fmt.Errorf("aggregating %s: %w", p.config.LaterPeriod, lateErr)
	}

	comparative, err := Compare(earlier, later)
	if err != nil {
		return nil, err
	}

	prediction := p.predictor.Predict(accepted, comparative)

	now := time.Now().UTC()
	report := p.composer.Compose(runID, earlier, later, comparative, prediction, now)

	p.log.WithFields(logrus.Fields{
		"run_id":     runID,
		"records":    len(accepted),
		"rejected":   rejected,
		"risk_level": prediction.RiskLevel,
	}).Info("Pipeline run complete")

	return &Result{
		Manifest: analysis.RunManifest{
			RunID:         runID,
			GeneratedAt:   now,
			RecordCount:   len(accepted),
			RejectedCount: rejected,
		},
		Records: accepted,
		Report:  report,
	}, nil
}

// screen rejects records that fail schema validation or carry a period
// outside the comparison pair, returning the accepted set plus the rejection
// count. The period check keeps stray tags out of downstream stages that
// group by period, such as the hotspot ranking.
func (p *Pipeline) screen(records []protest.PostRecord) ([]protest.PostRecord, int) {
	accepted := make([]protest.PostRecord, 0, len(records))
	rejected := 0

	for _, record := range records {
		err := protest.Validate(record)
		if err == nil && record.Period != p.config.EarlierPeriod && record.Period != p.config.LaterPeriod {
			err = fmt.Errorf("%w: %q is outside the comparison pair", analysis.ErrUnknownPeriod, record.Period)
		}
		if err != nil {
			rejected++
			p.log.WithFields(logrus.Fields{
				"record_id": record.ID,
				"error":     err.Error(),
			}).Debug("Rejected record")
			continue
		}
		accepted = append(accepted, record)
	}

	if rejected > 0 {
		p.log.WithField("rejected", rejected).Warn("Rejected records failing schema validation")
	}

	return accepted, rejected
}
