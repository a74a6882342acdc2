// cmd/analyzer/main.go

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"maandamano/internal/adapter/events"
	"maandamano/internal/adapter/snapshot"
	"maandamano/internal/config"
	"maandamano/internal/domain/geo"
	"maandamano/internal/domain/protest"
	"maandamano/internal/logging"
	"maandamano/internal/server"
	"maandamano/internal/service/analytics"
	"maandamano/internal/service/synth"
)

// latestRun holds the completed pipeline result served by the API
type latestRun struct {
	result *analytics.Result
}

// LatestResult returns the latest completed run
func (l *latestRun) LatestResult() *analytics.Result {
	return l.result
}

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logging.NewLoggerWithService("analyzer")

	// Assemble the pipeline
	gazetteer := geo.NewKenyaGazetteer()

	store, err := snapshot.NewStore(cfg.Snapshot.Dir, log)
	if err != nil {
		log.Fatalf("Failed to initialize snapshot store: %v", err)
	}

	records, err := loadRecords(cfg, gazetteer, store, log)
	if err != nil {
		log.Fatalf("Failed to load records: %v", err)
	}

	earlier := protest.Period(cfg.Analysis.EarlierPeriod)
	later := protest.Period(cfg.Analysis.LaterPeriod)

	aggregator := analytics.NewAggregator([]protest.Period{earlier, later}, log)

	predictor, err := analytics.NewPredictor(analytics.PredictorConfig{
		HotspotSentimentThreshold: cfg.Analysis.HotspotSentimentThreshold,
		SentimentDeltaThreshold:   cfg.Analysis.SentimentDeltaThreshold,
		Scenarios:                 analytics.DefaultScenarios(),
		Recommendations:           analytics.DefaultRecommendations(),
	}, log)
	if err != nil {
		log.Fatalf("Failed to initialize predictor: %v", err)
	}

	composer := analytics.NewComposer(analytics.ComposerConfig{})

	pipeline := analytics.NewPipeline(
		analytics.PipelineConfig{EarlierPeriod: earlier, LaterPeriod: later},
		aggregator,
		predictor,
		composer,
		log,
	)

	// Run the batch analysis
	result, err := pipeline.Run(records)
	if err != nil {
		log.Fatalf("Pipeline run failed: %v", err)
	}

	if cfg.Synth.ImportPath == "" {
		result.Manifest.Seed = cfg.Synth.Seed
	}

	// Export flat snapshots and the run manifest
	recordPath, err := store.ExportRecords(result.Manifest.RunID, result.Records)
	if err != nil {
		log.Fatalf("Failed to export record snapshot: %v", err)
	}
	result.Manifest.RecordSnapshot = recordPath

	reportPath, err := store.ExportReport(result.Manifest.RunID, result.Report)
	if err != nil {
		log.Fatalf("Failed to export report: %v", err)
	}
	result.Manifest.ReportSnapshot = reportPath

	if _, err := store.ExportManifest(result.Manifest); err != nil {
		log.Fatalf("Failed to export run manifest: %v", err)
	}

	for _, line := range result.Report.ExecutiveSummary {
		log.WithField("run_id", result.Manifest.RunID).Info(line)
	}

	// Notify downstream consumers over the event bus when configured
	if cfg.NATS.URL != "" {
		natsConn, err := initNATS(cfg.NATS, log)
		if err != nil {
			log.Fatalf("Failed to connect to NATS: %v", err)
		}
		defer natsConn.Close()

		publisher := events.NewPublisher(natsConn, cfg.NATS.EventsTopic)
		if err := publisher.PublishRunCompleted(result.Manifest, result.Report.DetailedAnalysis.Prediction.RiskLevel); err != nil {
			log.Errorf("Failed to publish run event: %v", err)
		}
	}

	if !cfg.Server.Enabled {
		return
	}

	// Serve the run artifacts to dashboard consumers until interrupted
	httpServer := server.NewServer(cfg.Server, &latestRun{result: result})

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Infof("Starting HTTP server on %s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-shutdown
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown error: %v", err)
	}

	log.Info("Shutdown complete")
}

// loadRecords either ingests an externally collected record snapshot or
// synthesizes the demonstration corpus.
func loadRecords(cfg config.Config, gazetteer *geo.Gazetteer, store *snapshot.Store, log *logrus.Logger) ([]protest.PostRecord, error) {
	if cfg.Synth.ImportPath != "" {
		records, rejected, err := store.ImportRecords(cfg.Synth.ImportPath)
		if err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{
			"path":     cfg.Synth.ImportPath,
			"records":  len(records),
			"rejected": rejected,
		}).Info("Imported record snapshot")
		return records, nil
	}

	generator := synth.NewGenerator(cfg.Synth.Seed, gazetteer, log)
	return generator.GenerateCorpus(synth.DefaultEvents())
}

// initNATS connects to the event bus
func initNATS(cfg config.NATSConfig, log *logrus.Logger) (*nats.Conn, error) {
	options := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.Timeout(cfg.ConnectTimeout),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warnf("NATS disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Infof("NATS reconnected to %s", nc.ConnectedUrl())
		}),
	}

	return nats.Connect(cfg.URL, options...)
}
