// internal/adapter/events/publisher.go

package events

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"maandamano/internal/domain/analysis"
)

// RunCompleted is the event payload published after a pipeline run, letting
// dashboard and map renderers pick up fresh snapshots without polling.
type RunCompleted struct {
	RunID          string             `json:"run_id"`
	RiskLevel      analysis.RiskLevel `json:"risk_level"`
	RecordSnapshot string             `json:"record_snapshot"`
	ReportSnapshot string             `json:"report_snapshot"`
	RecordCount    int                `json:"record_count"`
}

// Publisher publishes pipeline events to the event bus. A nil connection
// disables publishing, so batch runs work without a broker.
type Publisher struct {
	conn  *nats.Conn
	topic string
}

// NewPublisher creates an event publisher on the given topic
func NewPublisher(conn *nats.Conn, topic string) *Publisher {
	return &Publisher{
		conn:  conn,
		topic: topic,
	}
}

// PublishRunCompleted publishes a run-completed event for a manifest
func (p *Publisher) PublishRunCompleted(manifest analysis.RunManifest, riskLevel analysis.RiskLevel) error {
	if p.conn == nil {
		return nil
	}

	payload, err := json.Marshal(RunCompleted{
		RunID:          manifest.RunID,
		RiskLevel:      riskLevel,
		RecordSnapshot: manifest.RecordSnapshot,
		ReportSnapshot: manifest.ReportSnapshot,
		RecordCount:    manifest.RecordCount,
	})
	if err != nil {
		return fmt.Errorf("marshaling run event: %w", err)
	}

	return p.conn.Publish(fmt.Sprintf("%s.completed", p.topic), payload)
}
