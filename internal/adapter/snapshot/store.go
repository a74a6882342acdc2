// internal/adapter/snapshot/store.go

package snapshot

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"maandamano/internal/domain/analysis"
	"maandamano/internal/domain/protest"
)

// Column layout of a record snapshot. Every PostRecord field round-trips
// losslessly; optional coordinates serialize as empty cells.
var recordHeader = []string{
	"id", "period", "event_type", "timestamp", "text", "location",
	"latitude", "longitude", "shares", "likes",
	"sentiment_polarity", "sentiment_label", "casualty_context", "intensity",
}

// Store writes and reads flat snapshot files: the annotated record set as
// CSV, the report and run manifest as JSON. Files are keyed by run id, not
// by timestamp.
type Store struct {
	dir string
	log *logrus.Logger
}

// NewStore creates a snapshot store rooted at dir
func NewStore(dir string, log *logrus.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating snapshot directory: %w", err)
	}

	return &Store{
		dir: dir,
		log: log,
	}, nil
}

// ExportRecords writes the annotated record snapshot for a run and returns
// its path.
func (s *Store) ExportRecords(runID string, records []protest.PostRecord) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("records_%s.csv", runID))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating record snapshot: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(recordHeader); err != nil {
		return "", fmt.Errorf("writing snapshot header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(recordRow(record)); err != nil {
			return "", fmt.Errorf("writing record %s: %w", record.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flushing record snapshot: %w", err)
	}

	s.log.WithFields(logrus.Fields{"path": path, "records": len(records)}).Info("Exported record snapshot")
	return path, nil
}

// ImportRecords reads a record snapshot back into memory. Rows failing to
// parse or validate are rejected and counted rather than aborting the
// import; the rejection count is returned alongside the records.
func (s *Store) ImportRecords(path string) ([]protest.PostRecord, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening record snapshot: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Column counts are checked per row in parseRecordRow; a short or long
	// line is rejected and counted, not a reason to fail the whole import.
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("reading record snapshot: %w", err)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("record snapshot %s is empty", path)
	}

	records := make([]protest.PostRecord, 0, len(rows)-1)
	rejected := 0

	for i, row := range rows[1:] {
		record, err := parseRecordRow(row)
		if err == nil {
			err = protest.Validate(record)
		}
		if err != nil {
			rejected++
			s.log.WithFields(logrus.Fields{"row": i + 2, "error": err.Error()}).Debug("Rejected snapshot row")
			continue
		}
		records = append(records, record)
	}

	if rejected > 0 {
		s.log.WithField("rejected", rejected).Warn("Rejected rows while importing record snapshot")
	}

	return records, rejected, nil
}

// ExportReport writes the structured report for a run and returns its path
func (s *Store) ExportReport(runID string, report analysis.Report) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("report_%s.json", runID))
	if err := writeJSON(path, report); err != nil {
		return "", err
	}

	s.log.WithField("path", path).Info("Exported report snapshot")
	return path, nil
}

// ExportManifest writes the run manifest and returns its path
func (s *Store) ExportManifest(manifest analysis.RunManifest) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("manifest_%s.json", manifest.RunID))
	if err := writeJSON(path, manifest); err != nil {
		return "", err
	}
	return path, nil
}

func writeJSON(path string, payload interface{}) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func recordRow(r protest.PostRecord) []string {
	latitude, longitude := "", ""
	if r.Coordinates != nil {
		latitude = formatFloat(r.Coordinates.Latitude)
		longitude = formatFloat(r.Coordinates.Longitude)
	}

	return []string{
		r.ID,
		string(r.Period),
		string(r.EventType),
		r.Timestamp.Format(time.RFC3339Nano),
		r.Text,
		r.Location,
		latitude,
		longitude,
		strconv.Itoa(r.Engagement.Shares),
		strconv.Itoa(r.Engagement.Likes),
		formatFloat(r.SentimentPolarity),
		string(r.SentimentLabel),
		strconv.Itoa(r.CasualtyContext),
		string(r.Intensity),
	}
}

func parseRecordRow(row []string) (protest.PostRecord, error) {
	if len(row) != len(recordHeader) {
		return protest.PostRecord{}, fmt.Errorf("expected %d columns, got %d", len(recordHeader), len(row))
	}

	timestamp, err := time.Parse(time.RFC3339Nano, row[3])
	if err != nil {
		return protest.PostRecord{}, fmt.Errorf("parsing timestamp: %w", err)
	}

	shares, err := strconv.Atoi(row[8])
	if err != nil {
		return protest.PostRecord{}, fmt.Errorf("parsing shares: %w", err)
	}
	likes, err := strconv.Atoi(row[9])
	if err != nil {
		return protest.PostRecord{}, fmt.Errorf("parsing likes: %w", err)
	}
	polarity, err := strconv.ParseFloat(row[10], 64)
	if err != nil {
		return protest.PostRecord{}, fmt.Errorf("parsing sentiment polarity: %w", err)
	}
	casualties, err := strconv.Atoi(row[12])
	if err != nil {
		return protest.PostRecord{}, fmt.Errorf("parsing casualty context: %w", err)
	}

	record := protest.PostRecord{
		ID:        row[0],
		Period:    protest.Period(row[1]),
		EventType: protest.EventType(row[2]),
		Timestamp: timestamp,
		Text:      row[4],
		Location:  row[5],
		Engagement: protest.Engagement{
			Shares: shares,
			Likes:  likes,
		},
		SentimentPolarity: polarity,
		SentimentLabel:    protest.SentimentLabel(row[11]),
		CasualtyContext:   casualties,
		Intensity:         protest.Intensity(row[13]),
	}

	if row[6] != "" || row[7] != "" {
		latitude, err := strconv.ParseFloat(row[6], 64)
		if err != nil {
			return protest.PostRecord{}, fmt.Errorf("parsing latitude: %w", err)
		}
		longitude, err := strconv.ParseFloat(row[7], 64)
		if err != nil {
			return protest.PostRecord{}, fmt.Errorf("parsing longitude: %w", err)
		}
		record.Coordinates = &protest.Coordinates{Latitude: latitude, Longitude: longitude}
	}

	return record, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
