package snapshot

import (
	"encoding/json"
	"io"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maandamano/internal/domain/analysis"
	"maandamano/internal/domain/protest"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store, err := NewStore(t.TempDir(), logger)
	require.NoError(t, err)
	return store
}

func sampleRecords() []protest.PostRecord {
	return []protest.PostRecord{
		{
			ID:          "2024_post_0",
			Period:      protest.Period2024,
			EventType:   protest.EventFinanceBill,
			Timestamp:   time.Date(2024, time.June, 25, 0, 0, 0, 0, time.UTC),
			Text:        "Peaceful protests in Nairobi, but police brutality continues #RejectFinanceBill2024",
			Location:    "Nairobi",
			Coordinates: &protest.Coordinates{Latitude: -1.2921, Longitude: 36.8219},
			Engagement:  protest.Engagement{Shares: 450, Likes: 1200},
			// Deliberately awkward float to exercise lossless formatting
			SentimentPolarity: -0.8234567890123456,
			SentimentLabel:    protest.SentimentNegative,
			CasualtyContext:   39,
			Intensity:         protest.IntensityHigh,
		},
		{
			ID:        "2025_ongoing_1",
			Period:    protest.Period2025,
			EventType: protest.EventOngoing,
			Timestamp: time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC),
			Text:      "Cost of living still unbearable in Thika #KenyaProtests #EconomicJustice",
			Location:  "Thika",
			// No coordinates: the optional pair must survive as absent
			Engagement:        protest.Engagement{Shares: 20, Likes: 55},
			SentimentPolarity: -0.1,
			SentimentLabel:    protest.SentimentNeutral,
			CasualtyContext:   0,
			Intensity:         protest.IntensityMedium,
		},
	}
}

func TestRecordSnapshotRoundTrip(t *testing.T) {
	store := newTestStore(t)
	records := sampleRecords()

	path, err := store.ExportRecords("run-1", records)
	require.NoError(t, err)

	restored, rejected, err := store.ImportRecords(path)
	require.NoError(t, err)
	assert.Zero(t, rejected)
	assert.Equal(t, records, restored)
}

func TestImportCountsRejectedRows(t *testing.T) {
	store := newTestStore(t)

	records := sampleRecords()
	records[1].SentimentLabel = "SHOUTING" // fails schema validation on import

	path, err := store.ExportRecords("run-2", records)
	require.NoError(t, err)

	restored, rejected, err := store.ImportRecords(path)
	require.NoError(t, err)
	assert.Equal(t, 1, rejected)
	require.Len(t, restored, 1)
	assert.Equal(t, "2024_post_0", restored[0].ID)
}

func TestImportSkipsMalformedRows(t *testing.T) {
	store := newTestStore(t)

	path, err := store.ExportRecords("run-4", sampleRecords())
	require.NoError(t, err)

	// A truncated line must cost one rejection, not the whole file
	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = file.WriteString("bad,row\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	restored, rejected, err := store.ImportRecords(path)
	require.NoError(t, err)
	assert.Equal(t, 1, rejected)
	assert.Len(t, restored, 2)
}

func TestImportMissingFileFails(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.ImportRecords("does/not/exist.csv")
	assert.Error(t, err)
}

func TestExportReportAndManifest(t *testing.T) {
	store := newTestStore(t)

	report := analysis.Report{
		RunID:            "run-3",
		Title:            "title",
		ExecutiveSummary: []string{"line one"},
		GeneratedAt:      time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		Methodology:      "method",
	}

	reportPath, err := store.ExportReport(report.RunID, report)
	require.NoError(t, err)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	var restored analysis.Report
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, report.RunID, restored.RunID)
	assert.Equal(t, report.ExecutiveSummary, restored.ExecutiveSummary)

	manifest := analysis.RunManifest{
		RunID:          "run-3",
		Seed:           42,
		GeneratedAt:    report.GeneratedAt,
		RecordCount:    650,
		RecordSnapshot: "records_run-3.csv",
		ReportSnapshot: reportPath,
	}

	manifestPath, err := store.ExportManifest(manifest)
	require.NoError(t, err)

	data, err = os.ReadFile(manifestPath)
	require.NoError(t, err)

	var restoredManifest analysis.RunManifest
	require.NoError(t, json.Unmarshal(data, &restoredManifest))
	assert.Equal(t, manifest, restoredManifest)
}
