package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maandamano/internal/domain/analysis"
	"maandamano/internal/service/analytics"
)

type stubProvider struct {
	result *analytics.Result
}

func (s *stubProvider) LatestResult() *analytics.Result {
	return s.result
}

func stubResult() *analytics.Result {
	return &analytics.Result{
		Manifest: analysis.RunManifest{RunID: "run-1", RecordCount: 2},
		Report: analysis.Report{
			RunID:            "run-1",
			Title:            "title",
			ExecutiveSummary: []string{"line"},
			DetailedAnalysis: analysis.DetailedAnalysis{
				Prediction: analysis.RiskPrediction{
					RiskLevel: analysis.RiskHigh,
					Hotspots: []analysis.Hotspot{
						{Location: "Nairobi", MeanSentiment: -0.6, PeriodCount: 2},
					},
				},
			},
		},
	}
}

func TestGetReportServesLatestRun(t *testing.T) {
	handler := NewReportHandler(&stubProvider{result: stubResult()})

	recorder := httptest.NewRecorder()
	handler.GetReport(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/report", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var report analysis.Report
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &report))
	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, []string{"line"}, report.ExecutiveSummary)
}

func TestGetHotspotsServesRankedList(t *testing.T) {
	handler := NewReportHandler(&stubProvider{result: stubResult()})

	recorder := httptest.NewRecorder()
	handler.GetHotspots(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/hotspots", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var hotspots []analysis.Hotspot
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &hotspots))
	require.Len(t, hotspots, 1)
	assert.Equal(t, "Nairobi", hotspots[0].Location)
}

func TestHandlersReturnNotFoundBeforeFirstRun(t *testing.T) {
	handler := NewReportHandler(&stubProvider{})

	for _, serve := range []http.HandlerFunc{
		handler.GetReport, handler.GetRecords, handler.GetHotspots, handler.GetManifest,
	} {
		recorder := httptest.NewRecorder()
		serve(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	}
}
