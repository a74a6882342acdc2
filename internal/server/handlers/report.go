// internal/server/handlers/report.go

package handlers

import (
	"encoding/json"
	"net/http"

	"maandamano/internal/service/analytics"
)

// ResultProvider exposes the latest completed pipeline run
type ResultProvider interface {
	LatestResult() *analytics.Result
}

// ReportHandler serves the artifacts of the latest run to dashboard and map
// consumers. It never computes anything; it only reads completed results.
type ReportHandler struct {
	provider ResultProvider
}

// NewReportHandler creates a new report handler
func NewReportHandler(provider ResultProvider) *ReportHandler {
	return &ReportHandler{
		provider: provider,
	}
}

// GetReport returns the structured report of the latest run
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	result := h.provider.LatestResult()
	if result == nil {
		respondWithError(w, http.StatusNotFound, "No completed run available")
		return
	}

	respondWithJSON(w, http.StatusOK, result.Report)
}

// GetRecords returns the annotated record set of the latest run
func (h *ReportHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	result := h.provider.LatestResult()
	if result == nil {
		respondWithError(w, http.StatusNotFound, "No completed run available")
		return
	}

	respondWithJSON(w, http.StatusOK, result.Records)
}

// GetHotspots returns the ranked hotspot list of the latest run
func (h *ReportHandler) GetHotspots(w http.ResponseWriter, r *http.Request) {
	result := h.provider.LatestResult()
	if result == nil {
		respondWithError(w, http.StatusNotFound, "No completed run available")
		return
	}

	respondWithJSON(w, http.StatusOK, result.Report.DetailedAnalysis.Prediction.Hotspots)
}

// GetManifest returns the run manifest of the latest run
func (h *ReportHandler) GetManifest(w http.ResponseWriter, r *http.Request) {
	result := h.provider.LatestResult()
	if result == nil {
		respondWithError(w, http.StatusNotFound, "No completed run available")
		return
	}

	respondWithJSON(w, http.StatusOK, result.Manifest)
}

// Helper for JSON responses
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper for error responses
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
