package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/schoolops/finance-service/internal/logger"
)

// SummaryProvider defines the interface that the service must implement.
// The payload is pre-serialized so cache hits pass through untouched.
type SummaryProvider interface {
	Summary(ctx context.Context) ([]byte, error)
}

// ReportErrorResponse represents an error response for report endpoints
// swagger:model ReportErrorResponse
type ReportErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewReportSummaryHandler returns an HTTP handler serving the fleet summary
// with its chart projections.
// @Summary Fleet report summary
// @Description Returns fleet-wide totals, monthly series, chart projections and the top outstanding dues.
// @Tags reports
// @Produce json
// @Success 200 {object} services.Summary "Fleet summary"
// @Failure 500 {object} handlers.ReportErrorResponse "Internal server error"
// @Router /reports/summary [get]
// @Security BearerAuth
func NewReportSummaryHandler(svc SummaryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := svc.Summary(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to build summary", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ReportErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(payload)
	}
}
