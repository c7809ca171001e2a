package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/schoolops/finance-service/internal/logger"
	"github.com/schoolops/finance-service/internal/reports"
)

// LedgerProvider defines the interface that the service must implement.
type LedgerProvider interface {
	Ledger(ctx context.Context) ([]reports.LedgerEntry, error)
}

// NewReportLedgerHandler returns an HTTP handler serving the merged global
// ledger, newest first.
// @Summary Global transaction ledger
// @Description Returns every transaction across all accounts, sorted by date descending with undated entries last.
// @Tags reports
// @Produce json
// @Success 200 {array} reports.LedgerEntry "Merged ledger"
// @Failure 500 {object} handlers.ReportErrorResponse "Internal server error"
// @Router /reports/ledger [get]
// @Security BearerAuth
func NewReportLedgerHandler(svc LedgerProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.Ledger(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to merge ledger", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ReportErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(entries)
	}
}
