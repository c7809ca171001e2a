package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/schoolops/finance-service/internal/documents"
	"github.com/schoolops/finance-service/internal/logger"
)

// AuditBuilder defines the interface that the service must implement.
type AuditBuilder interface {
	Audit(ctx context.Context, generatedOn time.Time) (string, []byte, error)
}

// NewAuditHandler returns an HTTP handler streaming the full audit report
// PDF.
// @Summary Download audit report
// @Description Renders the paginated audit report over the full ledger and streams it as an attachment.
// @Tags reports
// @Produce application/pdf
// @Success 200 {file} file "Audit report PDF"
// @Failure 400 {object} handlers.DocumentErrorResponse "No transactions available for audit export"
// @Failure 503 {object} handlers.DocumentErrorResponse "Document engine unavailable"
// @Router /reports/audit [get]
// @Security BearerAuth
func NewAuditHandler(svc AuditBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, data, err := svc.Audit(r.Context(), time.Now())
		if err != nil {
			switch {
			case errors.Is(err, documents.ErrNoTransactions):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(DocumentErrorResponse{Error: "No transactions available for audit export"})
			case errors.Is(err, documents.ErrDocumentEngine):
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(DocumentErrorResponse{Error: "Document engine unavailable"})
			default:
				logger.Log.Errorw("failed to build audit report", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DocumentErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
