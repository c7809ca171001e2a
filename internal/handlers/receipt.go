package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/schoolops/finance-service/internal/documents"
	"github.com/schoolops/finance-service/internal/logger"
	"github.com/schoolops/finance-service/internal/services"
)

// ReceiptBuilder defines the interface that the service must implement.
type ReceiptBuilder interface {
	Receipt(ctx context.Context, accountID, txnID int64, generatedOn time.Time) (string, []byte, error)
}

// DocumentErrorResponse represents an error response for PDF exports
// swagger:model DocumentErrorResponse
type DocumentErrorResponse struct {
	// Error message
	// default: Document engine unavailable
	Error string `json:"error"`
}

// NewReceiptHandler returns an HTTP handler streaming a transaction receipt
// PDF.
// @Summary Download transaction receipt
// @Description Renders a single-transaction receipt PDF and streams it as an attachment.
// @Tags reports
// @Produce application/pdf
// @Param id path int true "Account ID"
// @Param txnId path int true "Transaction ID"
// @Success 200 {file} file "Receipt PDF"
// @Failure 404 {object} handlers.DocumentErrorResponse "Account or transaction not found"
// @Failure 503 {object} handlers.DocumentErrorResponse "Document engine unavailable"
// @Router /accounts/{id}/transactions/{txnId}/receipt [get]
// @Security BearerAuth
func NewReceiptHandler(svc ReceiptBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DocumentErrorResponse{Error: "Invalid account id"})
			return
		}
		txnID, err := strconv.ParseInt(chi.URLParam(r, "txnId"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DocumentErrorResponse{Error: "Invalid transaction id"})
			return
		}

		filename, data, err := svc.Receipt(r.Context(), accountID, txnID, time.Now())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAccountNotFound), errors.Is(err, services.ErrTransactionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DocumentErrorResponse{Error: "Account or transaction not found"})
			case errors.Is(err, documents.ErrDocumentEngine):
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(DocumentErrorResponse{Error: "Document engine unavailable"})
			default:
				logger.Log.Errorw("failed to build receipt", "accountID", accountID, "txnID", txnID, "error", err)
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
