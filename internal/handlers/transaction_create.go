package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/schoolops/finance-service/internal/logger"
	"github.com/schoolops/finance-service/internal/models"
	"github.com/schoolops/finance-service/internal/services"
)

// TransactionCreator defines the interface that the service must implement.
type TransactionCreator interface {
	CreateTransaction(ctx context.Context, accountID int64, txnType string, amount float64, mode, remarks string) (*models.Transaction, error)
}

// TransactionRequest represents the JSON body for creating a transaction
// swagger:model TransactionRequest
type TransactionRequest struct {
	// Amount, must be positive
	// required: true
	// default: 500.0
	Amount float64 `json:"amount"`

	// Transaction type
	// required: true
	// default: CREDIT
	Type string `json:"type"`

	// Payment mode
	// required: true
	// default: CASH
	Mode string `json:"mode"`

	// Optional remarks
	// default: Term fee payment
	Remarks string `json:"remarks"`
}

// TransactionErrorResponse represents an error response for transaction creation
// swagger:model TransactionErrorResponse
type TransactionErrorResponse struct {
	// Error message
	// default: Invalid amount, type or mode
	Error string `json:"error"`
}

// NewTransactionCreateHandler returns an HTTP handler appending a
// transaction to an account's ledger.
// @Summary Create transaction
// @Description Validates and stores a CREDIT or DEBIT entry against the account, then returns the created row.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param transactionRequest body handlers.TransactionRequest true "Transaction Request"
// @Success 201 {object} models.Transaction "Created transaction"
// @Failure 400 {object} handlers.TransactionErrorResponse "Invalid amount, type or mode"
// @Failure 404 {object} handlers.TransactionErrorResponse "Account not found"
// @Router /accounts/{id}/transactions [post]
// @Security BearerAuth
func NewTransactionCreateHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid account id"})
			return
		}

		var req TransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid request body"})
			return
		}

		txn, err := svc.CreateTransaction(r.Context(), accountID, req.Type, req.Amount, req.Mode, req.Remarks)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidTransaction):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid amount, type or mode"})
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Account not found"})
			default:
				logger.Log.Errorw("failed to create transaction", "accountID", accountID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(txn)
	}
}
