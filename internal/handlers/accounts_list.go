package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/schoolops/finance-service/internal/logger"
	"github.com/schoolops/finance-service/internal/models"
)

// AccountLister defines the interface that the service must implement.
type AccountLister interface {
	List(ctx context.Context) ([]models.Account, error)
}

// AccountsErrorResponse represents an error response for account endpoints
// swagger:model AccountsErrorResponse
type AccountsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewAccountsListHandler returns an HTTP handler listing all accounts with
// their nested transactions.
// @Summary List accounts
// @Description Returns every account with its transaction list. Accounts whose transactions could not be expanded are flagged degraded.
// @Tags accounts
// @Produce json
// @Success 200 {array} models.Account "Accounts"
// @Failure 500 {object} handlers.AccountsErrorResponse "Internal server error"
// @Router /accounts [get]
// @Security BearerAuth
func NewAccountsListHandler(svc AccountLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list accounts", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AccountsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(accounts)
	}
}
