package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/schoolops/finance-service/internal/logger"
	"github.com/schoolops/finance-service/internal/models"
)

// AccountSearcher defines the interface that the service must implement.
type AccountSearcher interface {
	Search(ctx context.Context, query string) ([]models.Account, error)
}

// NewAccountsSearchHandler returns an HTTP handler searching accounts by
// id, owner name or username. An empty query returns the full list.
// @Summary Search accounts
// @Description Returns accounts whose id, owner name or username contains the query string.
// @Tags accounts
// @Produce json
// @Param query query string false "Search term"
// @Success 200 {array} models.Account "Matching accounts"
// @Failure 500 {object} handlers.AccountsErrorResponse "Internal server error"
// @Router /accounts/search [post]
// @Security BearerAuth
func NewAccountsSearchHandler(svc AccountSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("query"))

		accounts, err := svc.Search(r.Context(), query)
		if err != nil {
			logger.Log.Errorw("failed to search accounts", "query", query, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AccountsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(accounts)
	}
}
