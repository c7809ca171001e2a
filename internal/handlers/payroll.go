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

// PayrollFetcher defines the interface that the service must implement.
type PayrollFetcher interface {
	Payroll(ctx context.Context, teacherID int64) (*models.PayrollInfo, error)
}

// PayrollErrorResponse represents an error response for payroll lookups
// swagger:model PayrollErrorResponse
type PayrollErrorResponse struct {
	// Error message
	// default: Teacher not found
	Error string `json:"error"`
}

// NewPayrollHandler returns an HTTP handler for teacher payroll lookups.
// @Summary Get teacher payroll
// @Description Returns name, salary and contact details for one teacher.
// @Tags accounts
// @Produce json
// @Param teacherId path int true "Teacher ID"
// @Success 200 {object} models.PayrollInfo "Payroll details"
// @Failure 400 {object} handlers.PayrollErrorResponse "Invalid teacher id"
// @Failure 404 {object} handlers.PayrollErrorResponse "Teacher not found"
// @Router /accounts/payroll/{teacherId} [get]
// @Security BearerAuth
func NewPayrollHandler(svc PayrollFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teacherID, err := strconv.ParseInt(chi.URLParam(r, "teacherId"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PayrollErrorResponse{Error: "Invalid teacher id"})
			return
		}

		info, err := svc.Payroll(r.Context(), teacherID)
		if err != nil {
			if errors.Is(err, services.ErrAccountNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PayrollErrorResponse{Error: "Teacher not found"})
				return
			}
			logger.Log.Errorw("failed to fetch payroll", "teacherID", teacherID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PayrollErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(info)
	}
}
