package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/schoolops/finance-service/internal/logger"
	"github.com/schoolops/finance-service/internal/models"
)

// PayrollReadRepository serves teacher salary lookups.
type PayrollReadRepository struct {
	db *sqlx.DB
}

func NewPayrollReadRepository(db *sqlx.DB) *PayrollReadRepository {
	return &PayrollReadRepository{db: db}
}

// GetByTeacherID returns payroll details for one teacher, or nil when no
// such teacher exists.
func (r *PayrollReadRepository) GetByTeacherID(ctx context.Context, teacherID int64) (*models.PayrollInfo, error) {
	const query = `
		SELECT name, salary, email, numbers
		FROM teachers
		WHERE teacher_id = $1
	`

	var rows []models.PayrollInfo
	err := r.db.SelectContext(ctx, &rows, query, teacherID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{teacherID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return &rows[0], nil
}
