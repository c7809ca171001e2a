package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayrollReadRepository_GetByTeacherID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectQuery("SELECT name, salary, email, numbers FROM teachers WHERE teacher_id =").
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "salary", "email", "numbers"}).
			AddRow("Asha Verma", 48000.0, "asha@school.test", "9876543210"))

	repo := NewPayrollReadRepository(sqlxDB)

	info, err := repo.GetByTeacherID(context.Background(), 12)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "Asha Verma", info.Name)
	assert.Equal(t, 48000.0, info.Salary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollReadRepository_GetByTeacherIDNotFound(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectQuery("SELECT name, salary, email, numbers FROM teachers WHERE teacher_id =").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "salary", "email", "numbers"}))

	repo := NewPayrollReadRepository(sqlxDB)

	info, err := repo.GetByTeacherID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestPayrollReadRepository_GetByTeacherIDError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectQuery("SELECT name, salary, email, numbers FROM teachers WHERE teacher_id =").
		WillReturnError(errors.New("db down"))

	repo := NewPayrollReadRepository(sqlxDB)

	info, err := repo.GetByTeacherID(context.Background(), 12)
	assert.Error(t, err)
	assert.Nil(t, info)
}
