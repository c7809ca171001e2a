package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionWriteRepository_SaveCredit(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(int64(5), "CREDIT", 200.0, "CASH", "Term fee").
		WillReturnRows(transactionRows().AddRow(11, 5, "CREDIT", 200.0, "CASH", "Term fee", now))
	mock.ExpectExec("UPDATE accounts SET balance").
		WithArgs(int64(5), 200.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewTransactionWriteRepository(sqlxDB, nil)

	txn, err := repo.Save(context.Background(), 5, "CREDIT", 200, "CASH", "Term fee")
	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, int64(11), txn.TransactionID)
	assert.Equal(t, 200.0, txn.Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionWriteRepository_SaveDebitNegatesDelta(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(int64(5), "DEBIT", 75.0, "ONLINE", "").
		WillReturnRows(transactionRows().AddRow(12, 5, "DEBIT", 75.0, "ONLINE", "", time.Now()))
	mock.ExpectExec("UPDATE accounts SET balance").
		WithArgs(int64(5), -75.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewTransactionWriteRepository(sqlxDB, nil)

	txn, err := repo.Save(context.Background(), 5, "DEBIT", 75, "ONLINE", "")
	require.NoError(t, err)
	assert.Equal(t, int64(12), txn.TransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionWriteRepository_SaveInsertError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectQuery("INSERT INTO transactions").
		WillReturnError(errors.New("constraint violated"))

	repo := NewTransactionWriteRepository(sqlxDB, nil)

	txn, err := repo.Save(context.Background(), 5, "CREDIT", 10, "CASH", "")
	assert.Error(t, err)
	assert.Nil(t, txn)
}

func TestTransactionWriteRepository_SaveBalanceUpdateError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectQuery("INSERT INTO transactions").
		WillReturnRows(transactionRows().AddRow(13, 5, "CREDIT", 10.0, "CASH", "", time.Now()))
	mock.ExpectExec("UPDATE accounts SET balance").
		WillReturnError(errors.New("db down"))

	repo := NewTransactionWriteRepository(sqlxDB, nil)

	txn, err := repo.Save(context.Background(), 5, "CREDIT", 10, "CASH", "")
	assert.Error(t, err)
	assert.Nil(t, txn)
}

func TestTransactionWriteRepository_SaveUsesContextTx(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO transactions").
		WillReturnRows(transactionRows().AddRow(14, 5, "CREDIT", 10.0, "CASH", "", time.Now()))
	mock.ExpectExec("UPDATE accounts SET balance").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := sqlxDB.Beginx()
	require.NoError(t, err)

	getter := func(ctx context.Context) *sqlx.Tx { return tx }
	repo := NewTransactionWriteRepository(sqlxDB, getter)

	txn, err := repo.Save(context.Background(), 5, "CREDIT", 10, "CASH", "")
	require.NoError(t, err)
	assert.Equal(t, int64(14), txn.TransactionID)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
