package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/schoolops/finance-service/internal/logger"
	"github.com/schoolops/finance-service/internal/models"
)

// TransactionWriteRepository appends transactions to an account's ledger.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a transaction and moves the account balance by its signed
// amount (credit adds, debit subtracts) in the same statement sequence.
func (r *TransactionWriteRepository) Save(ctx context.Context, accountID int64, txnType string, amount float64, mode, remarks string) (*models.Transaction, error) {
	const insertQuery = `
		INSERT INTO transactions (account_id, type, amount, mode, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING transaction_id, account_id, type, amount, mode, remarks, created_at
	`

	executor := r.executor(ctx)

	delta := amount
	if txnType == models.TypeDebit {
		delta = -amount
	}

	var txn models.Transaction
	err := sqlx.GetContext(ctx, executor, &txn, insertQuery, accountID, txnType, amount, mode, remarks)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(insertQuery), " "),
		"args", []any{accountID, txnType, amount, mode, remarks},
		"result", txn.TransactionID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	const balanceQuery = `
		UPDATE accounts
		SET balance = COALESCE(balance, 0) + $2
		WHERE account_id = $1
	`

	_, err = executor.ExecContext(ctx, balanceQuery, accountID, delta)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(balanceQuery), " "),
		"args", []any{accountID, delta},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &txn, nil
}
