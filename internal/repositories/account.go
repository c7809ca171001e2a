package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/schoolops/finance-service/internal/logger"
	"github.com/schoolops/finance-service/internal/models"
)

// AccountReadRepository loads accounts with their nested transaction lists.
// Accounts come back ordered by account_id and transactions in insertion
// order, which is the iteration order the reporting core sums in.
type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// GetAll returns every account with its transactions expanded.
func (r *AccountReadRepository) GetAll(ctx context.Context) ([]models.Account, error) {
	const query = `
		SELECT account_id, owner_name, username, balance, dues, created_at
		FROM accounts
		ORDER BY account_id
	`

	var accounts []models.Account
	err := r.db.SelectContext(ctx, &accounts, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(accounts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return r.attachTransactions(ctx, accounts)
}

// Search returns accounts whose id, owner name or username matches the
// query, with transactions expanded.
func (r *AccountReadRepository) Search(ctx context.Context, search string) ([]models.Account, error) {
	const query = `
		SELECT account_id, owner_name, username, balance, dues, created_at
		FROM accounts
		WHERE CAST(account_id AS TEXT) LIKE '%' || $1 || '%'
		   OR LOWER(owner_name) LIKE '%' || LOWER($1) || '%'
		   OR LOWER(username) LIKE '%' || LOWER($1) || '%'
		ORDER BY account_id
	`

	var accounts []models.Account
	err := r.db.SelectContext(ctx, &accounts, query, search)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{search},
		"result", len(accounts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return r.attachTransactions(ctx, accounts)
}

// GetByID returns one account with its transactions, or nil when no such
// account exists.
func (r *AccountReadRepository) GetByID(ctx context.Context, accountID int64) (*models.Account, error) {
	const query = `
		SELECT account_id, owner_name, username, balance, dues, created_at
		FROM accounts
		WHERE account_id = $1
	`

	var accounts []models.Account
	err := r.db.SelectContext(ctx, &accounts, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", len(accounts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, nil
	}

	expanded, err := r.attachTransactions(ctx, accounts)
	if err != nil {
		return nil, err
	}
	return &expanded[0], nil
}

// attachTransactions loads the transaction lists for the given accounts in
// one query and groups them in memory. Accounts whose transactions cannot
// be loaded are marked degraded rather than dropped.
func (r *AccountReadRepository) attachTransactions(ctx context.Context, accounts []models.Account) ([]models.Account, error) {
	if len(accounts) == 0 {
		return accounts, nil
	}

	ids := make([]int64, 0, len(accounts))
	for _, account := range accounts {
		ids = append(ids, account.AccountID)
	}

	query, args, err := sqlx.In(`
		SELECT transaction_id, account_id, type, amount, mode, remarks, created_at
		FROM transactions
		WHERE account_id IN (?)
		ORDER BY account_id, transaction_id
	`, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var txns []models.Transaction
	err = r.db.SelectContext(ctx, &txns, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ids},
		"result", len(txns),
		"error", err,
	)

	if err != nil {
		// Degraded path: callers still get the account list, flagged so
		// aggregation does not pretend the empty lists are real.
		for i := range accounts {
			accounts[i].Degraded = true
		}
		return accounts, nil
	}

	byAccount := make(map[int64][]models.Transaction, len(accounts))
	for _, txn := range txns {
		byAccount[txn.AccountID] = append(byAccount[txn.AccountID], txn)
	}
	for i := range accounts {
		accounts[i].Transactions = byAccount[accounts[i].AccountID]
	}

	return accounts, nil
}
