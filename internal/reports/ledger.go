package reports

import (
	"sort"

	"github.com/schoolops/finance-service/internal/models"
)

// LedgerEntry is one transaction in the global ledger, annotated with its
// owning account.
type LedgerEntry struct {
	AccountID   int64              `json:"accountId"`
	Owner       string             `json:"owner"`
	Transaction models.Transaction `json:"transaction"`
}

// MergeLedger flattens all accounts' transactions into one sequence sorted
// by date descending. Entries without a usable date sort to the bottom.
// The sort is stable: equal dates keep account order, then transaction
// order within the account.
func MergeLedger(accounts []models.Account) []LedgerEntry {
	var merged []LedgerEntry
	for _, account := range accounts {
		for _, txn := range account.Transactions {
			merged = append(merged, LedgerEntry{
				AccountID:   account.AccountID,
				Owner:       account.Owner(),
				Transaction: txn,
			})
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return ledgerSortKey(merged[i]) > ledgerSortKey(merged[j])
	})
	return merged
}

// ledgerSortKey maps a missing date to epoch zero so undated entries rank
// below every dated one.
func ledgerSortKey(entry LedgerEntry) int64 {
	date := TransactionDate(entry.Transaction)
	if date.IsZero() {
		return 0
	}
	return date.UnixMilli()
}
