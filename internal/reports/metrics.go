// Package reports computes derived financial figures from account and
// transaction snapshots. Every function is pure: inputs are never mutated
// and identical inputs produce identical outputs.
package reports

import (
	"math"
	"strings"
	"time"

	"github.com/schoolops/finance-service/internal/models"
)

// Resolved is a numeric figure together with its provenance. Authoritative
// figures come from a server-supplied field; derived figures are computed
// from the transaction list.
type Resolved struct {
	Value         float64 `json:"value"`
	Authoritative bool    `json:"authoritative"`
}

// Metrics holds the derived figures for a single account. Recomputed on
// every request, never persisted.
type Metrics struct {
	Credits      float64  `json:"credits"`
	Debits       float64  `json:"debits"`
	Balance      Resolved `json:"balance"`
	Due          Resolved `json:"due"`
	Transactions int      `json:"transactions"`

	// BalanceDivergence and DueDivergence are authoritative minus derived.
	// Zero unless the corresponding figure is authoritative and differs
	// from what the transaction list implies.
	BalanceDivergence float64 `json:"balanceDivergence,omitempty"`
	DueDivergence     float64 `json:"dueDivergence,omitempty"`
}

// coerceAmount maps non-finite amounts to zero. Malformed numeric fields
// are treated as zero everywhere, never as an error.
func coerceAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return coerceAmount(*v), true
}

// resolveBalance picks the account balance from the ordered field
// preference list, falling back to credits minus debits.
func resolveBalance(a models.Account, credits, debits float64) Resolved {
	for _, field := range []*float64{a.Balance, a.CurrentBalance, a.AccountBalance} {
		if v, ok := deref(field); ok {
			return Resolved{Value: v, Authoritative: true}
		}
	}
	return Resolved{Value: credits - debits}
}

// resolveDue picks the outstanding due, falling back to the negative
// portion of the balance.
func resolveDue(a models.Account, balance float64) Resolved {
	for _, field := range []*float64{a.Dues, a.PendingAmount} {
		if v, ok := deref(field); ok {
			return Resolved{Value: v, Authoritative: true}
		}
	}
	if balance < 0 {
		return Resolved{Value: -balance}
	}
	return Resolved{Value: 0}
}

// AccountMetrics computes credits, debits, balance and due for one account.
// The function is total: it never fails, regardless of how malformed the
// transaction list is.
func AccountMetrics(a models.Account) Metrics {
	var credits, debits float64
	for _, txn := range a.Transactions {
		switch strings.ToUpper(txn.Type) {
		case models.TypeCredit:
			credits += coerceAmount(txn.Amount)
		case models.TypeDebit:
			debits += coerceAmount(txn.Amount)
		}
	}

	balance := resolveBalance(a, credits, debits)
	due := resolveDue(a, balance.Value)

	m := Metrics{
		Credits:      credits,
		Debits:       debits,
		Balance:      balance,
		Due:          due,
		Transactions: len(a.Transactions),
	}

	if balance.Authoritative {
		m.BalanceDivergence = balance.Value - (credits - debits)
	}
	if due.Authoritative {
		derived := 0.0
		if balance.Value < 0 {
			derived = -balance.Value
		}
		m.DueDivergence = due.Value - derived
	}

	return m
}

// TransactionDate returns the effective timestamp of a transaction, or a
// zero time when none is recorded.
func TransactionDate(txn models.Transaction) time.Time {
	if txn.CreatedAt == nil {
		return time.Time{}
	}
	return *txn.CreatedAt
}

// MonthKey buckets a timestamp into its zero-padded YYYY-MM key.
// Lexicographic order of keys matches chronological order.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
