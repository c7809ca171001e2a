package reports

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/schoolops/finance-service/internal/models"
)

func f64(v float64) *float64 { return &v }

func txnAt(txnType string, amount float64, date time.Time) models.Transaction {
	return models.Transaction{Type: txnType, Amount: amount, CreatedAt: &date}
}

func TestAccountMetrics(t *testing.T) {
	tests := []struct {
		name     string
		account  models.Account
		expected Metrics
	}{
		{
			name: "derived balance from transactions",
			account: models.Account{
				Transactions: []models.Transaction{
					{Type: models.TypeCredit, Amount: 500},
					{Type: models.TypeDebit, Amount: 200},
				},
			},
			expected: Metrics{
				Credits:      500,
				Debits:       200,
				Balance:      Resolved{Value: 300},
				Due:          Resolved{Value: 0},
				Transactions: 2,
			},
		},
		{
			name: "negative derived balance becomes due",
			account: models.Account{
				Transactions: []models.Transaction{
					{Type: models.TypeCredit, Amount: 50},
					{Type: models.TypeDebit, Amount: 200},
				},
			},
			expected: Metrics{
				Credits:      50,
				Debits:       200,
				Balance:      Resolved{Value: -150},
				Due:          Resolved{Value: 150},
				Transactions: 2,
			},
		},
		{
			name: "authoritative balance wins over transactions",
			account: models.Account{
				Balance: f64(1000),
				Transactions: []models.Transaction{
					{Type: models.TypeCredit, Amount: 300},
				},
			},
			expected: Metrics{
				Credits:           300,
				Balance:           Resolved{Value: 1000, Authoritative: true},
				Due:               Resolved{Value: 0},
				Transactions:      1,
				BalanceDivergence: 700,
			},
		},
		{
			name: "legacy balance aliases are honored in order",
			account: models.Account{
				CurrentBalance: f64(42),
				AccountBalance: f64(99),
			},
			expected: Metrics{
				Balance:           Resolved{Value: 42, Authoritative: true},
				Due:               Resolved{Value: 0},
				BalanceDivergence: 42,
			},
		},
		{
			name: "authoritative due wins over balance fallback",
			account: models.Account{
				Balance: f64(-100),
				Dues:    f64(250),
			},
			expected: Metrics{
				Balance:           Resolved{Value: -100, Authoritative: true},
				Due:               Resolved{Value: 250, Authoritative: true},
				BalanceDivergence: -100,
				DueDivergence:     150,
			},
		},
		{
			name: "pending amount serves as due alias",
			account: models.Account{
				Balance:       f64(10),
				PendingAmount: f64(75),
			},
			expected: Metrics{
				Balance:           Resolved{Value: 10, Authoritative: true},
				Due:               Resolved{Value: 75, Authoritative: true},
				BalanceDivergence: 10,
				DueDivergence:     75,
			},
		},
		{
			name: "non finite amounts are coerced to zero",
			account: models.Account{
				Transactions: []models.Transaction{
					{Type: models.TypeCredit, Amount: math.NaN()},
					{Type: models.TypeDebit, Amount: math.Inf(1)},
					{Type: models.TypeCredit, Amount: 100},
				},
			},
			expected: Metrics{
				Credits:      100,
				Balance:      Resolved{Value: 100},
				Due:          Resolved{Value: 0},
				Transactions: 3,
			},
		},
		{
			name: "unknown transaction types are ignored in sums",
			account: models.Account{
				Transactions: []models.Transaction{
					{Type: "TRANSFER", Amount: 500},
					{Type: "credit", Amount: 80},
				},
			},
			expected: Metrics{
				Credits:      80,
				Balance:      Resolved{Value: 80},
				Due:          Resolved{Value: 0},
				Transactions: 2,
			},
		},
		{
			name:    "empty account",
			account: models.Account{},
			expected: Metrics{
				Balance: Resolved{Value: 0},
				Due:     Resolved{Value: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AccountMetrics(tt.account))
		})
	}
}

func TestAccountMetricsIdempotent(t *testing.T) {
	account := models.Account{
		Balance: f64(500),
		Dues:    f64(120),
		Transactions: []models.Transaction{
			{Type: models.TypeCredit, Amount: 300},
			{Type: models.TypeDebit, Amount: 90},
		},
	}

	first := AccountMetrics(account)
	second := AccountMetrics(account)
	assert.Equal(t, first, second)
}

func TestTransactionDate(t *testing.T) {
	assert.True(t, TransactionDate(models.Transaction{}).IsZero())

	date := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, date, TransactionDate(txnAt(models.TypeCredit, 10, date)))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-03", MonthKey(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12", MonthKey(time.Date(2025, 1, 1, 2, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))))
}
