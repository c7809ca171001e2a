package reports

import (
	"sort"
	"strings"

	"github.com/schoolops/finance-service/internal/models"
)

// AccountSummary pairs an account with its computed metrics.
type AccountSummary struct {
	AccountID int64   `json:"accountId"`
	Owner     string  `json:"owner"`
	Metrics   Metrics `json:"metrics"`
}

// FleetReport aggregates per-account metrics into fleet-wide totals,
// monthly time series and a top outstanding-dues ranking.
type FleetReport struct {
	TotalAccounts     int     `json:"totalAccounts"`
	TotalBalance      float64 `json:"totalBalance"`
	TotalDue          float64 `json:"totalDue"`
	TotalCredits      float64 `json:"totalCredits"`
	TotalDebits       float64 `json:"totalDebits"`
	TotalTransactions int     `json:"totalTransactions"`
	CreditCount       int     `json:"creditCount"`
	DebitCount        int     `json:"debitCount"`

	// Month key (YYYY-MM) to summed amount. Transactions without a
	// parseable date are excluded from these maps but still counted in
	// the totals above.
	MonthlyVolumes map[string]float64 `json:"monthlyVolumes"`
	MonthlyCredits map[string]float64 `json:"monthlyCredits"`
	MonthlyDebits  map[string]float64 `json:"monthlyDebits"`

	// At most five accounts with due > 0, ordered by due descending.
	// Ties keep the original account order.
	TopDueAccounts []AccountSummary `json:"topDueAccounts"`
}

// topDueLimit caps the outstanding-dues ranking.
const topDueLimit = 5

// BuildFleetReport folds all accounts into one report. Accounts and their
// transactions are visited strictly in slice order, which keeps repeated
// runs over the same snapshot bit-identical.
func BuildFleetReport(accounts []models.Account) FleetReport {
	report := FleetReport{
		MonthlyVolumes: make(map[string]float64),
		MonthlyCredits: make(map[string]float64),
		MonthlyDebits:  make(map[string]float64),
		TopDueAccounts: []AccountSummary{},
	}

	summaries := make([]AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		m := AccountMetrics(account)
		summaries = append(summaries, AccountSummary{
			AccountID: account.AccountID,
			Owner:     account.Owner(),
			Metrics:   m,
		})

		report.TotalAccounts++
		report.TotalBalance += m.Balance.Value
		report.TotalDue += m.Due.Value
		report.TotalCredits += m.Credits
		report.TotalDebits += m.Debits
		report.TotalTransactions += len(account.Transactions)

		for _, txn := range account.Transactions {
			txnType := strings.ToUpper(txn.Type)
			switch txnType {
			case models.TypeCredit:
				report.CreditCount++
			case models.TypeDebit:
				report.DebitCount++
			}

			date := TransactionDate(txn)
			if date.IsZero() {
				continue
			}
			key := MonthKey(date)
			amount := coerceAmount(txn.Amount)
			report.MonthlyVolumes[key] += amount
			switch txnType {
			case models.TypeCredit:
				report.MonthlyCredits[key] += amount
			case models.TypeDebit:
				report.MonthlyDebits[key] += amount
			}
		}
	}

	withDue := make([]AccountSummary, 0, len(summaries))
	for _, s := range summaries {
		if s.Metrics.Due.Value > 0 {
			withDue = append(withDue, s)
		}
	}
	sort.SliceStable(withDue, func(i, j int) bool {
		return withDue[i].Metrics.Due.Value > withDue[j].Metrics.Due.Value
	})
	if len(withDue) > topDueLimit {
		withDue = withDue[:topDueLimit]
	}
	report.TopDueAccounts = withDue

	return report
}
