package services

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/schoolops/finance-service/internal/documents"
	"github.com/schoolops/finance-service/internal/logger"
	"github.com/schoolops/finance-service/internal/models"
	"github.com/schoolops/finance-service/internal/reports"
)

// divergenceTolerance is the largest authoritative-vs-derived delta that is
// not worth a warning. One cent.
const divergenceTolerance = 0.01

// Summary is the full dashboard payload: fleet totals plus the chart
// projections derived from them.
type Summary struct {
	Report        reports.FleetReport  `json:"report"`
	MonthlySeries []reports.MonthBar   `json:"monthlySeries"`
	MonthlyFlow   []reports.FlowBar    `json:"monthlyFlow"`
	Trend         []reports.TrendPoint `json:"trend"`
	TypeRatio     reports.TypeRatio    `json:"typeRatio"`
	GeneratedAt   time.Time            `json:"generatedAt"`
}

// SummaryCache reads and writes the serialized summary.
type SummaryCache interface {
	GetSummary(ctx context.Context) ([]byte, error)
	SetSummary(ctx context.Context, payload []byte) error
}

// ReportsService computes fleet reports, the merged ledger and the PDF
// exports over account snapshots.
type ReportsService struct {
	accounts AccountReader
	cache    SummaryCache
}

// NewReportsService creates a new ReportsService. The cache is optional.
func NewReportsService(accounts AccountReader, cache SummaryCache) *ReportsService {
	return &ReportsService{accounts: accounts, cache: cache}
}

// Summary returns the serialized fleet summary, from cache when possible.
func (s *ReportsService) Summary(ctx context.Context) ([]byte, error) {
	if s.cache != nil {
		if payload, err := s.cache.GetSummary(ctx); err == nil {
			return payload, nil
		}
	}

	accounts, err := s.accounts.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load accounts for summary", "error", err)
		return nil, err
	}

	summary := buildSummary(accounts, time.Now())
	s.logDivergence(accounts)

	payload, err := json.Marshal(summary)
	if err != nil {
		logger.Log.Errorw("failed to marshal summary", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetSummary(ctx, payload); err != nil {
			logger.Log.Errorw("failed to cache summary", "error", err)
		}
	}

	return payload, nil
}

// Ledger returns the merged chronological ledger across all accounts.
func (s *ReportsService) Ledger(ctx context.Context) ([]reports.LedgerEntry, error) {
	accounts, err := s.accounts.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load accounts for ledger", "error", err)
		return nil, err
	}
	return reports.MergeLedger(accounts), nil
}

// Receipt renders the receipt PDF for one transaction and returns the
// download filename alongside the bytes.
func (s *ReportsService) Receipt(ctx context.Context, accountID, txnID int64, generatedOn time.Time) (string, []byte, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to load account for receipt", "accountID", accountID, "error", err)
		return "", nil, err
	}
	if account == nil {
		return "", nil, ErrAccountNotFound
	}

	for _, txn := range account.Transactions {
		if txn.TransactionID == txnID {
			receipt := documents.NewReceipt(*account, txn)
			data, err := documents.BuildReceipt(receipt, generatedOn)
			if err != nil {
				logger.Log.Errorw("failed to render receipt", "accountID", accountID, "txnID", txnID, "error", err)
				return "", nil, err
			}
			return receipt.Filename(), data, nil
		}
	}

	return "", nil, ErrTransactionNotFound
}

// Audit renders the audit report PDF over the full ledger. An empty ledger
// is rejected before any rendering work.
func (s *ReportsService) Audit(ctx context.Context, generatedOn time.Time) (string, []byte, error) {
	accounts, err := s.accounts.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load accounts for audit", "error", err)
		return "", nil, err
	}

	entries := reports.MergeLedger(accounts)
	if len(entries) == 0 {
		return "", nil, documents.ErrNoTransactions
	}

	report := reports.BuildFleetReport(accounts)
	data, err := documents.BuildAuditReport(entries, report, generatedOn)
	if err != nil {
		logger.Log.Errorw("failed to render audit report", "error", err)
		return "", nil, err
	}

	return documents.AuditFilename(generatedOn), data, nil
}

// buildSummary assembles the dashboard payload from an account snapshot.
func buildSummary(accounts []models.Account, now time.Time) Summary {
	report := reports.BuildFleetReport(accounts)
	series := reports.MonthlySeries(report.MonthlyVolumes)
	return Summary{
		Report:        report,
		MonthlySeries: series,
		MonthlyFlow:   reports.MonthlyFlow(report.MonthlyCredits, report.MonthlyDebits),
		Trend:         reports.TrendPoints(series),
		TypeRatio:     reports.TransactionTypeRatio(report.CreditCount, report.DebitCount),
		GeneratedAt:   now,
	}
}

// logDivergence warns when a server-supplied balance or due disagrees with
// the figure derived from the transaction list. The authoritative value
// still wins; this only makes the disagreement visible.
func (s *ReportsService) logDivergence(accounts []models.Account) {
	for _, account := range accounts {
		m := reports.AccountMetrics(account)
		if math.Abs(m.BalanceDivergence) > divergenceTolerance {
			logger.Log.Warnw("authoritative balance diverges from derived",
				"accountID", account.AccountID,
				"authoritative", m.Balance.Value,
				"derived", m.Credits-m.Debits,
				"delta", m.BalanceDivergence,
			)
		}
		if math.Abs(m.DueDivergence) > divergenceTolerance {
			logger.Log.Warnw("authoritative due diverges from derived",
				"accountID", account.AccountID,
				"authoritative", m.Due.Value,
				"delta", m.DueDivergence,
			)
		}
	}
}
