package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolops/finance-service/internal/documents"
	"github.com/schoolops/finance-service/internal/models"
	"github.com/schoolops/finance-service/internal/services"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestReportsServiceSummaryCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cached := []byte(`{"report":{}}`)

	cache := services.NewMockSummaryCache(ctrl)
	cache.EXPECT().GetSummary(ctx).Return(cached, nil)

	// The account reader must not be touched on a cache hit.
	svc := services.NewReportsService(services.NewMockAccountReader(ctrl), cache)

	got, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestReportsServiceSummaryCacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	accounts := []models.Account{
		{
			AccountID: 1,
			OwnerName: "Asha",
			Transactions: []models.Transaction{
				{Type: models.TypeCredit, Amount: 500, CreatedAt: datePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))},
			},
		},
	}

	reader := services.NewMockAccountReader(ctrl)
	cache := services.NewMockSummaryCache(ctrl)
	reader.EXPECT().GetAll(ctx).Return(accounts, nil)
	cache.EXPECT().GetSummary(ctx).Return(nil, errors.New("cache miss"))
	cache.EXPECT().SetSummary(ctx, gomock.Any()).Return(nil)

	svc := services.NewReportsService(reader, cache)

	payload, err := svc.Summary(ctx)
	require.NoError(t, err)

	var summary services.Summary
	require.NoError(t, json.Unmarshal(payload, &summary))
	assert.Equal(t, 1, summary.Report.TotalAccounts)
	assert.InDelta(t, 500, summary.Report.TotalCredits, 1e-9)
	require.Len(t, summary.MonthlySeries, 1)
	assert.Equal(t, "2024-03", summary.MonthlySeries[0].Key)
	assert.Equal(t, 1, summary.TypeRatio.Total)
}

func TestReportsServiceSummaryNoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	reader := services.NewMockAccountReader(ctrl)
	reader.EXPECT().GetAll(ctx).Return([]models.Account{}, nil)

	svc := services.NewReportsService(reader, nil)

	payload, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, payload)
}

func TestReportsServiceSummaryReaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	reader := services.NewMockAccountReader(ctrl)
	reader.EXPECT().GetAll(ctx).Return(nil, errors.New("db down"))

	svc := services.NewReportsService(reader, nil)

	_, err := svc.Summary(ctx)
	assert.Error(t, err)
}

func TestReportsServiceLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	accounts := []models.Account{
		{AccountID: 1, OwnerName: "Asha", Transactions: []models.Transaction{
			{TransactionID: 1, Type: models.TypeCredit, Amount: 10, CreatedAt: &jan},
		}},
		{AccountID: 2, OwnerName: "Ravi", Transactions: []models.Transaction{
			{TransactionID: 2, Type: models.TypeDebit, Amount: 20, CreatedAt: &feb},
		}},
	}

	reader := services.NewMockAccountReader(ctrl)
	reader.EXPECT().GetAll(ctx).Return(accounts, nil)

	svc := services.NewReportsService(reader, nil)

	entries, err := svc.Ledger(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].Transaction.TransactionID)
	assert.Equal(t, int64(1), entries[1].Transaction.TransactionID)
}

func TestReportsServiceReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	account := &models.Account{
		AccountID: 3,
		OwnerName: "Asha Verma",
		Transactions: []models.Transaction{
			{TransactionID: 17, Type: models.TypeCredit, Amount: 1500, Mode: models.ModeCash},
		},
	}

	reader := services.NewMockAccountReader(ctrl)
	reader.EXPECT().GetByID(ctx, int64(3)).Return(account, nil)

	svc := services.NewReportsService(reader, nil)

	filename, data, err := svc.Receipt(ctx, 3, 17, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "asha_verma_rcp-3-17.pdf", filename)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestReportsServiceReceiptAccountNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	reader := services.NewMockAccountReader(ctrl)
	reader.EXPECT().GetByID(ctx, int64(99)).Return(nil, nil)

	svc := services.NewReportsService(reader, nil)

	_, _, err := svc.Receipt(ctx, 99, 1, time.Now())
	assert.ErrorIs(t, err, services.ErrAccountNotFound)
}

func TestReportsServiceReceiptTransactionNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	account := &models.Account{AccountID: 3, Transactions: []models.Transaction{{TransactionID: 1}}}

	reader := services.NewMockAccountReader(ctrl)
	reader.EXPECT().GetByID(ctx, int64(3)).Return(account, nil)

	svc := services.NewReportsService(reader, nil)

	_, _, err := svc.Receipt(ctx, 3, 42, time.Now())
	assert.ErrorIs(t, err, services.ErrTransactionNotFound)
}

func TestReportsServiceAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	accounts := []models.Account{
		{AccountID: 1, OwnerName: "Asha", Transactions: []models.Transaction{
			{TransactionID: 1, Type: models.TypeCredit, Amount: 100, Mode: models.ModeCash, CreatedAt: &jan},
		}},
	}

	reader := services.NewMockAccountReader(ctrl)
	reader.EXPECT().GetAll(ctx).Return(accounts, nil)

	svc := services.NewReportsService(reader, nil)

	filename, data, err := svc.Audit(ctx, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "schoolops_audit_transactions_2024-06-05.pdf", filename)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestReportsServiceAuditEmptyLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	reader := services.NewMockAccountReader(ctrl)
	reader.EXPECT().GetAll(ctx).Return([]models.Account{{AccountID: 1}}, nil)

	svc := services.NewReportsService(reader, nil)

	_, _, err := svc.Audit(ctx, time.Now())
	assert.ErrorIs(t, err, documents.ErrNoTransactions)
}
