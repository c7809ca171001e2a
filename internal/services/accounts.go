package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/schoolops/finance-service/internal/logger"
	"github.com/schoolops/finance-service/internal/models"
)

var (
	// ErrAccountNotFound is returned when the referenced account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound is returned when the referenced transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransaction is returned when a transaction request fails validation.
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// AccountReader defines read operations over the account store.
type AccountReader interface {
	GetAll(ctx context.Context) ([]models.Account, error)                  // Returns all accounts with transactions
	Search(ctx context.Context, query string) ([]models.Account, error)    // Returns matching accounts with transactions
	GetByID(ctx context.Context, accountID int64) (*models.Account, error) // Returns one account or nil
}

// TransactionWriter appends a transaction to an account.
type TransactionWriter interface {
	Save(ctx context.Context, accountID int64, txnType string, amount float64, mode, remarks string) (*models.Transaction, error)
}

// PayrollReader serves teacher payroll lookups.
type PayrollReader interface {
	GetByTeacherID(ctx context.Context, teacherID int64) (*models.PayrollInfo, error)
}

// SummaryInvalidator drops the cached fleet summary.
type SummaryInvalidator interface {
	InvalidateSummary(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AccountsService handles account listing, search, transaction creation and
// payroll lookups.
type AccountsService struct {
	reader      AccountReader
	writer      TransactionWriter
	payroll     PayrollReader
	cache       SummaryInvalidator
	kafkaWriter KafkaWriter
}

// NewAccountsService creates a new AccountsService.
func NewAccountsService(
	reader AccountReader,
	writer TransactionWriter,
	payroll PayrollReader,
	cache SummaryInvalidator,
	kafkaWriter KafkaWriter,
) *AccountsService {
	return &AccountsService{
		reader:      reader,
		writer:      writer,
		payroll:     payroll,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// List returns all accounts with their transactions.
func (s *AccountsService) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.reader.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list accounts", "error", err)
		return nil, err
	}
	return accounts, nil
}

// Search returns accounts matching the query by id, owner name or username.
func (s *AccountsService) Search(ctx context.Context, query string) ([]models.Account, error) {
	if query == "" {
		return s.List(ctx)
	}
	accounts, err := s.reader.Search(ctx, query)
	if err != nil {
		logger.Log.Errorw("failed to search accounts", "query", query, "error", err)
		return nil, err
	}
	return accounts, nil
}

// CreateTransaction validates and stores a new transaction, publishes it to
// Kafka and invalidates the cached fleet summary.
func (s *AccountsService) CreateTransaction(ctx context.Context, accountID int64, txnType string, amount float64, mode, remarks string) (*models.Transaction, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		logger.Log.Warnw("invalid transaction amount", "accountID", accountID, "amount", amount)
		return nil, ErrInvalidTransaction
	}
	if !models.ValidTransactionType(txnType) {
		logger.Log.Warnw("invalid transaction type", "accountID", accountID, "type", txnType)
		return nil, ErrInvalidTransaction
	}
	if !models.ValidPaymentMode(mode) {
		logger.Log.Warnw("invalid payment mode", "accountID", accountID, "mode", mode)
		return nil, ErrInvalidTransaction
	}

	account, err := s.reader.GetByID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to load account for transaction", "accountID", accountID, "error", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	txn, err := s.writer.Save(ctx, accountID, txnType, amount, mode, remarks)
	if err != nil {
		logger.Log.Errorw("failed to save transaction", "accountID", accountID, "amount", amount, "error", err)
		return nil, err
	}

	s.publishTransaction(ctx, *txn)

	if s.cache != nil {
		if err := s.cache.InvalidateSummary(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate report cache", "error", err)
		}
	}

	return txn, nil
}

// Payroll returns salary details for one teacher.
func (s *AccountsService) Payroll(ctx context.Context, teacherID int64) (*models.PayrollInfo, error) {
	info, err := s.payroll.GetByTeacherID(ctx, teacherID)
	if err != nil {
		logger.Log.Errorw("failed to fetch payroll", "teacherID", teacherID, "error", err)
		return nil, err
	}
	if info == nil {
		return nil, ErrAccountNotFound
	}
	return info, nil
}

// publishTransaction publishes a created transaction to Kafka.
func (s *AccountsService) publishTransaction(ctx context.Context, txn models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	data, err := json.Marshal(txn)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(txn.TransactionID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.TransactionID, "amount", txn.Amount)
	}
}
