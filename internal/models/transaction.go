package models

import "time"

// Transaction types
const (
	TypeCredit = "CREDIT"
	TypeDebit  = "DEBIT"
)

// Payment modes
const (
	ModeCash         = "CASH"
	ModeOnline       = "ONLINE"
	ModeBankTransfer = "BANK_TRANSFER"
	ModeCheque       = "CHEQUE"
)

// Transaction represents one credit or debit entry against an account.
// A transaction is immutable once created and belongs to exactly one account.
type Transaction struct {
	TransactionID int64      `json:"id" db:"transaction_id"`         // Unique transaction identifier
	AccountID     int64      `json:"accountId" db:"account_id"`      // Owning account
	Type          string     `json:"type" db:"type"`                 // CREDIT or DEBIT
	Amount        float64    `json:"amount" db:"amount"`             // Monetary value, >= 0
	Mode          string     `json:"mode" db:"mode"`                 // CASH, ONLINE, BANK_TRANSFER or CHEQUE
	Remarks       string     `json:"remarks,omitempty" db:"remarks"` // Optional free-form note
	CreatedAt     *time.Time `json:"date,omitempty" db:"created_at"` // Transaction timestamp, may be absent
}

// ValidTransactionType reports whether t is a known transaction type.
func ValidTransactionType(t string) bool {
	return t == TypeCredit || t == TypeDebit
}

// ValidPaymentMode reports whether m is a known payment mode.
func ValidPaymentMode(m string) bool {
	switch m {
	case ModeCash, ModeOnline, ModeBankTransfer, ModeCheque:
		return true
	}
	return false
}
