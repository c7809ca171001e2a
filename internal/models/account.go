package models

import "time"

// Account is a ledger attached to one student or staff member. Balance and
// dues are authoritative when supplied by the server; when nil they are
// derived from the transaction list. The extra CurrentBalance,
// AccountBalance and PendingAmount fields exist because upstream payloads
// historically exposed the same figure under different names; resolution
// order lives in the reports package.
type Account struct {
	AccountID      int64         `json:"id" db:"account_id"`                  // Unique account identifier
	OwnerName      string        `json:"ownerName" db:"owner_name"`           // Account holder display name
	Username       string        `json:"userName,omitempty" db:"username"`    // Login name of the holder, if linked
	Transactions   []Transaction `json:"transactions,omitempty" db:"-"`       // Insertion-ordered transaction list
	Balance        *float64      `json:"balance,omitempty" db:"balance"`      // Authoritative balance, if present
	CurrentBalance *float64      `json:"currentBalance,omitempty" db:"-"`     // Legacy alias for Balance
	AccountBalance *float64      `json:"accountBalance,omitempty" db:"-"`     // Legacy alias for Balance
	Dues           *float64      `json:"dues,omitempty" db:"dues"`            // Authoritative outstanding due, if present
	PendingAmount  *float64      `json:"pendingAmount,omitempty" db:"-"`      // Legacy alias for Dues
	Degraded       bool          `json:"degraded,omitempty" db:"-"`           // True when transactions could not be expanded
	CreatedAt      *time.Time    `json:"createdAt,omitempty" db:"created_at"` // Account creation timestamp
}

// Owner returns the display name for the account holder, falling back to the
// username when no owner name is recorded.
func (a Account) Owner() string {
	if a.OwnerName != "" {
		return a.OwnerName
	}
	if a.Username != "" {
		return a.Username
	}
	return "Unknown"
}
