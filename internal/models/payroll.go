package models

// PayrollInfo holds salary details for one teacher. It is a read-only
// lookup, independent of the fee ledger.
type PayrollInfo struct {
	Name    string  `json:"name" db:"name"`       // Teacher display name
	Salary  float64 `json:"salary" db:"salary"`   // Monthly salary
	Email   string  `json:"email" db:"email"`     // Contact email
	Numbers string  `json:"numbers" db:"numbers"` // Contact phone numbers
}
