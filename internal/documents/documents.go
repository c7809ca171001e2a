package documents

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	// ErrDocumentEngine is returned when the PDF engine fails before or
	// during rendering. No partial file is ever produced.
	ErrDocumentEngine = errors.New("document engine unavailable")

	// ErrNoTransactions is returned when an audit export is requested for
	// an empty ledger, before the engine is touched.
	ErrNoTransactions = errors.New("no transactions available for audit export")
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// SanitizeFilename lowercases a value and collapses every run of characters
// outside [a-z0-9_-] into a single underscore.
func SanitizeFilename(value string) string {
	if value == "" {
		value = "file"
	}
	return unsafeFilenameChars.ReplaceAllString(strings.ToLower(value), "_")
}

// ReceiptFilename names a receipt download after its account holder and
// receipt number.
func ReceiptFilename(owner, receiptNo string) string {
	return fmt.Sprintf("%s_%s.pdf", SanitizeFilename(owner), SanitizeFilename(receiptNo))
}

// AuditFilename names an audit export after its generation date.
func AuditFilename(generatedOn time.Time) string {
	return fmt.Sprintf("schoolops_audit_transactions_%s.pdf", generatedOn.UTC().Format("2006-01-02"))
}

// formatCurrency renders an amount for on-document display.
func formatCurrency(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-Rs %.2f", -amount)
	}
	return fmt.Sprintf("Rs %.2f", amount)
}

// formatDateTime renders a timestamp for headers and receipt fields.
func formatDateTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.UTC().Format("Jan 02, 2006 15:04")
}

// formatDateShort renders a date-only stamp for table cells.
func formatDateShort(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("Jan 02, 2006")
}
