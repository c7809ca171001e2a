package documents

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Asha Verma", "asha_verma"},
		{"collapses runs", "a  / b!!c", "a_b_c"},
		{"keeps safe chars", "rcp-12_3", "rcp-12_3"},
		{"empty falls back", "", "file"},
		{"all unsafe", "///", "_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestReceiptFilename(t *testing.T) {
	assert.Equal(t, "asha_verma_rcp-3-17.pdf", ReceiptFilename("Asha Verma", "RCP-3-17"))
}

func TestAuditFilename(t *testing.T) {
	generatedOn := time.Date(2024, 6, 5, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "schoolops_audit_transactions_2024-06-05.pdf", AuditFilename(generatedOn))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "Rs 1500.00", formatCurrency(1500))
	assert.Equal(t, "Rs 0.00", formatCurrency(0))
	assert.Equal(t, "-Rs 99.50", formatCurrency(-99.5))
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "-", formatDateTime(nil))

	zero := time.Time{}
	assert.Equal(t, "-", formatDateTime(&zero))

	date := time.Date(2024, 3, 15, 10, 5, 0, 0, time.UTC)
	assert.Equal(t, "Mar 15, 2024 10:05", formatDateTime(&date))
}

func TestFormatDateShort(t *testing.T) {
	assert.Equal(t, "-", formatDateShort(time.Time{}))
	assert.Equal(t, "Mar 15, 2024", formatDateShort(time.Date(2024, 3, 15, 10, 5, 0, 0, time.UTC)))
}
