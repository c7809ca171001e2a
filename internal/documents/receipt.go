package documents

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/schoolops/finance-service/internal/models"
)

// Receipt holds everything printed on a single-transaction receipt.
type Receipt struct {
	AccountID   int64
	Owner       string
	ReceiptNo   string
	Transaction models.Transaction
}

// NewReceipt builds the receipt payload for one transaction, deriving the
// receipt number from the account and transaction identifiers.
func NewReceipt(account models.Account, txn models.Transaction) Receipt {
	return Receipt{
		AccountID:   account.AccountID,
		Owner:       account.Owner(),
		ReceiptNo:   fmt.Sprintf("RCP-%d-%d", account.AccountID, txn.TransactionID),
		Transaction: txn,
	}
}

// Filename returns the sanitized download name for the receipt.
func (r Receipt) Filename() string {
	return ReceiptFilename(r.Owner, r.ReceiptNo)
}

// BuildReceipt renders the receipt to PDF bytes. Apart from the generated-on
// stamp the output is a pure function of the receipt. On engine failure it
// returns ErrDocumentEngine and no bytes.
func BuildReceipt(r Receipt, generatedOn time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("SchoolOps Transaction Receipt", false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(13, 110, 253)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(14, 14, "SchoolOps Transaction Receipt")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(14, 22, fmt.Sprintf("Generated: %s", formatDateTime(&generatedOn)))

	txn := r.Transaction
	txnType := strings.ToUpper(txn.Type)
	if txnType == "" {
		txnType = "N/A"
	}
	mode := txn.Mode
	if mode == "" {
		mode = "N/A"
	}
	remarks := txn.Remarks
	if remarks == "" {
		remarks = "-"
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
	fields := []struct {
		y    float64
		text string
	}{
		{42, fmt.Sprintf("Receipt No: %s", r.ReceiptNo)},
		{50, fmt.Sprintf("Account ID: %d", r.AccountID)},
		{58, fmt.Sprintf("Account Holder: %s", r.Owner)},
		{66, fmt.Sprintf("Transaction ID: %d", txn.TransactionID)},
		{74, fmt.Sprintf("Transaction Date: %s", formatDateTime(txn.CreatedAt))},
		{82, fmt.Sprintf("Type: %s", txnType)},
		{90, fmt.Sprintf("Amount: %s", formatCurrency(txn.Amount))},
		{98, fmt.Sprintf("Mode: %s", mode)},
	}
	for _, field := range fields {
		pdf.Text(14, field.y, field.text)
	}

	// Remarks may wrap onto several lines.
	y := 106.0
	for _, line := range pdf.SplitText(fmt.Sprintf("Remarks: %s", remarks), 182) {
		pdf.Text(14, y, line)
		y += 5
	}

	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(14, 116, 196, 116)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(14, 124, "This receipt is system-generated and valid for audit and record purposes.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentEngine, err)
	}
	return buf.Bytes(), nil
}
