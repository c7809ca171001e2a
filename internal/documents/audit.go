package documents

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/schoolops/finance-service/internal/reports"
)

// Audit table geometry. Page is A4 portrait in millimetres.
const (
	auditLeft       = 12.0
	auditTableTop   = 56.0
	auditPageBottom = 285.0
)

// auditTableSpec returns the fixed column layout of the audit table.
func auditTableSpec() TableSpec {
	return TableSpec{
		Columns: []Column{
			{Header: "#", Width: 8, MaxLines: 1},
			{Header: "Date", Width: 24, MaxLines: 2},
			{Header: "Account", Width: 14, MaxLines: 1},
			{Header: "Holder", Width: 32, MaxLines: 2},
			{Header: "Type", Width: 18, MaxLines: 2},
			{Header: "Mode", Width: 22, MaxLines: 2},
			{Header: "Amount", Width: 22, MaxLines: 1},
			{Header: "Remarks", Width: 46, MaxLines: 3},
		},
		MinRowHeight: 7,
		LineHeight:   3.7,
		CellPaddingX: 1.2,
		CellPaddingY: 1.4,
	}
}

// auditRowValues flattens a ledger entry into the table's column order.
func auditRowValues(idx int, entry reports.LedgerEntry) []string {
	txn := entry.Transaction
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
	owner := entry.Owner
	if owner == "" {
		owner = "-"
	}
	return []string{
		strconv.Itoa(idx + 1),
		formatDateShort(reports.TransactionDate(txn)),
		strconv.FormatInt(entry.AccountID, 10),
		owner,
		txnType,
		mode,
		formatCurrency(txn.Amount),
		remarks,
	}
}

// BuildAuditReport renders the full ledger as a paginated PDF table with the
// fleet summary repeated in every page header. An empty ledger is rejected
// with ErrNoTransactions before the engine is touched.
func BuildAuditReport(entries []reports.LedgerEntry, report reports.FleetReport, generatedOn time.Time) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrNoTransactions
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("SchoolOps Financial Audit Report", false)
	pdf.SetAutoPageBreak(false, 0)

	spec := auditTableSpec()
	tableWidth := 0.0
	for _, col := range spec.Columns {
		tableWidth += col.Width
	}

	drawReportHeader := func() {
		pdf.SetFillColor(25, 135, 84)
		pdf.Rect(0, 0, 210, 30, "F")
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 17)
		pdf.Text(auditLeft, 14, "SchoolOps Financial Audit Report")
		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(auditLeft, 22, fmt.Sprintf("Generated: %s", formatDateTime(&generatedOn)))
		pdf.Text(150, 22, fmt.Sprintf("Transactions: %d", len(entries)))
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(auditLeft, 38, fmt.Sprintf("Accounts: %d", report.TotalAccounts))
		pdf.Text(auditLeft, 44, fmt.Sprintf("Total Credits: %s", formatCurrency(report.TotalCredits)))
		pdf.Text(84, 44, fmt.Sprintf("Total Debits: %s", formatCurrency(report.TotalDebits)))
		pdf.Text(150, 44, fmt.Sprintf("Pending Due: %s", formatCurrency(report.TotalDue)))
	}

	drawTableHeader := func(y float64) {
		pdf.SetFillColor(245, 245, 245)
		pdf.Rect(auditLeft, y, tableWidth, spec.MinRowHeight, "F")
		pdf.SetFont("Helvetica", "B", 9)
		x := auditLeft
		for _, col := range spec.Columns {
			pdf.Rect(x, y, col.Width, spec.MinRowHeight, "D")
			pdf.Text(x+1.5, y+4.8, col.Header)
			x += col.Width
		}
	}

	newPage := func() float64 {
		pdf.AddPage()
		drawReportHeader()
		drawTableHeader(auditTableTop)
		return auditTableTop + spec.MinRowHeight
	}

	wrap := func(text string, width float64) []string {
		return pdf.SplitText(text, width)
	}

	y := newPage()
	pdf.SetFont("Helvetica", "", 8.2)
	pdf.SetDrawColor(0, 0, 0)

	for idx, entry := range entries {
		row := spec.WrapRow(auditRowValues(idx, entry), wrap)

		if Overflows(y, row.Height, auditPageBottom) {
			y = newPage()
			pdf.SetFont("Helvetica", "", 8.2)
		}

		x := auditLeft
		for colIdx, lines := range row.Cells {
			width := spec.Columns[colIdx].Width
			pdf.Rect(x, y, width, row.Height, "D")
			for lineIdx, line := range lines {
				pdf.Text(x+spec.CellPaddingX, y+spec.CellPaddingY+spec.LineHeight*float64(lineIdx+1)-0.7, line)
			}
			x += width
		}
		y += row.Height
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentEngine, err)
	}
	return buf.Bytes(), nil
}
