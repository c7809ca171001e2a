// Package documents renders receipts and audit reports as PDF files.
// The table layout math lives in this file, separated from the rendering
// library so it can be tested without one.
package documents

// Column describes one table column: printed width in millimetres and the
// maximum number of wrapped lines a cell may occupy.
type Column struct {
	Header   string
	Width    float64
	MaxLines int
}

// TableSpec holds the geometry shared by every row of a table.
type TableSpec struct {
	Columns      []Column
	MinRowHeight float64
	LineHeight   float64
	CellPaddingX float64
	CellPaddingY float64
}

// WrapFunc splits a string into lines that fit the given width. The
// production implementation wraps the PDF engine's string metrics; tests
// supply their own.
type WrapFunc func(text string, width float64) []string

// WrappedRow is one table row after word wrap: per-column line slices and
// the computed row height.
type WrappedRow struct {
	Cells  [][]string
	Height float64
}

// singleLineCut is the fallback length for over-long single-line cells.
const singleLineCut = 10

// WrapRow wraps each cell value into its column, truncating with an
// ellipsis marker when the wrapped text exceeds the column's line budget.
// Row height grows with the tallest cell but never below MinRowHeight.
func (s TableSpec) WrapRow(values []string, wrap WrapFunc) WrappedRow {
	cells := make([][]string, len(s.Columns))
	maxLines := 1
	for i, col := range s.Columns {
		value := ""
		if i < len(values) {
			value = values[i]
		}
		lines := s.fitCell(value, col, wrap)
		cells[i] = lines
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}

	height := float64(maxLines)*s.LineHeight + 2*s.CellPaddingY
	if height < s.MinRowHeight {
		height = s.MinRowHeight
	}

	return WrappedRow{Cells: cells, Height: height}
}

// fitCell wraps one value and enforces the column's MaxLines by truncating
// the final kept line to end in "..".
func (s TableSpec) fitCell(value string, col Column, wrap WrapFunc) []string {
	lines := wrap(value, col.Width-2*s.CellPaddingX)
	if len(lines) <= col.MaxLines {
		return lines
	}
	if col.MaxLines <= 1 {
		return []string{truncateRunes(value, singleLineCut)}
	}

	kept := append([]string(nil), lines[:col.MaxLines]...)
	last := []rune(kept[col.MaxLines-1])
	if len(last) > 2 {
		kept[col.MaxLines-1] = string(last[:len(last)-2]) + ".."
	} else {
		kept[col.MaxLines-1] = string(last) + ".."
	}
	return kept
}

// Overflows reports whether drawing a row of the given height at y would
// cross the printable bottom margin, forcing a page break.
func Overflows(y, rowHeight, pageBottom float64) bool {
	return y+rowHeight > pageBottom
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
