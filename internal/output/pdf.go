package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
)

// PDFFormatter renders a printable summary. The built-in PDF fonts have no
// Hangul glyphs, so labels come from the ASCII keys and amounts use KRW.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(report *domain.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("wonpay report", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "wonpay report")
	pdf.Ln(12)

	for i, v := range Views(report) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Scenario %d (%s)", i+1, v.Type))
		pdf.Ln(8)

		section := ""
		for _, l := range v.Lines {
			if l.Section != section {
				section = l.Section
				pdf.SetFont("Helvetica", "I", 10)
				pdf.Cell(0, 6, humanize(section))
				pdf.Ln(6)
			}
			pdf.SetFont("Helvetica", "", 10)
			pdf.CellFormat(95, 6, "  "+humanize(l.Key), "", 0, "L", false, 0, "")
			pdf.CellFormat(75, 6, asciiValue(l), "", 1, "R", false, 0, "")
		}

		for _, t := range v.Tables {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.Cell(0, 6, humanize(t.Key))
			pdf.Ln(6)
			width := 170.0 / float64(len(t.Columns))
			pdf.SetFont("Helvetica", "B", 9)
			for _, col := range t.Columns {
				pdf.CellFormat(width, 6, humanize(col.Key), "B", 0, "R", false, 0, "")
			}
			pdf.Ln(6)
			pdf.SetFont("Helvetica", "", 9)
			for _, cells := range t.Rows {
				for c, col := range t.Columns {
					pdf.CellFormat(width, 6, asciiDisplay(cells[c], col.Unit), "", 0, "R", false, 0, "")
				}
				pdf.Ln(6)
			}
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(0, 4, "Approximate figures for planning only. Not a tax or labor law compliance reference.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func humanize(key string) string {
	s := strings.ReplaceAll(key, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func asciiValue(l Line) string {
	if l.Raw == "" {
		return "n/a"
	}
	if l.Unit == UnitText {
		return l.Raw
	}
	d, err := decimalFromRaw(l.Raw)
	if err != nil {
		return l.Raw
	}
	return asciiDisplay(d, l.Unit)
}

func asciiDisplay(d decimal.Decimal, unit Unit) string {
	switch unit {
	case UnitWon:
		return FormatKRW(d)
	case UnitHours:
		return d.StringFixed(1) + " h"
	}
	return display(d, unit)
}
