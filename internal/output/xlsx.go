package output

import (
	"fmt"

	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/xuri/excelize/v2"
)

// XLSXFormatter renders a workbook with a summary sheet, one sheet per
// simulation table and an assumptions sheet.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string { return "xlsx" }

const summarySheet = "Summary"

func (x XLSXFormatter) Format(report *domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	header := []interface{}{"시나리오", "유형", "구분", "항목", "값", "표시"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "F1", bold); err != nil {
		return nil, err
	}

	row := 2
	views := Views(report)
	for _, v := range views {
		for _, l := range v.Lines {
			values := []interface{}{v.Name, string(v.Type), sectionTitles[l.Section], l.Label, numericCell(l), l.Display}
			if err := setRow(f, summarySheet, row, values); err != nil {
				return nil, err
			}
			row++
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 24); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(summarySheet, "D", "F", 28); err != nil {
		return nil, err
	}

	for i, v := range views {
		for _, t := range v.Tables {
			sheet := fmt.Sprintf("%d_%s", i+1, t.Key)
			if len(sheet) > 31 {
				sheet = sheet[:31]
			}
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, "A1", v.Name+" - "+t.Title); err != nil {
				return nil, err
			}
			labels := make([]interface{}, len(t.Columns))
			for c, col := range t.Columns {
				labels[c] = col.Label
			}
			if err := setRow(f, sheet, 2, labels); err != nil {
				return nil, err
			}
			for r, cells := range t.Rows {
				values := make([]interface{}, len(cells))
				for c, d := range cells {
					values[c] = d.InexactFloat64()
				}
				if err := setRow(f, sheet, r+3, values); err != nil {
					return nil, err
				}
			}
		}
	}

	if len(report.Assumptions) > 0 {
		const sheet = "Assumptions"
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
		for i, a := range report.Assumptions {
			if err := setRow(f, sheet, i+1, []interface{}{a}); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// numericCell keeps numbers numeric in the sheet; undefined and text values stay blank.
func numericCell(l Line) interface{} {
	if l.Raw == "" || l.Unit == UnitText {
		return ""
	}
	d, err := decimalFromRaw(l.Raw)
	if err != nil {
		return l.Raw
	}
	return d.InexactFloat64()
}
