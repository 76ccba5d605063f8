package output

import (
	"fmt"

	"github.com/gocarina/gocsv"
	"github.com/rgehrsitz/wonpay/internal/domain"
)

// CSVFormatter renders one row per figure, including simulation table cells.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

// CSVRow is the CSV record layout.
type CSVRow struct {
	Scenario string `csv:"scenario"`
	Type     string `csv:"type"`
	Section  string `csv:"section"`
	Key      string `csv:"key"`
	Label    string `csv:"label"`
	Value    string `csv:"value"`
	Display  string `csv:"display"`
}

// Rows flattens report into CSV records.
func Rows(report *domain.Report) []*CSVRow {
	var rows []*CSVRow
	for _, v := range Views(report) {
		for _, l := range v.Lines {
			rows = append(rows, &CSVRow{
				Scenario: v.Name, Type: string(v.Type), Section: l.Section,
				Key: l.Key, Label: l.Label, Value: l.Raw, Display: l.Display,
			})
		}
		for _, t := range v.Tables {
			for r, cells := range t.Rows {
				for c, col := range t.Columns {
					rows = append(rows, &CSVRow{
						Scenario: v.Name, Type: string(v.Type), Section: t.Key,
						Key: rowKey(r, col.Key), Label: col.Label,
						Value: cells[c].String(), Display: t.Display(r, c),
					})
				}
			}
		}
	}
	return rows
}

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	return gocsv.MarshalBytes(Rows(report))
}

func rowKey(row int, key string) string {
	return fmt.Sprintf("row%d.%s", row+1, key)
}
