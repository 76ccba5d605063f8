package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/wonpay/internal/domain"
)

// ConsoleFormatter renders a plain-text report for the terminal.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

var sectionTitles = map[string]string{
	SectionSummary:    "요약",
	SectionDeductions: "공제 내역",
	SectionIncomeTax:  "소득세 계산",
	SectionWorker:     "근로자 내역",
	SectionEmployer:   "사업주 추가 부담",
	SectionHire:       "추가 채용 기준",
	SectionLinkedBEP:  "인건비 연동 손익분기",
}

var sectionOrder = []string{
	SectionSummary, SectionDeductions, SectionIncomeTax, SectionWorker,
	SectionEmployer, SectionHire, SectionLinkedBEP,
}

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintln(&buf, "WONPAY 계산 결과")
	fmt.Fprintln(&buf, strings.Repeat("=", 60))

	for i, v := range Views(report) {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "[%d] %s (%s)\n", i+1, v.Name, v.Type)
		fmt.Fprintln(&buf, strings.Repeat("-", 60))
		WriteView(&buf, v)
	}

	if len(report.Assumptions) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "가정:")
		for _, a := range report.Assumptions {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
	}
	return buf.Bytes(), nil
}

// WriteView writes one scenario view as text. It is shared by the CLI
// single-calculator commands.
func WriteView(buf *bytes.Buffer, v ScenarioView) {
	for _, section := range sectionOrder {
		lines := v.Section(section)
		if len(lines) == 0 {
			continue
		}
		if section != SectionSummary {
			fmt.Fprintf(buf, "  %s\n", sectionTitles[section])
		}
		for _, l := range lines {
			fmt.Fprintf(buf, "    %s: %s\n", l.Label, l.Display)
		}
	}
	for _, t := range v.Tables {
		fmt.Fprintf(buf, "  %s\n", t.Title)
		labels := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			labels[i] = col.Label
		}
		fmt.Fprintf(buf, "    %s\n", strings.Join(labels, " | "))
		for r := range t.Rows {
			cells := make([]string, len(t.Columns))
			for c := range t.Columns {
				cells[c] = t.Display(r, c)
			}
			fmt.Fprintf(buf, "    %s\n", strings.Join(cells, " | "))
		}
	}
	for _, n := range v.Notes {
		fmt.Fprintf(buf, "  ※ %s\n", n)
	}
}
