package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/wonpay/internal/domain"
)

// HTMLFormatter renders a standalone HTML page.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"section":      func(v ScenarioView, name string) []Line { return v.Section(name) },
	"sectionTitle": func(name string) string { return sectionTitles[name] },
	"cell":         func(t Table, r, c int) string { return t.Display(r, c) },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Views       []ScenarioView
		Sections    []string
		Assumptions []string
	}{Views(report), sectionOrder, report.Assumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
