package output

import (
	"encoding/json"

	"github.com/rgehrsitz/wonpay/internal/domain"
)

// JSONFormatter renders the raw report with a display block per scenario.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type jsonReport struct {
	Results     []jsonResult `json:"results"`
	Assumptions []string     `json:"assumptions"`
}

type jsonResult struct {
	domain.ScenarioResult
	Display map[string]string `json:"display"`
	Notes   []string          `json:"notes,omitempty"`
}

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	out := jsonReport{Assumptions: report.Assumptions}
	for _, r := range report.Results {
		v := View(r)
		out.Results = append(out.Results, jsonResult{ScenarioResult: r, Display: v.DisplayMap(), Notes: v.Notes})
	}
	return json.MarshalIndent(out, "", "  ")
}
