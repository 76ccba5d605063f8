package compare

import (
	"encoding/json"

	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/rgehrsitz/wonpay/internal/output"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Pretty bool // indent the output
	// IncludeDetail adds the full labor cost result of every scenario under "details".
	IncludeDetail bool
}

// comparisonDocument is the JSON layout: the set itself plus won-formatted headline
// figures keyed by scenario name.
type comparisonDocument struct {
	*ComparisonSet
	Display map[string]map[string]string       `json:"display"`
	Details map[string]*domain.LaborCostResult `json:"details,omitempty"`
}

// Format generates JSON output for comparison results
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	doc := comparisonDocument{ComparisonSet: compSet, Display: map[string]map[string]string{}}
	if jf.IncludeDetail {
		doc.Details = map[string]*domain.LaborCostResult{}
	}

	add := func(r *ComparisonResult) {
		doc.Display[r.ScenarioName] = map[string]string{
			"employerTotalCost":  output.FormatWon(r.EmployerTotalCost),
			"workerNetTotal":     output.FormatWon(r.WorkerNetTotal),
			"neededMonthlySales": output.FormatAmount(r.NeededMonthlySales),
			"breakEvenSales":     output.FormatAmount(r.BreakEvenSales),
		}
		if jf.IncludeDetail && r.Result != nil {
			doc.Details[r.ScenarioName] = r.Result
		}
	}
	if compSet.BaseResult != nil {
		add(compSet.BaseResult)
	}
	for i := range compSet.AlternativeResults {
		add(&compSet.AlternativeResults[i])
	}

	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
