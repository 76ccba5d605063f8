package domain

// ScenarioType names the calculator a scenario runs.
type ScenarioType string

const (
	ScenarioBEP           ScenarioType = "bep"
	ScenarioHourly        ScenarioType = "hourly"
	ScenarioSalary        ScenarioType = "salary"
	ScenarioLaborCost     ScenarioType = "labor_cost"
	ScenarioPriceDecision ScenarioType = "price_decision"
)

// ScenarioTypes lists every supported scenario type.
var ScenarioTypes = []ScenarioType{ScenarioBEP, ScenarioHourly, ScenarioSalary, ScenarioLaborCost, ScenarioPriceDecision}

// Configuration is a workbook of named calculations, optionally with its own rates.
type Configuration struct {
	Rates     *Rates     `yaml:"rates,omitempty" json:"rates,omitempty"`
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// Scenario is one named calculation. Exactly one input block must match Type.
type Scenario struct {
	Name          string              `yaml:"name" json:"name"`
	Type          ScenarioType        `yaml:"type" json:"type"`
	BEP           *BEPInput           `yaml:"bep,omitempty" json:"bep,omitempty"`
	Hourly        *HourlyInput        `yaml:"hourly,omitempty" json:"hourly,omitempty"`
	Salary        *SalaryNetInput     `yaml:"salary,omitempty" json:"salary,omitempty"`
	LaborCost     *LaborCostInput     `yaml:"labor_cost,omitempty" json:"labor_cost,omitempty"`
	PriceDecision *PriceDecisionInput `yaml:"price_decision,omitempty" json:"price_decision,omitempty"`
}

// HasInputFor reports whether the scenario carries the input block for its type.
func (s Scenario) HasInputFor() bool {
	switch s.Type {
	case ScenarioBEP:
		return s.BEP != nil
	case ScenarioHourly:
		return s.Hourly != nil
	case ScenarioSalary:
		return s.Salary != nil
	case ScenarioLaborCost:
		return s.LaborCost != nil
	case ScenarioPriceDecision:
		return s.PriceDecision != nil
	}
	return false
}

// ScenarioResult holds the result of one scenario; only the field matching Type is set.
type ScenarioResult struct {
	Name          string               `json:"name"`
	Type          ScenarioType         `json:"type"`
	BEP           *BEPResult           `json:"bep,omitempty"`
	Hourly        *HourlyResult        `json:"hourly,omitempty"`
	Salary        *SalaryNetResult     `json:"salary,omitempty"`
	LaborCost     *LaborCostResult     `json:"labor_cost,omitempty"`
	PriceDecision *PriceDecisionResult `json:"price_decision,omitempty"`
	// LinkedBEP is the break-even analysis fed by a labor cost result.
	LinkedBEP *BEPResult `json:"linked_bep,omitempty"`
}

// Report is the outcome of running a Configuration.
type Report struct {
	Results     []ScenarioResult `json:"results"`
	Assumptions []string         `json:"assumptions"`
}
