package calculation

import (
	"fmt"

	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
)

// Logger is the logging interface used by the engine. *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...interface{}) {}
func (NopLogger) Infof(string, ...interface{})  {}
func (NopLogger) Warnf(string, ...interface{})  {}
func (NopLogger) Errorf(string, ...interface{}) {}

// Engine runs the payroll and small-business calculators against a rate table.
// All Compute methods are pure: the same input always yields the same result.
type Engine struct {
	Rates  domain.Rates
	Logger Logger
}

// NewEngine creates an engine with the built-in rates.
func NewEngine() *Engine {
	return NewEngineWithRates(domain.DefaultRates())
}

// NewEngineWithRates creates an engine with custom rates. Fields left zero fall
// back to the defaults.
func NewEngineWithRates(rates domain.Rates) *Engine {
	return &Engine{
		Rates:  rates.WithDefaults(),
		Logger: NopLogger{},
	}
}

// SetLogger replaces the engine logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

func (e *Engine) withRates(rates domain.Rates) *Engine {
	return &Engine{Rates: rates.WithDefaults(), Logger: e.Logger}
}

var defaultEngine = NewEngine()

// ComputeBEP runs the break-even calculator with the default rates.
func ComputeBEP(in domain.BEPInput) domain.BEPResult {
	return defaultEngine.ComputeBEP(in)
}

// ComputeHourly runs the hourly wage calculator with the default rates.
func ComputeHourly(in domain.HourlyInput) domain.HourlyResult {
	return defaultEngine.ComputeHourly(in)
}

// ComputeSalaryNet runs the net salary calculator with the default rates.
func ComputeSalaryNet(in domain.SalaryNetInput) domain.SalaryNetResult {
	return defaultEngine.ComputeSalaryNet(in)
}

// ComputeLaborCost runs the labor cost calculator with the default rates.
func ComputeLaborCost(in domain.LaborCostInput) domain.LaborCostResult {
	return defaultEngine.ComputeLaborCost(in)
}

// ComputePriceDecision runs the price decision calculator with the default rates.
func ComputePriceDecision(in domain.PriceDecisionInput) domain.PriceDecisionResult {
	return defaultEngine.ComputePriceDecision(in)
}

// RunScenarios runs every scenario of cfg in order. Rates embedded in cfg take
// precedence over the engine rates. Labor cost scenarios also get the break-even
// analysis of their linked fixed cost.
func (e *Engine) RunScenarios(cfg *domain.Configuration) (*domain.Report, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is nil")
	}
	eng := e
	if cfg.Rates != nil {
		eng = e.withRates(*cfg.Rates)
	}

	report := &domain.Report{Results: make([]domain.ScenarioResult, 0, len(cfg.Scenarios))}
	for i, sc := range cfg.Scenarios {
		if !knownType(sc.Type) {
			return nil, fmt.Errorf("scenario %d (%s): unknown type %q", i, sc.Name, sc.Type)
		}
		if !sc.HasInputFor() {
			return nil, fmt.Errorf("scenario %d (%s): missing %q input block", i, sc.Name, sc.Type)
		}
		res := domain.ScenarioResult{Name: sc.Name, Type: sc.Type}
		switch sc.Type {
		case domain.ScenarioBEP:
			r := eng.ComputeBEP(*sc.BEP)
			res.BEP = &r
		case domain.ScenarioHourly:
			r := eng.ComputeHourly(*sc.Hourly)
			res.Hourly = &r
		case domain.ScenarioSalary:
			r := eng.ComputeSalaryNet(*sc.Salary)
			res.Salary = &r
		case domain.ScenarioLaborCost:
			r := eng.ComputeLaborCost(*sc.LaborCost)
			res.LaborCost = &r
			linked := eng.ComputeBEP(r.BEPLink)
			res.LinkedBEP = &linked
		case domain.ScenarioPriceDecision:
			r := eng.ComputePriceDecision(*sc.PriceDecision)
			res.PriceDecision = &r
		}
		eng.Logger.Debugf("scenario %q (%s) computed", sc.Name, sc.Type)
		report.Results = append(report.Results, res)
	}
	report.Assumptions = eng.Assumptions()
	eng.Logger.Infof("ran %d scenarios", len(report.Results))
	return report, nil
}

// Assumptions lists the approximations behind every figure, for display next to results.
func (e *Engine) Assumptions() []string {
	r := e.Rates
	return []string{
		fmt.Sprintf("모든 금액은 근사치이며 세무·노무 신고용이 아닙니다 (기준 %d년).", r.Metadata.DataYear),
		fmt.Sprintf("월 평균 주수 %s주 (365/12/7).", r.WeeksPerMonth.String()),
		fmt.Sprintf("주휴수당은 주 %s시간 이상 근무 시 1일 평균 근로시간만큼 지급.", r.HolidayThreshold().String()),
		fmt.Sprintf("연장근로 가산율 %s%%.", pct(r.OvertimePremiumRate)),
		fmt.Sprintf("4대보험(국민연금 %s%%, 건강보험 %s%%, 고용보험 %s%%)은 근로자와 사업주가 같은 비율로 부담.",
			pct(r.SocialInsurance.Pension), pct(r.SocialInsurance.Health), pct(r.SocialInsurance.Employment)),
		fmt.Sprintf("퇴직금 적립은 월 급여의 1/%s.", r.SeveranceMonths.String()),
		fmt.Sprintf("최저시급 %s원.", r.MinimumHourlyWage.StringFixed(0)),
	}
}

func knownType(t domain.ScenarioType) bool {
	for _, st := range domain.ScenarioTypes {
		if st == t {
			return true
		}
	}
	return false
}

func pct(rate decimal.Decimal) string {
	return rate.Mul(hundred).String()
}
