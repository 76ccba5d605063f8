package output

import (
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
)

// Unit tells formatters how to render a raw value.
type Unit string

const (
	UnitWon     Unit = "won"
	UnitPercent Unit = "percent"
	UnitHours   Unit = "hours"
	UnitCount   Unit = "count"
	UnitText    Unit = "text"
)

// Sections group the lines of a scenario.
const (
	SectionSummary    = "summary"
	SectionDeductions = "deductions"
	SectionIncomeTax  = "income_tax"
	SectionWorker     = "worker"
	SectionEmployer   = "employer"
	SectionHire       = "hire"
	SectionLinkedBEP  = "linked_bep"
)

// Line is one labelled figure. Key is a stable ASCII identifier, Display the
// localized text and Raw the plain value (empty when not computable).
type Line struct {
	Section string `json:"section"`
	Key     string `json:"key"`
	Label   string `json:"label"`
	Display string `json:"display"`
	Raw     string `json:"raw"`
	Unit    Unit   `json:"unit"`
}

// Column describes one column of a Table.
type Column struct {
	Key   string
	Label string
	Unit  Unit
}

// Table is a simulation grid with raw decimal cells.
type Table struct {
	Key     string
	Title   string
	Columns []Column
	Rows    [][]decimal.Decimal
}

// Display renders cell (row, col) for humans.
func (t Table) Display(row, col int) string {
	return display(t.Rows[row][col], t.Columns[col].Unit)
}

// ScenarioView is the presentation of one scenario result.
type ScenarioView struct {
	Name   string              `json:"name"`
	Type   domain.ScenarioType `json:"type"`
	Lines  []Line              `json:"lines"`
	Tables []Table             `json:"-"`
	Notes  []string            `json:"notes,omitempty"`
}

// Section returns the lines of one section in order.
func (v ScenarioView) Section(name string) []Line {
	var out []Line
	for _, l := range v.Lines {
		if l.Section == name {
			out = append(out, l)
		}
	}
	return out
}

// DisplayMap maps "section.key" to the display text of every line.
func (v ScenarioView) DisplayMap() map[string]string {
	m := make(map[string]string, len(v.Lines))
	for _, l := range v.Lines {
		m[l.Section+"."+l.Key] = l.Display
	}
	return m
}

// Views builds the presentation of every result in report.
func Views(report *domain.Report) []ScenarioView {
	views := make([]ScenarioView, 0, len(report.Results))
	for _, r := range report.Results {
		views = append(views, View(r))
	}
	return views
}

// View builds the presentation of a single result.
func View(r domain.ScenarioResult) ScenarioView {
	v := ScenarioView{Name: r.Name, Type: r.Type}
	b := &viewBuilder{view: &v}
	switch {
	case r.BEP != nil:
		b.bep(SectionSummary, r.BEP, true)
	case r.Hourly != nil:
		b.hourly(r.Hourly)
	case r.Salary != nil:
		b.salary(r.Salary)
	case r.LaborCost != nil:
		b.laborCost(r.LaborCost)
		if r.LinkedBEP != nil {
			b.bep(SectionLinkedBEP, r.LinkedBEP, false)
		}
	case r.PriceDecision != nil:
		b.priceDecision(r.PriceDecision)
	}
	return v
}

// BEPView, HourlyView, SalaryView, LaborCostView and PriceDecisionView wrap a
// single calculator result, for callers outside of a workbook.
func BEPView(res domain.BEPResult) ScenarioView {
	return View(domain.ScenarioResult{Type: domain.ScenarioBEP, BEP: &res})
}

func HourlyView(res domain.HourlyResult) ScenarioView {
	return View(domain.ScenarioResult{Type: domain.ScenarioHourly, Hourly: &res})
}

func SalaryView(res domain.SalaryNetResult) ScenarioView {
	return View(domain.ScenarioResult{Type: domain.ScenarioSalary, Salary: &res})
}

func LaborCostView(res domain.LaborCostResult) ScenarioView {
	return View(domain.ScenarioResult{Type: domain.ScenarioLaborCost, LaborCost: &res})
}

func PriceDecisionView(res domain.PriceDecisionResult) ScenarioView {
	return View(domain.ScenarioResult{Type: domain.ScenarioPriceDecision, PriceDecision: &res})
}

type viewBuilder struct {
	view *ScenarioView
}

func (b *viewBuilder) add(section, key, label string, v decimal.Decimal, unit Unit) {
	b.view.Lines = append(b.view.Lines, Line{
		Section: section, Key: key, Label: label,
		Display: display(v, unit), Raw: v.String(), Unit: unit,
	})
}

func (b *viewBuilder) addAmount(section, key, label string, a domain.Amount, unit Unit) {
	if !a.IsDefined() {
		b.view.Lines = append(b.view.Lines, Line{Section: section, Key: key, Label: label, Display: NotComputable, Unit: unit})
		return
	}
	b.add(section, key, label, a.Value, unit)
}

func (b *viewBuilder) addText(section, key, label, text, code string) {
	b.view.Lines = append(b.view.Lines, Line{Section: section, Key: key, Label: label, Display: text, Raw: code, Unit: UnitText})
}

func (b *viewBuilder) items(section string, items []domain.LineItem) {
	for _, it := range items {
		b.add(section, it.Code, it.Label, it.Amount, UnitWon)
	}
}

func (b *viewBuilder) bep(section string, r *domain.BEPResult, withTable bool) {
	if section == SectionLinkedBEP {
		b.add(section, "fixed_cost", "고정비(인건비 연동)", r.Input.FixedCost, UnitWon)
	}
	b.add(section, "variable_rate", "변동비율", r.VariableRate.Mul(hundred), UnitPercent)
	b.add(section, "contribution_ratio", "공헌이익률", r.ContributionRatio.Mul(hundred), UnitPercent)
	b.addAmount(section, "break_even_sales", "손익분기 월매출", r.BreakEvenSales, UnitWon)
	b.addAmount(section, "break_even_sales_per_day", "손익분기 일매출", r.BreakEvenSalesPerDay, UnitWon)
	b.add(section, "profit_at_target", "목표 매출 시 영업이익", r.ProfitAtTarget, UnitWon)
	b.add(section, "owner_hourly_wage", "사장님 환산 시급", r.OwnerImpliedHourlyWage, UnitWon)
	if !r.BreakEvenSales.IsDefined() {
		b.view.Notes = append(b.view.Notes, "변동비율이 100% 이상이면 매출이 늘어도 고정비를 회수할 수 없어 손익분기점을 계산할 수 없습니다.")
	}
	if !withTable {
		return
	}
	t := Table{
		Key:   "bep_simulation",
		Title: "매출 시뮬레이션",
		Columns: []Column{
			{Key: "multiplier", Label: "배수", Unit: UnitCount},
			{Key: "sales", Label: "월매출", Unit: UnitWon},
			{Key: "profit", Label: "영업이익", Unit: UnitWon},
			{Key: "hourly_wage", Label: "환산 시급", Unit: UnitWon},
		},
	}
	for _, row := range r.Table {
		t.Rows = append(t.Rows, []decimal.Decimal{row.Multiplier, row.Sales, row.Profit, row.ImpliedHourlyWage})
	}
	b.view.Tables = append(b.view.Tables, t)
}

func (b *viewBuilder) hourly(r *domain.HourlyResult) {
	s := SectionSummary
	b.add(s, "paid_hours_per_day", "1일 유급 근로시간", r.PaidHoursPerDay, UnitHours)
	b.add(s, "weekly_paid_hours", "주 유급 근로시간", r.WeeklyPaidHours, UnitHours)
	b.add(s, "holiday_hours", "주휴시간", r.HolidayHours, UnitHours)
	b.add(s, "holiday_pay", "주휴수당", r.HolidayPay, UnitWon)
	b.add(s, "overtime_premium", "연장근로 가산수당", r.OvertimePremium, UnitWon)
	if r.Input.IncludeOvertimeBasePay {
		b.add(s, "overtime_base_pay", "연장근로 기본급", r.OvertimeBasePay, UnitWon)
	}
	b.add(s, "weekly_pay", "주급", r.WeeklyPay, UnitWon)
	b.add(s, "monthly_pay", "월 환산 급여", r.MonthlyPay, UnitWon)
	b.add(s, "total_weekly_hours", "주 총 시간", r.TotalWeeklyHoursDisplayed, UnitHours)
	if r.BelowMinimumWage {
		b.view.Notes = append(b.view.Notes, "입력한 시급이 최저시급보다 낮습니다.")
	}
}

func (b *viewBuilder) salary(r *domain.SalaryNetResult) {
	b.add(SectionSummary, "gross_monthly_pay", "세전 월급", r.Input.GrossMonthlyPay, UnitWon)
	b.items(SectionDeductions, r.Items)
	b.add(SectionSummary, "total_deductions", "공제액 합계", r.TotalDeductions, UnitWon)
	b.add(SectionSummary, "deduction_rate", "공제율", r.DeductionRatePercent, UnitPercent)
	b.add(SectionSummary, "net_pay", "실수령액", r.NetPay, UnitWon)
	if t := r.IncomeTax; t != nil {
		s := SectionIncomeTax
		b.add(s, "annual_gross", "연간 총급여", t.AnnualGross, UnitWon)
		b.add(s, "earned_income_deduction", "근로소득공제", t.EarnedIncomeDeduction, UnitWon)
		b.add(s, "personal_deduction", "인적공제", t.PersonalDeduction, UnitWon)
		b.add(s, "insurance_deduction", "보험료 공제", t.InsuranceDeduction, UnitWon)
		b.add(s, "tax_base", "과세표준", t.TaxBase, UnitWon)
		b.add(s, "calculated_tax", "산출세액", t.CalculatedTax, UnitWon)
		b.add(s, "earned_income_credit", "근로소득세액공제", t.EarnedIncomeCredit, UnitWon)
		b.add(s, "determined_tax", "결정세액(연)", t.DeterminedTax, UnitWon)
	}
}

func (b *viewBuilder) laborCost(r *domain.LaborCostResult) {
	s := SectionSummary
	b.add(s, "industrial_rate", "산재보험료율", r.IndustrialRate.Value, UnitPercent)
	b.add(s, "worker_gross_total", "근로자 세전 급여 합계", r.WorkerGrossTotal, UnitWon)
	b.add(s, "worker_net_total", "근로자 실수령 합계", r.WorkerNetTotal, UnitWon)
	b.add(s, "employer_total_cost", "사업주 총 인건비", r.EmployerTotalCost, UnitWon)
	b.add(s, "employer_implied_hourly_cost", "사업주 시간당 인건비", r.EmployerImpliedHourlyCost, UnitWon)
	b.items(SectionWorker, r.WorkerItems)
	b.items(SectionEmployer, r.EmployerItems)
	b.add(SectionHire, "per_worker_employer_cost", "1인당 사업주 부담", r.HireThreshold.PerWorkerEmployerCost, UnitWon)
	b.addAmount(SectionHire, "needed_monthly_sales", "추가 채용에 필요한 월매출", r.HireThreshold.NeededMonthlySales, UnitWon)
	b.addAmount(SectionHire, "needed_daily_sales", "추가 채용에 필요한 일매출", r.HireThreshold.NeededDailySales, UnitWon)
	if r.IndustrialRate.UserEdited {
		b.view.Notes = append(b.view.Notes, "산재보험료율은 직접 입력한 값입니다. 업종을 바꿔도 유지됩니다.")
	}

	t := Table{
		Key:   "workload_simulation",
		Title: "근무량 시뮬레이션",
		Columns: []Column{
			{Key: "multiplier", Label: "배수", Unit: UnitCount},
			{Key: "monthly_hours", Label: "월 근로시간", Unit: UnitHours},
			{Key: "worker_gross_total", Label: "세전 급여 합계", Unit: UnitWon},
			{Key: "worker_net_total", Label: "실수령 합계", Unit: UnitWon},
			{Key: "employer_total_cost", Label: "사업주 총 인건비", Unit: UnitWon},
		},
	}
	for _, row := range r.Simulation {
		t.Rows = append(t.Rows, []decimal.Decimal{row.Multiplier, row.MonthlyHours, row.WorkerGrossTotal, row.WorkerNetTotal, row.EmployerTotalCost})
	}
	b.view.Tables = append(b.view.Tables, t)
}

func (b *viewBuilder) priceDecision(r *domain.PriceDecisionResult) {
	s := SectionSummary
	b.add(s, "projected_quantity", "예상 판매량", r.ProjectedQuantity, UnitCount)
	b.add(s, "current_unit_margin", "현재 단위당 공헌이익", r.CurrentUnitMargin, UnitWon)
	b.add(s, "new_unit_margin", "변경 후 단위당 공헌이익", r.NewUnitMargin, UnitWon)
	b.add(s, "current_total_margin", "현재 총 공헌이익", r.CurrentTotalMargin, UnitWon)
	b.add(s, "new_total_margin", "변경 후 총 공헌이익", r.NewTotalMargin, UnitWon)
	b.add(s, "current_operating_profit", "현재 영업이익", r.CurrentOperatingProfit, UnitWon)
	b.add(s, "new_operating_profit", "변경 후 영업이익", r.NewOperatingProfit, UnitWon)
	b.add(s, "profit_delta", "이익 변화", r.ProfitDelta, UnitWon)
	b.addAmount(s, "new_break_even_quantity", "변경 후 손익분기 판매량", r.NewBreakEvenQuantity, UnitCount)
	b.addAmount(s, "break_even_quantity_change_percent", "이익 유지에 필요한 판매량 변화", r.BreakEvenQuantityChangePercent, UnitPercent)
	rec := r.Recommendation
	b.addText(s, "direction", "가격 변화", directionLabels[rec.Direction], string(rec.Direction))
	b.addText(s, "verdict", "판정", verdictLabels[rec.Verdict], string(rec.Verdict))
	b.view.Notes = append(b.view.Notes, rec.Message)
	if rec.LossWarning != "" {
		b.view.Notes = append(b.view.Notes, rec.LossWarning)
	}
}

var directionLabels = map[domain.PriceDirection]string{
	domain.PriceIncrease:  "인상",
	domain.PriceDecrease:  "인하",
	domain.PriceUnchanged: "변동 없음",
}

var verdictLabels = map[domain.Verdict]string{
	domain.VerdictImproves: "이익 증가",
	domain.VerdictWorsens:  "이익 감소",
	domain.VerdictNeutral:  "변화 없음",
}

var hundred = decimal.NewFromInt(100)

func display(v decimal.Decimal, unit Unit) string {
	switch unit {
	case UnitWon:
		return FormatWon(v)
	case UnitPercent:
		return FormatPercent(v)
	case UnitHours:
		return FormatHours(v)
	case UnitCount:
		if v.Equal(v.Truncate(0)) {
			return FormatNumber(v, 0)
		}
		return FormatNumber(v, 1)
	}
	return v.String()
}

func decimalFromRaw(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(raw)
}
