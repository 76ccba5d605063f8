package transform

import (
	"sort"
	"strings"

	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ScenarioTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names in sorted order
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common staffing changes
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	// Head count
	registry.Register(Template{
		Name:        "add_worker",
		Description: "근로자 1명 추가 채용",
		Transforms:  []ScenarioTransform{&AdjustWorkers{Delta: 1}},
	})
	registry.Register(Template{
		Name:        "remove_worker",
		Description: "근로자 1명 감축",
		Transforms:  []ScenarioTransform{&AdjustWorkers{Delta: -1}},
	})

	// Wage
	registry.Register(Template{
		Name:        "wage_up_5pct",
		Description: "시급 5% 인상",
		Transforms:  []ScenarioTransform{&ScaleWage{Percent: decimal.NewFromInt(5)}},
	})
	registry.Register(Template{
		Name:        "wage_up_10pct",
		Description: "시급 10% 인상",
		Transforms:  []ScenarioTransform{&ScaleWage{Percent: decimal.NewFromInt(10)}},
	})

	// Workload
	registry.Register(Template{
		Name:        "overtime_plus_10h",
		Description: "1인당 월 연장근로 10시간 추가",
		Transforms:  []ScenarioTransform{&AddOvertime{Hours: decimal.NewFromInt(10)}},
	})

	// Employer obligations
	registry.Register(Template{
		Name:        "no_severance",
		Description: "퇴직금 적립 제외",
		Transforms:  []ScenarioTransform{&SetSeverance{Include: false}},
	})
	registry.Register(Template{
		Name:        "no_social_insurance",
		Description: "4대보험 제외",
		Transforms:  []ScenarioTransform{&SetSocialInsurance{Include: false}},
	})

	// Industry presets
	for _, ind := range domain.Industries {
		if ind == domain.IndustryDirect {
			continue
		}
		registry.Register(Template{
			Name:        "industry_" + string(ind),
			Description: "업종을 " + ind.Label() + "(으)로 변경",
			Transforms:  []ScenarioTransform{&SwitchIndustry{Industry: ind}},
		})
	}

	return registry
}

// ApplyTemplate applies all transforms of a template to a base input
func ApplyTemplate(base domain.LaborCostInput, template Template) (domain.LaborCostInput, error) {
	return ApplyTransforms(base, template.Transforms)
}
