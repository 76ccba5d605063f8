package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/wonpay/internal/calculation"
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/rgehrsitz/wonpay/internal/transform"
)

// CompareEngine orchestrates labor cost scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewEngine()
	}
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string                        // Display name of the base input
	Templates        []string                      // Template names to apply
	Transforms       []transform.ScenarioTransform // Ad-hoc transforms, compared as one extra scenario
}

// Compare runs the base input and one variant per template
func (ce *CompareEngine) Compare(ctx context.Context, base domain.LaborCostInput, options CompareOptions) (*ComparisonSet, error) {
	name := options.BaseScenarioName
	if name == "" {
		name = "base"
	}
	baseResult := ce.evaluate(name, base)

	alternatives := []ComparisonResult{}
	for _, templateName := range options.Templates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		modified, err := transform.ApplyTemplate(base, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}

		alt := ce.evaluate(name+"_"+template.Name, modified)
		alt.Description = template.Description
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(alt, baseResult))
	}

	if len(options.Transforms) > 0 {
		modified, err := transform.ApplyTransforms(base, options.Transforms)
		if err != nil {
			return nil, fmt.Errorf("failed to apply transforms: %w", err)
		}
		alt := ce.evaluate(name+"_custom", modified)
		alt.Description = describe(options.Transforms)
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(alt, baseResult))
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   name,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// CompareScenarios compares labor cost scenarios of a workbook by name
func (ce *CompareEngine) CompareScenarios(
	ctx context.Context,
	config *domain.Configuration,
	baseScenarioName string,
	alternativeScenarioNames []string,
) (*ComparisonSet, error) {
	if config == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	baseInput, err := laborInput(config, baseScenarioName)
	if err != nil {
		return nil, fmt.Errorf("base scenario: %w", err)
	}
	baseResult := ce.evaluate(baseScenarioName, baseInput)

	alternatives := []ComparisonResult{}
	for _, altName := range alternativeScenarioNames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		in, err := laborInput(config, altName)
		if err != nil {
			return nil, fmt.Errorf("alternative scenario: %w", err)
		}
		alt := ce.evaluate(altName, in)
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(alt, baseResult))
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

func (ce *CompareEngine) evaluate(name string, in domain.LaborCostInput) ComparisonResult {
	res := ce.CalcEngine.ComputeLaborCost(in)
	linked := ce.CalcEngine.ComputeBEP(res.BEPLink)
	return ce.MetricsCalculator.CalculateMetrics(name, res, linked)
}

func laborInput(config *domain.Configuration, name string) (domain.LaborCostInput, error) {
	for _, s := range config.Scenarios {
		if s.Name != name {
			continue
		}
		if s.Type != domain.ScenarioLaborCost || s.LaborCost == nil {
			return domain.LaborCostInput{}, fmt.Errorf("%s is not a labor_cost scenario", name)
		}
		return *s.LaborCost, nil
	}
	return domain.LaborCostInput{}, fmt.Errorf("%s not found in configuration", name)
}

func describe(transforms []transform.ScenarioTransform) string {
	desc := ""
	for i, t := range transforms {
		if i > 0 {
			desc += ", "
		}
		desc += t.Description()
	}
	return desc
}
