package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("adjust_workers", createAdjustWorkers)
	registry.Register("scale_wage", createScaleWage)
	registry.Register("set_hourly_wage", createSetHourlyWage)
	registry.Register("add_overtime", createAddOvertime)
	registry.Register("set_severance", createSetSeverance)
	registry.Register("set_social_insurance", createSetSocialInsurance)
	registry.Register("set_holiday_allowance", createSetHolidayAllowance)
	registry.Register("switch_industry", createSwitchIndustry)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms in sorted order.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "scale_wage:percent=7.5"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// Factory functions for each transform

func createAdjustWorkers(params map[string]string) (ScenarioTransform, error) {
	deltaStr, ok := params["delta"]
	if !ok {
		return nil, fmt.Errorf("adjust_workers requires 'delta' parameter")
	}

	delta, err := strconv.Atoi(deltaStr)
	if err != nil {
		return nil, fmt.Errorf("invalid delta value: %w", err)
	}

	return &AdjustWorkers{Delta: delta}, nil
}

func createScaleWage(params map[string]string) (ScenarioTransform, error) {
	percent, err := decimalParam("scale_wage", "percent", params)
	if err != nil {
		return nil, err
	}
	return &ScaleWage{Percent: percent}, nil
}

func createSetHourlyWage(params map[string]string) (ScenarioTransform, error) {
	wage, err := decimalParam("set_hourly_wage", "wage", params)
	if err != nil {
		return nil, err
	}
	return &SetHourlyWage{Wage: wage}, nil
}

func createAddOvertime(params map[string]string) (ScenarioTransform, error) {
	hours, err := decimalParam("add_overtime", "hours", params)
	if err != nil {
		return nil, err
	}
	return &AddOvertime{Hours: hours}, nil
}

func createSetSeverance(params map[string]string) (ScenarioTransform, error) {
	include, err := boolParam("set_severance", params)
	if err != nil {
		return nil, err
	}
	return &SetSeverance{Include: include}, nil
}

func createSetSocialInsurance(params map[string]string) (ScenarioTransform, error) {
	include, err := boolParam("set_social_insurance", params)
	if err != nil {
		return nil, err
	}
	return &SetSocialInsurance{Include: include}, nil
}

func createSetHolidayAllowance(params map[string]string) (ScenarioTransform, error) {
	include, err := boolParam("set_holiday_allowance", params)
	if err != nil {
		return nil, err
	}
	return &SetHolidayAllowance{Include: include}, nil
}

func createSwitchIndustry(params map[string]string) (ScenarioTransform, error) {
	industry, ok := params["industry"]
	if !ok {
		return nil, fmt.Errorf("switch_industry requires 'industry' parameter")
	}
	return &SwitchIndustry{Industry: domain.Industry(industry)}, nil
}

func decimalParam(transform, key string, params map[string]string) (decimal.Decimal, error) {
	raw, ok := params[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return domain.CheckScale(key, v)
}

func boolParam(transform string, params map[string]string) (bool, error) {
	raw, ok := params["include"]
	if !ok {
		return false, fmt.Errorf("%s requires 'include' parameter", transform)
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid include value: %w", err)
	}
	return v, nil
}
