package domain

import "github.com/shopspring/decimal"

// Industry selects an industrial accident insurance preset.
type Industry string

const (
	IndustryCafe       Industry = "cafe"
	IndustryRestaurant Industry = "restaurant"
	IndustryOffice     Industry = "office"
	IndustryDelivery   Industry = "delivery"
	// IndustryDirect means the rate is entered by hand.
	IndustryDirect Industry = "direct"
)

// Industries lists the selectable industries in display order.
var Industries = []Industry{IndustryCafe, IndustryRestaurant, IndustryOffice, IndustryDelivery, IndustryDirect}

// ParseIndustry maps free text to an Industry, defaulting to IndustryDirect.
func ParseIndustry(s string) Industry {
	for _, ind := range Industries {
		if string(ind) == s {
			return ind
		}
	}
	return IndustryDirect
}

var industryLabels = map[Industry]string{
	IndustryCafe:       "카페",
	IndustryRestaurant: "음식점",
	IndustryOffice:     "사무직",
	IndustryDelivery:   "배달",
	IndustryDirect:     "직접 입력",
}

// Label is the display name of the industry.
func (i Industry) Label() string {
	if l, ok := industryLabels[i]; ok {
		return l
	}
	return string(i)
}

// RateField is a percentage input that a preset may fill automatically until the
// user edits it by hand.
type RateField struct {
	Value             decimal.Decimal `yaml:"value" json:"value"`
	LastAppliedPreset Industry        `yaml:"last_applied_preset,omitempty" json:"last_applied_preset,omitempty"`
	UserEdited        bool            `yaml:"user_edited" json:"user_edited"`
}

// Edit records a manual change. Later preset changes leave the value alone.
func (f RateField) Edit(v decimal.Decimal) RateField {
	f.Value = v
	f.UserEdited = true
	return f
}

// Reset clears the manual-edit flag so the next preset applies again.
func (f RateField) Reset() RateField {
	f.UserEdited = false
	f.LastAppliedPreset = ""
	return f
}

// ResolveIndustrialRate applies the preset for industry to field unless the user
// edited the field or the industry is IndustryDirect. Re-selecting the preset that
// was last applied is a no-op.
func ResolveIndustrialRate(field RateField, industry Industry, presets map[Industry]decimal.Decimal) RateField {
	if field.UserEdited || industry == IndustryDirect || industry == "" {
		return field
	}
	if field.LastAppliedPreset == industry {
		return field
	}
	rate, ok := presets[industry]
	if !ok {
		return field
	}
	field.Value = rate
	field.LastAppliedPreset = industry
	return field
}
