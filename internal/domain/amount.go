package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Amount is a computed figure that may be mathematically undefined, for example a
// break-even point when the contribution margin is zero or negative. The zero value
// is undefined.
type Amount struct {
	Value   decimal.Decimal
	Defined bool
}

// NewAmount wraps a defined value.
func NewAmount(v decimal.Decimal) Amount {
	return Amount{Value: v, Defined: true}
}

// Undefined returns the "not computable" sentinel.
func Undefined() Amount {
	return Amount{}
}

// IsDefined reports whether the amount carries a value.
func (a Amount) IsDefined() bool {
	return a.Defined
}

// Div divides by d. Undefined propagates, and a zero or negative divisor yields
// Undefined rather than a panic or an infinite value.
func (a Amount) Div(d decimal.Decimal) Amount {
	if !a.Defined || d.LessThanOrEqual(decimal.Zero) {
		return Undefined()
	}
	return NewAmount(a.Value.Div(d))
}

// Mul multiplies a defined amount by d.
func (a Amount) Mul(d decimal.Decimal) Amount {
	if !a.Defined {
		return Undefined()
	}
	return NewAmount(a.Value.Mul(d))
}

// Round rounds a defined amount to the given number of decimal places.
func (a Amount) Round(places int32) Amount {
	if !a.Defined {
		return Undefined()
	}
	return NewAmount(a.Value.Round(places))
}

// Equal compares two amounts; two undefined amounts are equal.
func (a Amount) Equal(b Amount) bool {
	if a.Defined != b.Defined {
		return false
	}
	return !a.Defined || a.Value.Equal(b.Value)
}

func (a Amount) String() string {
	if !a.Defined {
		return "undefined"
	}
	return a.Value.String()
}

// MarshalJSON encodes an undefined amount as null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(a.Value)
}

// UnmarshalJSON decodes null as undefined.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Undefined()
		return nil
	}
	var v decimal.Decimal
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = NewAmount(v)
	return nil
}
