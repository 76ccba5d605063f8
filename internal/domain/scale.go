package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxScale bounds the decimal exponent of any input value. decimal arithmetic and
// comparisons rescale both operands to the smaller exponent, so an input such as
// 1e-20000000 would expand into a twenty-million-digit integer.
const MaxScale = 20

// NormalizeScale brings v's exponent within ±MaxScale without expanding its
// coefficient. Values too small to show at that scale become zero. It reports
// false when v has more than MaxScale integer digits, which no input field can
// hold; the caller decides what such a value means.
func NormalizeScale(v decimal.Decimal) (decimal.Decimal, bool) {
	exp := int64(v.Exponent())
	if exp >= -MaxScale && exp <= MaxScale {
		return v, true
	}
	intDigits := int64(v.NumDigits()) + exp
	switch {
	case intDigits > MaxScale:
		return v, false
	case intDigits < -MaxScale:
		return decimal.Zero, true
	}
	return v.Round(MaxScale), true
}

// CheckScale rejects a value NormalizeScale cannot bring into range and returns
// the normalized value otherwise.
func CheckScale(field string, v decimal.Decimal) (decimal.Decimal, error) {
	n, ok := NormalizeScale(v)
	if !ok {
		return v, fmt.Errorf("%s is out of range", field)
	}
	return n, nil
}
