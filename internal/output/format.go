package output

import (
	"strings"

	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
)

// NotComputable is shown in place of an undefined amount.
const NotComputable = "계산 불가"

// FormatWon formats a won amount as a rounded integer with thousands separators
// and the 원 suffix, e.g. 8,387,097원. Losses keep their minus sign.
func FormatWon(amount decimal.Decimal) string {
	return FormatNumber(amount, 0) + "원"
}

// FormatKRW is the ASCII variant of FormatWon, e.g. 8,387,097 KRW.
func FormatKRW(amount decimal.Decimal) string {
	return FormatNumber(amount, 0) + " KRW"
}

// FormatAmount formats a possibly undefined won amount. Defined amounts render
// like FormatWon, so a loss such as a negative profit keeps its minus sign
// (-200,000원); undefined ones render as NotComputable.
func FormatAmount(a domain.Amount) string {
	if !a.IsDefined() {
		return NotComputable
	}
	return FormatWon(a.Value)
}

// FormatPercent formats a value already expressed in percent with two decimals.
func FormatPercent(pct decimal.Decimal) string {
	return pct.StringFixed(2) + "%"
}

// FormatRate formats a fraction (0.38) as a percentage (38.00%).
func FormatRate(rate decimal.Decimal) string {
	return FormatPercent(rate.Mul(decimal.NewFromInt(100)))
}

// FormatHours formats hours with one decimal, e.g. 35.0시간.
func FormatHours(hours decimal.Decimal) string {
	return hours.StringFixed(1) + "시간"
}

// FormatNumber rounds to places decimals and groups the integer part by thousands.
func FormatNumber(v decimal.Decimal, places int32) string {
	s := v.StringFixed(places)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	if neg && strings.Trim(intPart+frac, "0.") != "" {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(frac)
	return b.String()
}
