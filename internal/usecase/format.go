package usecase

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders value with a fixed number of places and comma thousands
// separators, e.g. 50500 -> "50,500.00".
func FormatAmount(value decimal.Decimal, places int32) string {
	fixed := value.StringFixed(places)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	integer, fraction, hasFraction := strings.Cut(fixed, ".")

	var builder strings.Builder
	builder.WriteString(sign)
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	if hasFraction {
		builder.WriteByte('.')
		builder.WriteString(fraction)
	}
	return builder.String()
}

func FormatUSD(value decimal.Decimal) string {
	if value.IsNegative() {
		return "-$" + FormatAmount(value.Neg(), 2)
	}
	return "$" + FormatAmount(value, 2)
}

// DisplayName capitalizes an asset id for messages: "bitcoin" -> "Bitcoin".
func DisplayName(assetID string) string {
	if assetID == "" {
		return assetID
	}
	return strings.ToUpper(assetID[:1]) + assetID[1:]
}
