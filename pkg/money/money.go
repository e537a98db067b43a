// Package money converts between dollar strings at the API boundary and the
// integer cents used everywhere else.
package money

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	// maxDollars is the largest amount whose cents still fit in an int64.
	maxDollars = decimal.NewFromInt(math.MaxInt64).Div(hundred)
)

// ParseDollars turns "25", "25.5" or "$1,250.00" into cents. Fractions of a
// cent are rounded half away from zero; negative amounts are rejected.
func ParseDollars(value string) (int64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(value)
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	if amount.IsNegative() {
		return 0, fmt.Errorf("amount %q cannot be negative", value)
	}
	if amount.GreaterThan(maxDollars) {
		return 0, fmt.Errorf("amount %q is too large", value)
	}

	return amount.Mul(hundred).Round(0).IntPart(), nil
}

func FormatCents(cents int64) string {
	return "$" + decimal.New(cents, -2).StringFixed(2)
}
