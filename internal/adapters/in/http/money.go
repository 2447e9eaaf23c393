package http

import (
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// currencyExponent is the number of fractional digits of the currency, matching
// kernel.MinorUnitsPerMajor.
const currencyExponent = 2

// toMoney converts an amount in major units to minor units exactly. Negative amounts
// and amounts with more fractional digits than the currency has are rejected.
func toMoney(param string, amount decimal.Decimal) (kernel.Money, error) {
	if amount.IsNegative() {
		return 0, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s is negative", amount))
	}
	if !amount.Equal(amount.Truncate(currencyExponent)) {
		return 0, errs.NewValueIsInvalidErrorWithCause(param,
			fmt.Errorf("%s has more than %d fractional digits", amount, currencyExponent))
	}
	minor := amount.Shift(currencyExponent)
	if !minor.BigInt().IsInt64() {
		return 0, errs.NewValueIsOutOfRangeError(param, amount.String(), 0, "int64 minor units")
	}
	return kernel.NewMoney(minor.IntPart())
}

// fromMoney renders minor units as a fixed-point major unit string, e.g. "50.00".
func fromMoney(m kernel.Money) string {
	return decimal.New(m.MinorUnits(), -currencyExponent).StringFixed(currencyExponent)
}
