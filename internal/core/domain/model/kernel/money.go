package kernel

import (
	"errors"
	"fmt"
	"math"

	"ordering/internal/pkg/errs"
)

// MinorUnitsPerMajor is the number of minor units (cents, fen) in one major unit.
const MinorUnitsPerMajor = 100

// ErrMoneyOverflow is the cause when an amount leaves the int64 range.
var ErrMoneyOverflow = errors.New("amount overflows")

// Money is an amount in integer minor currency units. Prices, option deltas and
// order totals are all Money, which keeps price equality exact.
type Money int64

// NewMoney builds a non-negative amount from minor units.
func NewMoney(minorUnits int64) (Money, error) {
	if minorUnits < 0 {
		return 0, errs.NewValueIsOutOfRangeError("money", minorUnits, 0, int64(math.MaxInt64))
	}
	return Money(minorUnits), nil
}

// MinorUnits returns the raw amount.
func (m Money) MinorUnits() int64 {
	return int64(m)
}

// Add fails with ErrMoneyOverflow instead of wrapping around.
func (m Money) Add(other Money) (Money, error) {
	if (other > 0 && m > math.MaxInt64-other) || (other < 0 && m < math.MinInt64-other) {
		return 0, m.overflow(fmt.Sprintf("%s + %s", m, other))
	}
	return m + other, nil
}

// Multiply scales the amount by a line count. count must not be negative.
func (m Money) Multiply(count int) (Money, error) {
	if count < 0 {
		return 0, errs.NewValueIsOutOfRangeError("count", count, 0, "unbounded")
	}
	if count == 0 || m == 0 {
		return 0, nil
	}
	c := Money(count)
	if (m > 0 && m > math.MaxInt64/c) || (m < 0 && m < math.MinInt64/c) {
		return 0, m.overflow(fmt.Sprintf("%s x %d", m, count))
	}
	return m * c, nil
}

func (m Money) overflow(expr string) error {
	return errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%w: %s", ErrMoneyOverflow, expr))
}

func (m Money) IsNegative() bool {
	return m < 0
}

// String renders the amount in major units, e.g. 2550 -> "25.50".
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/MinorUnitsPerMajor, v%MinorUnitsPerMajor)
}
