package dto

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Amount is a whole, non-negative number of currency units. The platform
// encodes amounts as JSON numbers, so 100000.0 is accepted and 100000.5 is not.
type Amount int64

var maxAmount = decimal.NewFromInt(math.MaxInt64)

func (a *Amount) UnmarshalJSON(data []byte) error {
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("amount %s: %w", data, err)
	}
	if !d.IsInteger() {
		return fmt.Errorf("amount %s is not a whole number", d)
	}
	if d.IsNegative() {
		return fmt.Errorf("amount %s is negative", d)
	}
	if d.GreaterThan(maxAmount) {
		return fmt.Errorf("amount %s is out of range", d)
	}
	*a = Amount(d.IntPart())
	return nil
}

func (a *Amount) value(field string) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("%s is missing", field)
	}
	return int64(*a), nil
}

func amountPtr(v int64) *Amount {
	a := Amount(v)
	return &a
}
