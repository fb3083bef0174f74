package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Price is an amount in the smallest currency unit (won). Prices carry no
// fractional part, so all arithmetic on them is exact.
//
// Price is a value type like order.Status in spirit: any int64 can be stored,
// and Validate rejects the ones the domain does not allow.
//
// Example:
//
//	p := kernel.Price(9900)
//	total := p.Times(2) // 19800
type Price int64

// ZeroPrice is the neutral element for summing prices.
const ZeroPrice Price = 0

// NewPrice validates won and returns it as a Price.
//
// Returns:
//   - Price: the validated amount
//   - error: ValueIsInvalidError when won is negative
func NewPrice(won int64) (Price, error) {
	p := Price(won)
	if err := p.Validate(); err != nil {
		return ZeroPrice, err
	}
	return p, nil
}

// Validate rejects negative amounts.
func (p Price) Validate() error {
	if p < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", int64(p)))
	}
	return nil
}

// Won returns the raw amount.
func (p Price) Won() int64 {
	return int64(p)
}

// Times multiplies the price by a count, e.g. a line quantity.
func (p Price) Times(n int) Price {
	return p * Price(n)
}

// Plus adds two prices.
func (p Price) Plus(other Price) Price {
	return p + other
}

func (p Price) String() string {
	return fmt.Sprintf("%d won", int64(p))
}
