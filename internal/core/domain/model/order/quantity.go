package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

const (
	// MinQuantity is the smallest number of items a line can hold.
	MinQuantity = 1
	// MaxQuantity is the largest number of items a line can hold.
	MaxQuantity = 10
)

// ErrQuantityIsNotConstructed is returned when using a zero-value Quantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError("quantity must be created via NewQuantity")

// Quantity is the item count of a line, always within [MinQuantity, MaxQuantity].
// The zero value is invalid.
//
// Example:
//
//	q, _ := order.NewQuantity(4)
//	q, err := q.Add(1) // 5
type Quantity struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

// NewQuantity validates value against the inclusive bounds.
func NewQuantity(value int) (Quantity, error) {
	q := Quantity{guard: guard.NewConstructorGuard()}
	if err := q.setValue(value); err != nil {
		return Quantity{}, err
	}
	return q, nil
}

// MustQuantity is NewQuantity for compile-time constants.
func MustQuantity(value int) Quantity {
	q, err := NewQuantity(value)
	if err != nil {
		panic(err)
	}
	return q
}

func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

func (q Quantity) Value() int {
	return q.value
}

// Add returns the quantity moved by delta. When the unclamped result lies
// outside the bounds a ValueIsOutOfRangeError is returned instead; the result
// is never snapped to the nearest bound.
func (q Quantity) Add(delta int) (Quantity, error) {
	if err := q.Validate(); err != nil {
		return Quantity{}, err
	}
	// compare against the remaining headroom so huge deltas cannot overflow
	if delta > MaxQuantity-q.value || delta < MinQuantity-q.value {
		return Quantity{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"quantity", fmt.Sprintf("%d%+d", q.value, delta), MinQuantity, MaxQuantity,
			fmt.Errorf("adjustment by %d rejected", delta))
	}
	return NewQuantity(q.value + delta)
}

// CanIncrement reports whether +1 would be accepted.
func (q Quantity) CanIncrement() bool {
	return q.value < MaxQuantity
}

// CanDecrement reports whether -1 would be accepted.
func (q Quantity) CanDecrement() bool {
	return q.value > MinQuantity
}

func (q Quantity) String() string {
	return fmt.Sprintf("Quantity(%d)", q.value)
}

func (q *Quantity) setValue(value int) error {
	if value < MinQuantity || value > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", value, MinQuantity, MaxQuantity)
	}
	q.value = value
	return nil
}
