package menu

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Type is the category a menu belongs to. Only burgers can be ordered as a combo.
type Type int

const (
	// UnknownType is the zero value and never valid.
	UnknownType Type = iota

	Burger
	Side
	Drink
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "unknown",
		Burger:      "burger",
		Side:        "side",
		Drink:       "drink",
	}
}

// ParseType converts the wire name of a type ("burger", "side", "drink").
func ParseType(s string) (Type, error) {
	for t, name := range getTypeStrings() {
		if t != UnknownType && name == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("menu type", fmt.Errorf("%q is not a menu type", s))
}

// Validate accepts Burger, Side and Drink.
func (t Type) Validate() error {
	if t != Burger && t != Side && t != Drink {
		return errs.NewValueIsInvalidErrorWithCause("menu type", fmt.Errorf("%d is not a valid menu type", t))
	}
	return nil
}

// String returns the wire name; invalid values render as "unknown".
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// OffersCombo reports whether menus of this type can be ordered as a combo.
func (t Type) OffersCombo() bool {
	return t == Burger
}
