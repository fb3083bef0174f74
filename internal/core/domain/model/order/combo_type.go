package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// ComboType is the single/combo choice offered for burger lines.
type ComboType int

const (
	// UnknownComboType is the zero value and never valid.
	UnknownComboType ComboType = iota

	// Single orders the menu on its own at its base price.
	Single

	// Combo orders the menu as a set at its combo price.
	Combo
)

func getComboTypeStrings() map[ComboType]string {
	return map[ComboType]string{
		UnknownComboType: "unknown",
		Single:           "single",
		Combo:            "combo",
	}
}

// ParseComboType converts "single" or "combo".
func ParseComboType(s string) (ComboType, error) {
	switch s {
	case "single":
		return Single, nil
	case "combo":
		return Combo, nil
	default:
		return UnknownComboType, errs.NewValueIsInvalidErrorWithCause(
			"combo type", fmt.Errorf("%q is not a combo type", s))
	}
}

// ComboTypeOf maps a line's combo flag back to its ComboType.
func ComboTypeOf(combo bool) ComboType {
	if combo {
		return Combo
	}
	return Single
}

func (c ComboType) Validate() error {
	if c != Single && c != Combo {
		return errs.NewValueIsInvalidErrorWithCause("combo type", fmt.Errorf("%d is not a valid combo type", c))
	}
	return nil
}

// IsCombo is the combo flag a line gets for this type: everything but Single.
func (c ComboType) IsCombo() bool {
	return c != Single
}

func (c ComboType) String() string {
	if str, ok := getComboTypeStrings()[c]; ok {
		return str
	}
	return "unknown"
}
