package ordercontext

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// MaxSessionIDLength bounds the session ids accepted from clients.
const MaxSessionIDLength = 64

// ValidateSessionID accepts non-empty printable ASCII ids up to MaxSessionIDLength bytes.
func ValidateSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("session id")
	}
	if len(sessionID) > MaxSessionIDLength {
		return errs.NewValueIsInvalidErrorWithCause("session id",
			fmt.Errorf("longer than %d characters", MaxSessionIDLength))
	}
	for _, r := range sessionID {
		if r < '!' || r > '~' {
			return errs.NewValueIsInvalidErrorWithCause("session id",
				fmt.Errorf("unexpected character %q", r))
		}
	}
	return nil
}
