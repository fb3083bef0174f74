package commands

import "ordering/internal/core/application/ordercontext"

func validateSessionID(sessionID string) error {
	return ordercontext.ValidateSessionID(sessionID)
}
