// Package ports defines the contracts between the ordering core and its adapters.
// Repositories and the unit of work are implemented by storage adapters; the
// order context ports are implemented by the application layer and consumed by
// inbound adapters and jobs.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for the menu catalog.
type MenuRepository interface {
	// Add persists a new menu. The menu must be valid and not exist yet.
	Add(ctx context.Context, m *menu.Menu) error

	// Get retrieves a menu by its identifier.
	// Returns errs.ErrObjectNotFound if there is no such menu.
	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)

	// All returns the whole catalog ordered by type and name.
	All(ctx context.Context) ([]*menu.Menu, error)
}
