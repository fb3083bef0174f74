// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Catalog commands go through a unit of work; order commands go through the
// order context of the session, which owns its own transactions and notifies
// subscribers.
package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MenuRepoFactory provides access to the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// MenuUoW manages transactions for catalog operations.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	// MenuUoWFactory creates new catalog unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// MenuGetter looks up catalog entries outside of a transaction.
	MenuGetter interface {
		Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)
	}
)
