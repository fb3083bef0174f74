package commands

import (
	"context"

	"ordering/internal/core/domain/model/menu"
)

// CreateMenuCommandHandler builds a menu and adds it to the catalog within a transaction.
//
// Example:
//
//	handler := NewCreateMenuCommandHandler(menuUoWFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("menu registration failed: %w", err)
//	}
type CreateMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewCreateMenuCommandHandler(uowFactory MenuUoWFactory) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the menu and persists it. Rolls back on any error.
func (h *CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	m, err := menu.NewMenu(cmd.MenuID(), cmd.Name(), cmd.NameEn(), cmd.Type(), cmd.Img(), cmd.Price(), cmd.ComboPrice())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuRepository().Add(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
