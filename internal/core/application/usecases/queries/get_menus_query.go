package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetMenusQueryIsNotConstructed = errors.New(
		"GetMenusQuery must be created via NewGetMenusQuery constructor",
	)
)

// GetMenusQuery retrieves the whole catalog.
type GetMenusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenusQuery is parameterless.
func NewGetMenusQuery() GetMenusQuery {
	return GetMenusQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMenusQuery) Validate() error {
	return q.guard.Validate(ErrGetMenusQueryIsNotConstructed)
}

// GetMenusQueryResponse is a catalog entry. ComboPrice is nil when the menu
// has no combo pricing.
type GetMenusQueryResponse struct {
	ID         kernel.UUID
	Name       string
	NameEn     string
	Type       string
	AssetPath  string
	Price      kernel.Price
	ComboPrice *kernel.Price
}
