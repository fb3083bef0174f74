package queries

import (
	"context"

	"ordering/internal/core/domain/model/menu"
)

// MenuLister lists the catalog.
type MenuLister interface {
	All(ctx context.Context) ([]*menu.Menu, error)
}

// GetMenusQueryHandler reads the catalog.
type GetMenusQueryHandler struct {
	menus MenuLister
}

func NewGetMenusQueryHandler(menus MenuLister) GetMenusQueryHandler {
	return GetMenusQueryHandler{menus: menus}
}

// Handle returns menus in the repository's order, burgers first.
func (h GetMenusQueryHandler) Handle(ctx context.Context, query GetMenusQuery) ([]GetMenusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menus, err := h.menus.All(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]GetMenusQueryResponse, 0, len(menus))
	for _, m := range menus {
		item := GetMenusQueryResponse{
			ID:        m.ID(),
			Name:      m.Name(),
			NameEn:    m.NameEn(),
			Type:      m.Type().String(),
			AssetPath: m.AssetPath(),
			Price:     m.Price(),
		}
		if combo, ok := m.ComboPrice(); ok {
			item.ComboPrice = &combo
		}
		resp = append(resp, item)
	}

	return resp, nil
}
