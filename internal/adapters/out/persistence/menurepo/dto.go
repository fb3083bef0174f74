// Package menurepo persists the menu catalog with GORM.
package menurepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuDTO represents the database structure of a catalog entry.
type MenuDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"not null"`
	NameEn     string
	Type       int `gorm:"type:smallint;index"`
	Img        string
	Price      int64 `gorm:"not null"`
	ComboPrice *int64
}

// TableName overrides GORM's default naming convention to use "menus".
func (MenuDTO) TableName() string {
	return "menus"
}

func fromDomain(m *menu.Menu) MenuDTO {
	var comboPrice *int64
	if combo, ok := m.ComboPrice(); ok {
		won := combo.Won()
		comboPrice = &won
	}

	return MenuDTO{
		ID:         m.ID().Bytes(),
		Name:       m.Name(),
		NameEn:     m.NameEn(),
		Type:       int(m.Type()),
		Img:        m.Img(),
		Price:      m.Price().Won(),
		ComboPrice: comboPrice,
	}
}

// ToDomain rebuilds a menu from its row. The line repository uses it for
// preloaded menus.
func ToDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var comboPrice *kernel.Price
	if dto.ComboPrice != nil {
		combo := kernel.Price(*dto.ComboPrice)
		comboPrice = &combo
	}

	return menu.NewMenu(id, dto.Name, dto.NameEn, menu.Type(dto.Type), dto.Img, kernel.Price(dto.Price), comboPrice)
}
