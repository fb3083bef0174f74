// Package linerepo persists order lines with GORM. Lines are keyed by id and
// scoped by session id; the menu of a line is loaded through a belongs-to
// association.
package linerepo

import (
	"time"

	"ordering/internal/adapters/out/persistence/menurepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// LineDTO represents the database structure of an order line.
type LineDTO struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	SessionID string           `gorm:"size:64;not null;index"`
	MenuID    uuid.UUID        `gorm:"type:uuid;not null"`
	Menu      menurepo.MenuDTO `gorm:"foreignKey:MenuID"`
	Quantity  int              `gorm:"type:smallint;not null"`
	Combo     bool             `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "order_lines".
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain expects a line that has an id.
func fromDomain(sessionID string, line order.Line) LineDTO {
	id, _ := line.ID()
	return LineDTO{
		ID:        id.Bytes(),
		SessionID: sessionID,
		MenuID:    line.Menu().ID().Bytes(),
		Quantity:  line.Quantity().Value(),
		Combo:     line.IsCombo(),
	}
}

// toDomain needs the Menu association to be preloaded.
func toDomain(dto LineDTO) (order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Line{}, err
	}

	m, err := menurepo.ToDomain(dto.Menu)
	if err != nil {
		return order.Line{}, err
	}

	return order.RestoreLine(id, m, dto.Quantity, dto.Combo)
}
