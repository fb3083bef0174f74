package menurepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// Add saves a new menu to the database.
func (r *GormMenuRepository) Add(ctx context.Context, m *menu.Menu) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := fromDomain(m)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a menu by ID.
func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// All retrieves the catalog ordered by type, then name.
func (r *GormMenuRepository) All(ctx context.Context) ([]*menu.Menu, error) {
	var dtos []MenuDTO
	if err := r.db.WithContext(ctx).Order("type, name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	menus := make([]*menu.Menu, 0, len(dtos))
	for _, dto := range dtos {
		m, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}

	return menus, nil
}
