package linerepo

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrLineHasNoID is returned when saving a line the order context has not assigned an id yet.
var ErrLineHasNoID = errors.New("line must have an id to be saved")

// GormLineRepository implements LineRepository using GORM.
type GormLineRepository struct {
	db *gorm.DB
}

// NewGormLineRepository creates a new GORM line repository.
func NewGormLineRepository(db *gorm.DB) *GormLineRepository {
	return &GormLineRepository{db: db}
}

// List retrieves the lines of a session, oldest first.
func (r *GormLineRepository) List(ctx context.Context, sessionID string) ([]order.Line, error) {
	var dtos []LineDTO
	if err := r.db.WithContext(ctx).
		Preload("Menu").
		Where("session_id = ?", sessionID).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	return lines, nil
}

// Get retrieves a single line of a session.
func (r *GormLineRepository) Get(ctx context.Context, sessionID string, id kernel.UUID) (order.Line, error) {
	if err := id.Validate(); err != nil {
		return order.Line{}, err
	}

	var dto LineDTO
	if err := r.db.WithContext(ctx).
		Preload("Menu").
		First(&dto, "id = ? AND session_id = ?", id.Bytes(), sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Line{}, errs.NewObjectNotFoundError("line", id.String())
		}
		return order.Line{}, err
	}

	return toDomain(dto)
}

// Save updates the line with the same id or inserts it.
func (r *GormLineRepository) Save(ctx context.Context, sessionID string, line order.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}
	if _, ok := line.ID(); !ok {
		return ErrLineHasNoID
	}

	dto := fromDomain(sessionID, line)

	// a map so that combo=false is written as well
	result := r.db.WithContext(ctx).
		Model(&LineDTO{}).
		Where("id = ? AND session_id = ?", dto.ID, sessionID).
		Updates(map[string]any{
			"menu_id":  dto.MenuID,
			"quantity": dto.Quantity,
			"combo":    dto.Combo,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error
}

// Delete removes a line of a session.
func (r *GormLineRepository) Delete(ctx context.Context, sessionID string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND session_id = ?", id.Bytes(), sessionID).
		Delete(&LineDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("line", id.String())
	}

	return nil
}

// DeleteSession removes all lines of a session.
func (r *GormLineRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&LineDTO{}).Error
}

// StaleSessions lists the sessions whose most recent line update happened
// before the given time.
func (r *GormLineRepository) StaleSessions(ctx context.Context, before time.Time) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&LineDTO{}).
		Group("session_id").
		Having("MAX(updated_at) < ?", before).
		Order("session_id").
		Pluck("session_id", &ids).Error
	return ids, err
}
