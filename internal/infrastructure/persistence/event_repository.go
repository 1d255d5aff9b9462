package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hsati/directory-backend/internal/domain/directory"
	"github.com/hsati/directory-backend/internal/domain/shared"
)

// GormEventRepository implements EventRepository using GORM
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GormEventRepository
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Create creates a new event
func (r *GormEventRepository) Create(ctx context.Context, event *directory.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// FindAll returns all events
func (r *GormEventRepository) FindAll(ctx context.Context) ([]directory.Event, error) {
	events := []directory.Event{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// UpdateFields applies a partial column update and returns the updated row
func (r *GormEventRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*directory.Event, error) {
	if err := r.db.WithContext(ctx).
		Model(&directory.Event{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	var event directory.Event
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

// Delete deletes an event; absent rows are not an error
func (r *GormEventRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&directory.Event{}, "id = ?", id).Error
}

// Ensure GormEventRepository implements EventRepository
var _ directory.EventRepository = (*GormEventRepository)(nil)
