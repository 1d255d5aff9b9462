package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hsati/directory-backend/internal/domain/directory"
	"github.com/hsati/directory-backend/internal/domain/shared"
)

// GormCircularRepository implements CircularRepository using GORM
type GormCircularRepository struct {
	db *gorm.DB
}

// NewGormCircularRepository creates a new GormCircularRepository
func NewGormCircularRepository(db *gorm.DB) *GormCircularRepository {
	return &GormCircularRepository{db: db}
}

// Create creates a new circular
func (r *GormCircularRepository) Create(ctx context.Context, circular *directory.Circular) error {
	return r.db.WithContext(ctx).Create(circular).Error
}

// FindAll returns all circulars
func (r *GormCircularRepository) FindAll(ctx context.Context) ([]directory.Circular, error) {
	circulars := []directory.Circular{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&circulars).Error; err != nil {
		return nil, err
	}
	return circulars, nil
}

// UpdateFields applies a partial column update and returns the updated row
func (r *GormCircularRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*directory.Circular, error) {
	if err := r.db.WithContext(ctx).
		Model(&directory.Circular{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	var circular directory.Circular
	if err := r.db.WithContext(ctx).First(&circular, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &circular, nil
}

// Delete deletes a circular; absent rows are not an error
func (r *GormCircularRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&directory.Circular{}, "id = ?", id).Error
}

// Ensure GormCircularRepository implements CircularRepository
var _ directory.CircularRepository = (*GormCircularRepository)(nil)
