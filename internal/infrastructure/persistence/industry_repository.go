package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hsati/directory-backend/internal/domain/directory"
	"github.com/hsati/directory-backend/internal/domain/shared"
)

// GormIndustryRepository implements IndustryRepository using GORM
type GormIndustryRepository struct {
	db *gorm.DB
}

// NewGormIndustryRepository creates a new GormIndustryRepository
func NewGormIndustryRepository(db *gorm.DB) *GormIndustryRepository {
	return &GormIndustryRepository{db: db}
}

// Create creates a new industry
func (r *GormIndustryRepository) Create(ctx context.Context, industry *directory.Industry) error {
	return r.db.WithContext(ctx).Create(industry).Error
}

// FindAll returns all industries
func (r *GormIndustryRepository) FindAll(ctx context.Context) ([]directory.Industry, error) {
	industries := []directory.Industry{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&industries).Error; err != nil {
		return nil, err
	}
	return industries, nil
}

// UpdateFields applies a partial column update and returns the updated row
func (r *GormIndustryRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*directory.Industry, error) {
	if err := r.db.WithContext(ctx).
		Model(&directory.Industry{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	var industry directory.Industry
	if err := r.db.WithContext(ctx).First(&industry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &industry, nil
}

// Delete deletes an industry; absent rows are not an error
func (r *GormIndustryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&directory.Industry{}, "id = ?", id).Error
}

// Ensure GormIndustryRepository implements IndustryRepository
var _ directory.IndustryRepository = (*GormIndustryRepository)(nil)
