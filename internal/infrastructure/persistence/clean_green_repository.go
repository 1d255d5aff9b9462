package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hsati/directory-backend/internal/domain/directory"
	"github.com/hsati/directory-backend/internal/domain/shared"
)

// GormCleanGreenRepository implements CleanGreenRepository using GORM
type GormCleanGreenRepository struct {
	db *gorm.DB
}

// NewGormCleanGreenRepository creates a new GormCleanGreenRepository
func NewGormCleanGreenRepository(db *gorm.DB) *GormCleanGreenRepository {
	return &GormCleanGreenRepository{db: db}
}

// Create creates a new card
func (r *GormCleanGreenRepository) Create(ctx context.Context, card *directory.CleanGreenCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// FindAll returns all cards
func (r *GormCleanGreenRepository) FindAll(ctx context.Context) ([]directory.CleanGreenCard, error) {
	cards := []directory.CleanGreenCard{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// UpdateFields applies a partial column update and returns the updated row
func (r *GormCleanGreenRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*directory.CleanGreenCard, error) {
	if err := r.db.WithContext(ctx).
		Model(&directory.CleanGreenCard{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	var card directory.CleanGreenCard
	if err := r.db.WithContext(ctx).First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &card, nil
}

// Delete deletes a card; absent rows are not an error
func (r *GormCleanGreenRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&directory.CleanGreenCard{}, "id = ?", id).Error
}

// Ensure GormCleanGreenRepository implements CleanGreenRepository
var _ directory.CleanGreenRepository = (*GormCleanGreenRepository)(nil)
