package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hsati/directory-backend/internal/domain/directory"
	"github.com/hsati/directory-backend/internal/domain/shared"
)

// GormAllMemberRepository implements AllMemberRepository using GORM
type GormAllMemberRepository struct {
	db *gorm.DB
}

// NewGormAllMemberRepository creates a new GormAllMemberRepository
func NewGormAllMemberRepository(db *gorm.DB) *GormAllMemberRepository {
	return &GormAllMemberRepository{db: db}
}

// Create creates a new directory entry
func (r *GormAllMemberRepository) Create(ctx context.Context, member *directory.AllMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// FindAll returns all directory entries
func (r *GormAllMemberRepository) FindAll(ctx context.Context) ([]directory.AllMember, error) {
	members := []directory.AllMember{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// FindByIndustry returns entries assigned to an industry
func (r *GormAllMemberRepository) FindByIndustry(ctx context.Context, industryID int64) ([]directory.AllMember, error) {
	members := []directory.AllMember{}
	if err := r.db.WithContext(ctx).
		Where("industry_id = ?", industryID).
		Order("id ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// UpdateFields applies a partial column update and returns the updated row
func (r *GormAllMemberRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*directory.AllMember, error) {
	if err := r.db.WithContext(ctx).
		Model(&directory.AllMember{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	var member directory.AllMember
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

// Delete deletes a directory entry; absent rows are not an error
func (r *GormAllMemberRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&directory.AllMember{}, "id = ?", id).Error
}

// Ensure GormAllMemberRepository implements AllMemberRepository
var _ directory.AllMemberRepository = (*GormAllMemberRepository)(nil)
