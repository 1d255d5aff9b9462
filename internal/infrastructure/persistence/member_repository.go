package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hsati/directory-backend/internal/domain/directory"
	"github.com/hsati/directory-backend/internal/domain/shared"
)

// GormMemberRepository implements MemberRepository using GORM
type GormMemberRepository struct {
	db *gorm.DB
}

// NewGormMemberRepository creates a new GormMemberRepository
func NewGormMemberRepository(db *gorm.DB) *GormMemberRepository {
	return &GormMemberRepository{db: db}
}

// Create creates a new member
func (r *GormMemberRepository) Create(ctx context.Context, member *directory.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// FindAll returns all members
func (r *GormMemberRepository) FindAll(ctx context.Context) ([]directory.Member, error) {
	members := []directory.Member{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// FindActive returns members flagged active
func (r *GormMemberRepository) FindActive(ctx context.Context) ([]directory.Member, error) {
	members := []directory.Member{}
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// FindByID finds a member by ID
func (r *GormMemberRepository) FindByID(ctx context.Context, id int64) (*directory.Member, error) {
	var member directory.Member
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

// UpdateFields applies a partial column update and returns the updated row
func (r *GormMemberRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*directory.Member, error) {
	if err := r.db.WithContext(ctx).
		Model(&directory.Member{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete deletes a member; absent rows are not an error
func (r *GormMemberRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&directory.Member{}, "id = ?", id).Error
}

// Ensure GormMemberRepository implements MemberRepository
var _ directory.MemberRepository = (*GormMemberRepository)(nil)
