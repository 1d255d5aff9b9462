package persistence

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hsati/directory-backend/internal/domain/directory"
)

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Create creates a new category
func (r *GormCategoryRepository) Create(ctx context.Context, category *directory.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// FindAll returns all categories
func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]directory.Category, error) {
	categories := []directory.Category{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Ensure GormCategoryRepository implements CategoryRepository
var _ directory.CategoryRepository = (*GormCategoryRepository)(nil)

// GormMemberCategoryRepository implements MemberCategoryRepository using GORM
type GormMemberCategoryRepository struct {
	db *gorm.DB
}

// NewGormMemberCategoryRepository creates a new GormMemberCategoryRepository
func NewGormMemberCategoryRepository(db *gorm.DB) *GormMemberCategoryRepository {
	return &GormMemberCategoryRepository{db: db}
}

// Assign upserts one link row per member, all pointing at the same
// category. Pairs that already exist are left untouched so re-assignment
// is idempotent.
func (r *GormMemberCategoryRepository) Assign(ctx context.Context, memberIDs []int64, categoryID int64) error {
	if len(memberIDs) == 0 {
		return nil
	}
	links := make([]directory.MemberCategory, len(memberIDs))
	for i, memberID := range memberIDs {
		links[i] = directory.MemberCategory{MemberID: memberID, CategoryID: categoryID}
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&links).Error
}

// MembersForCategory returns directory entries linked to a category
func (r *GormMemberCategoryRepository) MembersForCategory(ctx context.Context, categoryID int64) ([]directory.AllMember, error) {
	members := []directory.AllMember{}
	if err := r.db.WithContext(ctx).
		Joins("JOIN member_categories ON member_categories.member_id = allmembers.id").
		Where("member_categories.category_id = ?", categoryID).
		Order("allmembers.id ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// CategoriesForMember returns categories linked to a directory entry
func (r *GormMemberCategoryRepository) CategoriesForMember(ctx context.Context, memberID int64) ([]directory.Category, error) {
	categories := []directory.Category{}
	if err := r.db.WithContext(ctx).
		Joins("JOIN member_categories ON member_categories.category_id = categories.id").
		Where("member_categories.member_id = ?", memberID).
		Order("categories.id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Ensure GormMemberCategoryRepository implements MemberCategoryRepository
var _ directory.MemberCategoryRepository = (*GormMemberCategoryRepository)(nil)
