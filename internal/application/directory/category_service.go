package directory

import (
	"context"

	"github.com/hsati/directory-backend/internal/domain/directory"
	"github.com/hsati/directory-backend/internal/domain/shared"
)

// CategoryService handles member categories and their assignments
type CategoryService struct {
	categories directory.CategoryRepository
	links      directory.MemberCategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categories directory.CategoryRepository, links directory.MemberCategoryRepository) *CategoryService {
	return &CategoryService{categories: categories, links: links}
}

// Create adds a category
func (s *CategoryService) Create(ctx context.Context, name string) (*directory.Category, error) {
	if name == "" {
		return nil, shared.NewValidationError("name is required")
	}

	category := &directory.Category{Name: name}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, storeErr(err)
	}
	return category, nil
}

// List returns all categories
func (s *CategoryService) List(ctx context.Context) ([]directory.Category, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return categories, nil
}

// Assign links a batch of directory entries to one category. Already-linked
// pairs are skipped, so repeating an assignment is harmless.
func (s *CategoryService) Assign(ctx context.Context, memberIDs []int64, categoryID int64) error {
	if categoryID == 0 || len(memberIDs) == 0 {
		return shared.NewValidationError("memberIds and categoryId are required")
	}
	if err := s.links.Assign(ctx, memberIDs, categoryID); err != nil {
		return storeErr(err)
	}
	return nil
}

// MembersByCategory returns the directory entries linked to a category
func (s *CategoryService) MembersByCategory(ctx context.Context, categoryID int64) ([]directory.AllMember, error) {
	members, err := s.links.MembersForCategory(ctx, categoryID)
	if err != nil {
		return nil, storeErr(err)
	}
	return members, nil
}

// CategoriesByMember returns the categories linked to a directory entry
func (s *CategoryService) CategoriesByMember(ctx context.Context, memberID int64) ([]directory.Category, error) {
	categories, err := s.links.CategoriesForMember(ctx, memberID)
	if err != nil {
		return nil, storeErr(err)
	}
	return categories, nil
}
