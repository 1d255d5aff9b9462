package directory

import "context"

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindAll(ctx context.Context) ([]Category, error)
}

// MemberCategoryRepository manages the member↔category assignment table
type MemberCategoryRepository interface {
	// Assign upserts one link per member ID; existing pairs are left alone
	Assign(ctx context.Context, memberIDs []int64, categoryID int64) error

	// MembersForCategory returns the directory entries linked to a category
	MembersForCategory(ctx context.Context, categoryID int64) ([]AllMember, error)

	// CategoriesForMember returns the categories linked to a directory entry
	CategoriesForMember(ctx context.Context, memberID int64) ([]Category, error)
}
