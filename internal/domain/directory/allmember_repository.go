package directory

import "context"

// AllMemberRepository defines the interface for directory-entry persistence
type AllMemberRepository interface {
	// Create persists a new entry and fills in its generated ID
	Create(ctx context.Context, member *AllMember) error

	// FindAll returns every entry
	FindAll(ctx context.Context) ([]AllMember, error)

	// FindByIndustry returns entries assigned to the given industry
	FindByIndustry(ctx context.Context, industryID int64) ([]AllMember, error)

	// UpdateFields applies a partial column update and returns the updated row
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (*AllMember, error)

	// Delete removes an entry; deleting an absent row is not an error
	Delete(ctx context.Context, id int64) error
}
