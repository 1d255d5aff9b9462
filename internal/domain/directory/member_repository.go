package directory

import "context"

// MemberRepository defines the interface for member persistence
type MemberRepository interface {
	// Create persists a new member and fills in its generated ID
	Create(ctx context.Context, member *Member) error

	// FindAll returns every member
	FindAll(ctx context.Context) ([]Member, error)

	// FindActive returns members with active = true
	FindActive(ctx context.Context) ([]Member, error)

	// FindByID returns one member or shared.ErrNotFound
	FindByID(ctx context.Context, id int64) (*Member, error)

	// UpdateFields applies a partial column update and returns the updated row
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (*Member, error)

	// Delete removes a member; deleting an absent row is not an error
	Delete(ctx context.Context, id int64) error
}
