package directory

import "context"

// CircularRepository defines the interface for circular persistence
type CircularRepository interface {
	Create(ctx context.Context, circular *Circular) error
	FindAll(ctx context.Context) ([]Circular, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (*Circular, error)
	Delete(ctx context.Context, id int64) error
}
