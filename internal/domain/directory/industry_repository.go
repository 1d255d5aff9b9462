package directory

import "context"

// IndustryRepository defines the interface for industry persistence
type IndustryRepository interface {
	Create(ctx context.Context, industry *Industry) error
	FindAll(ctx context.Context) ([]Industry, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (*Industry, error)
	Delete(ctx context.Context, id int64) error
}
