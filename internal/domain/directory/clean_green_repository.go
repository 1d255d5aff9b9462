package directory

import "context"

// CleanGreenRepository defines the interface for clean & green card persistence
type CleanGreenRepository interface {
	Create(ctx context.Context, card *CleanGreenCard) error
	FindAll(ctx context.Context) ([]CleanGreenCard, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (*CleanGreenCard, error)
	Delete(ctx context.Context, id int64) error
}
