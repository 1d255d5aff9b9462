package directory

import "context"

// EventRepository defines the interface for event persistence
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	FindAll(ctx context.Context) ([]Event, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (*Event, error)
	Delete(ctx context.Context, id int64) error
}
