package directory

import (
	"context"

	"github.com/hsati/directory-backend/internal/domain/directory"
	"github.com/hsati/directory-backend/internal/domain/shared"
)

// EventService handles event announcements
type EventService struct {
	events   directory.EventRepository
	ingestor *ImageIngestor
}

// NewEventService creates a new EventService
func NewEventService(events directory.EventRepository, ingestor *ImageIngestor) *EventService {
	return &EventService{events: events, ingestor: ingestor}
}

// Create adds an event. Event banners are always stored as jpg, whatever
// the submitted payload claims to be.
func (s *EventService) Create(ctx context.Context, req CreateEventRequest) (*directory.Event, error) {
	if req.Title == "" || req.EventDate == "" {
		return nil, shared.NewValidationError("title and eventdate are required")
	}

	imageURL := req.ImageURL
	if req.Image != "" {
		url, err := s.ingestor.Ingest(ctx, BucketEvents, req.Image, false)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	event := &directory.Event{
		Title:     req.Title,
		EventDate: req.EventDate,
		ImageURL:  imageURL,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, storeErr(err)
	}
	return event, nil
}

// List returns all events
func (s *EventService) List(ctx context.Context) ([]directory.Event, error) {
	events, err := s.events.FindAll(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return events, nil
}

// Update applies a partial update. The image column is always rewritten:
// a fresh upload wins, then a submitted image_url, then empty.
func (s *EventService) Update(ctx context.Context, id int64, req UpdateEventRequest) (*directory.Event, error) {
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.EventDate != nil {
		fields["eventdate"] = *req.EventDate
	}

	imageURL := req.ImageURL
	if req.Image != "" {
		url, err := s.ingestor.Ingest(ctx, BucketEvents, req.Image, false)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}
	fields["image_url"] = imageURL

	event, err := s.events.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, storeErr(err)
	}
	return event, nil
}

// Delete removes an event. Deleting an absent row still succeeds.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	if err := s.events.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}
