package directory

import (
	"context"

	"github.com/hsati/directory-backend/internal/domain/directory"
	"github.com/hsati/directory-backend/internal/domain/shared"
)

// CleanGreenService handles clean & green campaign cards
type CleanGreenService struct {
	cards    directory.CleanGreenRepository
	ingestor *ImageIngestor
}

// NewCleanGreenService creates a new CleanGreenService
func NewCleanGreenService(cards directory.CleanGreenRepository, ingestor *ImageIngestor) *CleanGreenService {
	return &CleanGreenService{cards: cards, ingestor: ingestor}
}

// Create adds a card
func (s *CleanGreenService) Create(ctx context.Context, req CreateCleanGreenRequest) (*directory.CleanGreenCard, error) {
	if req.Title == "" {
		return nil, shared.NewValidationError("title is required")
	}

	imageURL := req.ImageURL
	if req.Image != "" {
		url, err := s.ingestor.Ingest(ctx, BucketCleanGreen, req.Image, true)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	card := &directory.CleanGreenCard{
		Title:      req.Title,
		CleanImage: imageURL,
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, storeErr(err)
	}
	return card, nil
}

// List returns all cards
func (s *CleanGreenService) List(ctx context.Context) ([]directory.CleanGreenCard, error) {
	cards, err := s.cards.FindAll(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return cards, nil
}

// Update applies a partial update; cleanimage is always rewritten
func (s *CleanGreenService) Update(ctx context.Context, id int64, req UpdateCleanGreenRequest) (*directory.CleanGreenCard, error) {
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}

	imageURL := req.ImageURL
	if req.Image != "" {
		url, err := s.ingestor.Ingest(ctx, BucketCleanGreen, req.Image, true)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}
	fields["cleanimage"] = imageURL

	card, err := s.cards.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, storeErr(err)
	}
	return card, nil
}

// Delete removes a card. Deleting an absent row still succeeds.
func (s *CleanGreenService) Delete(ctx context.Context, id int64) error {
	if err := s.cards.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}
