package directory

import (
	"context"

	"github.com/hsati/directory-backend/internal/domain/directory"
	"github.com/hsati/directory-backend/internal/domain/shared"
)

// CircularService handles published circulars
type CircularService struct {
	circulars directory.CircularRepository
	ingestor  *ImageIngestor
}

// NewCircularService creates a new CircularService
func NewCircularService(circulars directory.CircularRepository, ingestor *ImageIngestor) *CircularService {
	return &CircularService{circulars: circulars, ingestor: ingestor}
}

// Create adds a circular
func (s *CircularService) Create(ctx context.Context, req CreateCircularRequest) (*directory.Circular, error) {
	if req.CircularNo == "" || req.CircularName == "" || req.CircularDate == "" {
		return nil, shared.NewValidationError("circularno, circularname and circulardate are required")
	}

	imageURL := req.ImageURL
	if req.Image != "" {
		url, err := s.ingestor.Ingest(ctx, BucketCirculars, req.Image, true)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	circular := &directory.Circular{
		CircularNo:    req.CircularNo,
		CircularName:  req.CircularName,
		CircularDate:  req.CircularDate,
		CircularImage: imageURL,
	}
	if err := s.circulars.Create(ctx, circular); err != nil {
		return nil, storeErr(err)
	}
	return circular, nil
}

// List returns all circulars
func (s *CircularService) List(ctx context.Context) ([]directory.Circular, error) {
	circulars, err := s.circulars.FindAll(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return circulars, nil
}

// Update applies a partial update; circularimage is always rewritten
func (s *CircularService) Update(ctx context.Context, id int64, req UpdateCircularRequest) (*directory.Circular, error) {
	fields := map[string]any{}
	if req.CircularNo != nil {
		fields["circularno"] = *req.CircularNo
	}
	if req.CircularName != nil {
		fields["circularname"] = *req.CircularName
	}
	if req.CircularDate != nil {
		fields["circulardate"] = *req.CircularDate
	}

	imageURL := req.ImageURL
	if req.Image != "" {
		url, err := s.ingestor.Ingest(ctx, BucketCirculars, req.Image, true)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}
	fields["circularimage"] = imageURL

	circular, err := s.circulars.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, storeErr(err)
	}
	return circular, nil
}

// Delete removes a circular. Deleting an absent row still succeeds.
func (s *CircularService) Delete(ctx context.Context, id int64) error {
	if err := s.circulars.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}
