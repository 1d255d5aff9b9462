package directory

import (
	"context"

	"github.com/hsati/directory-backend/internal/domain/directory"
	"github.com/hsati/directory-backend/internal/domain/shared"
)

// IndustryService handles industry sectors
type IndustryService struct {
	industries directory.IndustryRepository
}

// NewIndustryService creates a new IndustryService
func NewIndustryService(industries directory.IndustryRepository) *IndustryService {
	return &IndustryService{industries: industries}
}

// Create adds an industry; the icon is optional
func (s *IndustryService) Create(ctx context.Context, req CreateIndustryRequest) (*directory.Industry, error) {
	if req.Name == "" {
		return nil, shared.NewValidationError("name is required")
	}

	industry := &directory.Industry{Name: req.Name, Icon: req.Icon}
	if err := s.industries.Create(ctx, industry); err != nil {
		return nil, storeErr(err)
	}
	return industry, nil
}

// List returns all industries
func (s *IndustryService) List(ctx context.Context) ([]directory.Industry, error) {
	industries, err := s.industries.FindAll(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return industries, nil
}

// Update changes the name and/or icon. A request naming neither field is
// rejected rather than silently doing nothing.
func (s *IndustryService) Update(ctx context.Context, id int64, req UpdateIndustryRequest) (*directory.Industry, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Icon != nil {
		fields["icon"] = *req.Icon
	}
	if len(fields) == 0 {
		return nil, shared.NewValidationError("nothing to update: provide name or icon")
	}

	industry, err := s.industries.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, storeErr(err)
	}
	return industry, nil
}

// Delete removes an industry. Deleting an absent row still succeeds.
func (s *IndustryService) Delete(ctx context.Context, id int64) error {
	if err := s.industries.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}
