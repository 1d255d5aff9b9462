package directory

import (
	"context"

	"github.com/hsati/directory-backend/internal/domain/directory"
	"github.com/hsati/directory-backend/internal/domain/shared"
)

// MemberService handles executive-committee member operations
type MemberService struct {
	members  directory.MemberRepository
	ingestor *ImageIngestor
}

// NewMemberService creates a new MemberService
func NewMemberService(members directory.MemberRepository, ingestor *ImageIngestor) *MemberService {
	return &MemberService{members: members, ingestor: ingestor}
}

// Create adds a member. New members start active; the image is optional and
// a row without one stores an empty image_url.
func (s *MemberService) Create(ctx context.Context, req CreateMemberRequest) (*directory.Member, error) {
	if req.Name == "" || req.Designation == "" || req.Email == "" || req.Phone == "" || req.CompanyAddress == "" {
		return nil, shared.NewValidationError("name, designation, email, phone and company_address are required")
	}

	imageURL := req.ImageURL
	if req.Image != "" {
		url, err := s.ingestor.Ingest(ctx, BucketMembers, req.Image, true)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	member := &directory.Member{
		Name:           req.Name,
		Designation:    req.Designation,
		Email:          req.Email,
		Phone:          req.Phone,
		CompanyAddress: req.CompanyAddress,
		Active:         true,
		ImageURL:       imageURL,
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, storeErr(err)
	}
	return member, nil
}

// List returns every member, active or not
func (s *MemberService) List(ctx context.Context) ([]directory.Member, error) {
	members, err := s.members.FindAll(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return members, nil
}

// ListActive returns only the members the public frontend shows
func (s *MemberService) ListActive(ctx context.Context) ([]directory.Member, error) {
	members, err := s.members.FindActive(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return members, nil
}

// SetActive flips only the active flag
func (s *MemberService) SetActive(ctx context.Context, id int64, active bool) (*directory.Member, error) {
	member, err := s.members.UpdateFields(ctx, id, map[string]any{"active": active})
	if err != nil {
		return nil, storeErr(err)
	}
	return member, nil
}

// Update applies a partial update. When the request carries neither a new
// image nor an image_url, the stored image_url is preserved via a point
// read, so a form submit without the picture does not blank it.
func (s *MemberService) Update(ctx context.Context, id int64, req UpdateMemberRequest) (*directory.Member, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Designation != nil {
		fields["designation"] = *req.Designation
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.CompanyAddress != nil {
		fields["company_address"] = *req.CompanyAddress
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	switch {
	case req.Image != "":
		url, err := s.ingestor.Ingest(ctx, BucketMembers, req.Image, true)
		if err != nil {
			return nil, err
		}
		fields["image_url"] = url
	case req.ImageURL != nil:
		fields["image_url"] = *req.ImageURL
	default:
		existing, err := s.members.FindByID(ctx, id)
		if err != nil {
			return nil, storeErr(err)
		}
		fields["image_url"] = existing.ImageURL
	}

	member, err := s.members.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, storeErr(err)
	}
	return member, nil
}

// Delete removes a member. Deleting an absent row still succeeds.
func (s *MemberService) Delete(ctx context.Context, id int64) error {
	if err := s.members.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}
