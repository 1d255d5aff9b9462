package directory

import (
	"context"

	"github.com/hsati/directory-backend/internal/domain/directory"
)

// AllMemberService handles full directory entries
type AllMemberService struct {
	members  directory.AllMemberRepository
	ingestor *ImageIngestor
}

// NewAllMemberService creates a new AllMemberService
func NewAllMemberService(members directory.AllMemberRepository, ingestor *ImageIngestor) *AllMemberService {
	return &AllMemberService{members: members, ingestor: ingestor}
}

// Create adds a directory entry. No field is mandatory; the legacy import
// left many rows partially filled and the admin UI follows suit. Uploaded
// files are always stored as jpg.
func (s *AllMemberService) Create(ctx context.Context, req AllMemberFields) (*directory.AllMember, error) {
	fileURL := strDefault(req.FileURL, "")
	if req.Image != "" {
		url, err := s.ingestor.Ingest(ctx, BucketAllMembers, req.Image, false)
		if err != nil {
			return nil, err
		}
		fileURL = url
	}

	member := &directory.AllMember{
		MemberCode:       strDefault(req.MemberCode, ""),
		Company:          strDefault(req.Company, ""),
		FirstName:        strDefault(req.FirstName, ""),
		LastName:         strDefault(req.LastName, ""),
		OfficeAddress:    strDefault(req.OfficeAddress, ""),
		OfficeAddressDoc: strDefault(req.OfficeAddressDoc, ""),
		NatureOfBusiness: strDefault(req.NatureOfBusiness, ""),
		PhoneNo:          strDefault(req.PhoneNo, ""),
		CompanyNTN:       strDefault(req.CompanyNTN, ""),
		SalesTaxReg:      strDefault(req.SalesTaxReg, ""),
		FaxNo:            strDefault(req.FaxNo, ""),
		Email:            strDefault(req.Email, ""),
		Website:          strDefault(req.Website, ""),
		JoinDate:         strDefault(req.JoinDate, ""),
		Active:           boolDefault(req.Active, true),
		FileURL:          fileURL,
		Name:             strDefault(req.Name, ""),
		Designation:      strDefault(req.Designation, ""),
		CompanyAddress:   strDefault(req.CompanyAddress, ""),
		IndustryID:       req.IndustryID,
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, storeErr(err)
	}
	return member, nil
}

// List returns all directory entries
func (s *AllMemberService) List(ctx context.Context) ([]directory.AllMember, error) {
	members, err := s.members.FindAll(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return members, nil
}

// ByIndustry returns entries assigned to an industry
func (s *AllMemberService) ByIndustry(ctx context.Context, industryID int64) ([]directory.AllMember, error) {
	members, err := s.members.FindByIndustry(ctx, industryID)
	if err != nil {
		return nil, storeErr(err)
	}
	return members, nil
}

// Update applies a partial update; file_url is always rewritten, a fresh
// upload winning over a submitted URL, falling back to empty.
func (s *AllMemberService) Update(ctx context.Context, id int64, req AllMemberFields) (*directory.AllMember, error) {
	fields := map[string]any{}
	setStr := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	setStr("member_code", req.MemberCode)
	setStr("company", req.Company)
	setStr("first_name", req.FirstName)
	setStr("last_name", req.LastName)
	setStr("office_address", req.OfficeAddress)
	setStr("office_address_doc", req.OfficeAddressDoc)
	setStr("nature_of_business", req.NatureOfBusiness)
	setStr("phoneno", req.PhoneNo)
	setStr("company_ntn", req.CompanyNTN)
	setStr("sales_tax_reg", req.SalesTaxReg)
	setStr("fax_no", req.FaxNo)
	setStr("email", req.Email)
	setStr("website", req.Website)
	setStr("join_date", req.JoinDate)
	setStr("name", req.Name)
	setStr("designation", req.Designation)
	setStr("companyaddress", req.CompanyAddress)
	if req.Active != nil {
		fields["active"] = *req.Active
	}
	if req.IndustryID != nil {
		fields["industry_id"] = *req.IndustryID
	}

	fileURL := strDefault(req.FileURL, "")
	if req.Image != "" {
		url, err := s.ingestor.Ingest(ctx, BucketAllMembers, req.Image, false)
		if err != nil {
			return nil, err
		}
		fileURL = url
	}
	fields["file_url"] = fileURL

	member, err := s.members.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, storeErr(err)
	}
	return member, nil
}

// Delete removes a directory entry. Deleting an absent row still succeeds.
func (s *AllMemberService) Delete(ctx context.Context, id int64) error {
	if err := s.members.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}

func strDefault(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}

func boolDefault(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}
