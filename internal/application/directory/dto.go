package directory

import (
	"errors"

	"github.com/hsati/directory-backend/internal/domain/shared"
)

// Update requests use pointers so an absent field can be told apart from an
// explicit empty value; only submitted fields reach the UPDATE statement.
// The image field always carries inline base64 (optionally with a data-URL
// prefix), while the *_url fields carry an already-hosted URL verbatim.

// CreateMemberRequest is the payload for adding a committee member
type CreateMemberRequest struct {
	Name           string `json:"name"`
	Designation    string `json:"designation"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CompanyAddress string `json:"company_address"`
	Image          string `json:"image"`
	ImageURL       string `json:"image_url"`
}

// UpdateMemberRequest is the payload for updating a committee member
type UpdateMemberRequest struct {
	Name           *string `json:"name"`
	Designation    *string `json:"designation"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	CompanyAddress *string `json:"company_address"`
	Active         *bool   `json:"active"`
	Image          string  `json:"image"`
	ImageURL       *string `json:"image_url"`
}

// CreateEventRequest is the payload for adding an event
type CreateEventRequest struct {
	Title     string `json:"title"`
	EventDate string `json:"eventdate"`
	Image     string `json:"image"`
	ImageURL  string `json:"image_url"`
}

// UpdateEventRequest is the payload for updating an event
type UpdateEventRequest struct {
	Title     *string `json:"title"`
	EventDate *string `json:"eventdate"`
	Image     string  `json:"image"`
	ImageURL  string  `json:"image_url"`
}

// CreateCircularRequest is the payload for adding a circular
type CreateCircularRequest struct {
	CircularNo   string `json:"circularno"`
	CircularName string `json:"circularname"`
	CircularDate string `json:"circulardate"`
	Image        string `json:"image"`
	ImageURL     string `json:"circularimage"`
}

// UpdateCircularRequest is the payload for updating a circular
type UpdateCircularRequest struct {
	CircularNo   *string `json:"circularno"`
	CircularName *string `json:"circularname"`
	CircularDate *string `json:"circulardate"`
	Image        string  `json:"image"`
	ImageURL     string  `json:"circularimage"`
}

// CreateCleanGreenRequest is the payload for adding a clean & green card
type CreateCleanGreenRequest struct {
	Title    string `json:"title"`
	Image    string `json:"image"`
	ImageURL string `json:"cleanimage"`
}

// UpdateCleanGreenRequest is the payload for updating a clean & green card
type UpdateCleanGreenRequest struct {
	Title    *string `json:"title"`
	Image    string  `json:"image"`
	ImageURL string  `json:"cleanimage"`
}

// AllMemberFields carries the directory-entry columns shared by create and
// update. Every field is optional; the legacy directory has plenty of
// partially-filled rows.
type AllMemberFields struct {
	MemberCode       *string `json:"member_code"`
	Company          *string `json:"company"`
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	OfficeAddress    *string `json:"office_address"`
	OfficeAddressDoc *string `json:"office_address_doc"`
	NatureOfBusiness *string `json:"nature_of_business"`
	PhoneNo          *string `json:"phoneno"`
	CompanyNTN       *string `json:"company_ntn"`
	SalesTaxReg      *string `json:"sales_tax_reg"`
	FaxNo            *string `json:"fax_no"`
	Email            *string `json:"email"`
	Website          *string `json:"website"`
	JoinDate         *string `json:"join_date"`
	Active           *bool   `json:"active"`
	Name             *string `json:"name"`
	Designation      *string `json:"designation"`
	CompanyAddress   *string `json:"companyaddress"`
	IndustryID       *int64  `json:"industry_id"`
	Image            string  `json:"image"`
	FileURL          *string `json:"file_url"`
}

// CreateIndustryRequest is the payload for adding an industry
type CreateIndustryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// UpdateIndustryRequest is the payload for updating an industry
type UpdateIndustryRequest struct {
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

// storeErr maps a repository failure to the dependency error unless it is
// already a domain error (e.g. not-found).
func storeErr(err error) error {
	var derr *shared.DomainError
	if errors.As(err, &derr) {
		return err
	}
	return shared.NewDependencyError("data store", err)
}
