package directory

// AllMember is a full association-directory entry. Column names follow the
// legacy schema, including the unprefixed companyaddress and phoneno.
type AllMember struct {
	ID               int64  `gorm:"primaryKey" json:"id"`
	MemberCode       string `gorm:"column:member_code" json:"member_code"`
	Company          string `gorm:"column:company" json:"company"`
	FirstName        string `gorm:"column:first_name" json:"first_name"`
	LastName         string `gorm:"column:last_name" json:"last_name"`
	OfficeAddress    string `gorm:"column:office_address" json:"office_address"`
	OfficeAddressDoc string `gorm:"column:office_address_doc" json:"office_address_doc"`
	NatureOfBusiness string `gorm:"column:nature_of_business" json:"nature_of_business"`
	PhoneNo          string `gorm:"column:phoneno" json:"phoneno"`
	CompanyNTN       string `gorm:"column:company_ntn" json:"company_ntn"`
	SalesTaxReg      string `gorm:"column:sales_tax_reg" json:"sales_tax_reg"`
	FaxNo            string `gorm:"column:fax_no" json:"fax_no"`
	Email            string `gorm:"column:email" json:"email"`
	Website          string `gorm:"column:website" json:"website"`
	JoinDate         string `gorm:"column:join_date" json:"join_date"`
	Active           bool   `gorm:"column:active" json:"active"`
	FileURL          string `gorm:"column:file_url" json:"file_url"`
	Name             string `gorm:"column:name" json:"name"`
	Designation      string `gorm:"column:designation" json:"designation"`
	CompanyAddress   string `gorm:"column:companyaddress" json:"companyaddress"`
	IndustryID       *int64 `gorm:"column:industry_id" json:"industry_id"`
}

// TableName returns the table name for GORM
func (AllMember) TableName() string {
	return "allmembers"
}
