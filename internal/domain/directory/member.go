package directory

// Member is an executive-committee member shown on the site. Active rows are
// the ones the public frontend renders; inactive rows stay in the admin list.
type Member struct {
	ID             int64  `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"column:name" json:"name"`
	Designation    string `gorm:"column:designation" json:"designation"`
	Email          string `gorm:"column:email" json:"email"`
	Phone          string `gorm:"column:phone" json:"phone"`
	CompanyAddress string `gorm:"column:company_address" json:"company_address"`
	Active         bool   `gorm:"column:active" json:"active"`
	ImageURL       string `gorm:"column:image_url" json:"image_url"`
}

// TableName returns the table name for GORM
func (Member) TableName() string {
	return "members"
}
