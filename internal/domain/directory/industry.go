package directory

// Industry is a sector a directory entry belongs to, with an icon shown in
// the industry browser.
type Industry struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:name" json:"name"`
	Icon string `gorm:"column:icon" json:"icon"`
}

// TableName returns the table name for GORM
func (Industry) TableName() string {
	return "industries"
}
