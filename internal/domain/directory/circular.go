package directory

// Circular is a numbered notice published to members.
type Circular struct {
	ID            int64  `gorm:"primaryKey" json:"id"`
	CircularNo    string `gorm:"column:circularno" json:"circularno"`
	CircularName  string `gorm:"column:circularname" json:"circularname"`
	CircularDate  string `gorm:"column:circulardate" json:"circulardate"`
	CircularImage string `gorm:"column:circularimage" json:"circularimage"`
}

// TableName returns the table name for GORM
func (Circular) TableName() string {
	return "circulars"
}
