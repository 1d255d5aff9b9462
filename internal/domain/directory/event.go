package directory

// Event is an association event announcement with an optional banner image.
type Event struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"column:title" json:"title"`
	EventDate string `gorm:"column:eventdate" json:"eventdate"`
	ImageURL  string `gorm:"column:image_url" json:"image_url"`
}

// TableName returns the table name for GORM
func (Event) TableName() string {
	return "events"
}
