package directory

// CleanGreenCard is a card on the clean & green campaign page.
type CleanGreenCard struct {
	ID         int64  `gorm:"primaryKey" json:"id"`
	Title      string `gorm:"column:title" json:"title"`
	CleanImage string `gorm:"column:cleanimage" json:"cleanimage"`
}

// TableName returns the table name for GORM
func (CleanGreenCard) TableName() string {
	return "clean_green_cards"
}
