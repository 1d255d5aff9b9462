package directory

// Category is a label members can be grouped under.
type Category struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:name" json:"name"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// MemberCategory links a directory entry to a category. The pair is the
// primary key, so re-assigning the same category is a no-op.
type MemberCategory struct {
	MemberID   int64 `gorm:"column:member_id;primaryKey" json:"member_id"`
	CategoryID int64 `gorm:"column:category_id;primaryKey" json:"category_id"`
}

// TableName returns the table name for GORM
func (MemberCategory) TableName() string {
	return "member_categories"
}
