package entities

// Event is a dated entry owned by a user. Date uses the single canonical
// layout from the dates package. UserID references a users row by
// convention only; the schema has no foreign-key constraint and users are
// never deleted in-app. The column name `user id` (with a space) is kept
// for compatibility with existing databases.
type Event struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255" json:"title"`
	Date        string `gorm:"size:32" json:"date"`
	Description string `gorm:"type:text" json:"description"`
	UserID      int    `gorm:"column:user id;index" json:"user_id"`
}

func (Event) TableName() string {
	return "events"
}
