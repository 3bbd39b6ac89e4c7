package entities

// PendingID marks a record a caller has built but not yet persisted.
// The storage layer replaces it with an auto-assigned key on insert.
const PendingID = -1

// User is an account record. Email is expected to be unique but the table
// carries no uniqueness constraint; registration enforces it with a
// read-before-write check. Password is stored and compared as plain text,
// a carried-over weakness of the original data model.
type User struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255" json:"name"`
	Birthday string `gorm:"size:32" json:"birthday"`
	Phone    string `gorm:"size:32" json:"phone"`
	Email    string `gorm:"index;size:255" json:"email"`
	Password string `gorm:"size:255" json:"-"`
}

func (User) TableName() string {
	return "users"
}
