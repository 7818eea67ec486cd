package models

// User is an authenticated platform user. Only the fields needed to resolve
// invitees (id, @handle or email) live here.
type User struct {
	BaseModel
	Handle string `json:"handle" gorm:"uniqueIndex;not null;size:64" validate:"required,max=64"`
	Email  string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name   string `json:"name" gorm:"size:200" validate:"max=200"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
