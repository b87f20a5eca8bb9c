package model

type User struct {
	Base
	Email     string `gorm:"size:120;not null;uniqueIndex" json:"email"`
	FirstName string `gorm:"size:50" json:"first_name"`
	LastName  string `gorm:"size:50" json:"last_name"`
	Password  string `gorm:"size:128;not null" json:"-"` // bcrypt hash
	IsAdmin   bool   `gorm:"not null;default:false" json:"is_admin"`
}
