package models

// User is a registered account. The name is the login identifier and is
// unique at the store level; the bcrypt hash never leaves the backend.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"uniqueIndex;not null" json:"name"`
	Email        string `gorm:"not null" json:"email"`
	PasswordHash string `gorm:"column:password;not null" json:"-"`
	Role         string `gorm:"not null" json:"role"`
}
