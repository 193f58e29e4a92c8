package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a staff account, not a resident. Residents live in Student.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username string   `gorm:"column:username;size:64;uniqueIndex" json:"username"`
	Password string   `gorm:"column:password;size:255" json:"-"`
	Name     string   `gorm:"column:name;size:255" json:"name"`
	Role     UserRole `gorm:"column:role;size:32" json:"role"`
}
