package models

import (
	"time"

	"gorm.io/gorm"
)

type Student struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name             string `gorm:"column:name;size:255" json:"name"`
	Age              int    `gorm:"column:age" json:"age"`
	PhoneNumber      string `gorm:"column:phone_number;size:32" json:"phoneNumber"`
	Email            string `gorm:"column:email;size:255" json:"email"`
	EmergencyContact string `gorm:"column:emergency_contact;size:32" json:"emergencyContact"`

	// IsActive flips to false on vacate. An inactive student holds no bed
	// and no open booking.
	IsActive bool `gorm:"column:is_active;default:true" json:"isActive"`

	Bookings []Booking `gorm:"foreignKey:StudentID" json:"bookings,omitempty"`
}
