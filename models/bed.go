package models

import (
	"time"

	"gorm.io/gorm"
)

// Bed labels run A..Z inside a room and are never reissued, even after
// a bed is removed.
type Bed struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomID uint      `gorm:"column:room_id;index;uniqueIndex:idx_room_bed" json:"roomId"`
	Label  string    `gorm:"column:label;size:8;uniqueIndex:idx_room_bed" json:"label"`
	Status BedStatus `gorm:"column:status;size:32" json:"status"`

	// CurrentStudentID is set exactly when Status is OCCUPIED.
	CurrentStudentID *uint `gorm:"column:current_student_id;index" json:"currentStudentId"`

	Room           Room     `gorm:"foreignKey:RoomID" json:"-"`
	CurrentStudent *Student `gorm:"foreignKey:CurrentStudentID" json:"currentStudent,omitempty"`
}
