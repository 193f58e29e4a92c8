package models

import (
	"time"

	"gorm.io/gorm"
)

type Complaint struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomID      uint              `gorm:"column:room_id;index" json:"roomId"`
	StudentID   *uint             `gorm:"column:student_id;index" json:"studentId,omitempty"`
	Category    ComplaintCategory `gorm:"column:category;size:32" json:"category"`
	Description string            `gorm:"column:description;type:text" json:"description"`
	Status      ComplaintStatus   `gorm:"column:status;size:32" json:"status"`

	// ResolvedAt is stamped once, when the complaint enters RESOLVED.
	ResolvedAt *time.Time `gorm:"column:resolved_at" json:"resolvedAt,omitempty"`

	Room    Room     `gorm:"foreignKey:RoomID" json:"-"`
	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}
