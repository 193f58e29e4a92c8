package models

import (
	"time"

	"gorm.io/gorm"
)

// Room numbers repeat across properties but not inside one.
type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PropertyID  uint     `gorm:"column:property_id;index;uniqueIndex:idx_property_room" json:"propertyId"`
	RoomNumber  string   `gorm:"column:room_number;size:50;uniqueIndex:idx_property_room" json:"roomNumber"`
	FloorNumber int      `gorm:"column:floor_number" json:"floorNumber"`
	Type        RoomType `gorm:"column:type;size:32" json:"type"`

	// Capacity is the allowed headcount, not the bed count. Shrinking it
	// never deletes beds, so Capacity may sit below len(Beds).
	Capacity int `gorm:"column:capacity" json:"capacity"`

	Property Property `gorm:"foreignKey:PropertyID" json:"-"`
	Beds     []Bed    `gorm:"foreignKey:RoomID" json:"beds,omitempty"`
}
