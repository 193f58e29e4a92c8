package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Property struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string         `gorm:"column:name;size:255" json:"name"`
	Address     string         `gorm:"column:address;type:text" json:"address"`
	TotalFloors int            `gorm:"column:total_floors" json:"totalFloors"`
	Amenities   datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	Rooms []Room `gorm:"foreignKey:PropertyID" json:"rooms,omitempty"`
}
