package models

import (
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	StudentID     uint          `gorm:"column:student_id;index" json:"studentId"`
	ReferenceCode string        `gorm:"column:reference_code;size:64;uniqueIndex" json:"referenceCode"`
	Frequency     Frequency     `gorm:"column:frequency;size:32" json:"frequency"`
	StartDate     time.Time     `gorm:"column:start_date" json:"startDate"`
	EndDate       *time.Time    `gorm:"column:end_date" json:"endDate,omitempty"`
	TotalAmount   float64       `gorm:"column:total_amount" json:"totalAmount"`
	Status        BookingStatus `gorm:"column:status;size:32" json:"status"`

	// MonthlyRent is derived from Frequency and TotalAmount, never stored.
	MonthlyRent float64 `gorm:"-" json:"monthlyRent"`

	Student  Student   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Payments []Payment `gorm:"foreignKey:BookingID" json:"payments,omitempty"`
}

// EffectiveMonthlyRent converts TotalAmount to a monthly figure. YEARLY
// amounts cover twelve months; MONTHLY and EXCEPTION amounts already are
// the monthly figure.
func (b *Booking) EffectiveMonthlyRent() float64 {
	if b.Frequency == FrequencyYearly {
		return b.TotalAmount / 12
	}
	return b.TotalAmount
}

// FillDerived populates the transient fields sent to clients.
func (b *Booking) FillDerived() *Booking {
	b.MonthlyRent = b.EffectiveMonthlyRent()
	return b
}
