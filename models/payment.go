package models

import (
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookingID uint          `gorm:"column:booking_id;index" json:"bookingId"`
	Amount    float64       `gorm:"column:amount" json:"amount"`
	Method    PaymentMethod `gorm:"column:method;size:32" json:"method"`
	ReceiptNo string        `gorm:"column:receipt_no;size:64;uniqueIndex" json:"receiptNo"`
	PaidAt    time.Time     `gorm:"column:paid_at" json:"paidAt"`

	// TransactionRef is the UPI/QR reference. CASH_OFFLINE payments have none.
	TransactionRef *string `gorm:"column:transaction_ref;size:128" json:"transactionRef,omitempty"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}
