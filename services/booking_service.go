package services

import (
	"fmt"
	"time"

	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/store"
	"github.com/YashI2IT/hostel/utils"
)

// BookingService reads bookings and maintains their payments. Bookings
// are opened by onboarding and closed by vacate, never directly here.
type BookingService struct {
	Store *store.Store
}

func NewBookingService(st *store.Store) *BookingService {
	return &BookingService{Store: st}
}

func (s *BookingService) GetBooking(id uint) (*models.Booking, error) {
	var out *models.Booking
	err := s.Store.View(func(tx *store.Tx) error {
		var err error
		out, err = tx.Booking(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out.FillDerived(), nil
}

func (s *BookingService) ListBookings(status *models.BookingStatus) ([]models.Booking, error) {
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("booking status %q: %w", *status, store.ErrValidation)
	}
	var out []models.Booking
	err := s.Store.View(func(tx *store.Tx) error {
		var err error
		out, err = tx.ListBookings(status)
		return err
	})
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].FillDerived()
	}
	return out, nil
}

type PaymentInput struct {
	Amount         float64
	Method         models.PaymentMethod
	TransactionRef *string
	PaidAt         *time.Time
}

// RecordPayment appends a payment to an open booking.
func (s *BookingService) RecordPayment(bookingID uint, in PaymentInput) (*models.Payment, error) {
	var out models.Payment
	err := s.Store.RunTransaction(func(tx *store.Tx) error {
		booking, err := tx.BookingForUpdate(bookingID)
		if err != nil {
			return err
		}
		if booking.Status != models.BookingActive {
			return fmt.Errorf("booking %d is closed: %w", bookingID, store.ErrConflict)
		}
		paidAt := time.Now()
		if in.PaidAt != nil {
			paidAt = *in.PaidAt
		}
		p := models.Payment{
			BookingID:      bookingID,
			Amount:         in.Amount,
			Method:         in.Method,
			ReceiptNo:      utils.NewReceiptNo(),
			PaidAt:         paidAt,
			TransactionRef: in.TransactionRef,
		}
		if err := tx.CreatePayment(&p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type PaymentUpdate struct {
	Amount         *float64
	Method         *models.PaymentMethod
	TransactionRef *string
	PaidAt         *time.Time
}

// UpdatePayment corrects a recorded payment. The receipt number never
// changes.
func (s *BookingService) UpdatePayment(paymentID uint, in PaymentUpdate) (*models.Payment, error) {
	var out models.Payment
	err := s.Store.RunTransaction(func(tx *store.Tx) error {
		p, err := tx.PaymentForUpdate(paymentID)
		if err != nil {
			return err
		}
		if in.Amount != nil {
			p.Amount = *in.Amount
		}
		if in.Method != nil {
			p.Method = *in.Method
		}
		if in.TransactionRef != nil {
			p.TransactionRef = in.TransactionRef
		}
		if in.PaidAt != nil {
			p.PaidAt = *in.PaidAt
		}
		if err := tx.SavePayment(p); err != nil {
			return err
		}
		out = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
