package services

import (
	"fmt"
	"time"

	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/store"
	"github.com/YashI2IT/hostel/utils"
)

// OnboardingService runs the front-desk flow that registers a student,
// opens their booking, records the first payment and places them on a
// bed, all inside one transaction.
type OnboardingService struct {
	Store *store.Store
}

func NewOnboardingService(st *store.Store) *OnboardingService {
	return &OnboardingService{Store: st}
}

type OnboardInput struct {
	Name             string
	Age              int
	PhoneNumber      string
	Email            string
	EmergencyContact string

	BedID uint

	Frequency   models.Frequency
	StartDate   time.Time
	EndDate     *time.Time
	TotalAmount float64

	PaymentMethod  models.PaymentMethod
	TransactionRef *string
}

type OnboardResult struct {
	Student models.Student `json:"student"`
	Booking models.Booking `json:"booking"`
	Payment models.Payment `json:"payment"`
	Bed     models.Bed     `json:"bed"`
}

// OnboardStudent either commits the full move-in or nothing at all. The
// chosen bed is re-checked under lock, so a bed grabbed by a concurrent
// onboarding fails the whole flow with a conflict.
func (s *OnboardingService) OnboardStudent(in OnboardInput) (*OnboardResult, error) {
	res := &OnboardResult{}
	err := s.Store.RunTransaction(func(tx *store.Tx) error {
		bed, err := tx.BedForUpdate(in.BedID)
		if err != nil {
			return err
		}
		if bed.Status != models.BedAvailable {
			return fmt.Errorf("bed %d was taken during onboarding: %w", in.BedID, store.ErrConflict)
		}

		student := models.Student{
			Name:             in.Name,
			Age:              in.Age,
			PhoneNumber:      in.PhoneNumber,
			Email:            in.Email,
			EmergencyContact: in.EmergencyContact,
			IsActive:         true,
		}
		if err := tx.CreateStudent(&student); err != nil {
			return err
		}

		booking := models.Booking{
			StudentID:     student.ID,
			ReferenceCode: utils.NewBookingRef(),
			Frequency:     in.Frequency,
			StartDate:     in.StartDate,
			EndDate:       in.EndDate,
			TotalAmount:   in.TotalAmount,
			Status:        models.BookingActive,
		}
		if err := tx.CreateBooking(&booking); err != nil {
			return err
		}

		payment := models.Payment{
			BookingID:      booking.ID,
			Amount:         in.TotalAmount,
			Method:         in.PaymentMethod,
			ReceiptNo:      utils.NewReceiptNo(),
			PaidAt:         time.Now(),
			TransactionRef: in.TransactionRef,
		}
		if err := tx.CreatePayment(&payment); err != nil {
			return err
		}

		placed, err := assignBedTx(tx, bed.ID, student.ID)
		if err != nil {
			return err
		}

		res.Student = student
		res.Booking = *booking.FillDerived()
		res.Payment = payment
		res.Bed = *placed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
