package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/store"
)

func countRows(t *testing.T, st *store.Store) (students, bookings, payments int) {
	t.Helper()
	require.NoError(t, st.View(func(tx *store.Tx) error {
		all, err := tx.ListStudents(false, "")
		if err != nil {
			return err
		}
		students = len(all)
		bks, err := tx.ListBookings(nil)
		if err != nil {
			return err
		}
		bookings = len(bks)
		payments = 0
		for _, b := range bks {
			full, err := tx.Booking(b.ID)
			if err != nil {
				return err
			}
			payments += len(full.Payments)
		}
		return nil
	}))
	return
}

func TestOnboardStudent(t *testing.T) {
	f := newFixture(t, 2)

	res, err := f.Onboarding.OnboardStudent(f.onboardInput(f.Beds[0].ID))
	require.NoError(t, err)

	assert.Equal(t, "Ravi Kumar", res.Student.Name)
	assert.True(t, res.Student.IsActive)

	assert.Equal(t, models.BookingActive, res.Booking.Status)
	assert.Equal(t, models.FrequencyYearly, res.Booking.Frequency)
	assert.InDelta(t, 60000, res.Booking.TotalAmount, 0.001)
	assert.InDelta(t, 5000, res.Booking.MonthlyRent, 0.001)
	assert.True(t, strings.HasPrefix(res.Booking.ReferenceCode, "BK-"))

	assert.Equal(t, res.Booking.ID, res.Payment.BookingID)
	assert.InDelta(t, 60000, res.Payment.Amount, 0.001)
	assert.Equal(t, models.PaymentUPIRequest, res.Payment.Method)
	assert.True(t, strings.HasPrefix(res.Payment.ReceiptNo, "RCPT-"))
	require.NotNil(t, res.Payment.TransactionRef)
	assert.Equal(t, "UPI-7781", *res.Payment.TransactionRef)
	assert.False(t, res.Payment.PaidAt.IsZero())

	assert.Equal(t, models.BedOccupied, res.Bed.Status)
	require.NotNil(t, res.Bed.CurrentStudentID)
	assert.Equal(t, res.Student.ID, *res.Bed.CurrentStudentID)
}

func TestOnboardBedTakenAtCommit(t *testing.T) {
	f := newFixture(t, 1)
	// the operator saw the bed free, then someone else moved in
	other := f.enrollStudent(t, "Amit Shah")
	_, err := f.Allocation.AssignBed(f.Beds[0].ID, other.ID)
	require.NoError(t, err)

	_, err = f.Onboarding.OnboardStudent(f.onboardInput(f.Beds[0].ID))
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrConflict)

	// the failed flow must leave no student, booking or payment behind
	students, bookings, payments := countRows(t, f.Store)
	assert.Equal(t, 1, students)
	assert.Equal(t, 1, bookings)
	assert.Equal(t, 0, payments)

	bed := f.reloadBed(t, f.Beds[0].ID)
	require.NotNil(t, bed.CurrentStudentID)
	assert.Equal(t, other.ID, *bed.CurrentStudentID)
}

func TestOnboardRollsBackOnValidation(t *testing.T) {
	f := newFixture(t, 1)

	in := f.onboardInput(f.Beds[0].ID)
	in.Frequency = "WEEKLY"
	_, err := f.Onboarding.OnboardStudent(in)
	assert.ErrorIs(t, err, store.ErrValidation)

	in = f.onboardInput(f.Beds[0].ID)
	in.PaymentMethod = "CARD"
	_, err = f.Onboarding.OnboardStudent(in)
	assert.ErrorIs(t, err, store.ErrValidation)

	in = f.onboardInput(f.Beds[0].ID)
	in.TotalAmount = 0
	_, err = f.Onboarding.OnboardStudent(in)
	assert.ErrorIs(t, err, store.ErrValidation)

	in = f.onboardInput(f.Beds[0].ID)
	in.Name = "  "
	_, err = f.Onboarding.OnboardStudent(in)
	assert.ErrorIs(t, err, store.ErrValidation)

	students, bookings, payments := countRows(t, f.Store)
	assert.Zero(t, students)
	assert.Zero(t, bookings)
	assert.Zero(t, payments)

	bed := f.reloadBed(t, f.Beds[0].ID)
	assert.Equal(t, models.BedAvailable, bed.Status)
}

func TestOnboardMissingBed(t *testing.T) {
	f := newFixture(t, 1)

	_, err := f.Onboarding.OnboardStudent(f.onboardInput(9999))
	assert.ErrorIs(t, err, store.ErrNotFound)

	students, bookings, _ := countRows(t, f.Store)
	assert.Zero(t, students)
	assert.Zero(t, bookings)
}

func TestOnboardMonthlyKeepsAmount(t *testing.T) {
	f := newFixture(t, 1)

	in := f.onboardInput(f.Beds[0].ID)
	in.Frequency = models.FrequencyMonthly
	in.TotalAmount = 4500
	res, err := f.Onboarding.OnboardStudent(in)
	require.NoError(t, err)
	assert.InDelta(t, 4500, res.Booking.MonthlyRent, 0.001)
}
