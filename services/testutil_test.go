package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/store"
	"github.com/YashI2IT/hostel/utils"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Room{},
		&models.Bed{},
		&models.Student{},
		&models.Booking{},
		&models.Payment{},
		&models.Complaint{},
	))
	return store.New(db)
}

// fixture seeds one property with one AC room of bedCount beds and hands
// back the services under test.
type fixture struct {
	Store      *store.Store
	Allocation *AllocationService
	Onboarding *OnboardingService
	Students   *StudentService
	Bookings   *BookingService
	Complaints *ComplaintService
	Occupancy  *OccupancyService
	Reports    *ReportService

	Property *models.Property
	Room     *models.Room
	Beds     []models.Bed
}

func newFixture(t *testing.T, bedCount int) *fixture {
	t.Helper()
	st := newTestStore(t)
	f := &fixture{
		Store:      st,
		Allocation: NewAllocationService(st),
		Onboarding: NewOnboardingService(st),
		Students:   NewStudentService(st),
		Bookings:   NewBookingService(st),
		Complaints: NewComplaintService(st),
		Occupancy:  NewOccupancyService(st),
		Reports:    NewReportService(st),
	}

	f.Property = &models.Property{Name: "Sunrise Residency", Address: "12 College Rd", TotalFloors: 3}
	require.NoError(t, st.RunTransaction(func(tx *store.Tx) error {
		return tx.CreateProperty(f.Property)
	}))

	room, err := f.Allocation.CreateRoomWithBeds(f.Property.ID, "101", 1, models.RoomTypeAC, bedCount)
	require.NoError(t, err)
	f.Room = room
	f.Beds = room.Beds
	return f
}

// enrollStudent creates an active student with an open booking but no
// bed, the state assignBed expects.
func (f *fixture) enrollStudent(t *testing.T, name string) *models.Student {
	t.Helper()
	student := &models.Student{Name: name, Age: 20, PhoneNumber: "9000000000", IsActive: true}
	require.NoError(t, f.Store.RunTransaction(func(tx *store.Tx) error {
		if err := tx.CreateStudent(student); err != nil {
			return err
		}
		return tx.CreateBooking(&models.Booking{
			StudentID:     student.ID,
			ReferenceCode: utils.NewBookingRef(),
			Frequency:     models.FrequencyMonthly,
			StartDate:     time.Now(),
			TotalAmount:   5000,
			Status:        models.BookingActive,
		})
	}))
	return student
}

func (f *fixture) reloadBed(t *testing.T, id uint) *models.Bed {
	t.Helper()
	var bed *models.Bed
	require.NoError(t, f.Store.View(func(tx *store.Tx) error {
		var err error
		bed, err = tx.Bed(id)
		return err
	}))
	return bed
}

func (f *fixture) onboardInput(bedID uint) OnboardInput {
	ref := "UPI-7781"
	return OnboardInput{
		Name:             "Ravi Kumar",
		Age:              20,
		PhoneNumber:      "9000000001",
		Email:            "ravi@example.com",
		EmergencyContact: "9000000002",
		BedID:            bedID,
		Frequency:        models.FrequencyYearly,
		StartDate:        time.Now(),
		TotalAmount:      60000,
		PaymentMethod:    models.PaymentUPIRequest,
		TransactionRef:   &ref,
	}
}
