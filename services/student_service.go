package services

import (
	"fmt"

	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/store"
)

type StudentService struct {
	Store *store.Store
}

func NewStudentService(st *store.Store) *StudentService {
	return &StudentService{Store: st}
}

// StudentDetail is a student together with their current placement.
type StudentDetail struct {
	Student models.Student  `json:"student"`
	Bed     *models.Bed     `json:"bed,omitempty"`
	Booking *models.Booking `json:"booking,omitempty"`
}

func (s *StudentService) GetStudent(id uint) (*StudentDetail, error) {
	detail := &StudentDetail{}
	err := s.Store.View(func(tx *store.Tx) error {
		student, err := tx.Student(id)
		if err != nil {
			return err
		}
		detail.Student = *student

		bed, err := tx.BedHeldBy(id)
		if err != nil {
			return err
		}
		detail.Bed = bed

		open, err := tx.ActiveBookingFor(id)
		if err != nil {
			return err
		}
		if open != nil {
			full, err := tx.Booking(open.ID)
			if err != nil {
				return err
			}
			detail.Booking = full.FillDerived()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *StudentService) ListStudents(activeOnly bool, search string) ([]models.Student, error) {
	var out []models.Student
	err := s.Store.View(func(tx *store.Tx) error {
		var err error
		out, err = tx.ListStudents(activeOnly, search)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type StudentUpdate struct {
	Name             *string
	Age              *int
	PhoneNumber      *string
	Email            *string
	EmergencyContact *string
}

func (s *StudentService) UpdateProfile(id uint, in StudentUpdate) (*models.Student, error) {
	var out models.Student
	err := s.Store.RunTransaction(func(tx *store.Tx) error {
		student, err := tx.StudentForUpdate(id)
		if err != nil {
			return err
		}
		if in.Name != nil {
			student.Name = *in.Name
		}
		if in.Age != nil {
			student.Age = *in.Age
		}
		if in.PhoneNumber != nil {
			student.PhoneNumber = *in.PhoneNumber
		}
		if in.Email != nil {
			student.Email = *in.Email
		}
		if in.EmergencyContact != nil {
			student.EmergencyContact = *in.EmergencyContact
		}
		if err := tx.SaveStudent(student); err != nil {
			return err
		}
		out = *student
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// VacateResult reports what the move-out actually touched.
type VacateResult struct {
	Student       models.Student  `json:"student"`
	FreedBed      *models.Bed     `json:"freedBed,omitempty"`
	ClosedBooking *models.Booking `json:"closedBooking,omitempty"`
}

// Vacate is the full move-out: free the bed, close the open booking and
// deactivate the student, atomically. Vacating an inactive student is a
// conflict.
func (s *StudentService) Vacate(id uint) (*VacateResult, error) {
	res := &VacateResult{}
	err := s.Store.RunTransaction(func(tx *store.Tx) error {
		student, err := tx.StudentForUpdate(id)
		if err != nil {
			return err
		}
		if !student.IsActive {
			return fmt.Errorf("student %d already vacated: %w", id, store.ErrConflict)
		}

		bed, err := tx.BedHeldBy(id)
		if err != nil {
			return err
		}
		if bed != nil {
			bed.Status = models.BedAvailable
			bed.CurrentStudentID = nil
			if err := tx.SaveBed(bed); err != nil {
				return err
			}
			res.FreedBed = bed
		}

		open, err := tx.ActiveBookingFor(id)
		if err != nil {
			return err
		}
		if open != nil {
			open.Status = models.BookingClosed
			if err := tx.SaveBooking(open); err != nil {
				return err
			}
			res.ClosedBooking = open.FillDerived()
		}

		student.IsActive = false
		if err := tx.SaveStudent(student); err != nil {
			return err
		}
		res.Student = *student
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
