package services

import (
	"fmt"
	"strings"

	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/store"
)

// Bed labels run A..Z, so a room never carries more than 26 beds.
const maxBedsPerRoom = 26

// AllocationService owns every transition of the bed/occupancy state:
// assigning, releasing, room creation and capacity changes.
type AllocationService struct {
	Store *store.Store
}

func NewAllocationService(st *store.Store) *AllocationService {
	return &AllocationService{Store: st}
}

// AssignBed places a student on an available bed. The student must be
// active, hold no other bed and have an open booking.
func (s *AllocationService) AssignBed(bedID, studentID uint) (*models.Bed, error) {
	var out models.Bed
	err := s.Store.RunTransaction(func(tx *store.Tx) error {
		bed, err := assignBedTx(tx, bedID, studentID)
		if err != nil {
			return err
		}
		out = *bed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// assignBedTx is the single code path that marks a bed occupied. The
// onboarding flow runs it inside its own transaction so the free-bed
// check happens at commit time, not when the operator picked the bed.
func assignBedTx(tx *store.Tx, bedID, studentID uint) (*models.Bed, error) {
	bed, err := tx.BedForUpdate(bedID)
	if err != nil {
		return nil, err
	}
	if bed.Status != models.BedAvailable {
		return nil, fmt.Errorf("bed %d is already occupied: %w", bedID, store.ErrConflict)
	}
	student, err := tx.StudentForUpdate(studentID)
	if err != nil {
		return nil, err
	}
	if !student.IsActive {
		return nil, fmt.Errorf("student %d is not active: %w", studentID, store.ErrConflict)
	}
	held, err := tx.BedHeldBy(studentID)
	if err != nil {
		return nil, err
	}
	if held != nil {
		return nil, fmt.Errorf("student %d already holds bed %d: %w", studentID, held.ID, store.ErrConflict)
	}
	open, err := tx.ActiveBookingFor(studentID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, fmt.Errorf("student %d has no open booking: %w", studentID, store.ErrConflict)
	}
	bed.Status = models.BedOccupied
	bed.CurrentStudentID = &studentID
	if err := tx.SaveBed(bed); err != nil {
		return nil, err
	}
	return bed, nil
}

// ReleaseBed frees a bed. Releasing an already free bed is a no-op; the
// student's booking is left untouched.
func (s *AllocationService) ReleaseBed(bedID uint) (*models.Bed, error) {
	var out models.Bed
	err := s.Store.RunTransaction(func(tx *store.Tx) error {
		bed, err := tx.BedForUpdate(bedID)
		if err != nil {
			return err
		}
		if bed.Status == models.BedAvailable {
			out = *bed
			return nil
		}
		bed.Status = models.BedAvailable
		bed.CurrentStudentID = nil
		if err := tx.SaveBed(bed); err != nil {
			return err
		}
		out = *bed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ResizeRoomCapacity changes the allowed headcount of a room. Growing
// past the current bed count creates the missing beds; shrinking never
// deletes any, and never goes below the number of occupied beds.
func (s *AllocationService) ResizeRoomCapacity(roomID uint, newCapacity int) (*models.Room, []models.Bed, error) {
	if newCapacity <= 0 {
		return nil, nil, fmt.Errorf("capacity must be positive: %w", store.ErrValidation)
	}
	if newCapacity > maxBedsPerRoom {
		return nil, nil, fmt.Errorf("capacity cannot exceed %d beds per room: %w", maxBedsPerRoom, store.ErrValidation)
	}
	var (
		room    *models.Room
		created []models.Bed
	)
	err := s.Store.RunTransaction(func(tx *store.Tx) error {
		r, err := tx.RoomForUpdate(roomID)
		if err != nil {
			return err
		}
		beds, err := tx.BedsForUpdate(roomID)
		if err != nil {
			return err
		}
		occupied := 0
		for _, b := range beds {
			if b.Status == models.BedOccupied {
				occupied++
			}
		}
		if newCapacity < occupied {
			return fmt.Errorf("room %d has %d students placed: %w", roomID, occupied, store.ErrCapacityViolation)
		}
		r.Capacity = newCapacity
		if err := tx.SaveRoom(r); err != nil {
			return err
		}
		if n := newCapacity - len(beds); n > 0 {
			maxLabel, err := tx.MaxBedLabel(roomID)
			if err != nil {
				return err
			}
			labels, err := nextBedLabels(maxLabel, n)
			if err != nil {
				return err
			}
			created = make([]models.Bed, len(labels))
			for i, label := range labels {
				created[i] = models.Bed{RoomID: roomID, Label: label, Status: models.BedAvailable}
			}
			if err := tx.CreateBeds(created); err != nil {
				return err
			}
		}
		room = r
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return room, created, nil
}

// CreateRoomWithBeds creates a room and its full set of beds in one
// transaction. Capacity starts equal to the bed count.
func (s *AllocationService) CreateRoomWithBeds(propertyID uint, roomNumber string, floorNumber int, roomType models.RoomType, bedCount int) (*models.Room, error) {
	if bedCount < 1 {
		return nil, fmt.Errorf("bed count must be at least 1: %w", store.ErrValidation)
	}
	if bedCount > maxBedsPerRoom {
		return nil, fmt.Errorf("bed count cannot exceed %d: %w", maxBedsPerRoom, store.ErrValidation)
	}
	var room *models.Room
	err := s.Store.RunTransaction(func(tx *store.Tx) error {
		if _, err := tx.Property(propertyID); err != nil {
			return err
		}
		r := &models.Room{
			PropertyID:  propertyID,
			RoomNumber:  strings.TrimSpace(roomNumber),
			FloorNumber: floorNumber,
			Type:        roomType,
			Capacity:    bedCount,
		}
		if err := tx.CreateRoom(r); err != nil {
			return err
		}
		labels, err := nextBedLabels("", bedCount)
		if err != nil {
			return err
		}
		beds := make([]models.Bed, len(labels))
		for i, label := range labels {
			beds[i] = models.Bed{RoomID: r.ID, Label: label, Status: models.BedAvailable}
		}
		if err := tx.CreateBeds(beds); err != nil {
			return err
		}
		r.Beds = beds
		room = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

// RemoveBed deletes an unoccupied bed. Its label stays reserved.
func (s *AllocationService) RemoveBed(bedID uint) error {
	return s.Store.RunTransaction(func(tx *store.Tx) error {
		bed, err := tx.BedForUpdate(bedID)
		if err != nil {
			return err
		}
		if bed.Status == models.BedOccupied {
			return fmt.Errorf("bed %d is occupied: %w", bedID, store.ErrConflict)
		}
		return tx.DeleteBed(bed)
	})
}

// nextBedLabels continues the label sequence after maxLabel. Removed
// beds keep their label, so the sequence can exhaust before the live
// bed count reaches 26.
func nextBedLabels(maxLabel string, n int) ([]string, error) {
	next := byte('A')
	if maxLabel != "" {
		next = maxLabel[0] + 1
	}
	if int(next-'A')+n > maxBedsPerRoom {
		return nil, fmt.Errorf("bed labels exhausted (A..Z): %w", store.ErrValidation)
	}
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = string(rune(next + byte(i)))
	}
	return labels, nil
}
