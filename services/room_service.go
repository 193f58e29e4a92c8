package services

import (
	"fmt"
	"strings"

	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/store"
)

// RoomService covers plain room reads and edits. Capacity changes and
// room creation belong to AllocationService because they move beds.
type RoomService struct {
	Store *store.Store
}

func NewRoomService(st *store.Store) *RoomService {
	return &RoomService{Store: st}
}

func (s *RoomService) GetRoom(id uint) (*models.Room, error) {
	var out *models.Room
	err := s.Store.View(func(tx *store.Tx) error {
		var err error
		out, err = tx.RoomWithBeds(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RoomService) ListRooms(propertyID *uint) ([]models.Room, error) {
	var out []models.Room
	err := s.Store.View(func(tx *store.Tx) error {
		if propertyID != nil {
			if _, err := tx.Property(*propertyID); err != nil {
				return err
			}
		}
		var err error
		out, err = tx.ListRooms(propertyID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type RoomUpdate struct {
	RoomNumber  *string
	FloorNumber *int
	Type        *models.RoomType
}

func (s *RoomService) UpdateRoom(id uint, in RoomUpdate) (*models.Room, error) {
	var out models.Room
	err := s.Store.RunTransaction(func(tx *store.Tx) error {
		r, err := tx.RoomForUpdate(id)
		if err != nil {
			return err
		}
		if in.RoomNumber != nil {
			number := strings.TrimSpace(*in.RoomNumber)
			if number == "" {
				return fmt.Errorf("room number is required: %w", store.ErrValidation)
			}
			r.RoomNumber = number
		}
		if in.FloorNumber != nil {
			r.FloorNumber = *in.FloorNumber
		}
		if in.Type != nil {
			r.Type = *in.Type
		}
		if err := tx.SaveRoom(r); err != nil {
			return err
		}
		out = *r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRoom removes a room and its beds, refusing while anyone still
// lives there.
func (s *RoomService) DeleteRoom(id uint) error {
	return s.Store.RunTransaction(func(tx *store.Tx) error {
		r, err := tx.RoomForUpdate(id)
		if err != nil {
			return err
		}
		occupied, err := tx.OccupiedBedCount(id)
		if err != nil {
			return err
		}
		if occupied > 0 {
			return fmt.Errorf("room %d still houses %d students: %w", id, occupied, store.ErrConflict)
		}
		if err := tx.DeleteBedsForRoom(id); err != nil {
			return err
		}
		return tx.DeleteRoom(r)
	})
}
