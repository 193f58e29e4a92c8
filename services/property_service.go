package services

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/store"
)

type PropertyService struct {
	Store *store.Store
}

func NewPropertyService(st *store.Store) *PropertyService {
	return &PropertyService{Store: st}
}

type PropertyInput struct {
	Name        string
	Address     string
	TotalFloors int
	Amenities   []string
}

func amenitiesJSON(amenities []string) (datatypes.JSON, error) {
	if amenities == nil {
		return nil, nil
	}
	raw, err := json.Marshal(amenities)
	if err != nil {
		return nil, fmt.Errorf("amenities: %w", store.ErrValidation)
	}
	return datatypes.JSON(raw), nil
}

func (s *PropertyService) CreateProperty(in PropertyInput) (*models.Property, error) {
	if in.TotalFloors <= 0 {
		return nil, fmt.Errorf("total floors must be positive: %w", store.ErrValidation)
	}
	amenities, err := amenitiesJSON(in.Amenities)
	if err != nil {
		return nil, err
	}
	p := &models.Property{
		Name:        in.Name,
		Address:     in.Address,
		TotalFloors: in.TotalFloors,
		Amenities:   amenities,
	}
	err = s.Store.RunTransaction(func(tx *store.Tx) error {
		return tx.CreateProperty(p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

type PropertyUpdate struct {
	Name        *string
	Address     *string
	TotalFloors *int
	Amenities   []string
}

func (s *PropertyService) UpdateProperty(id uint, in PropertyUpdate) (*models.Property, error) {
	var out models.Property
	err := s.Store.RunTransaction(func(tx *store.Tx) error {
		p, err := tx.PropertyForUpdate(id)
		if err != nil {
			return err
		}
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Address != nil {
			p.Address = *in.Address
		}
		if in.TotalFloors != nil {
			if *in.TotalFloors <= 0 {
				return fmt.Errorf("total floors must be positive: %w", store.ErrValidation)
			}
			p.TotalFloors = *in.TotalFloors
		}
		if in.Amenities != nil {
			amenities, err := amenitiesJSON(in.Amenities)
			if err != nil {
				return err
			}
			p.Amenities = amenities
		}
		if err := tx.SaveProperty(p); err != nil {
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

func (s *PropertyService) ListProperties() ([]models.Property, error) {
	var out []models.Property
	err := s.Store.View(func(tx *store.Tx) error {
		var err error
		out, err = tx.ListProperties()
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetProperty returns the property with its full room and bed graph.
func (s *PropertyService) GetProperty(id uint) (*models.Property, error) {
	snap, err := s.Store.ReadGraph(&id)
	if err != nil {
		return nil, err
	}
	return &snap.Properties[0], nil
}

// DeleteProperty removes a property with all its rooms and beds. It
// refuses while any bed in the property is occupied.
func (s *PropertyService) DeleteProperty(id uint) error {
	return s.Store.RunTransaction(func(tx *store.Tx) error {
		p, err := tx.PropertyForUpdate(id)
		if err != nil {
			return err
		}
		occupied, err := tx.OccupiedBedCountForProperty(id)
		if err != nil {
			return err
		}
		if occupied > 0 {
			return fmt.Errorf("property %d still houses %d students: %w", id, occupied, store.ErrConflict)
		}
		rooms, err := tx.ListRooms(&id)
		if err != nil {
			return err
		}
		for i := range rooms {
			if err := tx.DeleteBedsForRoom(rooms[i].ID); err != nil {
				return err
			}
			if err := tx.DeleteRoom(&rooms[i]); err != nil {
				return err
			}
		}
		return tx.DeleteProperty(p)
	})
}
