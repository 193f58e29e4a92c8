package services

import (
	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/store"
)

// OccupancyService derives live occupancy numbers from a consistent
// snapshot of the whole property graph. Nothing here is cached; a bed
// flipped mid-request can never make total drift from occupied+available.
type OccupancyService struct {
	Store *store.Store
}

func NewOccupancyService(st *store.Store) *OccupancyService {
	return &OccupancyService{Store: st}
}

type OccupancyStats struct {
	Total     int `json:"total"`
	Occupied  int `json:"occupied"`
	Available int `json:"available"`
}

type PropertyOccupancy struct {
	PropertyID   uint   `json:"propertyId"`
	PropertyName string `json:"propertyName"`
	OccupancyStats
}

func tally(properties []models.Property) OccupancyStats {
	var stats OccupancyStats
	for _, p := range properties {
		for _, r := range p.Rooms {
			for _, b := range r.Beds {
				stats.Total++
				if b.Status == models.BedOccupied {
					stats.Occupied++
				}
			}
		}
	}
	stats.Available = stats.Total - stats.Occupied
	return stats
}

// Overall counts every bed across all properties.
func (s *OccupancyService) Overall() (*OccupancyStats, error) {
	snap, err := s.Store.ReadGraph(nil)
	if err != nil {
		return nil, err
	}
	stats := tally(snap.Properties)
	return &stats, nil
}

// ByProperty breaks the same snapshot down per property, so the rows
// always sum to the overall numbers.
func (s *OccupancyService) ByProperty() ([]PropertyOccupancy, error) {
	snap, err := s.Store.ReadGraph(nil)
	if err != nil {
		return nil, err
	}
	out := make([]PropertyOccupancy, 0, len(snap.Properties))
	for _, p := range snap.Properties {
		out = append(out, PropertyOccupancy{
			PropertyID:     p.ID,
			PropertyName:   p.Name,
			OccupancyStats: tally([]models.Property{p}),
		})
	}
	return out, nil
}

// ForProperty reports one property's numbers, NotFound when it does not
// exist.
func (s *OccupancyService) ForProperty(propertyID uint) (*PropertyOccupancy, error) {
	snap, err := s.Store.ReadGraph(&propertyID)
	if err != nil {
		return nil, err
	}
	p := snap.Properties[0]
	return &PropertyOccupancy{
		PropertyID:     p.ID,
		PropertyName:   p.Name,
		OccupancyStats: tally(snap.Properties),
	}, nil
}
