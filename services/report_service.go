package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/store"
)

// ReportService renders occupancy as a downloadable workbook for the
// owners, one row per bed plus a totals row.
type ReportService struct {
	Store *store.Store
}

func NewReportService(st *store.Store) *ReportService {
	return &ReportService{Store: st}
}

const occupancySheet = "Occupancy"

func (s *ReportService) OccupancyWorkbook() ([]byte, error) {
	snap, err := s.Store.ReadGraph(nil)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", occupancySheet)

	headers := []string{"Property", "Room", "Floor", "Bed", "Status", "Student", "Frequency", "Monthly Rent"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(occupancySheet, cell, h); err != nil {
			return nil, err
		}
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(occupancySheet, "A1", "H1", headerStyle); err != nil {
		return nil, err
	}

	row := 2
	total, occupied := 0, 0
	for _, p := range snap.Properties {
		for _, r := range p.Rooms {
			for _, b := range r.Beds {
				total++
				studentName := ""
				var frequency, rent interface{} = "", ""
				if b.Status == models.BedOccupied {
					occupied++
					if b.CurrentStudent != nil {
						studentName = b.CurrentStudent.Name
						// the snapshot carries only the open booking
						if len(b.CurrentStudent.Bookings) > 0 {
							bk := b.CurrentStudent.Bookings[0]
							frequency = string(bk.Frequency)
							rent = bk.EffectiveMonthlyRent()
						}
					}
				}
				values := []interface{}{p.Name, r.RoomNumber, r.FloorNumber, b.Label, string(b.Status), studentName, frequency, rent}
				for col, v := range values {
					cell, err := excelize.CoordinatesToCellName(col+1, row)
					if err != nil {
						return nil, err
					}
					if err := f.SetCellValue(occupancySheet, cell, v); err != nil {
						return nil, err
					}
				}
				row++
			}
		}
	}

	summary := fmt.Sprintf("Total %d / Occupied %d / Available %d", total, occupied, total-occupied)
	cell, err := excelize.CoordinatesToCellName(1, row+1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellValue(occupancySheet, cell, summary); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
