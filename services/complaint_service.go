package services

import (
	"fmt"
	"time"

	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/store"
)

// ComplaintService drives complaints through OPEN, IN_PROGRESS and
// RESOLVED. RESOLVED is final.
type ComplaintService struct {
	Store *store.Store
}

func NewComplaintService(st *store.Store) *ComplaintService {
	return &ComplaintService{Store: st}
}

type ComplaintInput struct {
	RoomID      uint
	StudentID   *uint
	Category    models.ComplaintCategory
	Description string
}

// FileComplaint opens a new complaint against a room, optionally on
// behalf of a student.
func (s *ComplaintService) FileComplaint(in ComplaintInput) (*models.Complaint, error) {
	var out models.Complaint
	err := s.Store.RunTransaction(func(tx *store.Tx) error {
		if _, err := tx.Room(in.RoomID); err != nil {
			return err
		}
		if in.StudentID != nil {
			if _, err := tx.Student(*in.StudentID); err != nil {
				return err
			}
		}
		c := models.Complaint{
			RoomID:      in.RoomID,
			StudentID:   in.StudentID,
			Category:    in.Category,
			Description: in.Description,
			Status:      models.ComplaintOpen,
		}
		if err := tx.CreateComplaint(&c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus applies one lifecycle transition. Re-submitting the
// current status is a no-op; once RESOLVED, a complaint never moves
// again, and ResolvedAt is stamped exactly once on the way in.
func (s *ComplaintService) UpdateStatus(id uint, next models.ComplaintStatus) (*models.Complaint, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("complaint status %q: %w", next, store.ErrValidation)
	}
	var out models.Complaint
	err := s.Store.RunTransaction(func(tx *store.Tx) error {
		c, err := tx.ComplaintForUpdate(id)
		if err != nil {
			return err
		}
		if c.Status == next {
			out = *c
			return nil
		}
		if c.Status == models.ComplaintResolved {
			return fmt.Errorf("complaint %d is resolved and final: %w", id, store.ErrConflict)
		}
		if next == models.ComplaintOpen {
			return fmt.Errorf("complaint %d cannot move back to OPEN: %w", id, store.ErrConflict)
		}
		c.Status = next
		if next == models.ComplaintResolved {
			now := time.Now()
			c.ResolvedAt = &now
		}
		if err := tx.SaveComplaint(c); err != nil {
			return err
		}
		out = *c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ComplaintService) GetComplaint(id uint) (*models.Complaint, error) {
	var out *models.Complaint
	err := s.Store.View(func(tx *store.Tx) error {
		var err error
		out, err = tx.Complaint(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ComplaintService) ListComplaints(status *models.ComplaintStatus, roomID *uint) ([]models.Complaint, error) {
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("complaint status %q: %w", *status, store.ErrValidation)
	}
	var out []models.Complaint
	err := s.Store.View(func(tx *store.Tx) error {
		var err error
		out, err = tx.ListComplaints(status, roomID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
