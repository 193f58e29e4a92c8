package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/services"
	"github.com/YashI2IT/hostel/utils"
)

type ComplaintController struct {
	Complaints *services.ComplaintService
}

func NewComplaintController(complaints *services.ComplaintService) *ComplaintController {
	return &ComplaintController{Complaints: complaints}
}

type fileComplaintRequest struct {
	RoomID      uint   `json:"roomId" binding:"required"`
	StudentID   *uint  `json:"studentId"`
	Category    string `json:"category" binding:"required,complaintcategory"`
	Description string `json:"description" binding:"required"`
}

func (cc *ComplaintController) FileComplaint(c *gin.Context) {
	var req fileComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	complaint, err := cc.Complaints.FileComplaint(services.ComplaintInput{
		RoomID:      req.RoomID,
		StudentID:   req.StudentID,
		Category:    models.ComplaintCategory(req.Category),
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, complaint)
}

func (cc *ComplaintController) GetComplaints(c *gin.Context) {
	var status *models.ComplaintStatus
	if raw := c.Query("status"); raw != "" {
		s := models.ComplaintStatus(raw)
		if !s.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "invalid status: " + raw,
				"kind":    "VALIDATION_ERROR",
			})
			return
		}
		status = &s
	}
	roomID, ok := optionalQueryID(c, "roomId")
	if !ok {
		return
	}

	complaints, err := cc.Complaints.ListComplaints(status, roomID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, complaints)
}

func (cc *ComplaintController) GetComplaint(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	complaint, err := cc.Complaints.GetComplaint(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, complaint)
}

type updateComplaintStatusRequest struct {
	Status string `json:"status" binding:"required,complaintstatus"`
}

func (cc *ComplaintController) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateComplaintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	complaint, err := cc.Complaints.UpdateStatus(id, models.ComplaintStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, complaint)
}
