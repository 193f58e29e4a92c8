package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YashI2IT/hostel/services"
	"github.com/YashI2IT/hostel/utils"
)

type BedController struct {
	Allocation *services.AllocationService
}

func NewBedController(allocation *services.AllocationService) *BedController {
	return &BedController{Allocation: allocation}
}

type assignBedRequest struct {
	StudentID uint `json:"studentId" binding:"required"`
}

func (bc *BedController) AssignBed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req assignBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	bed, err := bc.Allocation.AssignBed(id, req.StudentID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bed)
}

func (bc *BedController) ReleaseBed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	bed, err := bc.Allocation.ReleaseBed(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bed)
}

func (bc *BedController) RemoveBed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := bc.Allocation.RemoveBed(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
