package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/services"
	"github.com/YashI2IT/hostel/utils"
)

// RoomController splits work between two services: structural changes
// (create, capacity) go through allocation, plain reads and edits
// through the room service.
type RoomController struct {
	Rooms      *services.RoomService
	Allocation *services.AllocationService
}

func NewRoomController(rooms *services.RoomService, allocation *services.AllocationService) *RoomController {
	return &RoomController{Rooms: rooms, Allocation: allocation}
}

type createRoomRequest struct {
	PropertyID  uint   `json:"propertyId" binding:"required"`
	RoomNumber  string `json:"roomNumber" binding:"required"`
	FloorNumber int    `json:"floorNumber"`
	Type        string `json:"type" binding:"required,roomtype"`
	BedCount    int    `json:"bedCount" binding:"required,gt=0"`
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	room, err := rc.Allocation.CreateRoomWithBeds(
		req.PropertyID,
		req.RoomNumber,
		req.FloorNumber,
		models.RoomType(req.Type),
		req.BedCount,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (rc *RoomController) GetRooms(c *gin.Context) {
	propertyID, ok := optionalQueryID(c, "propertyId")
	if !ok {
		return
	}
	rooms, err := rc.Rooms.ListRooms(propertyID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) GetRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	room, err := rc.Rooms.GetRoom(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

type updateRoomRequest struct {
	RoomNumber  *string `json:"roomNumber"`
	FloorNumber *int    `json:"floorNumber"`
	Type        *string `json:"type" binding:"omitempty,roomtype"`
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	update := services.RoomUpdate{
		RoomNumber:  req.RoomNumber,
		FloorNumber: req.FloorNumber,
	}
	if req.Type != nil {
		typ := models.RoomType(*req.Type)
		update.Type = &typ
	}
	room, err := rc.Rooms.UpdateRoom(id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

type resizeRoomRequest struct {
	NewCapacity int `json:"newCapacity" binding:"required"`
}

func (rc *RoomController) ResizeCapacity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req resizeRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	room, created, err := rc.Allocation.ResizeRoomCapacity(id, req.NewCapacity)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"room":        room,
		"createdBeds": created,
	})
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := rc.Rooms.DeleteRoom(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
