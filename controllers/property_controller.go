package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YashI2IT/hostel/services"
	"github.com/YashI2IT/hostel/utils"
)

type PropertyController struct {
	Service *services.PropertyService
}

func NewPropertyController(s *services.PropertyService) *PropertyController {
	return &PropertyController{Service: s}
}

type createPropertyRequest struct {
	Name        string   `json:"name" binding:"required"`
	Address     string   `json:"address"`
	TotalFloors int      `json:"totalFloors" binding:"required,gt=0"`
	Amenities   []string `json:"amenities"`
}

func (pc *PropertyController) CreateProperty(c *gin.Context) {
	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	property, err := pc.Service.CreateProperty(services.PropertyInput{
		Name:        req.Name,
		Address:     req.Address,
		TotalFloors: req.TotalFloors,
		Amenities:   req.Amenities,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, property)
}

func (pc *PropertyController) GetProperties(c *gin.Context) {
	properties, err := pc.Service.ListProperties()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, properties)
}

func (pc *PropertyController) GetProperty(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	property, err := pc.Service.GetProperty(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, property)
}

type updatePropertyRequest struct {
	Name        *string  `json:"name"`
	Address     *string  `json:"address"`
	TotalFloors *int     `json:"totalFloors"`
	Amenities   []string `json:"amenities"`
}

func (pc *PropertyController) UpdateProperty(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	property, err := pc.Service.UpdateProperty(id, services.PropertyUpdate{
		Name:        req.Name,
		Address:     req.Address,
		TotalFloors: req.TotalFloors,
		Amenities:   req.Amenities,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, property)
}

func (pc *PropertyController) DeleteProperty(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := pc.Service.DeleteProperty(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
