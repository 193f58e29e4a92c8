package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YashI2IT/hostel/services"
	"github.com/YashI2IT/hostel/utils"
)

type StudentController struct {
	Students *services.StudentService
}

func NewStudentController(students *services.StudentService) *StudentController {
	return &StudentController{Students: students}
}

func (sc *StudentController) GetStudents(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	search := c.Query("search")

	students, err := sc.Students.ListStudents(activeOnly, search)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, students)
}

func (sc *StudentController) GetStudent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := sc.Students.GetStudent(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, detail)
}

type updateStudentRequest struct {
	Name             *string `json:"name"`
	Age              *int    `json:"age"`
	PhoneNumber      *string `json:"phoneNumber"`
	Email            *string `json:"email" binding:"omitempty,email"`
	EmergencyContact *string `json:"emergencyContact"`
}

func (sc *StudentController) UpdateStudent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	student, err := sc.Students.UpdateProfile(id, services.StudentUpdate{
		Name:             req.Name,
		Age:              req.Age,
		PhoneNumber:      req.PhoneNumber,
		Email:            req.Email,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, student)
}

// Vacate is the move-out counterpart of onboarding.
func (sc *StudentController) Vacate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := sc.Students.Vacate(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}
