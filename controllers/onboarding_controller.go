package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/services"
	"github.com/YashI2IT/hostel/utils"
)

type OnboardingController struct {
	Onboarding *services.OnboardingService
}

func NewOnboardingController(onboarding *services.OnboardingService) *OnboardingController {
	return &OnboardingController{Onboarding: onboarding}
}

type onboardRequest struct {
	Name             string `json:"name" binding:"required"`
	Age              int    `json:"age" binding:"required,gt=0"`
	PhoneNumber      string `json:"phoneNumber" binding:"required"`
	Email            string `json:"email" binding:"omitempty,email"`
	EmergencyContact string `json:"emergencyContact"`

	BedID uint `json:"bedId" binding:"required"`

	Frequency   string     `json:"frequency" binding:"required,frequency"`
	StartDate   time.Time  `json:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate"`
	TotalAmount float64    `json:"totalAmount" binding:"required,gt=0"`

	PaymentMethod  string  `json:"paymentMethod" binding:"required,paymentmethod"`
	TransactionRef *string `json:"transactionRef"`
}

// Onboard runs the move-in as one unit: student, booking, first payment
// and the bed assignment all land together or not at all.
func (oc *OnboardingController) Onboard(c *gin.Context) {
	var req onboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := oc.Onboarding.OnboardStudent(services.OnboardInput{
		Name:             req.Name,
		Age:              req.Age,
		PhoneNumber:      req.PhoneNumber,
		Email:            req.Email,
		EmergencyContact: req.EmergencyContact,
		BedID:            req.BedID,
		Frequency:        models.Frequency(req.Frequency),
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		TotalAmount:      req.TotalAmount,
		PaymentMethod:    models.PaymentMethod(req.PaymentMethod),
		TransactionRef:   req.TransactionRef,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, result)
}
