package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/services"
	"github.com/YashI2IT/hostel/utils"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	var status *models.BookingStatus
	if raw := c.Query("status"); raw != "" {
		s := models.BookingStatus(raw)
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

	bookings, err := bc.Bookings.ListBookings(status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	booking, err := bc.Bookings.GetBooking(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

type recordPaymentRequest struct {
	Amount         float64    `json:"amount" binding:"required,gt=0"`
	Method         string     `json:"method" binding:"required,paymentmethod"`
	TransactionRef *string    `json:"transactionRef"`
	PaidAt         *time.Time `json:"paidAt"`
}

func (bc *BookingController) RecordPayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	payment, err := bc.Bookings.RecordPayment(id, services.PaymentInput{
		Amount:         req.Amount,
		Method:         models.PaymentMethod(req.Method),
		TransactionRef: req.TransactionRef,
		PaidAt:         req.PaidAt,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, payment)
}

type updatePaymentRequest struct {
	Amount         *float64   `json:"amount" binding:"omitempty,gt=0"`
	Method         *string    `json:"method" binding:"omitempty,paymentmethod"`
	TransactionRef *string    `json:"transactionRef"`
	PaidAt         *time.Time `json:"paidAt"`
}

func (bc *BookingController) UpdatePayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	update := services.PaymentUpdate{
		Amount:         req.Amount,
		TransactionRef: req.TransactionRef,
		PaidAt:         req.PaidAt,
	}
	if req.Method != nil {
		m := models.PaymentMethod(*req.Method)
		update.Method = &m
	}
	payment, err := bc.Bookings.UpdatePayment(id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payment)
}
