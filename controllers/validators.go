package controllers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/YashI2IT/hostel/models"
)

// RegisterValidators adds the enum checks to gin's binding engine so
// request structs can declare them in tags.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("roomtype", func(fl validator.FieldLevel) bool {
		return models.RoomType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("frequency", func(fl validator.FieldLevel) bool {
		return models.Frequency(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
		return models.PaymentMethod(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("complaintcategory", func(fl validator.FieldLevel) bool {
		return models.ComplaintCategory(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("complaintstatus", func(fl validator.FieldLevel) bool {
		return models.ComplaintStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).Valid()
	})
}
