package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/YashI2IT/hostel/store"
)

// respondError maps the store's error kinds onto HTTP statuses. The
// body carries the stable kind so clients can branch without parsing
// messages.
func respondError(c *gin.Context, err error) {
	kind := store.ErrorKind(err)
	var status int
	switch kind {
	case "VALIDATION_ERROR":
		status = http.StatusBadRequest
	case "NOT_FOUND":
		status = http.StatusNotFound
	case "CONFLICT", "CAPACITY_VIOLATION":
		status = http.StatusConflict
	default:
		log.Printf("❌ unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal server error",
			"kind":    "INTERNAL",
		})
		return
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
		"kind":    kind,
	})
}

// pathID parses a numeric path parameter, answering 400 itself when the
// value is not a positive integer.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid " + name + ": " + raw,
			"kind":    "VALIDATION_ERROR",
		})
		return 0, false
	}
	return uint(id), true
}

// optionalQueryID parses an optional numeric query parameter. Absent
// means nil; malformed answers 400 itself.
func optionalQueryID(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid " + name + ": " + raw,
			"kind":    "VALIDATION_ERROR",
		})
		return nil, false
	}
	v := uint(id)
	return &v, true
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "invalid request: " + err.Error(),
		"kind":    "VALIDATION_ERROR",
	})
}
