package utils

import (
	"strings"

	"github.com/google/uuid"
)

// Reference codes are short, upper-case and unique enough for front-desk
// use. The database unique index is the real guarantee.

func NewBookingRef() string {
	return "BK-" + shortCode()
}

func NewReceiptNo() string {
	return "RCPT-" + shortCode()
}

func shortCode() string {
	id := uuid.New().String()
	return strings.ToUpper(strings.ReplaceAll(id, "-", ""))[:8]
}
