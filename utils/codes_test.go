package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenceCodes(t *testing.T) {
	bookingRe := regexp.MustCompile(`^BK-[0-9A-F]{8}$`)
	receiptRe := regexp.MustCompile(`^RCPT-[0-9A-F]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		ref := NewBookingRef()
		assert.Regexp(t, bookingRe, ref)
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
	assert.Regexp(t, receiptRe, NewReceiptNo())
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("HOSTEL_TEST_KEY", "value")
	assert.Equal(t, "value", EnvOrDefault("HOSTEL_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", EnvOrDefault("HOSTEL_TEST_MISSING", "fallback"))
	t.Setenv("HOSTEL_TEST_BLANK", "   ")
	assert.Equal(t, "fallback", EnvOrDefault("HOSTEL_TEST_BLANK", "fallback"))
}
