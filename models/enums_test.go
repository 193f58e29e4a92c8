package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidation(t *testing.T) {
	assert.True(t, RoomTypeAC.Valid())
	assert.True(t, RoomTypeNonAC.Valid())
	assert.True(t, RoomTypeStandard.Valid())
	assert.True(t, RoomTypeDeluxe.Valid())
	assert.False(t, RoomType("SUITE").Valid())
	assert.False(t, RoomType("ac").Valid())
	assert.False(t, RoomType("").Valid())

	assert.True(t, BedAvailable.Valid())
	assert.True(t, BedOccupied.Valid())
	assert.False(t, BedStatus("RESERVED").Valid())

	assert.True(t, FrequencyMonthly.Valid())
	assert.True(t, FrequencyYearly.Valid())
	assert.True(t, FrequencyException.Valid())
	assert.False(t, Frequency("WEEKLY").Valid())

	assert.True(t, PaymentUPIRequest.Valid())
	assert.True(t, PaymentQRScan.Valid())
	assert.True(t, PaymentCashOffline.Valid())
	assert.False(t, PaymentMethod("CARD").Valid())

	assert.True(t, ComplaintOpen.Valid())
	assert.True(t, ComplaintInProgress.Valid())
	assert.True(t, ComplaintResolved.Valid())
	assert.False(t, ComplaintStatus("CLOSED").Valid())

	assert.True(t, CategoryMaintenance.Valid())
	assert.True(t, CategoryOther.Valid())
	assert.False(t, ComplaintCategory("NOISE").Valid())

	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleManager.Valid())
	assert.True(t, RoleStaff.Valid())
	assert.False(t, UserRole("ROOT").Valid())
}

func TestEffectiveMonthlyRent(t *testing.T) {
	yearly := Booking{Frequency: FrequencyYearly, TotalAmount: 60000}
	assert.InDelta(t, 5000, yearly.EffectiveMonthlyRent(), 0.001)

	monthly := Booking{Frequency: FrequencyMonthly, TotalAmount: 4500}
	assert.InDelta(t, 4500, monthly.EffectiveMonthlyRent(), 0.001)

	// EXCEPTION is a negotiated monthly figure, used as-is regardless of size.
	exception := Booking{Frequency: FrequencyException, TotalAmount: 72000}
	assert.InDelta(t, 72000, exception.EffectiveMonthlyRent(), 0.001)

	filled := yearly.FillDerived()
	assert.InDelta(t, 5000, filled.MonthlyRent, 0.001)
}
