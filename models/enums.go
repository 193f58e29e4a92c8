package models

// Enum values are stored as upper-case strings. Anything outside the
// closed sets below is rejected before it reaches the database.

type RoomType string

const (
	RoomTypeAC       RoomType = "AC"
	RoomTypeNonAC    RoomType = "NON_AC"
	RoomTypeStandard RoomType = "STANDARD"
	RoomTypeDeluxe   RoomType = "DELUXE"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeAC, RoomTypeNonAC, RoomTypeStandard, RoomTypeDeluxe:
		return true
	}
	return false
}

type BedStatus string

const (
	BedAvailable BedStatus = "AVAILABLE"
	BedOccupied  BedStatus = "OCCUPIED"
)

func (s BedStatus) Valid() bool {
	return s == BedAvailable || s == BedOccupied
}

type BookingStatus string

const (
	BookingActive BookingStatus = "ACTIVE"
	BookingClosed BookingStatus = "CLOSED"
)

func (s BookingStatus) Valid() bool {
	return s == BookingActive || s == BookingClosed
}

// Frequency is the billing cadence of a booking. TotalAmount carries the
// amount for one period of this cadence, except EXCEPTION which is a
// negotiated monthly figure.
type Frequency string

const (
	FrequencyMonthly   Frequency = "MONTHLY"
	FrequencyYearly    Frequency = "YEARLY"
	FrequencyException Frequency = "EXCEPTION"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyYearly, FrequencyException:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentUPIRequest  PaymentMethod = "UPI_REQUEST"
	PaymentQRScan      PaymentMethod = "QR_SCAN"
	PaymentCashOffline PaymentMethod = "CASH_OFFLINE"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentUPIRequest, PaymentQRScan, PaymentCashOffline:
		return true
	}
	return false
}

type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "OPEN"
	ComplaintInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintResolved   ComplaintStatus = "RESOLVED"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintOpen, ComplaintInProgress, ComplaintResolved:
		return true
	}
	return false
}

type ComplaintCategory string

const (
	CategoryMaintenance ComplaintCategory = "MAINTENANCE"
	CategoryCleanliness ComplaintCategory = "CLEANLINESS"
	CategoryFood        ComplaintCategory = "FOOD"
	CategorySecurity    ComplaintCategory = "SECURITY"
	CategoryInternet    ComplaintCategory = "INTERNET"
	CategoryOther       ComplaintCategory = "OTHER"
)

func (c ComplaintCategory) Valid() bool {
	switch c {
	case CategoryMaintenance, CategoryCleanliness, CategoryFood,
		CategorySecurity, CategoryInternet, CategoryOther:
		return true
	}
	return false
}

type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleManager UserRole = "MANAGER"
	RoleStaff   UserRole = "STAFF"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}
