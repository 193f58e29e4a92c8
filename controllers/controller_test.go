package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/services"
	"github.com/YashI2IT/hostel/store"
	"github.com/YashI2IT/hostel/utils"
)

type testAPI struct {
	Router   *gin.Engine
	Store    *store.Store
	Property *models.Property
	Room     *models.Room
	Beds     []models.Bed
}

// newTestAPI wires the handlers onto a bare router. Auth middleware has
// its own tests, so the endpoints here are mounted without it.
func newTestAPI(t *testing.T, bedCount int) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterValidators()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Room{},
		&models.Bed{},
		&models.Student{},
		&models.Booking{},
		&models.Payment{},
		&models.Complaint{},
	))

	st := store.New(db)
	allocation := services.NewAllocationService(st)
	rooms := services.NewRoomService(st)
	students := services.NewStudentService(st)
	onboarding := services.NewOnboardingService(st)
	bookings := services.NewBookingService(st)
	complaints := services.NewComplaintService(st)
	occupancy := services.NewOccupancyService(st)
	reports := services.NewReportService(st)

	roomCtl := NewRoomController(rooms, allocation)
	bedCtl := NewBedController(allocation)
	onboardCtl := NewOnboardingController(onboarding)
	studentCtl := NewStudentController(students)
	bookingCtl := NewBookingController(bookings)
	complaintCtl := NewComplaintController(complaints)
	occupancyCtl := NewOccupancyController(occupancy, reports)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/rooms", roomCtl.CreateRoom)
	api.GET("/rooms", roomCtl.GetRooms)
	api.GET("/rooms/:id", roomCtl.GetRoom)
	api.PATCH("/rooms/:id/capacity", roomCtl.ResizeCapacity)
	api.POST("/beds/:id/assign", bedCtl.AssignBed)
	api.POST("/beds/:id/release", bedCtl.ReleaseBed)
	api.POST("/onboarding", onboardCtl.Onboard)
	api.GET("/students/:id", studentCtl.GetStudent)
	api.POST("/students/:id/vacate", studentCtl.Vacate)
	api.GET("/bookings", bookingCtl.GetBookings)
	api.POST("/bookings/:id/payments", bookingCtl.RecordPayment)
	api.POST("/complaints", complaintCtl.FileComplaint)
	api.PATCH("/complaints/:id/status", complaintCtl.UpdateStatus)
	api.GET("/occupancy", occupancyCtl.GetOverall)

	a := &testAPI{Router: r, Store: st}

	a.Property = &models.Property{Name: "Sunrise Residency", Address: "12 College Rd", TotalFloors: 3}
	require.NoError(t, st.RunTransaction(func(tx *store.Tx) error {
		return tx.CreateProperty(a.Property)
	}))
	room, err := allocation.CreateRoomWithBeds(a.Property.ID, "101", 1, models.RoomTypeAC, bedCount)
	require.NoError(t, err)
	a.Room = room
	a.Beds = room.Beds
	return a
}

func (a *testAPI) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// seedStudent creates an active student with an open booking, the state
// bed assignment expects.
func (a *testAPI) seedStudent(t *testing.T, name string) *models.Student {
	t.Helper()
	s := &models.Student{Name: name, Age: 20, PhoneNumber: "9876500000", IsActive: true}
	require.NoError(t, a.Store.RunTransaction(func(tx *store.Tx) error {
		if err := tx.CreateStudent(s); err != nil {
			return err
		}
		return tx.CreateBooking(&models.Booking{
			StudentID:     s.ID,
			ReferenceCode: utils.NewBookingRef(),
			Frequency:     models.FrequencyMonthly,
			StartDate:     time.Now(),
			TotalAmount:   5000,
			Status:        models.BookingActive,
		})
	}))
	return s
}

func TestCreateRoomEndpoint(t *testing.T) {
	a := newTestAPI(t, 2)

	body := fmt.Sprintf(`{"propertyId":%d,"roomNumber":"205","floorNumber":2,"type":"NON_AC","bedCount":3}`, a.Property.ID)
	w := a.do(t, http.MethodPost, "/api/rooms", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["success"])
	data := resp["data"].(map[string]any)
	assert.Equal(t, "205", data["roomNumber"])
	assert.Len(t, data["beds"], 3)

	// Unknown room type is caught by the binding validator.
	w = a.do(t, http.MethodPost, "/api/rooms", fmt.Sprintf(`{"propertyId":%d,"roomNumber":"206","type":"PENTHOUSE","bedCount":1}`, a.Property.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeBody(t, w)["kind"])

	// Same number in the same property is a conflict.
	w = a.do(t, http.MethodPost, "/api/rooms", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", decodeBody(t, w)["kind"])
}

func TestErrorKindMapping(t *testing.T) {
	a := newTestAPI(t, 3)

	w := a.do(t, http.MethodGet, "/api/rooms/9999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, w)["kind"])

	w = a.do(t, http.MethodGet, "/api/rooms/not-a-number", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Fill two of three beds, then shrinking below the occupied count
	// must be refused with the capacity kind, not a plain conflict.
	s1 := a.seedStudent(t, "Ravi Kumar")
	s2 := a.seedStudent(t, "Arjun Mehta")
	w = a.do(t, http.MethodPost, fmt.Sprintf("/api/beds/%d/assign", a.Beds[0].ID), fmt.Sprintf(`{"studentId":%d}`, s1.ID))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = a.do(t, http.MethodPost, fmt.Sprintf("/api/beds/%d/assign", a.Beds[1].ID), fmt.Sprintf(`{"studentId":%d}`, s2.ID))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(t, http.MethodPatch, fmt.Sprintf("/api/rooms/%d/capacity", a.Room.ID), `{"newCapacity":1}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CAPACITY_VIOLATION", decodeBody(t, w)["kind"])

	// The third bed is free, but a student who already holds a bed
	// cannot take a second one.
	w = a.do(t, http.MethodPost, fmt.Sprintf("/api/beds/%d/assign", a.Beds[2].ID), fmt.Sprintf(`{"studentId":%d}`, s1.ID))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", decodeBody(t, w)["kind"])
}

func TestOnboardEndpoint(t *testing.T) {
	a := newTestAPI(t, 1)

	body := fmt.Sprintf(`{
		"name": "Ravi Kumar",
		"age": 21,
		"phoneNumber": "9876512345",
		"bedId": %d,
		"frequency": "YEARLY",
		"startDate": "2026-06-01T00:00:00Z",
		"totalAmount": 60000,
		"paymentMethod": "UPI_REQUEST",
		"transactionRef": "UPI-7781"
	}`, a.Beds[0].ID)

	w := a.do(t, http.MethodPost, "/api/onboarding", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decodeBody(t, w)
	data := resp["data"].(map[string]any)
	booking := data["booking"].(map[string]any)
	assert.Equal(t, float64(5000), booking["monthlyRent"])
	bed := data["bed"].(map[string]any)
	assert.Equal(t, "OCCUPIED", bed["status"])

	// The bed is taken now, so the same request is a conflict and the
	// second student must not be left behind.
	w = a.do(t, http.MethodPost, "/api/onboarding", strings.Replace(body, "Ravi Kumar", "Arjun Mehta", 1))
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, a.Store.View(func(tx *store.Tx) error {
		students, err := tx.ListStudents(false, "")
		count = int64(len(students))
		return err
	}))
	assert.EqualValues(t, 1, count)
}

func TestComplaintEndpoints(t *testing.T) {
	a := newTestAPI(t, 1)

	w := a.do(t, http.MethodPost, "/api/complaints", fmt.Sprintf(`{"roomId":%d,"category":"MAINTENANCE","description":"fan not working"}`, a.Room.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := uint(decodeBody(t, w)["data"].(map[string]any)["id"].(float64))

	w = a.do(t, http.MethodPatch, fmt.Sprintf("/api/complaints/%d/status", id), `{"status":"SOLVED"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodPatch, fmt.Sprintf("/api/complaints/%d/status", id), `{"status":"RESOLVED"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = a.do(t, http.MethodPatch, fmt.Sprintf("/api/complaints/%d/status", id), `{"status":"IN_PROGRESS"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOccupancyEndpoint(t *testing.T) {
	a := newTestAPI(t, 2)

	s := a.seedStudent(t, "Ravi Kumar")
	w := a.do(t, http.MethodPost, fmt.Sprintf("/api/beds/%d/assign", a.Beds[0].ID), fmt.Sprintf(`{"studentId":%d}`, s.ID))
	require.Equal(t, http.StatusOK, w.Code)

	w = a.do(t, http.MethodGet, "/api/occupancy", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(2), data["total"])
	assert.Equal(t, float64(1), data["occupied"])
	assert.Equal(t, float64(1), data["available"])
}
