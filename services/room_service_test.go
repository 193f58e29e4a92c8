package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YashI2IT/hostel/models"
	"github.com/YashI2IT/hostel/store"
)

func TestGetAndListRooms(t *testing.T) {
	f := newFixture(t, 2)
	rooms := NewRoomService(f.Store)

	res, err := f.Onboarding.OnboardStudent(f.onboardInput(f.Beds[0].ID))
	require.NoError(t, err)

	room, err := rooms.GetRoom(f.Room.ID)
	require.NoError(t, err)
	require.Len(t, room.Beds, 2)
	require.NotNil(t, room.Beds[0].CurrentStudent)
	assert.Equal(t, res.Student.Name, room.Beds[0].CurrentStudent.Name)

	_, err = rooms.GetRoom(9999)
	assert.ErrorIs(t, err, store.ErrNotFound)

	second := &models.Property{Name: "Lakeview Hostel", Address: "8 Lake Rd", TotalFloors: 2}
	require.NoError(t, f.Store.RunTransaction(func(tx *store.Tx) error {
		return tx.CreateProperty(second)
	}))
	_, err = f.Allocation.CreateRoomWithBeds(second.ID, "301", 3, models.RoomTypeNonAC, 1)
	require.NoError(t, err)

	all, err := rooms.ListRooms(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := rooms.ListRooms(&second.ID)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "301", scoped[0].RoomNumber)

	missing := uint(9999)
	_, err = rooms.ListRooms(&missing)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateRoom(t *testing.T) {
	f := newFixture(t, 1)
	rooms := NewRoomService(f.Store)

	number := "105"
	floor := 2
	typ := models.RoomTypeDeluxe
	updated, err := rooms.UpdateRoom(f.Room.ID, RoomUpdate{RoomNumber: &number, FloorNumber: &floor, Type: &typ})
	require.NoError(t, err)
	assert.Equal(t, "105", updated.RoomNumber)
	assert.Equal(t, 2, updated.FloorNumber)
	assert.Equal(t, models.RoomTypeDeluxe, updated.Type)
	assert.Equal(t, 1, updated.Capacity)

	blank := " "
	_, err = rooms.UpdateRoom(f.Room.ID, RoomUpdate{RoomNumber: &blank})
	assert.ErrorIs(t, err, store.ErrValidation)

	badType := models.RoomType("PENTHOUSE")
	_, err = rooms.UpdateRoom(f.Room.ID, RoomUpdate{Type: &badType})
	assert.ErrorIs(t, err, store.ErrValidation)

	// two rooms cannot share a number inside one property
	other, err := f.Allocation.CreateRoomWithBeds(f.Property.ID, "106", 1, models.RoomTypeStandard, 1)
	require.NoError(t, err)
	taken := "105"
	_, err = rooms.UpdateRoom(other.ID, RoomUpdate{RoomNumber: &taken})
	assert.ErrorIs(t, err, store.ErrConflict)

	_, err = rooms.UpdateRoom(9999, RoomUpdate{FloorNumber: &floor})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteRoom(t *testing.T) {
	f := newFixture(t, 2)
	rooms := NewRoomService(f.Store)

	res, err := f.Onboarding.OnboardStudent(f.onboardInput(f.Beds[0].ID))
	require.NoError(t, err)

	err = rooms.DeleteRoom(f.Room.ID)
	assert.ErrorIs(t, err, store.ErrConflict)

	_, err = f.Students.Vacate(res.Student.ID)
	require.NoError(t, err)
	require.NoError(t, rooms.DeleteRoom(f.Room.ID))

	_, err = rooms.GetRoom(f.Room.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, rooms.DeleteRoom(9999), store.ErrNotFound)
}
