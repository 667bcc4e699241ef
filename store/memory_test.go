package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grandvista-backend/models"
)

func TestMemRoomStoreReadAfterWrite(t *testing.T) {
	s := NewMemRoomStore()

	created, err := s.Create(models.Room{ID: "room-a", Name: "Standard", Price: 120})
	require.NoError(t, err)
	assert.Equal(t, "room-a", created.ID)

	got, err := s.Get("room-a")
	require.NoError(t, err)
	assert.Equal(t, "Standard", got.Name)

	rooms, err := s.List()
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "room-a", rooms[0].ID)
}

func TestMemRoomStoreListKeepsInsertionOrder(t *testing.T) {
	s := NewMemRoomStore()
	for _, id := range []string{"room-c", "room-a", "room-b"} {
		_, err := s.Create(models.Room{ID: id})
		require.NoError(t, err)
	}

	_, err := s.Delete("room-a")
	require.NoError(t, err)

	rooms, err := s.List()
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "room-c", rooms[0].ID)
	assert.Equal(t, "room-b", rooms[1].ID)
}

func TestMemRoomStoreUpdateMergesOnlySuppliedFields(t *testing.T) {
	s := NewMemRoomStore()
	_, err := s.Create(models.Room{ID: "room-a", Name: "Standard", Price: 120, Capacity: 2})
	require.NoError(t, err)

	updated, err := s.Update("room-a", map[string]any{
		"price":   float64(150),
		"bogus":   "ignored",
		"id":      "room-z",
		"onlyFor": []any{"nobody"},
	})
	require.NoError(t, err)
	assert.Equal(t, "room-a", updated.ID)
	assert.Equal(t, 150.0, updated.Price)
	assert.Equal(t, "Standard", updated.Name)
	assert.Equal(t, 2, updated.Capacity)
}

func TestMemRoomStoreNotFound(t *testing.T) {
	s := NewMemRoomStore()

	_, err := s.Get("room-missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Update("room-missing", map[string]any{"price": 1.0})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Delete("room-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemRoomStoreDeleteReturnsRecord(t *testing.T) {
	s := NewMemRoomStore()
	_, err := s.Create(models.Room{ID: "room-a", Name: "Standard"})
	require.NoError(t, err)

	deleted, err := s.Delete("room-a")
	require.NoError(t, err)
	assert.Equal(t, "Standard", deleted.Name)

	_, err = s.Get("room-a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemBookingStoreNeverPersistsEnrichment(t *testing.T) {
	s := NewMemBookingStore()
	room := models.Room{ID: "room-a"}

	_, err := s.Create(models.Booking{ID: "booking-a", RoomID: "room-a", Room: &room})
	require.NoError(t, err)

	got, err := s.Get("booking-a")
	require.NoError(t, err)
	assert.Nil(t, got.Room)
	assert.Equal(t, "room-a", got.RoomID)
}

func TestMemUserStoreDuplicateEmail(t *testing.T) {
	s := NewMemUserStore()
	_, err := s.Create(models.User{ID: "user-a", Email: "guest@example.com"})
	require.NoError(t, err)

	_, err = s.Create(models.User{ID: "user-b", Email: "Guest@Example.com"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemUserStoreFindByEmail(t *testing.T) {
	s := NewMemUserStore()
	_, err := s.Create(models.User{ID: "user-a", Email: "guest@example.com", Name: "Guest"})
	require.NoError(t, err)

	user, err := s.FindByEmail("GUEST@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-a", user.ID)

	_, err = s.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemMessageStoreCreateAndList(t *testing.T) {
	s := NewMemMessageStore()
	_, err := s.Create(models.ContactMessage{ID: "msg-a", Subject: "first"})
	require.NoError(t, err)
	_, err = s.Create(models.ContactMessage{ID: "msg-b", Subject: "second"})
	require.NoError(t, err)

	messages, err := s.List()
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Subject)
	assert.Equal(t, "second", messages[1].Subject)
}

func TestSeedIsIdempotent(t *testing.T) {
	stores := NewMemStores()
	require.NoError(t, Seed(stores))
	require.NoError(t, Seed(stores))

	rooms, err := stores.Rooms.List()
	require.NoError(t, err)
	assert.Len(t, rooms, 6)

	users, err := stores.Users.List()
	require.NoError(t, err)
	assert.Len(t, users, 2)

	bookings, err := stores.Bookings.List()
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}
