package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"grandvista-backend/models"
	"grandvista-backend/store"
)

func newRoomFixture(t *testing.T) *RoomService {
	t.Helper()
	svc := NewRoomService(store.NewMemRoomStore())
	seed := []models.Room{
		{Name: "Standard Room", Type: models.RoomTypeStandard, Price: 120, Capacity: 2},
		{Name: "Deluxe Room", Type: models.RoomTypeDeluxe, Price: 220, Capacity: 2},
		{Name: "Family Room", Type: models.RoomTypeFamily, Price: 280, Capacity: 4},
		{Name: "Budget Suite", Type: models.RoomTypeSuite, Price: 380, Capacity: 2},
		{Name: "Premium Suite", Type: models.RoomTypeSuite, Price: 480, Capacity: 3},
		{Name: "Penthouse Suite", Type: models.RoomTypePenthouse, Price: 850, Capacity: 4},
	}
	for _, room := range seed {
		_, err := svc.Create(room)
		require.NoError(t, err)
	}
	return svc
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestListWithoutFilterReturnsCatalogOrder(t *testing.T) {
	svc := newRoomFixture(t)

	rooms, err := svc.List(RoomFilter{})
	require.NoError(t, err)
	require.Len(t, rooms, 6)
	assert.Equal(t, "Standard Room", rooms[0].Name)
	assert.Equal(t, "Penthouse Suite", rooms[5].Name)
}

func TestListFilterIsAConjunction(t *testing.T) {
	svc := newRoomFixture(t)

	rooms, err := svc.List(RoomFilter{Type: models.RoomTypeSuite, MinPrice: floatPtr(400)})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Premium Suite", rooms[0].Name)

	// Same predicates, different emphasis: result is predicate-set dependent,
	// not order dependent.
	rooms, err = svc.List(RoomFilter{MinPrice: floatPtr(400), Type: models.RoomTypeSuite})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Premium Suite", rooms[0].Name)
}

func TestListFilterPredicates(t *testing.T) {
	svc := newRoomFixture(t)

	byType, err := svc.List(RoomFilter{Type: models.RoomTypeSuite})
	require.NoError(t, err)
	assert.Len(t, byType, 2)

	all, err := svc.List(RoomFilter{Type: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 6)

	cheap, err := svc.List(RoomFilter{MaxPrice: floatPtr(250)})
	require.NoError(t, err)
	assert.Len(t, cheap, 2)

	roomy, err := svc.List(RoomFilter{MinCapacity: intPtr(4)})
	require.NoError(t, err)
	assert.Len(t, roomy, 2)

	none, err := svc.List(RoomFilter{Type: models.RoomTypeDeluxe, MinPrice: floatPtr(500)})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreateAssignsIDAndForcesAvailable(t *testing.T) {
	svc := NewRoomService(store.NewMemRoomStore())

	created, err := svc.Create(models.Room{
		Name:      "Garden View",
		Type:      models.RoomTypeStandard,
		Price:     140,
		Capacity:  2,
		Amenities: datatypes.NewJSONSlice([]string{"Wi-Fi", "TV"}),
		Available: false,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "room-"))
	assert.True(t, created.Available)
	assert.Equal(t, []string{"Wi-Fi", "TV"}, []string(created.Amenities))
}

func TestUpdateRoomPartialMerge(t *testing.T) {
	svc := newRoomFixture(t)
	rooms, err := svc.List(RoomFilter{Type: models.RoomTypeDeluxe})
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	updated, err := svc.Update(rooms[0].ID, map[string]any{"price": float64(250), "available": false})
	require.NoError(t, err)
	assert.Equal(t, 250.0, updated.Price)
	assert.False(t, updated.Available)
	assert.Equal(t, "Deluxe Room", updated.Name)
	assert.Equal(t, models.RoomTypeDeluxe, updated.Type)
}

func TestUpdateRoomNotFound(t *testing.T) {
	svc := NewRoomService(store.NewMemRoomStore())
	_, err := svc.Update("room-missing", map[string]any{"price": float64(1)})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestDeleteRoomReturnsRecordThenNotFound(t *testing.T) {
	svc := newRoomFixture(t)
	rooms, err := svc.List(RoomFilter{Type: models.RoomTypePenthouse})
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	deleted, err := svc.Delete(rooms[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Penthouse Suite", deleted.Name)

	_, err = svc.Get(rooms[0].ID)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.Delete(rooms[0].ID)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
