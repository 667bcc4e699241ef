package services

import (
	"errors"
	"fmt"

	"grandvista-backend/models"
	"grandvista-backend/store"
	"grandvista-backend/utils"
)

var ErrRoomNotFound = errors.New("room not found")

// RoomFilter is a conjunction: a room is returned only when it satisfies
// every predicate that is set. Nil pointers and the empty/"all" type mean
// "no constraint".
type RoomFilter struct {
	Type        string
	MinPrice    *float64
	MaxPrice    *float64
	MinCapacity *int
}

func (f RoomFilter) matches(room models.Room) bool {
	if f.Type != "" && f.Type != "all" && room.Type != f.Type {
		return false
	}
	if f.MinPrice != nil && room.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && room.Price > *f.MaxPrice {
		return false
	}
	if f.MinCapacity != nil && room.Capacity < *f.MinCapacity {
		return false
	}
	return true
}

// RoomService wraps the room store with catalog behavior: filtered listing
// and server-side id assignment.
type RoomService struct {
	rooms store.RoomStore
}

func NewRoomService(rooms store.RoomStore) *RoomService {
	return &RoomService{rooms: rooms}
}

func (s *RoomService) List(filter RoomFilter) ([]models.Room, error) {
	rooms, err := s.rooms.List()
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	filtered := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if filter.matches(room) {
			filtered = append(filtered, room)
		}
	}
	return filtered, nil
}

func (s *RoomService) Get(id string) (models.Room, error) {
	room, err := s.rooms.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Room{}, ErrRoomNotFound
		}
		return models.Room{}, fmt.Errorf("get room: %w", err)
	}
	return room, nil
}

// Create assigns a fresh id and marks the room available regardless of the
// submitted flag. No further field validation happens here; the catalog
// stores what the admin sends.
func (s *RoomService) Create(room models.Room) (models.Room, error) {
	room.ID = utils.GenerateID("room")
	room.Available = true
	created, err := s.rooms.Create(room)
	if err != nil {
		return models.Room{}, fmt.Errorf("create room: %w", err)
	}
	return created, nil
}

func (s *RoomService) Update(id string, fields map[string]any) (models.Room, error) {
	room, err := s.rooms.Update(id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Room{}, ErrRoomNotFound
		}
		return models.Room{}, fmt.Errorf("update room: %w", err)
	}
	return room, nil
}

// Delete removes the room and returns it. Bookings referencing the room keep
// their roomId; only their enrichment lookup starts missing.
func (s *RoomService) Delete(id string) (models.Room, error) {
	room, err := s.rooms.Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Room{}, ErrRoomNotFound
		}
		return models.Room{}, fmt.Errorf("delete room: %w", err)
	}
	return room, nil
}
