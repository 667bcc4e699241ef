package store

import (
	"strings"
	"sync"

	"grandvista-backend/models"
)

// In-memory store: the default driver, and what the tests run against. Each
// collection keeps a map for lookups plus an order slice so List stays in
// insertion order.

type MemRoomStore struct {
	mu    sync.RWMutex
	items map[string]models.Room
	order []string
}

func NewMemRoomStore() *MemRoomStore {
	return &MemRoomStore{items: make(map[string]models.Room)}
}

func (s *MemRoomStore) List() ([]models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rooms := make([]models.Room, 0, len(s.order))
	for _, id := range s.order {
		rooms = append(rooms, s.items[id])
	}
	return rooms, nil
}

func (s *MemRoomStore) Get(id string) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.items[id]
	if !ok {
		return models.Room{}, ErrNotFound
	}
	return room, nil
}

func (s *MemRoomStore) Create(room models.Room) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[room.ID] = room
	s.order = append(s.order, room.ID)
	return room, nil
}

func (s *MemRoomStore) Update(id string, fields map[string]any) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.items[id]
	if !ok {
		return models.Room{}, ErrNotFound
	}
	mergeRoomFields(&room, fields)
	s.items[id] = room
	return room, nil
}

func (s *MemRoomStore) Delete(id string) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.items[id]
	if !ok {
		return models.Room{}, ErrNotFound
	}
	delete(s.items, id)
	s.order = removeID(s.order, id)
	return room, nil
}

type MemBookingStore struct {
	mu    sync.RWMutex
	items map[string]models.Booking
	order []string
}

func NewMemBookingStore() *MemBookingStore {
	return &MemBookingStore{items: make(map[string]models.Booking)}
}

func (s *MemBookingStore) List() ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bookings := make([]models.Booking, 0, len(s.order))
	for _, id := range s.order {
		bookings = append(bookings, s.items[id])
	}
	return bookings, nil
}

func (s *MemBookingStore) Get(id string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	booking, ok := s.items[id]
	if !ok {
		return models.Booking{}, ErrNotFound
	}
	return booking, nil
}

func (s *MemBookingStore) Create(booking models.Booking) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking.Room = nil // enrichment is never stored
	s.items[booking.ID] = booking
	s.order = append(s.order, booking.ID)
	return booking, nil
}

func (s *MemBookingStore) Update(id string, fields map[string]any) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking, ok := s.items[id]
	if !ok {
		return models.Booking{}, ErrNotFound
	}
	mergeBookingFields(&booking, fields)
	s.items[id] = booking
	return booking, nil
}

func (s *MemBookingStore) Delete(id string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking, ok := s.items[id]
	if !ok {
		return models.Booking{}, ErrNotFound
	}
	delete(s.items, id)
	s.order = removeID(s.order, id)
	return booking, nil
}

type MemUserStore struct {
	mu    sync.RWMutex
	items map[string]models.User
	order []string
}

func NewMemUserStore() *MemUserStore {
	return &MemUserStore{items: make(map[string]models.User)}
}

func (s *MemUserStore) List() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.order))
	for _, id := range s.order {
		users = append(users, s.items[id])
	}
	return users, nil
}

func (s *MemUserStore) Get(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.items[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (s *MemUserStore) FindByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if strings.EqualFold(s.items[id].Email, email) {
			return s.items[id], nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemUserStore) Create(user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if strings.EqualFold(existing.Email, user.Email) {
			return models.User{}, ErrDuplicate
		}
	}
	s.items[user.ID] = user
	s.order = append(s.order, user.ID)
	return user, nil
}

type MemMessageStore struct {
	mu    sync.RWMutex
	items map[string]models.ContactMessage
	order []string
}

func NewMemMessageStore() *MemMessageStore {
	return &MemMessageStore{items: make(map[string]models.ContactMessage)}
}

func (s *MemMessageStore) List() ([]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages := make([]models.ContactMessage, 0, len(s.order))
	for _, id := range s.order {
		messages = append(messages, s.items[id])
	}
	return messages, nil
}

func (s *MemMessageStore) Create(msg models.ContactMessage) (models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[msg.ID] = msg
	s.order = append(s.order, msg.ID)
	return msg, nil
}

// NewMemStores wires a complete in-memory store set.
func NewMemStores() *Stores {
	return &Stores{
		Rooms:    NewMemRoomStore(),
		Bookings: NewMemBookingStore(),
		Users:    NewMemUserStore(),
		Messages: NewMemMessageStore(),
	}
}

func removeID(order []string, id string) []string {
	for i, existing := range order {
		if existing == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
