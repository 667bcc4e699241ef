package services

import (
	"fmt"

	"grandvista-backend/models"
)

// AdminService aggregates the management view: full room catalog, all
// bookings enriched with their rooms, the user directory (passwords already
// stripped by the model) and the contact inbox. It holds no state of its
// own; mutations go through the underlying services.
type AdminService struct {
	rooms    *RoomService
	bookings *BookingService
	users    *UserService
	messages *MessageService
}

func NewAdminService(rooms *RoomService, bookings *BookingService, users *UserService, messages *MessageService) *AdminService {
	return &AdminService{rooms: rooms, bookings: bookings, users: users, messages: messages}
}

type Overview struct {
	Rooms    []models.Room           `json:"rooms"`
	Bookings []models.Booking        `json:"bookings"`
	Users    []models.User           `json:"users"`
	Messages []models.ContactMessage `json:"messages"`
}

func (s *AdminService) Overview() (Overview, error) {
	rooms, err := s.rooms.List(RoomFilter{})
	if err != nil {
		return Overview{}, fmt.Errorf("overview rooms: %w", err)
	}
	bookings, err := s.bookings.List("")
	if err != nil {
		return Overview{}, fmt.Errorf("overview bookings: %w", err)
	}
	users, err := s.users.List()
	if err != nil {
		return Overview{}, fmt.Errorf("overview users: %w", err)
	}
	messages, err := s.messages.List()
	if err != nil {
		return Overview{}, fmt.Errorf("overview messages: %w", err)
	}
	return Overview{Rooms: rooms, Bookings: bookings, Users: users, Messages: messages}, nil
}
