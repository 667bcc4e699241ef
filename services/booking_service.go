package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"grandvista-backend/models"
	"grandvista-backend/store"
	"grandvista-backend/utils"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
)

const dateLayout = "2006-01-02"

// Nights returns the whole-day span between two date-only ISO strings,
// rounding any partial day up. A zero or negative span, or an unparsable
// date, is an invalid range.
func Nights(checkIn, checkOut string) (int, error) {
	start, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0, ErrInvalidDateRange
	}
	end, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0, ErrInvalidDateRange
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24)), nil
}

// BookingService is the booking ledger. It validates and prices new bookings
// against the room catalog and owns the status lifecycle. Room data attached
// to returned bookings is a read-time join, never persisted.
type BookingService struct {
	bookings store.BookingStore
	rooms    store.RoomStore
}

func NewBookingService(bookings store.BookingStore, rooms store.RoomStore) *BookingService {
	return &BookingService{bookings: bookings, rooms: rooms}
}

type CreateBookingInput struct {
	UserID          string
	RoomID          string
	CheckIn         string
	CheckOut        string
	Guests          int
	SpecialRequests string
}

// Create validates the request, freezes the price and stores the booking.
// The room must exist at creation time; the date range must cover at least
// one night. totalPrice = room.price × nights is computed once and never
// recomputed, even if the room's price changes later. Every new booking
// starts confirmed; there is no payment-pending gate. Overlapping bookings
// for the same room are accepted (no inventory lock).
func (s *BookingService) Create(in CreateBookingInput) (models.Booking, error) {
	room, err := s.rooms.Get(in.RoomID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Booking{}, ErrRoomNotFound
		}
		return models.Booking{}, fmt.Errorf("resolve room: %w", err)
	}

	nights, err := Nights(in.CheckIn, in.CheckOut)
	if err != nil {
		return models.Booking{}, err
	}
	if nights <= 0 {
		return models.Booking{}, ErrInvalidDateRange
	}

	guests := in.Guests
	if guests == 0 {
		guests = 1
	}

	booking := models.Booking{
		ID:              utils.GenerateID("booking"),
		UserID:          in.UserID,
		RoomID:          in.RoomID,
		CheckIn:         in.CheckIn,
		CheckOut:        in.CheckOut,
		Guests:          guests,
		TotalPrice:      room.Price * float64(nights),
		Status:          models.BookingStatusConfirmed,
		SpecialRequests: in.SpecialRequests,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.bookings.Create(booking)
	if err != nil {
		return models.Booking{}, fmt.Errorf("store booking: %w", err)
	}
	created.Room = &room
	return created, nil
}

// List returns bookings in storage order, each enriched with its room when
// the room still exists. A non-empty userID narrows the result to that
// user's bookings.
func (s *BookingService) List(userID string) ([]models.Booking, error) {
	bookings, err := s.bookings.List()
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	result := make([]models.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if userID != "" && booking.UserID != userID {
			continue
		}
		s.enrich(&booking)
		result = append(result, booking)
	}
	return result, nil
}

func (s *BookingService) Get(id string) (models.Booking, error) {
	booking, err := s.bookings.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("get booking: %w", err)
	}
	s.enrich(&booking)
	return booking, nil
}

// Update shallow-merges the supplied fields over the stored booking and
// returns the enriched result. Status changes go through here; any of the
// four states may be set from any other, for admins and for self-service
// cancellation alike.
func (s *BookingService) Update(id string, fields map[string]any) (models.Booking, error) {
	booking, err := s.bookings.Update(id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("update booking: %w", err)
	}
	s.enrich(&booking)
	return booking, nil
}

func (s *BookingService) Delete(id string) (models.Booking, error) {
	booking, err := s.bookings.Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("delete booking: %w", err)
	}
	return booking, nil
}

func (s *BookingService) enrich(booking *models.Booking) {
	room, err := s.rooms.Get(booking.RoomID)
	if err != nil {
		booking.Room = nil // dangling reference, room was deleted
		return
	}
	booking.Room = &room
}
