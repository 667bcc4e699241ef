package store

import (
	"errors"

	"grandvista-backend/models"
)

// ErrNotFound is returned by any operation whose id does not resolve to a
// stored record.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a create violates a uniqueness constraint
// (currently only User.Email).
var ErrDuplicate = errors.New("duplicate record")

// RoomStore holds the room catalog. List returns rooms in catalog
// (insertion) order. Update merges only the supplied fields over the stored
// record; unknown keys are ignored. Delete returns the removed record.
type RoomStore interface {
	List() ([]models.Room, error)
	Get(id string) (models.Room, error)
	Create(room models.Room) (models.Room, error)
	Update(id string, fields map[string]any) (models.Room, error)
	Delete(id string) (models.Room, error)
}

// BookingStore holds the booking ledger, same contract as RoomStore.
type BookingStore interface {
	List() ([]models.Booking, error)
	Get(id string) (models.Booking, error)
	Create(booking models.Booking) (models.Booking, error)
	Update(id string, fields map[string]any) (models.Booking, error)
	Delete(id string) (models.Booking, error)
}

// UserStore is the user directory. Users are never updated or deleted
// through the API, so the contract stops at create and read.
type UserStore interface {
	List() ([]models.User, error)
	Get(id string) (models.User, error)
	FindByEmail(email string) (models.User, error)
	Create(user models.User) (models.User, error)
}

// MessageStore is the contact inbox. Intake and listing only; messages are
// never edited.
type MessageStore interface {
	List() ([]models.ContactMessage, error)
	Create(msg models.ContactMessage) (models.ContactMessage, error)
}

// Stores bundles the four collections behind one injection point. Handlers
// and services never see a concrete implementation.
type Stores struct {
	Rooms    RoomStore
	Bookings BookingStore
	Users    UserStore
	Messages MessageStore
}
