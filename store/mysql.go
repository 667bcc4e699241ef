package store

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"grandvista-backend/models"
)

// MySQL-backed store over gorm. Updates are read-modify-write through the
// same merge helpers as the memory store so both drivers expose identical
// partial-merge semantics. Records are listed by created_at, which tracks
// insertion order.

const mysqlDuplicateEntry = 1062

func isDuplicateErr(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

type MySQLRoomStore struct {
	db *gorm.DB
}

func (s *MySQLRoomStore) List() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.Order("created_at").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (s *MySQLRoomStore) Get(id string) (models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrNotFound
		}
		return models.Room{}, fmt.Errorf("get room: %w", err)
	}
	return room, nil
}

func (s *MySQLRoomStore) Create(room models.Room) (models.Room, error) {
	if err := s.db.Create(&room).Error; err != nil {
		return models.Room{}, fmt.Errorf("create room: %w", err)
	}
	return room, nil
}

func (s *MySQLRoomStore) Update(id string, fields map[string]any) (models.Room, error) {
	room, err := s.Get(id)
	if err != nil {
		return models.Room{}, err
	}
	mergeRoomFields(&room, fields)
	if err := s.db.Save(&room).Error; err != nil {
		return models.Room{}, fmt.Errorf("update room: %w", err)
	}
	return room, nil
}

func (s *MySQLRoomStore) Delete(id string) (models.Room, error) {
	room, err := s.Get(id)
	if err != nil {
		return models.Room{}, err
	}
	if err := s.db.Delete(&models.Room{}, "id = ?", id).Error; err != nil {
		return models.Room{}, fmt.Errorf("delete room: %w", err)
	}
	return room, nil
}

type MySQLBookingStore struct {
	db *gorm.DB
}

func (s *MySQLBookingStore) List() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Order("created_at").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *MySQLBookingStore) Get(id string) (models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrNotFound
		}
		return models.Booking{}, fmt.Errorf("get booking: %w", err)
	}
	return booking, nil
}

func (s *MySQLBookingStore) Create(booking models.Booking) (models.Booking, error) {
	booking.Room = nil
	if err := s.db.Create(&booking).Error; err != nil {
		return models.Booking{}, fmt.Errorf("create booking: %w", err)
	}
	return booking, nil
}

func (s *MySQLBookingStore) Update(id string, fields map[string]any) (models.Booking, error) {
	booking, err := s.Get(id)
	if err != nil {
		return models.Booking{}, err
	}
	mergeBookingFields(&booking, fields)
	if err := s.db.Save(&booking).Error; err != nil {
		return models.Booking{}, fmt.Errorf("update booking: %w", err)
	}
	return booking, nil
}

func (s *MySQLBookingStore) Delete(id string) (models.Booking, error) {
	booking, err := s.Get(id)
	if err != nil {
		return models.Booking{}, err
	}
	if err := s.db.Delete(&models.Booking{}, "id = ?", id).Error; err != nil {
		return models.Booking{}, fmt.Errorf("delete booking: %w", err)
	}
	return booking, nil
}

type MySQLUserStore struct {
	db *gorm.DB
}

func (s *MySQLUserStore) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *MySQLUserStore) Get(id string) (models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *MySQLUserStore) FindByEmail(email string) (models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

func (s *MySQLUserStore) Create(user models.User) (models.User, error) {
	if err := s.db.Create(&user).Error; err != nil {
		if isDuplicateErr(err) {
			return models.User{}, ErrDuplicate
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

type MySQLMessageStore struct {
	db *gorm.DB
}

func (s *MySQLMessageStore) List() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := s.db.Order("created_at").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

func (s *MySQLMessageStore) Create(msg models.ContactMessage) (models.ContactMessage, error) {
	if err := s.db.Create(&msg).Error; err != nil {
		return models.ContactMessage{}, fmt.Errorf("create message: %w", err)
	}
	return msg, nil
}

// NewMySQLStores wires the durable store set over an open gorm connection.
func NewMySQLStores(db *gorm.DB) *Stores {
	return &Stores{
		Rooms:    &MySQLRoomStore{db: db},
		Bookings: &MySQLBookingStore{db: db},
		Users:    &MySQLUserStore{db: db},
		Messages: &MySQLMessageStore{db: db},
	}
}
