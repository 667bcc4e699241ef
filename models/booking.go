package models

import "time"

// Booking states. Updates may move a booking between any of them; there is
// no transition table and none of them is terminal.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

type Booking struct {
	ID     string `json:"id" gorm:"primaryKey;size:64"`
	UserID string `json:"userId" gorm:"column:user_id;size:64;index"`
	RoomID string `json:"roomId" gorm:"column:room_id;size:64;index"`

	// Date-only ISO strings (2006-01-02), kept as strings end to end;
	// pricing parses them once at creation.
	CheckIn  string `json:"checkIn" gorm:"column:check_in;size:10"`
	CheckOut string `json:"checkOut" gorm:"column:check_out;size:10"`

	Guests          int     `json:"guests"`
	TotalPrice      float64 `json:"totalPrice" gorm:"column:total_price"`
	Status          string  `json:"status" gorm:"size:16"`
	SpecialRequests string  `json:"specialRequests" gorm:"column:special_requests;type:text"`

	CreatedAt time.Time `json:"createdAt"`

	// Read-time join, filled by the booking service for display. RoomID is a
	// weak reference: the room may have been deleted since, in which case
	// this stays nil and the field is omitted from JSON.
	Room *Room `json:"room,omitempty" gorm:"-"`
}
