package store

import (
	"gorm.io/datatypes"

	"grandvista-backend/models"
)

// Field merging for partial updates. Payloads arrive as decoded JSON maps,
// so numbers are float64 and lists are []any; literal Go values from tests
// are accepted too. Keys not listed here (id, createdAt, anything unknown)
// never touch the stored record.

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asStringSlice(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	}
	return nil, false
}

func mergeRoomFields(room *models.Room, fields map[string]any) {
	for key, value := range fields {
		switch key {
		case "name":
			if s, ok := asString(value); ok {
				room.Name = s
			}
		case "type":
			if s, ok := asString(value); ok {
				room.Type = s
			}
		case "price":
			if f, ok := asFloat(value); ok {
				room.Price = f
			}
		case "capacity":
			if f, ok := asFloat(value); ok {
				room.Capacity = int(f)
			}
		case "description":
			if s, ok := asString(value); ok {
				room.Description = s
			}
		case "amenities":
			if list, ok := asStringSlice(value); ok {
				room.Amenities = datatypes.NewJSONSlice(list)
			}
		case "image":
			if s, ok := asString(value); ok {
				room.Image = s
			}
		case "available":
			if b, ok := asBool(value); ok {
				room.Available = b
			}
		}
	}
}

func mergeBookingFields(booking *models.Booking, fields map[string]any) {
	for key, value := range fields {
		switch key {
		case "userId":
			if s, ok := asString(value); ok {
				booking.UserID = s
			}
		case "roomId":
			if s, ok := asString(value); ok {
				booking.RoomID = s
			}
		case "checkIn":
			if s, ok := asString(value); ok {
				booking.CheckIn = s
			}
		case "checkOut":
			if s, ok := asString(value); ok {
				booking.CheckOut = s
			}
		case "guests":
			if f, ok := asFloat(value); ok {
				booking.Guests = int(f)
			}
		case "totalPrice":
			if f, ok := asFloat(value); ok {
				booking.TotalPrice = f
			}
		case "status":
			if s, ok := asString(value); ok {
				booking.Status = s
			}
		case "specialRequests":
			if s, ok := asString(value); ok {
				booking.SpecialRequests = s
			}
		}
	}
}
