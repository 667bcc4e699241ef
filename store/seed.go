package store

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"grandvista-backend/models"
)

// Seed loads the starter catalog, demo accounts and sample bookings into an
// empty store. Each collection is only seeded when it has no records, so
// restarting against a durable store never duplicates data.
func Seed(st *Stores) error {
	base := time.Now().UTC()

	rooms, err := st.Rooms.List()
	if err != nil {
		return fmt.Errorf("seed: list rooms: %w", err)
	}
	if len(rooms) == 0 {
		for i, room := range seedRooms() {
			room.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
			if _, err := st.Rooms.Create(room); err != nil {
				return fmt.Errorf("seed: create room %s: %w", room.ID, err)
			}
		}
		log.Println("Rooms seeded")
	}

	users, err := st.Users.List()
	if err != nil {
		return fmt.Errorf("seed: list users: %w", err)
	}
	if len(users) == 0 {
		seeded, err := seedUsers()
		if err != nil {
			return err
		}
		for _, user := range seeded {
			if _, err := st.Users.Create(user); err != nil {
				return fmt.Errorf("seed: create user %s: %w", user.ID, err)
			}
		}
		log.Println("Users seeded")
	}

	bookings, err := st.Bookings.List()
	if err != nil {
		return fmt.Errorf("seed: list bookings: %w", err)
	}
	if len(bookings) == 0 {
		for _, booking := range seedBookings() {
			if _, err := st.Bookings.Create(booking); err != nil {
				return fmt.Errorf("seed: create booking %s: %w", booking.ID, err)
			}
		}
		log.Println("Bookings seeded")
	}

	return nil
}

func seedRooms() []models.Room {
	return []models.Room{
		{
			ID:          "room-1",
			Name:        "Standard Room",
			Type:        models.RoomTypeStandard,
			Price:       120,
			Capacity:    2,
			Description: "A comfortable standard room with modern amenities, perfect for solo travelers or couples. Enjoy a restful stay with a queen-size bed, flat-screen TV, and complimentary Wi-Fi.",
			Amenities:   datatypes.NewJSONSlice([]string{"Wi-Fi", "TV", "Air Conditioning", "Mini Fridge", "Safe"}),
			Image:       "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=800&q=80",
			Available:   true,
		},
		{
			ID:          "room-2",
			Name:        "Deluxe Room",
			Type:        models.RoomTypeDeluxe,
			Price:       220,
			Capacity:    2,
			Description: "Upgrade your experience with our Deluxe Room featuring a king-size bed, premium linens, city views, and a spacious bathroom with luxury toiletries.",
			Amenities:   datatypes.NewJSONSlice([]string{"Wi-Fi", "TV", "Air Conditioning", "Mini Bar", "Safe", "City View", "Bathrobe"}),
			Image:       "https://images.unsplash.com/photo-1590490360182-c33d955e4c47?w=800&q=80",
			Available:   true,
		},
		{
			ID:          "room-3",
			Name:        "Executive Suite",
			Type:        models.RoomTypeExecutive,
			Price:       350,
			Capacity:    2,
			Description: "Designed for the business traveler, the Executive Suite includes a separate workspace, ergonomic seating, high-speed internet, and access to the executive lounge.",
			Amenities:   datatypes.NewJSONSlice([]string{"Wi-Fi", "TV", "Air Conditioning", "Mini Bar", "Safe", "Workspace", "Executive Lounge Access", "Coffee Machine"}),
			Image:       "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800&q=80",
			Available:   true,
		},
		{
			ID:          "room-4",
			Name:        "Family Room",
			Type:        models.RoomTypeFamily,
			Price:       280,
			Capacity:    4,
			Description: "Spacious and welcoming, our Family Room features two queen-size beds, a cozy seating area, and kid-friendly amenities. Perfect for families with children.",
			Amenities:   datatypes.NewJSONSlice([]string{"Wi-Fi", "TV", "Air Conditioning", "Mini Fridge", "Safe", "Extra Beds", "Play Area"}),
			Image:       "https://images.unsplash.com/photo-1566665797739-1674de7a421a?w=800&q=80",
			Available:   true,
		},
		{
			ID:          "room-5",
			Name:        "Premium Suite",
			Type:        models.RoomTypeSuite,
			Price:       480,
			Capacity:    3,
			Description: "Indulge in luxury with our Premium Suite. Features a separate living area, dining space, premium minibar, and breathtaking ocean views from floor-to-ceiling windows.",
			Amenities:   datatypes.NewJSONSlice([]string{"Wi-Fi", "TV", "Air Conditioning", "Premium Mini Bar", "Safe", "Ocean View", "Living Area", "Dining Area", "Jacuzzi"}),
			Image:       "https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=800&q=80",
			Available:   true,
		},
		{
			ID:          "room-6",
			Name:        "Penthouse Suite",
			Type:        models.RoomTypePenthouse,
			Price:       850,
			Capacity:    4,
			Description: "The pinnacle of luxury, our Penthouse Suite offers panoramic city views, a private terrace, butler service, and the finest amenities for an unforgettable experience.",
			Amenities:   datatypes.NewJSONSlice([]string{"Wi-Fi", "TV", "Air Conditioning", "Premium Mini Bar", "Safe", "Panoramic View", "Private Terrace", "Butler Service", "Jacuzzi", "Kitchen"}),
			Image:       "https://images.unsplash.com/photo-1602002418082-a4443e081dd1?w=800&q=80",
			Available:   true,
		},
	}
}

func seedUsers() ([]models.User, error) {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("seed: hash admin password: %w", err)
	}
	guestHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("seed: hash guest password: %w", err)
	}
	return []models.User{
		{
			ID:        "user-admin",
			Name:      "Rajnish Bhandari",
			Email:     "admin@grandvista.com",
			Password:  string(adminHash),
			Role:      models.RoleAdmin,
			Phone:     "+977 1234567890",
			CreatedAt: mustParseTime("2025-01-01T00:00:00Z"),
		},
		{
			ID:        "user-1",
			Name:      "Rajnish Bhandari",
			Email:     "rajnish@example.com",
			Password:  string(guestHash),
			Role:      models.RoleGuest,
			Phone:     "+977 1234567890",
			CreatedAt: mustParseTime("2025-06-15T10:30:00Z"),
		},
	}, nil
}

func seedBookings() []models.Booking {
	return []models.Booking{
		{
			ID:              "booking-1",
			UserID:          "user-1",
			RoomID:          "room-2",
			CheckIn:         "2026-03-01",
			CheckOut:        "2026-03-05",
			Guests:          2,
			TotalPrice:      880,
			Status:          models.BookingStatusConfirmed,
			SpecialRequests: "Late check-in please",
			CreatedAt:       mustParseTime("2026-02-10T14:00:00Z"),
		},
		{
			ID:         "booking-2",
			UserID:     "user-1",
			RoomID:     "room-5",
			CheckIn:    "2026-04-10",
			CheckOut:   "2026-04-14",
			Guests:     2,
			TotalPrice: 1920,
			Status:     models.BookingStatusPending,
			CreatedAt:  mustParseTime("2026-02-12T09:00:00Z"),
		},
	}
}

func mustParseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		log.Fatalf("Error parsing time for seeding (%s): %v", value, err)
	}
	return t
}
