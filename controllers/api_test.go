package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grandvista-backend/controllers"
	"grandvista-backend/routes"
	"grandvista-backend/services"
	"grandvista-backend/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Stores) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stores := store.NewMemStores()
	require.NoError(t, store.Seed(stores))

	roomService := services.NewRoomService(stores.Rooms)
	bookingService := services.NewBookingService(stores.Bookings, stores.Rooms)
	userService := services.NewUserService(stores.Users)
	messageService := services.NewMessageService(stores.Messages)
	adminService := services.NewAdminService(roomService, bookingService, userService, messageService)

	router := routes.SetupRouter(
		controllers.NewRoomController(roomService),
		controllers.NewBookingController(bookingService),
		controllers.NewAuthController(userService),
		controllers.NewUserController(userService),
		controllers.NewMessageController(messageService),
		controllers.NewAdminController(adminService),
	)
	return router, stores
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestListRoomsWithFilters(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rooms []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 6)

	w = doJSON(t, router, http.MethodGet, "/api/rooms?type=suite&minPrice=400", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	require.Len(t, rooms, 1)
	assert.Equal(t, "Premium Suite", rooms[0]["name"])

	w = doJSON(t, router, http.MethodGet, "/api/rooms?capacity=4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 2)
}

func TestRoomNotFoundPayload(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/rooms/room-999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Room not found", decodeBody(t, w)["error"])
}

func TestRoomCreateUpdateDelete(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/rooms", map[string]any{
		"name":      "Garden View",
		"type":      "standard",
		"price":     140,
		"capacity":  2,
		"amenities": []string{"Wi-Fi"},
		"available": false,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, true, created["available"], "create always comes up available")

	w = doJSON(t, router, http.MethodPut, "/api/rooms/"+id, map[string]any{"price": 165})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody(t, w)
	assert.Equal(t, 165.0, updated["price"])
	assert.Equal(t, "Garden View", updated["name"], "omitted fields survive a partial update")

	w = doJSON(t, router, http.MethodDelete, "/api/rooms/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, decodeBody(t, w)["id"])

	w = doJSON(t, router, http.MethodDelete, "/api/rooms/"+id, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Room not found", decodeBody(t, w)["error"])
}

func TestCreateBookingHappyPath(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", map[string]any{
		"userId":   "user-1",
		"roomId":   "room-2",
		"checkIn":  "2026-03-01",
		"checkOut": "2026-03-05",
		"guests":   2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, 880.0, body["totalPrice"])
	assert.Equal(t, "confirmed", body["status"])
	room, ok := body["room"].(map[string]any)
	require.True(t, ok, "created booking is enriched with its room")
	assert.Equal(t, "Deluxe Room", room["name"])
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", map[string]any{
		"userId":   "user-1",
		"roomId":   "room-999",
		"checkIn":  "2026-03-01",
		"checkOut": "2026-03-05",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Room not found", decodeBody(t, w)["error"])
}

func TestCreateBookingInvalidDates(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", map[string]any{
		"userId":   "user-1",
		"roomId":   "room-2",
		"checkIn":  "2026-03-05",
		"checkOut": "2026-03-01",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Check-out must be after check-in", decodeBody(t, w)["error"])
}

func TestListBookingsByUser(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/bookings?userId=user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var bookings []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	require.Len(t, bookings, 2)
	for _, booking := range bookings {
		assert.Equal(t, "user-1", booking["userId"])
		_, enriched := booking["room"].(map[string]any)
		assert.True(t, enriched)
	}

	w = doJSON(t, router, http.MethodGet, "/api/bookings?userId=user-none", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	assert.Empty(t, bookings)
}

func TestUpdateBookingStatus(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, status := range []string{"cancelled", "completed", "pending", "confirmed"} {
		w := doJSON(t, router, http.MethodPut, "/api/bookings/booking-1", map[string]any{"status": status})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, status, decodeBody(t, w)["status"])
	}

	w := doJSON(t, router, http.MethodPut, "/api/bookings/booking-999", map[string]any{"status": "cancelled"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", decodeBody(t, w)["error"])
}

func TestDeleteBooking(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodDelete, "/api/bookings/booking-2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "booking-2", decodeBody(t, w)["id"])

	w = doJSON(t, router, http.MethodGet, "/api/bookings/booking-2", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", decodeBody(t, w)["error"])
}

func TestRegisterAndLoginFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", map[string]any{
		"name":     "Asha Thapa",
		"email":    "asha@example.com",
		"password": "hunter2hunter2",
		"phone":    "+977 9800000000",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, user, "password")

	w = doJSON(t, router, http.MethodPost, "/api/auth/register", map[string]any{
		"name":     "Asha Again",
		"email":    "asha@example.com",
		"password": "another-pass",
		"phone":    "+977 9811111111",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered", decodeBody(t, w)["error"])

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "asha@example.com",
		"password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "asha@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, w)["error"])
}

func TestContactIntake(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/contact", map[string]any{
		"name":  "Asha",
		"email": "asha@example.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", decodeBody(t, w)["error"])

	w = doJSON(t, router, http.MethodPost, "/api/contact", map[string]any{
		"name":    "Asha",
		"email":   "asha@example.com",
		"subject": "Early check-in",
		"message": "Is a 10am check-in possible?",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["read"])

	w = doJSON(t, router, http.MethodGet, "/api/contact", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var messages []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	assert.Len(t, messages, 1)
}

func TestAdminOverview(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/admin/overview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	rooms, ok := body["rooms"].([]any)
	require.True(t, ok)
	assert.Len(t, rooms, 6)

	bookings, ok := body["bookings"].([]any)
	require.True(t, ok)
	assert.Len(t, bookings, 2)
	first, ok := bookings[0].(map[string]any)
	require.True(t, ok)
	_, enriched := first["room"].(map[string]any)
	assert.True(t, enriched)

	users, ok := body["users"].([]any)
	require.True(t, ok)
	assert.Len(t, users, 2)
	for _, u := range users {
		record, ok := u.(map[string]any)
		require.True(t, ok)
		assert.NotContains(t, record, "password")
	}

	_, ok = body["messages"].([]any)
	assert.True(t, ok)
}
