package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"grandvista-backend/services"
	"grandvista-backend/utils"
)

type CreateBookingRequest struct {
	UserID          string `json:"userId"`
	RoomID          string `json:"roomId"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// GetBookings (GET /api/bookings?userId=...) lists bookings in storage
// order, each enriched with its room when the room still exists.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.List(c.Query("userId"))
	if err != nil {
		log.Printf("list bookings failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking (GET /api/bookings/:id)
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	booking, err := ctrl.BookingSvc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		log.Printf("get booking failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CreateBooking (POST /api/bookings) validates the room and date range,
// freezes the price and stores the booking as confirmed.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	booking, err := ctrl.BookingSvc.Create(services.CreateBookingInput{
		UserID:          req.UserID,
		RoomID:          req.RoomID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, "Room not found")
		case errors.Is(err, services.ErrInvalidDateRange):
			utils.JSONError(c, http.StatusBadRequest, "Check-out must be after check-in")
		default:
			log.Printf("create booking failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// UpdateBooking (PUT /api/bookings/:id) shallow-merges the supplied fields,
// typically {"status": ...}. Any of the four statuses may be set from any
// state; cancelled and completed bookings stay editable.
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	delete(fields, "id")
	delete(fields, "createdAt")
	delete(fields, "room")

	booking, err := ctrl.BookingSvc.Update(c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		log.Printf("update booking failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DeleteBooking (DELETE /api/bookings/:id) removes the record and returns it
// without enrichment.
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	booking, err := ctrl.BookingSvc.Delete(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		log.Printf("delete booking failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}
