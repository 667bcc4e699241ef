package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"grandvista-backend/models"
	"grandvista-backend/services"
	"grandvista-backend/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// parseRoomFilter reads the list query predicates. Malformed numbers are
// ignored rather than treated as constraints.
func parseRoomFilter(c *gin.Context) services.RoomFilter {
	filter := services.RoomFilter{Type: c.Query("type")}

	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}
	// The frontend sends "capacity"; accept "minCapacity" as an alias.
	raw := c.Query("capacity")
	if raw == "" {
		raw = c.Query("minCapacity")
	}
	if raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.MinCapacity = &v
		}
	}

	return filter
}

// GetRooms (GET /api/rooms) lists the catalog, optionally narrowed by
// type/minPrice/maxPrice/capacity. All supplied predicates must hold.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.List(parseRoomFilter(c))
	if err != nil {
		log.Printf("list rooms failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom (GET /api/rooms/:id)
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	room, err := ctrl.RoomSvc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		log.Printf("get room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load room")
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoom (POST /api/rooms). The id is always server-generated and the
// room comes up available regardless of the payload.
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	created, err := ctrl.RoomSvc.Create(room)
	if err != nil {
		log.Printf("create room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create room")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateRoom (PUT/PATCH /api/rooms/:id) shallow-merges the supplied fields
// over the stored record. Omitted fields survive untouched.
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	delete(fields, "id")
	delete(fields, "createdAt")

	room, err := ctrl.RoomSvc.Update(c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		log.Printf("update room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update room")
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom (DELETE /api/rooms/:id) removes the room and returns the
// deleted record. Existing bookings keep their roomId; their room join just
// starts missing.
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	room, err := ctrl.RoomSvc.Delete(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		log.Printf("delete room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete room")
		return
	}
	c.JSON(http.StatusOK, room)
}
