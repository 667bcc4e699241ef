package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"grandvista-backend/services"
	"grandvista-backend/utils"
)

type contactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type MessageController struct {
	MessageSvc *services.MessageService
}

func NewMessageController(svc *services.MessageService) *MessageController {
	return &MessageController{MessageSvc: svc}
}

// GetMessages (GET /api/contact) lists the inbox in arrival order.
func (ctrl *MessageController) GetMessages(c *gin.Context) {
	messages, err := ctrl.MessageSvc.List()
	if err != nil {
		log.Printf("list messages failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}

// CreateMessage (POST /api/contact)
func (ctrl *MessageController) CreateMessage(c *gin.Context) {
	var payload contactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	msg, err := ctrl.MessageSvc.Create(services.ContactInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	})
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			utils.JSONError(c, http.StatusBadRequest, "All fields are required")
			return
		}
		log.Printf("create message failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create message")
		return
	}
	c.JSON(http.StatusCreated, msg)
}
