package services

import (
	"fmt"
	"strings"
	"time"

	"grandvista-backend/models"
	"grandvista-backend/store"
	"grandvista-backend/utils"
)

// MessageService is the contact inbox: intake and listing, nothing else.
type MessageService struct {
	messages store.MessageStore
}

func NewMessageService(messages store.MessageStore) *MessageService {
	return &MessageService{messages: messages}
}

type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func (s *MessageService) Create(in ContactInput) (models.ContactMessage, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Subject) == "" || strings.TrimSpace(in.Message) == "" {
		return models.ContactMessage{}, ErrMissingFields
	}

	msg := models.ContactMessage{
		ID:        utils.GenerateID("msg"),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.messages.Create(msg)
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("create message: %w", err)
	}
	return created, nil
}

func (s *MessageService) List() ([]models.ContactMessage, error) {
	messages, err := s.messages.List()
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}
