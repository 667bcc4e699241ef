package models

import "time"

// ContactMessage is an inbox entry from the public contact form.
type ContactMessage struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	Name      string    `json:"name" gorm:"size:191"`
	Email     string    `json:"email" gorm:"size:191"`
	Subject   string    `json:"subject" gorm:"size:255"`
	Message   string    `json:"message" gorm:"type:text"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
