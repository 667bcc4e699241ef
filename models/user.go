package models

import "time"

const (
	RoleGuest = "guest"
	RoleAdmin = "admin"
)

// User belongs to the externally-owned user directory. The booking ledger
// only holds weak references to User.ID. Password is a bcrypt hash and is
// never serialized.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	Name      string    `json:"name" gorm:"size:191"`
	Email     string    `json:"email" gorm:"size:191;uniqueIndex"`
	Password  string    `json:"-" gorm:"size:191"`
	Role      string    `json:"role" gorm:"size:16"`
	Phone     string    `json:"phone" gorm:"size:32"`
	CreatedAt time.Time `json:"createdAt"`
}
