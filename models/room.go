package models

import (
	"time"

	"gorm.io/datatypes"
)

// Room types are a closed set; the catalog does not invent new ones.
const (
	RoomTypeStandard  = "standard"
	RoomTypeDeluxe    = "deluxe"
	RoomTypeExecutive = "executive"
	RoomTypeFamily    = "family"
	RoomTypeSuite     = "suite"
	RoomTypePenthouse = "penthouse"
)

type Room struct {
	ID          string                      `json:"id" gorm:"primaryKey;size:64"`
	Name        string                      `json:"name" gorm:"size:191"`
	Type        string                      `json:"type" gorm:"size:32;index"`
	Price       float64                     `json:"price"`
	Capacity    int                         `json:"capacity"`
	Description string                      `json:"description" gorm:"type:text"`
	Amenities   datatypes.JSONSlice[string] `json:"amenities"`
	Image       string                      `json:"image" gorm:"size:512"`
	Available   bool                        `json:"available"`

	// Insertion marker only; the API never exposes it. List order is
	// catalog order, and string ids are not sortable.
	CreatedAt time.Time `json:"-"`
}
