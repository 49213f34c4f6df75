package models

import "github.com/google/uuid"

// Impediment records that a singer or musician is unavailable on a date.
type Impediment struct {
	BaseModel
	PersonID   uuid.UUID  `json:"personId" gorm:"type:uuid;not null"`
	PersonType PersonType `json:"personType" gorm:"size:20;not null"`
	Date       string     `json:"date" gorm:"size:10;not null"`
	Reason     string     `json:"reason,omitempty" gorm:"size:200"`
}
