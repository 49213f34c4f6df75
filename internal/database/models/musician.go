package models

import "github.com/google/uuid"

// Musician represents an instrumentalist. InstrumentID is a weak reference:
// the instrument may be deleted later, leaving the id dangling, which readers
// tolerate by rendering a removed placeholder.
type Musician struct {
	BaseModel
	Name         string    `json:"name" gorm:"size:120;not null"`
	Contact      string    `json:"contact" gorm:"size:120"`
	InstrumentID uuid.UUID `json:"instrumentId" gorm:"type:uuid"`
}
