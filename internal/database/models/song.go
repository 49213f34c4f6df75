package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Song represents a catalog entry with lyrics and its embedded performance
// history. Performances are owned by the song: deleting the song deletes them.
type Song struct {
	BaseModel
	Title        string                           `json:"title" gorm:"size:200;not null"`
	OriginalKey  string                           `json:"originalKey" gorm:"size:10"`
	Lyrics       string                           `json:"lyrics" gorm:"type:text"`
	Performances datatypes.JSONSlice[Performance] `json:"performances"`
}

// Performance is one historical occurrence of the song being sung. It has no
// identity of its own and lives only inside a Song record, in append order.
type Performance struct {
	SingerID uuid.UUID `json:"singerId"`
	Key      string    `json:"key,omitempty"`
	Date     string    `json:"date,omitempty"`
}
