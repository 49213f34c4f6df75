package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Schedule is one planned service event. At most one schedule exists per
// (Date, LeaderID) pair; the service layer enforces that rule on save, the
// index below only speeds the lookup up. All person/song references are weak
// ids resolved at render time.
type Schedule struct {
	BaseModel
	Date               string                                      `json:"date" gorm:"size:10;not null;index:idx_schedules_date_leader"`
	LeaderID           uuid.UUID                                   `json:"leaderId" gorm:"type:uuid;index:idx_schedules_date_leader"`
	Singers            datatypes.JSONSlice[uuid.UUID]              `json:"singers"`
	MusiciansSelection datatypes.JSONType[map[uuid.UUID]uuid.UUID] `json:"musiciansSelection"`
	SongsSelection     datatypes.JSONSlice[SongSelection]          `json:"songsSelection"`
}

// SongSelection is one ordered entry of a schedule's song list: which song and
// in which key it will be played that day.
type SongSelection struct {
	SongID uuid.UUID `json:"songId"`
	Key    string    `json:"key,omitempty"`
}
