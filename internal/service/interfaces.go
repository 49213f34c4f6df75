package service

import (
	"worship-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ScheduleServiceInterface defines the interface for schedule operations
type ScheduleServiceInterface interface {
	Add(req *AddScheduleRequest) (*ScheduleResponse, error)
	List(date string) ([]ScheduleResponse, error)
	ListResolved(date string) ([]ScheduleRow, error)
	Delete(id uuid.UUID) error
}

// SongServiceInterface defines the interface for song catalog operations
type SongServiceInterface interface {
	List() ([]SongResponse, error)
	Get(id uuid.UUID) (*SongResponse, error)
	Save(req *SaveSongRequest) (*SongResponse, error)
	Delete(id uuid.UUID) error
	AddPerformance(req *AddPerformanceRequest) (*SongResponse, error)
}

// RosterServiceInterface defines the interface for roster operations
type RosterServiceInterface interface {
	ListSingers() ([]models.Singer, error)
	SaveSinger(req *SaveSingerRequest) (*models.Singer, error)
	DeleteSinger(id uuid.UUID) error
	ListMusicians() ([]models.Musician, error)
	SaveMusician(req *SaveMusicianRequest) (*models.Musician, error)
	DeleteMusician(id uuid.UUID) error
	ListInstruments() ([]models.Instrument, error)
	SaveInstrument(req *SaveInstrumentRequest) (*models.Instrument, error)
	DeleteInstrument(id uuid.UUID) error
}

// ImpedimentServiceInterface defines the interface for impediment operations
type ImpedimentServiceInterface interface {
	List() ([]models.Impediment, error)
	Save(req *SaveImpedimentRequest) (*models.Impediment, error)
	Delete(id uuid.UUID) error
}

// ExportServiceInterface defines the interface for export document assembly
type ExportServiceInterface interface {
	SongSheet(songID uuid.UUID) (*SongSheet, error)
	MonthlySchedule(month string) (*MonthlySchedule, error)
}
