package service

import (
	"fmt"

	"worship-roster-backend/internal/database/models"
	apperrors "worship-roster-backend/internal/errors"
	"worship-roster-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SongService handles business logic for the song catalog and the embedded
// performance history.
type SongService struct {
	store     storage.Store
	validator *validator.Validate
}

// NewSongService creates a new song service
func NewSongService(store storage.Store, validator *validator.Validate) *SongService {
	return &SongService{store: store, validator: validator}
}

// SaveSongRequest represents the request to create or update a song. An empty
// ID creates a new catalog entry; a set ID replaces the existing one.
type SaveSongRequest struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	OriginalKey string    `json:"originalKey" validate:"required,max=10"`
	Lyrics      string    `json:"lyrics"`
}

// AddPerformanceRequest represents one performance to append to a song's log
type AddPerformanceRequest struct {
	SongID   uuid.UUID `json:"songId"`
	SingerID uuid.UUID `json:"singerId"`
	Key      string    `json:"key,omitempty" validate:"max=10"`
	Date     string    `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// SongResponse represents a stored song with its performance history
type SongResponse struct {
	ID           uuid.UUID            `json:"id"`
	Title        string               `json:"title"`
	OriginalKey  string               `json:"originalKey"`
	Lyrics       string               `json:"lyrics,omitempty"`
	Performances []models.Performance `json:"performances"`
	CreatedAt    string               `json:"created_at"`
	UpdatedAt    string               `json:"updated_at"`
}

// Save creates or fully replaces a song. Performances of an existing song are
// carried over: they belong to the performance log, not the edit form.
func (s *SongService) Save(req *SaveSongRequest) (*SongResponse, error) {
	if req.Title == "" {
		return nil, &apperrors.ValidationError{Field: "title", Message: "title is required"}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	song := &models.Song{
		BaseModel:   models.BaseModel{ID: req.ID},
		Title:       req.Title,
		OriginalKey: req.OriginalKey,
		Lyrics:      req.Lyrics,
	}
	if req.ID != uuid.Nil {
		if existing, ok := s.store.Songs().Find(req.ID); ok {
			song.Performances = existing.Performances
		}
	}

	stored, err := s.store.Songs().Upsert(song)
	if err != nil {
		return nil, fmt.Errorf("failed to save song: %w", err)
	}
	return s.toResponse(stored), nil
}

// List retrieves all songs in creation order.
func (s *SongService) List() ([]SongResponse, error) {
	songs := s.store.Songs().GetAll()

	responses := make([]SongResponse, len(songs))
	for i := range songs {
		responses[i] = *s.toResponse(&songs[i])
	}
	return responses, nil
}

// Get retrieves a song by id.
func (s *SongService) Get(id uuid.UUID) (*SongResponse, error) {
	song, ok := s.store.Songs().Find(id)
	if !ok {
		return nil, apperrors.ErrSongNotFound
	}
	return s.toResponse(song), nil
}

// Delete removes a song and, with it, its embedded performances.
func (s *SongService) Delete(id uuid.UUID) error {
	if _, ok := s.store.Songs().Find(id); !ok {
		return apperrors.ErrSongNotFound
	}
	if err := s.store.Songs().Remove(id); err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}
	return nil
}

// AddPerformance appends one performance to the song's history. The log is
// append-only and deliberately not deduplicated: repeating the same singer,
// key and date is a user decision, not an error.
func (s *SongService) AddPerformance(req *AddPerformanceRequest) (*SongResponse, error) {
	if req.SongID == uuid.Nil {
		return nil, &apperrors.ValidationError{Field: "songId", Message: "song id is required"}
	}
	if req.SingerID == uuid.Nil {
		return nil, &apperrors.ValidationError{Field: "singerId", Message: "singer id is required"}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD form"}
	}

	song, ok := s.store.Songs().Find(req.SongID)
	if !ok {
		return nil, apperrors.ErrSongNotFound
	}

	song.Performances = append(song.Performances, models.Performance{
		SingerID: req.SingerID,
		Key:      req.Key,
		Date:     req.Date,
	})

	stored, err := s.store.Songs().Upsert(song)
	if err != nil {
		return nil, fmt.Errorf("failed to save performance: %w", err)
	}
	return s.toResponse(stored), nil
}

func (s *SongService) toResponse(song *models.Song) *SongResponse {
	performances := song.Performances
	if performances == nil {
		performances = []models.Performance{}
	}
	return &SongResponse{
		ID:           song.ID,
		Title:        song.Title,
		OriginalKey:  song.OriginalKey,
		Lyrics:       song.Lyrics,
		Performances: performances,
		CreatedAt:    song.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    song.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
