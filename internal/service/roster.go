package service

import (
	"fmt"

	"worship-roster-backend/internal/database/models"
	apperrors "worship-roster-backend/internal/errors"
	"worship-roster-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RosterService handles business logic for singers, musicians and
// instruments: the plain CRUD collections the schedule references.
type RosterService struct {
	store     storage.Store
	validator *validator.Validate
}

// NewRosterService creates a new roster service
func NewRosterService(store storage.Store, validator *validator.Validate) *RosterService {
	return &RosterService{store: store, validator: validator}
}

// SaveSingerRequest represents the request to create or update a singer
type SaveSingerRequest struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName" validate:"required,min=1,max=80"`
	LastName     string    `json:"lastName" validate:"max=80"`
	Contact      string    `json:"contact" validate:"max=120"`
	PreferredKey string    `json:"preferredKey" validate:"max=10"`
}

// SaveMusicianRequest represents the request to create or update a musician
type SaveMusicianRequest struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name" validate:"required,min=1,max=120"`
	Contact      string    `json:"contact" validate:"max=120"`
	InstrumentID uuid.UUID `json:"instrumentId"`
}

// SaveInstrumentRequest represents the request to create or update an instrument
type SaveInstrumentRequest struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required,min=1,max=80"`
	Available bool      `json:"available"`
}

// ListSingers retrieves all singers in creation order.
func (s *RosterService) ListSingers() ([]models.Singer, error) {
	return s.store.Singers().GetAll(), nil
}

// SaveSinger creates or fully replaces a singer.
func (s *RosterService) SaveSinger(req *SaveSingerRequest) (*models.Singer, error) {
	if req.FirstName == "" {
		return nil, &apperrors.ValidationError{Field: "firstName", Message: "first name is required"}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	singer := &models.Singer{
		BaseModel:    models.BaseModel{ID: req.ID},
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Contact:      req.Contact,
		PreferredKey: req.PreferredKey,
	}
	stored, err := s.store.Singers().Upsert(singer)
	if err != nil {
		return nil, fmt.Errorf("failed to save singer: %w", err)
	}
	return stored, nil
}

// DeleteSinger removes a singer. Schedules referencing it keep their dangling
// id and render the removed placeholder from then on.
func (s *RosterService) DeleteSinger(id uuid.UUID) error {
	if _, ok := s.store.Singers().Find(id); !ok {
		return apperrors.ErrSingerNotFound
	}
	if err := s.store.Singers().Remove(id); err != nil {
		return fmt.Errorf("failed to delete singer: %w", err)
	}
	return nil
}

// ListMusicians retrieves all musicians in creation order.
func (s *RosterService) ListMusicians() ([]models.Musician, error) {
	return s.store.Musicians().GetAll(), nil
}

// SaveMusician creates or fully replaces a musician.
func (s *RosterService) SaveMusician(req *SaveMusicianRequest) (*models.Musician, error) {
	if req.Name == "" {
		return nil, &apperrors.ValidationError{Field: "name", Message: "name is required"}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	musician := &models.Musician{
		BaseModel:    models.BaseModel{ID: req.ID},
		Name:         req.Name,
		Contact:      req.Contact,
		InstrumentID: req.InstrumentID,
	}
	stored, err := s.store.Musicians().Upsert(musician)
	if err != nil {
		return nil, fmt.Errorf("failed to save musician: %w", err)
	}
	return stored, nil
}

// DeleteMusician removes a musician.
func (s *RosterService) DeleteMusician(id uuid.UUID) error {
	if _, ok := s.store.Musicians().Find(id); !ok {
		return apperrors.ErrMusicianNotFound
	}
	if err := s.store.Musicians().Remove(id); err != nil {
		return fmt.Errorf("failed to delete musician: %w", err)
	}
	return nil
}

// ListInstruments retrieves all instruments in creation order.
func (s *RosterService) ListInstruments() ([]models.Instrument, error) {
	return s.store.Instruments().GetAll(), nil
}

// SaveInstrument creates or fully replaces an instrument.
func (s *RosterService) SaveInstrument(req *SaveInstrumentRequest) (*models.Instrument, error) {
	if req.Name == "" {
		return nil, &apperrors.ValidationError{Field: "name", Message: "name is required"}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	instrument := &models.Instrument{
		BaseModel: models.BaseModel{ID: req.ID},
		Name:      req.Name,
		Available: req.Available,
	}
	stored, err := s.store.Instruments().Upsert(instrument)
	if err != nil {
		return nil, fmt.Errorf("failed to save instrument: %w", err)
	}
	return stored, nil
}

// DeleteInstrument removes an instrument.
func (s *RosterService) DeleteInstrument(id uuid.UUID) error {
	if _, ok := s.store.Instruments().Find(id); !ok {
		return apperrors.ErrInstrumentNotFound
	}
	if err := s.store.Instruments().Remove(id); err != nil {
		return fmt.Errorf("failed to delete instrument: %w", err)
	}
	return nil
}
