package service

import (
	"fmt"

	"worship-roster-backend/internal/database/models"
	apperrors "worship-roster-backend/internal/errors"
	"worship-roster-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ImpedimentService handles business logic for recorded unavailability.
type ImpedimentService struct {
	store     storage.Store
	validator *validator.Validate
}

// NewImpedimentService creates a new impediment service
func NewImpedimentService(store storage.Store, validator *validator.Validate) *ImpedimentService {
	return &ImpedimentService{store: store, validator: validator}
}

// SaveImpedimentRequest represents the request to create or update an impediment
type SaveImpedimentRequest struct {
	ID         uuid.UUID         `json:"id"`
	PersonID   uuid.UUID         `json:"personId"`
	PersonType models.PersonType `json:"personType"`
	Date       string            `json:"date" validate:"required,datetime=2006-01-02"`
	Reason     string            `json:"reason,omitempty" validate:"max=200"`
}

// List retrieves all impediments in creation order.
func (s *ImpedimentService) List() ([]models.Impediment, error) {
	return s.store.Impediments().GetAll(), nil
}

// Save creates or fully replaces an impediment.
func (s *ImpedimentService) Save(req *SaveImpedimentRequest) (*models.Impediment, error) {
	if req.PersonID == uuid.Nil {
		return nil, &apperrors.ValidationError{Field: "personId", Message: "a person must be selected"}
	}
	if !req.PersonType.IsValid() {
		return nil, &apperrors.ValidationError{Field: "personType", Message: "person type must be singer or musician"}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD form"}
	}

	impediment := &models.Impediment{
		BaseModel:  models.BaseModel{ID: req.ID},
		PersonID:   req.PersonID,
		PersonType: req.PersonType,
		Date:       req.Date,
		Reason:     req.Reason,
	}
	stored, err := s.store.Impediments().Upsert(impediment)
	if err != nil {
		return nil, fmt.Errorf("failed to save impediment: %w", err)
	}
	return stored, nil
}

// Delete removes an impediment.
func (s *ImpedimentService) Delete(id uuid.UUID) error {
	if _, ok := s.store.Impediments().Find(id); !ok {
		return apperrors.ErrImpedimentNotFound
	}
	if err := s.store.Impediments().Remove(id); err != nil {
		return fmt.Errorf("failed to delete impediment: %w", err)
	}
	return nil
}
