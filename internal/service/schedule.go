package service

import (
	"fmt"
	"sort"

	"worship-roster-backend/internal/database/models"
	apperrors "worship-roster-backend/internal/errors"
	"worship-roster-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ScheduleService handles business logic for service schedules. A schedule is
// uniquely keyed by (date, leader): saving again for the same pair replaces
// the earlier row, while a different leader on the same date gets its own row.
type ScheduleService struct {
	store     storage.Store
	validator *validator.Validate
}

// NewScheduleService creates a new schedule service
func NewScheduleService(store storage.Store, validator *validator.Validate) *ScheduleService {
	return &ScheduleService{store: store, validator: validator}
}

// AddScheduleRequest represents the request to create or replace a schedule
type AddScheduleRequest struct {
	Date               string                  `json:"date" validate:"required,datetime=2006-01-02"`
	Singers            []uuid.UUID             `json:"singers"`
	MusiciansSelection map[uuid.UUID]uuid.UUID `json:"musiciansSelection"`
	LeaderID           uuid.UUID               `json:"leaderId"`
	SongsSelection     []models.SongSelection  `json:"songsSelection"`
}

// ScheduleResponse represents a stored schedule
type ScheduleResponse struct {
	ID                 uuid.UUID               `json:"id"`
	Date               string                  `json:"date"`
	Singers            []uuid.UUID             `json:"singers"`
	MusiciansSelection map[uuid.UUID]uuid.UUID `json:"musiciansSelection"`
	LeaderID           uuid.UUID               `json:"leaderId"`
	SongsSelection     []models.SongSelection  `json:"songsSelection"`
	CreatedAt          string                  `json:"created_at"`
	UpdatedAt          string                  `json:"updated_at"`
}

// ScheduleRow is a schedule resolved for display: every stored id replaced by
// its current label, dangling ids by the removed placeholder.
type ScheduleRow struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Leader    string    `json:"leader"`
	Singers   []string  `json:"singers"`
	Musicians []string  `json:"musicians"`
	Songs     []string  `json:"songs"`
}

// Add creates or replaces the schedule for (req.Date, req.LeaderID).
func (s *ScheduleService) Add(req *AddScheduleRequest) (*ScheduleResponse, error) {
	if req.LeaderID == uuid.Nil {
		return nil, &apperrors.ValidationError{Field: "leaderId", Message: "a leader must be selected"}
	}
	if len(req.SongsSelection) == 0 {
		return nil, &apperrors.ValidationError{Field: "songsSelection", Message: "at least one song must be selected"}
	}
	for i, sel := range req.SongsSelection {
		if sel.SongID == uuid.Nil {
			return nil, &apperrors.ValidationError{
				Field:   fmt.Sprintf("songsSelection[%d].songId", i),
				Message: "song id is required",
			}
		}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD form"}
	}

	// Reuse the id of an existing row for the same (date, leader) pair so the
	// upsert replaces it instead of adding a second schedule.
	id := uuid.Nil
	for _, existing := range s.store.Schedules().GetAll() {
		if existing.Date == req.Date && existing.LeaderID == req.LeaderID {
			id = existing.ID
			break
		}
	}

	selection := req.MusiciansSelection
	if selection == nil {
		selection = map[uuid.UUID]uuid.UUID{}
	}

	schedule := &models.Schedule{
		BaseModel:          models.BaseModel{ID: id},
		Date:               req.Date,
		LeaderID:           req.LeaderID,
		Singers:            datatypes.NewJSONSlice(dedupe(req.Singers)),
		MusiciansSelection: datatypes.NewJSONType(selection),
		SongsSelection:     datatypes.NewJSONSlice(req.SongsSelection),
	}

	stored, err := s.store.Schedules().Upsert(schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}

	return s.toResponse(stored), nil
}

// List retrieves schedules in creation order, optionally filtered to a date.
func (s *ScheduleService) List(date string) ([]ScheduleResponse, error) {
	schedules := s.store.Schedules().GetAll()

	responses := make([]ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		if date != "" && schedules[i].Date != date {
			continue
		}
		responses = append(responses, *s.toResponse(&schedules[i]))
	}
	return responses, nil
}

// ListResolved retrieves schedules with all references resolved for display.
func (s *ScheduleService) ListResolved(date string) ([]ScheduleRow, error) {
	schedules := s.store.Schedules().GetAll()

	singerLabels := SingerLabels(s.store.Singers().GetAll())
	musicianLabels := MusicianLabels(s.store.Musicians().GetAll())
	instrumentLabels := InstrumentLabels(s.store.Instruments().GetAll())
	songTitles := SongTitles(s.store.Songs().GetAll())

	rows := make([]ScheduleRow, 0, len(schedules))
	for i := range schedules {
		if date != "" && schedules[i].Date != date {
			continue
		}
		rows = append(rows, resolveSchedule(&schedules[i], singerLabels, musicianLabels, instrumentLabels, songTitles))
	}
	return rows, nil
}

// Delete removes a schedule by id.
func (s *ScheduleService) Delete(id uuid.UUID) error {
	if _, ok := s.store.Schedules().Find(id); !ok {
		return apperrors.ErrScheduleNotFound
	}
	if err := s.store.Schedules().Remove(id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

func (s *ScheduleService) toResponse(schedule *models.Schedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:                 schedule.ID,
		Date:               schedule.Date,
		Singers:            schedule.Singers,
		MusiciansSelection: schedule.MusiciansSelection.Data(),
		LeaderID:           schedule.LeaderID,
		SongsSelection:     schedule.SongsSelection,
		CreatedAt:          schedule.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:          schedule.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func resolveSchedule(
	schedule *models.Schedule,
	singerLabels, musicianLabels, instrumentLabels, songTitles map[uuid.UUID]string,
) ScheduleRow {
	row := ScheduleRow{
		ID:        schedule.ID,
		Date:      schedule.Date,
		Leader:    Resolve(singerLabels, schedule.LeaderID),
		Singers:   []string{},
		Musicians: []string{},
		Songs:     []string{},
	}
	for _, id := range schedule.Singers {
		row.Singers = append(row.Singers, Resolve(singerLabels, id))
	}
	for instrumentID, musicianID := range schedule.MusiciansSelection.Data() {
		row.Musicians = append(row.Musicians,
			Resolve(instrumentLabels, instrumentID)+": "+Resolve(musicianLabels, musicianID))
	}
	sort.Strings(row.Musicians)
	for _, sel := range schedule.SongsSelection {
		key := sel.Key
		if key == "" {
			key = "N/A"
		}
		row.Songs = append(row.Songs, Resolve(songTitles, sel.SongID)+" ("+key+")")
	}
	return row
}

// dedupe collapses duplicate singer ids while preserving first-seen order.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
