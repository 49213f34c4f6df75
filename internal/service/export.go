package service

import (
	"sort"
	"strings"
	"time"

	apperrors "worship-roster-backend/internal/errors"
	"worship-roster-backend/internal/storage"

	"github.com/google/uuid"
)

// ExportService assembles display-ready documents for the PDF layer: every
// foreign id already resolved to a name, dates as calendar strings. Layout
// and pagination belong to the consumer, not here.
type ExportService struct {
	store storage.Store
}

// NewExportService creates a new export service
func NewExportService(store storage.Store) *ExportService {
	return &ExportService{store: store}
}

// SongSheet is the lyric-sheet document: a lyrics page plus a performance
// history page.
type SongSheet struct {
	Title        string           `json:"title"`
	OriginalKey  string           `json:"originalKey"`
	Lyrics       string           `json:"lyrics"`
	Performances []PerformanceRow `json:"performances"`
}

// PerformanceRow is one resolved entry of a song's history.
type PerformanceRow struct {
	Name string `json:"name"`
	Key  string `json:"key,omitempty"`
	Date string `json:"date,omitempty"`
}

// MonthlySchedule is the tabular month document.
type MonthlySchedule struct {
	Month       string        `json:"month"`
	GeneratedAt string        `json:"generatedAt"`
	Rows        []ScheduleRow `json:"rows"`
}

// SongSheet builds the lyric sheet for one song.
func (s *ExportService) SongSheet(songID uuid.UUID) (*SongSheet, error) {
	song, ok := s.store.Songs().Find(songID)
	if !ok {
		return nil, apperrors.ErrSongNotFound
	}

	singerLabels := SingerLabels(s.store.Singers().GetAll())

	sheet := &SongSheet{
		Title:        song.Title,
		OriginalKey:  song.OriginalKey,
		Lyrics:       song.Lyrics,
		Performances: []PerformanceRow{},
	}
	for _, p := range song.Performances {
		name, known := singerLabels[p.SingerID]
		if !known {
			name = UnknownSingerLabel
		}
		sheet.Performances = append(sheet.Performances, PerformanceRow{
			Name: name,
			Key:  p.Key,
			Date: p.Date,
		})
	}
	return sheet, nil
}

// MonthlySchedule builds the schedule table for one month ("YYYY-MM"),
// sorted by date. GeneratedAt carries the pt-BR print date.
func (s *ExportService) MonthlySchedule(month string) (*MonthlySchedule, error) {
	if len(month) != 7 || month[4] != '-' {
		return nil, &apperrors.ValidationError{Field: "month", Message: "month must be in YYYY-MM form"}
	}

	schedules := s.store.Schedules().GetAll()
	singerLabels := SingerLabels(s.store.Singers().GetAll())
	musicianLabels := MusicianLabels(s.store.Musicians().GetAll())
	instrumentLabels := InstrumentLabels(s.store.Instruments().GetAll())
	songTitles := SongTitles(s.store.Songs().GetAll())

	doc := &MonthlySchedule{
		Month:       month,
		GeneratedAt: time.Now().Format("02/01/2006"),
		Rows:        []ScheduleRow{},
	}
	for i := range schedules {
		if !strings.HasPrefix(schedules[i].Date, month) {
			continue
		}
		doc.Rows = append(doc.Rows, resolveSchedule(&schedules[i], singerLabels, musicianLabels, instrumentLabels, songTitles))
	}
	sort.SliceStable(doc.Rows, func(i, j int) bool { return doc.Rows[i].Date < doc.Rows[j].Date })

	return doc, nil
}
