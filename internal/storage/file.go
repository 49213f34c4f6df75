package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"worship-roster-backend/internal/database/models"
	apperrors "worship-roster-backend/internal/errors"
	"worship-roster-backend/internal/logger"

	"github.com/google/uuid"
)

// document is the single serialized blob holding every collection. The file
// backend reads and rewrites the whole document on each call.
type document struct {
	Singers     []models.Singer     `json:"singers"`
	Musicians   []models.Musician   `json:"musicians"`
	Instruments []models.Instrument `json:"instruments"`
	Songs       []models.Song       `json:"songs"`
	Schedule    []models.Schedule   `json:"schedule"`
	Impediments []models.Impediment `json:"impediments"`
	Users       []models.User       `json:"users"`
}

// FileStore is the local durable backend: one JSON document on disk,
// read-modify-write under a process-local mutex, atomic replace on save.
// Slice position is creation order; updates replace in place.
type FileStore struct {
	path string
	mu   sync.Mutex
	log  *logger.Logger
}

// NewFileStore opens (or creates) the data file at path. When no prior state
// exists the store is seeded once from the bundled default dataset.
func NewFileStore(path string, log *logger.Logger) (*FileStore, error) {
	if log == nil {
		log = logger.New()
	}
	s := &FileStore{path: path, log: log}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		s.log.WithField("path", path).Info("no prior state, seeding default dataset")
		if err := s.save(seedDocument()); err != nil {
			return nil, fmt.Errorf("seed data file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat data file: %w", err)
	}
	return s, nil
}

func (s *FileStore) Singers() Records[models.Singer] {
	return fileRecords[models.Singer, *models.Singer]{
		store: s, name: "singers",
		slice: func(d *document) *[]models.Singer { return &d.Singers },
	}
}

func (s *FileStore) Musicians() Records[models.Musician] {
	return fileRecords[models.Musician, *models.Musician]{
		store: s, name: "musicians",
		slice: func(d *document) *[]models.Musician { return &d.Musicians },
	}
}

func (s *FileStore) Instruments() Records[models.Instrument] {
	return fileRecords[models.Instrument, *models.Instrument]{
		store: s, name: "instruments",
		slice: func(d *document) *[]models.Instrument { return &d.Instruments },
	}
}

func (s *FileStore) Songs() Records[models.Song] {
	return fileRecords[models.Song, *models.Song]{
		store: s, name: "songs",
		slice: func(d *document) *[]models.Song { return &d.Songs },
	}
}

func (s *FileStore) Schedules() Records[models.Schedule] {
	return fileRecords[models.Schedule, *models.Schedule]{
		store: s, name: "schedule",
		slice: func(d *document) *[]models.Schedule { return &d.Schedule },
	}
}

func (s *FileStore) Impediments() Records[models.Impediment] {
	return fileRecords[models.Impediment, *models.Impediment]{
		store: s, name: "impediments",
		slice: func(d *document) *[]models.Impediment { return &d.Impediments },
	}
}

func (s *FileStore) Users() Records[models.User] {
	return fileRecords[models.User, *models.User]{
		store: s, name: "users",
		slice: func(d *document) *[]models.User { return &d.Users },
	}
}

// Ping reports whether the data file is reachable.
func (s *FileStore) Ping() error {
	_, err := os.Stat(s.path)
	return err
}

func (s *FileStore) load() (*document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *FileStore) save(doc *document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

type fileRecords[T any, PT entityPtr[T]] struct {
	store *FileStore
	name  string
	slice func(*document) *[]T
}

func (r fileRecords[T, PT]) GetAll() []T {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.store.load()
	if err != nil {
		r.store.log.WithField("collection", r.name).Errorf("list failed: %v", err)
		return []T{}
	}
	src := *r.slice(doc)
	out := make([]T, len(src))
	copy(out, src)
	return out
}

func (r fileRecords[T, PT]) Find(id uuid.UUID) (*T, bool) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.store.load()
	if err != nil {
		r.store.log.WithField("collection", r.name).Errorf("find failed: %v", err)
		return nil, false
	}
	for i := range *r.slice(doc) {
		rec := &(*r.slice(doc))[i]
		if PT(rec).EntityID() == id {
			return rec, true
		}
	}
	return nil, false
}

func (r fileRecords[T, PT]) Upsert(rec *T) (*T, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.store.load()
	if err != nil {
		return nil, &apperrors.StorageFault{Op: "upsert", Collection: r.name, Err: err}
	}

	now := time.Now().UTC()
	pt := PT(rec)
	if pt.EntityID() == uuid.Nil {
		pt.SetEntityID(uuid.New())
	}
	pt.Touch(now)

	list := r.slice(doc)
	replaced := false
	for i := range *list {
		existing := PT(&(*list)[i])
		if existing.EntityID() == pt.EntityID() {
			// Full overwrite, but the record keeps its place in creation order.
			pt.SetCreationTime(existing.CreationTime())
			(*list)[i] = *rec
			replaced = true
			break
		}
	}
	if !replaced {
		if pt.CreationTime().IsZero() {
			pt.SetCreationTime(now)
		}
		*list = append(*list, *rec)
	}

	if err := r.store.save(doc); err != nil {
		return nil, &apperrors.StorageFault{Op: "upsert", Collection: r.name, Err: err}
	}
	return rec, nil
}

func (r fileRecords[T, PT]) Remove(id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.store.load()
	if err != nil {
		return &apperrors.StorageFault{Op: "remove", Collection: r.name, Err: err}
	}

	list := r.slice(doc)
	kept := (*list)[:0:0]
	removed := false
	for _, rec := range *list {
		rec := rec
		if PT(&rec).EntityID() == id {
			removed = true
			continue
		}
		kept = append(kept, rec)
	}
	if !removed {
		// Deleting a nonexistent id is a no-op, not an error.
		return nil
	}
	*list = kept

	if err := r.store.save(doc); err != nil {
		return &apperrors.StorageFault{Op: "remove", Collection: r.name, Err: err}
	}
	return nil
}
