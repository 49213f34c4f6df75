package storage

import (
	"errors"

	"worship-roster-backend/internal/database/models"
	apperrors "worship-roster-backend/internal/errors"
	"worship-roster-backend/internal/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the record-oriented backend over a relational database.
// Creation order is server-authoritative via the created_at column.
type GormStore struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewGormStore creates a store over an initialized GORM connection.
func NewGormStore(db *gorm.DB, log *logger.Logger) *GormStore {
	if log == nil {
		log = logger.New()
	}
	return &GormStore{db: db, log: log}
}

func (s *GormStore) Singers() Records[models.Singer] {
	return gormRecords[models.Singer, *models.Singer]{db: s.db, log: s.log, name: "singers"}
}

func (s *GormStore) Musicians() Records[models.Musician] {
	return gormRecords[models.Musician, *models.Musician]{db: s.db, log: s.log, name: "musicians"}
}

func (s *GormStore) Instruments() Records[models.Instrument] {
	return gormRecords[models.Instrument, *models.Instrument]{db: s.db, log: s.log, name: "instruments"}
}

func (s *GormStore) Songs() Records[models.Song] {
	return gormRecords[models.Song, *models.Song]{db: s.db, log: s.log, name: "songs"}
}

func (s *GormStore) Schedules() Records[models.Schedule] {
	return gormRecords[models.Schedule, *models.Schedule]{db: s.db, log: s.log, name: "schedule"}
}

func (s *GormStore) Impediments() Records[models.Impediment] {
	return gormRecords[models.Impediment, *models.Impediment]{db: s.db, log: s.log, name: "impediments"}
}

func (s *GormStore) Users() Records[models.User] {
	return gormRecords[models.User, *models.User]{db: s.db, log: s.log, name: "users"}
}

// Ping reports whether the underlying database connection is usable.
func (s *GormStore) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

type gormRecords[T any, PT entityPtr[T]] struct {
	db   *gorm.DB
	log  *logger.Logger
	name string
}

func (r gormRecords[T, PT]) GetAll() []T {
	var out []T
	if err := r.db.Order("created_at ASC").Find(&out).Error; err != nil {
		r.log.WithField("collection", r.name).Errorf("list failed: %v", err)
		return []T{}
	}
	return out
}

func (r gormRecords[T, PT]) Find(id uuid.UUID) (*T, bool) {
	var rec T
	err := r.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false
	}
	if err != nil {
		r.log.WithField("collection", r.name).Errorf("find failed: %v", err)
		return nil, false
	}
	return &rec, true
}

func (r gormRecords[T, PT]) Upsert(rec *T) (*T, error) {
	pt := PT(rec)
	if pt.EntityID() == uuid.Nil {
		pt.SetEntityID(uuid.New())
	} else if existing, ok := r.Find(pt.EntityID()); ok {
		// Full overwrite must not move the record in creation order.
		pt.SetCreationTime(PT(existing).CreationTime())
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(rec).Error
	if err != nil {
		return nil, &apperrors.StorageFault{Op: "upsert", Collection: r.name, Err: err}
	}
	return rec, nil
}

func (r gormRecords[T, PT]) Remove(id uuid.UUID) error {
	if err := r.db.Delete(new(T), "id = ?", id).Error; err != nil {
		return &apperrors.StorageFault{Op: "remove", Collection: r.name, Err: err}
	}
	return nil
}
