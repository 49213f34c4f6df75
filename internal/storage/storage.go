// Package storage provides the entity-store contract the rest of the
// application is built on: generic ordered CRUD over named collections, with
// two interchangeable backends (Postgres records, local JSON document).
package storage

import (
	"worship-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mocks.go -package=mocks

// Records is the per-collection contract.
//
//   - GetAll returns records in creation order. Read faults never reach the
//     caller: they are logged and an empty slice is returned.
//   - Find returns absent (not an error) when no record matches.
//   - Upsert mints a fresh UUID when the record has none, then fully replaces
//     any existing record with that id. Write faults surface as StorageFault.
//   - Remove is a no-op when the id is absent.
type Records[T any] interface {
	GetAll() []T
	Find(id uuid.UUID) (*T, bool)
	Upsert(rec *T) (*T, error)
	Remove(id uuid.UUID) error
}

// Store exposes one Records handle per collection.
type Store interface {
	Singers() Records[models.Singer]
	Musicians() Records[models.Musician]
	Instruments() Records[models.Instrument]
	Songs() Records[models.Song]
	Schedules() Records[models.Schedule]
	Impediments() Records[models.Impediment]
	Users() Records[models.User]
	Ping() error
}

// entityPtr constrains a record pointer to the Entity accessors the store
// needs for id minting and stable creation timestamps.
type entityPtr[T any] interface {
	*T
	models.Entity
}
