package storage

import (
	"time"

	"worship-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// seedDocument builds the bundled default dataset used when the file backend
// starts with no prior state: the usual instrument slots plus an initial
// admin login (password "admin", to be changed after first login).
func seedDocument() *document {
	now := time.Now().UTC()

	instruments := make([]models.Instrument, 0, len(defaultInstruments))
	for i, name := range defaultInstruments {
		instruments = append(instruments, models.Instrument{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
				UpdatedAt: now,
			},
			Name:      name,
			Available: true,
		})
	}

	doc := &document{
		Singers:     []models.Singer{},
		Musicians:   []models.Musician{},
		Instruments: instruments,
		Songs:       []models.Song{},
		Schedule:    []models.Schedule{},
		Impediments: []models.Impediment{},
		Users:       []models.User{},
	}

	if hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost); err == nil {
		doc.Users = append(doc.Users, models.User{
			BaseModel:    models.BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Username:     "admin",
			PasswordHash: string(hash),
		})
	}

	return doc
}

// SeedDefaults brings an empty store up to the bundled baseline: the default
// instrument slots and the initial admin login. Collections that already hold
// records are left alone, so calling this on every startup is safe.
func SeedDefaults(s Store) error {
	if len(s.Instruments().GetAll()) == 0 {
		for _, name := range defaultInstruments {
			if _, err := s.Instruments().Upsert(&models.Instrument{Name: name, Available: true}); err != nil {
				return err
			}
		}
	}

	if len(s.Users().GetAll()) == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := s.Users().Upsert(&models.User{Username: "admin", PasswordHash: string(hash)}); err != nil {
			return err
		}
	}

	return nil
}

var defaultInstruments = []string{
	"Violão",
	"Guitarra",
	"Baixo",
	"Bateria",
	"Teclado",
}
