package testutils

import (
	"time"

	"worship-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// SingerFactory provides methods to create test Singer data
type SingerFactory struct{}

// NewSingerFactory creates a new SingerFactory
func NewSingerFactory() *SingerFactory {
	return &SingerFactory{}
}

// Create creates a test Singer with default values
func (f *SingerFactory) Create() *models.Singer {
	return &models.Singer{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:    "Maria",
		LastName:     "Silva",
		Contact:      "maria@example.com",
		PreferredKey: "G",
	}
}

// WithName sets a custom name for the singer
func (f *SingerFactory) WithName(first, last string) *models.Singer {
	singer := f.Create()
	singer.FirstName = first
	singer.LastName = last
	return singer
}

// MusicianFactory provides methods to create test Musician data
type MusicianFactory struct{}

// NewMusicianFactory creates a new MusicianFactory
func NewMusicianFactory() *MusicianFactory {
	return &MusicianFactory{}
}

// Create creates a test Musician with default values
func (f *MusicianFactory) Create() *models.Musician {
	return &models.Musician{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "João Pereira",
		Contact:      "joao@example.com",
		InstrumentID: uuid.New(),
	}
}

// WithInstrument sets the instrument id for the musician
func (f *MusicianFactory) WithInstrument(instrumentID uuid.UUID) *models.Musician {
	musician := f.Create()
	musician.InstrumentID = instrumentID
	return musician
}

// InstrumentFactory provides methods to create test Instrument data
type InstrumentFactory struct{}

// NewInstrumentFactory creates a new InstrumentFactory
func NewInstrumentFactory() *InstrumentFactory {
	return &InstrumentFactory{}
}

// Create creates a test Instrument with default values
func (f *InstrumentFactory) Create() *models.Instrument {
	return &models.Instrument{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "Violão",
		Available: true,
	}
}

// WithName sets a custom name for the instrument
func (f *InstrumentFactory) WithName(name string) *models.Instrument {
	instrument := f.Create()
	instrument.Name = name
	return instrument
}

// SongFactory provides methods to create test Song data
type SongFactory struct{}

// NewSongFactory creates a new SongFactory
func NewSongFactory() *SongFactory {
	return &SongFactory{}
}

// Create creates a test Song with default values and no performance history
func (f *SongFactory) Create() *models.Song {
	return &models.Song{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:        "Grande É o Senhor",
		OriginalKey:  "D",
		Lyrics:       "Grande é o Senhor e mui digno de louvor",
		Performances: datatypes.NewJSONSlice([]models.Performance{}),
	}
}

// WithPerformance appends a performance entry to the song
func (f *SongFactory) WithPerformance(singerID uuid.UUID, key, date string) *models.Song {
	song := f.Create()
	song.Performances = append(song.Performances, models.Performance{
		SingerID: singerID,
		Key:      key,
		Date:     date,
	})
	return song
}

// ScheduleFactory provides methods to create test Schedule data
type ScheduleFactory struct{}

// NewScheduleFactory creates a new ScheduleFactory
func NewScheduleFactory() *ScheduleFactory {
	return &ScheduleFactory{}
}

// Create creates a test Schedule with default values
func (f *ScheduleFactory) Create() *models.Schedule {
	return &models.Schedule{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Date:               "2026-09-06",
		LeaderID:           uuid.New(),
		Singers:            datatypes.NewJSONSlice([]uuid.UUID{}),
		MusiciansSelection: datatypes.NewJSONType(map[uuid.UUID]uuid.UUID{}),
		SongsSelection: datatypes.NewJSONSlice([]models.SongSelection{
			{SongID: uuid.New(), Key: "G"},
		}),
	}
}

// WithDateAndLeader sets the identifying pair for the schedule
func (f *ScheduleFactory) WithDateAndLeader(date string, leaderID uuid.UUID) *models.Schedule {
	schedule := f.Create()
	schedule.Date = date
	schedule.LeaderID = leaderID
	return schedule
}

// ImpedimentFactory provides methods to create test Impediment data
type ImpedimentFactory struct{}

// NewImpedimentFactory creates a new ImpedimentFactory
func NewImpedimentFactory() *ImpedimentFactory {
	return &ImpedimentFactory{}
}

// Create creates a test Impediment with default values
func (f *ImpedimentFactory) Create() *models.Impediment {
	return &models.Impediment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PersonID:   uuid.New(),
		PersonType: models.PersonTypeSinger,
		Date:       "2026-09-06",
		Reason:     "Viagem",
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User whose password is "secret"
func (f *UserFactory) Create() *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "tester",
		PasswordHash: string(hash),
	}
}

// WithUsername sets a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}
