package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"worship-roster-backend/internal/database/models"
	apperrors "worship-roster-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// FileStoreTestSuite exercises the JSON document backend.
type FileStoreTestSuite struct {
	suite.Suite
	path  string
	store *FileStore
}

func (s *FileStoreTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "roster.json")
	store, err := NewFileStore(s.path, nil)
	require.NoError(s.T(), err)
	s.store = store
}

func (s *FileStoreTestSuite) TestSeedsDefaultDataset() {
	instruments := s.store.Instruments().GetAll()
	require.Len(s.T(), instruments, 5)
	names := make([]string, 0, len(instruments))
	for _, instrument := range instruments {
		names = append(names, instrument.Name)
		assert.True(s.T(), instrument.Available)
	}
	assert.Equal(s.T(), []string{"Violão", "Guitarra", "Baixo", "Bateria", "Teclado"}, names)

	users := s.store.Users().GetAll()
	require.Len(s.T(), users, 1)
	assert.Equal(s.T(), "admin", users[0].Username)
	assert.NoError(s.T(), bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("admin")))

	assert.Empty(s.T(), s.store.Singers().GetAll())
	assert.Empty(s.T(), s.store.Schedules().GetAll())
}

func (s *FileStoreTestSuite) TestDoesNotReseedExistingFile() {
	require.NoError(s.T(), s.store.Instruments().Remove(s.store.Instruments().GetAll()[0].ID))

	reopened, err := NewFileStore(s.path, nil)
	require.NoError(s.T(), err)
	assert.Len(s.T(), reopened.Instruments().GetAll(), 4)
}

func (s *FileStoreTestSuite) TestUpsertMintsIDAndTimestamps() {
	stored, err := s.store.Singers().Upsert(&models.Singer{FirstName: "Ana"})
	require.NoError(s.T(), err)

	assert.NotEqual(s.T(), uuid.Nil, stored.ID)
	assert.False(s.T(), stored.CreatedAt.IsZero())
	assert.False(s.T(), stored.UpdatedAt.IsZero())
}

func (s *FileStoreTestSuite) TestUpsertReplacesInPlace() {
	first, err := s.store.Singers().Upsert(&models.Singer{FirstName: "Ana"})
	require.NoError(s.T(), err)
	_, err = s.store.Singers().Upsert(&models.Singer{FirstName: "Bia"})
	require.NoError(s.T(), err)

	time.Sleep(5 * time.Millisecond)
	updated, err := s.store.Singers().Upsert(&models.Singer{
		BaseModel: models.BaseModel{ID: first.ID},
		FirstName: "Ana Clara",
	})
	require.NoError(s.T(), err)

	// The record keeps its slot in creation order and its creation time.
	all := s.store.Singers().GetAll()
	require.Len(s.T(), all, 2)
	assert.Equal(s.T(), first.ID, all[0].ID)
	assert.Equal(s.T(), "Ana Clara", all[0].FirstName)
	assert.Equal(s.T(), "Bia", all[1].FirstName)
	assert.Equal(s.T(), first.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.True(s.T(), updated.UpdatedAt.After(first.UpdatedAt))
}

func (s *FileStoreTestSuite) TestUpsertIsFullOverwrite() {
	stored, err := s.store.Singers().Upsert(&models.Singer{
		FirstName: "Ana", LastName: "Souza", Contact: "ana@example.com",
	})
	require.NoError(s.T(), err)

	// Saving without the optional fields clears them.
	_, err = s.store.Singers().Upsert(&models.Singer{
		BaseModel: models.BaseModel{ID: stored.ID},
		FirstName: "Ana",
	})
	require.NoError(s.T(), err)

	found, ok := s.store.Singers().Find(stored.ID)
	require.True(s.T(), ok)
	assert.Empty(s.T(), found.LastName)
	assert.Empty(s.T(), found.Contact)
}

func (s *FileStoreTestSuite) TestFindAbsent() {
	_, ok := s.store.Singers().Find(uuid.New())
	assert.False(s.T(), ok)
}

func (s *FileStoreTestSuite) TestRemoveIsIdempotent() {
	stored, err := s.store.Singers().Upsert(&models.Singer{FirstName: "Ana"})
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.store.Singers().Remove(stored.ID))
	_, ok := s.store.Singers().Find(stored.ID)
	assert.False(s.T(), ok)

	// Deleting the same id again is a no-op, not an error.
	assert.NoError(s.T(), s.store.Singers().Remove(stored.ID))
	assert.NoError(s.T(), s.store.Singers().Remove(uuid.New()))
}

func (s *FileStoreTestSuite) TestScheduleRoundTrip() {
	leaderID := uuid.New()
	instrumentID := uuid.New()
	musicianID := uuid.New()
	songID := uuid.New()

	stored, err := s.store.Schedules().Upsert(&models.Schedule{
		Date:               "2026-09-06",
		LeaderID:           leaderID,
		Singers:            datatypes.NewJSONSlice([]uuid.UUID{leaderID}),
		MusiciansSelection: datatypes.NewJSONType(map[uuid.UUID]uuid.UUID{instrumentID: musicianID}),
		SongsSelection:     datatypes.NewJSONSlice([]models.SongSelection{{SongID: songID, Key: "G"}}),
	})
	require.NoError(s.T(), err)

	found, ok := s.store.Schedules().Find(stored.ID)
	require.True(s.T(), ok)
	assert.Equal(s.T(), "2026-09-06", found.Date)
	assert.Equal(s.T(), leaderID, found.LeaderID)
	assert.Equal(s.T(), musicianID, found.MusiciansSelection.Data()[instrumentID])
	require.Len(s.T(), found.SongsSelection, 1)
	assert.Equal(s.T(), songID, found.SongsSelection[0].SongID)
}

func (s *FileStoreTestSuite) TestPersistsAcrossReopen() {
	stored, err := s.store.Songs().Upsert(&models.Song{Title: "Oceans", OriginalKey: "D"})
	require.NoError(s.T(), err)

	reopened, err := NewFileStore(s.path, nil)
	require.NoError(s.T(), err)

	found, ok := reopened.Songs().Find(stored.ID)
	require.True(s.T(), ok)
	assert.Equal(s.T(), "Oceans", found.Title)
}

func (s *FileStoreTestSuite) TestUpsertAgainstUnreadableFileIsStorageFault() {
	require.NoError(s.T(), os.WriteFile(s.path, []byte("{not json"), 0o644))

	_, err := s.store.Singers().Upsert(&models.Singer{FirstName: "Ana"})
	assert.True(s.T(), apperrors.IsStorageFault(err))

	// Reads degrade to empty rather than failing.
	assert.Empty(s.T(), s.store.Singers().GetAll())
}

func (s *FileStoreTestSuite) TestPing() {
	assert.NoError(s.T(), s.store.Ping())

	require.NoError(s.T(), os.Remove(s.path))
	assert.Error(s.T(), s.store.Ping())
}

func TestFileStoreTestSuite(t *testing.T) {
	suite.Run(t, new(FileStoreTestSuite))
}
