//go:build integration

package storage

import (
	"testing"

	"worship-roster-backend/internal/database/models"
	"worship-roster-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// TestGormStoreAgainstPostgres runs the storage contract against a real
// Postgres container. The SQLite suite covers the same paths on every run;
// this one exists to catch dialect differences in the upsert clause and the
// JSON columns.
func TestGormStoreAgainstPostgres(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	base.CleanTestDB()
	defer base.CleanTestDB()

	store := NewGormStore(base.DB, nil)

	// Insert, replace, creation order.
	first, err := store.Singers().Upsert(&models.Singer{FirstName: "Ana"})
	require.NoError(t, err)
	second, err := store.Singers().Upsert(&models.Singer{FirstName: "Bia"})
	require.NoError(t, err)

	updated, err := store.Singers().Upsert(&models.Singer{
		BaseModel: models.BaseModel{ID: first.ID},
		FirstName: "Ana Clara",
	})
	require.NoError(t, err)
	assert.Equal(t, first.CreatedAt.Unix(), updated.CreatedAt.Unix())

	all := store.Singers().GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "Ana Clara", all[0].FirstName)
	assert.Equal(t, second.ID, all[1].ID)

	// JSON columns survive the Postgres round trip.
	instrumentID := uuid.New()
	musicianID := uuid.New()
	draft := testutils.NewScheduleFactory().WithDateAndLeader("2026-09-06", first.ID)
	draft.Singers = datatypes.NewJSONSlice([]uuid.UUID{first.ID})
	draft.MusiciansSelection = datatypes.NewJSONType(map[uuid.UUID]uuid.UUID{instrumentID: musicianID})
	schedule, err := store.Schedules().Upsert(draft)
	require.NoError(t, err)

	found, ok := store.Schedules().Find(schedule.ID)
	require.True(t, ok)
	assert.Equal(t, musicianID, found.MusiciansSelection.Data()[instrumentID])

	// Remove is idempotent.
	require.NoError(t, store.Singers().Remove(second.ID))
	require.NoError(t, store.Singers().Remove(second.ID))
	_, ok = store.Singers().Find(second.ID)
	assert.False(t, ok)

	require.NoError(t, store.Ping())
}
