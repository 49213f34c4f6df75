package service

import (
	"testing"

	"worship-roster-backend/internal/database/models"
	apperrors "worship-roster-backend/internal/errors"
	"worship-roster-backend/internal/storage"
	"worship-roster-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ScheduleServiceTestSuite runs the schedule rules against a real store so
// the save-then-resolve cycle is exercised end to end.
type ScheduleServiceTestSuite struct {
	suite.Suite
	store   storage.Store
	service *ScheduleService
	roster  *RosterService
	songs   *SongService
}

func (s *ScheduleServiceTestSuite) SetupTest() {
	v := validator.New()
	s.store = storage.NewGormStore(testutils.OpenSQLiteDB(s.T()), nil)
	s.service = NewScheduleService(s.store, v)
	s.roster = NewRosterService(s.store, v)
	s.songs = NewSongService(s.store, v)
}

func (s *ScheduleServiceTestSuite) validRequest() *AddScheduleRequest {
	return &AddScheduleRequest{
		Date:           "2026-09-06",
		LeaderID:       uuid.New(),
		SongsSelection: []models.SongSelection{{SongID: uuid.New(), Key: "G"}},
	}
}

func (s *ScheduleServiceTestSuite) TestAddRequiresLeader() {
	req := s.validRequest()
	req.LeaderID = uuid.Nil

	_, err := s.service.Add(req)
	require.True(s.T(), apperrors.IsValidation(err))
	assert.Contains(s.T(), err.Error(), "leaderId")
}

func (s *ScheduleServiceTestSuite) TestAddRequiresSongs() {
	req := s.validRequest()
	req.SongsSelection = nil

	_, err := s.service.Add(req)
	require.True(s.T(), apperrors.IsValidation(err))
	assert.Contains(s.T(), err.Error(), "songsSelection")
}

func (s *ScheduleServiceTestSuite) TestAddRejectsEmptySongEntry() {
	req := s.validRequest()
	req.SongsSelection = append(req.SongsSelection, models.SongSelection{Key: "C"})

	_, err := s.service.Add(req)
	require.True(s.T(), apperrors.IsValidation(err))
	assert.Contains(s.T(), err.Error(), "songsSelection[1].songId")
}

func (s *ScheduleServiceTestSuite) TestAddRejectsMalformedDate() {
	req := s.validRequest()
	req.Date = "06/09/2026"

	_, err := s.service.Add(req)
	require.True(s.T(), apperrors.IsValidation(err))
	assert.Contains(s.T(), err.Error(), "date")
}

func (s *ScheduleServiceTestSuite) TestAddCreatesSchedule() {
	resp, err := s.service.Add(s.validRequest())
	require.NoError(s.T(), err)

	assert.NotEqual(s.T(), uuid.Nil, resp.ID)
	assert.Equal(s.T(), "2026-09-06", resp.Date)

	list, err := s.service.List("")
	require.NoError(s.T(), err)
	assert.Len(s.T(), list, 1)
}

func (s *ScheduleServiceTestSuite) TestAddReplacesSameDateAndLeader() {
	req := s.validRequest()
	first, err := s.service.Add(req)
	require.NoError(s.T(), err)

	replacement := s.validRequest()
	replacement.LeaderID = req.LeaderID
	replacement.Singers = []uuid.UUID{uuid.New()}
	second, err := s.service.Add(replacement)
	require.NoError(s.T(), err)

	// Same pair, same row: the earlier content is fully replaced.
	assert.Equal(s.T(), first.ID, second.ID)
	assert.Len(s.T(), second.Singers, 1)

	list, err := s.service.List("")
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 1)
	assert.Equal(s.T(), replacement.SongsSelection[0].SongID, list[0].SongsSelection[0].SongID)
}

func (s *ScheduleServiceTestSuite) TestSameDateDifferentLeadersCoexist() {
	first := s.validRequest()
	second := s.validRequest()

	_, err := s.service.Add(first)
	require.NoError(s.T(), err)
	_, err = s.service.Add(second)
	require.NoError(s.T(), err)

	list, err := s.service.List("2026-09-06")
	require.NoError(s.T(), err)
	assert.Len(s.T(), list, 2)
}

func (s *ScheduleServiceTestSuite) TestAddDeduplicatesSingers() {
	singerID := uuid.New()
	other := uuid.New()
	req := s.validRequest()
	req.Singers = []uuid.UUID{singerID, other, singerID}

	resp, err := s.service.Add(req)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), []uuid.UUID{singerID, other}, resp.Singers)
}

func (s *ScheduleServiceTestSuite) TestListFiltersByDate() {
	first := s.validRequest()
	second := s.validRequest()
	second.Date = "2026-09-13"

	_, err := s.service.Add(first)
	require.NoError(s.T(), err)
	_, err = s.service.Add(second)
	require.NoError(s.T(), err)

	list, err := s.service.List("2026-09-13")
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 1)
	assert.Equal(s.T(), "2026-09-13", list[0].Date)
}

func (s *ScheduleServiceTestSuite) TestListResolvedRendersLabels() {
	leader, err := s.roster.SaveSinger(&SaveSingerRequest{FirstName: "Ana", LastName: "Souza"})
	require.NoError(s.T(), err)
	guitar, err := s.roster.SaveInstrument(&SaveInstrumentRequest{Name: "Guitarra", Available: true})
	require.NoError(s.T(), err)
	musician, err := s.roster.SaveMusician(&SaveMusicianRequest{Name: "João", InstrumentID: guitar.ID})
	require.NoError(s.T(), err)
	song, err := s.songs.Save(&SaveSongRequest{Title: "Oceans", OriginalKey: "D"})
	require.NoError(s.T(), err)

	_, err = s.service.Add(&AddScheduleRequest{
		Date:               "2026-09-06",
		LeaderID:           leader.ID,
		Singers:            []uuid.UUID{leader.ID},
		MusiciansSelection: map[uuid.UUID]uuid.UUID{guitar.ID: musician.ID},
		SongsSelection:     []models.SongSelection{{SongID: song.ID, Key: "G"}},
	})
	require.NoError(s.T(), err)

	rows, err := s.service.ListResolved("")
	require.NoError(s.T(), err)
	require.Len(s.T(), rows, 1)

	assert.Equal(s.T(), "Ana Souza", rows[0].Leader)
	assert.Equal(s.T(), []string{"Ana Souza"}, rows[0].Singers)
	assert.Equal(s.T(), []string{"Guitarra: João"}, rows[0].Musicians)
	assert.Equal(s.T(), []string{"Oceans (G)"}, rows[0].Songs)
}

func (s *ScheduleServiceTestSuite) TestListResolvedRendersRemovedForDanglingRefs() {
	leader, err := s.roster.SaveSinger(&SaveSingerRequest{FirstName: "Ana"})
	require.NoError(s.T(), err)
	song, err := s.songs.Save(&SaveSongRequest{Title: "Oceans", OriginalKey: "D"})
	require.NoError(s.T(), err)

	_, err = s.service.Add(&AddScheduleRequest{
		Date:           "2026-09-06",
		LeaderID:       leader.ID,
		Singers:        []uuid.UUID{leader.ID},
		SongsSelection: []models.SongSelection{{SongID: song.ID}},
	})
	require.NoError(s.T(), err)

	// Deleting the leader leaves the schedule intact with a dangling id.
	require.NoError(s.T(), s.roster.DeleteSinger(leader.ID))
	require.NoError(s.T(), s.songs.Delete(song.ID))

	rows, err := s.service.ListResolved("")
	require.NoError(s.T(), err)
	require.Len(s.T(), rows, 1)

	assert.Equal(s.T(), RemovedLabel, rows[0].Leader)
	assert.Equal(s.T(), []string{RemovedLabel}, rows[0].Singers)
	// A song entry without a chosen key renders N/A.
	assert.Equal(s.T(), []string{RemovedLabel + " (N/A)"}, rows[0].Songs)
}

func (s *ScheduleServiceTestSuite) TestDelete() {
	resp, err := s.service.Add(s.validRequest())
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.service.Delete(resp.ID))

	err = s.service.Delete(resp.ID)
	assert.ErrorIs(s.T(), err, apperrors.ErrScheduleNotFound)
}

func TestScheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}
