package handlers

import (
	"net/http"
	"testing"

	"worship-roster-backend/internal/database/models"
	apperrors "worship-roster-backend/internal/errors"
	"worship-roster-backend/internal/mocks"
	"worship-roster-backend/internal/service"
	"worship-roster-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SongHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSongServiceInterface
	handler     *SongHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (s *SongHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockSongServiceInterface(s.ctrl)
	s.handler = NewSongHandler(s.mockService)
	s.httpSuite = testutils.SetupHTTPTest()

	s.httpSuite.Router.GET("/songs", s.handler.ListSongs)
	s.httpSuite.Router.GET("/songs/:id", s.handler.GetSong)
	s.httpSuite.Router.POST("/songs", s.handler.SaveSong)
	s.httpSuite.Router.DELETE("/songs/:id", s.handler.DeleteSong)
	s.httpSuite.Router.POST("/songs/:id/performances", s.handler.AddPerformance)
}

func (s *SongHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SongHandlerTestSuite) TestListSongs() {
	expected := []service.SongResponse{{ID: uuid.New(), Title: "Oceans"}}
	s.mockService.EXPECT().List().Return(expected, nil)

	recorder := s.httpSuite.MakeRequest("GET", "/songs", nil)

	var got []service.SongResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &got)
	require.Len(s.T(), got, 1)
	assert.Equal(s.T(), "Oceans", got[0].Title)
}

func (s *SongHandlerTestSuite) TestGetSong() {
	id := uuid.New()
	s.mockService.EXPECT().Get(id).Return(&service.SongResponse{ID: id, Title: "Oceans"}, nil)

	recorder := s.httpSuite.MakeRequest("GET", "/songs/"+id.String(), nil)

	var got service.SongResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &got)
	assert.Equal(s.T(), id, got.ID)
}

func (s *SongHandlerTestSuite) TestGetSongNotFound() {
	id := uuid.New()
	s.mockService.EXPECT().Get(id).Return(nil, apperrors.ErrSongNotFound)

	recorder := s.httpSuite.MakeRequest("GET", "/songs/"+id.String(), nil)

	testutils.AssertErrorResponse(s.T(), recorder, http.StatusNotFound, "song not found")
}

func (s *SongHandlerTestSuite) TestGetSongInvalidID() {
	recorder := s.httpSuite.MakeRequest("GET", "/songs/42", nil)

	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "Invalid id")
}

func (s *SongHandlerTestSuite) TestSaveSong() {
	response := &service.SongResponse{ID: uuid.New(), Title: "Oceans", OriginalKey: "D"}
	s.mockService.EXPECT().Save(gomock.Any()).Return(response, nil)

	recorder := s.httpSuite.MakeRequest("POST", "/songs", map[string]interface{}{
		"title":       "Oceans",
		"originalKey": "D",
	})

	var got service.SongResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &got)
	assert.Equal(s.T(), response.ID, got.ID)
}

func (s *SongHandlerTestSuite) TestSaveSongInvalidBody() {
	recorder := s.httpSuite.MakeRequest("POST", "/songs", []string{"not", "a", "song"})

	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

func (s *SongHandlerTestSuite) TestSaveSongValidationError() {
	s.mockService.EXPECT().Save(gomock.Any()).Return(nil,
		&apperrors.ValidationError{Field: "title", Message: "title is required"})

	recorder := s.httpSuite.MakeRequest("POST", "/songs", map[string]interface{}{"originalKey": "D"})

	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "title")
}

func (s *SongHandlerTestSuite) TestDeleteSong() {
	id := uuid.New()
	s.mockService.EXPECT().Delete(id).Return(nil)

	recorder := s.httpSuite.MakeRequest("DELETE", "/songs/"+id.String(), nil)

	assert.Equal(s.T(), http.StatusNoContent, recorder.Code)
}

func (s *SongHandlerTestSuite) TestDeleteSongNotFound() {
	id := uuid.New()
	s.mockService.EXPECT().Delete(id).Return(apperrors.ErrSongNotFound)

	recorder := s.httpSuite.MakeRequest("DELETE", "/songs/"+id.String(), nil)

	testutils.AssertErrorResponse(s.T(), recorder, http.StatusNotFound, "song not found")
}

func (s *SongHandlerTestSuite) TestAddPerformanceUsesPathID() {
	songID := uuid.New()
	singerID := uuid.New()

	s.mockService.EXPECT().
		AddPerformance(gomock.Any()).
		DoAndReturn(func(req *service.AddPerformanceRequest) (*service.SongResponse, error) {
			// The path id wins over whatever the body carries.
			assert.Equal(s.T(), songID, req.SongID)
			return &service.SongResponse{
				ID: songID,
				Performances: []models.Performance{
					{SingerID: singerID, Key: "C", Date: "2026-08-30"},
				},
			}, nil
		})

	recorder := s.httpSuite.MakeRequest("POST", "/songs/"+songID.String()+"/performances", map[string]interface{}{
		"singerId": singerID.String(),
		"key":      "C",
		"date":     "2026-08-30",
	})

	var got service.SongResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &got)
	require.Len(s.T(), got.Performances, 1)
	assert.Equal(s.T(), singerID, got.Performances[0].SingerID)
}

func (s *SongHandlerTestSuite) TestAddPerformanceSongNotFound() {
	id := uuid.New()
	s.mockService.EXPECT().AddPerformance(gomock.Any()).Return(nil, apperrors.ErrSongNotFound)

	recorder := s.httpSuite.MakeRequest("POST", "/songs/"+id.String()+"/performances", map[string]interface{}{
		"singerId": uuid.New().String(),
	})

	testutils.AssertErrorResponse(s.T(), recorder, http.StatusNotFound, "song not found")
}

func TestSongHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SongHandlerTestSuite))
}
