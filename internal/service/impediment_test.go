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

type ImpedimentServiceTestSuite struct {
	suite.Suite
	store   storage.Store
	service *ImpedimentService
}

func (s *ImpedimentServiceTestSuite) SetupTest() {
	s.store = storage.NewGormStore(testutils.OpenSQLiteDB(s.T()), nil)
	s.service = NewImpedimentService(s.store, validator.New())
}

func (s *ImpedimentServiceTestSuite) validRequest() *SaveImpedimentRequest {
	return &SaveImpedimentRequest{
		PersonID:   uuid.New(),
		PersonType: models.PersonTypeSinger,
		Date:       "2026-09-06",
		Reason:     "Viagem",
	}
}

func (s *ImpedimentServiceTestSuite) TestSaveRequiresPerson() {
	req := s.validRequest()
	req.PersonID = uuid.Nil

	_, err := s.service.Save(req)
	require.True(s.T(), apperrors.IsValidation(err))
	assert.Contains(s.T(), err.Error(), "personId")
}

func (s *ImpedimentServiceTestSuite) TestSaveRejectsUnknownPersonType() {
	req := s.validRequest()
	req.PersonType = "conductor"

	_, err := s.service.Save(req)
	require.True(s.T(), apperrors.IsValidation(err))
	assert.Contains(s.T(), err.Error(), "personType")
}

func (s *ImpedimentServiceTestSuite) TestSaveRejectsMalformedDate() {
	req := s.validRequest()
	req.Date = "06/09/2026"

	_, err := s.service.Save(req)
	require.True(s.T(), apperrors.IsValidation(err))
	assert.Contains(s.T(), err.Error(), "date")
}

func (s *ImpedimentServiceTestSuite) TestSaveAndList() {
	created, err := s.service.Save(s.validRequest())
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, created.ID)

	musicianReq := s.validRequest()
	musicianReq.PersonType = models.PersonTypeMusician
	musicianReq.Reason = ""
	_, err = s.service.Save(musicianReq)
	require.NoError(s.T(), err)

	list, err := s.service.List()
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 2)
	assert.Equal(s.T(), "Viagem", list[0].Reason)
	assert.Equal(s.T(), models.PersonTypeMusician, list[1].PersonType)
}

func (s *ImpedimentServiceTestSuite) TestDelete() {
	created, err := s.service.Save(s.validRequest())
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.service.Delete(created.ID))
	assert.ErrorIs(s.T(), s.service.Delete(created.ID), apperrors.ErrImpedimentNotFound)
}

func TestImpedimentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImpedimentServiceTestSuite))
}
