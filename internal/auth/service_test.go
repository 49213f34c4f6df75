package auth

import (
	"testing"
	"time"

	apperrors "worship-roster-backend/internal/errors"
	"worship-roster-backend/internal/storage"
	"worship-roster-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	store   storage.Store
	service *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.store = storage.NewGormStore(testutils.OpenSQLiteDB(s.T()), nil)
	s.service = NewAuthService(s.store.Users(), "test-secret", time.Hour)
}

func (s *AuthServiceTestSuite) TestRegisterAndAuthenticate() {
	created, err := s.service.Register("maria", "s3nha")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "maria", created.Username)

	user, err := s.service.Authenticate("maria", "s3nha")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.ID, user.ID)

	// The stored record carries a hash, never the password itself.
	stored, ok := s.store.Users().Find(created.ID)
	require.True(s.T(), ok)
	assert.NotContains(s.T(), stored.PasswordHash, "s3nha")
}

func (s *AuthServiceTestSuite) TestAuthenticateFailuresAreIndistinguishable() {
	_, err := s.service.Register("maria", "s3nha")
	require.NoError(s.T(), err)

	_, wrongPassword := s.service.Authenticate("maria", "errada")
	_, unknownUser := s.service.Authenticate("ninguem", "s3nha")

	assert.ErrorIs(s.T(), wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(s.T(), unknownUser, apperrors.ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestRegisterValidation() {
	_, err := s.service.Register("", "s3nha")
	require.True(s.T(), apperrors.IsValidation(err))
	assert.Contains(s.T(), err.Error(), "username")

	_, err = s.service.Register("maria", "abc")
	require.True(s.T(), apperrors.IsValidation(err))
	assert.Contains(s.T(), err.Error(), "password")
}

func (s *AuthServiceTestSuite) TestRegisterRejectsDuplicateUsername() {
	_, err := s.service.Register("maria", "s3nha")
	require.NoError(s.T(), err)

	_, err = s.service.Register("maria", "outra")
	require.True(s.T(), apperrors.IsValidation(err))
	assert.Contains(s.T(), err.Error(), apperrors.ErrUsernameTaken.Error())
}

func (s *AuthServiceTestSuite) TestJWTRoundTrip() {
	user, err := s.service.Register("maria", "s3nha")
	require.NoError(s.T(), err)

	token, expiresAt, err := s.service.GenerateJWT(user)
	require.NoError(s.T(), err)
	assert.True(s.T(), expiresAt.After(time.Now()))

	claims, err := s.service.ValidateJWT(token)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), user.ID, claims.UserID)
	assert.Equal(s.T(), "maria", claims.Username)
	assert.Equal(s.T(), "worship-roster-backend", claims.Issuer)
}

func (s *AuthServiceTestSuite) TestValidateJWTRejectsTamperedToken() {
	user, err := s.service.Register("maria", "s3nha")
	require.NoError(s.T(), err)

	token, _, err := s.service.GenerateJWT(user)
	require.NoError(s.T(), err)

	_, err = s.service.ValidateJWT(token + "x")
	assert.Error(s.T(), err)

	other := NewAuthService(s.store.Users(), "another-secret", time.Hour)
	_, err = other.ValidateJWT(token)
	assert.Error(s.T(), err)
}

func (s *AuthServiceTestSuite) TestValidateJWTRejectsExpiredToken() {
	expired := NewAuthService(s.store.Users(), "test-secret", -time.Minute)
	user, err := expired.Register("maria", "s3nha")
	require.NoError(s.T(), err)

	token, _, err := expired.GenerateJWT(user)
	require.NoError(s.T(), err)

	_, err = expired.ValidateJWT(token)
	assert.Error(s.T(), err)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
