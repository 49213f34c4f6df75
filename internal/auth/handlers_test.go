package auth

import (
	"net/http"
	"testing"
	"time"

	"worship-roster-backend/internal/storage"
	"worship-roster-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	store     storage.Store
	service   *AuthService
	httpSuite *testutils.HTTPTestSuite
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.store = storage.NewGormStore(testutils.OpenSQLiteDB(s.T()), nil)
	s.service = NewAuthService(s.store.Users(), "test-secret", time.Hour)
	handler := NewAuthHandler(s.service)
	middleware := NewAuthMiddleware(s.service)

	s.httpSuite = testutils.SetupHTTPTest()
	s.httpSuite.Router.POST("/auth/login", handler.Login)
	s.httpSuite.Router.POST("/auth/register", handler.Register)
	s.httpSuite.Router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
	})
}

func (s *AuthHandlerTestSuite) TestRegisterAndLogin() {
	recorder := s.httpSuite.MakeRequest("POST", "/auth/register", map[string]string{
		"username": "maria", "password": "s3nha",
	})

	var created UserResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusCreated, &created)
	assert.Equal(s.T(), "maria", created.Username)

	recorder = s.httpSuite.MakeRequest("POST", "/auth/login", map[string]string{
		"username": "maria", "password": "s3nha",
	})

	var login LoginResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &login)
	assert.NotEmpty(s.T(), login.AccessToken)
	assert.Equal(s.T(), "bearer", login.TokenType)
	assert.Equal(s.T(), created.ID, login.User.ID)
}

func (s *AuthHandlerTestSuite) TestLoginRejectsBadCredentials() {
	_, err := s.service.Register("maria", "s3nha")
	require.NoError(s.T(), err)

	recorder := s.httpSuite.MakeRequest("POST", "/auth/login", map[string]string{
		"username": "maria", "password": "errada",
	})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusUnauthorized, "invalid username or password")

	recorder = s.httpSuite.MakeRequest("POST", "/auth/login", map[string]string{
		"username": "ninguem", "password": "s3nha",
	})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusUnauthorized, "invalid username or password")
}

func (s *AuthHandlerTestSuite) TestLoginRequiresBothFields() {
	recorder := s.httpSuite.MakeRequest("POST", "/auth/login", map[string]string{
		"username": "maria",
	})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "required")
}

func (s *AuthHandlerTestSuite) TestRegisterRejectsShortPassword() {
	recorder := s.httpSuite.MakeRequest("POST", "/auth/register", map[string]string{
		"username": "maria", "password": "abc",
	})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "password")
}

func (s *AuthHandlerTestSuite) TestRequireAuth() {
	user, err := s.service.Register("maria", "s3nha")
	require.NoError(s.T(), err)
	token, _, err := s.service.GenerateJWT(user)
	require.NoError(s.T(), err)

	recorder := s.httpSuite.MakeRequest("GET", "/protected", nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusUnauthorized, "Authorization header is required")

	recorder = s.httpSuite.MakeRequestWithHeaders("GET", "/protected", nil, map[string]string{
		"Authorization": token,
	})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusUnauthorized, "Invalid authorization header format")

	recorder = s.httpSuite.MakeRequestWithHeaders("GET", "/protected", nil, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusUnauthorized, "Invalid token")

	recorder = s.httpSuite.MakeRequestWithHeaders("GET", "/protected", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	assert.Equal(s.T(), http.StatusOK, recorder.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
