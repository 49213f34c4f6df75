package auth

import (
	"fmt"
	"time"

	"worship-roster-backend/internal/database/models"
	apperrors "worship-roster-backend/internal/errors"
	"worship-roster-backend/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies credentials against the users collection and issues
// JWTs. Each check is stateless: no session is created here.
type AuthService struct {
	users     storage.Records[models.User]
	jwtSecret []byte
	expiry    time.Duration
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

// UserResponse is the caller-facing view of a user. The password hash never
// leaves the auth layer.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// NewAuthService creates a new authentication service
func NewAuthService(users storage.Records[models.User], jwtSecret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		expiry:    expiry,
	}
}

// Authenticate verifies a username/password pair. Any mismatch returns the
// same generic error: callers cannot tell an unknown user from a wrong
// password.
func (s *AuthService) Authenticate(username, password string) (*UserResponse, error) {
	for _, user := range s.users.GetAll() {
		if user.Username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return nil, apperrors.ErrInvalidCredentials
		}
		return &UserResponse{ID: user.ID, Username: user.Username}, nil
	}
	return nil, apperrors.ErrInvalidCredentials
}

// Register creates a new user with a bcrypt password hash.
func (s *AuthService) Register(username, password string) (*UserResponse, error) {
	if username == "" {
		return nil, &apperrors.ValidationError{Field: "username", Message: "username is required"}
	}
	if len(password) < 4 {
		return nil, &apperrors.ValidationError{Field: "password", Message: "password must have at least 4 characters"}
	}
	for _, user := range s.users.GetAll() {
		if user.Username == username {
			return nil, &apperrors.ValidationError{Field: "username", Message: apperrors.ErrUsernameTaken.Error()}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	stored, err := s.users.Upsert(&models.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return &UserResponse{ID: stored.ID, Username: stored.Username}, nil
}

// GenerateJWT issues a signed token for an authenticated user.
func (s *AuthService) GenerateJWT(user *UserResponse) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.expiry)
	claims := &AuthClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "worship-roster-backend",
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateJWT parses and verifies a token, returning its claims.
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
