package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims represents the browser session JWT claims. The session token
// only identifies the caller; registry bearer tokens are a separate,
// non-JWT credential.
type SessionClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService mints and validates session JWTs
type AuthService struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(secret string, ttl time.Duration) *AuthService {
	return &AuthService{secret: []byte(secret), ttl: ttl}
}

// MintSession creates a signed session token for an authenticated identity
func (s *AuthService) MintSession(profile *UserProfile) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID:   profile.ID,
		Username: profile.Username,
		Email:    profile.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "mod-registry-backend",
			Subject:   fmt.Sprintf("%d", profile.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateSession parses and validates a session token
func (s *AuthService) ValidateSession(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}
