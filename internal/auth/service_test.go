package auth_test

import (
	"testing"
	"time"

	"mod-registry-backend/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *auth.UserProfile {
	return &auth.UserProfile{ID: 42, Username: "alice", Email: "alice@example.com"}
}

func TestSessionRoundtrip(t *testing.T) {
	svc := auth.NewAuthService("test-secret", time.Hour)

	token, err := svc.MintSession(testProfile())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateSession(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "42", claims.Subject)
}

func TestSessionWrongSecretRejected(t *testing.T) {
	minter := auth.NewAuthService("secret-one", time.Hour)
	checker := auth.NewAuthService("secret-two", time.Hour)

	token, err := minter.MintSession(testProfile())
	require.NoError(t, err)

	_, err = checker.ValidateSession(token)
	assert.Error(t, err)
}

func TestSessionExpiryEnforced(t *testing.T) {
	svc := auth.NewAuthService("test-secret", -time.Minute)

	token, err := svc.MintSession(testProfile())
	require.NoError(t, err)

	_, err = svc.ValidateSession(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestSessionRejectsNonHMACAlgorithm(t *testing.T) {
	svc := auth.NewAuthService("test-secret", time.Hour)

	// An unsigned token must never validate, whatever its claims say
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &auth.SessionClaims{
		UserID:   42,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateSession(token)
	assert.Error(t, err)
}

func TestSessionGarbageRejected(t *testing.T) {
	svc := auth.NewAuthService("test-secret", time.Hour)

	_, err := svc.ValidateSession("not.a.jwt")
	assert.Error(t, err)
}
