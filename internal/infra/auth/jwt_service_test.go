package auth

import (
	"testing"
	"time"

	"gallery/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signing secret")
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()

	tokenString, err := svc.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_TokenLifetimeIsSevenDays(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	tokenString, err := svc.Generate(uuid.New())
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)
	require.NoError(t, err)

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 7*24*time.Hour, lifetime)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newJWTServiceWithTTL(testSecret, -time.Minute)

	tokenString, err := svc.Generate(uuid.New())
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)
	assert.Nil(t, claims)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := newJWTServiceWithTTL(testSecret, time.Hour)
	verifier := newJWTServiceWithTTL("a different secret", time.Hour)

	tokenString, err := issuer.Generate(uuid.New())
	require.NoError(t, err)

	claims, err := verifier.Validate(tokenString)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	svc := newJWTServiceWithTTL(testSecret, time.Hour)

	// Forge a token signed with "none", which must never verify.
	claims := jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	forged := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, err := forged.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parsed, err := svc.Validate(tokenString)
	assert.Nil(t, parsed)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newJWTServiceWithTTL(testSecret, time.Hour)

	claims, err := svc.Validate("not.a.token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_RejectsNonUUIDSubject(t *testing.T) {
	svc := newJWTServiceWithTTL(testSecret, time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	parsed, err := svc.Validate(tokenString)
	assert.Nil(t, parsed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid subject claim")
}
