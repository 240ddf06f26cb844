package auth

import (
	"testing"
	"time"

	"passport/config"
	"passport/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func newTestTokenService(t *testing.T, ttl time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_IssueAndValidate_Roundtrip(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	tokenString, err := svc.Issue("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Subject)

	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, 8*time.Hour, svc.AccessTokenDuration())
}

func TestJWTService_Validate_ExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user@example.com",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	tokenString, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_Validate_ZeroLifetimeToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	// A token whose expiry equals its issuance time is dead on arrival.
	now := time.Now()
	zeroLifetime := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user@example.com",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now),
	})
	tokenString, err := zeroLifetime.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := forged.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenSignatureInvalid)
}

func TestJWTService_Validate_Garbage(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	for _, tokenString := range []string{
		"",
		"not-a-token",
		"aaaa.bbbb.cccc",
	} {
		claims, err := svc.Validate(tokenString)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, service.ErrTokenMalformed, "token=%q", tokenString)
	}
}

func TestJWTService_Validate_TamperedPayload(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	tokenString, err := svc.Issue("user@example.com")
	require.NoError(t, err)

	// Flip a character in the payload segment; the signature no longer matches.
	tampered := []byte(tokenString)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	claims, err := svc.Validate(string(tampered))
	assert.Nil(t, claims)
	assert.Error(t, err)
}
