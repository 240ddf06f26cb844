package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed payload inside an access token: subject plus expiry.
// Tokens carry identity only, never authorization data.
type Claims struct {
	jwt.RegisteredClaims
}

// Validation outcomes, distinguishable internally for logging. They MUST
// collapse to a single generic unauthorized response at the HTTP boundary.
var (
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenMalformed        = errors.New("token malformed")
)

// TokenService defines the interface for issuing and validating access tokens.
type TokenService interface {
	// Issue creates a signed token asserting the authenticated subject, with
	// expiry set to now + the configured TTL.
	Issue(subject string) (string, error)

	// Validate verifies signature and expiry and recovers the claims.
	Validate(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
