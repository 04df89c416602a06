package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by issued tokens.
type Claims struct {
	UserID   uuid.UUID `json:"uid"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed access
// tokens. Verification here is purely computational (signature and expiry);
// checking that the referenced user still exists is the caller's job.
type TokenService interface {
	// Issue creates a signed, time-bounded token for a verified user.
	// Tokens without an expiry are never issued.
	Issue(userID uuid.UUID, username string) (string, error)

	// Verify checks the signature and expiry of a token string and returns
	// its claims. Expired and tampered tokens are rejected with distinct
	// underlying errors.
	Verify(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured token lifetime.
	AccessTokenTTL() time.Duration
}
