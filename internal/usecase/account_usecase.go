// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"linkup/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username     string
	Email        string
	MobileNumber string
	Password     string
	FirstName    string
	LastName     string
	Age          int
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresIn   int64
	User        *entity.User
}

// DeleteAccountOutput reports the outcome of an account deletion. Issued
// tokens are not tracked server-side, so deletion invalidates them lazily:
// the next authorization attempt fails to re-resolve the principal.
type DeleteAccountOutput struct {
	TokenInvalidated bool
}

// Identity is the authenticated principal attached to a request after the
// token gate. It is rebuilt from the current user record on every
// authorization, never from token claims alone.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Email    string
}

// AccountUsecase defines the interface for account lifecycle and
// request-authorization operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new account. Username, email and mobile number must
	// each be unused; a collision reports a duplicate without revealing which
	// field collided.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a fresh access token. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authorize verifies a raw bearer token and re-resolves its principal
	// against current state. A token for a deleted account fails here even
	// if its signature and expiry are still valid.
	Authorize(ctx context.Context, rawToken string) (*Identity, error)

	// DeleteAccount removes the account and all content it owns.
	DeleteAccount(ctx context.Context, userID uuid.UUID) (*DeleteAccountOutput, error)
}
