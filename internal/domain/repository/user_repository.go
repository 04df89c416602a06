// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"linkup/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsernameOrEmail retrieves the first user whose username or email
	// matches. Used by the registration flow's pre-persist uniqueness check.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	// FindByMobileNumber retrieves a single user by their mobile number.
	FindByMobileNumber(ctx context.Context, mobileNumber string) (*entity.User, error)

	// SearchByName retrieves users whose username, first name or last name
	// contains the query, case-insensitively.
	SearchByName(ctx context.Context, query string) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by their unique ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
