package usecase

import (
	"context"

	"linkup/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the optional fields of a partial profile update.
// Nil pointers mean "leave unchanged".
type UpdateProfileInput struct {
	FirstName    *string
	LastName     *string
	Age          *int
	Bio          *string
	ProfilePic   *string
	MobileNumber *string
	Interests    []string
}

// ProfileUsecase defines the interface for profile read and update operations.
type ProfileUsecase interface {
	// GetProfile returns the full profile of the given user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies a partial update to the given user's profile.
	// Changing the mobile number re-checks uniqueness.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// SearchUsers returns users whose username or name matches the query,
	// case-insensitively.
	SearchUsers(ctx context.Context, query string) ([]*entity.User, error)
}
