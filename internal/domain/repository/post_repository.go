package repository

import (
	"context"
	"errors"

	"linkup/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPostNotFound is a domain-specific error returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// Create persists a new post entity to the storage.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID retrieves a single post by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindAll retrieves all posts, newest first.
	FindAll(ctx context.Context) ([]*entity.Post, error)

	// FindByAuthor retrieves all posts created by the given user, newest first.
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error)

	// Update modifies an existing post entity in the storage.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post by its unique ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByAuthor removes every post owned by the given user. Used by the
	// account-deletion flow, which must remove content before the account.
	DeleteByAuthor(ctx context.Context, authorID uuid.UUID) error
}
