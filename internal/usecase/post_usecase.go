package usecase

import (
	"context"

	"linkup/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput defines the data required to create a post.
type CreatePostInput struct {
	Description string
	Media       string
	Tags        []string
}

// EditPostInput defines the optional fields of a post edit.
// Nil pointers mean "leave unchanged".
type EditPostInput struct {
	Description *string
	Media       *string
	Tags        []string
}

// PostUsecase defines the interface for post-related business operations.
// Mutations require the caller's identity; ownership is enforced here, not
// in the delivery layer.
type PostUsecase interface {
	// CreatePost creates a post owned by the given author.
	CreatePost(ctx context.Context, authorID uuid.UUID, input *CreatePostInput) (*entity.Post, error)

	// ListPosts returns all posts, newest first.
	ListPosts(ctx context.Context) ([]*entity.Post, error)

	// ListPostsByAuthor returns the given user's posts, newest first.
	ListPostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error)

	// EditPost applies a partial update to a post the caller owns.
	EditPost(ctx context.Context, callerID, postID uuid.UUID, input *EditPostInput) (*entity.Post, error)

	// DeletePost removes a post the caller owns.
	DeletePost(ctx context.Context, callerID, postID uuid.UUID) error
}
