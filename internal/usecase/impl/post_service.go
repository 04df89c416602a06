package impl

import (
	"context"
	"log/slog"

	deliverycontext "linkup/internal/delivery/context"
	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/domain/repository"
	"linkup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	postRepo repository.PostRepository
	logger   *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo repository.PostRepository
	Logger   *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo: params.PostRepo,
		logger:   params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost creates a post owned by the given author.
func (srv *postService) CreatePost(ctx context.Context, authorID uuid.UUID, input *usecase.CreatePostInput) (*entity.Post, error) {
	post := &entity.Post{
		AuthorID:    authorID,
		Description: input.Description,
		Media:       input.Media,
		Tags:        input.Tags,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Warn("Post creation failed", slog.Any("authorID", authorID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Post created", slog.Any("postID", post.ID))

	return post, nil
}

// ListPosts returns all posts, newest first.
func (srv *postService) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// ListPostsByAuthor returns the given user's posts, newest first.
func (srv *postService) ListPostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindByAuthor(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by author")
	}

	return posts, nil
}

// EditPost applies a partial update to a post after checking the caller owns it.
func (srv *postService) EditPost(ctx context.Context, callerID, postID uuid.UUID, input *usecase.EditPostInput) (*entity.Post, error) {
	post, err := srv.loadOwnedPost(ctx, callerID, postID)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		post.Description = *input.Description
	}
	if input.Media != nil {
		post.Media = *input.Media
	}
	if input.Tags != nil {
		post.Tags = input.Tags
	}

	if err := srv.postRepo.Update(ctx, post); err != nil {
		srv.log(ctx).Warn("Post update failed", slog.Any("postID", postID), slog.Any("error", err))

		return nil, err
	}

	return post, nil
}

// DeletePost removes a post after checking the caller owns it.
func (srv *postService) DeletePost(ctx context.Context, callerID, postID uuid.UUID) error {
	if _, err := srv.loadOwnedPost(ctx, callerID, postID); err != nil {
		return err
	}

	if err := srv.postRepo.Delete(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	srv.log(ctx).Debug("Post deleted", slog.Any("postID", postID))

	return nil
}

func (srv *postService) loadOwnedPost(ctx context.Context, callerID, postID uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load post")
	}

	if post.AuthorID != callerID {
		srv.log(ctx).Warn("Post mutation denied for non-owner", slog.Any("postID", postID), slog.Any("callerID", callerID))

		return nil, domainerrors.ErrForbidden
	}

	return post, nil
}
