package impl

import (
	"context"
	"testing"

	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/domain/repository"
	mockRepo "linkup/internal/mocks/repository"
	"linkup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPostService(t *testing.T) (usecase.PostUsecase, *mockRepo.MockPostRepository) {
	postRepo := mockRepo.NewMockPostRepository(t)
	service := NewPostService(PostServiceParams{
		PostRepo: postRepo,
		Logger:   newDiscardLogger(),
	})

	return service, postRepo
}

func TestPostService_CreatePost_Success(t *testing.T) {
	service, postRepo := createTestPostService(t)

	ctx := context.Background()
	authorID := uuid.New()

	postRepo.On("Create", ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(args mock.Arguments) {
			post := args.Get(1).(*entity.Post)
			post.ID = uuid.New()
		}).
		Return(nil)

	post, err := service.CreatePost(ctx, authorID, &usecase.CreatePostInput{
		Description: "hello world",
		Tags:        []string{"intro"},
	})

	require.NoError(t, err)
	assert.Equal(t, authorID, post.AuthorID)
	assert.Equal(t, "hello world", post.Description)
	assert.NotEqual(t, uuid.Nil, post.ID)
}

func TestPostService_EditPost_NonOwnerForbidden(t *testing.T) {
	service, postRepo := createTestPostService(t)

	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()
	post := &entity.Post{ID: uuid.New(), AuthorID: owner, Description: "mine"}

	postRepo.On("FindByID", ctx, post.ID).Return(post, nil)

	newDescription := "hijacked"
	_, err := service.EditPost(ctx, intruder, post.ID, &usecase.EditPostInput{
		Description: &newDescription,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPostService_EditPost_OwnerSuccess(t *testing.T) {
	service, postRepo := createTestPostService(t)

	ctx := context.Background()
	owner := uuid.New()
	post := &entity.Post{ID: uuid.New(), AuthorID: owner, Description: "old", Media: "pic.png"}

	postRepo.On("FindByID", ctx, post.ID).Return(post, nil)
	postRepo.On("Update", ctx, mock.AnythingOfType("*entity.Post")).Return(nil)

	newDescription := "new"
	updated, err := service.EditPost(ctx, owner, post.ID, &usecase.EditPostInput{
		Description: &newDescription,
	})

	require.NoError(t, err)
	assert.Equal(t, "new", updated.Description)
	assert.Equal(t, "pic.png", updated.Media)
}

func TestPostService_DeletePost_NotFound(t *testing.T) {
	service, postRepo := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()

	postRepo.On("FindByID", ctx, postID).Return(nil, repository.ErrPostNotFound)

	err := service.DeletePost(ctx, uuid.New(), postID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestPostService_DeletePost_OwnerSuccess(t *testing.T) {
	service, postRepo := createTestPostService(t)

	ctx := context.Background()
	owner := uuid.New()
	post := &entity.Post{ID: uuid.New(), AuthorID: owner}

	postRepo.On("FindByID", ctx, post.ID).Return(post, nil)
	postRepo.On("Delete", ctx, post.ID).Return(nil)

	require.NoError(t, service.DeletePost(ctx, owner, post.ID))
}

func TestPostService_ListPostsByAuthor(t *testing.T) {
	service, postRepo := createTestPostService(t)

	ctx := context.Background()
	authorID := uuid.New()
	posts := []*entity.Post{
		{ID: uuid.New(), AuthorID: authorID},
		{ID: uuid.New(), AuthorID: authorID},
	}

	postRepo.On("FindByAuthor", ctx, authorID).Return(posts, nil)

	got, err := service.ListPostsByAuthor(ctx, authorID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
