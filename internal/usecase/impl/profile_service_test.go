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

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewProfileService(ProfileServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return service, userRepo
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	service, userRepo := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	got, err := service.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	service, userRepo := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProfileService_UpdateProfile_PartialUpdate(t *testing.T) {
	service, userRepo := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		FirstName:    "Alice",
		LastName:     "Smith",
		Bio:          "old bio",
		MobileNumber: "15551234567",
	}

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	newBio := "new bio"
	updated, err := service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
		Bio: &newBio,
	})

	require.NoError(t, err)
	assert.Equal(t, "new bio", updated.Bio)
	// Untouched fields keep their values.
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, "15551234567", updated.MobileNumber)
}

func TestProfileService_UpdateProfile_MobileNumberTaken(t *testing.T) {
	service, userRepo := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice", MobileNumber: "15551234567"}
	other := &entity.User{ID: uuid.New(), Username: "bob", MobileNumber: "15559876543"}

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("FindByMobileNumber", ctx, other.MobileNumber).Return(other, nil)

	_, err := service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
		MobileNumber: &other.MobileNumber,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentity))
}

func TestProfileService_UpdateProfile_MobileNumberFree(t *testing.T) {
	service, userRepo := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice", MobileNumber: "15551234567"}
	newNumber := "15550001111"

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("FindByMobileNumber", ctx, newNumber).Return(nil, repository.ErrUserNotFound)
	userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
		MobileNumber: &newNumber,
	})

	require.NoError(t, err)
	assert.Equal(t, newNumber, updated.MobileNumber)
}

func TestProfileService_SearchUsers_BlankQuery(t *testing.T) {
	service, _ := createTestProfileService(t)

	results, err := service.SearchUsers(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProfileService_SearchUsers_MatchesByName(t *testing.T) {
	service, userRepo := createTestProfileService(t)

	ctx := context.Background()
	matches := []*entity.User{
		{ID: uuid.New(), Username: "alice"},
		{ID: uuid.New(), Username: "alicia"},
	}

	userRepo.On("SearchByName", ctx, "ali").Return(matches, nil)

	results, err := service.SearchUsers(ctx, "ali")

	require.NoError(t, err)
	assert.Len(t, results, 2)
}
