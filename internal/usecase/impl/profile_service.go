package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "linkup/internal/delivery/context"
	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/domain/repository"
	"linkup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the full profile of the given user.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile applies a partial update. Only supplied fields change; a
// mobile number change re-checks uniqueness before saving.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile for update")
	}

	if input.MobileNumber != nil && *input.MobileNumber != user.MobileNumber {
		existing, err := srv.userRepo.FindByMobileNumber(ctx, *input.MobileNumber)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to check mobile number uniqueness")
		}
		if existing != nil && existing.ID != userID {
			return nil, domainerrors.ErrDuplicateIdentity
		}
		user.MobileNumber = *input.MobileNumber
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Age != nil {
		user.Age = *input.Age
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.ProfilePic != nil {
		user.ProfilePic = *input.ProfilePic
	}
	if input.Interests != nil {
		user.Interests = input.Interests
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return user, nil
}

// SearchUsers returns users matching the query by username or name.
// A blank query returns an empty result rather than the whole table.
func (srv *profileService) SearchUsers(ctx context.Context, query string) ([]*entity.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*entity.User{}, nil
	}

	users, err := srv.userRepo.SearchByName(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	return users, nil
}
