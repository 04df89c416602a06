package impl

import (
	"context"
	"testing"

	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/domain/repository"
	"linkup/internal/domain/service"
	mockRepo "linkup/internal/mocks/repository"
	mockSvc "linkup/internal/mocks/service"
	"linkup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

const txFuncType = "func(repository.RepositoryFactory) error"

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username:     "alice",
		Email:        "alice@example.com",
		MobileNumber: "15551234567",
		Password:     "S3cret-password",
		FirstName:    "Alice",
		LastName:     "Smith",
		Age:          30,
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFuncType)).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			factory.On("UserRepo").Return(userRepo)

			userRepo.On("FindByUsernameOrEmail", ctx, input.Username, input.Email).
				Return(nil, repository.ErrUserNotFound)
			userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
				Run(func(args mock.Arguments) {
					user := args.Get(1).(*entity.User)
					user.ID = uuid.New()
				}).
				Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAccountService_Register_DuplicateIdentity(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "S3cret-password",
	}

	// The hasher gets no expectation on purpose: a duplicate identity must
	// fail before any hashing work happens.
	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFuncType)).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			factory.On("UserRepo").Return(userRepo)

			userRepo.On("FindByUsernameOrEmail", ctx, input.Username, input.Email).
				Return(&entity.User{ID: uuid.New(), Username: input.Username}, nil)

			err := fn(factory)
			assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentity))
		}).
		Return(domainerrors.ErrDuplicateIdentity)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentity))
}

func TestAccountService_Register_ConstraintRaceIsDuplicate(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "S3cret-password",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	// The pre-check misses, then a concurrent insert wins and the store
	// reports a unique violation. The caller still sees a duplicate.
	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFuncType)).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			factory.On("UserRepo").Return(userRepo)

			userRepo.On("FindByUsernameOrEmail", ctx, input.Username, input.Email).
				Return(nil, repository.ErrUserNotFound)
			userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
				Return(domainerrors.ErrDuplicateIdentity)

			err := fn(factory)
			assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentity))
		}).
		Return(domainerrors.ErrDuplicateIdentity)

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentity))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.hasher.On("Check", "S3cret-password", user.PasswordHash).Return(true)
	fx.tokenService.On("Issue", user.ID, user.Username).Return("signed.token", nil)
	fx.tokenService.On("AccessTokenTTL").Return(3600 * testSecond)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "S3cret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.token", output.AccessToken)
	assert.Equal(t, int64(3600), output.ExpiresIn)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAccountService_Login_EnumerationResistance(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	// Unknown email
	fx.userRepo.On("FindByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, errUnknown := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// Known email, wrong password
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "hashed"}
	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.hasher.On("Check", "wrong", user.PasswordHash).Return(false)

	_, errWrongPassword := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong",
	})

	// Both failures must be indistinguishable.
	require.Error(t, errUnknown)
	require.Error(t, errWrongPassword)
	assert.True(t, errors.Is(errUnknown, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(errWrongPassword, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, errUnknown.Error(), errWrongPassword.Error())
}

func TestAccountService_LoginAuthorizeRoundtrip(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.hasher.On("Check", "S3cret-password", user.PasswordHash).Return(true)
	fx.tokenService.On("Issue", user.ID, user.Username).Return("signed.token", nil)
	fx.tokenService.On("AccessTokenTTL").Return(3600 * testSecond)

	login, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "S3cret-password",
	})
	require.NoError(t, err)

	fx.tokenService.On("Verify", login.AccessToken).
		Return(&service.Claims{UserID: user.ID, Username: user.Username}, nil)
	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	identity, err := fx.service.Authorize(ctx, login.AccessToken)

	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, user.Username, identity.Username)
}

func TestAccountService_Authorize_Idempotent(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}

	fx.tokenService.On("Verify", "signed.token").
		Return(&service.Claims{UserID: user.ID, Username: user.Username}, nil).
		Twice()
	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil).Twice()

	first, err := fx.service.Authorize(ctx, "signed.token")
	require.NoError(t, err)
	second, err := fx.service.Authorize(ctx, "signed.token")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAccountService_Authorize_InvalidToken(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.tokenService.On("Verify", "garbage").
		Return(nil, errors.New("token invalid"))

	identity, err := fx.service.Authorize(ctx, "garbage")

	require.Error(t, err)
	assert.Nil(t, identity)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAccountService_Authorize_DeletedPrincipal(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	// Signature and expiry still check out, but the account is gone.
	fx.tokenService.On("Verify", "signed.token").
		Return(&service.Claims{UserID: userID, Username: "alice"}, nil)
	fx.userRepo.On("FindByID", ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	identity, err := fx.service.Authorize(ctx, "signed.token")

	require.Error(t, err)
	assert.Nil(t, identity)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAccountService_DeleteAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFuncType)).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			postRepo := mockRepo.NewMockPostRepository(t)
			factory.On("UserRepo").Return(userRepo)
			factory.On("PostRepo").Return(postRepo)

			postRepo.On("DeleteByAuthor", ctx, userID).Return(nil)
			userRepo.On("Delete", ctx, userID).Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	output, err := fx.service.DeleteAccount(ctx, userID)

	require.NoError(t, err)
	assert.True(t, output.TokenInvalidated)
}

func TestAccountService_DeleteAccount_MissingUser(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFuncType)).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			postRepo := mockRepo.NewMockPostRepository(t)
			factory.On("UserRepo").Return(userRepo)
			factory.On("PostRepo").Return(postRepo)

			postRepo.On("DeleteByAuthor", ctx, userID).Return(nil)
			userRepo.On("Delete", ctx, userID).Return(repository.ErrUserNotFound)

			err := fn(factory)
			assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
		}).
		Return(domainerrors.ErrNotFound)

	output, err := fx.service.DeleteAccount(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
