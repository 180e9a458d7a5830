package impl

import (
	"context"
	"testing"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	mockRepo "eventhub/internal/mocks/repository"
	mockService "eventhub/internal/mocks/service"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	authRepo     *mockRepo.MockAuthRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		authRepo:     mockRepo.NewMockAuthRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
	}
	fx.service = NewAuthService(AuthServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		AuthRepo:     fx.authRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func (fx authServiceFixtures) expectTokens(userID uuid.UUID, role entity.Role) {
	fx.tokenService.EXPECT().GenerateTokens(userID, []string{role.String()}).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().AccessTokenDuration().Return(15 * time.Minute)
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	input := &usecase.RegisterInput{
		Name:     " Vera Vendor ",
		Email:    "Vera@Example.com ",
		Password: "Str0ng!Pass",
		Role:     entity.RoleVendor,
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUsers := mockRepo.NewMockUserRepository(t)
	txAuth := mockRepo.NewMockAuthRepository(t)
	factory.EXPECT().NewUserRepository().Return(txUsers)
	factory.EXPECT().NewAuthRepository().Return(txAuth)
	expectTx(fx.txManager, factory)

	txAuth.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, "vera@example.com").Return(nil, repository.ErrAuthNotFound)
	txUsers.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { user.ID = userID }).
		Return(nil)
	txAuth.EXPECT().CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
		return auth.UserID == userID && auth.PasswordHash == "hashed" && auth.ProviderUserID == "vera@example.com"
	})).Return(nil)

	fx.expectTokens(userID, entity.RoleVendor)

	out, err := fx.service.Register(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, "Vera Vendor", out.User.Name)
	assert.Equal(t, "vera@example.com", out.User.Email)
	assert.Equal(t, entity.RoleVendor, out.User.Role)
	assert.Equal(t, entity.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, out.Tokens)
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email: "a@b.com", Password: "Str0ng!Pass", Role: "admin",
	})

	assertAppError(t, err, domainerrors.ErrInvalidRole)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().ValidatePasswordStrength("short").Return(errors.New("password must be at least 8 characters long"))

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email: "a@b.com", Password: "short", Role: entity.RolePlanner,
	})

	assertAppError(t, err, domainerrors.ErrWeakPassword)
	appErr, _ := errors.AsType[domainerrors.AppError](err)
	assert.Contains(t, appErr.Details(), "8 characters")
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txAuth := mockRepo.NewMockAuthRepository(t)
	factory.EXPECT().NewUserRepository().Return(mockRepo.NewMockUserRepository(t))
	factory.EXPECT().NewAuthRepository().Return(txAuth)
	expectTx(fx.txManager, factory)

	txAuth.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, "taken@example.com").
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email: "taken@example.com", Password: "Str0ng!Pass", Role: entity.RoleViewer,
	})

	assertAppError(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	authRecord := &entity.Authentication{UserID: userID, PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, "p@example.com").Return(authRecord, nil)
		fx.hasher.EXPECT().Check("Str0ng!Pass", "hashed").Return(true)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RolePlanner}, nil)
		fx.expectTokens(userID, entity.RolePlanner)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "P@example.com", Password: "Str0ng!Pass"})
		require.NoError(t, err)
		assert.Equal(t, "access", out.Tokens.AccessToken)
		assert.Equal(t, userID, out.User.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, "x@example.com").Return(nil, repository.ErrAuthNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "x@example.com", Password: "whatever"})
		assertAppError(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, "p@example.com").Return(authRecord, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "p@example.com", Password: "wrong"})
		assertAppError(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	userID := uuid.New()
	claims := &service.Claims{Type: service.TokenTypeRefresh}
	claims.Subject = userID.String()

	t.Run("reloads role", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(claims, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleVendor}, nil)
		fx.expectTokens(userID, entity.RoleVendor)

		pair, err := fx.service.RefreshToken(ctx, "refresh-token")
		require.NoError(t, err)
		assert.Equal(t, "refresh", pair.RefreshToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().ValidateRefreshToken("bad").Return(nil, errors.New("token is expired"))

		_, err := fx.service.RefreshToken(context.Background(), "bad")
		assertAppError(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(claims, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.RefreshToken(ctx, "refresh-token")
		assertAppError(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}
