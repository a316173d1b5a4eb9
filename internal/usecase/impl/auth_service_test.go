package impl

import (
	"context"
	"testing"
	"time"

	"contacthub/internal/domain/entity"
	domainerrors "contacthub/internal/domain/errors"
	"contacthub/internal/domain/repository"
	"contacthub/internal/domain/service"
	mockRepo "contacthub/internal/mocks/repository"
	mockSvc "contacthub/internal/mocks/service"
	"contacthub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service        usecase.AuthUsecase
	txManager      *mockRepo.MockTransactionManager
	userRepo       *mockRepo.MockUserRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenCodec     *mockSvc.MockTokenCodec
	identityCache  *mockSvc.MockIdentityCache
	mailDispatcher *mockSvc.MockMailDispatcher
	avatarResolver *mockSvc.MockAvatarResolver
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenCodec := mockSvc.NewMockTokenCodec(t)
	identityCache := mockSvc.NewMockIdentityCache(t)
	mailDispatcher := mockSvc.NewMockMailDispatcher(t)
	avatarResolver := mockSvc.NewMockAvatarResolver(t)

	authService := NewAuthService(AuthServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		Hasher:         hasher,
		TokenCodec:     tokenCodec,
		IdentityCache:  identityCache,
		MailDispatcher: mailDispatcher,
		AvatarResolver: avatarResolver,
		Logger:         newDiscardLogger(),
	})

	return authServiceFixtures{
		service:        authService,
		txManager:      txManager,
		userRepo:       userRepo,
		hasher:         hasher,
		tokenCodec:     tokenCodec,
		identityCache:  identityCache,
		mailDispatcher: mailDispatcher,
		avatarResolver: avatarResolver,
	}
}

func confirmedUser(email string) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        email,
		PasswordHash: "hashed_password",
		Confirmed:    true,
	}
}

func waitForCall(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected background call did not happen")
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "Password123!",
	}

	mailSent := make(chan struct{})

	fixtures.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(nil, repository.ErrUserNotFound)
	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fixtures.avatarResolver.EXPECT().AvatarURL("alice@example.com").Return("https://avatar.example/a")
	fixtures.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)
	fixtures.tokenCodec.EXPECT().
		Issue("alice@example.com", service.ScopeEmail).
		Return("email-token", nil)
	fixtures.mailDispatcher.EXPECT().
		SendConfirmation(mock.Anything, "alice@example.com", "alice", "email-token").
		Run(func(_ context.Context, _, _, _ string) {
			close(mailSent)
		}).
		Return(nil)

	output, err := fixtures.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.False(t, output.User.Confirmed)

	waitForCall(t, mailSent)
}

func TestAuthService_Register_AlreadyExists(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(confirmedUser("alice@example.com"), nil)

	output, err := fixtures.service.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := confirmedUser("alice@example.com")

	fixtures.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fixtures.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fixtures.tokenCodec.EXPECT().Issue("alice@example.com", service.ScopeAccess).Return("access-1", nil)
	fixtures.tokenCodec.EXPECT().Issue("alice@example.com", service.ScopeRefresh).Return("refresh-1", nil)
	fixtures.userRepo.EXPECT().
		UpdateRefreshToken(ctx, user.ID, mock.AnythingOfType("*string")).
		Run(func(_ context.Context, _ uuid.UUID, token *string) {
			require.NotNil(t, token)
			assert.Equal(t, "refresh-1", *token)
		}).
		Return(nil)
	fixtures.identityCache.EXPECT().Put(ctx, user).Return()

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-1", output.AccessToken)
	assert.Equal(t, "refresh-1", output.RefreshToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.NotEqual(t, output.AccessToken, output.RefreshToken)
}

func TestAuthService_Login_UnknownIdentity(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnknownIdentity)
}

func TestAuthService_Login_NotConfirmed(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := confirmedUser("alice@example.com")
	user.Confirmed = false

	fixtures.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)

	_, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotConfirmed)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := confirmedUser("alice@example.com")

	fixtures.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fixtures.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	_, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domainerrors.ErrBadCredentials)
}

// runRefreshTransaction wires the transaction manager mock so the callback
// executes against a factory returning the given user repository.
func runRefreshTransaction(t *testing.T, fixtures authServiceFixtures, ctx context.Context, userRepo *mockRepo.MockUserRepository) {
	t.Helper()

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(userRepo)

			return fn(factory)
		})
}

func TestAuthService_Refresh_RotatesPair(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	stored := "refresh-1"
	user := confirmedUser("alice@example.com")
	user.RefreshToken = &stored

	fixtures.tokenCodec.EXPECT().
		Decode("refresh-1", service.ScopeRefresh).
		Return(&service.TokenClaims{Subject: "alice@example.com", Scope: service.ScopeRefresh}, nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().FindByEmailForUpdate(ctx, "alice@example.com").Return(user, nil)
	fixtures.tokenCodec.EXPECT().Issue("alice@example.com", service.ScopeAccess).Return("access-2", nil)
	fixtures.tokenCodec.EXPECT().Issue("alice@example.com", service.ScopeRefresh).Return("refresh-2", nil)
	txUserRepo.EXPECT().
		UpdateRefreshToken(ctx, user.ID, mock.AnythingOfType("*string")).
		Run(func(_ context.Context, _ uuid.UUID, token *string) {
			require.NotNil(t, token)
			assert.Equal(t, "refresh-2", *token)
		}).
		Return(nil)

	runRefreshTransaction(t, fixtures, ctx, txUserRepo)

	output, err := fixtures.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-1"})

	require.NoError(t, err)
	assert.Equal(t, "access-2", output.AccessToken)
	assert.Equal(t, "refresh-2", output.RefreshToken)
}

func TestAuthService_Refresh_ReuseDetectionClearsToken(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	// The stored token has already rotated to refresh-2; presenting
	// refresh-1 again is reuse of a revoked token.
	stored := "refresh-2"
	user := confirmedUser("alice@example.com")
	user.RefreshToken = &stored

	fixtures.tokenCodec.EXPECT().
		Decode("refresh-1", service.ScopeRefresh).
		Return(&service.TokenClaims{Subject: "alice@example.com", Scope: service.ScopeRefresh}, nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().FindByEmailForUpdate(ctx, "alice@example.com").Return(user, nil)
	txUserRepo.EXPECT().
		UpdateRefreshToken(ctx, user.ID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, token *string) {
			assert.Nil(t, token)
		}).
		Return(nil)

	runRefreshTransaction(t, fixtures, ctx, txUserRepo)

	_, err := fixtures.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-1"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenStale)
}

func TestAuthService_Refresh_ClearedTokenRejectsEverything(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	// After reuse detection cleared the slot, even the legitimate latest
	// token is rejected.
	user := confirmedUser("alice@example.com")
	user.RefreshToken = nil

	fixtures.tokenCodec.EXPECT().
		Decode("refresh-2", service.ScopeRefresh).
		Return(&service.TokenClaims{Subject: "alice@example.com", Scope: service.ScopeRefresh}, nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().FindByEmailForUpdate(ctx, "alice@example.com").Return(user, nil)
	txUserRepo.EXPECT().UpdateRefreshToken(ctx, user.ID, mock.Anything).Return(nil)

	runRefreshTransaction(t, fixtures, ctx, txUserRepo)

	_, err := fixtures.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-2"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenStale)
}

// rotationDirectory is a one-user in-memory directory with real transaction
// semantics: writes made inside Execute become visible only when the callback
// returns nil, exactly like the gorm transaction manager.
type rotationDirectory struct {
	user *entity.User
}

type rotationTxManager struct {
	dir *rotationDirectory
}

func (m *rotationTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	staged := *m.dir.user
	if err := fn(&rotationTxFactory{user: &staged}); err != nil {
		return err
	}
	*m.dir.user = staged

	return nil
}

type rotationTxFactory struct {
	user *entity.User
}

func (f *rotationTxFactory) UserRepo() repository.UserRepository {
	return &rotationUserRepo{user: f.user}
}

func (f *rotationTxFactory) ContactRepo() repository.ContactRepository {
	return nil
}

type rotationUserRepo struct {
	user *entity.User
}

func (r *rotationUserRepo) FindByEmailForUpdate(_ context.Context, email string) (*entity.User, error) {
	if entity.NormalizeEmail(email) != r.user.Email {
		return nil, repository.ErrUserNotFound
	}
	found := *r.user

	return &found, nil
}

func (r *rotationUserRepo) UpdateRefreshToken(_ context.Context, id uuid.UUID, token *string) error {
	if id != r.user.ID {
		return repository.ErrUserNotFound
	}
	r.user.RefreshToken = token

	return nil
}

func (r *rotationUserRepo) FindByID(context.Context, uuid.UUID) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (r *rotationUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (r *rotationUserRepo) Create(context.Context, *entity.User) error {
	return nil
}

func (r *rotationUserRepo) MarkConfirmed(context.Context, uuid.UUID) error {
	return nil
}

func (r *rotationUserRepo) UpdateAvatar(context.Context, uuid.UUID, string) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func TestAuthService_Refresh_ReuseDetectionClearIsDurable(t *testing.T) {
	ctx := context.Background()

	// The stored token has rotated to refresh-2; refresh-1 is a replay.
	stored := "refresh-2"
	user := confirmedUser("alice@example.com")
	user.RefreshToken = &stored
	dir := &rotationDirectory{user: user}

	tokenCodec := mockSvc.NewMockTokenCodec(t)
	authService := NewAuthService(AuthServiceParams{
		TxManager:      &rotationTxManager{dir: dir},
		UserRepo:       mockRepo.NewMockUserRepository(t),
		Hasher:         mockSvc.NewMockPasswordHasher(t),
		TokenCodec:     tokenCodec,
		IdentityCache:  mockSvc.NewMockIdentityCache(t),
		MailDispatcher: mockSvc.NewMockMailDispatcher(t),
		AvatarResolver: mockSvc.NewMockAvatarResolver(t),
		Logger:         newDiscardLogger(),
	})

	tokenCodec.EXPECT().
		Decode("refresh-1", service.ScopeRefresh).
		Return(&service.TokenClaims{Subject: "alice@example.com", Scope: service.ScopeRefresh}, nil)

	_, err := authService.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-1"})
	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenStale)

	// The clear must survive the failed call: a rollback here would leave
	// the replayed session's live token usable.
	assert.Nil(t, dir.user.RefreshToken)

	// The superseded current token is rejected against the cleared slot.
	tokenCodec.EXPECT().
		Decode("refresh-2", service.ScopeRefresh).
		Return(&service.TokenClaims{Subject: "alice@example.com", Scope: service.ScopeRefresh}, nil)

	_, err = authService.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-2"})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenStale)
	assert.Nil(t, dir.user.RefreshToken)
}

func TestAuthService_Refresh_DecodeErrorPropagates(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.tokenCodec.EXPECT().
		Decode("access-as-refresh", service.ScopeRefresh).
		Return(nil, domainerrors.ErrTokenScopeMismatch)

	_, err := fixtures.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "access-as-refresh"})

	assert.ErrorIs(t, err, domainerrors.ErrTokenScopeMismatch)
	fixtures.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAuthService_Refresh_UnknownSubject(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.tokenCodec.EXPECT().
		Decode("refresh-1", service.ScopeRefresh).
		Return(&service.TokenClaims{Subject: "ghost@example.com", Scope: service.ScopeRefresh}, nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		FindByEmailForUpdate(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	runRefreshTransaction(t, fixtures, ctx, txUserRepo)

	_, err := fixtures.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-1"})

	assert.ErrorIs(t, err, domainerrors.ErrUnknownIdentity)
}

func TestAuthService_ResolveCaller_CacheHit(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	cached := confirmedUser("alice@example.com")

	fixtures.tokenCodec.EXPECT().
		Decode("access-1", service.ScopeAccess).
		Return(&service.TokenClaims{Subject: "alice@example.com", Scope: service.ScopeAccess}, nil)
	fixtures.identityCache.EXPECT().Get(ctx, "alice@example.com").Return(cached, true)

	user, err := fixtures.service.ResolveCaller(ctx, "access-1")

	require.NoError(t, err)
	assert.Same(t, cached, user)
	fixtures.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestAuthService_ResolveCaller_CacheMissPopulates(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := confirmedUser("alice@example.com")

	fixtures.tokenCodec.EXPECT().
		Decode("access-1", service.ScopeAccess).
		Return(&service.TokenClaims{Subject: "alice@example.com", Scope: service.ScopeAccess}, nil)
	fixtures.identityCache.EXPECT().Get(ctx, "alice@example.com").Return(nil, false)
	fixtures.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fixtures.identityCache.EXPECT().Put(ctx, user).Return()

	resolved, err := fixtures.service.ResolveCaller(ctx, "access-1")

	require.NoError(t, err)
	assert.Same(t, user, resolved)
}

func TestAuthService_ResolveCaller_WrongScopeIsUnauthenticated(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.tokenCodec.EXPECT().
		Decode("refresh-1", service.ScopeAccess).
		Return(nil, domainerrors.ErrTokenScopeMismatch)

	_, err := fixtures.service.ResolveCaller(ctx, "refresh-1")

	// Decode details collapse to a single Unauthenticated outcome.
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	assert.NotErrorIs(t, err, domainerrors.ErrTokenScopeMismatch)
}

func TestAuthService_ResolveCaller_UnknownSubject(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.tokenCodec.EXPECT().
		Decode("access-1", service.ScopeAccess).
		Return(&service.TokenClaims{Subject: "ghost@example.com", Scope: service.ScopeAccess}, nil)
	fixtures.identityCache.EXPECT().Get(ctx, "ghost@example.com").Return(nil, false)
	fixtures.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fixtures.service.ResolveCaller(ctx, "access-1")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthService_RequestConfirmation_SendsMail(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := confirmedUser("alice@example.com")
	user.Confirmed = false

	mailSent := make(chan struct{})

	fixtures.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fixtures.tokenCodec.EXPECT().Issue("alice@example.com", service.ScopeEmail).Return("email-token", nil)
	fixtures.mailDispatcher.EXPECT().
		SendConfirmation(mock.Anything, "alice@example.com", "alice", "email-token").
		Run(func(_ context.Context, _, _, _ string) {
			close(mailSent)
		}).
		Return(nil)

	output, err := fixtures.service.RequestConfirmation(ctx, "alice@example.com")

	require.NoError(t, err)
	assert.False(t, output.AlreadyConfirmed)

	waitForCall(t, mailSent)
}

func TestAuthService_RequestConfirmation_AlreadyConfirmed(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(confirmedUser("alice@example.com"), nil)

	output, err := fixtures.service.RequestConfirmation(ctx, "alice@example.com")

	require.NoError(t, err)
	assert.True(t, output.AlreadyConfirmed)
	fixtures.mailDispatcher.AssertNotCalled(t, "SendConfirmation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ConfirmEmail_MarksConfirmed(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	user := confirmedUser("alice@example.com")
	user.Confirmed = false

	fixtures.tokenCodec.EXPECT().
		Decode("email-token", service.ScopeEmail).
		Return(&service.TokenClaims{Subject: "alice@example.com", Scope: service.ScopeEmail}, nil)
	fixtures.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fixtures.userRepo.EXPECT().MarkConfirmed(ctx, user.ID).Return(nil)
	fixtures.identityCache.EXPECT().
		Put(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, cached *entity.User) {
			assert.True(t, cached.Confirmed)
		}).
		Return()

	output, err := fixtures.service.ConfirmEmail(ctx, "email-token")

	require.NoError(t, err)
	assert.False(t, output.AlreadyConfirmed)
}

func TestAuthService_ConfirmEmail_Idempotent(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.tokenCodec.EXPECT().
		Decode("email-token", service.ScopeEmail).
		Return(&service.TokenClaims{Subject: "alice@example.com", Scope: service.ScopeEmail}, nil)
	fixtures.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(confirmedUser("alice@example.com"), nil)

	output, err := fixtures.service.ConfirmEmail(ctx, "email-token")

	require.NoError(t, err)
	assert.True(t, output.AlreadyConfirmed)
	fixtures.userRepo.AssertNotCalled(t, "MarkConfirmed", mock.Anything, mock.Anything)
}

func TestAuthService_ConfirmEmail_BadToken(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.tokenCodec.EXPECT().
		Decode("access-1", service.ScopeEmail).
		Return(nil, domainerrors.ErrTokenScopeMismatch)

	_, err := fixtures.service.ConfirmEmail(ctx, "access-1")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidConfirmationToken)
}
