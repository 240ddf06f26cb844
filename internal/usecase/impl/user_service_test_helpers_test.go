package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"passport/internal/domain/entity"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, encodedHash string) bool {
	args := m.Called(password, encodedHash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(subject string) (string, error) {
	args := m.Called(subject)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTokenService) AccessTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockUserRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := &mockUserRepository{}
	hasher := &mockPasswordHasher{}
	tokenService := &mockTokenService{}

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	t.Cleanup(func() {
		userRepo.AssertExpectations(t)
		hasher.AssertExpectations(t)
		tokenService.AssertExpectations(t)
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}
