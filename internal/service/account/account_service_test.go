package account

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/mybooking/internal/auth"
	"github.com/Domenick1991/mybooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newTestService(repo *MockUserRepository) *AccountService {
	return NewAccountService(repo, auth.NewBcryptHasher(bcrypt.MinCost))
}

func TestAccountService_Register_Success(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := newTestService(mockRepo)

	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		// email is normalized and the digest is never the plain password
		return u.Email == "juan@example.com" && u.PasswordHash != "" && u.PasswordHash != "secret"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 7
	}).Return(nil).Once()

	id, err := service.Register(ctx, RegisterInput{
		FullName: "Juan Perez",
		Email:    "  Juan@Example.com ",
		Password: "secret",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)

	mockRepo.AssertExpectations(t)
}

func TestAccountService_Register_MissingFields(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := newTestService(mockRepo)

	ctx := context.Background()

	testCases := []struct {
		name  string
		input RegisterInput
	}{
		{"no name", RegisterInput{Email: "juan@example.com", Password: "secret"}},
		{"no email", RegisterInput{FullName: "Juan Perez", Password: "secret"}},
		{"no password", RegisterInput{FullName: "Juan Perez", Email: "juan@example.com"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Register(ctx, tc.input)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}

	mockRepo.AssertNotCalled(t, "Create")
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := newTestService(mockRepo)

	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrEmailTaken).Once()

	_, err := service.Register(ctx, RegisterInput{
		FullName: "Juan Perez",
		Email:    "juan@example.com",
		Password: "secret",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	mockRepo.AssertExpectations(t)
}

func TestAccountService_Login_Success(t *testing.T) {
	mockRepo := &MockUserRepository{}
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	service := NewAccountService(mockRepo, hasher)

	ctx := context.Background()

	hash, err := hasher.Hash("secret")
	assert.NoError(t, err)

	stored := &domain.User{ID: 7, FullName: "Juan Perez", Email: "juan@example.com", PasswordHash: hash}
	mockRepo.On("GetByEmail", ctx, "juan@example.com").Return(stored, nil).Once()

	user, err := service.Login(ctx, "juan@example.com", "secret")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)

	mockRepo.AssertExpectations(t)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	mockRepo := &MockUserRepository{}
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	service := NewAccountService(mockRepo, hasher)

	ctx := context.Background()

	hash, err := hasher.Hash("secret")
	assert.NoError(t, err)

	stored := &domain.User{ID: 7, Email: "juan@example.com", PasswordHash: hash}
	mockRepo.On("GetByEmail", ctx, "juan@example.com").Return(stored, nil).Once()

	user, err := service.Login(ctx, "juan@example.com", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := newTestService(mockRepo)

	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrUserNotFound).Once()

	user, err := service.Login(ctx, "ghost@example.com", "secret")

	// unknown email is indistinguishable from a bad password
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestAccountService_Login_RepositoryError(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := newTestService(mockRepo)

	ctx := context.Background()

	expectedErr := errors.New("database error")
	mockRepo.On("GetByEmail", ctx, "juan@example.com").Return(nil, expectedErr).Once()

	user, err := service.Login(ctx, "juan@example.com", "secret")

	assert.Equal(t, expectedErr, err)
	assert.Nil(t, user)
}
