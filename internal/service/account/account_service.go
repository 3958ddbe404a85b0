package account

import (
	"context"
	"errors"
	"strings"

	"github.com/Domenick1991/mybooking/internal/auth"
	"github.com/Domenick1991/mybooking/internal/domain"
	"github.com/Domenick1991/mybooking/internal/repository"
)

// ErrMissingFields is returned when name, email or password is absent.
var ErrMissingFields = errors.New("missing required fields")

type AccountUseCase interface {
	Register(ctx context.Context, input RegisterInput) (int64, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

type RegisterInput struct {
	FullName       string
	Email          string
	Password       string
	TravelDocument *string
}

type AccountService struct {
	users  repository.UserRepository
	hasher auth.PasswordHasher
}

func NewAccountService(users repository.UserRepository, hasher auth.PasswordHasher) *AccountService {
	return &AccountService{users: users, hasher: hasher}
}

func (s *AccountService) Register(ctx context.Context, input RegisterInput) (int64, error) {
	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return 0, ErrMissingFields
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return 0, err
	}

	user := &domain.User{
		FullName:       input.FullName,
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash:   hash,
		TravelDocument: input.TravelDocument,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Login returns the user iff the password's digest matches the stored
// one. Unknown email and digest mismatch are indistinguishable to the
// caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

var _ AccountUseCase = (*AccountService)(nil)
