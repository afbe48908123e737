package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/flightbooking/internal/auth"
	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/repository"
)

// ErrInvalidCredentials covers both unknown username and wrong password so
// a caller cannot probe which usernames exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthUseCase interface {
	Signup(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// Issuer is the credential side the service needs; satisfied by *auth.Tokens.
type Issuer interface {
	Issue(claims map[string]any) (string, error)
}

type AuthService struct {
	users      repository.UserRepository
	issuer     Issuer
	bcryptCost int
}

func NewAuthService(users repository.UserRepository, issuer Issuer, bcryptCost int) *AuthService {
	return &AuthService{users: users, issuer: issuer, bcryptCost: bcryptCost}
}

func (s *AuthService) Signup(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" {
		return nil, errors.New("username is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{Username: username, Password: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !auth.VerifyPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(map[string]any{"user_id": user.ID})
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

var _ AuthUseCase = (*AuthService)(nil)
