package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"taskflow/internal/apperrors"
	"taskflow/internal/auth"
	"taskflow/internal/repository"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type AuthService struct {
	users  repository.UserRepositoryInterface
	tokens *auth.TokenManager
}

var _ AuthServiceInterface = (*AuthService)(nil)

func NewAuthService(users repository.UserRepositoryInterface, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login checks the credentials and issues a token whose subject is the
// user email. Unknown email and wrong password are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.tokens.GenerateToken(user.Email)
}
