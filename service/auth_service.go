package service

import (
	"context"
	"errors"
	"hbnb-api/logger"
	"hbnb-api/repository"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID string, isAdmin bool) (string, error)
}

type AuthService struct {
	users  repository.IUserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewAuthService(users repository.IUserRepository, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Login checks the credentials and returns a signed access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.CheckPasswordHash(password, user.Password) {
		logger.Log.WithField("user_id", user.ID).Warn("Login attempt with wrong password")
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.IsAdmin)
}
