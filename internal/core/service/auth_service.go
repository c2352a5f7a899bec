package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/kitenge-atelier/storefront/internal/core/domain"
	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

// AuthService authenticates the single admin account. The account lives in
// the user collection with a bcrypt hash as its stored password.
type AuthService struct {
	users         ports.UserRepository
	tokens        ports.TokenAuthority
	adminUsername string
	logger        zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenAuthority, adminUsername string, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, adminUsername: adminUsername, logger: logger}
}

// EnsureAdmin creates the admin account unless a user with that username
// already exists. The existing record's password is left as is.
func (s *AuthService) EnsureAdmin(ctx context.Context, password string) (*domain.User, error) {
	existing, err := s.users.GetUserByUsername(ctx, s.adminUsername)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, domain.NewUser{Username: s.adminUsername, Password: string(hash)})
	if err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	s.logger.Info().Str("username", user.Username).Msg("admin account created")
	return user, nil
}

// Login checks the credential pair and issues a bearer token. Every mismatch,
// including an unknown username, is reported as domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *ports.AdminIdentity, error) {
	if username == "" || password == "" || username != s.adminUsername {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Msg("admin login")
	return token, adminIdentity(user.Username), nil
}

// Authenticate resolves a bearer token to the admin identity.
func (s *AuthService) Authenticate(token string) (*ports.AdminIdentity, error) {
	username, err := s.tokens.Verify(token)
	if err != nil || username != s.adminUsername {
		return nil, domain.ErrUnauthorized
	}
	return adminIdentity(username), nil
}

func adminIdentity(username string) *ports.AdminIdentity {
	return &ports.AdminIdentity{Username: username, IsAdmin: true}
}
