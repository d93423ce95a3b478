// Package auth implements password hashing, session-token issuance and
// verification, and the request guard for protected endpoints.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entities"
)

var (
	ErrEmailInvalid       = errors.New("Valid email required")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUserNotFound       = errors.New("User not found")
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	CreateUser(email, passwordHash string) (*entities.User, error)
	GetUserByID(id uint) (*entities.User, error)
	GetUserByEmail(email string) (*entities.User, error)
}

// Service handles registration and login.
type Service struct {
	users  UserRepository
	tokens *TokenService
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(users UserRepository, tokens *TokenService, cfg config.Auth) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		config: cfg,
	}
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user and issues a session token for it.
func (s *Service) Register(email, password string) (*entities.User, string, error) {
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", ErrEmailInvalid
	}
	if len(password) < MinPasswordLength {
		return nil, "", ErrPasswordTooShort
	}

	_, err := s.users.GetUserByEmail(email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}

	passwordHash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.CreateUser(email, passwordHash)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// Login validates credentials and issues a session token. Unknown email and
// wrong password are indistinguishable to the caller. The bcrypt comparison
// is skipped for unknown emails, so the two cases are not timing-equalized.
func (s *Service) Login(email, password string) (*entities.User, string, error) {
	user, err := s.users.GetUserByEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}
