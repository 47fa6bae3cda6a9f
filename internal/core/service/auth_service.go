package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskvault/task-api/internal/core/domain"
	"github.com/taskvault/task-api/internal/core/ports"
)

// AuthService implements registration, login, and profile lookup.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Register creates a new account. Email uniqueness is case-insensitive,
// username uniqueness case-sensitive. The password arrives pre-checked for
// strength by the request schema; format rules are enforced here.
func (s *AuthService) Register(ctx context.Context, email, username, password string) (*domain.User, error) {
	if !ValidEmail(email) {
		return nil, domain.NewValidationError("Invalid email format")
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		s.logger.Warn().Str("email", email).Msg("registration attempt with duplicate email")
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if !ValidUsername(username) {
		return nil, domain.NewValidationError("Username must be 3-30 characters and contain only letters, numbers, and underscores")
	}
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		s.logger.Warn().Str("username", username).Msg("registration attempt with duplicate username")
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID.String()).Str("email", user.Email).Msg("new user registered")
	return user, nil
}

// Login authenticates by email (case-insensitive) and password. An unknown
// email and a wrong password produce the same ErrInvalidCredentials so the
// response never reveals whether the account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn().Str("email", email).Msg("login attempt with unknown email")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		s.logger.Warn().Str("user_id", user.ID.String()).Msg("failed login attempt")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user logged in")
	return token, user, nil
}

// GetUser loads a user by id.
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}
