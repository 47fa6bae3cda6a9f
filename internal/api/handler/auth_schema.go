package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskvault/task-api/internal/core/domain"
)

// --- Request types ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,strongpassword"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Response types ---

// userProfile is the public account representation. It intentionally carries
// no password hash and no updated_at.
type userProfile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        userProfile `json:"user"`
}

type logoutResponse struct {
	Message string `json:"message"`
}

func toUserProfile(u *domain.User) userProfile {
	return userProfile{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
