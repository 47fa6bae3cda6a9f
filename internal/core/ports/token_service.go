package ports

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims is the verified payload of an access token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed access tokens.
type TokenService interface {
	Issue(userID uuid.UUID, email string) (string, error)
	// Verify checks signature and expiry. Expired, malformed, or forged
	// tokens yield a typed error, never a panic.
	Verify(token string) (*TokenClaims, error)
	// ExtractUserID composes Verify with subject parsing; any failure means
	// the caller must treat the request as unauthenticated.
	ExtractUserID(token string) (uuid.UUID, error)
}
