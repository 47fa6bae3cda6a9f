package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taskvault/task-api/internal/core/ports"
)

var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("token invalid")

// TokenService issues and verifies HMAC-signed JWTs.
type TokenService struct {
	secret   []byte
	method   *jwt.SigningMethodHMAC
	tokenTTL time.Duration
	now      func() time.Time
}

// NewTokenService builds a TokenService. The secret must be at least 32
// characters; algorithm is one of HS256, HS384, HS512 (HS256 when empty).
func NewTokenService(secret, algorithm string, tokenTTL time.Duration) (*TokenService, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	var method *jwt.SigningMethodHMAC
	switch algorithm {
	case "", "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("unsupported jwt algorithm %q", algorithm)
	}

	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}

	return &TokenService{
		secret:   []byte(secret),
		method:   method,
		tokenTTL: tokenTTL,
		now:      time.Now,
	}, nil
}

type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Issue creates a signed token with subject, email, issued-at, and expiry
// claims. The token is valid for the configured lifetime.
func (s *TokenService) Issue(userID uuid.UUID, email string) (string, error) {
	now := s.now().UTC()
	claims := accessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(s.method, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the token claims.
// Only the configured signing method is accepted.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject claim", ErrTokenInvalid)
	}

	out := &ports.TokenClaims{UserID: uid, Email: claims.Email}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// ExtractUserID verifies the token and returns its subject. Any verification
// or parse failure means the caller is unauthenticated.
func (s *TokenService) ExtractUserID(token string) (uuid.UUID, error) {
	claims, err := s.Verify(token)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}
