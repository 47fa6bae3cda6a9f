package service

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost fixes the hashing work factor. Changing it only affects newly
// created hashes; verification reads the cost from the hash itself.
const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)

// HashPassword hashes a plaintext password with bcrypt. The returned string
// encodes algorithm, cost, and salt alongside the digest.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash. A malformed hash or
// any internal bcrypt failure yields false, never an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// PasswordStrengthIssues returns every strength rule the password violates:
// minimum 8 characters, at least one uppercase letter, one lowercase letter,
// and one digit. An empty slice means the password is acceptable.
func PasswordStrengthIssues(password string) []string {
	var issues []string
	if len(password) < 8 {
		issues = append(issues, "at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasUpper {
		issues = append(issues, "at least one uppercase letter")
	}
	if !hasLower {
		issues = append(issues, "at least one lowercase letter")
	}
	if !hasDigit {
		issues = append(issues, "at least one number")
	}
	return issues
}

// ValidEmail reports whether email matches the accepted address format.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidUsername reports whether username is 3-30 characters of letters,
// digits, and underscores.
func ValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}
