package service

import (
	"strings"
	"testing"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("MyPassword123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "MyPassword123" {
		t.Fatalf("expected password to be hashed")
	}
	if !strings.HasPrefix(hash, "$2a$12$") && !strings.HasPrefix(hash, "$2b$12$") {
		t.Fatalf("expected bcrypt hash with cost 12, got %q", hash[:7])
	}

	if !VerifyPassword("MyPassword123", hash) {
		t.Fatalf("correct password did not verify")
	}
	if VerifyPassword("WrongPassword1", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	if VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash verified")
	}
	if VerifyPassword("anything", "") {
		t.Fatalf("empty hash verified")
	}
}

func TestPasswordStrengthIssues(t *testing.T) {
	tests := []struct {
		name     string
		password string
		issues   int
	}{
		{"valid", "MyPassword123", 0},
		{"exactly eight chars", "Abcdef12", 0},
		{"too short", "Ab1", 1},
		{"missing uppercase", "mypassword123", 1},
		{"missing lowercase", "MYPASSWORD123", 1},
		{"missing digit", "MyPassword", 1},
		{"everything wrong", "abc", 3},
		{"empty", "", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PasswordStrengthIssues(tt.password)
			if len(got) != tt.issues {
				t.Fatalf("expected %d issues, got %d: %v", tt.issues, len(got), got)
			}
		})
	}
}

func TestPasswordStrengthIssues_ReportsAllViolations(t *testing.T) {
	issues := PasswordStrengthIssues("abc")
	joined := strings.Join(issues, "; ")
	for _, want := range []string{"8 characters", "uppercase", "number"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected issue mentioning %q, got %v", want, issues)
		}
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"alice@example.com", "a.b+c@sub.domain.org", "USER@EXAMPLE.IO"}
	for _, e := range valid {
		if !ValidEmail(e) {
			t.Fatalf("expected %q to be valid", e)
		}
	}

	invalid := []string{"", "invalid-email", "a@b", "@example.com", "user@.com", "user@example."}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Fatalf("expected %q to be invalid", e)
		}
	}
}

func TestValidUsername(t *testing.T) {
	valid := []string{"alice_dev", "Bob", "ab_", "a1234567890123456789012345678b"}
	for _, u := range valid {
		if !ValidUsername(u) {
			t.Fatalf("expected %q to be valid", u)
		}
	}

	invalid := []string{"", "ab", "alice-dev", "alice dev", strings.Repeat("a", 31)}
	for _, u := range invalid {
		if ValidUsername(u) {
			t.Fatalf("expected %q to be invalid", u)
		}
	}
}
