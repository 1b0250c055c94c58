package account

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	MaxEmailLength = 254
	MaxNameLength  = 100

	minPasswordLength = 12
	bcryptCost        = 12

	maxFailedLogins = 5
	lockoutDuration = 15 * time.Minute
)

var (
	ErrInvalidEmail     = errors.New("email is malformed or too long")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 12 characters")
	ErrWrongPassword    = errors.New("password does not match")
)

// Account is an admin login. Failed login tracking drives a temporary
// lockout after repeated wrong passwords.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	FailedLogins int
	LockedUntil  time.Time
}

// Validate checks invariants and normalizes whitespace.
// PRE: none
// POST: On success, Email is trimmed, lowercased and well-formed, and
// Name is trimmed and non-empty
func (a *Account) Validate() error {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.Name = strings.TrimSpace(a.Name)
	if a.Email == "" {
		return ErrEmptyEmail
	}
	if len(a.Email) > MaxEmailLength || !strings.Contains(a.Email, "@") {
		return ErrInvalidEmail
	}
	if a.Name == "" || len(a.Name) > MaxNameLength {
		return ErrEmptyName
	}
	return nil
}

// SetPassword hashes and stores the password.
// PRE: none
// POST: On success, PasswordHash holds a bcrypt hash of password
func (a *Account) SetPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares a candidate password against the stored hash.
// PRE: PasswordHash is set
// POST: Returns nil on match, ErrWrongPassword otherwise
func (a *Account) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// IsLocked reports whether the account is currently locked out.
func (a *Account) IsLocked(now time.Time) bool {
	return now.Before(a.LockedUntil)
}

// RecordFailedLogin bumps the failure counter and locks the account
// once the limit is reached.
// PRE: none
// POST: FailedLogins is incremented; LockedUntil is set after the
// fifth consecutive failure
func (a *Account) RecordFailedLogin(now time.Time) {
	a.FailedLogins++
	if a.FailedLogins >= maxFailedLogins {
		a.LockedUntil = now.Add(lockoutDuration)
	}
}

// ResetFailedLogins clears the failure counter and any lockout.
func (a *Account) ResetFailedLogins() {
	a.FailedLogins = 0
	a.LockedUntil = time.Time{}
}
