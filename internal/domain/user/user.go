package user

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"revu/internal/shared/biztime"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 32
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// User is an account that can own tickets and reviews and hold
// follow/block relations to other accounts.
type User struct {
	id           uint
	username     string
	email        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, email, passwordHash string) (*User, error) {
	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if email != "" && !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	email string,
	passwordHash string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func validateUsername(username string) error {
	if len(username) < MinUsernameLength {
		return fmt.Errorf("username must be at least %d characters", MinUsernameLength)
	}
	if len(username) > MaxUsernameLength {
		return fmt.Errorf("username exceeds maximum length of %d characters", MaxUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("username may only contain letters, digits, '_', '.' and '-'")
	}
	return nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) UpdateEmail(email string) error {
	if email != "" && !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address")
	}

	u.email = email
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) ChangePasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}

	u.passwordHash = passwordHash
	u.updatedAt = biztime.NowUTC()
	return nil
}
