package user

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name         string
		username     string
		email        string
		passwordHash string
		wantErr      bool
		errMsg       string
	}{
		{
			name:         "valid user",
			username:     "alice",
			email:        "alice@example.com",
			passwordHash: "$2a$12$hash",
			wantErr:      false,
		},
		{
			name:         "valid user without email",
			username:     "bob_42",
			email:        "",
			passwordHash: "$2a$12$hash",
			wantErr:      false,
		},
		{
			name:         "username trimmed",
			username:     "  carol  ",
			email:        "",
			passwordHash: "$2a$12$hash",
			wantErr:      false,
		},
		{
			name:         "username too short",
			username:     "ab",
			passwordHash: "$2a$12$hash",
			wantErr:      true,
			errMsg:       "at least 3 characters",
		},
		{
			name:         "username too long",
			username:     strings.Repeat("a", MaxUsernameLength+1),
			passwordHash: "$2a$12$hash",
			wantErr:      true,
			errMsg:       "exceeds maximum length",
		},
		{
			name:         "username with invalid characters",
			username:     "alice smith",
			passwordHash: "$2a$12$hash",
			wantErr:      true,
			errMsg:       "may only contain",
		},
		{
			name:         "invalid email",
			username:     "alice",
			email:        "not-an-email",
			passwordHash: "$2a$12$hash",
			wantErr:      true,
			errMsg:       "invalid email",
		},
		{
			name:     "missing password hash",
			username: "alice",
			wantErr:  true,
			errMsg:   "password hash is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.username, tt.email, tt.passwordHash)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, u)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, u)
			assert.Equal(t, strings.TrimSpace(tt.username), u.Username())
			assert.Equal(t, tt.email, u.Email())
			assert.Equal(t, tt.passwordHash, u.PasswordHash())
			assert.False(t, u.CreatedAt().IsZero())
		})
	}
}

func TestUser_SetID(t *testing.T) {
	u, err := NewUser("alice", "", "$2a$12$hash")
	require.NoError(t, err)

	require.NoError(t, u.SetID(3))
	assert.Equal(t, uint(3), u.ID())

	err = u.SetID(4)
	require.Error(t, err)
	assert.Equal(t, uint(3), u.ID())
}

func TestUser_UpdateEmail(t *testing.T) {
	u, err := NewUser("alice", "alice@example.com", "$2a$12$hash")
	require.NoError(t, err)

	require.NoError(t, u.UpdateEmail("new@example.com"))
	assert.Equal(t, "new@example.com", u.Email())

	require.NoError(t, u.UpdateEmail(""))
	assert.Equal(t, "", u.Email())

	err = u.UpdateEmail("bogus")
	require.Error(t, err)
	assert.Equal(t, "", u.Email())
}

func TestUser_ChangePasswordHash(t *testing.T) {
	u, err := NewUser("alice", "", "$2a$12$old")
	require.NoError(t, err)

	require.NoError(t, u.ChangePasswordHash("$2a$12$new"))
	assert.Equal(t, "$2a$12$new", u.PasswordHash())

	err = u.ChangePasswordHash("")
	require.Error(t, err)
	assert.Equal(t, "$2a$12$new", u.PasswordHash())
}

func TestReconstructUser(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	u, err := ReconstructUser(8, "alice", "alice@example.com", "$2a$12$hash", createdAt, createdAt)
	require.NoError(t, err)
	assert.Equal(t, uint(8), u.ID())
	assert.Equal(t, "alice", u.Username())

	_, err = ReconstructUser(0, "alice", "", "", createdAt, createdAt)
	require.Error(t, err)

	_, err = ReconstructUser(8, "", "", "", createdAt, createdAt)
	require.Error(t, err)
}
