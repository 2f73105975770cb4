package auth

import (
	"testing"

	"github.com/metrika-dev/metrika/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUserStore struct {
	users map[string]*models.User
}

func (s *memoryUserStore) FindByUsername(username string) (*models.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func newTestStore(t *testing.T) *memoryUserStore {
	t.Helper()

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	return &memoryUserStore{users: map[string]*models.User{
		"admin": {
			Username:     "admin",
			PasswordHash: hash,
		},
		"ghost": {
			Username:     "ghost",
			PasswordHash: hash,
			Disabled:     true,
		},
	}}
}

func TestAuthenticate(t *testing.T) {
	store := newTestStore(t)

	user, err := Authenticate(store, "admin", "correct horse")

	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	store := newTestStore(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"unknown user", "nobody", "correct horse"},
		{"wrong password", "admin", "incorrect horse"},
		{"disabled user", "ghost", "correct horse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Authenticate(store, tt.username, tt.password)

			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-value")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-value", hash)

	assert.True(t, CheckPassword(hash, "s3cret-value"))
	assert.False(t, CheckPassword(hash, "other-value"))
}
