package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infogen87/myportfolio/internal/repository"
	"github.com/infogen87/myportfolio/internal/token"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepo) {
	t.Helper()
	gormDB := newTestDB(t)
	users := repository.NewUserRepo(gormDB)
	tokens, err := token.New("test-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)
	return NewAuthService(users, tokens), users
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register("alice", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "password123", user.PasswordHash)

	t.Run("CorrectPassword", func(t *testing.T) {
		got, err := svc.Authenticate("alice", "password123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Authenticate("alice", "password124")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		_, err := svc.Authenticate("bob", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		_, err := svc.Register("alice", "anotherpass")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestLoginResolveRoundTrip(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register("alice", "password123")
	require.NoError(t, err)

	tok, err := svc.Login("alice", "password123")
	require.NoError(t, err)

	resolved, err := svc.ResolveToken(tok, time.Now())
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)

	t.Run("InvalidToken", func(t *testing.T) {
		_, err := svc.ResolveToken("not-a-token", time.Now())
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		_, err := svc.ResolveToken(tok, time.Now().Add(31*time.Minute))
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("DeletedUserStillVerifiesButResolvesNotFound", func(t *testing.T) {
		require.NoError(t, svc.DeleteUser(user.ID))
		_, err := svc.ResolveToken(tok, time.Now())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateUser(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register("alice", "password123")
	require.NoError(t, err)

	t.Run("UsernameOnly", func(t *testing.T) {
		name := "alice2"
		updated, err := svc.UpdateUser(user.ID, &name, nil)
		require.NoError(t, err)
		assert.Equal(t, "alice2", updated.Username)
		assert.Equal(t, user.PasswordHash, updated.PasswordHash)

		_, err = svc.Authenticate("alice2", "password123")
		require.NoError(t, err)
	})

	t.Run("PasswordRehashed", func(t *testing.T) {
		pass := "newpassword"
		updated, err := svc.UpdateUser(user.ID, nil, &pass)
		require.NoError(t, err)
		assert.NotEqual(t, user.PasswordHash, updated.PasswordHash)

		_, err = svc.Authenticate("alice2", "newpassword")
		require.NoError(t, err)
		_, err = svc.Authenticate("alice2", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("MissingUser", func(t *testing.T) {
		name := "ghost"
		_, err := svc.UpdateUser("00000000-0000-0000-0000-000000000000", &name, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
