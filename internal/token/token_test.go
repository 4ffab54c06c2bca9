package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		_, err := New("", "HS256", 30*time.Minute)
		assert.Error(t, err)
	})

	t.Run("UnknownAlgorithm", func(t *testing.T) {
		_, err := New("secret", "XS999", 30*time.Minute)
		assert.Error(t, err)
	})

	t.Run("NonHMACAlgorithm", func(t *testing.T) {
		_, err := New("secret", "RS256", 30*time.Minute)
		assert.Error(t, err)
	})

	t.Run("ZeroTTL", func(t *testing.T) {
		_, err := New("secret", "HS256", 0)
		assert.Error(t, err)
	})

	t.Run("Valid", func(t *testing.T) {
		svc, err := New("secret", "HS256", 30*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, svc.TTL())
	})
}

func TestIssueVerify(t *testing.T) {
	ttl := 30 * time.Minute
	svc, err := New("test-secret", "HS256", ttl)
	require.NoError(t, err)

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tok, err := svc.Issue("user-123", issuedAt)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	t.Run("ValidWithinWindow", func(t *testing.T) {
		for _, now := range []time.Time{
			issuedAt,
			issuedAt.Add(ttl / 2),
			issuedAt.Add(ttl - time.Second),
		} {
			sub, err := svc.Verify(tok, now)
			require.NoError(t, err)
			assert.Equal(t, "user-123", sub)
		}
	})

	t.Run("InvalidAtAndAfterExpiry", func(t *testing.T) {
		for _, now := range []time.Time{
			issuedAt.Add(ttl),
			issuedAt.Add(ttl + time.Second),
			issuedAt.Add(24 * time.Hour),
		} {
			_, err := svc.Verify(tok, now)
			assert.ErrorIs(t, err, ErrInvalidToken)
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other, err := New("other-secret", "HS256", ttl)
		require.NoError(t, err)
		_, err = other.Verify(tok, issuedAt)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongAlgorithm", func(t *testing.T) {
		hs512, err := New("test-secret", "HS512", ttl)
		require.NoError(t, err)
		_, err = hs512.Verify(tok, issuedAt)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, raw := range []string{"", "garbage", "a.b.c", tok + "tampered"} {
			_, err := svc.Verify(raw, issuedAt)
			assert.ErrorIs(t, err, ErrInvalidToken)
		}
	})
}
