package token

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	m, err := New(Config{Secret: "s3cret"})
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	tok, exp, err := m.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour), exp)

	claims, err := m.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.True(t, claims.ExpiresAt.Equal(exp))
}

func TestVerify_ExpiredAfter24h(t *testing.T) {
	m, err := New(Config{Secret: "s3cret"})
	require.NoError(t, err)

	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }
	tok, _, err := m.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(24*time.Hour + time.Minute) }
	_, err = m.Verify(context.Background(), tok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerify_WrongSecret(t *testing.T) {
	a, _ := New(Config{Secret: "a"})
	b, _ := New(Config{Secret: "b"})

	tok, _, err := a.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = b.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	m, _ := New(Config{Secret: "s3cret"})

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "user-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(context.Background(), unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Empty(t *testing.T) {
	m, _ := New(Config{Secret: "s3cret"})
	_, err := m.Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}

func TestNew_RequiresSecret(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
}
