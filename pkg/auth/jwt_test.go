package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	svc := NewTokenService([]byte("secret"), time.Hour)

	token, err := svc.Issue("alice@example.com")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestVerifyExpired(t *testing.T) {
	svc := NewTokenService([]byte("secret"), -time.Minute)

	token, err := svc.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("secret-a"), time.Hour)
	verifier := NewTokenService([]byte("secret-b"), time.Hour)

	token, err := issuer.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTampered(t *testing.T) {
	svc := NewTokenService([]byte("secret"), time.Hour)

	token, err := svc.Issue("alice@example.com")
	require.NoError(t, err)

	// flip one character in every segment; each must invalidate the token
	for _, i := range []int{len(token) / 4, len(token) / 2, len(token) - 2} {
		b := []byte(token)
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		_, err := svc.Verify(string(b))
		assert.ErrorIs(t, err, ErrInvalidToken, "mutated index %d", i)
	}
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewTokenService([]byte("secret"), time.Hour)

	for _, tok := range []string{"", "not-a-token", strings.Repeat("x", 200)} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
