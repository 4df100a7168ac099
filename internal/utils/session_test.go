package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundtrip(t *testing.T) {
	token, exp, err := NewSessionToken("top-secret", "admin@museum.example", 30)
	require.NoError(t, err)
	assert.False(t, exp.IsZero())

	email, err := ParseSessionToken("top-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "admin@museum.example", email)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, _, err := NewSessionToken("top-secret", "admin@museum.example", 30)
	require.NoError(t, err)

	_, err = ParseSessionToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionTokenExpired(t *testing.T) {
	token, _, err := NewSessionToken("top-secret", "admin@museum.example", -5)
	require.NoError(t, err)

	_, err = ParseSessionToken("top-secret", token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionTokenGarbage(t *testing.T) {
	_, err := ParseSessionToken("top-secret", "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("correct horse", 4)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "correct horse"))
	assert.False(t, VerifyPassword(hash, "wrong horse"))
}

func TestHashPasswordClampsInvalidCost(t *testing.T) {
	hash, err := HashPassword("battery staple", 99)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "battery staple"))
}
