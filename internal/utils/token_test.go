package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := NewBookingCode()
		require.NoError(t, err)
		assert.Regexp(t, `^[0-9A-F]{16}$`, code)
		assert.False(t, seen[code], "booking codes must not repeat")
		seen[code] = true
	}
}

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2026, 9, 10, 14, 30, 0, 0, time.UTC)
	num, err := NewOrderNumber(now)
	require.NoError(t, err)
	assert.Regexp(t, `^ORD-20260910-[0-9A-F]{8}$`, num)

	other, err := NewOrderNumber(now)
	require.NoError(t, err)
	assert.NotEqual(t, num, other)
}

func TestNewQRToken(t *testing.T) {
	tok, err := NewQRToken()
	require.NoError(t, err)
	// 32 bytes of unpadded base64url is always 43 characters.
	assert.Len(t, tok, 43)
	assert.Regexp(t, `^[A-Za-z0-9_-]+$`, tok)
}
