package utils // package utils provides helpers for code, token and session generation

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// NewBookingCode returns a fresh booking code: 8 random bytes rendered as
// 16 uppercase hexadecimal characters.
func NewBookingCode() (string, error) {
	raw, err := randomHex(8)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(raw), nil
}

// NewOrderNumber builds an order number of the shape
// ORD-<YYYYMMDD>-<8 uppercase hex chars>, where the date part is the
// given creation time and the suffix comes from 4 random bytes.
func NewOrderNumber(now time.Time) (string, error) {
	suffix, err := randomHex(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), strings.ToUpper(suffix)), nil
}

// NewQRToken returns the opaque order-retrieval token: 32 random bytes in
// unpadded base64url, safe to embed in the /qr/<token> path.
func NewQRToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
