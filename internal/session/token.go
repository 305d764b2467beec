package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// TokenCodec issues and verifies signed opaque session tokens. The cookie
// value is "<random>.<hmac>"; the signature is checked before any store
// lookup so forged cookies never reach the backend.
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec builds a codec for the given signing secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Issue generates a fresh random token and its signed cookie value.
func (c *TokenCodec) Issue() (token, cookieValue string, err error) {
	if len(c.secret) == 0 {
		return "", "", fmt.Errorf("session signing secret missing")
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("generate session token: %w", err)
	}
	token = base64.RawURLEncoding.EncodeToString(buf)
	return token, token + "." + c.sign(token), nil
}

// Verify checks the cookie value signature and returns the embedded token.
func (c *TokenCodec) Verify(cookieValue string) (string, error) {
	token, signature, found := strings.Cut(cookieValue, ".")
	if !found || token == "" {
		return "", fmt.Errorf("malformed session cookie")
	}
	expected := c.sign(token)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return "", fmt.Errorf("invalid session cookie signature")
	}
	return token, nil
}

func (c *TokenCodec) sign(token string) string {
	mac := hmac.New(sha256.New, c.secret)
	_, _ = mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
