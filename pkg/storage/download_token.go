package storage

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DownloadTokenSigner issues and validates short-lived download tokens for
// stored document files. Tokens are signed JWTs binding the document id to
// the stored file path so a leaked link cannot be replayed for another file.
type DownloadTokenSigner struct {
	secret []byte
	ttl    time.Duration
}

type downloadClaims struct {
	FilePath string `json:"file_path"`
	jwt.RegisteredClaims
}

// NewDownloadTokenSigner constructs a signer with the provided secret and TTL.
func NewDownloadTokenSigner(secret string, ttl time.Duration) *DownloadTokenSigner {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &DownloadTokenSigner{secret: []byte(secret), ttl: ttl}
}

// Generate returns a signed token referencing the document and file path.
func (s *DownloadTokenSigner) Generate(documentID, filePath string) (string, time.Time, error) {
	if documentID == "" || filePath == "" {
		return "", time.Time{}, fmt.Errorf("documentID and filePath required")
	}
	if len(s.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("signing secret missing")
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)
	claims := downloadClaims{
		FilePath: filePath,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   documentID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign download token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse validates a token and returns the embedded document id and file path.
func (s *DownloadTokenSigner) Parse(token string) (documentID, filePath string, err error) {
	parsed, err := jwt.ParseWithClaims(token, &downloadClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("parse download token: %w", err)
	}

	claims, ok := parsed.Claims.(*downloadClaims)
	if !ok || !parsed.Valid {
		return "", "", fmt.Errorf("invalid download token claims")
	}
	return claims.Subject, claims.FilePath, nil
}
