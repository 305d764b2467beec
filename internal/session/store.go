// Package session owns the server-side session records backing the login
// cookie. No other component mutates session state directly.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a token resolves to no live session.
var ErrNotFound = errors.New("session not found")

// Data is the server-side session record bound to an opaque token.
type Data struct {
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store persists sessions keyed by opaque token. Sessions expire on the
// fixed TTL given at Save; reads never extend it. Implementations must make
// Destroy final: a destroyed token resolves to ErrNotFound from then on.
type Store interface {
	Get(ctx context.Context, token string) (*Data, error)
	Save(ctx context.Context, token string, data Data, ttl time.Duration) error
	Destroy(ctx context.Context, token string) error
}
