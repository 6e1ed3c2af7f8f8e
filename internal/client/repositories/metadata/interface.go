// Package metadata is the local key/value store backing client state that
// must survive restarts, such as the session token.
package metadata

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("metadata key not found")

type Repository interface {
	// Get returns ErrNotFound when key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete is idempotent.
	Delete(ctx context.Context, key string) error
}
