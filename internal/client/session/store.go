// Package session keeps the single authentication token of the client.
//
// Holding a non-empty token is the whole of being logged in: there is no
// expiry or validity check on the client side. A token revoked on the server
// is only noticed when the next API call fails.
package session

import (
	"context"

	"github.com/dmitrijs2005/siteadmin/internal/logging"
)

// TokenKey is the well-known key the token is persisted under.
const TokenKey = "token"

// UsernameKey remembers who logged in, for display only.
const UsernameKey = "username"

// Store is the persistence seam for the session token. Token returns ""
// with a nil error when no session exists.
type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// UserStore is implemented by stores that can also remember the username
// the token was issued to.
type UserStore interface {
	Store
	SetSession(ctx context.Context, token, username string) error
	Username(ctx context.Context) (string, error)
}

// IsAuthenticated reports whether s holds a non-empty token. A read error
// counts as logged out and is reported through log when log is non-nil.
func IsAuthenticated(ctx context.Context, s Store, log logging.Logger) bool {
	token, err := s.Token(ctx)
	if err != nil {
		if log != nil {
			log.Error(ctx, "reading session token", "error", err)
		}
		return false
	}
	return token != ""
}
