package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotJWT = errors.New("token is not a JWT")

// Claims are the display hints carried by a JWT session token.
type Claims struct {
	Subject   string
	Username  string
	ExpiresAt time.Time
}

// Name picks the best display name: username claim, then subject.
func (c Claims) Name() string {
	if c.Username != "" {
		return c.Username
	}
	return c.Subject
}

// ParseClaims decodes token without verifying its signature. The result is
// for display only and must never be used to decide whether the session is
// valid. Opaque, non-JWT tokens yield ErrNotJWT.
func ParseClaims(token string) (Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return Claims{}, errors.Join(ErrNotJWT, err)
	}

	var c Claims
	c.Subject, _ = mc.GetSubject()
	if u, ok := mc["username"].(string); ok {
		c.Username = u
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}
