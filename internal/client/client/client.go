package client

import (
	"context"

	"github.com/dmitrijs2005/siteadmin/internal/client/models"
)

// Client is the users API as the controllers see it.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) error
	// UpdateUser addresses the user by the ID inside the body, not the path.
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, id models.ID) error
}

// TokenSource supplies the bearer token attached to outgoing requests.
// An empty token means no Authorization header is sent.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
