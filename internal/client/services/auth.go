// Package services holds the controllers behind the client's views: the
// users list with its edit form, login, registration, and the contact form.
// Every controller reports the outcome of a remote call through a
// notify.Notifier and logs failures; callers still get the error back.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/siteadmin/internal/client/client"
	"github.com/dmitrijs2005/siteadmin/internal/client/forms"
	"github.com/dmitrijs2005/siteadmin/internal/client/notify"
	"github.com/dmitrijs2005/siteadmin/internal/client/session"
	"github.com/dmitrijs2005/siteadmin/internal/logging"
)

var errSaveSession = errors.New("saving session")

// AuthService drives the login and registration forms and owns the
// session token.
type AuthService struct {
	client client.Client
	store  session.Store
	notes  notify.Notifier
	log    logging.Logger
}

func NewAuthService(c client.Client, store session.Store, n notify.Notifier, log logging.Logger) *AuthService {
	return &AuthService{client: c, store: store, notes: n, log: log.With("service", "auth")}
}

// Login submits the login form. A token in the response is persisted, with
// the username when the store can keep it. A successful response without a
// token still counts as logged in to the server but leaves the client
// unauthenticated. forms.ErrInvalid is returned without a notification.
func (a *AuthService) Login(ctx context.Context, form *forms.Form) error {
	var username string

	err := form.Submit(ctx, func(ctx context.Context, v forms.Values) error {
		creds := forms.CredentialsFrom(v)
		res, err := a.client.Login(ctx, creds)
		if err != nil {
			return err
		}
		username = creds.Username
		if res.Token == "" {
			a.log.Warn(ctx, "login response carried no token", "username", username)
			return nil
		}
		return a.save(ctx, res.Token, username)
	})

	switch {
	case err == nil:
		a.log.Info(ctx, "logged in", "username", username)
		a.notes.Show(notify.KindSuccess, TitleLoggedIn, MsgWelcome)
	case errors.Is(err, forms.ErrInvalid):
	case errors.Is(err, errSaveSession):
		a.log.Error(ctx, "login failed", "error", err)
		a.notes.Show(notify.KindError, TitleError, MsgSessionFailed)
	default:
		reportFailure(ctx, a.notes, a.log, TitleLoginFailed, "login", err, MsgLoginFailed)
	}
	return err
}

func (a *AuthService) save(ctx context.Context, token, username string) error {
	var err error
	if us, ok := a.store.(session.UserStore); ok {
		err = us.SetSession(ctx, token, username)
	} else {
		err = a.store.SetToken(ctx, token)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errSaveSession, err)
	}
	return nil
}

// Register submits the registration form. The confirmation field is not
// sent.
func (a *AuthService) Register(ctx context.Context, form *forms.Form) error {
	err := form.Submit(ctx, func(ctx context.Context, v forms.Values) error {
		return a.client.CreateUser(ctx, forms.UserFrom(v))
	})

	switch {
	case err == nil:
		a.log.Info(ctx, "registered")
		a.notes.Show(notify.KindSuccess, TitleRegistered, MsgRegistered)
	case errors.Is(err, forms.ErrInvalid):
	default:
		reportFailure(ctx, a.notes, a.log, TitleError, "register", err, MsgRegisterFailed)
	}
	return err
}

// Logout forgets the session token.
func (a *AuthService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		a.notes.Show(notify.KindError, TitleError, MsgSessionFailed)
		return err
	}
	a.notes.Show(notify.KindInfo, TitleLoggedOut, MsgLoggedOut)
	return nil
}

// Authenticated reports whether a session token is held.
func (a *AuthService) Authenticated(ctx context.Context) bool {
	return session.IsAuthenticated(ctx, a.store, a.log)
}
