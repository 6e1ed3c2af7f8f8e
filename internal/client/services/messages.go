package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/siteadmin/internal/client/client"
	"github.com/dmitrijs2005/siteadmin/internal/client/notify"
	"github.com/dmitrijs2005/siteadmin/internal/logging"
)

// Notification titles.
const (
	TitleError           = "Error"
	TitleConnection      = "Connection error"
	TitleSessionRejected = "Session rejected"
	TitleDeleted         = "Deleted"
	TitleUpdated         = "Updated"
	TitleLoggedIn        = "Logged in"
	TitleLoginFailed     = "Login failed"
	TitleRegistered      = "Registered"
	TitleLoggedOut       = "Logged out"
	TitleMessageSent     = "Message sent"
)

// Notification messages.
const (
	MsgUnreachable    = "Cannot reach the server"
	MsgLoadFailed     = "Failed to load users"
	MsgDeleteFailed   = "Could not delete user"
	MsgUpdateFailed   = "Could not update user"
	MsgDeleted        = "The user has been deleted"
	MsgUpdated        = "The user has been updated"
	MsgMissingID      = "A user id is required"
	MsgLoginFailed    = "Invalid username or password"
	MsgWelcome        = "Welcome back"
	MsgRegistered     = "Registration complete"
	MsgRegisterFailed = "Could not register"
	MsgLoggedOut      = "Your session has been closed"
	MsgSendFailed     = "Could not send message"
	MsgThanks         = "Thank you for getting in touch. We will reply within 24 hours"
	MsgSessionFailed  = "Could not save the session"
)

// ErrMissingID is returned when an update or delete names no user.
var ErrMissingID = errors.New("user id is required")

// answered reports whether err is the server's reply rather than a failure
// to talk to it.
func answered(err error) bool {
	return client.IsAPIError(err) || errors.Is(err, client.ErrBadResponse)
}

// userTitle is the notification title for a failed users API call.
func userTitle(err error) string {
	if errors.Is(err, client.ErrUnauthorized) {
		return TitleSessionRejected
	}
	return TitleError
}

// reportFailure logs err and shows one error notification: the backend's
// message when it sent one, fallback for any other reply, and
// MsgUnreachable when the server was never reached.
func reportFailure(ctx context.Context, n notify.Notifier, log logging.Logger, title, op string, err error, fallback string) {
	log.Error(ctx, op+" failed", "error", err)

	if !answered(err) {
		n.Show(notify.KindError, TitleConnection, MsgUnreachable)
		return
	}

	msg := client.MessageOf(err)
	if msg == "" {
		msg = fallback
	}
	n.Show(notify.KindError, title, msg)
}
