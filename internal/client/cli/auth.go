package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/siteadmin/internal/client/forms"
	"github.com/dmitrijs2005/siteadmin/internal/client/guard"
	"github.com/dmitrijs2005/siteadmin/internal/client/session"
)

// loginView fills in the login form; on success it moves on to the home
// view.
func (a *App) loginView(ctx context.Context) error {
	if err := a.submitForm(ctx, forms.NewLoginForm(), a.auth.Login); err != nil {
		return err
	}
	return a.navigate(ctx, guard.Home)
}

func (a *App) registerView(ctx context.Context) error {
	if err := a.submitForm(ctx, forms.NewRegisterForm(), a.auth.Register); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "You can now log in with 'login'.")
	return nil
}

// Logout forgets the session token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.users.CloseEdit()
	a.confirm.Cancel()
	a.view = guard.ViewLogin
	return nil
}

// WhoAmI prints who the session belongs to and, for JWT tokens, when it
// expires.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	name := a.sessionName(ctx)
	if name == "" {
		name = "unknown user"
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", name)

	token, err := a.store.Token(ctx)
	if err != nil {
		return err
	}
	if claims, err := session.ParseClaims(token); err == nil && !claims.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "Token expires %s\n", claims.ExpiresAt.Local().Format(time.DateTime))
	}
	return nil
}
