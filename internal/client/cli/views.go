package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/siteadmin/internal/client/guard"
)

const msgLoginFirst = "Please log in to continue."

// enter runs the guard for v and returns the view actually shown.
func (a *App) enter(ctx context.Context, v guard.View) guard.View {
	d := guard.Check(v, a.isLoggedIn(ctx))
	if !d.Allow {
		a.log.Debug(ctx, "view redirected", "view", v, "to", d.Redirect)
		v = d.Redirect
	}
	a.view = v
	return v
}

// navigate enters v, or where the guard sends us instead, and renders it.
func (a *App) navigate(ctx context.Context, v guard.View) error {
	shown := a.enter(ctx, v)
	if shown != v {
		switch shown {
		case guard.ViewLogin:
			fmt.Fprintln(a.out, msgLoginFirst)
		case guard.Home:
			fmt.Fprintln(a.out, "You are already logged in.")
		}
	}

	switch shown {
	case guard.ViewLogin:
		return a.loginView(ctx)
	case guard.ViewRegister:
		return a.registerView(ctx)
	case guard.ViewUsers:
		return a.usersView(ctx)
	case guard.ViewContact:
		return a.contactView(ctx)
	case guard.ViewAbout:
		fmt.Fprint(a.out, aboutText)
	case guard.ViewServices:
		fmt.Fprint(a.out, servicesText)
	}
	return nil
}

func (a *App) Login(ctx context.Context) error    { return a.navigate(ctx, guard.ViewLogin) }
func (a *App) Register(ctx context.Context) error { return a.navigate(ctx, guard.ViewRegister) }
func (a *App) Users(ctx context.Context) error    { return a.navigate(ctx, guard.ViewUsers) }
func (a *App) Contact(ctx context.Context) error  { return a.navigate(ctx, guard.ViewContact) }
func (a *App) About(ctx context.Context) error    { return a.navigate(ctx, guard.ViewAbout) }
func (a *App) Services(ctx context.Context) error { return a.navigate(ctx, guard.ViewServices) }
