package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/siteadmin/internal/client/client"
	"github.com/dmitrijs2005/siteadmin/internal/client/config"
	"github.com/dmitrijs2005/siteadmin/internal/client/confirm"
	"github.com/dmitrijs2005/siteadmin/internal/client/guard"
	"github.com/dmitrijs2005/siteadmin/internal/client/notify"
	"github.com/dmitrijs2005/siteadmin/internal/client/services"
	"github.com/dmitrijs2005/siteadmin/internal/client/session"
	"github.com/dmitrijs2005/siteadmin/internal/logging"
)

type App struct {
	users   *services.UserService
	auth    *services.AuthService
	contact *services.ContactService
	confirm *confirm.Controller
	notes   *notify.Controller
	store   session.Store
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	view    guard.View
	db      *sql.DB
}

type deps struct {
	client       client.Client
	store        session.Store
	log          logging.Logger
	contactDelay time.Duration
	in           io.Reader
	out          io.Writer
}

func newApp(d deps) *App {
	a := &App{
		store:  d.store,
		log:    d.log,
		reader: bufio.NewReader(d.in),
		out:    d.out,
	}
	a.notes = notify.NewController(notify.OnShow(a.printNotification))
	a.users = services.NewUserService(d.client, a.notes, d.log)
	a.auth = services.NewAuthService(d.client, d.store, a.notes, d.log)
	a.contact = services.NewContactService(a.notes, d.log, d.contactDelay)
	a.confirm = confirm.NewController(a.users.Remove)
	return a
}

// NewApp opens the session database and builds the API client and the
// controllers on top of it. The returned App owns the database until Run
// returns.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, cfg.SessionDB)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	store := session.NewSQLiteStore(db)

	api, err := client.NewHTTPClient(cfg.APIBaseURL, cfg.AuthBaseURL,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithTokenSource(store),
		client.WithLogger(log),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(deps{
		client:       api,
		store:        store,
		log:          log,
		contactDelay: cfg.ContactDelay,
		in:           os.Stdin,
		out:          os.Stdout,
	})
	a.db = db
	return a, nil
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	fmt.Fprintln(a.out, "siteadmin CLI (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader)
}

func (a *App) close(ctx context.Context) {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.log.Error(ctx, "closing session database", "error", err)
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.auth.Authenticated(ctx)
}

// status is shown in the prompt: "(alice)" when logged in.
func (a *App) status(ctx context.Context) string {
	if !a.isLoggedIn(ctx) {
		return ""
	}
	if name := a.sessionName(ctx); name != "" {
		return fmt.Sprintf("(%s)", name)
	}
	return "(logged in)"
}

// sessionName prefers the username remembered at login and falls back to
// the claims of a JWT token.
func (a *App) sessionName(ctx context.Context) string {
	if us, ok := a.store.(session.UserStore); ok {
		if name, err := us.Username(ctx); err == nil && name != "" {
			return name
		}
	}
	token, err := a.store.Token(ctx)
	if err != nil {
		return ""
	}
	claims, err := session.ParseClaims(token)
	if err != nil {
		return ""
	}
	return claims.Name()
}

func (a *App) printNotification(n notify.Notification) {
	fmt.Fprintf(a.out, "[%s] %s: %s\n", n.Kind, n.Title, n.Message)
}
