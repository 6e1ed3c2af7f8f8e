// Package cli provides the interactive siteadmin command-line client.
//
// It wires configuration, the persisted session, the users API client and
// the view controllers into a REPL. Each command enters a view; the route
// guard decides whether the view is shown or the user is sent to the login
// form (or, once logged in, from the login form to the users list).
//
// Key features:
//   - Login / Register / Logout, with the session token kept in SQLite
//   - Users list with edit and confirmed delete
//   - Contact form
//   - Static about and services pages
//
// Outcomes of remote calls are printed as they are reported to the
// notification controller. The REPL is started via App.Run(ctx), which
// blocks until the user exits. See runREPL for the command list.
package cli
