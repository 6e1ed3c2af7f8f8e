package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printFn and printlnFn are test seams for user-facing output. In tests,
// replace them with stubs.
var (
	printFn   = fmt.Print
	printlnFn = fmt.Println
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Users(ctx context.Context) error
	Refresh(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Contact(ctx context.Context) error
	About(ctx context.Context) error
	Services(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, register, users, contact, about, services, whoami, exit"
	helpLoggedIn  = "Available commands: users, refresh, edit <id>, delete <id>, contact, about, services, whoami, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the siteadmin CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Commands that prompt for more input read
// from the same reader. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	help           show available commands
//	login          fill in the login form
//	register       fill in the registration form
//	users          open the users view (requires a session)
//	refresh        reload the users list
//	edit <id>      edit a listed user
//	delete <id>    delete a user after confirmation
//	contact        fill in the contact form
//	about          about the site
//	services       services offered
//	whoami         show the current session
//	logout         forget the session
//	exit | quit    leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own outcome. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("siteadmin %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "users":
			_ = a.Users(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "contact":
			_ = a.Contact(ctx)

		case "about":
			_ = a.About(ctx)

		case "services":
			_ = a.Services(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
