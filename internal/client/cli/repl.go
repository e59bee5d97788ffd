package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Pranavrh53/skill-exchange-platform/internal/client/api"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

func errorsIsAuthExpired(err error) bool {
	return errors.Is(err, api.ErrAuthExpired)
}

// execIface is the minimal command surface the REPL needs. The real App
// satisfies it; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Matches(ctx context.Context) error
	Filter(ctx context.Context) error
	Refresh(ctx context.Context) error
	Barter(ctx context.Context, args []string) error
	Skills(ctx context.Context) error
	Who(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
}

// requiresLogin lists the commands backed by authenticated endpoints. They
// are refused up front when no session exists, so a logged-out user gets a
// sign-in hint instead of a synthetic auth-expiry error.
func requiresLogin(cmd string) bool {
	switch cmd {
	case "m", "matches", "filter", "refresh", "barter", "skills", "who", "profile", "editprofile":
		return true
	}
	return false
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to a. Unknown commands are reported back. The loop exits on
// scanner EOF or on "exit"/"quit".
//
// Handlers print their own errors; the REPL ignores returned errors to stay
// resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("skillex %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if requiresLogin(cmd) && !a.isLoggedIn() {
			printlnFn("Please log in first.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (m)atches, filter, refresh, barter <match#> <exchange#>, skills, who <skill-id>, profile, editprofile, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "m", "matches":
			_ = a.Matches(ctx)

		case "filter":
			_ = a.Filter(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "barter":
			_ = a.Barter(ctx, args)

		case "skills":
			_ = a.Skills(ctx)

		case "who":
			_ = a.Who(ctx, args)

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
