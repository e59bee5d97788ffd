package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pranavrh53/skill-exchange-platform/internal/client/api"
	"github.com/Pranavrh53/skill-exchange-platform/internal/client/session"
)

// Login prompts for credentials and authenticates through the session
// controller.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Authenticate(ctx, email, password); err != nil {
		switch {
		case errors.Is(err, api.ErrInvalidCredentials):
			fmt.Fprintln(a.out, "Invalid email or password.")
		case errors.Is(err, api.ErrUnavailable):
			fmt.Fprintln(a.out, "Server unavailable, please try again later.")
		default:
			a.report(ctx, err)
		}
		return err
	}

	fmt.Fprintln(a.out, "Login successful.")
	return nil
}

// Register creates an account. It does not log the user in; the backend
// expects a separate login afterwards.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.gateway.Signup(ctx, email, password, name); err != nil {
		var ve *api.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintf(a.out, "Signup rejected: %s\n", ve.Message)
		} else {
			a.report(ctx, err)
		}
		return err
	}

	fmt.Fprintln(a.out, "Account created. You can log in now.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.report(ctx, err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami shows the stored identity and, when the token carries an exp
// claim, its expiry.
func (a *App) Whoami(ctx context.Context) error {
	cred := a.session.Credential()
	if cred == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "User id: %s\n", cred.UserID)
	if exp, ok := session.TokenExpiry(cred.Token); ok {
		fmt.Fprintf(a.out, "Token expires: %s\n", exp.Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}
