// Package session owns the authentication state machine of the client.
// Every other component reads the session state; only this package moves it,
// and only this package writes the credential store.
package session

import (
	"context"
	"sync"

	"github.com/Pranavrh53/skill-exchange-platform/internal/client/credstore"
	"github.com/Pranavrh53/skill-exchange-platform/internal/client/models"
	"github.com/Pranavrh53/skill-exchange-platform/internal/logging"
)

// State of the session.
//
// Transitions:
//
//	Unauthenticated --Authenticate--> Authenticating --success--> Authenticated
//	Authenticating  --failure-------> Unauthenticated
//	Authenticated   --OnAuthExpired-> Expired
//	any             --Logout--------> Unauthenticated
//
// Expired admits a fresh Authenticate like Unauthenticated does; it exists
// so the render surface can tell an involuntary sign-out from a fresh start.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
	StateExpired         State = "expired"
)

// Authenticator is the slice of the API gateway the controller needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.Credential, error)
}

// Controller drives the session state machine.
type Controller struct {
	gw    Authenticator
	store credstore.Repository
	log   logging.Logger

	mu        sync.Mutex
	state     State
	cred      *models.Credential
	listeners []func(State)
}

func NewController(gw Authenticator, store credstore.Repository, log logging.Logger) *Controller {
	return &Controller{
		gw:    gw,
		store: store,
		log:   log.With("component", "session"),
		state: StateUnauthenticated,
	}
}

// State returns the current session state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Credential returns a copy of the in-memory credential, or nil when the
// session is not authenticated.
func (c *Controller) Credential() *models.Credential {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cred == nil {
		return nil
	}
	cred := *c.cred
	return &cred
}

// Subscribe registers fn to be called on every state transition. Callbacks
// run outside the controller's lock, in transition order.
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) transition(st State, cred *models.Credential) {
	c.mu.Lock()
	c.state = st
	c.cred = cred
	listeners := make([]func(State), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(st)
	}
}

// Authenticate performs a login. On success the credential is persisted and
// the session becomes Authenticated; on failure the session falls back to
// Unauthenticated and the error is returned for the render surface to show.
func (c *Controller) Authenticate(ctx context.Context, email, password string) error {
	c.transition(StateAuthenticating, nil)

	cred, err := c.gw.Login(ctx, email, password)
	if err != nil {
		c.log.Warn(ctx, "authentication failed", "err", err)
		c.transition(StateUnauthenticated, nil)
		return err
	}

	if err := c.store.Save(ctx, cred.Token, cred.UserID); err != nil {
		c.log.Error(ctx, "failed to persist credential", "err", err)
		c.transition(StateUnauthenticated, nil)
		return err
	}

	c.log.Info(ctx, "authenticated", "user_id", cred.UserID)
	c.transition(StateAuthenticated, cred)
	return nil
}

// Restore moves the session to Authenticated if a credential is already
// persisted. The token is not validated against the backend: an expired
// token surfaces as auth expiry on its first use, not here. A token whose
// JWT exp claim is already in the past only produces a warning.
func (c *Controller) Restore(ctx context.Context) error {
	cred, err := c.store.Read(ctx)
	if err != nil {
		return err
	}
	if cred == nil {
		return nil
	}

	if exp, ok := tokenExpiry(cred.Token); ok && exp.Before(now()) {
		c.log.Warn(ctx, "stored token is past its expiry; first request will require a new sign-in", "expired_at", exp)
	}

	c.log.Info(ctx, "session restored", "user_id", cred.UserID)
	c.transition(StateAuthenticated, cred)
	return nil
}

// Logout clears the persisted credential and resets the session. It works
// from any state.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return err
	}
	c.log.Info(ctx, "logged out")
	c.transition(StateUnauthenticated, nil)
	return nil
}

// OnAuthExpired is the single point of truth for a 401 received anywhere:
// it clears the persisted credential and marks the session Expired. Other
// components must call this instead of touching the store themselves.
func (c *Controller) OnAuthExpired(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear credential after auth expiry", "err", err)
	}
	c.log.Warn(ctx, "session expired")
	c.transition(StateExpired, nil)
}
