// Package cli is the plain-text render surface of the client: a REPL that
// subscribes to the session controller and the match engine and invokes
// their operations. All domain decisions live below; this package only
// prompts, dispatches, and prints.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/Pranavrh53/skill-exchange-platform/internal/client/api"
	"github.com/Pranavrh53/skill-exchange-platform/internal/client/barter"
	"github.com/Pranavrh53/skill-exchange-platform/internal/client/config"
	"github.com/Pranavrh53/skill-exchange-platform/internal/client/credstore"
	"github.com/Pranavrh53/skill-exchange-platform/internal/client/matches"
	"github.com/Pranavrh53/skill-exchange-platform/internal/client/session"
	"github.com/Pranavrh53/skill-exchange-platform/internal/logging"
)

// App wires the client components together and carries the REPL's I/O.
type App struct {
	config   *config.Config
	log      logging.Logger
	session  *session.Controller
	engine   *matches.Engine
	workflow *barter.Workflow
	gateway  api.Gateway

	reader *bufio.Reader
	out    io.Writer

	closeDB func() error
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewApp opens the local database and builds the component graph.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, logLevel(cfg.LogLevel))

	db, err := credstore.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	store := credstore.NewSQLiteRepository(db)
	gateway := api.NewHTTPGateway(cfg.ServerBaseURL, store, log, cfg.RequestTimeout)
	ctrl := session.NewController(gateway, store, log)
	engine := matches.NewEngine(gateway, ctrl, log)
	workflow := barter.NewWorkflow(gateway, engine, ctrl, log)

	a := &App{
		config:   cfg,
		log:      log,
		session:  ctrl,
		engine:   engine,
		workflow: workflow,
		gateway:  gateway,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		closeDB:  db.Close,
	}

	a.watchSession()

	return a, nil
}

// watchSession prints the expiry banner on the Expired transition.
func (a *App) watchSession() {
	a.session.Subscribe(func(st session.State) {
		if st == session.StateExpired {
			fmt.Fprintln(a.out, "Your session has expired. Please log in again.")
		}
	})
}

// Run restores a persisted session, then hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closeDB != nil {
			_ = a.closeDB()
		}
	}()

	if err := a.session.Restore(ctx); err != nil {
		a.log.Error(ctx, "session restore failed", "err", err)
	}

	fmt.Fprintln(a.out, "Welcome to the skill-exchange CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

// status renders the prompt suffix, e.g. "(u1 authenticated)".
func (a *App) status() string {
	st := a.session.State()
	if cred := a.session.Credential(); cred != nil && cred.UserID != "" {
		return fmt.Sprintf("(%s %s)", cred.UserID, st)
	}
	return fmt.Sprintf("(%s)", st)
}

// report prints an operation failure. Auth expiry is routed into the
// session controller instead of being printed; the Subscribe hook shows the
// banner on the resulting transition.
func (a *App) report(ctx context.Context, err error) {
	if err == nil {
		return
	}
	if errorsIsAuthExpired(err) {
		// The engine and workflow route expiry below; direct gateway
		// calls reach the controller here. Only the first transition
		// counts.
		if a.session.State() != session.StateExpired {
			a.session.OnAuthExpired(ctx)
		}
		return
	}
	fmt.Fprintf(a.out, "Error: %s\n", err.Error())
}
