package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pranavrh53/skill-exchange-platform/internal/client/api"
	"github.com/Pranavrh53/skill-exchange-platform/internal/client/barter"
	"github.com/Pranavrh53/skill-exchange-platform/internal/client/matches"
	"github.com/Pranavrh53/skill-exchange-platform/internal/client/models"
	"github.com/Pranavrh53/skill-exchange-platform/internal/client/session"
	"github.com/Pranavrh53/skill-exchange-platform/internal/logging"
)

// ---- fakes ----

type memCredStore struct {
	mu   sync.Mutex
	cred *models.Credential
}

func (m *memCredStore) Save(ctx context.Context, token, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cred = &models.Credential{Token: token, UserID: userID}
	return nil
}

func (m *memCredStore) Read(ctx context.Context) (*models.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cred == nil {
		return nil, nil
	}
	cred := *m.cred
	return &cred, nil
}

func (m *memCredStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cred = nil
	return nil
}

// fakeGateway logs in successfully and serves every domain call with the
// configured result or error.
type fakeGateway struct {
	err     error
	matches []models.Candidate
}

func (f *fakeGateway) Login(ctx context.Context, email, password string) (*models.Credential, error) {
	return &models.Credential{Token: "t1", UserID: "u1"}, nil
}

func (f *fakeGateway) Signup(ctx context.Context, email, password, name string) error {
	return f.err
}

func (f *fakeGateway) Matches(ctx context.Context, filter models.Filter) ([]models.Candidate, error) {
	return f.matches, f.err
}

func (f *fakeGateway) Skills(ctx context.Context) ([]models.Skill, error) {
	return nil, f.err
}

func (f *fakeGateway) UsersBySkill(ctx context.Context, skillID string) ([]models.SkillUser, error) {
	return nil, f.err
}

func (f *fakeGateway) InitiateBarter(ctx context.Context, req models.BarterRequest) error {
	return f.err
}

func (f *fakeGateway) Profile(ctx context.Context) (*models.Profile, error) {
	return nil, f.err
}

func (f *fakeGateway) UpdateProfile(ctx context.Context, p models.Profile) error {
	return f.err
}

func newTestApp(t *testing.T, gw api.Gateway, store *memCredStore) (*App, *bytes.Buffer) {
	t.Helper()
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	ctrl := session.NewController(gw, store, log)
	engine := matches.NewEngine(gw, ctrl, log)
	out := &bytes.Buffer{}
	a := &App{
		log:      log,
		session:  ctrl,
		engine:   engine,
		workflow: barter.NewWorkflow(gw, engine, ctrl, log),
		gateway:  gw,
		out:      out,
	}
	a.watchSession()
	return a, out
}

func authenticate(t *testing.T, a *App) {
	t.Helper()
	require.NoError(t, a.session.Authenticate(context.Background(), "a@x.com", "secret"))
	require.Equal(t, session.StateAuthenticated, a.session.State())
}

// ---- tests ----

func TestSkills_AuthExpiredExpiresSession(t *testing.T) {
	gw := &fakeGateway{err: api.ErrAuthExpired}
	store := &memCredStore{}
	a, out := newTestApp(t, gw, store)
	authenticate(t, a)

	err := a.Skills(context.Background())
	require.ErrorIs(t, err, api.ErrAuthExpired)

	require.Equal(t, session.StateExpired, a.session.State())
	cred, err := store.Read(context.Background())
	require.NoError(t, err)
	require.Nil(t, cred, "a 401 must clear the stored credential")
	require.Contains(t, out.String(), "Your session has expired")
}

func TestProfile_AuthExpiredExpiresSession(t *testing.T) {
	gw := &fakeGateway{err: api.ErrAuthExpired}
	store := &memCredStore{}
	a, _ := newTestApp(t, gw, store)
	authenticate(t, a)

	err := a.Profile(context.Background())
	require.ErrorIs(t, err, api.ErrAuthExpired)
	require.Equal(t, session.StateExpired, a.session.State())
}

func TestMatches_AuthExpiredBannerPrintedOnce(t *testing.T) {
	// The engine already routes its own 401 into the controller; the
	// render surface must not produce a second transition or banner.
	gw := &fakeGateway{err: api.ErrAuthExpired}
	store := &memCredStore{}
	a, out := newTestApp(t, gw, store)
	authenticate(t, a)

	err := a.Matches(context.Background())
	require.ErrorIs(t, err, api.ErrAuthExpired)

	require.Equal(t, session.StateExpired, a.session.State())
	require.Equal(t, 1, strings.Count(out.String(), "Your session has expired"))
}

func TestMatches_ShowsActiveFilter(t *testing.T) {
	gw := &fakeGateway{matches: []models.Candidate{
		{User: models.User{ID: "7", Name: "Alice"}},
	}}
	store := &memCredStore{}
	a, out := newTestApp(t, gw, store)
	authenticate(t, a)

	ctx := context.Background()
	require.NoError(t, a.engine.SetFilter(ctx, models.Filter{SkillID: "5", Location: "Berlin"}))
	require.NoError(t, a.Matches(ctx))

	require.Contains(t, out.String(), `Filter: skill="5" location="Berlin"`)
	require.Contains(t, out.String(), "Alice")
}
