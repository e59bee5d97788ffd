package barter

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pranavrh53/skill-exchange-platform/internal/client/api"
	"github.com/Pranavrh53/skill-exchange-platform/internal/client/matches"
	"github.com/Pranavrh53/skill-exchange-platform/internal/client/models"
	"github.com/Pranavrh53/skill-exchange-platform/internal/logging"
)

// ---- fakes ----

type fakeInitiator struct {
	mu    sync.Mutex
	errs  []error // per call, in order; nil entries mean success
	calls []models.BarterRequest
}

func (f *fakeInitiator) InitiateBarter(ctx context.Context, req models.BarterRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	if len(f.calls) <= len(f.errs) {
		return f.errs[len(f.calls)-1]
	}
	return nil
}

type staticFetcher struct {
	candidates []models.Candidate
}

func (f *staticFetcher) Matches(ctx context.Context, filter models.Filter) ([]models.Candidate, error) {
	return f.candidates, nil
}

type expiryRecorder struct {
	calls atomic.Int32
}

func (r *expiryRecorder) OnAuthExpired(ctx context.Context) {
	r.calls.Add(1)
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func candidate(userID, name string) models.Candidate {
	return models.Candidate{User: models.User{ID: models.ID(userID), Name: name}}
}

// setup builds a workflow over a real engine preloaded with the given
// candidates.
func setup(t *testing.T, init *fakeInitiator, candidates ...models.Candidate) (*Workflow, *matches.Engine, *expiryRecorder) {
	t.Helper()
	rec := &expiryRecorder{}
	engine := matches.NewEngine(&staticFetcher{candidates: candidates}, rec, testLogger())
	require.NoError(t, engine.Refresh(context.Background()))
	return NewWorkflow(init, engine, rec, testLogger()), engine, rec
}

// ---- tests ----

func TestInitiate_SuccessRemovesOnlyThatCandidate(t *testing.T) {
	init := &fakeInitiator{}
	w, engine, _ := setup(t, init, candidate("7", "Alice"), candidate("8", "Bob"))

	err := w.Initiate(context.Background(), candidate("7", "Alice"), "2", "1")
	require.NoError(t, err)

	got := engine.Candidates()
	require.Len(t, got, 1)
	require.Equal(t, models.ID("8"), got[0].User.ID)

	require.Len(t, init.calls, 1)
	require.Equal(t, models.BarterRequest{
		ProviderID:       "7",
		OfferedSkillID:   "2",
		RequestedSkillID: "1",
	}, init.calls[0])
}

func TestInitiate_ValidationFailureLeavesListUntouched(t *testing.T) {
	init := &fakeInitiator{errs: []error{&api.ValidationError{Status: 400, Message: "already exists"}}}
	w, engine, _ := setup(t, init, candidate("7", "Alice"), candidate("8", "Bob"))

	err := w.Initiate(context.Background(), candidate("7", "Alice"), "2", "1")
	var ve *api.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "already exists", ve.Message)

	require.Len(t, engine.Candidates(), 2, "a rejected initiation must not mutate the list")
}

func TestInitiate_AuthExpiredDelegates(t *testing.T) {
	init := &fakeInitiator{errs: []error{api.ErrAuthExpired}}
	w, engine, rec := setup(t, init, candidate("7", "Alice"))

	err := w.Initiate(context.Background(), candidate("7", "Alice"), "2", "1")
	require.ErrorIs(t, err, api.ErrAuthExpired)
	require.Equal(t, int32(1), rec.calls.Load())
	require.Len(t, engine.Candidates(), 1)
}

func TestInitiate_RacingDuplicatesAreSafe(t *testing.T) {
	// First attempt wins; the backend rejects the duplicate. Neither
	// attempt may corrupt the list or panic.
	init := &fakeInitiator{errs: []error{nil, &api.ValidationError{Status: 400, Message: "already exists"}}}
	w, engine, _ := setup(t, init, candidate("7", "Alice"), candidate("8", "Bob"))

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = w.Initiate(context.Background(), candidate("7", "Alice"), "2", "1")
		}(i)
	}
	wg.Wait()

	var failures int
	for _, err := range results {
		if err != nil {
			failures++
		}
	}
	require.Equal(t, 1, failures, "exactly one attempt should be rejected")

	got := engine.Candidates()
	require.Len(t, got, 1)
	require.Equal(t, models.ID("8"), got[0].User.ID)
}
