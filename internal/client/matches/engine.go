// Package matches holds the client-side view of the candidate list: the
// current filter, the last applied fetch result, and the guard that keeps
// out-of-order responses from clobbering newer ones.
package matches

import (
	"context"
	"errors"
	"sync"

	"github.com/Pranavrh53/skill-exchange-platform/internal/client/api"
	"github.com/Pranavrh53/skill-exchange-platform/internal/client/models"
	"github.com/Pranavrh53/skill-exchange-platform/internal/logging"
)

// Fetcher is the slice of the API gateway the engine needs.
type Fetcher interface {
	Matches(ctx context.Context, filter models.Filter) ([]models.Candidate, error)
}

// ExpiryHandler receives the auth-expiry signal. The session controller
// implements it; the engine never touches the credential store itself.
type ExpiryHandler interface {
	OnAuthExpired(ctx context.Context)
}

// Engine fetches and caches match candidates for the render surface.
//
// Responses are applied in request order, not arrival order: each fetch is
// stamped with a sequence number under the engine's lock, and a response is
// discarded if a newer fetch was issued while it was in flight. There is no
// cancellation of in-flight requests; superseded responses are simply
// dropped after the fact.
type Engine struct {
	gw     Fetcher
	expiry ExpiryHandler
	log    logging.Logger

	mu         sync.Mutex
	filter     models.Filter
	seq        uint64
	candidates []models.Candidate
	lastErr    error
}

func NewEngine(gw Fetcher, expiry ExpiryHandler, log logging.Logger) *Engine {
	return &Engine{
		gw:     gw,
		expiry: expiry,
		log:    log.With("component", "matches"),
	}
}

// SetFilter replaces the filter and fetches with it. If the response is
// superseded by a later SetFilter or Refresh before it arrives, it is
// discarded and SetFilter returns nil.
func (e *Engine) SetFilter(ctx context.Context, f models.Filter) error {
	e.mu.Lock()
	e.filter = f
	e.seq++
	seq := e.seq
	e.mu.Unlock()

	return e.fetch(ctx, f, seq)
}

// Refresh refetches with the current filter, under the same ordering guard
// as SetFilter.
func (e *Engine) Refresh(ctx context.Context) error {
	e.mu.Lock()
	f := e.filter
	e.seq++
	seq := e.seq
	e.mu.Unlock()

	return e.fetch(ctx, f, seq)
}

func (e *Engine) fetch(ctx context.Context, f models.Filter, seq uint64) error {
	candidates, err := e.gw.Matches(ctx, f)

	if errors.Is(err, api.ErrAuthExpired) {
		// The cached list belongs to a session that no longer exists.
		e.mu.Lock()
		e.candidates = nil
		e.lastErr = nil
		e.mu.Unlock()
		e.expiry.OnAuthExpired(ctx)
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if seq != e.seq {
		e.log.Debug(ctx, "discarding superseded match response", "seq", seq, "latest", e.seq)
		return nil
	}

	if err != nil {
		// Keep the previous result set visible; the render surface
		// decides how to present the failure.
		e.lastErr = err
		return err
	}

	e.candidates = candidates
	e.lastErr = nil
	e.log.Info(ctx, "match list updated", "count", len(candidates), "skill_id", f.SkillID, "location", f.Location)
	return nil
}

// Candidates returns a snapshot of the last applied result set. Empty
// before the first successful fetch.
func (e *Engine) Candidates() []models.Candidate {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Candidate, len(e.candidates))
	copy(out, e.candidates)
	return out
}

// Filter returns the current filter.
func (e *Engine) Filter() models.Filter {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filter
}

// Err returns the error of the most recent applied fetch, nil after a
// successful one.
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// RemoveCandidate drops the candidate with the given user id from the
// cached list without a backend round-trip. Removing an absent candidate is
// a no-op.
func (e *Engine) RemoveCandidate(userID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	kept := e.candidates[:0]
	for _, c := range e.candidates {
		if c.User.ID.String() != userID {
			kept = append(kept, c)
		}
	}
	e.candidates = kept
}
