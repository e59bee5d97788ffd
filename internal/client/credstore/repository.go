// Package credstore persists the authenticated session's credential: the
// bearer token and the user id it belongs to. It is the one piece of client
// state that survives restarts.
package credstore

import (
	"context"

	"github.com/Pranavrh53/skill-exchange-platform/internal/client/models"
)

// Repository is the persistent credential cell. The session controller is
// its single writer; the API gateway only reads.
//
// Contract:
//   - Save writes token and user id together; a reader never observes one
//     without the other.
//   - Read returns nil (not an error) when no credential is stored.
//   - Clear removes both values and is a no-op on an empty store.
type Repository interface {
	Save(ctx context.Context, token, userID string) error
	Read(ctx context.Context) (*models.Credential, error)
	Clear(ctx context.Context) error
}
