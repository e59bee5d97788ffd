// Package api is the typed client for the skill-exchange REST backend.
// It owns the error taxonomy of the transport boundary: HTTP statuses and
// transport failures are classified here, once, and surface to the rest of
// the client as sentinel or typed errors.
package api

import (
	"context"

	"github.com/Pranavrh53/skill-exchange-platform/internal/client/models"
)

// CredentialSource provides the bearer credential attached to
// authenticated requests. The gateway only ever reads it; the session
// controller is the single writer.
type CredentialSource interface {
	Read(ctx context.Context) (*models.Credential, error)
}

// Gateway defines the backend operations the client performs.
//
// Error contract:
//   - Login: ErrInvalidCredentials, ErrUnavailable, *ServerError.
//   - Signup: *ValidationError (email taken), ErrUnavailable, *ServerError.
//   - All bearer-authenticated calls: ErrAuthExpired on 401, ErrUnavailable
//     on transport failure, *ValidationError on 4xx, *ServerError otherwise.
type Gateway interface {
	Login(ctx context.Context, email, password string) (*models.Credential, error)
	Signup(ctx context.Context, email, password, name string) error
	Matches(ctx context.Context, filter models.Filter) ([]models.Candidate, error)
	Skills(ctx context.Context) ([]models.Skill, error)
	UsersBySkill(ctx context.Context, skillID string) ([]models.SkillUser, error)
	InitiateBarter(ctx context.Context, req models.BarterRequest) error
	Profile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, p models.Profile) error
}
