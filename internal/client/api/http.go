package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/Pranavrh53/skill-exchange-platform/internal/client/models"
	"github.com/Pranavrh53/skill-exchange-platform/internal/logging"
)

// maxResponseBytes caps how much of a response body is read. The largest
// legitimate payload is a match list; 4 MiB is far beyond it.
const maxResponseBytes = 4 << 20

func readAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, maxResponseBytes))
}

// HTTPGateway is the Gateway implementation over net/http.
type HTTPGateway struct {
	baseURL string
	http    *http.Client
	creds   CredentialSource
	log     logging.Logger
}

// NewHTTPGateway builds a gateway for the backend at baseURL (scheme and
// host, no trailing slash). The timeout bounds each request in addition to
// whatever deadline the caller's context carries.
func NewHTTPGateway(baseURL string, creds CredentialSource, log logging.Logger, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		log:     log.With("component", "api"),
	}
}

// loginRequest / loginResponse mirror POST /api/auth/login. The backend
// returns userId camel-cased and possibly numeric.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string    `json:"token"`
	UserID models.ID `json:"userId"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// envelope is the {success,data} wrapper the matching endpoints use.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// errorBody covers both error shapes the backend emits.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func errorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if eb.Message != "" {
		return eb.Message
	}
	return eb.Error
}

// classify maps a non-2xx status of a bearer-authenticated call to the
// error taxonomy. 401 always becomes ErrAuthExpired, no matter which
// operation produced it.
func classify(status int, body []byte) error {
	switch {
	case status == http.StatusUnauthorized:
		return ErrAuthExpired
	case status >= 400 && status < 500:
		return &ValidationError{Status: status, Message: errorMessage(body)}
	default:
		return &ServerError{Status: status, Message: errorMessage(body)}
	}
}

// do issues one request and returns the status and raw body. Transport
// failures are wrapped in ErrUnavailable; status classification is left to
// the caller because Login and Signup follow different rules.
func (g *HTTPGateway) do(ctx context.Context, method, path string, query url.Values, payload any, authed bool) (int, []byte, error) {
	u := g.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return 0, nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	if authed {
		cred, err := g.creds.Read(ctx)
		if err != nil {
			return 0, nil, fmt.Errorf("read credential: %w", err)
		}
		if cred == nil {
			// No stored token: the backend would answer 401 anyway,
			// skip the round-trip.
			return 0, nil, ErrAuthExpired
		}
		req.Header.Set("Authorization", "Bearer "+cred.Token)
	}

	g.log.Debug(ctx, "api request", "method", method, "path", path, "request_id", requestID)

	resp, err := g.http.Do(req)
	if err != nil {
		g.log.Warn(ctx, "api transport failure", "method", method, "path", path, "request_id", requestID, "err", err)
		return 0, nil, fmt.Errorf("%s %s: %w: %v", method, path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := readAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w: %v", method, path, ErrUnavailable, err)
	}

	g.log.Debug(ctx, "api response", "method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)
	return resp.StatusCode, data, nil
}

// doEnvelope issues an authenticated request against an envelope endpoint
// and returns the inner data payload.
func (g *HTTPGateway) doEnvelope(ctx context.Context, method, path string, query url.Values) (json.RawMessage, error) {
	status, body, err := g.do(ctx, method, path, query, nil, true)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, classify(status, body)
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}
	if !env.Success {
		return nil, &ServerError{Status: status, Message: env.Message}
	}
	return env.Data, nil
}

func (g *HTTPGateway) Login(ctx context.Context, email, password string) (*models.Credential, error) {
	status, body, err := g.do(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{Email: email, Password: password}, false)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusOK:
		var lr loginResponse
		if err := json.Unmarshal(body, &lr); err != nil {
			return nil, fmt.Errorf("decode login response: %w", err)
		}
		return &models.Credential{Token: lr.Token, UserID: lr.UserID.String()}, nil
	case status == http.StatusUnauthorized:
		return nil, ErrInvalidCredentials
	case status >= 400 && status < 500:
		return nil, &ValidationError{Status: status, Message: errorMessage(body)}
	default:
		return nil, &ServerError{Status: status, Message: errorMessage(body)}
	}
}

func (g *HTTPGateway) Signup(ctx context.Context, email, password, name string) error {
	status, body, err := g.do(ctx, http.MethodPost, "/api/auth/signup", nil, signupRequest{Email: email, Password: password, Name: name}, false)
	if err != nil {
		return err
	}
	switch {
	case status >= 200 && status < 300:
		return nil
	case status >= 400 && status < 500:
		return &ValidationError{Status: status, Message: errorMessage(body)}
	default:
		return &ServerError{Status: status, Message: errorMessage(body)}
	}
}

func (g *HTTPGateway) Matches(ctx context.Context, filter models.Filter) ([]models.Candidate, error) {
	query := url.Values{}
	if filter.SkillID != "" {
		query.Set("skill_id", filter.SkillID)
	}
	if filter.Location != "" {
		query.Set("location", filter.Location)
	}

	data, err := g.doEnvelope(ctx, http.MethodGet, "/api/matching", query)
	if err != nil {
		return nil, err
	}
	var candidates []models.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}
	return candidates, nil
}

func (g *HTTPGateway) Skills(ctx context.Context) ([]models.Skill, error) {
	data, err := g.doEnvelope(ctx, http.MethodGet, "/api/matching/skills", nil)
	if err != nil {
		return nil, err
	}
	var skills []models.Skill
	if err := json.Unmarshal(data, &skills); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	return skills, nil
}

func (g *HTTPGateway) UsersBySkill(ctx context.Context, skillID string) ([]models.SkillUser, error) {
	path := fmt.Sprintf("/api/skills/%s/users", url.PathEscape(skillID))
	status, body, err := g.do(ctx, http.MethodGet, path, nil, nil, true)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, classify(status, body)
	}
	// Older endpoint: raw array, no envelope.
	var users []models.SkillUser
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("decode skill users: %w", err)
	}
	return users, nil
}

func (g *HTTPGateway) InitiateBarter(ctx context.Context, req models.BarterRequest) error {
	status, body, err := g.do(ctx, http.MethodPost, "/api/barter-sessions", nil, req, true)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return classify(status, body)
	}
	return nil
}

func (g *HTTPGateway) Profile(ctx context.Context) (*models.Profile, error) {
	status, body, err := g.do(ctx, http.MethodGet, "/api/profile", nil, nil, true)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, classify(status, body)
	}
	var p models.Profile
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

func (g *HTTPGateway) UpdateProfile(ctx context.Context, p models.Profile) error {
	status, body, err := g.do(ctx, http.MethodPut, "/api/profile", nil, p, true)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return classify(status, body)
	}
	return nil
}
