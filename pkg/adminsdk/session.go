package adminsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

// Session is an authenticated handle. It is safe for concurrent use.
type Session struct {
	client *SDKClient

	mu    sync.RWMutex
	token string
	user  User
}

// Token returns the bearer token, or "" after Logout.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the user reported at login.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}

// Logout forgets the token. Tokens are stateless so nothing is sent to the
// server.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = User{}
}

func (s *Session) do(ctx context.Context, method, path string, payload, target any) error {
	token := s.Token()
	if token == "" {
		return ErrNotLoggedIn
	}
	resp, err := s.client.doRequest(ctx, method, path, payload, token)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target)
}

// Me returns the decoded token as seen by the server.
func (s *Session) Me(ctx context.Context) (*TokenUser, error) {
	var out MeResponse
	if err := s.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (s *Session) Dashboard(ctx context.Context) (*Dashboard, error) {
	var out Dashboard
	if err := s.do(ctx, http.MethodGet, "/api/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns up to limit raw records from endpoint (e.g. "vendors",
// "reports/summary"). limit <= 0 uses the server default. Records are kept
// raw so callers can inspect keys in the order the server sent them.
func (s *Session) List(ctx context.Context, endpoint string, limit int) ([]json.RawMessage, error) {
	path := endpointPath(endpoint)
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var body json.RawMessage
	if err := s.do(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, err
	}
	return listRows(body), nil
}

// listRows accepts a bare array or an {"items": [...]} / {"data": [...]}
// envelope. Anything else yields no rows.
func listRows(body json.RawMessage) []json.RawMessage {
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err == nil {
		if rows == nil {
			rows = []json.RawMessage{}
		}
		return rows
	}

	var env struct {
		Items json.RawMessage `json:"items"`
		Data  json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return []json.RawMessage{}
	}
	inner := env.Items
	if len(inner) == 0 || string(inner) == "null" {
		inner = env.Data
	}
	if len(inner) == 0 {
		return []json.RawMessage{}
	}
	if err := json.Unmarshal(inner, &rows); err != nil || rows == nil {
		return []json.RawMessage{}
	}
	return rows
}

// Create posts payload and returns the stored record.
func (s *Session) Create(ctx context.Context, endpoint string, payload any) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.do(ctx, http.MethodPost, endpointPath(endpoint), payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update sets the fields in payload on record id and returns the result.
func (s *Session) Update(ctx context.Context, endpoint, id string, payload any) (json.RawMessage, error) {
	var out json.RawMessage
	path := endpointPath(endpoint) + "/" + url.PathEscape(id)
	if err := s.do(ctx, http.MethodPut, path, payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) Delete(ctx context.Context, endpoint, id string) error {
	var out SuccessResponse
	path := endpointPath(endpoint) + "/" + url.PathEscape(id)
	return s.do(ctx, http.MethodDelete, path, nil, &out)
}

func endpointPath(endpoint string) string {
	return "/api/" + strings.Trim(endpoint, "/")
}
