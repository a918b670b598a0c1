// Package api is the HTTP client for the BarberBook backend. It implements
// the session.Authenticator collaborator and the customer-record surface the
// clients page consumes. The wire format is private to this package: the
// rest of the client sees identities and customer records, never tokens or
// status codes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/barberbook/barberbook/internal/client/repositories/tokens"
	"github.com/barberbook/barberbook/internal/client/session"
	"github.com/barberbook/barberbook/internal/logging"
	"github.com/barberbook/barberbook/internal/models"
)

var (
	// ErrBadCredentials means the server rejected the email/password pair.
	ErrBadCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated means the presented token was missing, expired
	// or rejected.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUnavailable means the server could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrNoSavedSession means there is no persisted token to restore from.
	ErrNoSavedSession = errors.New("no saved session")
)

// Client talks JSON over HTTP to the backend. It is safe for concurrent use;
// the token cache is guarded by a mutex.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  tokens.Repository
	log     logging.Logger

	mu    sync.Mutex
	token string
}

// New returns a Client for the API at baseURL (e.g. "http://localhost:8080").
// No timeout is imposed here: callers bound individual calls via context.
func New(baseURL string, repo tokens.Repository, log logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		tokens:  repo,
		log:     log.With("component", "api"),
	}
}

// ---- wire types ----

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type identityPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Token    string          `json:"token"`
	Identity identityPayload `json:"identity"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ---- session.Authenticator ----

// Authenticate exchanges credentials for an identity. On success the issued
// token is cached in memory and persisted for later restores; persistence
// failures are logged, not fatal.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*session.Identity, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrBadCredentials
	default:
		return nil, fmt.Errorf("login: %w", unexpectedStatus(resp))
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}

	c.mu.Lock()
	c.token = lr.Token
	c.mu.Unlock()

	if err := c.tokens.Save(ctx, lr.Token); err != nil {
		c.log.Warn(ctx, "could not persist session token", "reason", err.Error())
	}

	return identityFromPayload(lr.Identity), nil
}

// ValidateSession loads the persisted token and asks the server whether it
// is still good. A rejected token is cleared locally so the next start does
// not retry it.
func (c *Client) ValidateSession(ctx context.Context) (*session.Identity, error) {
	token, err := c.tokens.Load(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNoSavedSession
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	var payload identityPayload
	if err := c.getJSON(ctx, "/api/session", &payload); err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			c.dropToken(ctx)
		}
		return nil, err
	}
	return identityFromPayload(payload), nil
}

// InvalidateSession tells the server to discard the session and clears the
// local token regardless of what the server said.
func (c *Client) InvalidateSession(ctx context.Context) error {
	err := c.doAuthorized(ctx, http.MethodPost, "/api/logout", nil, nil)
	c.dropToken(ctx)
	if err != nil && !errors.Is(err, ErrUnauthenticated) {
		return err
	}
	return nil
}

// ---- customer records ----

// Clients fetches the customer list, ordered by name.
func (c *Client) Clients(ctx context.Context) ([]models.Client, error) {
	var list []models.Client
	if err := c.getJSON(ctx, "/api/clients", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateClient replaces the stored record for client.ID.
func (c *Client) UpdateClient(ctx context.Context, client models.Client) error {
	body, err := json.Marshal(client)
	if err != nil {
		return err
	}
	return c.doAuthorized(ctx, http.MethodPut, "/api/clients/"+client.ID, body, nil)
}

// DeleteClient removes the record with the given id.
func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.doAuthorized(ctx, http.MethodDelete, "/api/clients/"+id, nil, nil)
}

// ---- plumbing ----

func identityFromPayload(p identityPayload) *session.Identity {
	return &session.Identity{Name: p.Name, Email: p.Email, Role: p.Role}
}

func (c *Client) dropToken(ctx context.Context) {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	if err := c.tokens.Clear(ctx); err != nil {
		c.log.Warn(ctx, "could not clear session token", "reason", err.Error())
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.doAuthorized(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doAuthorized(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthenticated
	case resp.StatusCode >= 400:
		return fmt.Errorf("%s %s: %w", method, path, unexpectedStatus(resp))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// unexpectedStatus turns a non-OK response into an error, preferring the
// server-supplied message when the body parses as an apiError.
func unexpectedStatus(resp *http.Response) error {
	var ae apiError
	if err := json.NewDecoder(resp.Body).Decode(&ae); err == nil && ae.Message != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, ae.Message)
	}
	return fmt.Errorf("server returned %d", resp.StatusCode)
}
