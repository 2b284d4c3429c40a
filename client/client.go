// Package client is a small Go client for the platform API. It centralizes
// request construction, attaches the session's bearer token, and retries
// transport-level failures with linear backoff.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const (
	defaultTimeout = 10 * time.Second
	defaultBackoff = time.Second
	maxRetries     = 2
)

// Session holds the bearer credential with an explicit lifecycle: set on
// login, cleared on logout or on a 401 response.
type Session struct {
	mu    sync.RWMutex
	token string
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Client calls the platform API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
	backoff    time.Duration
	sleep      func(time.Duration)

	// OnUnauthorized runs after a 401 clears the session, mirroring the
	// forced-logout behavior of the web frontend.
	OnUnauthorized func()
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		session:    &Session{},
		backoff:    defaultBackoff,
		sleep:      time.Sleep,
	}
}

// Session exposes the credential holder so callers can manage its lifecycle.
func (c *Client) Session() *Session {
	return c.session
}

// isTransportError reports whether the request failed before any HTTP
// response was received. Detection is structural; timeouts are excluded
// because the server may have processed the request.
func isTransportError(err error) bool {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return false
	}
	return !urlErr.Timeout()
}

// request sends one API call, resending the identical request after a
// transport-level failure. The wait grows linearly: backoff × attempt number.
func (c *Client) request(method, path, contentType string, body []byte) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			c.sleep(c.backoff * time.Duration(attempt))
		}

		req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if isTransportError(err) && attempt < maxRetries {
				continue
			}
			log.Printf("request %s %s failed: %v", method, path, err)
			return nil, err
		}

		return resp, nil
	}

	log.Printf("request %s %s failed after retries: %v", method, path, lastErr)
	return nil, lastErr
}

// doJSON performs a call and decodes the response body into out (when out is
// non-nil). Non-2xx responses become *APIError; a 401 clears the session.
func (c *Client) doJSON(method, path, contentType string, body []byte, out interface{}) error {
	resp, err := c.request(method, path, contentType, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.session.Clear()
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) getJSON(path string, out interface{}) error {
	return c.doJSON(http.MethodGet, path, "", nil, out)
}

func (c *Client) postJSON(path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.doJSON(http.MethodPost, path, "application/json", body, out)
}

func (c *Client) patchJSON(path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.doJSON(http.MethodPatch, path, "application/json", body, out)
}

// readErrorMessage pulls the server's {"error": "..."} message, falling back
// to a generic string when the body has another shape.
func readErrorMessage(body io.Reader) string {
	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&parsed); err == nil && parsed.Error != "" {
		return parsed.Error
	}
	return "request failed"
}
