// Package services is the API client facade: one service per backend
// resource, all funnelled through a shared Client that attaches the bearer
// credential and enforces the global authorization-failure policy.
package services

import (
	"fmt"
	"net/http"
	"time"

	"github.com/smartbytes/canteen/app/models"
	"github.com/smartbytes/canteen/config"
	"github.com/smartbytes/canteen/internal/session"
	"github.com/smartbytes/canteen/pkg/httpclient"
	"github.com/smartbytes/canteen/pkg/logger"
	"github.com/smartbytes/canteen/pkg/metrics"
)

// PermissionError is a 403: the action is forbidden for the current role
// but the session stays valid.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string { return "access denied: " + e.Message }

// APIError is any other non-2xx backend answer, carrying the backend's
// message verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

// Client is the shared transport under every service. Any 401 on an
// authenticated call clears the session and fires the unauthorized hook,
// regardless of which view made the call.
type Client struct {
	base           string
	sessions       *session.Store
	onUnauthorized func()
}

// NewClient builds the facade transport around the session store.
func NewClient(sessions *session.Store) *Client {
	return &Client{
		base:     config.APIBaseURL(),
		sessions: sessions,
	}
}

// OnUnauthorized registers the forced-navigation hook invoked after a 401
// clears the session.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

const loginPath = "/auth/login"

// do sends one request and applies the facade policy: bearer attach,
// metrics, and the 401 forced logout (never for the login call itself).
func (c *Client) do(method, path string, body interface{}, query map[string]string) (*httpclient.Response, error) {
	var req *httpclient.Request
	switch method {
	case http.MethodGet:
		req = httpclient.Get(c.base + path)
	case http.MethodPost:
		req = httpclient.Post(c.base + path)
	case http.MethodPut:
		req = httpclient.Put(c.base + path)
	case http.MethodDelete:
		req = httpclient.Delete(c.base + path)
	default:
		return nil, fmt.Errorf("services: unsupported method %s", method)
	}

	if token := c.sessions.Token(); token != "" {
		req.Bearer(token)
	}
	if body != nil {
		req.Body(body)
	}
	for k, v := range query {
		req.Query(k, v)
	}

	start := time.Now()
	resp, err := req.Send()
	if err != nil {
		metrics.ObserveCall(method, path, 0, time.Since(start))
		return nil, err
	}
	metrics.ObserveCall(method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized && path != loginPath {
		logger.Warn("services: credential rejected, clearing session", "path", path)
		metrics.ForcedLogouts.Inc()
		c.sessions.Logout()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}

	return resp, nil
}

// decodeError turns a non-2xx response into the taxonomy the views render:
// PermissionError for 403, APIError with the backend message otherwise.
func decodeError(resp *httpclient.Response) error {
	var body models.APIError
	_ = resp.JSON(&body)

	msg := body.Text()
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode == http.StatusForbidden {
		return &PermissionError{Message: msg}
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
