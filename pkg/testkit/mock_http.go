// Package testkit provides test doubles for the canteen client.
//
// MockTransport implements http.RoundTripper: it matches outgoing requests
// against scripted stubs and returns synthetic responses instead of making
// real network calls. Install it on the shared client before the test:
//
//	mt := testkit.NewMockTransport()
//	mt.Stub("POST", "/auth/login", 200, testkit.JSON(`{"token":"t",...}`))
//	httpclient.DefaultClient.Transport = mt
//	defer httpclient.ResetTransport()
package testkit

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Stub is one scripted request/response pair. Requests match when the
// method is equal and the URL path contains Path.
type Stub struct {
	Method string
	Path   string
	Status int
	Body   []byte

	calls int
}

// MockTransport is a scripted http.RoundTripper.
type MockTransport struct {
	mu    sync.Mutex
	stubs []*Stub
}

// NewMockTransport returns an empty transport; add expectations with Stub.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// Stub registers a scripted response. Later stubs win over earlier ones so
// tests can override a default.
func (mt *MockTransport) Stub(method, path string, status int, body []byte) *MockTransport {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.stubs = append(mt.stubs, &Stub{Method: method, Path: path, Status: status, Body: body})
	return mt
}

// JSON is a readability helper for stub bodies.
func JSON(s string) []byte { return []byte(s) }

// RoundTrip intercepts the outgoing request and returns a synthetic response.
func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	for i := len(mt.stubs) - 1; i >= 0; i-- {
		s := mt.stubs[i]
		if s.Method != req.Method {
			continue
		}
		if !strings.Contains(req.URL.Path, s.Path) {
			continue
		}

		s.calls++
		header := make(http.Header)
		header.Set("Content-Type", "application/json")
		return &http.Response{
			StatusCode: s.Status,
			Status:     fmt.Sprintf("%d %s", s.Status, http.StatusText(s.Status)),
			Header:     header,
			Body:       io.NopCloser(bytes.NewReader(s.Body)),
			Request:    req,
		}, nil
	}

	return nil, fmt.Errorf("testkit: unexpected outgoing call %s %s (no matching stub)", req.Method, req.URL)
}

// Calls returns how many times the stub for method+path was hit.
func (mt *MockTransport) Calls(method, path string) int {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	for _, s := range mt.stubs {
		if s.Method == method && s.Path == path {
			return s.calls
		}
	}
	return 0
}

// UncalledStubs lists registered stubs that were never matched.
func (mt *MockTransport) UncalledStubs() []string {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	var out []string
	for _, s := range mt.stubs {
		if s.calls == 0 {
			out = append(out, s.Method+" "+s.Path)
		}
	}
	return out
}
