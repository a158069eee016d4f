// Package session owns the authenticated identity: the logged-in user, the
// bearer credential attached to every API call, and its persisted copy
// under the "user" state key.
//
// Role normalization happens here and nowhere else: whatever form the
// backend returns ("NGO" or "ROLE_NGO"), every other layer sees the
// canonical ROLE_-prefixed value.
package session

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/smartbytes/canteen/app/models"
	"github.com/smartbytes/canteen/config"
	"github.com/smartbytes/canteen/internal/state"
	"github.com/smartbytes/canteen/pkg/crypt"
	"github.com/smartbytes/canteen/pkg/logger"
)

// Canonical roles.
const (
	RoleStudent        = "ROLE_STUDENT"
	RoleCanteenManager = "ROLE_CANTEEN_MANAGER"
	RoleAdmin          = "ROLE_ADMIN"
	RoleNGO            = "ROLE_NGO"
)

// Key is the state-repository key holding the session.
const Key = "user"

// Session is the persisted identity for the current login.
type Session struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// AuthError is returned when a login attempt fails. Message carries the
// backend-supplied reason, or a generic network-failure message.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return "authentication failed: " + e.Message }

// Authenticator is the slice of the API facade the session store needs.
type Authenticator interface {
	Authenticate(username, password string) (models.LoginResponse, error)
	SignUp(req models.RegisterRequest) (string, error)
}

// Store is the session store. It is the sole writer of the "user" key.
type Store struct {
	repo    state.Repository
	current *Session
	loaded  bool
}

// NewStore returns a session store persisting through repo.
func NewStore(repo state.Repository) *Store {
	return &Store{repo: repo}
}

// NormalizeRole maps a raw backend role to its canonical prefixed form:
// "ngo" → "ROLE_NGO", "ROLE_ADMIN" → "ROLE_ADMIN". Empty stays empty.
func NormalizeRole(raw string) string {
	role := strings.ToUpper(strings.TrimSpace(raw))
	if role == "" {
		return ""
	}
	if !strings.HasPrefix(role, "ROLE_") {
		role = "ROLE_" + role
	}
	return role
}

// Login exchanges credentials for a session. Any prior session is cleared
// first, so a failed attempt never leaves a stale identity behind.
func (s *Store) Login(auth Authenticator, username, password string) (*Session, error) {
	s.Logout()

	resp, err := auth.Authenticate(username, password)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, &AuthError{Message: "login response did not contain a credential"}
	}

	sess := &Session{
		UserID:   resp.ID,
		Username: resp.Username,
		Email:    resp.Email,
		Role:     NormalizeRole(resp.Role),
		Token:    resp.Token,
	}

	s.current = sess
	s.loaded = true
	s.persist()
	return sess, nil
}

// Register delegates to the backend. Session state is never mutated.
func (s *Store) Register(auth Authenticator, req models.RegisterRequest) (string, error) {
	return auth.SignUp(req)
}

// Logout clears the session unconditionally. Idempotent.
func (s *Store) Logout() {
	s.current = nil
	s.loaded = true
	if err := s.repo.Delete(Key); err != nil {
		logger.Warn("session: delete persisted session", "error", err)
	}
}

// Current returns the active session, restoring the persisted one on first
// call. Returns nil when no one is logged in.
func (s *Store) Current() *Session {
	if !s.loaded {
		s.current = s.restore()
		s.loaded = true
	}
	return s.current
}

// Token returns the bearer credential, or "" when logged out.
func (s *Store) Token() string {
	if sess := s.Current(); sess != nil {
		return sess.Token
	}
	return ""
}

// TokenExpiry reads the expiry claim from the bearer credential without
// verifying the signature (the client has no key; display only).
func (s *Store) TokenExpiry() (time.Time, bool) {
	sess := s.Current()
	if sess == nil {
		return time.Time{}, false
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(sess.Token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// persist writes the session wholesale. Failures are logged, not rolled
// back: the in-memory session stays authoritative for this process.
func (s *Store) persist() {
	if s.current == nil {
		return
	}

	var data []byte
	if config.AppKey() != "" {
		sealed, err := crypt.EncryptJSON(s.current)
		if err != nil {
			logger.Warn("session: encrypt", "error", err)
			return
		}
		data = []byte(sealed)
	} else {
		raw, err := json.Marshal(s.current)
		if err != nil {
			logger.Warn("session: marshal", "error", err)
			return
		}
		data = raw
	}

	if err := s.repo.Save(Key, data); err != nil {
		logger.Warn("session: persist", "error", err)
	}
}

// restore reads the persisted session. Corrupt or undecryptable state
// degrades to logged-out rather than failing the command.
func (s *Store) restore() *Session {
	data, found := s.repo.Load(Key)
	if !found {
		return nil
	}

	var sess Session
	if config.AppKey() != "" {
		if err := crypt.DecryptJSON(string(data), &sess); err == nil {
			sess.Role = NormalizeRole(sess.Role)
			return &sess
		}
		// Fall through: the file may predate APP_KEY.
	}
	if err := json.Unmarshal(data, &sess); err != nil {
		logger.Warn("session: corrupt persisted session, discarding")
		return nil
	}
	if sess.Token == "" {
		return nil
	}
	sess.Role = NormalizeRole(sess.Role)
	return &sess
}
