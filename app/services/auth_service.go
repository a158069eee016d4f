package services

import (
	"net/http"

	"github.com/smartbytes/canteen/app/models"
	"github.com/smartbytes/canteen/internal/session"
)

// AuthService talks to /auth. It satisfies session.Authenticator so the
// session store can drive login and registration through it.
type AuthService struct {
	c *Client
}

func NewAuthService(c *Client) *AuthService {
	return &AuthService{c: c}
}

// Authenticate exchanges credentials for a token. Failures come back as
// *session.AuthError: the backend's message when it answered, a generic
// network message when it did not.
func (s *AuthService) Authenticate(username, password string) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := s.c.do(http.MethodPost, "/auth/login", models.LoginRequest{
		Username: username,
		Password: password,
	}, nil)
	if err != nil {
		return out, &session.AuthError{Message: "could not reach the canteen service"}
	}

	if !resp.OK() {
		var body models.APIError
		_ = resp.JSON(&body)
		msg := body.Text()
		if msg == "" {
			msg = "invalid username or password"
		}
		return out, &session.AuthError{Message: msg}
	}

	if err := resp.JSON(&out); err != nil {
		return out, &session.AuthError{Message: "unreadable login response"}
	}
	return out, nil
}

// SignUp registers a new account and returns the backend's confirmation
// message.
func (s *AuthService) SignUp(req models.RegisterRequest) (string, error) {
	resp, err := s.c.do(http.MethodPost, "/auth/register", req, nil)
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", decodeError(resp)
	}

	var body models.APIError
	if err := resp.JSON(&body); err == nil && body.Text() != "" {
		return body.Text(), nil
	}
	return resp.Text(), nil
}
