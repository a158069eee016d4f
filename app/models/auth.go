package models

// LoginRequest is the credentials payload for /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the backend's answer to a successful login. The role
// arrives in raw form ("NGO") or prefixed ("ROLE_NGO") depending on the
// backend version; the session store normalizes it.
type LoginResponse struct {
	Token    string `json:"token"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// RegisterRequest is the payload for /auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,alpha_dash,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,in=student|canteen_manager|admin|ngo"`
}

// APIError is the generic error body surfaced verbatim to the user.
type APIError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Text returns the most specific message the backend supplied.
func (e APIError) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
