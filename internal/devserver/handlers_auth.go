package devserver

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/smartbytes/canteen/app/models"
	"github.com/smartbytes/canteen/internal/session"
	"github.com/smartbytes/canteen/pkg/validate"
)

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !readJSON(w, r, &req) {
		return
	}

	s.data.mu.Lock()
	acct := s.data.findUser(req.Username)
	s.data.mu.Unlock()

	if acct == nil || bcrypt.CompareHashAndPassword(acct.hash, []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := s.mintToken(acct)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Token:    token,
		ID:       acct.ID,
		Username: acct.Username,
		Email:    acct.Email,
		Role:     acct.Role,
	})
}

func (s *server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !readJSON(w, r, &req) {
		return
	}
	if errs := validate.Struct(req); len(errs) > 0 {
		for _, msg := range errs {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if s.data.findUser(req.Username) != nil {
		writeError(w, http.StatusBadRequest, "Username is already taken")
		return
	}
	s.data.addUser(req.Username, req.Email, session.NormalizeRole(req.Role), req.Password)

	writeJSON(w, http.StatusOK, map[string]string{"message": "User registered successfully!"})
}
