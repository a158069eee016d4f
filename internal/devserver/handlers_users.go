package devserver

import (
	"net/http"
	"time"

	"github.com/smartbytes/canteen/app/models"
	"github.com/smartbytes/canteen/internal/session"
	"github.com/smartbytes/canteen/pkg/collection"
)

func (s *server) handleUsersAll(w http.ResponseWriter, r *http.Request) {
	s.data.mu.Lock()
	users := make([]models.User, 0, len(s.data.users))
	for _, acct := range s.data.users {
		users = append(users, acct.User)
	}
	s.data.mu.Unlock()

	writeJSON(w, http.StatusOK, collection.SortBy(users, func(a, b models.User) bool {
		return a.ID < b.ID
	}))
}

func (s *server) handleUserByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	s.data.mu.Lock()
	acct, ok := s.data.users[userID]
	if !ok {
		s.data.mu.Unlock()
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	out := acct.User
	s.data.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleUserRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	newRole := session.NormalizeRole(r.URL.Query().Get("newRole"))
	switch newRole {
	case session.RoleStudent, session.RoleCanteenManager, session.RoleAdmin, session.RoleNGO:
	default:
		writeError(w, http.StatusBadRequest, "Unknown role: "+r.URL.Query().Get("newRole"))
		return
	}

	s.data.mu.Lock()
	acct, ok := s.data.users[userID]
	if !ok {
		s.data.mu.Unlock()
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	now := time.Now()
	acct.Role = newRole
	acct.UpdatedAt = &now
	out := acct.User
	s.data.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if caller(r).UserID == userID {
		writeError(w, http.StatusBadRequest, "You cannot delete your own account")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, ok := s.data.users[userID]; !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	delete(s.data.users, userID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}
