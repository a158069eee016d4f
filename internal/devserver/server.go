// Package devserver is an in-memory stand-in for the canteen backend:
// the full REST surface the client consumes, a websocket event stream
// and a metrics endpoint, with no external dependencies to start.
package devserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/smartbytes/canteen/config"
	"github.com/smartbytes/canteen/internal/session"
	"github.com/smartbytes/canteen/pkg/logger"
	"github.com/smartbytes/canteen/pkg/metrics"
)

const tokenTTL = 24 * time.Hour

type server struct {
	data   *memory
	hub    *hub
	secret []byte
}

// Start runs the dev server on addr until the listener fails.
func Start(addr string) error {
	secret := config.AppKey()
	if secret == "" {
		secret = "smartbytes-dev-secret"
	}

	s := &server{
		data:   newMemory(),
		hub:    newHub(),
		secret: []byte(secret),
	}
	go s.hub.run()

	logger.Info("devserver: listening", "addr", addr)
	return http.ListenAndServe(addr, s.routes())
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/register", s.handleRegister)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)

			r.Get("/food/available", s.handleFoodAvailable)
			r.With(s.requireRole(session.RoleCanteenManager, session.RoleAdmin)).
				Get("/food/all", s.handleFoodAll)
			r.With(s.requireRole(session.RoleCanteenManager, session.RoleAdmin)).
				Post("/food/add", s.handleFoodAdd)
			r.With(s.requireRole(session.RoleCanteenManager, session.RoleAdmin)).
				Put("/food/{id}", s.handleFoodUpdate)
			r.With(s.requireRole(session.RoleCanteenManager, session.RoleAdmin)).
				Delete("/food/{id}", s.handleFoodDelete)
			r.With(s.requireRole(session.RoleCanteenManager, session.RoleAdmin)).
				Put("/food/{id}/toggle-availability", s.handleFoodToggle)
			r.With(s.requireRole(session.RoleCanteenManager, session.RoleAdmin)).
				Put("/food/{id}/donate", s.handleFoodDonate)
			r.With(s.requireRole(session.RoleNGO, session.RoleCanteenManager, session.RoleAdmin)).
				Get("/food/donated", s.handleFoodDonated)
			r.With(s.requireRole(session.RoleNGO)).
				Put("/food/{id}/mark-received", s.handleFoodMarkReceived)

			r.Post("/orders/place", s.handleOrderPlace)
			r.Get("/orders/my", s.handleOrdersMy)
			r.Get("/orders/my/{id}", s.handleOrderMyByID)
			r.Put("/orders/my/cancel/{id}", s.handleOrderMyCancel)
			r.With(s.requireRole(session.RoleCanteenManager, session.RoleAdmin)).
				Get("/orders/all", s.handleOrdersAll)
			r.With(s.requireRole(session.RoleCanteenManager, session.RoleAdmin)).
				Get("/orders/details/{id}", s.handleOrderDetails)
			r.With(s.requireRole(session.RoleCanteenManager, session.RoleAdmin)).
				Put("/orders/{id}/status", s.handleOrderStatus)
			r.With(s.requireRole(session.RoleCanteenManager, session.RoleAdmin)).
				Put("/orders/cancel/{id}", s.handleOrderCancel)

			r.Post("/payments/process", s.handlePaymentProcess)
			r.Get("/payments/my", s.handlePaymentsMy)
			r.Get("/payments/my/{id}", s.handlePaymentMyByID)
			r.With(s.requireRole(session.RoleAdmin)).
				Get("/payments/all", s.handlePaymentsAll)
			r.With(s.requireRole(session.RoleAdmin)).
				Put("/payments/{id}/status", s.handlePaymentStatus)

			r.With(s.requireRole(session.RoleAdmin)).Get("/users/all", s.handleUsersAll)
			r.With(s.requireRole(session.RoleAdmin)).Get("/users/{id}", s.handleUserByID)
			r.With(s.requireRole(session.RoleAdmin)).Put("/users/{id}/role", s.handleUserRole)
			r.With(s.requireRole(session.RoleAdmin)).Delete("/users/{id}", s.handleUserDelete)
		})
	})

	r.Get("/ws/events", s.hub.serveWS)
	r.Handle("/metrics", metrics.Handler())

	return r
}

type ctxKey int

const identityKey ctxKey = 0

// identity is the authenticated caller extracted from the bearer token.
type identity struct {
	UserID   int64
	Username string
	Role     string
}

type devClaims struct {
	UserID int64  `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (s *server) mintToken(acct *account) (string, error) {
	claims := devClaims{
		UserID: acct.ID,
		Role:   acct.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acct.Username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// authenticate rejects requests without a valid bearer token and stashes
// the caller's identity in the request context.
func (s *server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" || raw == r.Header.Get("Authorization") {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		var claims devClaims
		token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		id := identity{UserID: claims.UserID, Username: claims.Subject, Role: claims.Role}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, id)))
	})
}

// requireRole gates a route on the caller's role.
func (s *server) requireRole(allowed ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := caller(r)
			for _, role := range allowed {
				if id.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, http.StatusForbidden, "insufficient role: "+id.Role)
		})
	}
}

func caller(r *http.Request) identity {
	id, _ := r.Context().Value(identityKey).(identity)
	return id
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("devserver: encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func readJSON(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}
