package httpapi

import (
	"context"
	"log"
	"net/http"
	"strings"

	"restaurant-backend/internal/service"
)

// Actor is the authenticated identity forwarded by the auth layer in
// front of this service.
type Actor struct {
	Email string
	Roles []string
}

type contextKey string

const actorKey contextKey = "actor"

// WithIdentity extracts the X-User-Email / X-User-Roles headers into the
// request context. Roles are comma-separated; no case folding is applied.
func WithIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := Actor{Email: strings.TrimSpace(r.Header.Get("X-User-Email"))}
		if raw := r.Header.Get("X-User-Roles"); raw != "" {
			for _, role := range strings.Split(raw, ",") {
				if role = strings.TrimSpace(role); role != "" {
					actor.Roles = append(actor.Roles, role)
				}
			}
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, actor)))
	})
}

func actorFrom(r *http.Request) Actor {
	if actor, ok := r.Context().Value(actorKey).(Actor); ok {
		return actor
	}
	return Actor{}
}

func requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if actorFrom(r).Email == "" {
			writeError(w, http.StatusUnauthorized, "Authentication required.")
			return
		}
		next(w, r)
	}
}

func requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return requireAuth(func(w http.ResponseWriter, r *http.Request) {
		actor := actorFrom(r)
		if !service.HasRole(actor.Roles, service.AdminRole) {
			log.Printf("Access denied: user %s lacks %s role for %s %s", actor.Email, service.AdminRole, r.Method, r.URL.Path)
			writeError(w, http.StatusForbidden, "Access Denied: You do not have permission to perform this action.")
			return
		}
		next(w, r)
	})
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
