package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ContextKey is the type for context keys to avoid collisions
type ContextKey string

const (
	// SessionIDKey is the context key for the active session ID
	SessionIDKey ContextKey = "session_id"
)

// Sessions reports on the single active session
type Sessions interface {
	Session() (uuid.UUID, bool)
}

// SessionMiddleware rejects requests made while nobody is logged in
type SessionMiddleware struct {
	sessions Sessions
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(sessions Sessions) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// RequireSession is middleware that requires an active session
func (m *SessionMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := m.sessions.Session()
		if !ok {
			writeUnauthorized(w, "Not logged in")
			return
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID extracts the session ID from the request context
// Returns uuid.Nil outside RequireSession
func GetSessionID(ctx context.Context) uuid.UUID {
	id, ok := ctx.Value(SessionIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error": "` + message + `"}`))
}
