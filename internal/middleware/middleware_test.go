package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

type fakeSessions struct {
	id uuid.UUID
}

func (f fakeSessions) Session() (uuid.UUID, bool) { return f.id, f.id != uuid.Nil }

func TestRequireSession(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		sessions   fakeSessions
		wantStatus int
		wantID     uuid.UUID
	}{
		{name: "logged in", sessions: fakeSessions{id: id}, wantStatus: http.StatusOK, wantID: id},
		{name: "logged out", sessions: fakeSessions{}, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen uuid.UUID
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = GetSessionID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			NewSessionMiddleware(tt.sessions).RequireSession(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/view", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if seen != tt.wantID {
				t.Errorf("session ID in context = %v, want %v", seen, tt.wantID)
			}
		})
	}
}

func TestParseOrigins(t *testing.T) {
	cfg := ParseOrigins(" http://a.test , ,http://b.test")
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "http://a.test" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}

	if def := ParseOrigins(""); len(def.AllowedOrigins) != len(DefaultCORSConfig().AllowedOrigins) {
		t.Errorf("empty list should fall back to defaults, got %v", def.AllowedOrigins)
	}
}

func TestCORS(t *testing.T) {
	handler := CORS(CORSConfig{AllowedOrigins: []string{"http://a.test"}})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
	)

	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantAllow  string
	}{
		{name: "allowed origin", method: http.MethodPost, origin: "http://a.test", wantStatus: http.StatusTeapot, wantAllow: "http://a.test"},
		{name: "other origin", method: http.MethodPost, origin: "http://evil.test", wantStatus: http.StatusTeapot, wantAllow: ""},
		{name: "preflight", method: http.MethodOptions, origin: "http://a.test", wantStatus: http.StatusOK, wantAllow: "http://a.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/login", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantAllow)
			}
		})
	}
}

func TestCORSConfig_Wildcard(t *testing.T) {
	cfg := CORSConfig{AllowedOrigins: []string{"*"}}
	if !cfg.Allows("http://anything.test") {
		t.Error("wildcard should allow any origin")
	}
	if cfg.Allows("") {
		t.Error("requests without Origin need no CORS headers")
	}
}
