package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	appMiddleware "github.com/simonkvalheim/bankify/internal/middleware"
	"github.com/simonkvalheim/bankify/internal/processor"
)

// Backlog reports how many movement events are waiting in the feed
type Backlog interface {
	QueueLength(ctx context.Context) (int64, error)
}

// NewRouter wires every route over one controller.
// backlog may be nil when movement events are disabled.
func NewRouter(ctrl *processor.Controller, cors appMiddleware.CORSConfig, backlog Backlog) http.Handler {
	authHandler := NewAuthHandler(ctrl)
	accountHandler := NewAccountHandler(ctrl)
	transferHandler := NewTransferHandler(ctrl)
	sessionMiddleware := appMiddleware.NewSessionMiddleware(ctrl)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(appMiddleware.CORS(cors))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler(backlog))

	// Session routes (no session required)
	authHandler.RegisterRoutes(r)

	// Actions on the logged-in account
	r.Route("/v1", func(r chi.Router) {
		r.Use(sessionMiddleware.RequireSession)

		accountHandler.RegisterRoutes(r)
		transferHandler.RegisterRoutes(r)
	})

	return r
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Backlog *int64 `json:"backlog,omitempty"`
}

func healthHandler(backlog Backlog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: "healthy"}
		if backlog == nil {
			writeJSON(w, http.StatusOK, resp)
			return
		}

		n, err := backlog.QueueLength(r.Context())
		if err != nil {
			log.Printf("Failed to read movement backlog: %v", err)
			resp.Status = "degraded"
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}

		resp.Backlog = &n
		writeJSON(w, http.StatusOK, resp)
	}
}
