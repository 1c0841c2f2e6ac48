package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/simonkvalheim/bankify/internal/middleware"
	"github.com/simonkvalheim/bankify/internal/model"
	"github.com/simonkvalheim/bankify/internal/processor"
	"github.com/simonkvalheim/bankify/internal/view"
)

// AccountHandler handles requests about the logged-in account
type AccountHandler struct {
	ctrl *processor.Controller
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(ctrl *processor.Controller) *AccountHandler {
	return &AccountHandler{ctrl: ctrl}
}

// RegisterRoutes sets up the account routes on the given router
func (h *AccountHandler) RegisterRoutes(r chi.Router) {
	r.Get("/view", h.View)
	r.Post("/sort", h.ToggleSort)
	r.Post("/close", h.Close)
}

// View handles GET /view
func (h *AccountHandler) View(w http.ResponseWriter, r *http.Request) {
	v, err := h.ctrl.View()
	if err != nil {
		writeActionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ActionResponse{Applied: true, View: &v})
}

// ToggleSort handles POST /sort
func (h *AccountHandler) ToggleSort(w http.ResponseWriter, r *http.Request) {
	res, err := h.ctrl.ToggleSort(r.Context())
	if err != nil {
		writeActionError(w, err)
		return
	}

	writeResult(w, res)
}

// Close handles POST /close
// On success the session ends and no view is returned
func (h *AccountHandler) Close(w http.ResponseWriter, r *http.Request) {
	var req model.CloseAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sessionID := middleware.GetSessionID(r.Context())
	res, err := h.ctrl.CloseAccount(r.Context(), req.Username, string(req.PIN))
	if err != nil {
		writeActionError(w, err)
		return
	}
	if res.Applied {
		log.Printf("Session %s ended by account closure", sessionID)
	}

	writeResult(w, res)
}

// ActionResponse is returned by every action endpoint.
// Rejected actions carry applied=false and nothing else.
type ActionResponse struct {
	Applied bool       `json:"applied"`
	View    *view.View `json:"view,omitempty"`
}

// Helper functions for HTTP responses

func writeResult(w http.ResponseWriter, res processor.Result) {
	writeJSON(w, http.StatusOK, ActionResponse{Applied: res.Applied, View: res.View})
}

func writeActionError(w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrNotLoggedIn) {
		writeError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	writeError(w, http.StatusInternalServerError, "Action failed")
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
