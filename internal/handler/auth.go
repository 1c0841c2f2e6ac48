package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/simonkvalheim/bankify/internal/model"
	"github.com/simonkvalheim/bankify/internal/processor"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	ctrl *processor.Controller
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(ctrl *processor.Controller) *AuthHandler {
	return &AuthHandler{ctrl: ctrl}
}

// RegisterRoutes sets up the session routes
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
}

// Login handles POST /login
// A wrong username or pin is not an error: the response is applied=false
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	writeResult(w, h.ctrl.Login(r.Context(), req.Username, string(req.PIN)))
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.ctrl.Logout(r.Context()))
}
