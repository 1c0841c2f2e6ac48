package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/simonkvalheim/bankify/internal/model"
	"github.com/simonkvalheim/bankify/internal/processor"
)

// TransferHandler handles money movement requests
type TransferHandler struct {
	ctrl *processor.Controller
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(ctrl *processor.Controller) *TransferHandler {
	return &TransferHandler{ctrl: ctrl}
}

// RegisterRoutes sets up the transfer and loan routes on the given router
func (h *TransferHandler) RegisterRoutes(r chi.Router) {
	r.Post("/transfer", h.Transfer)
	r.Post("/loan", h.RequestLoan)
}

// Transfer handles POST /transfer
func (h *TransferHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.ctrl.Transfer(r.Context(), req.To, string(req.Amount))
	if err != nil {
		writeActionError(w, err)
		return
	}

	writeResult(w, res)
}

// RequestLoan handles POST /loan
func (h *TransferHandler) RequestLoan(w http.ResponseWriter, r *http.Request) {
	var req model.LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.ctrl.RequestLoan(r.Context(), string(req.Amount))
	if err != nil {
		writeActionError(w, err)
		return
	}

	writeResult(w, res)
}
