package handler

import (
	"net/http"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/allowance"
)

// AllowanceHandler exposes the daily dig budget
type AllowanceHandler struct {
	allowanceService allowance.Service
}

// NewAllowanceHandler creates a new allowance handler
func NewAllowanceHandler(allowanceService allowance.Service) *AllowanceHandler {
	return &AllowanceHandler{allowanceService: allowanceService}
}

// AllowanceResponse reports the remaining daily digs
type AllowanceResponse struct {
	Remaining int `json:"remaining"`
}

// HandleGet returns today's remaining allowance
// @Summary Get the daily dig allowance
// @Tags allowance
// @Produce json
// @Success 200 {object} AllowanceResponse
// @Router /api/v1/allowance [get]
func (h *AllowanceHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	remaining, err := h.allowanceService.Remaining(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetAllowanceFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, AllowanceResponse{Remaining: remaining})
}
