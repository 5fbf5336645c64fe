package handler

import (
	"net/http"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/dig"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
)

// DigHandler exposes the dig session state machine over HTTP
type DigHandler struct {
	digService dig.Service
}

// NewDigHandler creates a new dig handler
func NewDigHandler(digService dig.Service) *DigHandler {
	return &DigHandler{digService: digService}
}

// ExcavateRequest is a click on one grid cell
type ExcavateRequest struct {
	X *int `json:"x" validate:"required"`
	Y *int `json:"y" validate:"required"`
}

// HandleStart begins a new dig session
// @Summary Start a dig session
// @Description Opens a dig session if any daily allowance or bonus digs remain
// @Tags dig
// @Produce json
// @Success 200 {object} domain.DigSessionView
// @Failure 429 {object} ErrorResponse
// @Router /api/v1/dig/start [post]
func (h *DigHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	view, err := h.digService.StartSession(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgStartDigFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleExcavate registers a click on a grid cell
// @Summary Excavate a cell
// @Description Chips one ice cell; enough clicks trigger resolution
// @Tags dig
// @Accept json
// @Produce json
// @Param request body ExcavateRequest true "Cell coordinates"
// @Success 200 {object} domain.DigSessionView
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/dig/excavate [post]
func (h *DigHandler) HandleExcavate(w http.ResponseWriter, r *http.Request) {
	var req ExcavateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Excavate"); err != nil {
		return
	}

	view, err := h.digService.Excavate(r.Context(), domain.Cell{X: *req.X, Y: *req.Y})
	if err != nil {
		respondServiceError(w, r, ErrMsgExcavateFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleSession returns the current dig session snapshot
// @Summary Get the dig session
// @Tags dig
// @Produce json
// @Success 200 {object} domain.DigSessionView
// @Router /api/v1/dig/session [get]
func (h *DigHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.digService.Session(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetSessionFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleAcknowledge settles a resolved dig and resets the board
// @Summary Acknowledge a resolved dig
// @Description Spends the dig (bonus pool first), arms any item boost and resets the board
// @Tags dig
// @Produce json
// @Success 200 {object} domain.DigSessionView
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/dig/acknowledge [post]
func (h *DigHandler) HandleAcknowledge(w http.ResponseWriter, r *http.Request) {
	view, err := h.digService.Acknowledge(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgAcknowledgeFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}
