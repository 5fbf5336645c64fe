package handler

import (
	"net/http"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/profile"
)

// ProfileHandler exposes the local player profile
type ProfileHandler struct {
	profileService profile.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService profile.Service) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpdateProfileRequest replaces the stored profile
type UpdateProfileRequest struct {
	Username string `json:"username" validate:"max=20"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
	Bio      string `json:"bio" validate:"max=200"`
}

// HandleGet returns the player profile
// @Summary Get the profile
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Router /api/v1/profile [get]
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.profileService.Get(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetProfileFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleUpdate replaces the player profile
// @Summary Update the profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/profile [put]
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update profile"); err != nil {
		return
	}

	saved, err := h.profileService.Update(r.Context(), domain.Profile{
		Username: req.Username,
		Avatar:   req.Avatar,
		Bio:      req.Bio,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgUpdateProfileFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}
