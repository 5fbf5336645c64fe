package handler

import (
	"net/http"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/inventory"
)

// CollectionHandler exposes the item collection and achievement board
type CollectionHandler struct {
	inventoryService inventory.Service
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(inventoryService inventory.Service) *CollectionHandler {
	return &CollectionHandler{inventoryService: inventoryService}
}

// CollectionResponse bundles the discovered items with the dig counter
type CollectionResponse struct {
	Items     []domain.DiscoveredItem `json:"items"`
	TotalDigs int                     `json:"total_digs"`
}

// HandleGetCollection returns every discovered item
// @Summary Get the item collection
// @Tags collection
// @Produce json
// @Success 200 {object} CollectionResponse
// @Router /api/v1/collection [get]
func (h *CollectionHandler) HandleGetCollection(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryService.Items(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetCollectionFailed, err)
		return
	}
	totalDigs, err := h.inventoryService.TotalDigs(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetCollectionFailed, err)
		return
	}

	if items == nil {
		items = []domain.DiscoveredItem{}
	}
	respondJSON(w, http.StatusOK, CollectionResponse{Items: items, TotalDigs: totalDigs})
}

// HandleGetAchievements returns the achievement board
// @Summary Get achievements
// @Tags collection
// @Produce json
// @Success 200 {array} domain.Achievement
// @Router /api/v1/achievements [get]
func (h *CollectionHandler) HandleGetAchievements(w http.ResponseWriter, r *http.Request) {
	board, err := h.inventoryService.Achievements(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetAchievementsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, board)
}
