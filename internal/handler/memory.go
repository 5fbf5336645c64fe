package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/memory"
)

// MemoryHandler exposes the memory feed, sealing, comments and search
type MemoryHandler struct {
	memoryService memory.Service
}

// NewMemoryHandler creates a new memory handler
func NewMemoryHandler(memoryService memory.Service) *MemoryHandler {
	return &MemoryHandler{memoryService: memoryService}
}

// CreateMemoryRequest seals a new memory into the permafrost
type CreateMemoryRequest struct {
	Photo  string `json:"photo" validate:"required,url"`
	Text   string `json:"text" validate:"required,max=500"`
	Author string `json:"author" validate:"required,max=20"`
}

// AddCommentRequest adds a comment to a discovered memory
type AddCommentRequest struct {
	Author string `json:"author" validate:"required,max=20"`
	Text   string `json:"text" validate:"required,max=300"`
}

// HandleList returns the discovered memory feed
// @Summary List discovered memories
// @Tags memories
// @Produce json
// @Success 200 {array} domain.Memory
// @Router /api/v1/memories [get]
func (h *MemoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	memories, err := h.memoryService.ListDiscovered(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetMemoriesFailed, err)
		return
	}
	if memories == nil {
		memories = []domain.Memory{}
	}
	respondJSON(w, http.StatusOK, memories)
}

// HandleCreate seals a new memory
// @Summary Seal a new memory
// @Tags memories
// @Accept json
// @Produce json
// @Param request body CreateMemoryRequest true "Memory to seal"
// @Success 201 {object} domain.Memory
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/memories [post]
func (h *MemoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateMemoryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Seal memory"); err != nil {
		return
	}

	created, err := h.memoryService.Create(r.Context(), req.Photo, req.Text, req.Author)
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateMemoryFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// HandleAddComment adds a comment to a discovered memory
// @Summary Comment on a memory
// @Tags memories
// @Accept json
// @Produce json
// @Param id path string true "Memory ID"
// @Param request body AddCommentRequest true "Comment"
// @Success 201 {object} domain.Comment
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/memories/{id}/comments [post]
func (h *MemoryHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	memoryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidMemoryIDHTTP)
		return
	}

	var req AddCommentRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add comment"); err != nil {
		return
	}

	comment, err := h.memoryService.AddComment(r.Context(), memoryID, req.Author, req.Text)
	if err != nil {
		respondServiceError(w, r, ErrMsgAddCommentFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, comment)
}

// HandleSearch searches discovered memories by caption or author
// @Summary Search memories
// @Tags memories
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} domain.Memory
// @Router /api/v1/memories/search [get]
func (h *MemoryHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query, ok := GetQueryParam(r, w, "q")
	if !ok {
		return
	}

	matches, err := h.memoryService.Search(r.Context(), query)
	if err != nil {
		respondServiceError(w, r, ErrMsgSearchFailed, err)
		return
	}
	if matches == nil {
		matches = []domain.Memory{}
	}
	respondJSON(w, http.StatusOK, matches)
}
