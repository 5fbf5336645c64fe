package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
)

type stubMemoryService struct {
	discovered []domain.Memory
	created    *domain.Memory
	comment    *domain.Comment
	err        error

	lastQuery string
}

func (s *stubMemoryService) Create(_ context.Context, photo, text, author string) (domain.Memory, error) {
	if s.err != nil {
		return domain.Memory{}, s.err
	}
	m := domain.Memory{ID: uuid.New(), Photo: photo, Text: text, Author: author, Discovered: true}
	s.created = &m
	return m, nil
}

func (s *stubMemoryService) ListDiscovered(_ context.Context) ([]domain.Memory, error) {
	return s.discovered, s.err
}

func (s *stubMemoryService) ListUndiscovered(_ context.Context) ([]domain.Memory, error) {
	return nil, s.err
}

func (s *stubMemoryService) MarkDiscovered(_ context.Context, _ uuid.UUID) (domain.Memory, error) {
	return domain.Memory{}, s.err
}

func (s *stubMemoryService) AddComment(_ context.Context, _ uuid.UUID, author, text string) (domain.Comment, error) {
	if s.err != nil {
		return domain.Comment{}, s.err
	}
	c := domain.Comment{ID: uuid.New(), Author: author, Text: text}
	s.comment = &c
	return c, nil
}

func (s *stubMemoryService) Search(_ context.Context, query string) ([]domain.Memory, error) {
	s.lastQuery = query
	return s.discovered, s.err
}

func newMemoryRouter(svc *stubMemoryService) http.Handler {
	h := NewMemoryHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/v1/memories", h.HandleList)
	r.Post("/api/v1/memories", h.HandleCreate)
	r.Get("/api/v1/memories/search", h.HandleSearch)
	r.Post("/api/v1/memories/{id}/comments", h.HandleAddComment)
	return r
}

func TestHandleListMemories(t *testing.T) {
	svc := &stubMemoryService{discovered: []domain.Memory{
		{ID: uuid.New(), Author: "氷の旅人", Discovered: true},
	}}

	rec := httptest.NewRecorder()
	newMemoryRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/memories", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var memories []domain.Memory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &memories))
	require.Len(t, memories, 1)
	assert.Equal(t, "氷の旅人", memories[0].Author)
}

func TestHandleListMemoriesEmptyIsArray(t *testing.T) {
	rec := httptest.NewRecorder()
	newMemoryRouter(&stubMemoryService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/memories", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestHandleCreateMemory(t *testing.T) {
	svc := &stubMemoryService{}
	body := strings.NewReader(`{"photo": "https://example.com/p.jpg", "text": "雪原の足跡", "author": "ゲスト"}`)

	rec := httptest.NewRecorder()
	newMemoryRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/memories", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, "雪原の足跡", svc.created.Text)
}

func TestHandleCreateMemoryValidation(t *testing.T) {
	body := strings.NewReader(`{"photo": "not-a-url", "text": "", "author": "ゲスト"}`)

	rec := httptest.NewRecorder()
	newMemoryRouter(&stubMemoryService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/memories", body))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "photo")
	assert.Contains(t, resp.Fields, "text")
}

func TestHandleAddComment(t *testing.T) {
	svc := &stubMemoryService{}
	id := uuid.New()
	body := strings.NewReader(`{"author": "ゲスト", "text": "すごい！"}`)

	rec := httptest.NewRecorder()
	newMemoryRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/memories/"+id.String()+"/comments", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.comment)
	assert.Equal(t, "すごい！", svc.comment.Text)
}

func TestHandleAddCommentBadID(t *testing.T) {
	body := strings.NewReader(`{"author": "ゲスト", "text": "すごい！"}`)

	rec := httptest.NewRecorder()
	newMemoryRouter(&stubMemoryService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/memories/not-a-uuid/comments", body))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrMsgInvalidMemoryIDHTTP, resp.Error)
}

func TestHandleAddCommentNotFound(t *testing.T) {
	svc := &stubMemoryService{err: domain.ErrMemoryNotFound}
	body := strings.NewReader(`{"author": "ゲスト", "text": "どこ？"}`)

	rec := httptest.NewRecorder()
	newMemoryRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/memories/"+uuid.NewString()+"/comments", body))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleSearch(t *testing.T) {
	svc := &stubMemoryService{}

	rec := httptest.NewRecorder()
	newMemoryRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/memories/search?q=%E3%82%AA%E3%83%BC%E3%83%AD%E3%83%A9", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "オーロラ", svc.lastQuery)
}

func TestHandleSearchMissingQuery(t *testing.T) {
	rec := httptest.NewRecorder()
	newMemoryRouter(&stubMemoryService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/memories/search", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
