package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
)

type stubDigService struct {
	view          domain.DigSessionView
	err           error
	excavatedCell *domain.Cell
}

func (s *stubDigService) StartSession(_ context.Context) (domain.DigSessionView, error) {
	return s.view, s.err
}

func (s *stubDigService) Excavate(_ context.Context, cell domain.Cell) (domain.DigSessionView, error) {
	s.excavatedCell = &cell
	return s.view, s.err
}

func (s *stubDigService) Session(_ context.Context) (domain.DigSessionView, error) {
	return s.view, s.err
}

func (s *stubDigService) Acknowledge(_ context.Context) (domain.DigSessionView, error) {
	return s.view, s.err
}

func (s *stubDigService) Shutdown() {}

func TestHandleStart(t *testing.T) {
	svc := &stubDigService{view: domain.DigSessionView{
		State:              domain.DigStateIdle,
		RequiredClicks:     10,
		AllowanceRemaining: 3,
	}}
	h := NewDigHandler(svc)

	rec := httptest.NewRecorder()
	h.HandleStart(rec, httptest.NewRequest(http.MethodPost, "/api/v1/dig/start", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var view domain.DigSessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, domain.DigStateIdle, view.State)
	assert.Equal(t, 10, view.RequiredClicks)
}

func TestHandleStartExhausted(t *testing.T) {
	svc := &stubDigService{err: domain.ErrAllowanceExhausted}
	h := NewDigHandler(svc)

	rec := httptest.NewRecorder()
	h.HandleStart(rec, httptest.NewRequest(http.MethodPost, "/api/v1/dig/start", nil))

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrMsgAllowanceExhaustedError, resp.Error)
}

func TestHandleExcavate(t *testing.T) {
	svc := &stubDigService{view: domain.DigSessionView{
		State:      domain.DigStateAccumulating,
		ClickCount: 1,
	}}
	h := NewDigHandler(svc)

	body := strings.NewReader(`{"x": 0, "y": 11}`)
	rec := httptest.NewRecorder()
	h.HandleExcavate(rec, httptest.NewRequest(http.MethodPost, "/api/v1/dig/excavate", body))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.excavatedCell)
	assert.Equal(t, domain.Cell{X: 0, Y: 11}, *svc.excavatedCell)
}

func TestHandleExcavateMissingCoordinates(t *testing.T) {
	h := NewDigHandler(&stubDigService{})

	body := strings.NewReader(`{"x": 3}`)
	rec := httptest.NewRecorder()
	h.HandleExcavate(rec, httptest.NewRequest(http.MethodPost, "/api/v1/dig/excavate", body))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "y")
}

func TestHandleExcavateInvalidCell(t *testing.T) {
	svc := &stubDigService{err: domain.ErrInvalidCell}
	h := NewDigHandler(svc)

	body := strings.NewReader(`{"x": 99, "y": 0}`)
	rec := httptest.NewRecorder()
	h.HandleExcavate(rec, httptest.NewRequest(http.MethodPost, "/api/v1/dig/excavate", body))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrMsgInvalidCellError, resp.Error)
}

func TestHandleAcknowledgeWithoutSession(t *testing.T) {
	svc := &stubDigService{err: domain.ErrNoActiveSession}
	h := NewDigHandler(svc)

	rec := httptest.NewRecorder()
	h.HandleAcknowledge(rec, httptest.NewRequest(http.MethodPost, "/api/v1/dig/acknowledge", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrMsgNoActiveSessionError, resp.Error)
}
