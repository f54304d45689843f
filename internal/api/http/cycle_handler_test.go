package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
	"github.com/edlight123/rotaractnyc-sub001/internal/service"
)

func TestCycleCreate(t *testing.T) {
	svc := new(MockDuesCycleService)
	handler := NewCycleHandler(svc)

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	svc.On("CreateCycle", mock.Anything, service.CreateCycleInput{
		Name:                    "2025-2026",
		StartDate:               &start,
		EndDate:                 &end,
		AmountProfessionalCents: 8500,
		AmountStudentCents:      6500,
		GracePeriodDays:         30,
		IsActive:                true,
		CreatedBy:               "admin-1",
	}).Return(&domain.DuesCycle{ID: "cycle-1", Name: "2025-2026", IsActive: true}, nil)

	body := bytes.NewBufferString(`{
		"name": "2025-2026",
		"startDate": "2025-07-01",
		"endDate": "2026-06-30",
		"amountProfessional": 8500,
		"amountStudent": 6500,
		"gracePeriodDays": 30,
		"isActive": true
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/dues/cycles", body)
	req = withClaims(req, "admin-1")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, "cycle-1", got["id"])
	svc.AssertExpectations(t)
}

func TestCycleCreate_MissingName(t *testing.T) {
	svc := new(MockDuesCycleService)
	handler := NewCycleHandler(svc)

	body := bytes.NewBufferString(`{"amountProfessional": 8500}`)
	req := httptest.NewRequest(http.MethodPost, "/api/dues/cycles", body)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateCycle")
}

func TestCycleCreate_InvalidDates(t *testing.T) {
	svc := new(MockDuesCycleService)
	handler := NewCycleHandler(svc)

	svc.On("CreateCycle", mock.Anything, mock.Anything).
		Return(nil, domain.ErrInvalidCycleDates)

	body := bytes.NewBufferString(`{"name": "2025-2026", "startDate": "2026-06-30", "endDate": "2025-07-01"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/dues/cycles", body)
	req = withClaims(req, "admin-1")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCycleCreate_UnparseableDate(t *testing.T) {
	svc := new(MockDuesCycleService)
	handler := NewCycleHandler(svc)

	body := bytes.NewBufferString(`{"name": "2025-2026", "startDate": "July 1st"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/dues/cycles", body)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateCycle")
}

func TestCycleList(t *testing.T) {
	svc := new(MockDuesCycleService)
	handler := NewCycleHandler(svc)

	svc.On("ListCycles", mock.Anything).Return([]domain.DuesCycle{
		{ID: "cycle-1", Name: "2024-2025"},
		{ID: "cycle-2", Name: "2025-2026", IsActive: true},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/dues/cycles", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Len(t, got["cycles"], 2)
}

func TestCycleUpdate(t *testing.T) {
	svc := new(MockDuesCycleService)
	handler := NewCycleHandler(svc)

	active := true
	svc.On("UpdateCycle", mock.Anything, "cycle-2", service.UpdateCycleInput{IsActive: &active}).
		Return(&domain.DuesCycle{ID: "cycle-2", Name: "2025-2026", IsActive: true}, nil)

	body := bytes.NewBufferString(`{"isActive": true}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/dues/cycles/cycle-2", body)
	req = mux.SetURLVars(req, map[string]string{"id": "cycle-2"})
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, true, got["isActive"])
	svc.AssertExpectations(t)
}

func TestCycleUpdate_NotFound(t *testing.T) {
	svc := new(MockDuesCycleService)
	handler := NewCycleHandler(svc)

	svc.On("UpdateCycle", mock.Anything, "ghost", mock.Anything).
		Return(nil, domain.ErrCycleNotFound)

	body := bytes.NewBufferString(`{"name": "renamed"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/dues/cycles/ghost", body)
	req = mux.SetURLVars(req, map[string]string{"id": "ghost"})
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
