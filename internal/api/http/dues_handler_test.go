package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
	"github.com/edlight123/rotaractnyc-sub001/internal/security"
	"github.com/edlight123/rotaractnyc-sub001/internal/service"
)

func withClaims(r *http.Request, uid string) *http.Request {
	claims := &security.UserClaims{UID: uid, Role: domain.RoleTreasurer}
	return r.WithContext(context.WithValue(r.Context(), claimsContextKey, claims))
}

func TestListMemberDues_DefaultsToActiveCycle(t *testing.T) {
	duesSvc := new(MockDuesService)
	cycleSvc := new(MockDuesCycleService)
	handler := NewDuesHandler(duesSvc, cycleSvc)

	cycleSvc.On("GetActiveCycle", mock.Anything).
		Return(&domain.DuesCycle{ID: "cycle-2025", Name: "2025-2026"}, nil)
	duesSvc.On("ListMemberDues", mock.Anything, "cycle-2025").
		Return([]service.MemberDuesView{
			{Member: domain.Member{ID: "m1"}, Status: domain.DuesStatusPaid},
			{Member: domain.Member{ID: "m2"}, Status: domain.DuesStatusUnpaid},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/dues/members", nil)
	rec := httptest.NewRecorder()

	handler.ListMemberDues(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, "cycle-2025", got["cycleId"])
	assert.Len(t, got["members"], 2)
	duesSvc.AssertExpectations(t)
	cycleSvc.AssertExpectations(t)
}

func TestListMemberDues_ExplicitCycleSkipsActiveLookup(t *testing.T) {
	duesSvc := new(MockDuesService)
	cycleSvc := new(MockDuesCycleService)
	handler := NewDuesHandler(duesSvc, cycleSvc)

	duesSvc.On("ListMemberDues", mock.Anything, "cycle-2024").
		Return([]service.MemberDuesView{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/dues/members?cycleId=cycle-2024", nil)
	rec := httptest.NewRecorder()

	handler.ListMemberDues(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	cycleSvc.AssertNotCalled(t, "GetActiveCycle")
}

func TestListMemberDues_NoActiveCycle(t *testing.T) {
	duesSvc := new(MockDuesService)
	cycleSvc := new(MockDuesCycleService)
	handler := NewDuesHandler(duesSvc, cycleSvc)

	cycleSvc.On("GetActiveCycle", mock.Anything).Return(nil, domain.ErrNoActiveCycle)

	req := httptest.NewRequest(http.MethodGet, "/api/dues/members", nil)
	rec := httptest.NewRecorder()

	handler.ListMemberDues(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	duesSvc.AssertNotCalled(t, "ListMemberDues")
}

func TestMarkPaidOffline_PassesAdminUID(t *testing.T) {
	duesSvc := new(MockDuesService)
	handler := NewDuesHandler(duesSvc, new(MockDuesCycleService))

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	duesSvc.On("MarkPaidOffline", mock.Anything, "cycle-2025", "member-7", "paid by check #512", "admin-1").
		Return(&domain.MemberDuesRecord{
			MemberID:      "member-7",
			CycleID:       "cycle-2025",
			Status:        domain.DuesStatusPaidOffline,
			PaidOfflineAt: &now,
		}, nil)

	body := bytes.NewBufferString(`{"cycleId":"cycle-2025","note":"paid by check #512"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/dues/members/member-7/mark-paid-offline", body)
	req = mux.SetURLVars(req, map[string]string{"memberId": "member-7"})
	req = withClaims(req, "admin-1")
	rec := httptest.NewRecorder()

	handler.MarkPaidOffline(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, string(domain.DuesStatusPaidOffline), got["status"])
	duesSvc.AssertExpectations(t)
}

func TestWaive_MissingNote(t *testing.T) {
	duesSvc := new(MockDuesService)
	handler := NewDuesHandler(duesSvc, new(MockDuesCycleService))

	duesSvc.On("WaiveMemberDues", mock.Anything, "cycle-2025", "member-7", "", "admin-1").
		Return(nil, domain.ErrNoteRequired)

	body := bytes.NewBufferString(`{"cycleId":"cycle-2025","note":""}`)
	req := httptest.NewRequest(http.MethodPost, "/api/dues/members/member-7/waive", body)
	req = mux.SetURLVars(req, map[string]string{"memberId": "member-7"})
	req = withClaims(req, "admin-1")
	rec := httptest.NewRecorder()

	handler.Waive(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestManualTransition_MissingCycleID(t *testing.T) {
	duesSvc := new(MockDuesService)
	handler := NewDuesHandler(duesSvc, new(MockDuesCycleService))

	body := bytes.NewBufferString(`{"note":"waived, hardship"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/dues/members/member-7/waive", body)
	req = mux.SetURLVars(req, map[string]string{"memberId": "member-7"})
	req = withClaims(req, "admin-1")
	rec := httptest.NewRecorder()

	handler.Waive(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	duesSvc.AssertNotCalled(t, "WaiveMemberDues")
}

func TestManualTransition_MemberNotFound(t *testing.T) {
	duesSvc := new(MockDuesService)
	handler := NewDuesHandler(duesSvc, new(MockDuesCycleService))

	duesSvc.On("MarkPaidOffline", mock.Anything, "cycle-2025", "ghost", "cash", "admin-1").
		Return(nil, domain.ErrMemberNotFound)

	body := bytes.NewBufferString(`{"cycleId":"cycle-2025","note":"cash"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/dues/members/ghost/mark-paid-offline", body)
	req = mux.SetURLVars(req, map[string]string{"memberId": "ghost"})
	req = withClaims(req, "admin-1")
	rec := httptest.NewRecorder()

	handler.MarkPaidOffline(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
