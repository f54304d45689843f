package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
	"github.com/edlight123/rotaractnyc-sub001/internal/service"
)

// DuesHandler serves the admin member-dues surface: the enriched roster and
// the manual offline/waive transitions.
type DuesHandler struct {
	duesSvc  service.DuesService
	cycleSvc service.DuesCycleService
}

func NewDuesHandler(duesSvc service.DuesService, cycleSvc service.DuesCycleService) *DuesHandler {
	return &DuesHandler{duesSvc: duesSvc, cycleSvc: cycleSvc}
}

// ListMemberDues returns every member with their effective dues status for
// the requested cycle, defaulting to the active cycle.
func (h *DuesHandler) ListMemberDues(w http.ResponseWriter, r *http.Request) {
	cycleID := r.URL.Query().Get("cycleId")
	if cycleID == "" {
		cycle, err := h.cycleSvc.GetActiveCycle(r.Context())
		if err != nil {
			if errors.Is(err, domain.ErrNoActiveCycle) {
				respondError(w, http.StatusNotFound, "no active dues cycle")
				return
			}
			respondError(w, http.StatusInternalServerError, "failed to resolve active cycle")
			return
		}
		cycleID = cycle.ID
	}

	views, err := h.duesSvc.ListMemberDues(r.Context(), cycleID)
	if err != nil {
		if errors.Is(err, domain.ErrCycleNotFound) {
			respondError(w, http.StatusNotFound, "dues cycle not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to list member dues")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"cycleId": cycleID, "members": views})
}

type manualTransitionRequest struct {
	CycleID string `json:"cycleId"`
	Note    string `json:"note"`
}

func (h *DuesHandler) MarkPaidOffline(w http.ResponseWriter, r *http.Request) {
	h.manualTransition(w, r, h.duesSvc.MarkPaidOffline)
}

func (h *DuesHandler) Waive(w http.ResponseWriter, r *http.Request) {
	h.manualTransition(w, r, h.duesSvc.WaiveMemberDues)
}

func (h *DuesHandler) manualTransition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, cycleID, memberID, note, adminUID string) (*domain.MemberDuesRecord, error),
) {
	memberID := mux.Vars(r)["memberId"]

	var req manualTransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CycleID == "" {
		respondError(w, http.StatusBadRequest, "cycleId is required")
		return
	}

	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	rec, err := apply(r.Context(), req.CycleID, memberID, req.Note, claims.UID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoteRequired):
			respondError(w, http.StatusBadRequest, "a note is required for this action")
		case errors.Is(err, domain.ErrCycleNotFound):
			respondError(w, http.StatusNotFound, "dues cycle not found")
		case errors.Is(err, domain.ErrMemberNotFound):
			respondError(w, http.StatusNotFound, "member not found")
		default:
			respondError(w, http.StatusInternalServerError, "failed to update dues record")
		}
		return
	}
	respondJSON(w, http.StatusOK, rec)
}
