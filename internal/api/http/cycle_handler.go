package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
	"github.com/edlight123/rotaractnyc-sub001/internal/service"
)

// CycleHandler serves dues cycle management for treasurer/president admins.
type CycleHandler struct {
	svc service.DuesCycleService
}

func NewCycleHandler(svc service.DuesCycleService) *CycleHandler {
	return &CycleHandler{svc: svc}
}

type cycleRequest struct {
	Name               *string `json:"name"`
	StartDate          *string `json:"startDate"`
	EndDate            *string `json:"endDate"`
	AmountProfessional *int64  `json:"amountProfessional"`
	AmountStudent      *int64  `json:"amountStudent"`
	GracePeriodDays    *int    `json:"gracePeriodDays"`
	IsActive           *bool   `json:"isActive"`
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	// Accept both a bare date and a full timestamp.
	if t, err := time.Parse("2006-01-02", *s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *CycleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req cycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == nil || *req.Name == "" {
		respondError(w, http.StatusBadRequest, "cycle name is required")
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid startDate")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid endDate")
		return
	}

	input := service.CreateCycleInput{
		Name:      *req.Name,
		StartDate: start,
		EndDate:   end,
	}
	if req.AmountProfessional != nil {
		input.AmountProfessionalCents = *req.AmountProfessional
	}
	if req.AmountStudent != nil {
		input.AmountStudentCents = *req.AmountStudent
	}
	if req.GracePeriodDays != nil {
		input.GracePeriodDays = *req.GracePeriodDays
	}
	if req.IsActive != nil {
		input.IsActive = *req.IsActive
	}
	if claims, ok := ClaimsFromContext(r.Context()); ok {
		input.CreatedBy = claims.UID
	}

	cycle, err := h.svc.CreateCycle(r.Context(), input)
	if err != nil {
		h.respondCycleError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, cycle)
}

func (h *CycleHandler) List(w http.ResponseWriter, r *http.Request) {
	cycles, err := h.svc.ListCycles(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list dues cycles")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"cycles": cycles})
}

func (h *CycleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req cycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid startDate")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid endDate")
		return
	}

	input := service.UpdateCycleInput{
		Name:                    req.Name,
		StartDate:               start,
		EndDate:                 end,
		AmountProfessionalCents: req.AmountProfessional,
		AmountStudentCents:      req.AmountStudent,
		GracePeriodDays:         req.GracePeriodDays,
		IsActive:                req.IsActive,
	}

	cycle, err := h.svc.UpdateCycle(r.Context(), id, input)
	if err != nil {
		h.respondCycleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cycle)
}

func (h *CycleHandler) respondCycleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCycleNotFound):
		respondError(w, http.StatusNotFound, "dues cycle not found")
	case errors.Is(err, domain.ErrInvalidCycleDates):
		respondError(w, http.StatusBadRequest, "cycle end date must be after start date")
	default:
		respondError(w, http.StatusInternalServerError, "dues cycle operation failed")
	}
}
