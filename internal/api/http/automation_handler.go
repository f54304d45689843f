package http

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
	"github.com/edlight123/rotaractnyc-sub001/internal/service"
)

// Automation action tokens accepted by the cron endpoint.
const (
	ActionSendReminders = "send-reminders"
	ActionSendOverdue   = "send-overdue"
	ActionEnforceGrace  = "enforce-grace"
)

// AutomationHandler serves the externally-scheduled dues automation
// endpoint. Every call carries a shared-secret credential; a bad or missing
// secret is rejected before any cycle data is read.
type AutomationHandler struct {
	svc    service.AutomationService
	secret string
}

func NewAutomationHandler(svc service.AutomationService, secret string) *AutomationHandler {
	return &AutomationHandler{svc: svc, secret: secret}
}

type automationRequest struct {
	Action string `json:"action"`
}

func (h *AutomationHandler) authorized(r *http.Request) bool {
	if h.secret == "" {
		// Fail closed when unconfigured.
		return false
	}
	provided := r.Header.Get("x-cron-secret")
	if provided == "" {
		provided = bearerToken(r)
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(h.secret)) == 1
}

func (h *AutomationHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		respondError(w, http.StatusUnauthorized, "invalid or missing cron secret")
		return
	}

	var req automationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch req.Action {
	case ActionSendReminders:
		h.sendReminders(w, r)
	case ActionSendOverdue:
		h.sendOverdue(w, r)
	case ActionEnforceGrace:
		h.enforceGrace(w, r)
	default:
		respondError(w, http.StatusBadRequest,
			"unknown action; valid actions: send-reminders, send-overdue, enforce-grace")
	}
}

func (h *AutomationHandler) sendReminders(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.SendReminders(r.Context())
	if err != nil {
		h.respondAutomationError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"action":      ActionSendReminders,
		"sent":        result.Sent,
		"failed":      result.Failed,
		"totalUnpaid": result.TotalUnpaid,
	})
}

func (h *AutomationHandler) sendOverdue(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.SendOverdueNotices(r.Context())
	if err != nil {
		h.respondAutomationError(w, err)
		return
	}
	if result.Skipped {
		respondJSON(w, http.StatusOK, map[string]any{
			"action":  ActionSendOverdue,
			"message": result.Message,
			"sent":    0,
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"action":       ActionSendOverdue,
		"sent":         result.Sent,
		"failed":       result.Failed,
		"totalOverdue": result.TotalOverdue,
	})
}

func (h *AutomationHandler) enforceGrace(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.EnforceGracePeriod(r.Context())
	if err != nil {
		h.respondAutomationError(w, err)
		return
	}
	if result.Skipped {
		resp := map[string]any{
			"action":  ActionEnforceGrace,
			"message": result.Message,
			"flagged": 0,
		}
		if result.GraceDeadline != nil {
			resp["graceDeadline"] = result.GraceDeadline.Format(time.RFC3339)
		}
		respondJSON(w, http.StatusOK, resp)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"action":        ActionEnforceGrace,
		"flagged":       result.Flagged,
		"graceDeadline": result.GraceDeadline.Format(time.RFC3339),
	})
}

func (h *AutomationHandler) respondAutomationError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNoActiveCycle) {
		respondError(w, http.StatusNotFound, "no active dues cycle")
		return
	}
	respondError(w, http.StatusInternalServerError, "automation action failed")
}
