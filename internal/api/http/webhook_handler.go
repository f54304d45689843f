package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/edlight123/rotaractnyc-sub001/internal/logger"
	"github.com/edlight123/rotaractnyc-sub001/internal/service"
)

// Stripe events are capped at 64KB; bound the read against junk payloads.
const maxWebhookBodyBytes = 65536

// StripeWebhookHandler consumes checkout outcomes from the payment gateway.
// Signature verification happens before any payload field is trusted.
type StripeWebhookHandler struct {
	duesSvc       service.DuesService
	webhookSecret string
}

func NewStripeWebhookHandler(duesSvc service.DuesService, webhookSecret string) *StripeWebhookHandler {
	return &StripeWebhookHandler{duesSvc: duesSvc, webhookSecret: webhookSecret}
}

func (h *StripeWebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.webhookSecret == "" {
		respondError(w, http.StatusServiceUnavailable, "payment gateway is not configured")
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		logger.Warn("Rejected stripe webhook with bad signature", "error", err)
		respondError(w, http.StatusBadRequest, "invalid webhook signature")
		return
	}

	if event.Type != "checkout.session.completed" {
		// Acknowledge everything else so the gateway stops retrying.
		respondJSON(w, http.StatusOK, map[string]bool{"received": true})
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		logger.Error("Failed to decode checkout session", "event_id", event.ID, "error", err)
		respondError(w, http.StatusBadRequest, "malformed checkout session payload")
		return
	}

	evt := service.CheckoutCompletedEvent{
		EventID:     event.ID,
		SessionID:   session.ID,
		PaymentType: session.Metadata["type"],
		MemberID:    session.Metadata["memberId"],
		CycleID:     session.Metadata["cycleId"],
	}

	if err := h.duesSvc.HandleCheckoutCompleted(r.Context(), evt); err != nil {
		logger.Error("Failed to reconcile checkout event", "event_id", event.ID, "error", err)
		// 500 makes the gateway retry; the upsert is replay-safe.
		respondError(w, http.StatusInternalServerError, "failed to process event")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"received": true})
}
