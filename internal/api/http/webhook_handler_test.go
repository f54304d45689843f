package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripeWebhook_UnconfiguredSecret(t *testing.T) {
	duesSvc := new(MockDuesService)
	handler := NewStripeWebhookHandler(duesSvc, "")

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	duesSvc.AssertNotCalled(t, "HandleCheckoutCompleted")
}

func TestStripeWebhook_RejectsMissingSignature(t *testing.T) {
	duesSvc := new(MockDuesService)
	handler := NewStripeWebhookHandler(duesSvc, "whsec_test")

	body := bytes.NewBufferString(`{"type":"checkout.session.completed"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", body)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	duesSvc.AssertNotCalled(t, "HandleCheckoutCompleted")
}

func TestStripeWebhook_RejectsForgedSignature(t *testing.T) {
	duesSvc := new(MockDuesService)
	handler := NewStripeWebhookHandler(duesSvc, "whsec_test")

	body := bytes.NewBufferString(`{"type":"checkout.session.completed"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", body)
	req.Header.Set("Stripe-Signature", "t=1700000000,v1=deadbeef")
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	duesSvc.AssertNotCalled(t, "HandleCheckoutCompleted")
}
