package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/edlight123/rotaractnyc-sub001/internal/domain"
	"github.com/edlight123/rotaractnyc-sub001/internal/security"
)

// RouterDeps carries everything the HTTP surface needs.
type RouterDeps struct {
	Automation   *AutomationHandler
	Cycles       *CycleHandler
	Dues         *DuesHandler
	Webhook      *StripeWebhookHandler
	TokenManager security.TokenManager
}

// NewRouter wires all routes. Cycle and member-dues mutations require the
// treasurer role or above; the automation endpoint uses the cron secret and
// the webhook endpoint uses gateway signature verification instead.
func NewRouter(deps RouterDeps) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/dues/automation", deps.Automation.Handle).Methods(http.MethodPost)
	r.HandleFunc("/api/webhooks/stripe", deps.Webhook.Handle).Methods(http.MethodPost)

	tm := deps.TokenManager
	r.HandleFunc("/api/dues/cycles",
		RequireRole(tm, domain.RoleTreasurer, deps.Cycles.Create)).Methods(http.MethodPost)
	r.HandleFunc("/api/dues/cycles",
		RequireRole(tm, domain.RoleTreasurer, deps.Cycles.List)).Methods(http.MethodGet)
	r.HandleFunc("/api/dues/cycles/{id}",
		RequireRole(tm, domain.RoleTreasurer, deps.Cycles.Update)).Methods(http.MethodPatch)

	r.HandleFunc("/api/dues/members",
		RequireRole(tm, domain.RoleTreasurer, deps.Dues.ListMemberDues)).Methods(http.MethodGet)
	r.HandleFunc("/api/dues/members/{memberId}/mark-paid-offline",
		RequireRole(tm, domain.RoleTreasurer, deps.Dues.MarkPaidOffline)).Methods(http.MethodPost)
	r.HandleFunc("/api/dues/members/{memberId}/waive",
		RequireRole(tm, domain.RoleTreasurer, deps.Dues.Waive)).Methods(http.MethodPost)

	return r
}
