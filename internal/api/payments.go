// internal/api/payments.go
package api

import (
	"net/http"

	"github.com/tvidela/clubcancha/internal/api/apiutil"
)

// handlePaymentCallback receives the gateway's redirect. The payment
// is verified against the gateway before anything is written, so the
// query parameters are treated as hints, not authority.
func (h *Handlers) handlePaymentCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	paymentID := q.Get("payment_id")
	if paymentID == "" {
		apiutil.WriteError(w, r, apiutil.FieldError{Field: "payment_id", Reason: "is required"})
		return
	}
	externalReference := q.Get("external_reference")
	if externalReference == "" {
		apiutil.WriteError(w, r, apiutil.FieldError{Field: "external_reference", Reason: "is required"})
		return
	}

	err := h.confirmer.Confirm(r.Context(), paymentID, externalReference, q.Get("status"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, map[string]string{"status": "confirmed"})
}
