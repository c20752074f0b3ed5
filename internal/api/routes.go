// internal/api/routes.go

// Package api exposes the JSON HTTP surface. Handlers hold their
// collaborators explicitly; nothing is resolved through globals.
package api

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/tvidela/clubcancha/internal/api/apiutil"
	"github.com/tvidela/clubcancha/internal/booking"
	"github.com/tvidela/clubcancha/internal/config"
	"github.com/tvidela/clubcancha/internal/dues"
	"github.com/tvidela/clubcancha/internal/members"
	"github.com/tvidela/clubcancha/internal/payments"
)

type Handlers struct {
	cfg       *config.Config
	manager   *booking.Manager
	confirmer *payments.Confirmer
	engine    *dues.Engine
	members   *members.Service
}

func NewHandlers(cfg *config.Config, manager *booking.Manager, confirmer *payments.Confirmer, engine *dues.Engine, memberSvc *members.Service) *Handlers {
	return &Handlers{
		cfg:       cfg,
		manager:   manager,
		confirmer: confirmer,
		engine:    engine,
		members:   memberSvc,
	}
}

func (h *Handlers) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.handleHealth)

	mux.HandleFunc("GET /api/v1/availability/courts", h.handleAvailableCourts)
	mux.HandleFunc("GET /api/v1/availability/hours", h.handleAvailableHours)

	mux.HandleFunc("POST /api/v1/reservations", h.handleCreateReservation)
	mux.HandleFunc("GET /api/v1/reservations/{id}", h.handleGetReservation)
	mux.HandleFunc("DELETE /api/v1/reservations/{id}", h.handleCancelReservation)
	mux.HandleFunc("POST /api/v1/reservations/{id}/attendance", h.staffOnly(h.handleMarkAttendance))

	mux.HandleFunc("GET /api/v1/payments/callback", h.handlePaymentCallback)
	mux.HandleFunc("GET /api/v1/rebooking", h.handleRebooking)

	mux.HandleFunc("POST /api/v1/dues/emit", h.staffOnly(h.handleEmitDues))
	mux.HandleFunc("GET /api/v1/dues/{id}", h.handleGetDues)

	mux.HandleFunc("POST /api/v1/members", h.staffOnly(h.handleCreateMember))
	mux.HandleFunc("GET /api/v1/members/{id}", h.handleGetMember)
	mux.HandleFunc("POST /api/v1/categories", h.staffOnly(h.handleCreateCategory))

	return mux
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiutil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// isStaff checks the staff capability header. Who holds the key is an
// identity provider's problem, not ours.
func (h *Handlers) isStaff(r *http.Request) bool {
	key := r.Header.Get("X-Staff-Key")
	if key == "" || h.cfg.App.StaffKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(h.cfg.App.StaffKey)) == 1
}

func (h *Handlers) staffOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.isStaff(r) {
			apiutil.WriteJSON(w, http.StatusForbidden, map[string]string{"error": "staff key required"})
			return
		}
		next(w, r)
	}
}

// writeDomainError translates domain sentinels to HTTP statuses and
// defers everything else to apiutil.
func (h *Handlers) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, booking.ErrSlotUnavailable):
		apiutil.WriteError(w, r, apiutil.NewHandlerError(http.StatusConflict, "slot is already reserved", err))
	case errors.Is(err, booking.ErrTooManyReservations):
		apiutil.WriteError(w, r, apiutil.NewHandlerError(http.StatusConflict, "too many active reservations", err))
	case errors.Is(err, booking.ErrReservationExpired):
		apiutil.WriteError(w, r, apiutil.NewHandlerError(http.StatusNotFound, "reservation no longer exists", err))
	case errors.Is(err, booking.ErrReservationNotFound):
		apiutil.WriteError(w, r, apiutil.NewHandlerError(http.StatusNotFound, "reservation not found", err))
	case errors.Is(err, booking.ErrAlreadyAttended):
		apiutil.WriteError(w, r, apiutil.NewHandlerError(http.StatusConflict, "attendance already recorded", err))
	case errors.Is(err, booking.ErrNotFinished):
		apiutil.WriteError(w, r, apiutil.NewHandlerError(http.StatusConflict, "reservation is not finished yet", err))
	case errors.Is(err, booking.ErrTokenUsed):
		apiutil.WriteError(w, r, apiutil.NewHandlerError(http.StatusConflict, "rebooking link already used", err))
	case errors.Is(err, booking.ErrTokenInvalid):
		apiutil.WriteError(w, r, apiutil.NewHandlerError(http.StatusNotFound, "invalid rebooking link", err))
	case errors.Is(err, payments.ErrPaymentRejected):
		apiutil.WriteError(w, r, apiutil.NewHandlerError(http.StatusPaymentRequired, "payment was not approved", err))
	case errors.Is(err, payments.ErrDuplicatePayment):
		apiutil.WriteError(w, r, apiutil.NewHandlerError(http.StatusConflict, "payment already recorded", err))
	case errors.Is(err, payments.ErrUnknownReference):
		apiutil.WriteError(w, r, apiutil.NewHandlerError(http.StatusNotFound, "unknown payment reference", err))
	case errors.Is(err, payments.ErrGateway):
		apiutil.WriteError(w, r, apiutil.NewHandlerError(http.StatusBadGateway, "payment gateway unavailable", err))
	case errors.Is(err, members.ErrMemberNotFound):
		apiutil.WriteError(w, r, apiutil.NewHandlerError(http.StatusNotFound, "member not found", err))
	default:
		apiutil.WriteError(w, r, err)
	}
}
