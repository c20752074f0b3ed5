// internal/api/reservations.go
package api

import (
	"net/http"
	"time"

	"github.com/tvidela/clubcancha/internal/api/apiutil"
	"github.com/tvidela/clubcancha/internal/booking"
	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
)

type createReservationRequest struct {
	CourtID       int64  `json:"court_id"`
	MemberID      int64  `json:"member_id,omitempty"`
	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email"`
	Date          string `json:"date"`
	Hour          int64  `json:"hour"`
	Note          string `json:"note,omitempty"`
	Lit           bool   `json:"lit,omitempty"`
	PaymentMethod string `json:"payment_method"`
}

type reservationResponse struct {
	ID            string    `json:"id"`
	CourtID       int64     `json:"court_id"`
	ClientName    string    `json:"client_name"`
	ClientEmail   string    `json:"client_email"`
	Date          string    `json:"date"`
	Hour          int64     `json:"hour"`
	Note          string    `json:"note,omitempty"`
	PriceCents    int64     `json:"price_cents"`
	Lit           bool      `json:"lit"`
	PaymentMethod string    `json:"payment_method"`
	Paid          bool      `json:"paid"`
	PreferenceID  string    `json:"preference_id,omitempty"`
	Attended      bool      `json:"attended"`
	CreatedAt     time.Time `json:"created_at"`
}

func toReservationResponse(res dbgen.Reservation) reservationResponse {
	resp := reservationResponse{
		ID:            res.PublicID,
		CourtID:       res.CourtID,
		ClientName:    res.ClientName,
		ClientEmail:   res.ClientEmail,
		Date:          res.Date,
		Hour:          res.Hour,
		Note:          res.Note,
		PriceCents:    res.PriceCents,
		Lit:           res.Lit,
		PaymentMethod: res.PaymentMethod,
		Paid:          res.Paid,
		Attended:      res.Attended,
		CreatedAt:     res.CreatedAt,
	}
	if res.PreferenceID.Valid {
		resp.PreferenceID = res.PreferenceID.String
	}
	return resp
}

func (h *Handlers) handleCreateReservation(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	res, err := h.manager.Create(r.Context(), booking.CreateRequest{
		CourtID:       req.CourtID,
		MemberID:      req.MemberID,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		Date:          req.Date,
		Hour:          req.Hour,
		Note:          req.Note,
		Lit:           req.Lit,
		PaymentMethod: req.PaymentMethod,
		Admin:         h.isStaff(r),
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusCreated, toReservationResponse(res))
}

func (h *Handlers) handleGetReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.manager.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, toReservationResponse(res))
}

func (h *Handlers) handleCancelReservation(w http.ResponseWriter, r *http.Request) {
	actor := r.Header.Get("X-Actor")
	if err := h.manager.Cancel(r.Context(), r.PathValue("id"), actor); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func (h *Handlers) handleMarkAttendance(w http.ResponseWriter, r *http.Request) {
	actor := r.Header.Get("X-Actor")
	if actor == "" {
		actor = "staff"
	}
	if err := h.manager.MarkAttendance(r.Context(), r.PathValue("id"), actor); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, map[string]string{"status": "attended"})
}

func (h *Handlers) handleRebooking(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		apiutil.WriteError(w, r, apiutil.FieldError{Field: "token", Reason: "is required"})
		return
	}

	res, err := h.manager.RedeemRebookingToken(r.Context(), token)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusCreated, toReservationResponse(res))
}
