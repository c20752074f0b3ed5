// internal/api/dues.go
package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/tvidela/clubcancha/internal/api/apiutil"
	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
)

type emitDuesRequest struct {
	Month      int   `json:"month"`
	Year       int   `json:"year"`
	ExtraCents int64 `json:"extra_cents,omitempty"`
}

type duesResponse struct {
	ID                int64  `json:"id"`
	MemberID          int64  `json:"member_id"`
	Month             int64  `json:"month"`
	Year              int64  `json:"year"`
	TotalCents        int64  `json:"total_cents"`
	ExtraCents        int64  `json:"extra_cents"`
	EmittedOn         string `json:"emitted_on"`
	DueOn             string `json:"due_on"`
	InterestCents     int64  `json:"interest_cents"`
	TotalPayableCents int64  `json:"total_payable_cents"`
}

func toDuesResponse(d dbgen.DuesPeriod, interestCents, totalPayableCents int64) duesResponse {
	return duesResponse{
		ID:                d.ID,
		MemberID:          d.MemberID,
		Month:             d.Month,
		Year:              d.Year,
		TotalCents:        d.TotalCents,
		ExtraCents:        d.ExtraCents,
		EmittedOn:         d.EmittedOn,
		DueOn:             d.DueOn,
		InterestCents:     interestCents,
		TotalPayableCents: totalPayableCents,
	}
}

func (h *Handlers) handleEmitDues(w http.ResponseWriter, r *http.Request) {
	var req emitDuesRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if req.Month < 1 || req.Month > 12 {
		apiutil.WriteError(w, r, apiutil.FieldError{Field: "month", Reason: "must be between 1 and 12"})
		return
	}
	if req.Year < 2000 {
		apiutil.WriteError(w, r, apiutil.FieldError{Field: "year", Reason: "must be a four-digit year"})
		return
	}
	if req.ExtraCents < 0 {
		apiutil.WriteError(w, r, apiutil.FieldError{Field: "extra_cents", Reason: "must be non-negative"})
		return
	}

	actor := r.Header.Get("X-Actor")
	if actor == "" {
		actor = "staff"
	}
	emitted, err := h.engine.EmitDuesForPeriod(r.Context(), req.Month, req.Year, req.ExtraCents, actor)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, map[string]int{"emitted": emitted})
}

func (h *Handlers) handleGetDues(w http.ResponseWriter, r *http.Request) {
	id, err := apiutil.ParseID("id", r.PathValue("id"))
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	d, interestCents, totalPayableCents, err := h.engine.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			apiutil.WriteError(w, r, apiutil.NewHandlerError(http.StatusNotFound, "dues period not found", err))
			return
		}
		h.writeDomainError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, toDuesResponse(d, interestCents, totalPayableCents))
}
