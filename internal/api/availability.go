// internal/api/availability.go
package api

import (
	"net/http"

	"github.com/tvidela/clubcancha/internal/api/apiutil"
	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
)

type courtResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	PriceCents    int64  `json:"price_cents"`
	LitPriceCents *int64 `json:"lit_price_cents,omitempty"`
}

func toCourtResponse(c dbgen.Court) courtResponse {
	resp := courtResponse{
		ID:         c.ID,
		Name:       c.Name,
		PriceCents: c.PriceCents,
	}
	if c.LitPriceCents.Valid {
		v := c.LitPriceCents.Int64
		resp.LitPriceCents = &v
	}
	return resp
}

func (h *Handlers) handleAvailableCourts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sportID, err := apiutil.ParseID("sport_id", q.Get("sport_id"))
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	date, err := apiutil.ParseDate("date", q.Get("date"))
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	hour, err := apiutil.ParseHour("hour", q.Get("hour"))
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	courts, err := h.manager.AvailableCourts(r.Context(), sportID, date, hour)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	resp := make([]courtResponse, 0, len(courts))
	for _, c := range courts {
		resp = append(resp, toCourtResponse(c))
	}
	apiutil.WriteJSON(w, http.StatusOK, map[string]any{"courts": resp})
}

func (h *Handlers) handleAvailableHours(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sportID, err := apiutil.ParseID("sport_id", q.Get("sport_id"))
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	date, err := apiutil.ParseDate("date", q.Get("date"))
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	hours, err := h.manager.AvailableHours(r.Context(), sportID, date, h.isStaff(r))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, map[string]any{"hours": hours})
}
