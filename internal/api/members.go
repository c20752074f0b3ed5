// internal/api/members.go
package api

import (
	"net/http"

	"github.com/tvidela/clubcancha/internal/api/apiutil"
	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
	"github.com/tvidela/clubcancha/internal/members"
)

type createMemberRequest struct {
	HeadMemberID int64  `json:"head_member_id,omitempty"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	BirthDate    string `json:"birth_date"`
	JoinedOn     string `json:"joined_on,omitempty"`
	NotifyOptIn  bool   `json:"notify_opt_in,omitempty"`
	IsStaff      bool   `json:"is_staff,omitempty"`
}

type memberResponse struct {
	ID           int64  `json:"id"`
	HeadMemberID *int64 `json:"head_member_id,omitempty"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	BirthDate    string `json:"birth_date"`
	JoinedOn     string `json:"joined_on"`
	NotifyOptIn  bool   `json:"notify_opt_in"`
	IsStaff      bool   `json:"is_staff"`
}

func toMemberResponse(m dbgen.Member) memberResponse {
	resp := memberResponse{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Phone:       m.Phone,
		BirthDate:   m.BirthDate,
		JoinedOn:    m.JoinedOn,
		NotifyOptIn: m.NotifyOptIn,
		IsStaff:     m.IsStaff,
	}
	if m.HeadMemberID.Valid {
		v := m.HeadMemberID.Int64
		resp.HeadMemberID = &v
	}
	return resp
}

func (h *Handlers) handleCreateMember(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	member, err := h.members.Register(r.Context(), members.RegisterRequest{
		HeadMemberID: req.HeadMemberID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		BirthDate:    req.BirthDate,
		JoinedOn:     req.JoinedOn,
		NotifyOptIn:  req.NotifyOptIn,
		IsStaff:      req.IsStaff,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusCreated, toMemberResponse(member))
}

func (h *Handlers) handleGetMember(w http.ResponseWriter, r *http.Request) {
	id, err := apiutil.ParseID("id", r.PathValue("id"))
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	member, err := h.members.Get(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, toMemberResponse(member))
}

type createCategoryRequest struct {
	Name     string `json:"name"`
	MinAge   int64  `json:"min_age"`
	MaxAge   int64  `json:"max_age"`
	FeeCents int64  `json:"fee_cents"`
}

func (h *Handlers) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	cat, err := h.members.CreateCategory(r.Context(), members.CategoryRequest{
		Name:     req.Name,
		MinAge:   req.MinAge,
		MaxAge:   req.MaxAge,
		FeeCents: req.FeeCents,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusCreated, cat)
}
