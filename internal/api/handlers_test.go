// internal/api/handlers_test.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/tvidela/clubcancha/internal/booking"
	"github.com/tvidela/clubcancha/internal/clock"
	"github.com/tvidela/clubcancha/internal/config"
	"github.com/tvidela/clubcancha/internal/db"
	"github.com/tvidela/clubcancha/internal/dues"
	"github.com/tvidela/clubcancha/internal/email"
	"github.com/tvidela/clubcancha/internal/members"
	"github.com/tvidela/clubcancha/internal/params"
	"github.com/tvidela/clubcancha/internal/payments"
	"github.com/tvidela/clubcancha/internal/testutil"
)

const testStaffKey = "staff-secret"

// stubGateway satisfies payments.Gateway without a network hop.
type stubGateway struct {
	mu       sync.Mutex
	prefSeq  int
	payments map[string]payments.Payment
}

func newStubGateway() *stubGateway {
	return &stubGateway{payments: make(map[string]payments.Payment)}
}

func (g *stubGateway) CreatePreference(ctx context.Context, req payments.PreferenceRequest) (payments.Preference, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prefSeq++
	id := fmt.Sprintf("pref-%d", g.prefSeq)
	return payments.Preference{ID: id, InitPoint: "https://pay.example/p/" + id}, nil
}

func (g *stubGateway) GetPayment(ctx context.Context, paymentID string) (payments.Payment, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.payments[paymentID]
	if !ok {
		return payments.Payment{}, fmt.Errorf("%w: payment %s not found", payments.ErrGateway, paymentID)
	}
	return p, nil
}

func (g *stubGateway) addPayment(p payments.Payment) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.payments[p.ID] = p
}

type apiEnv struct {
	db      *db.DB
	clock   *clock.Fixed
	gateway *stubGateway
	fixture testutil.Fixture
	mux     *http.ServeMux
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()

	database := testutil.NewTestDB(t)
	fixture := testutil.SeedClub(t, database)
	clk := clock.NewFixed(time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local))
	gw := newStubGateway()

	cfg := &config.Config{}
	cfg.App.Name = "clubcancha-test"
	cfg.App.BaseURL = "http://club.test"
	cfg.App.StaffKey = testStaffKey

	paramStore := params.NewStore(database, clk)
	sender := email.NoopSender{}
	manager := booking.NewManager(database, paramStore, gw, clk, sender, booking.ManagerConfig{
		ClubID:  fixture.Club.ID,
		BaseURL: cfg.App.BaseURL,
	})
	confirmer := payments.NewConfirmer(database, gw, clk, sender, manager)
	engine := dues.NewEngine(database, paramStore, clk, sender, fixture.Club.ID)
	memberSvc := members.NewService(database, clk, fixture.Club.ID, "US")

	h := NewHandlers(cfg, manager, confirmer, engine, memberSvc)
	return &apiEnv{db: database, clock: clk, gateway: gw, fixture: fixture, mux: h.Routes()}
}

func (e *apiEnv) do(t *testing.T, method, target string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return v
}

var staff = map[string]string{"X-Staff-Key": testStaffKey}

func (e *apiEnv) createReservation(t *testing.T, hour int, method string) reservationResponse {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/v1/reservations", createReservationRequest{
		CourtID:       e.fixture.Court.ID,
		ClientName:    "Ana Diaz",
		ClientEmail:   "ana@example.com",
		Date:          "2025-03-11",
		Hour:          int64(hour),
		PaymentMethod: method,
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create reservation: status %d, body %s", rec.Code, rec.Body.String())
	}
	return decode[reservationResponse](t, rec)
}

func TestHealth(t *testing.T) {
	e := newAPIEnv(t)
	rec := e.do(t, http.MethodGet, "/health", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestReservationLifecycle(t *testing.T) {
	e := newAPIEnv(t)
	availability := fmt.Sprintf("/api/v1/availability/courts?sport_id=%d&date=2025-03-11&hour=12", e.fixture.Sport.ID)

	rec := e.do(t, http.MethodGet, availability, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("availability: status %d, body %s", rec.Code, rec.Body.String())
	}
	before := decode[struct {
		Courts []courtResponse `json:"courts"`
	}](t, rec)
	if len(before.Courts) != 1 {
		t.Fatalf("got %d courts before booking, want 1", len(before.Courts))
	}

	res := e.createReservation(t, 12, booking.PaymentInPerson)
	if res.ID == "" || res.PriceCents != 1000 || res.Paid {
		t.Errorf("unexpected reservation: %+v", res)
	}

	rec = e.do(t, http.MethodGet, availability, nil, nil)
	after := decode[struct {
		Courts []courtResponse `json:"courts"`
	}](t, rec)
	if len(after.Courts) != 0 {
		t.Errorf("court still listed after booking")
	}

	rec = e.do(t, http.MethodPost, "/api/v1/reservations", createReservationRequest{
		CourtID:       e.fixture.Court.ID,
		ClientName:    "Bruno Paz",
		ClientEmail:   "bruno@example.com",
		Date:          "2025-03-11",
		Hour:          12,
		PaymentMethod: booking.PaymentInPerson,
	}, nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("double booking: status %d, want 409", rec.Code)
	}

	rec = e.do(t, http.MethodGet, "/api/v1/reservations/"+res.ID, nil, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("get reservation: status %d", rec.Code)
	}

	rec = e.do(t, http.MethodDelete, "/api/v1/reservations/"+res.ID, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("cancel: status %d, body %s", rec.Code, rec.Body.String())
	}

	rec = e.do(t, http.MethodGet, availability, nil, nil)
	freed := decode[struct {
		Courts []courtResponse `json:"courts"`
	}](t, rec)
	if len(freed.Courts) != 1 {
		t.Errorf("court not freed after cancellation")
	}
}

func TestCreateReservationValidation(t *testing.T) {
	e := newAPIEnv(t)

	rec := e.do(t, http.MethodPost, "/api/v1/reservations", createReservationRequest{
		CourtID:       e.fixture.Court.ID,
		Date:          "2025-03-11",
		Hour:          12,
		PaymentMethod: booking.PaymentInPerson,
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing client name: status %d, want 400", rec.Code)
	}

	rec = e.do(t, http.MethodGet, "/api/v1/availability/courts?sport_id=1&date=11-03-2025&hour=12", nil, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad date: status %d, want 400", rec.Code)
	}
}

func TestExpiredReservationGone(t *testing.T) {
	e := newAPIEnv(t)
	res := e.createReservation(t, 12, booking.PaymentOnline)
	if res.PreferenceID == "" {
		t.Fatal("online reservation has no preference id")
	}

	e.clock.Advance(6 * time.Minute)
	rec := e.do(t, http.MethodGet, "/api/v1/reservations/"+res.ID, nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expired reservation: status %d, want 404", rec.Code)
	}
}

func TestPaymentCallback(t *testing.T) {
	e := newAPIEnv(t)
	res := e.createReservation(t, 12, booking.PaymentOnline)
	e.gateway.addPayment(payments.Payment{
		ID:                "pay-1",
		Status:            payments.StatusApproved,
		AmountCents:       res.PriceCents,
		ExternalReference: res.ID,
	})

	callback := "/api/v1/payments/callback?payment_id=pay-1&external_reference=" + res.ID
	rec := e.do(t, http.MethodGet, callback+"&status=approved", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("callback: status %d, body %s", rec.Code, rec.Body.String())
	}

	rec = e.do(t, http.MethodGet, "/api/v1/reservations/"+res.ID, nil, nil)
	paid := decode[reservationResponse](t, rec)
	if !paid.Paid {
		t.Error("reservation not paid after callback")
	}

	// Gateway retries land on the unique payment id.
	rec = e.do(t, http.MethodGet, callback+"&status=approved", nil, nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate callback: status %d, want 409", rec.Code)
	}

	rec = e.do(t, http.MethodGet, callback+"&status=rejected", nil, nil)
	if rec.Code != http.StatusPaymentRequired {
		t.Errorf("rejected callback: status %d, want 402", rec.Code)
	}
}

func TestStaffEndpointsRequireKey(t *testing.T) {
	e := newAPIEnv(t)

	paths := []struct {
		method, target string
		body           any
	}{
		{http.MethodPost, "/api/v1/dues/emit", emitDuesRequest{Month: 3, Year: 2025}},
		{http.MethodPost, "/api/v1/reservations/some-id/attendance", nil},
		{http.MethodPost, "/api/v1/members", createMemberRequest{}},
		{http.MethodPost, "/api/v1/categories", createCategoryRequest{}},
	}
	for _, p := range paths {
		rec := e.do(t, p.method, p.target, p.body, nil)
		if rec.Code != http.StatusForbidden {
			t.Errorf("%s %s without key: status %d, want 403", p.method, p.target, rec.Code)
		}
		rec = e.do(t, p.method, p.target, p.body, map[string]string{"X-Staff-Key": "wrong"})
		if rec.Code != http.StatusForbidden {
			t.Errorf("%s %s with wrong key: status %d, want 403", p.method, p.target, rec.Code)
		}
	}

	rec := e.do(t, http.MethodPost, "/api/v1/dues/emit", emitDuesRequest{Month: 3, Year: 2025}, staff)
	if rec.Code != http.StatusOK {
		t.Errorf("emit with key: status %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestMemberEndpoints(t *testing.T) {
	e := newAPIEnv(t)

	rec := e.do(t, http.MethodPost, "/api/v1/members", createMemberRequest{
		FirstName: "Marta",
		LastName:  "Gomez",
		Email:     "marta@example.com",
		Phone:     "(212) 555-0123",
		BirthDate: "1985-04-12",
	}, staff)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create member: status %d, body %s", rec.Code, rec.Body.String())
	}
	created := decode[memberResponse](t, rec)
	if created.Phone != "+12125550123" {
		t.Errorf("phone not normalized: %q", created.Phone)
	}

	rec = e.do(t, http.MethodGet, fmt.Sprintf("/api/v1/members/%d", created.ID), nil, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("get member: status %d", rec.Code)
	}
	rec = e.do(t, http.MethodGet, "/api/v1/members/9999", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown member: status %d, want 404", rec.Code)
	}
}

func TestDuesEmitAndGet(t *testing.T) {
	e := newAPIEnv(t)
	ctx := context.Background()

	rec := e.do(t, http.MethodPost, "/api/v1/categories", createCategoryRequest{
		Name: "General", MinAge: 0, MaxAge: 120, FeeCents: 500,
	}, staff)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category: status %d, body %s", rec.Code, rec.Body.String())
	}
	head := testutil.SeedMember(t, e.db, e.fixture.Club.ID, 0,
		"Marta", "Gomez", "marta@example.com", "1985-04-12", "2024-01-01", true)

	rec = e.do(t, http.MethodPost, "/api/v1/dues/emit", emitDuesRequest{Month: 3, Year: 2025}, staff)
	if rec.Code != http.StatusOK {
		t.Fatalf("emit: status %d, body %s", rec.Code, rec.Body.String())
	}
	emitted := decode[map[string]int](t, rec)
	if emitted["emitted"] != 1 {
		t.Fatalf("emitted %d, want 1", emitted["emitted"])
	}

	periods, err := e.db.Queries.ListDuesForMember(ctx, head.ID)
	if err != nil || len(periods) != 1 {
		t.Fatalf("listing dues: %v (%d periods)", err, len(periods))
	}

	rec = e.do(t, http.MethodGet, fmt.Sprintf("/api/v1/dues/%d", periods[0].ID), nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get dues: status %d, body %s", rec.Code, rec.Body.String())
	}
	d := decode[duesResponse](t, rec)
	if d.TotalCents != 500 || d.TotalPayableCents != 500 {
		t.Errorf("dues response: %+v", d)
	}

	rec = e.do(t, http.MethodGet, "/api/v1/dues/9999", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown dues: status %d, want 404", rec.Code)
	}
}

func TestInvalidEmitRequest(t *testing.T) {
	e := newAPIEnv(t)

	for _, body := range []emitDuesRequest{
		{Month: 0, Year: 2025},
		{Month: 13, Year: 2025},
		{Month: 3, Year: 99},
		{Month: 3, Year: 2025, ExtraCents: -1},
	} {
		rec := e.do(t, http.MethodPost, "/api/v1/dues/emit", body, staff)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("emit %+v: status %d, want 400", body, rec.Code)
		}
	}
}
