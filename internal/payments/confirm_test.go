// internal/payments/confirm_test.go
package payments_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/tvidela/clubcancha/internal/booking"
	"github.com/tvidela/clubcancha/internal/clock"
	"github.com/tvidela/clubcancha/internal/config"
	"github.com/tvidela/clubcancha/internal/db"
	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
	"github.com/tvidela/clubcancha/internal/email"
	"github.com/tvidela/clubcancha/internal/params"
	"github.com/tvidela/clubcancha/internal/payments"
	"github.com/tvidela/clubcancha/internal/testutil"
)

// fakeGateway is an httptest server speaking the gateway wire format:
// POST /preferences, GET /payments/{id}, amounts as decimal strings.
type fakeGateway struct {
	mu       sync.Mutex
	server   *httptest.Server
	payments map[string]map[string]string
	prefSeq  int
	failGet  bool
}

func newFakeGateway(t *testing.T) *fakeGateway {
	t.Helper()
	g := &fakeGateway{payments: make(map[string]map[string]string)}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /preferences", func(w http.ResponseWriter, r *http.Request) {
		g.mu.Lock()
		g.prefSeq++
		id := g.prefSeq
		g.mu.Unlock()
		json.NewEncoder(w).Encode(map[string]any{
			"id":         "pref-" + strconv.Itoa(id),
			"init_point": "https://pay.example/p/" + strconv.Itoa(id),
		})
	})
	mux.HandleFunc("GET /payments/{id}", func(w http.ResponseWriter, r *http.Request) {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.failGet {
			http.Error(w, `{"status":"error","message":"unavailable"}`, http.StatusInternalServerError)
			return
		}
		p, ok := g.payments[r.PathValue("id")]
		if !ok {
			http.Error(w, `{"status":"error","message":"not found"}`, http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(p)
	})

	g.server = httptest.NewServer(mux)
	t.Cleanup(g.server.Close)
	return g
}

const gatewayApprovedAt = "2025-03-10T09:03:21Z"

// addPayment registers what the gateway will report for a payment id.
// Approved payments carry the gateway's own approval timestamp.
func (g *fakeGateway) addPayment(id, status, amount, externalReference string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p := map[string]string{
		"id":                 id,
		"status":             status,
		"status_detail":      status,
		"amount":             amount,
		"external_reference": externalReference,
	}
	if status == "approved" {
		p["date_approved"] = gatewayApprovedAt
	}
	g.payments[id] = p
}

func (g *fakeGateway) setFailGet(fail bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failGet = fail
}

type confirmEnv struct {
	db        *db.DB
	clock     *clock.Fixed
	gateway   *fakeGateway
	manager   *booking.Manager
	confirmer *payments.Confirmer
	fixture   testutil.Fixture
}

func newConfirmEnv(t *testing.T) *confirmEnv {
	t.Helper()

	database := testutil.NewTestDB(t)
	fixture := testutil.SeedClub(t, database)
	clk := clock.NewFixed(time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local))
	gw := newFakeGateway(t)

	client := payments.NewClient(config.PaymentsConfig{
		BaseURL:     gw.server.URL,
		AccessToken: "test-token",
		Timeout:     5,
	})
	paramStore := params.NewStore(database, clk)
	manager := booking.NewManager(database, paramStore, client, clk, email.NoopSender{}, booking.ManagerConfig{
		ClubID:  fixture.Club.ID,
		BaseURL: "http://club.test",
	})
	confirmer := payments.NewConfirmer(database, client, clk, email.NoopSender{}, manager)

	return &confirmEnv{
		db: database, clock: clk, gateway: gw,
		manager: manager, confirmer: confirmer, fixture: fixture,
	}
}

func (e *confirmEnv) createOnlineReservation(t *testing.T) dbgen.Reservation {
	t.Helper()
	res, err := e.manager.Create(context.Background(), booking.CreateRequest{
		CourtID:       e.fixture.Court.ID,
		ClientName:    "Ana Diaz",
		ClientEmail:   "ana@example.com",
		Date:          "2025-03-11",
		Hour:          12,
		PaymentMethod: booking.PaymentOnline,
		Actor:         "ana@example.com",
	})
	if err != nil {
		t.Fatalf("creating reservation: %v", err)
	}
	return res
}

func TestConfirmMarksReservationPaid(t *testing.T) {
	e := newConfirmEnv(t)
	ctx := context.Background()
	res := e.createOnlineReservation(t)
	e.gateway.addPayment("pay-1", "approved", "10.00", res.PublicID)

	if err := e.confirmer.Confirm(ctx, "pay-1", res.PublicID, "approved"); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	updated, err := e.db.Queries.GetReservationByID(ctx, res.ID)
	if err != nil {
		t.Fatalf("loading reservation: %v", err)
	}
	if !updated.Paid {
		t.Error("reservation not marked paid")
	}
	record, err := e.db.Queries.GetReservationPayment(ctx, res.ID)
	if err != nil {
		t.Fatalf("loading payment record: %v", err)
	}
	if record.PaymentID != "pay-1" || record.AmountCents != 1000 {
		t.Errorf("payment record: %+v", record)
	}
	// The stored approval time is the gateway's, not ours.
	want, _ := time.Parse(time.RFC3339, gatewayApprovedAt)
	if !record.ApprovedAt.Valid || !record.ApprovedAt.Time.Equal(want) {
		t.Errorf("approved_at: got %+v, want %v", record.ApprovedAt, want)
	}
}

func TestConfirmDuplicateCallbackIsNoOp(t *testing.T) {
	e := newConfirmEnv(t)
	ctx := context.Background()
	res := e.createOnlineReservation(t)
	e.gateway.addPayment("pay-1", "approved", "10.00", res.PublicID)

	if err := e.confirmer.Confirm(ctx, "pay-1", res.PublicID, "approved"); err != nil {
		t.Fatalf("first Confirm: %v", err)
	}
	err := e.confirmer.Confirm(ctx, "pay-1", res.PublicID, "approved")
	if !errors.Is(err, payments.ErrDuplicatePayment) {
		t.Fatalf("got %v, want ErrDuplicatePayment", err)
	}

	// The original record is untouched.
	record, err := e.db.Queries.GetReservationPayment(ctx, res.ID)
	if err != nil {
		t.Fatalf("loading payment record: %v", err)
	}
	if record.PaymentID != "pay-1" {
		t.Errorf("payment record changed: %+v", record)
	}
}

func TestConfirmRejectedStatusWritesNothing(t *testing.T) {
	e := newConfirmEnv(t)
	ctx := context.Background()
	res := e.createOnlineReservation(t)

	err := e.confirmer.Confirm(ctx, "pay-1", res.PublicID, "rejected")
	if !errors.Is(err, payments.ErrPaymentRejected) {
		t.Fatalf("got %v, want ErrPaymentRejected", err)
	}

	updated, err := e.db.Queries.GetReservationByID(ctx, res.ID)
	if err != nil {
		t.Fatalf("loading reservation: %v", err)
	}
	if updated.Paid {
		t.Error("rejected payment marked the reservation paid")
	}
}

func TestConfirmVerifiesWithGatewayBeforeWriting(t *testing.T) {
	e := newConfirmEnv(t)
	ctx := context.Background()
	res := e.createOnlineReservation(t)

	// Callback claims approved; the gateway says otherwise.
	e.gateway.addPayment("pay-1", "rejected", "10.00", res.PublicID)
	if err := e.confirmer.Confirm(ctx, "pay-1", res.PublicID, "approved"); !errors.Is(err, payments.ErrPaymentRejected) {
		t.Fatalf("got %v, want ErrPaymentRejected", err)
	}

	// Gateway unreachable: abort without touching the reservation.
	e.gateway.setFailGet(true)
	if err := e.confirmer.Confirm(ctx, "pay-1", res.PublicID, "approved"); !errors.Is(err, payments.ErrGateway) {
		t.Fatalf("got %v, want ErrGateway", err)
	}

	updated, _ := e.db.Queries.GetReservationByID(ctx, res.ID)
	if updated.Paid {
		t.Error("reservation marked paid without gateway verification")
	}
}

func TestConfirmUnknownReservation(t *testing.T) {
	e := newConfirmEnv(t)
	e.gateway.addPayment("pay-1", "approved", "10.00", "no-such-id")

	err := e.confirmer.Confirm(context.Background(), "pay-1", "no-such-id", "approved")
	if !errors.Is(err, booking.ErrReservationNotFound) {
		t.Fatalf("got %v, want ErrReservationNotFound", err)
	}
}

func TestConfirmDuesPayment(t *testing.T) {
	e := newConfirmEnv(t)
	ctx := context.Background()

	head := testutil.SeedMember(t, e.db, e.fixture.Club.ID, 0,
		"Marta", "Gomez", "marta@example.com", "1985-04-12", "2024-01-01", true)
	d, err := e.db.Queries.CreateDues(ctx, dbgen.CreateDuesParams{
		MemberID:   head.ID,
		Month:      3,
		Year:       2025,
		TotalCents: 800,
		EmittedOn:  "2025-03-01",
		DueOn:      "2025-03-11",
	})
	if err != nil {
		t.Fatalf("creating dues: %v", err)
	}

	ref := "cuota:" + strconv.FormatInt(d.ID, 10)
	e.gateway.addPayment("pay-9", "approved", "8.00", ref)
	if err := e.confirmer.Confirm(ctx, "pay-9", ref, "approved"); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	record, err := e.db.Queries.GetDuesPayment(ctx, d.ID)
	if err != nil {
		t.Fatalf("loading dues payment: %v", err)
	}
	if record.PaymentID != "pay-9" || record.AmountCents != 800 {
		t.Errorf("dues payment record: %+v", record)
	}

	if err := e.confirmer.Confirm(ctx, "pay-9", ref, "approved"); !errors.Is(err, payments.ErrDuplicatePayment) {
		t.Fatalf("duplicate dues callback: got %v, want ErrDuplicatePayment", err)
	}
}

func TestConfirmUnknownDuesReference(t *testing.T) {
	e := newConfirmEnv(t)

	for _, ref := range []string{"cuota:9999", "cuota:abc"} {
		e.gateway.addPayment("pay-9", "approved", "8.00", ref)
		err := e.confirmer.Confirm(context.Background(), "pay-9", ref, "approved")
		if !errors.Is(err, payments.ErrUnknownReference) {
			t.Fatalf("reference %q: got %v, want ErrUnknownReference", ref, err)
		}
	}
}
