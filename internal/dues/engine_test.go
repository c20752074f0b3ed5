// internal/dues/engine_test.go
package dues

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/tvidela/clubcancha/internal/clock"
	"github.com/tvidela/clubcancha/internal/db"
	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
	"github.com/tvidela/clubcancha/internal/email"
	"github.com/tvidela/clubcancha/internal/params"
	"github.com/tvidela/clubcancha/internal/testutil"
)

type engineEnv struct {
	db     *db.DB
	clock  *clock.Fixed
	engine *Engine
	head   dbgen.Member
	child  dbgen.Member
}

// Emission morning for the 03/2025 period; the fixture charges 10%
// monthly interest and tolerates 3 unpaid periods.
var emissionTime = time.Date(2025, 3, 1, 6, 0, 0, 0, time.Local)

func newEngineEnv(t *testing.T) *engineEnv {
	t.Helper()
	ctx := context.Background()

	database := testutil.NewTestDB(t)
	fixture := testutil.SeedClub(t, database)
	clk := clock.NewFixed(emissionTime)

	for _, cat := range []dbgen.CreateCategoryParams{
		{ClubID: fixture.Club.ID, Name: "Junior", MinAge: 0, MaxAge: 17, FeeCents: 300},
		{ClubID: fixture.Club.ID, Name: "Senior", MinAge: 18, MaxAge: 120, FeeCents: 500},
	} {
		if _, err := database.Queries.CreateCategory(ctx, cat); err != nil {
			t.Fatalf("creating category %s: %v", cat.Name, err)
		}
	}

	head := testutil.SeedMember(t, database, fixture.Club.ID, 0,
		"Marta", "Gomez", "marta@example.com", "1985-04-12", "2024-01-01", true)
	child := testutil.SeedMember(t, database, fixture.Club.ID, head.ID,
		"Leo", "Gomez", "leo@example.com", "2015-06-01", "2024-01-01", false)

	engine := NewEngine(database, params.NewStore(database, clk), clk, email.NoopSender{}, fixture.Club.ID)
	return &engineEnv{db: database, clock: clk, engine: engine, head: head, child: child}
}

func TestEmitDuesForPeriod(t *testing.T) {
	e := newEngineEnv(t)
	ctx := context.Background()

	emitted, err := e.engine.EmitDuesForPeriod(ctx, 3, 2025, 0, "test")
	if err != nil {
		t.Fatalf("EmitDuesForPeriod: %v", err)
	}
	if emitted != 1 {
		t.Fatalf("emitted %d households, want 1", emitted)
	}

	periods, err := e.db.Queries.ListDuesForMember(ctx, e.head.ID)
	if err != nil {
		t.Fatalf("listing dues: %v", err)
	}
	if len(periods) != 1 {
		t.Fatalf("got %d periods, want 1", len(periods))
	}
	d := periods[0]

	// Head (senior, 500) plus dependent (junior, 300).
	if d.TotalCents != 800 {
		t.Errorf("total: got %d, want 800", d.TotalCents)
	}
	if d.EmittedOn != "2025-03-01" {
		t.Errorf("emitted_on: got %s", d.EmittedOn)
	}
	if d.DueOn != "2025-03-11" {
		t.Errorf("due_on: got %s, want emission plus 10 days", d.DueOn)
	}

	items, err := e.db.Queries.ListDuesItems(ctx, d.ID)
	if err != nil {
		t.Fatalf("listing items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
}

func TestEmitDuesIsIdempotent(t *testing.T) {
	e := newEngineEnv(t)
	ctx := context.Background()

	if _, err := e.engine.EmitDuesForPeriod(ctx, 3, 2025, 0, "test"); err != nil {
		t.Fatalf("first emission: %v", err)
	}
	emitted, err := e.engine.EmitDuesForPeriod(ctx, 3, 2025, 0, "test")
	if err != nil {
		t.Fatalf("second emission: %v", err)
	}
	if emitted != 0 {
		t.Fatalf("re-emission issued %d periods, want 0", emitted)
	}
}

func TestEmitDuesSkipsSoftDeletedPeriod(t *testing.T) {
	e := newEngineEnv(t)
	ctx := context.Background()

	if _, err := e.engine.EmitDuesForPeriod(ctx, 3, 2025, 0, "test"); err != nil {
		t.Fatalf("emission: %v", err)
	}
	periods, err := e.db.Queries.ListDuesForMember(ctx, e.head.ID)
	if err != nil || len(periods) != 1 {
		t.Fatalf("listing dues: %v (%d periods)", err, len(periods))
	}
	if _, err := e.db.Queries.SoftDeleteDues(ctx, dbgen.SoftDeleteDuesParams{
		DeletedAt:    sql.NullTime{Time: e.clock.Now(), Valid: true},
		DeleteReason: "issued in error",
		ID:           periods[0].ID,
	}); err != nil {
		t.Fatalf("soft deleting: %v", err)
	}

	// A manually deleted period must stay deleted, not come back on
	// the next scheduler pass.
	emitted, err := e.engine.EmitDuesForPeriod(ctx, 3, 2025, 0, "test")
	if err != nil {
		t.Fatalf("re-emission: %v", err)
	}
	if emitted != 0 {
		t.Fatalf("re-emission after soft delete issued %d periods, want 0", emitted)
	}
}

func TestEmitDuesSkipsRecentJoiners(t *testing.T) {
	e := newEngineEnv(t)
	ctx := context.Background()

	testutil.SeedMember(t, e.db, e.head.ClubID, 0,
		"Nuevo", "Socio", "nuevo@example.com", "1995-01-01", "2025-03-15", true)

	emitted, err := e.engine.EmitDuesForPeriod(ctx, 3, 2025, 0, "test")
	if err != nil {
		t.Fatalf("EmitDuesForPeriod: %v", err)
	}
	if emitted != 1 {
		t.Fatalf("emitted %d, want 1 (joiner mid-period excluded)", emitted)
	}
}

func TestGetComputesInterest(t *testing.T) {
	e := newEngineEnv(t)
	ctx := context.Background()

	if _, err := e.engine.EmitDuesForPeriod(ctx, 3, 2025, 0, "test"); err != nil {
		t.Fatalf("emission: %v", err)
	}
	periods, _ := e.db.Queries.ListDuesForMember(ctx, e.head.ID)
	duesID := periods[0].ID

	// Due 2025-03-11; two calendar months later at 10% monthly.
	e.clock.Set(time.Date(2025, 5, 20, 10, 0, 0, 0, time.Local))
	d, interest, payable, err := e.engine.Get(ctx, duesID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if d.TotalCents != 800 || interest != 160 || payable != 960 {
		t.Errorf("got total=%d interest=%d payable=%d, want 800/160/960",
			d.TotalCents, interest, payable)
	}

	// Once paid, nothing further accrues.
	if _, err := e.db.Queries.CreateDuesPayment(ctx, dbgen.CreateDuesPaymentParams{
		DuesID:      duesID,
		PaymentID:   "pay-1",
		Status:      "approved",
		AmountCents: 960,
		ApprovedAt:  sql.NullTime{Time: e.clock.Now(), Valid: true},
	}); err != nil {
		t.Fatalf("recording payment: %v", err)
	}
	_, interest, payable, err = e.engine.Get(ctx, duesID)
	if err != nil {
		t.Fatalf("Get after payment: %v", err)
	}
	if interest != 0 || payable != 800 {
		t.Errorf("paid period: got interest=%d payable=%d, want 0/800", interest, payable)
	}
}

func TestPurgeDelinquentMembers(t *testing.T) {
	e := newEngineEnv(t)
	ctx := context.Background()

	// Four unpaid periods against a limit of three.
	for month := int64(1); month <= 4; month++ {
		if _, err := e.db.Queries.CreateDues(ctx, dbgen.CreateDuesParams{
			MemberID:   e.head.ID,
			Month:      month,
			Year:       2024,
			TotalCents: 800,
			EmittedOn:  "2024-01-01",
			DueOn:      "2024-01-11",
		}); err != nil {
			t.Fatalf("creating dues for month %d: %v", month, err)
		}
	}

	purged, err := e.engine.PurgeDelinquentMembers(ctx, "test")
	if err != nil {
		t.Fatalf("PurgeDelinquentMembers: %v", err)
	}
	if purged != 1 {
		t.Fatalf("purged %d households, want 1", purged)
	}

	for _, id := range []int64{e.head.ID, e.child.ID} {
		member, err := e.db.Queries.GetMember(ctx, id)
		if err != nil {
			t.Fatalf("loading member %d: %v", id, err)
		}
		if member.Status != "deleted" {
			t.Errorf("member %d still %s, want deleted", id, member.Status)
		}
	}
}

func TestPurgeSparesMembersWithinLimit(t *testing.T) {
	e := newEngineEnv(t)
	ctx := context.Background()

	for month := int64(1); month <= 3; month++ {
		if _, err := e.db.Queries.CreateDues(ctx, dbgen.CreateDuesParams{
			MemberID:   e.head.ID,
			Month:      month,
			Year:       2024,
			TotalCents: 800,
			EmittedOn:  "2024-01-01",
			DueOn:      "2024-01-11",
		}); err != nil {
			t.Fatalf("creating dues for month %d: %v", month, err)
		}
	}

	purged, err := e.engine.PurgeDelinquentMembers(ctx, "test")
	if err != nil {
		t.Fatalf("PurgeDelinquentMembers: %v", err)
	}
	if purged != 0 {
		t.Fatalf("purged %d households at exactly the limit, want 0", purged)
	}
}
