// internal/scheduler/jobs_test.go
package scheduler

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/tvidela/clubcancha/internal/clock"
	"github.com/tvidela/clubcancha/internal/db"
	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
	"github.com/tvidela/clubcancha/internal/dues"
	"github.com/tvidela/clubcancha/internal/email"
	"github.com/tvidela/clubcancha/internal/params"
	"github.com/tvidela/clubcancha/internal/testutil"
)

type jobsEnv struct {
	db     *db.DB
	clock  *clock.Fixed
	engine *dues.Engine
	params *params.Store
	clubID int64
	head   dbgen.Member
}

// The fixture's emission window is day 1, hour 6.
func newJobsEnv(t *testing.T, now time.Time) *jobsEnv {
	t.Helper()
	ctx := context.Background()

	database := testutil.NewTestDB(t)
	fixture := testutil.SeedClub(t, database)
	clk := clock.NewFixed(now)

	if _, err := database.Queries.CreateCategory(ctx, dbgen.CreateCategoryParams{
		ClubID: fixture.Club.ID, Name: "General", MinAge: 0, MaxAge: 120, FeeCents: 500,
	}); err != nil {
		t.Fatalf("creating category: %v", err)
	}
	head := testutil.SeedMember(t, database, fixture.Club.ID, 0,
		"Marta", "Gomez", "marta@example.com", "1985-04-12", "2024-01-01", true)

	paramStore := params.NewStore(database, clk)
	engine := dues.NewEngine(database, paramStore, clk, email.NoopSender{}, fixture.Club.ID)
	return &jobsEnv{
		db: database, clock: clk, engine: engine,
		params: paramStore, clubID: fixture.Club.ID, head: head,
	}
}

func (e *jobsEnv) duesCount(t *testing.T) int {
	t.Helper()
	periods, err := e.db.Queries.ListDuesForMember(context.Background(), e.head.ID)
	if err != nil {
		t.Fatalf("listing dues: %v", err)
	}
	return len(periods)
}

func TestRunDuesFiresInEmissionWindow(t *testing.T) {
	e := newJobsEnv(t, time.Date(2025, 3, 1, 6, 0, 0, 0, time.Local))
	ctx := context.Background()

	runDues(ctx, e.db, e.engine, e.params, e.clock, e.clubID)

	if got := e.duesCount(t); got != 1 {
		t.Fatalf("got %d dues periods, want 1", got)
	}
	run, err := e.db.Queries.LatestJobRun(ctx, jobDuesEmission)
	if err != nil {
		t.Fatalf("loading job run: %v", err)
	}
	if run.Detail != "emitted 1" {
		t.Errorf("job run detail: %q", run.Detail)
	}

	// Day 1 also triggers the purge pass; no one is delinquent here.
	if _, err := e.db.Queries.LatestJobRun(ctx, jobDuesPurge); err != nil {
		t.Errorf("purge run not recorded: %v", err)
	}

	// The same tick re-run changes nothing.
	runDues(ctx, e.db, e.engine, e.params, e.clock, e.clubID)
	if got := e.duesCount(t); got != 1 {
		t.Errorf("re-run emitted again: %d periods", got)
	}
}

// A tick anywhere inside the emission hour emits: an outage at the top
// of the hour only delays emission until the next minute's poll.
func TestRunDuesRecoversLateInEmissionHour(t *testing.T) {
	e := newJobsEnv(t, time.Date(2025, 3, 1, 6, 37, 0, 0, time.Local))

	runDues(context.Background(), e.db, e.engine, e.params, e.clock, e.clubID)

	if got := e.duesCount(t); got != 1 {
		t.Fatalf("got %d dues periods, want 1", got)
	}
}

func TestRunDuesGates(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
	}{
		{"wrong hour", time.Date(2025, 3, 1, 7, 0, 0, 0, time.Local)},
		{"wrong day", time.Date(2025, 3, 2, 6, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newJobsEnv(t, tt.now)
			runDues(context.Background(), e.db, e.engine, e.params, e.clock, e.clubID)
			if got := e.duesCount(t); got != 0 {
				t.Errorf("emitted %d periods outside the window", got)
			}
		})
	}
}

func TestRunCleanupDropsOldRuns(t *testing.T) {
	e := newJobsEnv(t, time.Date(2025, 3, 1, 3, 0, 0, 0, time.Local))
	ctx := context.Background()

	for _, ranAt := range []time.Time{
		e.clock.Now().AddDate(0, 0, -120),
		e.clock.Now().AddDate(0, 0, -1),
	} {
		if err := e.db.Queries.InsertJobRun(ctx, dbgen.InsertJobRunParams{
			JobName: jobDuesEmission,
			RanAt:   ranAt,
			Detail:  "emitted 0",
		}); err != nil {
			t.Fatalf("inserting job run: %v", err)
		}
	}

	runCleanup(ctx, e.db, e.clock, 90)

	run, err := e.db.Queries.LatestJobRun(ctx, jobDuesEmission)
	if err != nil {
		t.Fatalf("loading job run: %v", err)
	}
	if run.RanAt.Before(e.clock.Now().AddDate(0, 0, -90)) {
		t.Errorf("stale run survived cleanup: %v", run.RanAt)
	}
	// The cleanup records itself.
	if _, err := e.db.Queries.LatestJobRun(ctx, jobJobRunsCleanup); errors.Is(err, sql.ErrNoRows) {
		t.Error("cleanup run not recorded")
	}
}
