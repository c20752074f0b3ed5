// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/tvidela/clubcancha/internal/db"
	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
)

// Fixture is the minimal club setup most tests share: one sport, one
// court at 1000 cents (1500 lit), working hours 8..22 with lights
// from 18, a five-minute payment window and two hours lead time.
type Fixture struct {
	Club  dbgen.Club
	Sport dbgen.Sport
	Court dbgen.Court
}

func SeedClub(t *testing.T, database *db.DB) Fixture {
	t.Helper()
	ctx := context.Background()
	q := database.Queries

	club, err := q.CreateClub(ctx, dbgen.CreateClubParams{
		Name:     "Club Social",
		Slug:     "club-social",
		Timezone: "America/Argentina/Cordoba",
	})
	if err != nil {
		t.Fatalf("creating club: %v", err)
	}

	if _, err := q.CreateReservationParams(ctx, dbgen.CreateReservationParamsParams{
		ClubID:              club.ID,
		LeadTimeHours:       2,
		ExpirationMinutes:   5,
		MaxActivePerClient:  3,
		FreeSlotNoticeHours: 24,
		FinalizeAtStart:     false,
	}); err != nil {
		t.Fatalf("creating reservation params: %v", err)
	}

	if _, err := q.CreateDuesParams(ctx, dbgen.CreateDuesParamsParams{
		ClubID:          club.ID,
		EmissionDay:     1,
		EmissionHour:    6,
		DueDayOffset:    10,
		InterestRateBps: 1000,
		MaxUnpaidDues:   3,
	}); err != nil {
		t.Fatalf("creating dues params: %v", err)
	}

	sport, err := q.CreateSport(ctx, "padel")
	if err != nil {
		t.Fatalf("creating sport: %v", err)
	}

	court := SeedCourt(t, database, club.ID, sport.ID, "Court 1")
	return Fixture{Club: club, Sport: sport, Court: court}
}

// SeedCourt adds a court priced 1000/1500 cents, open 8..22, lit from
// 18 onward.
func SeedCourt(t *testing.T, database *db.DB, clubID, sportID int64, name string) dbgen.Court {
	t.Helper()
	ctx := context.Background()
	q := database.Queries

	court, err := q.CreateCourt(ctx, dbgen.CreateCourtParams{
		ClubID:        clubID,
		SportID:       sportID,
		Name:          name,
		PriceCents:    1000,
		LitPriceCents: sql.NullInt64{Int64: 1500, Valid: true},
	})
	if err != nil {
		t.Fatalf("creating court: %v", err)
	}

	for h := int64(8); h <= 22; h++ {
		wh, err := q.CreateWorkingHour(ctx, dbgen.CreateWorkingHourParams{
			ClubID: clubID,
			Hour:   h,
		})
		if err != nil {
			// Another court already registered the hour for the club.
			wh, err = findWorkingHour(ctx, database, clubID, h)
			if err != nil {
				t.Fatalf("creating working hour %d: %v", h, err)
			}
		}
		if err := q.SetCourtWorkingHour(ctx, dbgen.SetCourtWorkingHourParams{
			CourtID:       court.ID,
			WorkingHourID: wh.ID,
			Lit:           h >= 18,
		}); err != nil {
			t.Fatalf("linking working hour %d: %v", h, err)
		}
	}
	return court
}

func findWorkingHour(ctx context.Context, database *db.DB, clubID, hour int64) (dbgen.WorkingHour, error) {
	var wh dbgen.WorkingHour
	err := database.QueryRowContext(ctx,
		"SELECT id, club_id, hour FROM working_hours WHERE club_id = ? AND hour = ?",
		clubID, hour,
	).Scan(&wh.ID, &wh.ClubID, &wh.Hour)
	return wh, err
}

// SeedMember inserts an active member, optionally a dependent.
func SeedMember(t *testing.T, database *db.DB, clubID int64, headID int64, first, last, email, birthDate, joinedOn string, notify bool) dbgen.Member {
	t.Helper()

	head := sql.NullInt64{}
	if headID > 0 {
		head = sql.NullInt64{Int64: headID, Valid: true}
	}
	member, err := database.Queries.CreateMember(context.Background(), dbgen.CreateMemberParams{
		ClubID:       clubID,
		HeadMemberID: head,
		FirstName:    first,
		LastName:     last,
		Email:        email,
		BirthDate:    birthDate,
		JoinedOn:     joinedOn,
		NotifyOptIn:  notify,
	})
	if err != nil {
		t.Fatalf("creating member %s: %v", email, err)
	}
	return member
}
