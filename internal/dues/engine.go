// internal/dues/engine.go
package dues

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tvidela/clubcancha/internal/clock"
	"github.com/tvidela/clubcancha/internal/db"
	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
	"github.com/tvidela/clubcancha/internal/email"
	"github.com/tvidela/clubcancha/internal/history"
	"github.com/tvidela/clubcancha/internal/members"
	"github.com/tvidela/clubcancha/internal/params"
)

// Engine runs the periodic dues procedures for one club.
type Engine struct {
	db     *db.DB
	params *params.Store
	clock  clock.Clock
	emails email.EmailSender
	clubID int64
}

func NewEngine(database *db.DB, paramStore *params.Store, clk clock.Clock, emails email.EmailSender, clubID int64) *Engine {
	return &Engine{
		db:     database,
		params: paramStore,
		clock:  clk,
		emails: emails,
		clubID: clubID,
	}
}

// EmitDuesForPeriod issues the (month, year) dues for every household
// whose head joined before the period began. Each household is its
// own transaction; one failing household is logged and skipped, the
// rest still emit. Households that already have a row for the period,
// soft-deleted ones included, are skipped, which makes re-running the
// emission safe.
func (e *Engine) EmitDuesForPeriod(ctx context.Context, month, year int, extraCents int64, actor string) (int, error) {
	p, err := e.params.Dues(ctx, e.clubID)
	if err != nil {
		return 0, fmt.Errorf("error loading dues params: %w", err)
	}

	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	heads, err := e.db.Queries.ListHouseholdHeads(ctx, dbgen.ListHouseholdHeadsParams{
		ClubID:   e.clubID,
		JoinedOn: firstDay.Format("2006-01-02"),
	})
	if err != nil {
		return 0, fmt.Errorf("error listing household heads: %w", err)
	}

	emitted := 0
	for _, head := range heads {
		duesRow, ok, err := e.emitHousehold(ctx, p, head, firstDay, month, year, extraCents, actor)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).
				Int64("member_id", head.ID).
				Int("month", month).
				Int("year", year).
				Msg("dues emission failed for household")
			continue
		}
		if !ok {
			continue
		}
		emitted++
		e.sendDuesNotice(ctx, head, duesRow)
	}
	return emitted, nil
}

func (e *Engine) emitHousehold(ctx context.Context, p dbgen.DuesParam, head dbgen.Member, firstDay time.Time, month, year int, extraCents int64, actor string) (dbgen.DuesPeriod, bool, error) {
	count, err := e.db.Queries.CountDuesForPeriod(ctx, dbgen.CountDuesForPeriodParams{
		MemberID: head.ID,
		Month:    int64(month),
		Year:     int64(year),
	})
	if err != nil {
		return dbgen.DuesPeriod{}, false, fmt.Errorf("error checking existing dues: %w", err)
	}
	if count > 0 {
		return dbgen.DuesPeriod{}, false, nil
	}

	var duesRow dbgen.DuesPeriod
	err = e.db.RunInTx(ctx, func(tx *db.DB) error {
		deps, err := tx.Queries.ListDependents(ctx, sql.NullInt64{Int64: head.ID, Valid: true})
		if err != nil {
			return fmt.Errorf("error listing dependents: %w", err)
		}
		household := append([]dbgen.Member{head}, deps...)

		now := e.clock.Now()
		d, err := tx.Queries.CreateDues(ctx, dbgen.CreateDuesParams{
			MemberID:   head.ID,
			Month:      int64(month),
			Year:       int64(year),
			TotalCents: 0,
			ExtraCents: extraCents,
			EmittedOn:  now.Format("2006-01-02"),
			DueOn:      now.AddDate(0, 0, int(p.DueDayOffset)).Format("2006-01-02"),
		})
		if err != nil {
			return fmt.Errorf("error creating dues period: %w", err)
		}

		// Category fees are frozen into line items at emission; later
		// fee changes do not touch already-issued periods.
		total := extraCents
		for _, mem := range household {
			age, err := members.AgeOn(mem.BirthDate, firstDay)
			if err != nil {
				return fmt.Errorf("error computing age for member %d: %w", mem.ID, err)
			}
			cat, err := tx.Queries.CategoryForAge(ctx, dbgen.CategoryForAgeParams{
				ClubID: e.clubID,
				Age:    age,
			})
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return fmt.Errorf("no category covers age %d (member %d)", age, mem.ID)
				}
				return fmt.Errorf("error resolving category: %w", err)
			}
			if _, err := tx.Queries.CreateDuesItem(ctx, dbgen.CreateDuesItemParams{
				DuesID:     d.ID,
				MemberID:   mem.ID,
				CategoryID: cat.ID,
				FeeCents:   cat.FeeCents,
				ExtraCents: 0,
			}); err != nil {
				return fmt.Errorf("error creating dues item: %w", err)
			}
			total += cat.FeeCents
		}

		if err := tx.Queries.UpdateDuesTotal(ctx, dbgen.UpdateDuesTotalParams{
			TotalCents: total,
			ID:         d.ID,
		}); err != nil {
			return fmt.Errorf("error updating dues total: %w", err)
		}
		d.TotalCents = total

		if err := history.Record(ctx, tx.Queries,
			history.EntityDues, d.ID, history.ActionEmitted,
			actor, fmt.Sprintf("%02d/%d", month, year)); err != nil {
			return fmt.Errorf("error recording history: %w", err)
		}

		duesRow = d
		return nil
	})
	if err != nil {
		return dbgen.DuesPeriod{}, false, err
	}
	return duesRow, true, nil
}

// PurgeDelinquentMembers soft-deletes households whose unpaid period
// count exceeds the club limit, dependents included. One transaction
// per household, log-and-continue.
func (e *Engine) PurgeDelinquentMembers(ctx context.Context, actor string) (int, error) {
	p, err := e.params.Dues(ctx, e.clubID)
	if err != nil {
		return 0, fmt.Errorf("error loading dues params: %w", err)
	}

	heads, err := e.db.Queries.ListHouseholdHeads(ctx, dbgen.ListHouseholdHeadsParams{
		ClubID:   e.clubID,
		JoinedOn: e.clock.Now().AddDate(0, 0, 1).Format("2006-01-02"),
	})
	if err != nil {
		return 0, fmt.Errorf("error listing household heads: %w", err)
	}

	purged := 0
	for _, head := range heads {
		unpaid, err := e.db.Queries.CountUnpaidDues(ctx, head.ID)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).
				Int64("member_id", head.ID).
				Msg("could not count unpaid dues")
			continue
		}
		if unpaid <= p.MaxUnpaidDues {
			continue
		}

		if err := e.purgeHousehold(ctx, head, unpaid, actor); err != nil {
			log.Ctx(ctx).Error().Err(err).
				Int64("member_id", head.ID).
				Msg("could not purge delinquent household")
			continue
		}
		purged++
	}
	return purged, nil
}

func (e *Engine) purgeHousehold(ctx context.Context, head dbgen.Member, unpaid int64, actor string) error {
	now := e.clock.Now()
	return e.db.RunInTx(ctx, func(tx *db.DB) error {
		deps, err := tx.Queries.ListDependents(ctx, sql.NullInt64{Int64: head.ID, Valid: true})
		if err != nil {
			return fmt.Errorf("error listing dependents: %w", err)
		}

		detail := fmt.Sprintf("%d unpaid periods", unpaid)
		for _, mem := range append([]dbgen.Member{head}, deps...) {
			if _, err := tx.Queries.SoftDeleteMember(ctx, dbgen.SoftDeleteMemberParams{
				DeletedAt: sql.NullTime{Time: now, Valid: true},
				ID:        mem.ID,
			}); err != nil {
				return fmt.Errorf("error deleting member %d: %w", mem.ID, err)
			}
			if err := history.Record(ctx, tx.Queries,
				history.EntityMember, mem.ID, history.ActionPurged,
				actor, detail); err != nil {
				return fmt.Errorf("error recording history: %w", err)
			}
		}
		return nil
	})
}

// Paid reports whether a payment has been recorded for the period.
func (e *Engine) Paid(ctx context.Context, duesID int64) (bool, error) {
	_, err := e.db.Queries.GetDuesPayment(ctx, duesID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error loading dues payment: %w", err)
	}
	return true, nil
}

// Get loads a period together with its computed interest and total
// payable as of now. A paid period accrues nothing further.
func (e *Engine) Get(ctx context.Context, duesID int64) (dbgen.DuesPeriod, int64, int64, error) {
	d, err := e.db.Queries.GetDues(ctx, duesID)
	if err != nil {
		return dbgen.DuesPeriod{}, 0, 0, err
	}

	paid, err := e.Paid(ctx, d.ID)
	if err != nil {
		return dbgen.DuesPeriod{}, 0, 0, err
	}
	if paid {
		return d, 0, d.TotalCents, nil
	}

	p, err := e.params.Dues(ctx, e.clubID)
	if err != nil {
		return dbgen.DuesPeriod{}, 0, 0, fmt.Errorf("error loading dues params: %w", err)
	}
	now := e.clock.Now()
	return d, Interest(d, p.InterestRateBps, now), TotalPayable(d, p.InterestRateBps, now), nil
}

func (e *Engine) sendDuesNotice(ctx context.Context, head dbgen.Member, d dbgen.DuesPeriod) {
	if !head.NotifyOptIn || head.Email == "" {
		return
	}
	subject, htmlBody, textBody := email.DuesNotice(
		head.FirstName, d.Month, d.Year, d.TotalCents, d.DueOn)
	if err := e.emails.SendEmail(ctx, head.Email, subject, htmlBody, textBody); err != nil {
		log.Ctx(ctx).Warn().Err(err).
			Str("to", head.Email).
			Int64("dues_id", d.ID).
			Msg("could not send dues notice")
	}
}
