// internal/booking/reservations.go
package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tvidela/clubcancha/internal/api/apiutil"
	"github.com/tvidela/clubcancha/internal/db"
	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
	"github.com/tvidela/clubcancha/internal/email"
	"github.com/tvidela/clubcancha/internal/history"
	"github.com/tvidela/clubcancha/internal/payments"
)

const (
	PaymentInPerson = "in_person"
	PaymentOnline   = "online"
)

type CreateRequest struct {
	CourtID       int64
	MemberID      int64 // optional, 0 when booked by a non-member
	ClientName    string
	ClientEmail   string
	Date          string
	Hour          int64
	Note          string
	Lit           bool
	PaymentMethod string
	Actor         string
	Admin         bool
}

// Price resolves the slot price. The lit price applies only when the
// client asked for lights, the slot is configured lit, and the court
// has a lit price set; every other combination falls back to base.
func Price(court dbgen.Court, slot dbgen.CourtWorkingHour, lit bool) int64 {
	if lit && slot.Lit && court.LitPriceCents.Valid {
		return court.LitPriceCents.Int64
	}
	return court.PriceCents
}

// Create books a slot in a single transaction. Online reservations
// call the payment gateway inside the transaction: without a
// preference id there is no reservation. The storage unique index on
// (court, date, hour) is the final arbiter of races; a violation
// surfaces as ErrSlotUnavailable.
func (m *Manager) Create(ctx context.Context, req CreateRequest) (dbgen.Reservation, error) {
	if err := m.validateCreate(&req); err != nil {
		return dbgen.Reservation{}, err
	}

	p, err := m.params.Reservation(ctx, m.clubID)
	if err != nil {
		return dbgen.Reservation{}, fmt.Errorf("error loading reservation params: %w", err)
	}

	now := m.clock.Now()
	day, _ := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	start := day.Add(time.Duration(req.Hour) * time.Hour)
	if start.Before(now) {
		return dbgen.Reservation{}, apiutil.FieldError{Field: "date", Reason: "slot is in the past"}
	}
	if !req.Admin && start.Before(now.Add(time.Duration(p.LeadTimeHours)*time.Hour)) {
		return dbgen.Reservation{}, apiutil.FieldError{
			Field:  "date",
			Reason: fmt.Sprintf("reservations require %d hours notice", p.LeadTimeHours),
		}
	}

	var created dbgen.Reservation
	err = m.db.RunInTx(ctx, func(tx *db.DB) error {
		court, err := tx.Queries.GetCourt(ctx, req.CourtID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apiutil.FieldError{Field: "court_id", Reason: "unknown court"}
			}
			return fmt.Errorf("error loading court: %w", err)
		}
		if court.Status != "active" || court.ClubID != m.clubID {
			return apiutil.FieldError{Field: "court_id", Reason: "unknown court"}
		}

		slot, err := tx.Queries.GetCourtWorkingHour(ctx, dbgen.GetCourtWorkingHourParams{
			CourtID: court.ID,
			Hour:    req.Hour,
		})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apiutil.FieldError{Field: "hour", Reason: "court does not operate at this hour"}
			}
			return fmt.Errorf("error loading court hour: %w", err)
		}

		existing, err := tx.Queries.GetActiveReservationForSlot(ctx, dbgen.GetActiveReservationForSlotParams{
			CourtID: court.ID,
			Date:    req.Date,
			Hour:    req.Hour,
		})
		switch {
		case err == nil:
			outcome, verr := m.validate(ctx, tx, existing, p)
			if verr != nil {
				return verr
			}
			if outcome == OutcomeValid {
				return ErrSlotUnavailable
			}
		case !errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("error checking slot: %w", err)
		}

		if !req.Admin {
			count, err := tx.Queries.CountActiveReservationsByEmail(ctx, dbgen.CountActiveReservationsByEmailParams{
				ClientEmail: req.ClientEmail,
				Date:        now.Format("2006-01-02"),
			})
			if err != nil {
				return fmt.Errorf("error counting reservations: %w", err)
			}
			if count >= p.MaxActivePerClient {
				return ErrTooManyReservations
			}
		}

		memberID := sql.NullInt64{}
		if req.MemberID > 0 {
			memberID = sql.NullInt64{Int64: req.MemberID, Valid: true}
		}

		res, err := tx.Queries.CreateReservation(ctx, dbgen.CreateReservationParams{
			PublicID:      uuid.NewString(),
			CourtID:       court.ID,
			MemberID:      memberID,
			ClientName:    req.ClientName,
			ClientEmail:   req.ClientEmail,
			Date:          req.Date,
			Hour:          req.Hour,
			Note:          req.Note,
			PriceCents:    Price(court, slot, req.Lit),
			Lit:           req.Lit && slot.Lit,
			Expires:       req.PaymentMethod == PaymentOnline,
			PaymentMethod: req.PaymentMethod,
			Paid:          false,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			if db.IsUniqueViolation(err) {
				return ErrSlotUnavailable
			}
			return fmt.Errorf("error creating reservation: %w", err)
		}

		if req.PaymentMethod == PaymentOnline {
			// The checkout window closes when the reservation itself
			// expires.
			pref, err := m.gateway.CreatePreference(ctx, payments.PreferenceRequest{
				Title:             fmt.Sprintf("%s %s %02d:00", court.Name, res.Date, res.Hour),
				AmountCents:       res.PriceCents,
				ExternalReference: res.PublicID,
				NotificationURL:   m.baseURL + "/api/v1/payments/callback",
				ExpiresFrom:       now,
				ExpiresTo:         now.Add(time.Duration(p.ExpirationMinutes) * time.Minute),
			})
			if err != nil {
				return fmt.Errorf("error creating payment preference: %w", err)
			}
			prefID := sql.NullString{String: pref.ID, Valid: true}
			if err := tx.Queries.SetReservationPreference(ctx, dbgen.SetReservationPreferenceParams{
				PreferenceID: prefID,
				UpdatedAt:    now,
				ID:           res.ID,
			}); err != nil {
				return fmt.Errorf("error storing preference id: %w", err)
			}
			res.PreferenceID = prefID
		}

		if err := history.Record(ctx, tx.Queries,
			history.EntityReservation, res.ID, history.ActionCreated,
			m.actor(req.Actor, req.ClientEmail), req.PaymentMethod); err != nil {
			return fmt.Errorf("error recording history: %w", err)
		}

		created = res
		return nil
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return dbgen.Reservation{}, ErrSlotUnavailable
		}
		return dbgen.Reservation{}, err
	}
	return created, nil
}

func (m *Manager) validateCreate(req *CreateRequest) error {
	if req.CourtID <= 0 {
		return apiutil.FieldError{Field: "court_id", Reason: "is required"}
	}
	req.ClientName = strings.TrimSpace(req.ClientName)
	if req.ClientName == "" {
		return apiutil.FieldError{Field: "client_name", Reason: "is required"}
	}
	req.ClientEmail = strings.ToLower(strings.TrimSpace(req.ClientEmail))
	if _, err := mail.ParseAddress(req.ClientEmail); err != nil {
		return apiutil.FieldError{Field: "client_email", Reason: "must be a valid email address"}
	}
	if _, err := apiutil.ParseDate("date", req.Date); err != nil {
		return err
	}
	if req.Hour < 0 || req.Hour > 23 {
		return apiutil.FieldError{Field: "hour", Reason: "must be an hour between 0 and 23"}
	}
	if req.PaymentMethod != PaymentInPerson && req.PaymentMethod != PaymentOnline {
		return apiutil.FieldError{Field: "payment_method", Reason: "must be in_person or online"}
	}
	return nil
}

func (m *Manager) actor(actor, fallback string) string {
	if actor != "" {
		return actor
	}
	return fallback
}

// Get resolves a reservation by public id, validating expiration on
// the way. An expired reservation is removed and reported as
// ErrReservationExpired.
func (m *Manager) Get(ctx context.Context, publicID string) (dbgen.Reservation, error) {
	res, err := m.db.Queries.GetReservationByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dbgen.Reservation{}, ErrReservationNotFound
		}
		return dbgen.Reservation{}, fmt.Errorf("error loading reservation: %w", err)
	}

	outcome, err := m.Validate(ctx, res)
	if err != nil {
		return dbgen.Reservation{}, err
	}
	if outcome == OutcomeExpiredAndRemoved {
		return dbgen.Reservation{}, ErrReservationExpired
	}
	return res, nil
}

// ResolveReservation satisfies the payment confirmation flow's lookup
// interface.
func (m *Manager) ResolveReservation(ctx context.Context, publicID string) (dbgen.Reservation, error) {
	return m.Get(ctx, publicID)
}

// Cancel soft-deletes a reservation. If the slot was paid and starts
// within the club's notice window, opted-in members are offered the
// freed slot after commit; notification failures only log.
func (m *Manager) Cancel(ctx context.Context, publicID, actor string) error {
	res, err := m.Get(ctx, publicID)
	if err != nil {
		return err
	}

	now := m.clock.Now()
	err = m.db.RunInTx(ctx, func(tx *db.DB) error {
		rows, err := tx.Queries.SoftDeleteReservation(ctx, dbgen.SoftDeleteReservationParams{
			DeletedAt: sql.NullTime{Time: now, Valid: true},
			UpdatedAt: now,
			ID:        res.ID,
		})
		if err != nil {
			return fmt.Errorf("error cancelling reservation: %w", err)
		}
		if rows == 0 {
			return ErrReservationNotFound
		}
		return history.Record(ctx, tx.Queries,
			history.EntityReservation, res.ID, history.ActionCancelled,
			m.actor(actor, res.ClientEmail), "")
	})
	if err != nil {
		return err
	}

	m.notifySlotFreed(ctx, res, m.actor(actor, res.ClientEmail))
	return nil
}

// MarkAttendance records that the client showed up. Allowed only once
// the slot is finished per club policy (at start or at end of the
// hour). In-person reservations are marked paid at the same time.
func (m *Manager) MarkAttendance(ctx context.Context, publicID, actor string) error {
	res, err := m.Get(ctx, publicID)
	if err != nil {
		return err
	}
	if res.Attended {
		return ErrAlreadyAttended
	}

	p, err := m.params.Reservation(ctx, m.clubID)
	if err != nil {
		return fmt.Errorf("error loading reservation params: %w", err)
	}

	day, err := time.ParseInLocation("2006-01-02", res.Date, time.Local)
	if err != nil {
		return fmt.Errorf("error parsing reservation date: %w", err)
	}
	finished := day.Add(time.Duration(res.Hour) * time.Hour)
	if !p.FinalizeAtStart {
		finished = finished.Add(time.Hour)
	}
	if m.clock.Now().Before(finished) {
		return ErrNotFinished
	}

	now := m.clock.Now()
	return m.db.RunInTx(ctx, func(tx *db.DB) error {
		if !res.Paid {
			if _, err := tx.Queries.SetReservationPaid(ctx, dbgen.SetReservationPaidParams{
				UpdatedAt: now,
				ID:        res.ID,
			}); err != nil {
				return fmt.Errorf("error marking reservation paid: %w", err)
			}
		}

		rows, err := tx.Queries.SetReservationAttended(ctx, dbgen.SetReservationAttendedParams{
			UpdatedAt: now,
			ID:        res.ID,
		})
		if err != nil {
			return fmt.Errorf("error recording attendance: %w", err)
		}
		if rows == 0 {
			return ErrAlreadyAttended
		}
		return history.Record(ctx, tx.Queries,
			history.EntityReservation, res.ID, history.ActionAttended,
			actor, "")
	})
}

// notifySlotFreed runs post-commit and never fails the cancellation.
func (m *Manager) notifySlotFreed(ctx context.Context, res dbgen.Reservation, actor string) {
	if !res.Paid {
		return
	}

	p, err := m.params.Reservation(ctx, m.clubID)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("could not load params for slot-freed notifications")
		return
	}

	day, err := time.ParseInLocation("2006-01-02", res.Date, time.Local)
	if err != nil {
		return
	}
	start := day.Add(time.Duration(res.Hour) * time.Hour)
	now := m.clock.Now()
	if start.Before(now) || start.Sub(now) > time.Duration(p.FreeSlotNoticeHours)*time.Hour {
		return
	}

	court, err := m.db.Queries.GetCourt(ctx, res.CourtID)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("could not load court for slot-freed notifications")
		return
	}

	members, err := m.db.Queries.ListNotifiableMembers(ctx, m.clubID)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("could not list members for slot-freed notifications")
		return
	}

	for _, member := range members {
		if strings.EqualFold(member.Email, actor) || strings.EqualFold(member.Email, res.ClientEmail) {
			continue
		}
		link, err := m.IssueRebookingToken(ctx, member.ID, res.CourtID, res.Date, res.Hour)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).
				Int64("member_id", member.ID).
				Msg("could not issue rebooking token")
			continue
		}
		subject, htmlBody, textBody := email.SlotFreed(
			member.FirstName, court.Name, res.Date, res.Hour, link)
		if err := m.emails.SendEmail(ctx, member.Email, subject, htmlBody, textBody); err != nil {
			log.Ctx(ctx).Warn().Err(err).
				Str("to", member.Email).
				Msg("could not send slot-freed email")
		}
	}
}
