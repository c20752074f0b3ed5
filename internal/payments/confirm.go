// internal/payments/confirm.go
package payments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tvidela/clubcancha/internal/clock"
	"github.com/tvidela/clubcancha/internal/db"
	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
	"github.com/tvidela/clubcancha/internal/email"
	"github.com/tvidela/clubcancha/internal/history"
)

var (
	// ErrPaymentRejected means the callback reported a non-approved
	// status. Nothing is written.
	ErrPaymentRejected = errors.New("payment was not approved")

	// ErrDuplicatePayment means this payment id was already recorded.
	// The earlier confirmation stands; the retry is a no-op.
	ErrDuplicatePayment = errors.New("payment already recorded")

	// ErrUnknownReference means the external reference matched no
	// payable reservation or dues period.
	ErrUnknownReference = errors.New("unknown external reference")
)

// Dues callbacks carry "cuota:<id>" as their external reference;
// reservation callbacks carry the reservation's public id.
const duesReferencePrefix = "cuota:"

// ReservationResolver looks up a reservation by public id, validating
// expiration on the way (expired rows are removed and reported as
// gone).
type ReservationResolver interface {
	ResolveReservation(ctx context.Context, publicID string) (dbgen.Reservation, error)
}

// Confirmer applies gateway payment callbacks. All collaborators are
// injected; the confirmer holds no ambient state.
type Confirmer struct {
	db           *db.DB
	gateway      Gateway
	clock        clock.Clock
	emails       email.EmailSender
	reservations ReservationResolver
}

func NewConfirmer(database *db.DB, gateway Gateway, clk clock.Clock, emails email.EmailSender, reservations ReservationResolver) *Confirmer {
	return &Confirmer{
		db:           database,
		gateway:      gateway,
		clock:        clk,
		emails:       emails,
		reservations: reservations,
	}
}

// Confirm processes one payment callback. Non-approved statuses write
// nothing. Approved payments are verified against the gateway before
// any mutation; a lookup failure aborts the whole confirmation.
func (c *Confirmer) Confirm(ctx context.Context, paymentID, externalReference, status string) error {
	if status != StatusApproved {
		return ErrPaymentRejected
	}

	payment, err := c.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("error fetching payment detail: %w", err)
	}
	if payment.Status != StatusApproved {
		return ErrPaymentRejected
	}

	if rest, ok := strings.CutPrefix(externalReference, duesReferencePrefix); ok {
		return c.confirmDues(ctx, payment, rest)
	}
	return c.confirmReservation(ctx, payment, externalReference)
}

func (c *Confirmer) confirmReservation(ctx context.Context, payment Payment, publicID string) error {
	res, err := c.reservations.ResolveReservation(ctx, publicID)
	if err != nil {
		return err
	}

	err = c.db.RunInTx(ctx, func(tx *db.DB) error {
		_, err := tx.Queries.CreateReservationPayment(ctx, dbgen.CreateReservationPaymentParams{
			ReservationID: res.ID,
			PaymentID:     payment.ID,
			Status:        payment.Status,
			StatusDetail:  payment.StatusDetail,
			AmountCents:   payment.AmountCents,
			ApprovedAt:    approvedAt(payment),
		})
		if err != nil {
			if db.IsUniqueViolation(err) {
				return ErrDuplicatePayment
			}
			return fmt.Errorf("error recording payment: %w", err)
		}

		if _, err := tx.Queries.SetReservationPaid(ctx, dbgen.SetReservationPaidParams{
			UpdatedAt: c.clock.Now(),
			ID:        res.ID,
		}); err != nil {
			return fmt.Errorf("error marking reservation paid: %w", err)
		}

		return history.Record(ctx, tx.Queries,
			history.EntityReservation, res.ID, history.ActionPaid,
			"gateway", "payment "+payment.ID)
	})
	if err != nil {
		return err
	}

	c.sendConfirmationEmail(ctx, res)
	return nil
}

func (c *Confirmer) confirmDues(ctx context.Context, payment Payment, rawID string) error {
	duesID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return ErrUnknownReference
	}

	duesPeriod, err := c.db.Queries.GetDues(ctx, duesID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUnknownReference
		}
		return fmt.Errorf("error loading dues period: %w", err)
	}

	return c.db.RunInTx(ctx, func(tx *db.DB) error {
		_, err := tx.Queries.CreateDuesPayment(ctx, dbgen.CreateDuesPaymentParams{
			DuesID:       duesPeriod.ID,
			PaymentID:    payment.ID,
			Status:       payment.Status,
			StatusDetail: payment.StatusDetail,
			AmountCents:  payment.AmountCents,
			ApprovedAt:   approvedAt(payment),
		})
		if err != nil {
			if db.IsUniqueViolation(err) {
				return ErrDuplicatePayment
			}
			return fmt.Errorf("error recording dues payment: %w", err)
		}

		return history.Record(ctx, tx.Queries,
			history.EntityDues, duesPeriod.ID, history.ActionPaid,
			"gateway", "payment "+payment.ID)
	})
}

// approvedAt records the gateway's own approval timestamp. The stored
// row is the gateway's answer, not ours; NULL when it reported none.
func approvedAt(payment Payment) sql.NullTime {
	if payment.DateApproved.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: payment.DateApproved, Valid: true}
}

// Best-effort: a failed confirmation email never unwinds the payment.
func (c *Confirmer) sendConfirmationEmail(ctx context.Context, res dbgen.Reservation) {
	if res.ClientEmail == "" {
		return
	}

	court, err := c.db.Queries.GetCourt(ctx, res.CourtID)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).
			Int64("reservation_id", res.ID).
			Msg("could not load court for confirmation email")
		return
	}

	subject, htmlBody, textBody := email.ReservationConfirmed(
		res.ClientName, court.Name, res.Date, res.Hour, res.PriceCents)
	if err := c.emails.SendEmail(ctx, res.ClientEmail, subject, htmlBody, textBody); err != nil {
		log.Ctx(ctx).Warn().Err(err).
			Int64("reservation_id", res.ID).
			Str("to", res.ClientEmail).
			Msg("could not send confirmation email")
	}
}
