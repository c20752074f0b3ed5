// internal/booking/availability.go

// Package booking implements the reservation engine: availability
// resolution, the reservation lifecycle, and single-use rebooking
// links for freed slots.
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/tvidela/clubcancha/internal/clock"
	"github.com/tvidela/clubcancha/internal/db"
	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
	"github.com/tvidela/clubcancha/internal/email"
	"github.com/tvidela/clubcancha/internal/params"
	"github.com/tvidela/clubcancha/internal/payments"
)

// ValidationOutcome tags the result of checking a reservation for
// lazy expiration. There is no error path for "it expired": callers
// branch on the tag.
type ValidationOutcome int

const (
	OutcomeValid ValidationOutcome = iota
	OutcomeExpiredAndRemoved
)

// Manager owns the reservation engine. Every collaborator is
// injected; there is no package-level state.
type Manager struct {
	db      *db.DB
	params  *params.Store
	gateway payments.Gateway
	clock   clock.Clock
	emails  email.EmailSender
	clubID  int64
	baseURL string
}

type ManagerConfig struct {
	ClubID  int64
	BaseURL string
}

func NewManager(database *db.DB, paramStore *params.Store, gateway payments.Gateway, clk clock.Clock, emails email.EmailSender, cfg ManagerConfig) *Manager {
	return &Manager{
		db:      database,
		params:  paramStore,
		gateway: gateway,
		clock:   clk,
		emails:  emails,
		clubID:  cfg.ClubID,
		baseURL: cfg.BaseURL,
	}
}

// AvailableCourts returns the courts of a sport that can take a
// reservation at (date, hour): configured for the hour, not deleted,
// and not held by a surviving active reservation. Expired holds found
// along the way are removed as a side effect.
func (m *Manager) AvailableCourts(ctx context.Context, sportID int64, date string, hour int64) ([]dbgen.Court, error) {
	courts, err := m.db.Queries.ListCourtsForSlot(ctx, dbgen.ListCourtsForSlotParams{
		ClubID:  m.clubID,
		SportID: sportID,
		Hour:    hour,
	})
	if err != nil {
		return nil, fmt.Errorf("error listing courts: %w", err)
	}
	if len(courts) == 0 {
		return courts, nil
	}

	holds, err := m.db.Queries.ListActiveReservationsForSlot(ctx, dbgen.ListActiveReservationsForSlotParams{
		ClubID:  m.clubID,
		SportID: sportID,
		Date:    date,
		Hour:    hour,
	})
	if err != nil {
		return nil, fmt.Errorf("error listing reservations: %w", err)
	}

	p, err := m.params.Reservation(ctx, m.clubID)
	if err != nil {
		return nil, fmt.Errorf("error loading reservation params: %w", err)
	}

	blocked := make(map[int64]bool, len(holds))
	for _, hold := range holds {
		outcome, err := m.validate(ctx, m.db, hold, p)
		if err != nil {
			return nil, err
		}
		if outcome == OutcomeValid {
			blocked[hold.CourtID] = true
		}
	}

	free := make([]dbgen.Court, 0, len(courts))
	for _, court := range courts {
		if !blocked[court.ID] {
			free = append(free, court)
		}
	}
	return free, nil
}

// AvailableHours returns the hours of a day with at least one free
// court. Slots already started are always skipped; slots inside the
// lead-time window are skipped unless the caller is staff.
func (m *Manager) AvailableHours(ctx context.Context, sportID int64, date string, admin bool) ([]int64, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("error parsing date: %w", err)
	}

	p, err := m.params.Reservation(ctx, m.clubID)
	if err != nil {
		return nil, fmt.Errorf("error loading reservation params: %w", err)
	}

	cutoff := m.clock.Now()
	if !admin {
		cutoff = cutoff.Add(time.Duration(p.LeadTimeHours) * time.Hour)
	}

	hours := []int64{}
	for h := int64(0); h < 24; h++ {
		start := day.Add(time.Duration(h) * time.Hour)
		if start.Before(cutoff) {
			continue
		}
		free, err := m.AvailableCourts(ctx, sportID, date, h)
		if err != nil {
			return nil, err
		}
		if len(free) > 0 {
			hours = append(hours, h)
		}
	}
	return hours, nil
}

// validate applies lazy expiration: an unpaid online reservation past
// its payment window is hard-deleted here, on read. A concurrent
// delete (zero rows affected) lands on the same outcome.
func (m *Manager) validate(ctx context.Context, database *db.DB, res dbgen.Reservation, p dbgen.ReservationParam) (ValidationOutcome, error) {
	if !res.Expires || res.Paid {
		return OutcomeValid, nil
	}

	deadline := res.CreatedAt.Add(time.Duration(p.ExpirationMinutes) * time.Minute)
	if !m.clock.Now().After(deadline) {
		return OutcomeValid, nil
	}

	if _, err := database.Queries.HardDeleteReservation(ctx, res.ID); err != nil {
		return OutcomeValid, fmt.Errorf("error removing expired reservation: %w", err)
	}
	return OutcomeExpiredAndRemoved, nil
}

// Validate checks one reservation for expiration, removing it if its
// payment window has lapsed.
func (m *Manager) Validate(ctx context.Context, res dbgen.Reservation) (ValidationOutcome, error) {
	p, err := m.params.Reservation(ctx, m.clubID)
	if err != nil {
		return OutcomeValid, fmt.Errorf("error loading reservation params: %w", err)
	}
	return m.validate(ctx, m.db, res, p)
}
