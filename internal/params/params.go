// internal/params/params.go

// Package params reads per-club policy rows with a short-lived cache.
// Parameter changes are rare and a slightly stale read is acceptable,
// so the cache keeps the hot paths (availability, validation) off the
// database.
package params

import (
	"context"
	"sync"
	"time"

	"github.com/tvidela/clubcancha/internal/clock"
	"github.com/tvidela/clubcancha/internal/db"
	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
)

const cacheTTL = 30 * time.Second

type cachedReservation struct {
	value     dbgen.ReservationParam
	fetchedAt time.Time
}

type cachedDues struct {
	value     dbgen.DuesParam
	fetchedAt time.Time
}

type Store struct {
	db    *db.DB
	clock clock.Clock

	mu          sync.Mutex
	reservation map[int64]cachedReservation
	dues        map[int64]cachedDues
}

func NewStore(database *db.DB, clk clock.Clock) *Store {
	return &Store{
		db:          database,
		clock:       clk,
		reservation: make(map[int64]cachedReservation),
		dues:        make(map[int64]cachedDues),
	}
}

// Reservation returns the reservation policy for a club, cached for a
// short window.
func (s *Store) Reservation(ctx context.Context, clubID int64) (dbgen.ReservationParam, error) {
	now := s.clock.Now()

	s.mu.Lock()
	if c, ok := s.reservation[clubID]; ok && now.Sub(c.fetchedAt) < cacheTTL {
		s.mu.Unlock()
		return c.value, nil
	}
	s.mu.Unlock()

	p, err := s.db.Queries.GetReservationParams(ctx, clubID)
	if err != nil {
		return dbgen.ReservationParam{}, err
	}

	s.mu.Lock()
	s.reservation[clubID] = cachedReservation{value: p, fetchedAt: now}
	s.mu.Unlock()
	return p, nil
}

// Dues returns the dues policy for a club, cached for a short window.
func (s *Store) Dues(ctx context.Context, clubID int64) (dbgen.DuesParam, error) {
	now := s.clock.Now()

	s.mu.Lock()
	if c, ok := s.dues[clubID]; ok && now.Sub(c.fetchedAt) < cacheTTL {
		s.mu.Unlock()
		return c.value, nil
	}
	s.mu.Unlock()

	p, err := s.db.Queries.GetDuesParams(ctx, clubID)
	if err != nil {
		return dbgen.DuesParam{}, err
	}

	s.mu.Lock()
	s.dues[clubID] = cachedDues{value: p, fetchedAt: now}
	s.mu.Unlock()
	return p, nil
}

// Invalidate drops cached entries for a club after a parameter write.
func (s *Store) Invalidate(clubID int64) {
	s.mu.Lock()
	delete(s.reservation, clubID)
	delete(s.dues, clubID)
	s.mu.Unlock()
}
