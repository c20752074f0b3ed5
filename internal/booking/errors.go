// internal/booking/errors.go
package booking

import "errors"

var (
	// ErrSlotUnavailable means another active reservation holds the
	// slot. Losing the race at insert time is a normal outcome, not a
	// failure.
	ErrSlotUnavailable = errors.New("slot is already reserved")

	// ErrReservationNotFound means no active reservation matches.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrReservationExpired means the reservation was found expired
	// and has been removed.
	ErrReservationExpired = errors.New("reservation no longer exists")

	// ErrTooManyReservations means the client hit the per-club cap on
	// simultaneous active reservations.
	ErrTooManyReservations = errors.New("too many active reservations")

	// ErrAlreadyAttended means attendance was already recorded.
	ErrAlreadyAttended = errors.New("attendance already recorded")

	// ErrNotFinished means the slot has not reached the point where
	// club policy allows recording attendance.
	ErrNotFinished = errors.New("reservation is not finished yet")

	// ErrTokenInvalid covers malformed, unknown and lapsed rebooking
	// tokens alike; callers get no more detail than that.
	ErrTokenInvalid = errors.New("invalid rebooking token")

	// ErrTokenUsed means the single-use rebooking token was already
	// redeemed.
	ErrTokenUsed = errors.New("rebooking token already used")
)
