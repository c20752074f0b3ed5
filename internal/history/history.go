// internal/history/history.go

// Package history appends audit rows for state changes. Writers call
// Record explicitly inside the same transaction as the change they
// describe; nothing here fires implicitly.
package history

import (
	"context"

	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
)

const (
	EntityReservation = "reservation"
	EntityDues        = "dues"
	EntityMember      = "member"
)

const (
	ActionCreated   = "created"
	ActionCancelled = "cancelled"
	ActionPaid      = "paid"
	ActionAttended  = "attended"
	ActionEmitted   = "emitted"
	ActionPurged    = "purged"
)

// Record writes one audit row. Pass the transaction-bound queries when
// recording alongside a mutation.
func Record(ctx context.Context, q *dbgen.Queries, entity string, entityID int64, action, actor, detail string) error {
	return q.InsertHistory(ctx, dbgen.InsertHistoryParams{
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Actor:    actor,
		Detail:   detail,
	})
}

// ForEntity returns the audit trail for a single row, oldest first.
func ForEntity(ctx context.Context, q *dbgen.Queries, entity string, entityID int64) ([]dbgen.History, error) {
	return q.ListHistoryForEntity(ctx, dbgen.ListHistoryForEntityParams{
		Entity:   entity,
		EntityID: entityID,
	})
}
