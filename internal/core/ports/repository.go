package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/parkgrid/occupancy/internal/core/domain"
)

// CapacityLedger owns the available_spaces counter of each lot. Both mutations
// are single conditional updates at the storage layer so that concurrent
// attendants can never drive the counter below zero or past total_spaces.
type CapacityLedger interface {
	// Reserve decrements available_spaces by one, failing with
	// domain.ErrCapacityExhausted when the lot is full.
	Reserve(ctx context.Context, lotID int64) error
	// Release increments available_spaces by one. Used only to compensate a
	// reservation whose entry row was never created; it carries no token and
	// silently stops at total_spaces.
	Release(ctx context.Context, lotID int64) error
	// ReleaseWithToken increments available_spaces at most once per entry.
	// A repeated call with the same entry ID is a successful no-op.
	ReleaseWithToken(ctx context.Context, lotID int64, entryID uuid.UUID) error
}

type EntryRepository interface {
	// CreateActive inserts an entry with no exit time. The storage layer
	// enforces at most one active entry per car and reports a violation as
	// domain.ErrDuplicateActiveEntry.
	CreateActive(ctx context.Context, carID, lotID int64, entryTime time.Time) (*domain.Entry, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	FindActiveByCar(ctx context.Context, carID int64) (*domain.Entry, error)
	// Complete sets exit time and charged amount exactly once. It fails with
	// domain.ErrAlreadyExited when the entry has already been completed.
	Complete(ctx context.Context, id uuid.UUID, exitTime time.Time, amount domain.Cents) (*domain.Entry, error)
	CountActiveByLot(ctx context.Context, lotID int64) (int, error)
	FindCompletedUnreleased(ctx context.Context, limit int) ([]domain.Entry, error)
	FindCompletedWithoutTicket(ctx context.Context, limit int) ([]domain.Entry, error)
}

type TicketRepository interface {
	// Issue creates the billing record for a completed entry, or returns the
	// existing one when a retry already created it.
	Issue(ctx context.Context, entryID uuid.UUID, issuedTime time.Time, amount domain.Cents) (*domain.Ticket, error)
}

// CarDirectory is an external collaborator; cars are looked up, never mutated.
type CarDirectory interface {
	FindByRef(ctx context.Context, ref string) (*domain.Car, error)
}

type LotDirectory interface {
	Get(ctx context.Context, lotID int64) (*domain.Lot, error)
	ListIDs(ctx context.Context) ([]int64, error)
	// ResizeTotalSpaces changes a lot's capacity and re-derives
	// available_spaces from the current active-entry count in the same
	// statement. available_spaces is never set independently.
	ResizeTotalSpaces(ctx context.Context, lotID int64, totalSpaces int) (*domain.Lot, error)
	// RederiveAvailability repairs a drifted counter from the active-entry
	// count and reports whether anything changed.
	RederiveAvailability(ctx context.Context, lotID int64) (bool, error)
}

// AuditLog is an external, best-effort collaborator. Failures are logged and
// never fail the calling operation.
type AuditLog interface {
	Record(ctx context.Context, actorID int64, action, description string) error
}
