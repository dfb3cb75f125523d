package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/parkgrid/occupancy/internal/core/domain"
)

type TicketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Issue is an insert-or-return-existing keyed on the unique entry_id, so a
// retried exit can never produce a second ticket for the same entry.
func (r *TicketRepository) Issue(ctx context.Context, entryID uuid.UUID, issuedTime time.Time, amount domain.Cents) (*domain.Ticket, error) {
	ticket := &domain.Ticket{
		ID:          uuid.New(),
		EntryID:     entryID,
		IssuedTime:  issuedTime,
		TotalAmount: amount,
	}

	query := `
	INSERT INTO tickets (id, entry_id, issued_time, total_amount_cents)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (entry_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, ticket.ID, entryID, issuedTime, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to issue ticket for entry %s: %w", entryID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if rowsAffected == 1 {
		return ticket, nil
	}

	return r.findByEntryID(ctx, entryID)
}

func (r *TicketRepository) findByEntryID(ctx context.Context, entryID uuid.UUID) (*domain.Ticket, error) {
	var ticket domain.Ticket

	query := `
	SELECT id, entry_id, issued_time, total_amount_cents
	FROM tickets
	WHERE entry_id = $1
	`

	err := r.db.QueryRowContext(ctx, query, entryID).Scan(
		&ticket.ID, &ticket.EntryID, &ticket.IssuedTime, &ticket.TotalAmount,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("ticket for entry %s vanished after conflict: %w", entryID, err)
		}
		return nil, fmt.Errorf("failed to load ticket for entry %s: %w", entryID, err)
	}

	ticket.IssuedTime = ticket.IssuedTime.UTC()

	return &ticket, nil
}
