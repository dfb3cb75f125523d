package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/parkgrid/occupancy/internal/core/domain"
)

type CapacityRepository struct {
	db *sql.DB
}

func NewCapacityRepository(db *sql.DB) *CapacityRepository {
	return &CapacityRepository{db: db}
}

// Reserve takes one space. The WHERE guard makes the decrement a
// compare-and-swap: two attendants racing for the last space cannot both get
// a row update, so the counter never goes below zero.
func (r *CapacityRepository) Reserve(ctx context.Context, lotID int64) error {
	query := `
	UPDATE parking_lots
	SET available_spaces = available_spaces - 1,
		updated_at = NOW()
	WHERE id = $1 AND available_spaces > 0
	`

	result, err := r.db.ExecContext(ctx, query, lotID)
	if err != nil {
		return fmt.Errorf("failed to reserve space in lot %d: %w", lotID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrCapacityExhausted
	}

	return nil
}

// Release undoes a reservation that never produced an entry row. There is no
// token to key on, so the guard against exceeding total_spaces is the only
// protection; hitting it means the counters have drifted.
func (r *CapacityRepository) Release(ctx context.Context, lotID int64) error {
	query := `
	UPDATE parking_lots
	SET available_spaces = available_spaces + 1,
		updated_at = NOW()
	WHERE id = $1 AND available_spaces < total_spaces
	`

	result, err := r.db.ExecContext(ctx, query, lotID)
	if err != nil {
		return fmt.Errorf("failed to release space in lot %d: %w", lotID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrCapacityOverflow
	}

	return nil
}

// ReleaseWithToken claims the entry's release token and increments the
// counter in one transaction. A retry finds the token already claimed and
// returns without touching the counter.
func (r *CapacityRepository) ReleaseWithToken(ctx context.Context, lotID int64, entryID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	claim, err := tx.ExecContext(ctx, `
	UPDATE entries
	SET capacity_released = TRUE, updated_at = NOW()
	WHERE id = $1 AND capacity_released = FALSE
	`, entryID)
	if err != nil {
		return fmt.Errorf("failed to claim release token for entry %s: %w", entryID, err)
	}

	claimed, err := claim.RowsAffected()
	if err != nil {
		return err
	}

	if claimed == 0 {
		// already released by an earlier attempt
		return nil
	}

	inc, err := tx.ExecContext(ctx, `
	UPDATE parking_lots
	SET available_spaces = available_spaces + 1,
		updated_at = NOW()
	WHERE id = $1 AND available_spaces < total_spaces
	`, lotID)
	if err != nil {
		return fmt.Errorf("failed to release space in lot %d for entry %s: %w", lotID, entryID, err)
	}

	incremented, err := inc.RowsAffected()
	if err != nil {
		return err
	}

	if incremented == 0 {
		// the token was unclaimed yet the lot shows no occupancy to give
		// back; rolling back keeps the token for the reconciliation sweep
		return domain.ErrCapacityOverflow
	}

	return tx.Commit()
}
