package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/parkgrid/occupancy/internal/core/domain"
)

type LotRepository struct {
	db *sql.DB
}

func NewLotRepository(db *sql.DB) *LotRepository {
	return &LotRepository{db: db}
}

func (r *LotRepository) Get(ctx context.Context, lotID int64) (*domain.Lot, error) {
	var lot domain.Lot

	query := `
	SELECT id, code, name, total_spaces, available_spaces, fee_per_hour_cents
	FROM parking_lots
	WHERE id = $1
	`

	err := r.db.QueryRowContext(ctx, query, lotID).Scan(
		&lot.ID, &lot.Code, &lot.Name, &lot.TotalSpaces, &lot.AvailableSpaces, &lot.FeePerHour,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLotNotFound
		}
		return nil, fmt.Errorf("failed to load lot %d: %w", lotID, err)
	}

	return &lot, nil
}

func (r *LotRepository) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM parking_lots ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list lots: %w", err)
	}

	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan lot id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// ResizeTotalSpaces is the administrative capacity edit. available_spaces is
// re-derived from the live active-entry count inside the same statement; it
// is never written from a client-supplied value.
func (r *LotRepository) ResizeTotalSpaces(ctx context.Context, lotID int64, totalSpaces int) (*domain.Lot, error) {
	var lot domain.Lot

	query := `
	UPDATE parking_lots l
	SET total_spaces = $2,
		available_spaces = GREATEST(0, $2 - sub.active),
		updated_at = NOW()
	FROM (
		SELECT COUNT(*) AS active
		FROM entries e
		WHERE e.lot_id = $1 AND e.exit_time IS NULL
	) sub
	WHERE l.id = $1
	RETURNING l.id, l.code, l.name, l.total_spaces, l.available_spaces, l.fee_per_hour_cents
	`

	err := r.db.QueryRowContext(ctx, query, lotID, totalSpaces).Scan(
		&lot.ID, &lot.Code, &lot.Name, &lot.TotalSpaces, &lot.AvailableSpaces, &lot.FeePerHour,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLotNotFound
		}
		return nil, fmt.Errorf("failed to resize lot %d: %w", lotID, err)
	}

	return &lot, nil
}

// RederiveAvailability is the reconciliation repair: it recomputes the
// counter from the active-entry count and only writes when they disagree.
func (r *LotRepository) RederiveAvailability(ctx context.Context, lotID int64) (bool, error) {
	query := `
	UPDATE parking_lots l
	SET available_spaces = GREATEST(0, l.total_spaces - sub.active),
		updated_at = NOW()
	FROM (
		SELECT COUNT(*) AS active
		FROM entries e
		WHERE e.lot_id = $1 AND e.exit_time IS NULL
	) sub
	WHERE l.id = $1
	  AND l.available_spaces <> GREATEST(0, l.total_spaces - sub.active)
	`

	result, err := r.db.ExecContext(ctx, query, lotID)
	if err != nil {
		return false, fmt.Errorf("failed to rederive availability for lot %d: %w", lotID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
