package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/parkgrid/occupancy/internal/core/domain"
)

const pgUniqueViolation = "23505"

type EntryRepository struct {
	db *sql.DB
}

func NewEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// CreateActive relies on the partial unique index on (car_id) WHERE exit_time
// IS NULL: two concurrent entry attempts for the same car race at the index,
// not in application code, and the loser surfaces as a duplicate.
func (r *EntryRepository) CreateActive(ctx context.Context, carID, lotID int64, entryTime time.Time) (*domain.Entry, error) {
	entry := &domain.Entry{
		ID:        uuid.New(),
		CarID:     carID,
		LotID:     lotID,
		EntryTime: entryTime,
	}

	query := `
	INSERT INTO entries (id, car_id, lot_id, entry_time, capacity_released, created_at, updated_at)
	VALUES ($1, $2, $3, $4, FALSE, NOW(), NOW())
	RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, entry.ID, carID, lotID, entryTime).
		Scan(&entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, domain.ErrDuplicateActiveEntry
		}
		return nil, fmt.Errorf("failed to insert entry for car %d: %w", carID, err)
	}

	return entry, nil
}

func (r *EntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	query := entrySelect + ` WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *EntryRepository) FindActiveByCar(ctx context.Context, carID int64) (*domain.Entry, error) {
	query := entrySelect + ` WHERE car_id = $1 AND exit_time IS NULL`
	return r.scanOne(r.db.QueryRowContext(ctx, query, carID))
}

// Complete transitions the entry to its final state. The exit_time IS NULL
// guard makes the transition happen at most once; a zero-row update is
// disambiguated into not-found versus already-exited with a follow-up read.
func (r *EntryRepository) Complete(ctx context.Context, id uuid.UUID, exitTime time.Time, amount domain.Cents) (*domain.Entry, error) {
	query := `
	UPDATE entries
	SET exit_time = $2, charged_amount_cents = $3, updated_at = NOW()
	WHERE id = $1 AND exit_time IS NULL
	RETURNING car_id, lot_id, entry_time, capacity_released, created_at, updated_at
	`

	entry := &domain.Entry{ID: id, ExitTime: &exitTime, ChargedAmount: &amount}

	err := r.db.QueryRowContext(ctx, query, id, exitTime, amount).Scan(
		&entry.CarID, &entry.LotID, &entry.EntryTime, &entry.CapacityReleased,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to complete entry %s: %w", id, err)
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM entries WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check entry %s: %w", id, err)
	}
	if !exists {
		return nil, domain.ErrEntryNotFound
	}
	return nil, domain.ErrAlreadyExited
}

func (r *EntryRepository) CountActiveByLot(ctx context.Context, lotID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM entries WHERE lot_id = $1 AND exit_time IS NULL`, lotID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active entries for lot %d: %w", lotID, err)
	}
	return count, nil
}

func (r *EntryRepository) FindCompletedUnreleased(ctx context.Context, limit int) ([]domain.Entry, error) {
	query := entrySelect + `
	WHERE exit_time IS NOT NULL AND capacity_released = FALSE
	ORDER BY exit_time
	LIMIT $1`

	return r.scanMany(ctx, query, limit)
}

func (r *EntryRepository) FindCompletedWithoutTicket(ctx context.Context, limit int) ([]domain.Entry, error) {
	query := `
	SELECT e.id, e.car_id, e.lot_id, e.entry_time, e.exit_time, e.charged_amount_cents, e.capacity_released, e.created_at, e.updated_at
	FROM entries e
	LEFT JOIN tickets t ON t.entry_id = e.id
	WHERE e.exit_time IS NOT NULL AND t.id IS NULL
	ORDER BY e.exit_time
	LIMIT $1`

	return r.scanMany(ctx, query, limit)
}

const entrySelect = `
	SELECT id, car_id, lot_id, entry_time, exit_time, charged_amount_cents, capacity_released, created_at, updated_at
	FROM entries`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*domain.Entry, error) {
	var entry domain.Entry
	var exitTime sql.NullTime
	var charged sql.NullInt64

	err := row.Scan(
		&entry.ID, &entry.CarID, &entry.LotID, &entry.EntryTime,
		&exitTime, &charged, &entry.CapacityReleased,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if exitTime.Valid {
		t := exitTime.Time.UTC()
		entry.ExitTime = &t
	}
	if charged.Valid {
		amount := domain.Cents(charged.Int64)
		entry.ChargedAmount = &amount
	}
	entry.EntryTime = entry.EntryTime.UTC()

	return &entry, nil
}

func (r *EntryRepository) scanOne(row *sql.Row) (*domain.Entry, error) {
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to scan entry: %w", err)
	}
	return entry, nil
}

func (r *EntryRepository) scanMany(ctx context.Context, query string, limit int) ([]domain.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}

	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, *entry)
	}

	return entries, rows.Err()
}
