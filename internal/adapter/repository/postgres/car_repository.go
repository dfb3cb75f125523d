package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/parkgrid/occupancy/internal/core/domain"
)

type CarRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) *CarRepository {
	return &CarRepository{db: db}
}

// FindByRef resolves a car from either its numeric id or its plate number.
// Cars are owned by the fleet side of the system; this is a read-only lookup.
func (r *CarRepository) FindByRef(ctx context.Context, ref string) (*domain.Car, error) {
	var row *sql.Row

	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		row = r.db.QueryRowContext(ctx,
			`SELECT id, plate_number, owner_id FROM cars WHERE id = $1`, id)
	} else {
		row = r.db.QueryRowContext(ctx,
			`SELECT id, plate_number, owner_id FROM cars WHERE plate_number = $1`, ref)
	}

	var car domain.Car
	if err := row.Scan(&car.ID, &car.PlateNumber, &car.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("failed to look up car %q: %w", ref, err)
	}

	return &car, nil
}
