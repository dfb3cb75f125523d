package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Record(ctx context.Context, actorID int64, action, description string) error {
	query := `
	INSERT INTO audit_log (actor_id, action, description, created_at)
	VALUES ($1, $2, $3, NOW())
	`

	if _, err := r.db.ExecContext(ctx, query, actorID, action, description); err != nil {
		return fmt.Errorf("failed to record audit event %q: %w", action, err)
	}

	return nil
}
