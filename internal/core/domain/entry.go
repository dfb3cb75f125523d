package domain

import (
	"time"

	"github.com/google/uuid"
)

type Entry struct {
	ID            uuid.UUID
	CarID         int64
	LotID         int64
	EntryTime     time.Time
	ExitTime      *time.Time
	ChargedAmount *Cents
	// CapacityReleased records whether the lot counter increment for this
	// entry has been applied. It is the idempotency token for release.
	CapacityReleased bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (e *Entry) IsActive() bool {
	return e.ExitTime == nil
}

type Ticket struct {
	ID          uuid.UUID
	EntryID     uuid.UUID
	IssuedTime  time.Time
	TotalAmount Cents
}
