package services

import (
	"context"
	"log"
	"time"

	"github.com/parkgrid/occupancy/internal/core/ports"
)

const reconcileBatchSize = 100

// ReconciliationService is the periodic backstop behind the saga: it claims
// release tokens left behind by interrupted exits, issues tickets missing
// for completed entries, and re-derives any lot counter that has drifted
// from the active-entry count.
type ReconciliationService struct {
	lots     ports.LotDirectory
	entries  ports.EntryRepository
	capacity ports.CapacityLedger
	tickets  ports.TicketRepository
}

func NewReconciliationService(
	lots ports.LotDirectory,
	entries ports.EntryRepository,
	capacity ports.CapacityLedger,
	tickets ports.TicketRepository,
) *ReconciliationService {
	return &ReconciliationService{
		lots:     lots,
		entries:  entries,
		capacity: capacity,
		tickets:  tickets,
	}
}

// Run performs one sweep. Every repair is individually idempotent, so an
// interrupted sweep finishes on the next schedule.
func (s *ReconciliationService) Run(ctx context.Context) error {
	unreleased, err := s.entries.FindCompletedUnreleased(ctx, reconcileBatchSize)
	if err != nil {
		return err
	}
	for _, entry := range unreleased {
		if err := s.capacity.ReleaseWithToken(ctx, entry.LotID, entry.ID); err != nil {
			log.Printf("reconciliation: releasing space for entry %s failed: %v", entry.ID, err)
			continue
		}
		log.Printf("reconciliation: released space in lot %d for completed entry %s", entry.LotID, entry.ID)
	}

	orphans, err := s.entries.FindCompletedWithoutTicket(ctx, reconcileBatchSize)
	if err != nil {
		return err
	}
	for _, entry := range orphans {
		if entry.ChargedAmount == nil {
			log.Printf("reconciliation: entry %s completed without a charged amount, skipping ticket", entry.ID)
			continue
		}
		if _, err := s.tickets.Issue(ctx, entry.ID, time.Now().UTC(), *entry.ChargedAmount); err != nil {
			log.Printf("reconciliation: issuing ticket for entry %s failed: %v", entry.ID, err)
			continue
		}
		log.Printf("reconciliation: issued missing ticket for entry %s", entry.ID)
	}

	lotIDs, err := s.lots.ListIDs(ctx)
	if err != nil {
		return err
	}
	for _, lotID := range lotIDs {
		lot, err := s.lots.Get(ctx, lotID)
		if err != nil {
			log.Printf("reconciliation: loading lot %d failed: %v", lotID, err)
			continue
		}

		active, err := s.entries.CountActiveByLot(ctx, lotID)
		if err != nil {
			log.Printf("reconciliation: counting active entries for lot %d failed: %v", lotID, err)
			continue
		}

		want := lot.TotalSpaces - active
		if want < 0 {
			want = 0
		}
		if lot.AvailableSpaces == want {
			continue
		}

		log.Printf("reconciliation: lot %d availability drifted (have %d, want %d with %d active entries)",
			lotID, lot.AvailableSpaces, want, active)

		if _, err := s.lots.RederiveAvailability(ctx, lotID); err != nil {
			log.Printf("reconciliation: repairing lot %d failed: %v", lotID, err)
		}
	}

	return nil
}
