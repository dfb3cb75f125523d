package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/parkgrid/occupancy/internal/core/domain"
	"github.com/parkgrid/occupancy/internal/core/ports"
)

const availabilityCacheTTL = 10 * time.Second

type RegisterEntryRequest struct {
	ActorID int64  `json:"-"`
	CarRef  string `json:"car_ref"`
	LotID   int64  `json:"lot_id"`
}

type RegisterEntryResponse struct {
	EntryID   string `json:"entry_id"`
	CarID     int64  `json:"car_id"`
	LotID     int64  `json:"lot_id"`
	EntryTime string `json:"entry_time"`
}

type RegisterExitRequest struct {
	ActorID int64
	EntryID uuid.UUID
}

type RegisterExitResponse struct {
	EntryID       string  `json:"entry_id"`
	TicketID      string  `json:"ticket_id"`
	EntryTime     string  `json:"entry_time"`
	ExitTime      string  `json:"exit_time"`
	DurationHours float64 `json:"duration_hours"`
	AmountCents   int64   `json:"amount_cents"`
}

type ResizeLotRequest struct {
	ActorID     int64 `json:"-"`
	LotID       int64 `json:"-"`
	TotalSpaces int   `json:"total_spaces"`
}

type ActiveEntryResponse struct {
	EntryID   string `json:"entry_id"`
	CarID     int64  `json:"car_id"`
	LotID     int64  `json:"lot_id"`
	EntryTime string `json:"entry_time"`
}

type LotAvailabilityResponse struct {
	LotID           int64 `json:"lot_id"`
	TotalSpaces     int   `json:"total_spaces"`
	AvailableSpaces int   `json:"available_spaces"`
}

// OccupancyService sequences the capacity ledger, the entry registry and the
// ticket issuer into the two attendant-facing operations. All cross-request
// coordination lives in the datastore; the service itself holds no state, so
// any number of instances can run concurrently.
type OccupancyService struct {
	lots     ports.LotDirectory
	cars     ports.CarDirectory
	capacity ports.CapacityLedger
	entries  ports.EntryRepository
	tickets  ports.TicketRepository
	audit    ports.AuditLog
	cache    *redis.Client
}

func NewOccupancyService(
	lots ports.LotDirectory,
	cars ports.CarDirectory,
	capacity ports.CapacityLedger,
	entries ports.EntryRepository,
	tickets ports.TicketRepository,
	audit ports.AuditLog,
	cache *redis.Client,
) *OccupancyService {
	return &OccupancyService{
		lots:     lots,
		cars:     cars,
		capacity: capacity,
		entries:  entries,
		tickets:  tickets,
		audit:    audit,
		cache:    cache,
	}
}

// RegisterEntry reserves a space first and creates the entry second. That
// ordering keeps active entries per lot bounded by the reserved count at all
// times; the price is a short-lived over-reservation when the entry insert
// loses the duplicate race, undone by the compensating release below.
func (s *OccupancyService) RegisterEntry(ctx context.Context, req RegisterEntryRequest) (*RegisterEntryResponse, error) {
	car, err := s.cars.FindByRef(ctx, req.CarRef)
	if err != nil {
		return nil, err
	}

	lot, err := s.lots.Get(ctx, req.LotID)
	if err != nil {
		return nil, err
	}

	if err := s.capacity.Reserve(ctx, lot.ID); err != nil {
		return nil, err
	}

	entry, err := s.entries.CreateActive(ctx, car.ID, lot.ID, time.Now().UTC())
	if err != nil {
		// the reservation is already durable; give it back before failing
		if relErr := s.capacity.Release(ctx, lot.ID); relErr != nil {
			log.Printf("reconciliation required: lot %d holds a reservation with no entry: %v", lot.ID, relErr)
		}
		return nil, err
	}

	s.invalidateAvailability(ctx, lot.ID)
	s.recordAudit(ctx, req.ActorID, "entry.register",
		fmt.Sprintf("car %s entered lot %s (entry %s)", car.PlateNumber, lot.Code, entry.ID))

	return &RegisterEntryResponse{
		EntryID:   entry.ID.String(),
		CarID:     entry.CarID,
		LotID:     entry.LotID,
		EntryTime: entry.EntryTime.Format(time.RFC3339),
	}, nil
}

// RegisterExit completes the entry, releases the space and issues the
// ticket. The tail steps are individually idempotent (release is keyed by
// the entry id, issue upserts on the unique entry id), so the whole
// operation is safe to retry after a transient failure.
func (s *OccupancyService) RegisterExit(ctx context.Context, req RegisterExitRequest) (*RegisterExitResponse, error) {
	entry, err := s.entries.FindByID(ctx, req.EntryID)
	if err != nil {
		return nil, err
	}

	if !entry.IsActive() {
		// a previous attempt may have died between completing the entry and
		// the tail; re-drive the tail before reporting the duplicate
		if _, err := s.finishExit(ctx, entry); err != nil {
			log.Printf("reconciliation required: entry %s has an unfinished exit tail: %v", entry.ID, err)
		}
		return nil, domain.ErrAlreadyExited
	}

	lot, err := s.lots.Get(ctx, entry.LotID)
	if err != nil {
		return nil, err
	}

	exitTime := time.Now().UTC()

	amount, billedHours, err := domain.ComputeFee(entry.EntryTime, exitTime, lot.FeePerHour)
	if err != nil {
		log.Printf("invalid duration on entry %s: entry_time=%s exit_time=%s", entry.ID, entry.EntryTime, exitTime)
		return nil, err
	}

	completed, err := s.entries.Complete(ctx, entry.ID, exitTime, amount)
	if err != nil {
		return nil, err
	}

	ticket, err := s.finishExit(ctx, completed)
	if err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx, entry.LotID)
	s.recordAudit(ctx, req.ActorID, "exit.register",
		fmt.Sprintf("entry %s left lot %s, charged %d cents", entry.ID, lot.Code, amount))

	return &RegisterExitResponse{
		EntryID:       completed.ID.String(),
		TicketID:      ticket.ID.String(),
		EntryTime:     completed.EntryTime.Format(time.RFC3339),
		ExitTime:      exitTime.Format(time.RFC3339),
		DurationHours: billedHours,
		AmountCents:   int64(amount),
	}, nil
}

// ActiveEntryForCar resolves a car reference to its open entry, letting an
// attendant recover a lost entry id at the exit gate.
func (s *OccupancyService) ActiveEntryForCar(ctx context.Context, carRef string) (*ActiveEntryResponse, error) {
	car, err := s.cars.FindByRef(ctx, carRef)
	if err != nil {
		return nil, err
	}

	entry, err := s.entries.FindActiveByCar(ctx, car.ID)
	if err != nil {
		return nil, err
	}

	return &ActiveEntryResponse{
		EntryID:   entry.ID.String(),
		CarID:     entry.CarID,
		LotID:     entry.LotID,
		EntryTime: entry.EntryTime.Format(time.RFC3339),
	}, nil
}

func (s *OccupancyService) LotAvailability(ctx context.Context, lotID int64) (*LotAvailabilityResponse, error) {
	key := availabilityCacheKey(lotID)

	if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
		var resp LotAvailabilityResponse
		if json.Unmarshal([]byte(cached), &resp) == nil {
			return &resp, nil
		}
	}

	lot, err := s.lots.Get(ctx, lotID)
	if err != nil {
		return nil, err
	}

	resp := &LotAvailabilityResponse{
		LotID:           lot.ID,
		TotalSpaces:     lot.TotalSpaces,
		AvailableSpaces: lot.AvailableSpaces,
	}

	if payload, err := json.Marshal(resp); err == nil {
		if err := s.cache.Set(ctx, key, payload, availabilityCacheTTL).Err(); err != nil {
			log.Printf("failed to cache availability for lot %d: %v", lotID, err)
		}
	}

	return resp, nil
}

// ResizeLot is the administrative capacity edit. The repository re-derives
// available_spaces from the active-entry count; the client never supplies it.
func (s *OccupancyService) ResizeLot(ctx context.Context, req ResizeLotRequest) (*LotAvailabilityResponse, error) {
	lot, err := s.lots.ResizeTotalSpaces(ctx, req.LotID, req.TotalSpaces)
	if err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx, lot.ID)
	s.recordAudit(ctx, req.ActorID, "lot.resize",
		fmt.Sprintf("lot %s resized to %d total spaces", lot.Code, lot.TotalSpaces))

	return &LotAvailabilityResponse{
		LotID:           lot.ID,
		TotalSpaces:     lot.TotalSpaces,
		AvailableSpaces: lot.AvailableSpaces,
	}, nil
}

// finishExit is the idempotent tail of exit registration.
func (s *OccupancyService) finishExit(ctx context.Context, entry *domain.Entry) (*domain.Ticket, error) {
	if err := s.capacity.ReleaseWithToken(ctx, entry.LotID, entry.ID); err != nil {
		return nil, err
	}

	if entry.ChargedAmount == nil {
		return nil, fmt.Errorf("entry %s completed without a charged amount", entry.ID)
	}

	return s.tickets.Issue(ctx, entry.ID, time.Now().UTC(), *entry.ChargedAmount)
}

func (s *OccupancyService) invalidateAvailability(ctx context.Context, lotID int64) {
	if err := s.cache.Del(ctx, availabilityCacheKey(lotID)).Err(); err != nil {
		log.Printf("failed to invalidate availability cache for lot %d: %v", lotID, err)
	}
}

func (s *OccupancyService) recordAudit(ctx context.Context, actorID int64, action, description string) {
	if err := s.audit.Record(ctx, actorID, action, description); err != nil {
		log.Printf("audit record failed for %s: %v", action, err)
	}
}

func availabilityCacheKey(lotID int64) string {
	return fmt.Sprintf("lot:availability:%d", lotID)
}
