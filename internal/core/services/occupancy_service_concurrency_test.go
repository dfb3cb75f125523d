package services_test

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/parkgrid/occupancy/internal/core/domain"
	"github.com/parkgrid/occupancy/internal/core/services"
)

// The fakes below reproduce the conditional-update semantics of the postgres
// adapters (guarded compare-and-swap on the counter, uniqueness on active
// entries) so the coordinator can be exercised under real goroutine
// contention without a database.

type fakeLedger struct {
	mu        sync.Mutex
	total     int
	available int
	released  map[uuid.UUID]bool
}

func newFakeLedger(total, available int) *fakeLedger {
	return &fakeLedger{total: total, available: available, released: make(map[uuid.UUID]bool)}
}

func (l *fakeLedger) Reserve(ctx context.Context, lotID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.available <= 0 {
		return domain.ErrCapacityExhausted
	}
	l.available--
	return nil
}

func (l *fakeLedger) Release(ctx context.Context, lotID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.available >= l.total {
		return domain.ErrCapacityOverflow
	}
	l.available++
	return nil
}

func (l *fakeLedger) ReleaseWithToken(ctx context.Context, lotID int64, entryID uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.released[entryID] {
		return nil
	}
	if l.available >= l.total {
		return domain.ErrCapacityOverflow
	}
	l.released[entryID] = true
	l.available++
	return nil
}

func (l *fakeLedger) snapshot() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.available
}

type fakeEntries struct {
	mu     sync.Mutex
	active map[int64]uuid.UUID
	byID   map[uuid.UUID]*domain.Entry
}

func newFakeEntries() *fakeEntries {
	return &fakeEntries{active: make(map[int64]uuid.UUID), byID: make(map[uuid.UUID]*domain.Entry)}
}

func (f *fakeEntries) CreateActive(ctx context.Context, carID, lotID int64, entryTime time.Time) (*domain.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.active[carID]; ok {
		return nil, domain.ErrDuplicateActiveEntry
	}
	entry := &domain.Entry{ID: uuid.New(), CarID: carID, LotID: lotID, EntryTime: entryTime}
	f.active[carID] = entry.ID
	f.byID[entry.ID] = entry
	return entry, nil
}

func (f *fakeEntries) FindByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	cp := *entry
	return &cp, nil
}

func (f *fakeEntries) FindActiveByCar(ctx context.Context, carID int64) (*domain.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.active[carID]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	cp := *f.byID[id]
	return &cp, nil
}

func (f *fakeEntries) Complete(ctx context.Context, id uuid.UUID, exitTime time.Time, amount domain.Cents) (*domain.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	if entry.ExitTime != nil {
		return nil, domain.ErrAlreadyExited
	}
	entry.ExitTime = &exitTime
	entry.ChargedAmount = &amount
	delete(f.active, entry.CarID)
	cp := *entry
	return &cp, nil
}

func (f *fakeEntries) CountActiveByLot(ctx context.Context, lotID int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.active), nil
}

func (f *fakeEntries) FindCompletedUnreleased(ctx context.Context, limit int) ([]domain.Entry, error) {
	return nil, nil
}

func (f *fakeEntries) FindCompletedWithoutTicket(ctx context.Context, limit int) ([]domain.Entry, error) {
	return nil, nil
}

type fakeTickets struct {
	mu      sync.Mutex
	byEntry map[uuid.UUID]*domain.Ticket
}

func newFakeTickets() *fakeTickets {
	return &fakeTickets{byEntry: make(map[uuid.UUID]*domain.Ticket)}
}

func (f *fakeTickets) Issue(ctx context.Context, entryID uuid.UUID, issuedTime time.Time, amount domain.Cents) (*domain.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.byEntry[entryID]; ok {
		cp := *existing
		return &cp, nil
	}
	ticket := &domain.Ticket{ID: uuid.New(), EntryID: entryID, IssuedTime: issuedTime, TotalAmount: amount}
	f.byEntry[entryID] = ticket
	cp := *ticket
	return &cp, nil
}

func (f *fakeTickets) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byEntry)
}

type staticLots struct{ lot domain.Lot }

func (s *staticLots) Get(ctx context.Context, lotID int64) (*domain.Lot, error) {
	cp := s.lot
	return &cp, nil
}

func (s *staticLots) ListIDs(ctx context.Context) ([]int64, error) {
	return []int64{s.lot.ID}, nil
}

func (s *staticLots) ResizeTotalSpaces(ctx context.Context, lotID int64, totalSpaces int) (*domain.Lot, error) {
	cp := s.lot
	cp.TotalSpaces = totalSpaces
	return &cp, nil
}

func (s *staticLots) RederiveAvailability(ctx context.Context, lotID int64) (bool, error) {
	return false, nil
}

type plateCars struct{}

func (plateCars) FindByRef(ctx context.Context, ref string) (*domain.Car, error) {
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		return nil, domain.ErrCarNotFound
	}
	return &domain.Car{ID: id, PlateNumber: fmt.Sprintf("CAR-%d", id)}, nil
}

type nopAudit struct{}

func (nopAudit) Record(ctx context.Context, actorID int64, action, description string) error {
	return nil
}

func newConcurrencyService(ledger *fakeLedger, entries *fakeEntries, tickets *fakeTickets) *services.OccupancyService {
	db, _ := redismock.NewClientMock()
	lots := &staticLots{lot: domain.Lot{ID: 1, Code: "LOT-1", TotalSpaces: ledger.total, AvailableSpaces: ledger.available, FeePerHour: 500}}
	return services.NewOccupancyService(lots, plateCars{}, ledger, entries, tickets, nopAudit{}, db)
}

func TestRegisterEntry_ConcurrentRequestsNeverOversell(t *testing.T) {
	const capacity = 10
	const requests = 25

	ledger := newFakeLedger(capacity, capacity)
	entries := newFakeEntries()
	svc := newConcurrencyService(ledger, entries, newFakeTickets())

	var wg sync.WaitGroup
	results := make(chan error, requests)

	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(carID int) {
			defer wg.Done()
			_, err := svc.RegisterEntry(context.Background(), services.RegisterEntryRequest{
				CarRef: strconv.Itoa(carID),
				LotID:  1,
			})
			results <- err
		}(i + 1)
	}

	wg.Wait()
	close(results)

	var succeeded, exhausted int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, domain.ErrCapacityExhausted):
			exhausted++
		}
	}

	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, requests-capacity, exhausted)
	assert.Equal(t, 0, ledger.snapshot())
}

func TestRegisterEntry_DuplicateLeavesCapacityUnchanged(t *testing.T) {
	ledger := newFakeLedger(5, 5)
	entries := newFakeEntries()
	svc := newConcurrencyService(ledger, entries, newFakeTickets())

	ctx := context.Background()

	_, err := svc.RegisterEntry(ctx, services.RegisterEntryRequest{CarRef: "42", LotID: 1})
	assert.NoError(t, err)
	assert.Equal(t, 4, ledger.snapshot())

	// the same car again: the reservation must be compensated away
	_, err = svc.RegisterEntry(ctx, services.RegisterEntryRequest{CarRef: "42", LotID: 1})
	assert.ErrorIs(t, err, domain.ErrDuplicateActiveEntry)
	assert.Equal(t, 4, ledger.snapshot())
}

func TestRegisterExit_RetriedExitReleasesAndTicketsOnce(t *testing.T) {
	ledger := newFakeLedger(5, 5)
	entries := newFakeEntries()
	tickets := newFakeTickets()
	svc := newConcurrencyService(ledger, entries, tickets)

	ctx := context.Background()

	resp, err := svc.RegisterEntry(ctx, services.RegisterEntryRequest{CarRef: "42", LotID: 1})
	assert.NoError(t, err)
	assert.Equal(t, 4, ledger.snapshot())

	entryID := uuid.MustParse(resp.EntryID)

	_, err = svc.RegisterExit(ctx, services.RegisterExitRequest{EntryID: entryID})
	assert.NoError(t, err)
	assert.Equal(t, 5, ledger.snapshot())
	assert.Equal(t, 1, tickets.count())

	_, err = svc.RegisterExit(ctx, services.RegisterExitRequest{EntryID: entryID})
	assert.ErrorIs(t, err, domain.ErrAlreadyExited)
	assert.Equal(t, 5, ledger.snapshot())
	assert.Equal(t, 1, tickets.count())
}
