package claim_slots

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/internal/infra/storage/service"
	"github.com/nailsbynatalia/booking-service/pkg/ptr"
	"github.com/nailsbynatalia/booking-service/pkg/txmanager"
	"github.com/nailsbynatalia/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeStore holds slots and bookings behind one mutex so the fake tx
// manager can serialize whole claim attempts the way serializable
// isolation does.
type fakeStore struct {
	mu       sync.Mutex
	slots    map[uuid.UUID]*domain.Slot
	bookings map[uuid.UUID]*domain.Booking
	services map[uuid.UUID]*domain.Service
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		slots:    make(map[uuid.UUID]*domain.Slot),
		bookings: make(map[uuid.UUID]*domain.Booking),
		services: make(map[uuid.UUID]*domain.Service),
	}
}

type fakeSlotRepo struct {
	store *fakeStore
}

func (r *fakeSlotRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*domain.Slot, error) {
	out := make([]*domain.Slot, 0, len(ids))
	for _, id := range ids {
		if s, ok := r.store.slots[id]; ok {
			copied := *s
			out = append(out, &copied)
		}
	}
	// Storage returns slots ordered by start time.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].StartTime.IsBefore(out[j-1].StartTime); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) MarkBooked(_ context.Context, ids []uuid.UUID, bookingID uuid.UUID) (int64, error) {
	var affected int64
	for _, id := range ids {
		s, ok := r.store.slots[id]
		if !ok || s.Status != domain.SlotAvailable {
			continue
		}
		s.Status = domain.SlotBooked
		s.BookingID = ptr.Ptr(bookingID)
		affected++
	}
	return affected, nil
}

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	created := *b
	created.ID = uuid.New()
	r.store.bookings[created.ID] = &created
	return &created, nil
}

type fakeServiceRepo struct {
	store *fakeStore
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	svc, ok := r.store.services[id]
	if !ok {
		return nil, service.ErrServiceNotFound
	}
	copied := *svc
	return &copied, nil
}

// fakeTxManager serializes claim attempts with the store mutex and
// rolls back slot and booking state when fn fails.
type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	slotSnapshot := make(map[uuid.UUID]domain.Slot, len(m.store.slots))
	for id, s := range m.store.slots {
		slotSnapshot[id] = *s
	}
	bookingIDs := make(map[uuid.UUID]struct{}, len(m.store.bookings))
	for id := range m.store.bookings {
		bookingIDs[id] = struct{}{}
	}

	if err := fn(ctx); err != nil {
		for id, snap := range slotSnapshot {
			copied := snap
			m.store.slots[id] = &copied
		}
		for id := range m.store.bookings {
			if _, existed := bookingIDs[id]; !existed {
				delete(m.store.bookings, id)
			}
		}
		return err
	}
	return nil
}

func newTestUsecase(store *fakeStore) *Usecase {
	return New(
		&fakeSlotRepo{store: store},
		&fakeBookingRepo{store: store},
		&fakeServiceRepo{store: store},
		&fakeTxManager{store: store},
		nopLogger{},
	)
}

func addSlots(store *fakeStore, date string, starts ...string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(starts))
	for _, start := range starts {
		st := types.TimeString(start)
		s := &domain.Slot{
			ID:        uuid.New(),
			Date:      types.DateString(date),
			StartTime: st,
			EndTime:   mustAddMinutes(st, 30),
			Status:    domain.SlotAvailable,
		}
		store.slots[s.ID] = s
		ids = append(ids, s.ID)
	}
	return ids
}

func mustAddMinutes(t types.TimeString, m int) types.TimeString {
	out, err := t.AddMinutes(m)
	if err != nil {
		panic(err)
	}
	return out
}

func addService(store *fakeStore, category domain.ServiceCategory) uuid.UUID {
	svc := &domain.Service{
		ID:       uuid.New(),
		Category: category,
		Name:     "Gel Manicure",
		IsActive: true,
	}
	store.services[svc.ID] = svc
	return svc.ID
}

func validRequest(slotIDs []uuid.UUID, serviceID uuid.UUID) ClaimRequest {
	return ClaimRequest{
		SlotIDs:       slotIDs,
		ServiceID:     serviceID,
		Category:      domain.CategoryNails,
		CustomerName:  "Dana Reyes",
		CustomerEmail: "dana@example.com",
		CustomerPhone: "+1-555-0142",
	}
}

func TestExecute_ClaimsContiguousSlots(t *testing.T) {
	store := newFakeStore()
	slotIDs := addSlots(store, "2026-09-14", "10:00", "10:30")
	serviceID := addService(store, domain.CategoryNails)
	uc := newTestUsecase(store)

	result, err := uc.Execute(context.Background(), validRequest(slotIDs, serviceID))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, domain.StatusPending, result.Status)
	booking := store.bookings[result.BookingID]
	require.NotNil(t, booking)
	assert.Equal(t, slotIDs, booking.SlotIDs)

	for _, id := range slotIDs {
		s := store.slots[id]
		assert.Equal(t, domain.SlotBooked, s.Status)
		require.NotNil(t, s.BookingID)
		assert.Equal(t, result.BookingID, *s.BookingID)
	}
}

func TestExecute_ValidationErrors(t *testing.T) {
	store := newFakeStore()
	slotIDs := addSlots(store, "2026-09-14", "10:00")
	serviceID := addService(store, domain.CategoryNails)
	uc := newTestUsecase(store)

	tests := []struct {
		name   string
		mutate func(req *ClaimRequest)
	}{
		{"empty slot ids", func(req *ClaimRequest) { req.SlotIDs = nil }},
		{"missing name", func(req *ClaimRequest) { req.CustomerName = "  " }},
		{"missing email", func(req *ClaimRequest) { req.CustomerEmail = "" }},
		{"missing phone", func(req *ClaimRequest) { req.CustomerPhone = "" }},
		{"bad email", func(req *ClaimRequest) { req.CustomerEmail = "not-an-email" }},
		{"unknown category", func(req *ClaimRequest) { req.Category = "haircuts" }},
		{"duplicate slot ids", func(req *ClaimRequest) { req.SlotIDs = append(req.SlotIDs, req.SlotIDs[0]) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(slotIDs, serviceID)
			tt.mutate(&req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestExecute_BabysittingRequiresChildrenAndAddress(t *testing.T) {
	store := newFakeStore()
	slotIDs := addSlots(store, "2026-09-14", "10:00")
	serviceID := addService(store, domain.CategoryBabysitting)
	uc := newTestUsecase(store)

	req := validRequest(slotIDs, serviceID)
	req.Category = domain.CategoryBabysitting

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "num_children")
	assert.Contains(t, err.Error(), "address")

	req.NumChildren = ptr.Ptr(2)
	req.Address = ptr.Ptr("12 Maple St")

	result, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	store := newFakeStore()
	slotIDs := addSlots(store, "2026-09-14", "10:00")
	uc := newTestUsecase(store)

	_, err := uc.Execute(context.Background(), validRequest(slotIDs, uuid.New()))
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveServiceNotFound(t *testing.T) {
	store := newFakeStore()
	slotIDs := addSlots(store, "2026-09-14", "10:00")
	serviceID := addService(store, domain.CategoryNails)
	store.services[serviceID].IsActive = false
	uc := newTestUsecase(store)

	_, err := uc.Execute(context.Background(), validRequest(slotIDs, serviceID))
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_CategoryMismatch(t *testing.T) {
	store := newFakeStore()
	slotIDs := addSlots(store, "2026-09-14", "10:00")
	serviceID := addService(store, domain.CategoryBabysitting)
	uc := newTestUsecase(store)

	req := validRequest(slotIDs, serviceID)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExecute_MissingSlotIsConflict(t *testing.T) {
	store := newFakeStore()
	slotIDs := addSlots(store, "2026-09-14", "10:00")
	serviceID := addService(store, domain.CategoryNails)
	uc := newTestUsecase(store)

	req := validRequest(append(slotIDs, uuid.New()), serviceID)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_BookedSlotIsConflict(t *testing.T) {
	store := newFakeStore()
	slotIDs := addSlots(store, "2026-09-14", "10:00")
	serviceID := addService(store, domain.CategoryNails)
	store.slots[slotIDs[0]].Status = domain.SlotBooked
	uc := newTestUsecase(store)

	_, err := uc.Execute(context.Background(), validRequest(slotIDs, serviceID))
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, store.bookings)
}

func TestExecute_NonContiguousSlotsRejected(t *testing.T) {
	store := newFakeStore()
	// 10:00-10:30 and 11:00-11:30 leave a gap.
	slotIDs := addSlots(store, "2026-09-14", "10:00", "11:00")
	serviceID := addService(store, domain.CategoryNails)
	uc := newTestUsecase(store)

	_, err := uc.Execute(context.Background(), validRequest(slotIDs, serviceID))
	assert.ErrorIs(t, err, ErrSlotsNotContiguous)

	for _, id := range slotIDs {
		assert.Equal(t, domain.SlotAvailable, store.slots[id].Status)
	}
}

func TestExecute_SlotsOnDifferentDatesRejected(t *testing.T) {
	store := newFakeStore()
	day1 := addSlots(store, "2026-09-14", "10:00")
	day2 := addSlots(store, "2026-09-15", "10:30")
	serviceID := addService(store, domain.CategoryNails)
	uc := newTestUsecase(store)

	_, err := uc.Execute(context.Background(), validRequest(append(day1, day2...), serviceID))
	assert.ErrorIs(t, err, ErrSlotsNotContiguous)
}

func TestExecute_ConcurrentClaimsHaveOneWinner(t *testing.T) {
	store := newFakeStore()
	slotIDs := addSlots(store, "2026-09-14", "10:00", "10:30", "11:00")
	serviceID := addService(store, domain.CategoryNails)
	uc := newTestUsecase(store)

	const claimers = 16
	var wg sync.WaitGroup
	results := make([]*ClaimResult, claimers)
	errs := make([]error, claimers)

	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest(slotIDs, serviceID)
			req.CustomerEmail = fmt.Sprintf("claimer%d@example.com", i)
			results[i], errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var winners int
	for i := 0; i < claimers; i++ {
		if errs[i] == nil {
			winners++
			continue
		}
		assert.ErrorIs(t, errs[i], ErrSlotConflict)
	}
	require.Equal(t, 1, winners, "exactly one concurrent claim must win")
	require.Len(t, store.bookings, 1)

	for _, id := range slotIDs {
		s := store.slots[id]
		assert.Equal(t, domain.SlotBooked, s.Status)
		require.NotNil(t, s.BookingID)
	}
}

func TestExecute_TxConflictMapsToSlotConflict(t *testing.T) {
	store := newFakeStore()
	slotIDs := addSlots(store, "2026-09-14", "10:00")
	serviceID := addService(store, domain.CategoryNails)

	uc := New(
		&fakeSlotRepo{store: store},
		&fakeBookingRepo{store: store},
		&fakeServiceRepo{store: store},
		conflictTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest(slotIDs, serviceID))
	assert.ErrorIs(t, err, ErrSlotConflict)
}

type conflictTxManager struct{}

func (conflictTxManager) DoSerializable(context.Context, func(ctx context.Context) error) error {
	return fmt.Errorf("%w: transaction aborted", txmanager.ErrConflict)
}
