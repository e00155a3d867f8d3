package bookings

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/internal/infra/storage/booking"
	"github.com/nailsbynatalia/booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int64, error) {
	matched := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.Category != nil && b.Category != *filter.Category {
			continue
		}
		copied := *b
		matched = append(matched, &copied)
	}
	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return []*domain.Booking{}, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[filter.Offset:end], total, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.BookingStatus, declineReason *string) error {
	b, ok := r.bookings[id]
	if !ok {
		return booking.ErrBookingNotFound
	}
	b.Status = status
	if status == domain.StatusDeclined && declineReason != nil {
		b.DeclineReason = declineReason
	}
	return nil
}

func (r *fakeBookingRepo) UpdateAdminNotes(_ context.Context, id uuid.UUID, notes string) error {
	b, ok := r.bookings[id]
	if !ok {
		return booking.ErrBookingNotFound
	}
	b.AdminNotes = &notes
	return nil
}

type fakeSlotRepo struct {
	released [][]uuid.UUID
}

func (r *fakeSlotRepo) Release(_ context.Context, ids []uuid.UUID) error {
	r.released = append(r.released, ids)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(bookings ...*domain.Booking) (*Service, *fakeBookingRepo, *fakeSlotRepo) {
	repo := &fakeBookingRepo{bookings: map[uuid.UUID]*domain.Booking{}}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	slots := &fakeSlotRepo{}
	return New(repo, slots, passthroughTxManager{}, nopLogger{}), repo, slots
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:       uuid.New(),
		SlotIDs:  []uuid.UUID{uuid.New(), uuid.New()},
		Status:   domain.StatusPending,
		Category: domain.CategoryNails,
	}
}

func TestUpdateStatus_TransitionMatrix(t *testing.T) {
	tests := []struct {
		from    domain.BookingStatus
		to      domain.BookingStatus
		allowed bool
	}{
		{domain.StatusPending, domain.StatusConfirmed, true},
		{domain.StatusPending, domain.StatusDeclined, true},
		{domain.StatusPending, domain.StatusCancelled, true},
		{domain.StatusPending, domain.StatusCompleted, false},
		{domain.StatusPending, domain.StatusPending, false},
		{domain.StatusConfirmed, domain.StatusCompleted, true},
		{domain.StatusConfirmed, domain.StatusCancelled, true},
		{domain.StatusConfirmed, domain.StatusPending, false},
		{domain.StatusConfirmed, domain.StatusDeclined, false},
		{domain.StatusDeclined, domain.StatusConfirmed, false},
		{domain.StatusCancelled, domain.StatusPending, false},
		{domain.StatusCompleted, domain.StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			b := pendingBooking()
			b.Status = tt.from
			svc, _, _ := newTestService(b)

			updated, err := svc.UpdateStatus(context.Background(), b.ID, tt.to, nil)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, updated.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestUpdateStatus_DeclineFreesSlots(t *testing.T) {
	b := pendingBooking()
	svc, repo, slots := newTestService(b)

	reason := "fully booked that week"
	updated, err := svc.UpdateStatus(context.Background(), b.ID, domain.StatusDeclined, &reason)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDeclined, updated.Status)
	require.NotNil(t, repo.bookings[b.ID].DeclineReason)
	assert.Equal(t, reason, *repo.bookings[b.ID].DeclineReason)

	require.Len(t, slots.released, 1)
	assert.Equal(t, b.SlotIDs, slots.released[0])
}

func TestUpdateStatus_CancelFreesSlots(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusConfirmed
	svc, _, slots := newTestService(b)

	_, err := svc.UpdateStatus(context.Background(), b.ID, domain.StatusCancelled, nil)
	require.NoError(t, err)
	require.Len(t, slots.released, 1)
}

func TestUpdateStatus_ConfirmAndCompleteKeepSlots(t *testing.T) {
	b := pendingBooking()
	svc, _, slots := newTestService(b)

	_, err := svc.UpdateStatus(context.Background(), b.ID, domain.StatusConfirmed, nil)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), b.ID, domain.StatusCompleted, nil)
	require.NoError(t, err)

	assert.Empty(t, slots.released)
}

func TestUpdateStatus_DeclineReasonOnlyForDecline(t *testing.T) {
	b := pendingBooking()
	svc, _, _ := newTestService(b)

	_, err := svc.UpdateStatus(context.Background(), b.ID, domain.StatusConfirmed, ptr.Ptr("not applicable"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_DeclineReasonTooLong(t *testing.T) {
	b := pendingBooking()
	svc, _, _ := newTestService(b)

	long := strings.Repeat("x", domain.MaxDeclineReasonLength+1)
	_, err := svc.UpdateStatus(context.Background(), b.ID, domain.StatusDeclined, &long)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	b := pendingBooking()
	svc, _, _ := newTestService(b)

	_, err := svc.UpdateStatus(context.Background(), b.ID, "archived", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), domain.StatusConfirmed, nil)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestSetAdminNotes(t *testing.T) {
	b := pendingBooking()
	svc, _, _ := newTestService(b)

	updated, err := svc.SetAdminNotes(context.Background(), b.ID, "client prefers mornings")
	require.NoError(t, err)
	require.NotNil(t, updated.AdminNotes)
	assert.Equal(t, "client prefers mornings", *updated.AdminNotes)

	_, err = svc.SetAdminNotes(context.Background(), b.ID, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetAdminNotes(context.Background(), uuid.New(), "notes")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_ClampsAndFilters(t *testing.T) {
	pending := pendingBooking()
	confirmed := pendingBooking()
	confirmed.Status = domain.StatusConfirmed
	svc, _, _ := newTestService(pending, confirmed)

	all, total, err := svc.List(context.Background(), domain.BookingsFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	status := domain.StatusConfirmed
	filtered, total, err := svc.List(context.Background(), domain.BookingsFilter{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, filtered, 1)
	assert.Equal(t, confirmed.ID, filtered[0].ID)

	bad := domain.BookingStatus("archived")
	_, _, err = svc.List(context.Background(), domain.BookingsFilter{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
