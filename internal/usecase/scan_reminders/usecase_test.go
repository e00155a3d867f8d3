package scan_reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type fakeSlotRepo struct {
	byDate map[types.DateString][]uuid.UUID
}

func (r *fakeSlotRepo) GetBookedBookingIDs(_ context.Context, date types.DateString) ([]uuid.UUID, error) {
	return r.byDate[date], nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*domain.Booking
}

func (r *fakeBookingRepo) GetByIDsWithStatus(_ context.Context, ids []uuid.UUID, status domain.BookingStatus) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, id := range ids {
		if b, ok := r.bookings[id]; ok && b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

// fakeNotificationRepo mirrors the UNIQUE(booking_id, type) constraint.
type fakeNotificationRepo struct {
	records map[string]*domain.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{records: make(map[string]*domain.Notification)}
}

func recordKey(bookingID uuid.UUID, notificationType string) string {
	return bookingID.String() + "|" + notificationType
}

func (r *fakeNotificationRepo) CreateIgnoreDuplicates(_ context.Context, records []*domain.Notification) (int64, error) {
	var created int64
	for _, n := range records {
		key := recordKey(n.BookingID, n.Type)
		if _, ok := r.records[key]; ok {
			continue
		}
		stored := *n
		stored.ID = uuid.New()
		r.records[key] = &stored
		created++
	}
	return created, nil
}

func (r *fakeNotificationRepo) GetUnsentByBookingIDs(_ context.Context, bookingIDs []uuid.UUID, notificationType string) ([]*domain.Notification, error) {
	out := make([]*domain.Notification, 0)
	for _, id := range bookingIDs {
		if n, ok := r.records[recordKey(id, notificationType)]; ok && n.SentAt == nil {
			copied := *n
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkSent(_ context.Context, id uuid.UUID) error {
	for _, n := range r.records {
		if n.ID == id {
			now := time.Now()
			n.SentAt = &now
			n.Error = nil
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeNotificationRepo) MarkFailed(_ context.Context, id uuid.UUID, deliveryErr string) error {
	for _, n := range r.records {
		if n.ID == id {
			n.Error = &deliveryErr
			return nil
		}
	}
	return errors.New("not found")
}

type fakeNotifier struct {
	sent    []string
	failFor map[string]error
}

func (n *fakeNotifier) SendReminder(_ context.Context, recipient string, _ *domain.Booking) error {
	if err := n.failFor[recipient]; err != nil {
		return err
	}
	n.sent = append(n.sent, recipient)
	return nil
}

var scanNow = time.Date(2026, time.September, 14, 6, 0, 0, 0, time.UTC)

const tomorrow = types.DateString("2026-09-15")

func confirmedBooking(email string) *domain.Booking {
	return &domain.Booking{
		ID:            uuid.New(),
		Status:        domain.StatusConfirmed,
		CustomerName:  "Dana Reyes",
		CustomerEmail: email,
	}
}

func setup(bookings ...*domain.Booking) (*fakeSlotRepo, *fakeBookingRepo, *fakeNotificationRepo) {
	slotRepo := &fakeSlotRepo{byDate: map[types.DateString][]uuid.UUID{}}
	bookingRepo := &fakeBookingRepo{bookings: map[uuid.UUID]*domain.Booking{}}
	for _, b := range bookings {
		slotRepo.byDate[tomorrow] = append(slotRepo.byDate[tomorrow], b.ID)
		bookingRepo.bookings[b.ID] = b
	}
	return slotRepo, bookingRepo, newFakeNotificationRepo()
}

func TestExecute_CreatesRecordsAndDelivers(t *testing.T) {
	b1 := confirmedBooking("one@example.com")
	b2 := confirmedBooking("two@example.com")
	slotRepo, bookingRepo, notificationRepo := setup(b1, b2)
	notifier := &fakeNotifier{}

	uc := New(slotRepo, bookingRepo, notificationRepo, notifier, fixedTime{now: scanNow}, time.UTC, nopLogger{})

	result, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, tomorrow, result.TargetDate)
	assert.Equal(t, 2, result.BookingsScanned)
	assert.Equal(t, int64(2), result.RecordsCreated)
	assert.Equal(t, 2, result.Delivered)
	assert.Zero(t, result.DeliveryFailed)
	assert.ElementsMatch(t, []string{"one@example.com", "two@example.com"}, notifier.sent)
}

func TestExecute_SkipsUnconfirmedBookings(t *testing.T) {
	confirmed := confirmedBooking("yes@example.com")
	pending := confirmedBooking("no@example.com")
	pending.Status = domain.StatusPending
	cancelled := confirmedBooking("gone@example.com")
	cancelled.Status = domain.StatusCancelled

	slotRepo, bookingRepo, notificationRepo := setup(confirmed, pending, cancelled)
	uc := New(slotRepo, bookingRepo, notificationRepo, &fakeNotifier{}, fixedTime{now: scanNow}, time.UTC, nopLogger{})

	result, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 1, result.BookingsScanned)
	assert.Equal(t, int64(1), result.RecordsCreated)
}

func TestExecute_RepeatedScanCreatesNothing(t *testing.T) {
	b := confirmedBooking("once@example.com")
	slotRepo, bookingRepo, notificationRepo := setup(b)
	notifier := &fakeNotifier{}
	uc := New(slotRepo, bookingRepo, notificationRepo, notifier, fixedTime{now: scanNow}, time.UTC, nopLogger{})

	first, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.RecordsCreated)
	assert.Equal(t, 1, first.Delivered)

	second, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.RecordsCreated)
	assert.Equal(t, 0, second.Delivered)
	assert.Len(t, notifier.sent, 1)
}

func TestExecute_DeliveryFailureRecordedAndRetried(t *testing.T) {
	b := confirmedBooking("flaky@example.com")
	slotRepo, bookingRepo, notificationRepo := setup(b)
	notifier := &fakeNotifier{failFor: map[string]error{
		"flaky@example.com": errors.New("smtp timeout"),
	}}
	uc := New(slotRepo, bookingRepo, notificationRepo, notifier, fixedTime{now: scanNow}, time.UTC, nopLogger{})

	first, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, first.DeliveryFailed)
	assert.Zero(t, first.Delivered)

	record := notificationRepo.records[recordKey(b.ID, domain.NotificationTypeReminder)]
	require.NotNil(t, record)
	assert.Nil(t, record.SentAt)
	require.NotNil(t, record.Error)
	assert.Equal(t, "smtp timeout", *record.Error)

	// Mail hop recovers; the next scan retries the same record.
	notifier.failFor = nil

	second, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.RecordsCreated)
	assert.Equal(t, 1, second.Delivered)

	assert.NotNil(t, record.SentAt)
	assert.Nil(t, record.Error)
}

func TestExecute_ExplicitTargetDate(t *testing.T) {
	b := confirmedBooking("target@example.com")
	slotRepo, bookingRepo, notificationRepo := setup(b)
	uc := New(slotRepo, bookingRepo, notificationRepo, &fakeNotifier{}, fixedTime{now: scanNow}, time.UTC, nopLogger{})

	result, err := uc.Execute(context.Background(), tomorrow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.RecordsCreated)

	empty, err := uc.Execute(context.Background(), types.DateString("2026-10-01"))
	require.NoError(t, err)
	assert.Zero(t, empty.BookingsScanned)
}

func TestExecute_InvalidTargetDate(t *testing.T) {
	slotRepo, bookingRepo, notificationRepo := setup()
	uc := New(slotRepo, bookingRepo, notificationRepo, nil, fixedTime{now: scanNow}, time.UTC, nopLogger{})

	_, err := uc.Execute(context.Background(), types.DateString("09/15/2026"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExecute_NilNotifierStillRecords(t *testing.T) {
	b := confirmedBooking("norelay@example.com")
	slotRepo, bookingRepo, notificationRepo := setup(b)
	uc := New(slotRepo, bookingRepo, notificationRepo, nil, fixedTime{now: scanNow}, time.UTC, nopLogger{})

	result, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.RecordsCreated)
	assert.Zero(t, result.Delivered)

	record := notificationRepo.records[recordKey(b.ID, domain.NotificationTypeReminder)]
	require.NotNil(t, record)
	assert.Nil(t, record.SentAt)
}
