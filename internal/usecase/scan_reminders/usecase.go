package scan_reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/pkg/types"
)

// Usecase scans confirmed bookings holding slots on the target date and
// logs one reminder per booking. UNIQUE(booking_id, type) in storage
// makes repeated scans safe; delivery happens best-effort after the
// records exist, so a flaky mail hop can never lose the audit trail.
type Usecase struct {
	slotRepo         SlotRepository
	bookingRepo      BookingRepository
	notificationRepo NotificationRepository
	notifier         Notifier
	timeProv         TimeProvider
	location         *time.Location
	log              Logger
}

// New creates the reminder scan usecase. notifier may be nil when no
// delivery channel is configured; records are still written.
func New(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	notificationRepo NotificationRepository,
	notifier Notifier,
	timeProv TimeProvider,
	location *time.Location,
	log Logger,
) *Usecase {
	return &Usecase{
		slotRepo:         slotRepo,
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		timeProv:         timeProv,
		location:         location,
		log:              log,
	}
}

// ScanResult reports what a reminder scan did.
type ScanResult struct {
	TargetDate      types.DateString
	BookingsScanned int
	RecordsCreated  int64
	Delivered       int
	DeliveryFailed  int
}

// Execute runs the scan. An empty targetDate defaults to tomorrow in
// the business timezone.
func (u *Usecase) Execute(ctx context.Context, targetDate types.DateString) (*ScanResult, error) {
	if targetDate.IsZero() {
		tomorrow := u.timeProv.Now().In(u.location).AddDate(0, 0, 1)
		targetDate = types.NewDateString(tomorrow)
	} else if err := targetDate.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	bookingIDs, err := u.slotRepo.GetBookedBookingIDs(ctx, targetDate)
	if err != nil {
		u.log.Error("reminders: failed to find booked slots for %s: %v", targetDate, err)
		return nil, fmt.Errorf("%w: Execute - find booked slots: %v", ErrInternal, err)
	}

	result := &ScanResult{TargetDate: targetDate}
	if len(bookingIDs) == 0 {
		u.log.Info("reminders: no booked slots on %s", targetDate)
		return result, nil
	}

	bookings, err := u.bookingRepo.GetByIDsWithStatus(ctx, bookingIDs, domain.StatusConfirmed)
	if err != nil {
		u.log.Error("reminders: failed to load confirmed bookings: %v", err)
		return nil, fmt.Errorf("%w: Execute - load bookings: %v", ErrInternal, err)
	}

	result.BookingsScanned = len(bookings)
	if len(bookings) == 0 {
		return result, nil
	}

	records := make([]*domain.Notification, 0, len(bookings))
	confirmedIDs := make([]uuid.UUID, 0, len(bookings))
	byBookingID := make(map[uuid.UUID]*domain.Booking, len(bookings))
	for _, b := range bookings {
		records = append(records, &domain.Notification{
			BookingID: b.ID,
			Type:      domain.NotificationTypeReminder,
			Channel:   domain.NotificationChannelEmail,
			Recipient: b.CustomerEmail,
		})
		confirmedIDs = append(confirmedIDs, b.ID)
		byBookingID[b.ID] = b
	}

	created, err := u.notificationRepo.CreateIgnoreDuplicates(ctx, records)
	if err != nil {
		u.log.Error("reminders: failed to create records: %v", err)
		return nil, fmt.Errorf("%w: Execute - create records: %v", ErrInternal, err)
	}
	result.RecordsCreated = created

	if u.notifier != nil {
		u.deliver(ctx, confirmedIDs, byBookingID, result)
	}

	u.log.Info("reminders: %s scanned %d booking(s), %d new record(s), %d delivered, %d failed",
		targetDate, result.BookingsScanned, result.RecordsCreated, result.Delivered, result.DeliveryFailed)
	return result, nil
}

// deliver attempts unsent reminders, including retries of previously
// failed ones. Failures are recorded and skipped, never propagated.
func (u *Usecase) deliver(ctx context.Context, bookingIDs []uuid.UUID, byBookingID map[uuid.UUID]*domain.Booking, result *ScanResult) {
	unsent, err := u.notificationRepo.GetUnsentByBookingIDs(ctx, bookingIDs, domain.NotificationTypeReminder)
	if err != nil {
		u.log.Error("reminders: failed to load unsent records: %v", err)
		return
	}

	for _, record := range unsent {
		booking := byBookingID[record.BookingID]
		if booking == nil {
			continue
		}

		if err := u.notifier.SendReminder(ctx, record.Recipient, booking); err != nil {
			u.log.Warn("reminders: delivery to %s failed: %v", record.Recipient, err)
			if markErr := u.notificationRepo.MarkFailed(ctx, record.ID, err.Error()); markErr != nil {
				u.log.Error("reminders: failed to record delivery error: %v", markErr)
			}
			result.DeliveryFailed++
			continue
		}

		if err := u.notificationRepo.MarkSent(ctx, record.ID); err != nil {
			u.log.Error("reminders: failed to mark record sent: %v", err)
			continue
		}
		result.Delivered++
	}
}
