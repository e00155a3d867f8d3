package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/internal/infra/storage/booking"
)

// Service manages the booking lifecycle after creation: admin status
// transitions, slot release on decline/cancel, notes, and listings.
type Service struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	log         Logger
}

// New creates the booking lifecycle service.
func New(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	log Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		log:         log,
	}
}

// GetByID loads one booking.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.log.Error("bookings: failed to load %s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - load booking: %v", ErrInternal, err)
	}
	return b, nil
}

// List returns a page of bookings plus the unpaged total. Limit and
// offset are clamped to sane bounds.
func (s *Service) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int64, error) {
	if filter.Status != nil && !domain.ValidBookingStatus(string(*filter.Status)) {
		return nil, 0, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *filter.Status)
	}
	if filter.Category != nil && !domain.ValidServiceCategory(string(*filter.Category)) {
		return nil, 0, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *filter.Category)
	}

	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultListLimit
	}
	if filter.Limit > domain.MaxListLimit {
		filter.Limit = domain.MaxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	items, total, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.log.Error("bookings: failed to list: %v", err)
		return nil, 0, fmt.Errorf("%w: List - query bookings: %v", ErrInternal, err)
	}
	return items, total, nil
}

// UpdateStatus moves a booking along the state machine. Declining and
// cancelling free the booking's slots in the same transaction, so the
// calendar can never show a slot held by a dead booking.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, next domain.BookingStatus, declineReason *string) (*domain.Booking, error) {
	if !domain.ValidBookingStatus(string(next)) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, next)
	}
	if declineReason != nil {
		if next != domain.StatusDeclined {
			return nil, fmt.Errorf("%w: decline_reason only applies to declined status", ErrInvalidInput)
		}
		if len(*declineReason) > domain.MaxDeclineReasonLength {
			return nil, fmt.Errorf("%w: decline_reason exceeds %d characters", ErrInvalidInput, domain.MaxDeclineReasonLength)
		}
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.bookingRepo.UpdateStatus(txCtx, id, next, declineReason); err != nil {
			return err
		}
		if domain.ReleasesSlots(next) && len(current.SlotIDs) > 0 {
			if err := s.slotRepo.Release(txCtx, current.SlotIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.log.Error("bookings: failed to update %s to %s: %v", id, next, err)
		return nil, fmt.Errorf("%w: UpdateStatus - run transaction: %v", ErrInternal, err)
	}

	s.log.Info("bookings: %s moved %s -> %s", id, current.Status, next)
	return s.GetByID(ctx, id)
}

// SetAdminNotes replaces the admin annotation on a booking.
func (s *Service) SetAdminNotes(ctx context.Context, id uuid.UUID, notes string) (*domain.Booking, error) {
	if len(strings.TrimSpace(notes)) == 0 {
		return nil, fmt.Errorf("%w: admin_notes must not be empty", ErrInvalidInput)
	}
	if len(notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: admin_notes exceeds %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if err := s.bookingRepo.UpdateAdminNotes(ctx, id, notes); err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.log.Error("bookings: failed to set notes on %s: %v", id, err)
		return nil, fmt.Errorf("%w: SetAdminNotes - update notes: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}
