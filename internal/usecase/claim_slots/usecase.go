package claim_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/internal/infra/storage/service"
	"github.com/nailsbynatalia/booking-service/internal/infra/storage/slot"
	"github.com/nailsbynatalia/booking-service/pkg/txmanager"
)

// Usecase claims a contiguous block of slots atomically: either every
// requested slot flips to booked and one booking row is created, or
// nothing changes. Concurrent claims on overlapping slots resolve to
// exactly one winner; losers get ErrSlotConflict.
type Usecase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	txManager   TransactionManager
	log         Logger
}

// New creates the claim usecase.
func New(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	log Logger,
) *Usecase {
	return &Usecase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		txManager:   txManager,
		log:         log,
	}
}

// Execute validates the request and runs the claim transaction.
func (u *Usecase) Execute(ctx context.Context, req ClaimRequest) (*ClaimResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	svc, err := u.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		u.log.Error("claim: failed to load service %s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: Execute - load service: %v", ErrInternal, err)
	}
	if !svc.IsActive {
		return nil, ErrServiceNotFound
	}
	if svc.Category != req.Category {
		return nil, fmt.Errorf("%w: service does not belong to category %q", ErrValidation, req.Category)
	}

	var result *ClaimResult

	err = u.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		claimed, claimErr := u.claim(txCtx, req)
		if claimErr != nil {
			return claimErr
		}
		result = claimed
		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrConflict) || errors.Is(err, slot.ErrSlotLocked) {
			u.log.Info("claim: lost race for slots %v", req.SlotIDs)
			return nil, ErrSlotConflict
		}
		if errors.Is(err, ErrSlotConflict) || errors.Is(err, ErrSlotsNotContiguous) {
			return nil, err
		}
		u.log.Error("claim: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: Execute - run transaction: %v", ErrInternal, err)
	}

	u.log.Info("claim: booking %s created for %d slot(s)", result.BookingID, len(req.SlotIDs))
	return result, nil
}

// claim runs inside the serializable transaction. The slot read takes
// row locks, so two overlapping claims serialize here and the loser
// sees either locked rows or already-booked slots.
func (u *Usecase) claim(ctx context.Context, req ClaimRequest) (*ClaimResult, error) {
	slots, err := u.slotRepo.GetByIDs(ctx, req.SlotIDs)
	if err != nil {
		return nil, err
	}

	if len(slots) != len(req.SlotIDs) {
		return nil, fmt.Errorf("%w: %d of %d slots not found", ErrSlotConflict, len(req.SlotIDs)-len(slots), len(req.SlotIDs))
	}
	for _, s := range slots {
		if !s.IsAvailable() {
			return nil, fmt.Errorf("%w: slot %s is %s", ErrSlotConflict, s.ID, s.Status)
		}
	}
	if !domain.SlotsAreContiguous(slots) {
		return nil, ErrSlotsNotContiguous
	}

	booking := &domain.Booking{
		SlotIDs:       req.SlotIDs,
		ServiceID:     req.ServiceID,
		Category:      req.Category,
		Status:        domain.StatusPending,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		CustomerNotes: req.Notes,
		NumChildren:   req.NumChildren,
		ChildrenAges:  req.ChildrenAges,
		Address:       req.Address,
	}

	created, err := u.bookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	affected, err := u.slotRepo.MarkBooked(ctx, req.SlotIDs, created.ID)
	if err != nil {
		return nil, err
	}
	if affected != int64(len(req.SlotIDs)) {
		// A concurrent claim took some of the slots between the read and
		// the update. Rolling back undoes the booking row too.
		return nil, fmt.Errorf("%w: only %d of %d slots could be booked", ErrSlotConflict, affected, len(req.SlotIDs))
	}

	return &ClaimResult{
		BookingID: created.ID,
		Status:    created.Status,
		CreatedAt: created.CreatedAt,
	}, nil
}
