package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/internal/infra/storage/slot"
	"github.com/nailsbynatalia/booking-service/pkg/types"
)

// Service exposes the calendar: public availability reads, admin slot
// edits, and the weekly rule pattern.
type Service struct {
	slotRepo  SlotRepository
	ruleRepo  RuleRepository
	txManager TransactionManager
	timeProv  TimeProvider
	location  *time.Location
	log       Logger
}

// New creates the availability service.
func New(
	slotRepo SlotRepository,
	ruleRepo RuleRepository,
	txManager TransactionManager,
	timeProv TimeProvider,
	location *time.Location,
	log Logger,
) *Service {
	return &Service{
		slotRepo:  slotRepo,
		ruleRepo:  ruleRepo,
		txManager: txManager,
		timeProv:  timeProv,
		location:  location,
		log:       log,
	}
}

// AvailableDates returns the dates with at least one open slot, looking
// ahead the given number of weeks from the given start date. An empty
// start date means today in the business timezone. Zero weeks selects
// the default; out-of-range values are clamped.
func (s *Service) AvailableDates(ctx context.Context, from types.DateString, weeks int) ([]types.DateString, error) {
	if weeks == 0 {
		weeks = domain.DefaultLookaheadWeeks
	}
	if weeks < domain.MinLookaheadWeeks {
		weeks = domain.MinLookaheadWeeks
	}
	if weeks > domain.MaxLookaheadWeeks {
		weeks = domain.MaxLookaheadWeeks
	}

	if from.IsZero() {
		from = types.NewDateString(s.timeProv.Now().In(s.location))
	} else if err := from.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	to, err := from.AddDays(weeks*7 - 1)
	if err != nil {
		return nil, fmt.Errorf("%w: AvailableDates - compute range: %v", ErrInternal, err)
	}

	dates, err := s.slotRepo.GetDistinctAvailableDates(ctx, from, to)
	if err != nil {
		s.log.Error("availability: failed to list dates %s..%s: %v", from, to, err)
		return nil, fmt.Errorf("%w: AvailableDates - query dates: %v", ErrInternal, err)
	}
	return dates, nil
}

// AvailableSlots returns the open slots of one date, ordered by start
// time.
func (s *Service) AvailableSlots(ctx context.Context, date types.DateString) ([]*domain.Slot, error) {
	if err := date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	slots, err := s.slotRepo.GetAvailableByDate(ctx, date)
	if err != nil {
		s.log.Error("availability: failed to list slots on %s: %v", date, err)
		return nil, fmt.Errorf("%w: AvailableSlots - query slots: %v", ErrInternal, err)
	}
	return slots, nil
}

// SlotInput describes one manual slot to create.
type SlotInput struct {
	Date      types.DateString
	StartTime types.TimeString
	EndTime   types.TimeString
}

// CreateSlots inserts ad-hoc slots outside the weekly pattern, e.g. a
// one-off Saturday opening. Duplicate (date, start_time) is an error
// here, unlike generation.
func (s *Service) CreateSlots(ctx context.Context, inputs []SlotInput) ([]*domain.Slot, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: slots must not be empty", ErrInvalidInput)
	}

	slots := make([]*domain.Slot, 0, len(inputs))
	for _, in := range inputs {
		if err := in.Date.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := in.StartTime.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := in.EndTime.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if !in.StartTime.IsBefore(in.EndTime) {
			return nil, fmt.Errorf("%w: start_time %s must be before end_time %s", ErrInvalidInput, in.StartTime, in.EndTime)
		}
		slots = append(slots, &domain.Slot{
			Date:      in.Date,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Status:    domain.SlotAvailable,
		})
	}

	created, err := s.slotRepo.Insert(ctx, slots)
	if err != nil {
		s.log.Error("availability: failed to create %d slot(s): %v", len(slots), err)
		return nil, fmt.Errorf("%w: CreateSlots - insert slots: %v", ErrInternal, err)
	}

	s.log.Info("availability: created %d manual slot(s)", len(created))
	return created, nil
}

// DeleteSlot removes an open slot. Booked or blocked slots are refused;
// freeing them is the booking lifecycle's job.
func (s *Service) DeleteSlot(ctx context.Context, id uuid.UUID) error {
	err := s.slotRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, slot.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		if errors.Is(err, slot.ErrSlotNotAvailable) {
			return ErrSlotBooked
		}
		s.log.Error("availability: failed to delete slot %s: %v", id, err)
		return fmt.Errorf("%w: DeleteSlot - delete slot: %v", ErrInternal, err)
	}
	return nil
}

// GetRules returns the active weekly pattern.
func (s *Service) GetRules(ctx context.Context) ([]*domain.AvailabilityRule, error) {
	rules, err := s.ruleRepo.GetActive(ctx)
	if err != nil {
		s.log.Error("availability: failed to load rules: %v", err)
		return nil, fmt.Errorf("%w: GetRules - query rules: %v", ErrInternal, err)
	}
	return rules, nil
}

// RuleInput describes one weekly rule to save.
type RuleInput struct {
	DayOfWeek      int
	StartTime      types.TimeString
	EndTime        types.TimeString
	SlotDuration   int
	EffectiveFrom  *types.DateString
	EffectiveUntil *types.DateString
}

// SaveWeeklyRules replaces the active rule set atomically: every
// previously active rule is deactivated and the new set inserted in one
// transaction. Already-generated slots are untouched; the new pattern
// only affects future generation runs.
func (s *Service) SaveWeeklyRules(ctx context.Context, inputs []RuleInput) ([]*domain.AvailabilityRule, error) {
	rules := make([]*domain.AvailabilityRule, 0, len(inputs))
	for _, in := range inputs {
		if err := validateRuleInput(in); err != nil {
			return nil, err
		}
		rules = append(rules, &domain.AvailabilityRule{
			DayOfWeek:      in.DayOfWeek,
			StartTime:      in.StartTime,
			EndTime:        in.EndTime,
			SlotDuration:   in.SlotDuration,
			IsActive:       true,
			EffectiveFrom:  in.EffectiveFrom,
			EffectiveUntil: in.EffectiveUntil,
		})
	}

	var saved []*domain.AvailabilityRule
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.ruleRepo.DeactivateAll(txCtx); err != nil {
			return err
		}
		inserted, err := s.ruleRepo.InsertBatch(txCtx, rules)
		if err != nil {
			return err
		}
		saved = inserted
		return nil
	})
	if err != nil {
		s.log.Error("availability: failed to save rule set: %v", err)
		return nil, fmt.Errorf("%w: SaveWeeklyRules - run transaction: %v", ErrInternal, err)
	}

	s.log.Info("availability: saved %d weekly rule(s)", len(saved))
	return saved, nil
}

func validateRuleInput(in RuleInput) error {
	if in.DayOfWeek < 0 || in.DayOfWeek > 6 {
		return fmt.Errorf("%w: day_of_week must be 0..6, got %d", ErrInvalidInput, in.DayOfWeek)
	}
	if err := in.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := in.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !in.StartTime.IsBefore(in.EndTime) {
		return fmt.Errorf("%w: start_time %s must be before end_time %s", ErrInvalidInput, in.StartTime, in.EndTime)
	}
	if in.SlotDuration < domain.MinSlotDurationMinutes || in.SlotDuration > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot_duration must be %d..%d minutes", ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if in.EffectiveFrom != nil {
		if err := in.EffectiveFrom.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if in.EffectiveUntil != nil {
		if err := in.EffectiveUntil.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if in.EffectiveFrom != nil && in.EffectiveUntil != nil && string(*in.EffectiveFrom) > string(*in.EffectiveUntil) {
		return fmt.Errorf("%w: effective_from is after effective_until", ErrInvalidInput)
	}
	return nil
}
