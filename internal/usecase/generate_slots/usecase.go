package generate_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/pkg/types"
)

// Usecase materializes concrete availability slots from the active
// weekly rules. Runs are idempotent: existing (date, start_time) rows
// are left untouched, so re-running the same horizon creates nothing.
type Usecase struct {
	ruleRepo  RuleRepository
	slotRepo  SlotRepository
	timeProv  TimeProvider
	location  *time.Location
	daysAhead int
	log       Logger
}

// New creates the slot generation usecase. daysAhead is the default
// horizon used when a request does not specify one.
func New(
	ruleRepo RuleRepository,
	slotRepo SlotRepository,
	timeProv TimeProvider,
	location *time.Location,
	daysAhead int,
	log Logger,
) *Usecase {
	return &Usecase{
		ruleRepo:  ruleRepo,
		slotRepo:  slotRepo,
		timeProv:  timeProv,
		location:  location,
		daysAhead: daysAhead,
		log:       log,
	}
}

// GenerateResult reports what a generation run did.
type GenerateResult struct {
	SlotsCreated int64
	DaysAhead    int
	FromDate     types.DateString
	ToDate       types.DateString
}

// Execute generates slots for the next daysAhead days starting today in
// the business timezone. Zero daysAhead selects the configured default.
func (u *Usecase) Execute(ctx context.Context, daysAhead int) (*GenerateResult, error) {
	if daysAhead == 0 {
		daysAhead = u.daysAhead
	}
	if daysAhead < domain.MinGenerateDaysAhead || daysAhead > domain.MaxGenerateDaysAhead {
		return nil, fmt.Errorf("%w: days_ahead must be between %d and %d",
			ErrValidation, domain.MinGenerateDaysAhead, domain.MaxGenerateDaysAhead)
	}

	rules, err := u.ruleRepo.GetActive(ctx)
	if err != nil {
		u.log.Error("generate: failed to load active rules: %v", err)
		return nil, fmt.Errorf("%w: Execute - load rules: %v", ErrInternal, err)
	}

	today := types.NewDateString(u.timeProv.Now().In(u.location))
	lastDay, err := today.AddDays(daysAhead - 1)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - compute horizon: %v", ErrInternal, err)
	}

	slots, err := u.buildSlots(rules, today, daysAhead)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		SlotsCreated: 0,
		DaysAhead:    daysAhead,
		FromDate:     today,
		ToDate:       lastDay,
	}
	if len(slots) == 0 {
		u.log.Info("generate: no active rules produce slots in %s..%s", today, lastDay)
		return result, nil
	}

	created, err := u.slotRepo.InsertIgnoreDuplicates(ctx, slots)
	if err != nil {
		u.log.Error("generate: failed to insert slots: %v", err)
		return nil, fmt.Errorf("%w: Execute - insert slots: %v", ErrInternal, err)
	}

	result.SlotsCreated = created
	u.log.Info("generate: created %d of %d candidate slot(s) for %s..%s", created, len(slots), today, lastDay)
	return result, nil
}

// buildSlots carves each applicable rule's window into fixed-duration
// slots for every date in the horizon. A trailing remainder shorter
// than the duration is dropped. Overlapping rules on the same day are
// deduplicated by (date, start_time), first rule wins.
func (u *Usecase) buildSlots(rules []*domain.AvailabilityRule, from types.DateString, days int) ([]*domain.Slot, error) {
	type slotKey struct {
		date  types.DateString
		start types.TimeString
	}

	seen := make(map[slotKey]struct{})
	slots := make([]*domain.Slot, 0)

	date := from
	for i := 0; i < days; i++ {
		for _, rule := range rules {
			if !rule.AppliesTo(date) {
				continue
			}

			start := rule.StartTime
			for {
				end, err := start.AddMinutes(rule.SlotDuration)
				if err != nil || end.IsAfter(rule.EndTime) {
					break
				}

				key := slotKey{date: date, start: start}
				if _, dup := seen[key]; !dup {
					seen[key] = struct{}{}
					ruleID := rule.ID
					slots = append(slots, &domain.Slot{
						Date:      date,
						StartTime: start,
						EndTime:   end,
						Status:    domain.SlotAvailable,
						RuleID:    &ruleID,
					})
				}

				start = end
				if !start.IsBefore(rule.EndTime) {
					break
				}
			}
		}

		next, err := date.AddDays(1)
		if err != nil {
			return nil, fmt.Errorf("%w: buildSlots - advance date: %v", ErrInternal, err)
		}
		date = next
	}

	return slots, nil
}
