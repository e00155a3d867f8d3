package availability

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/internal/infra/storage/slot"
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
	slots map[uuid.UUID]*domain.Slot

	lastFrom, lastTo types.DateString
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: map[uuid.UUID]*domain.Slot{}}
}

func (r *fakeSlotRepo) GetAvailableByDate(_ context.Context, date types.DateString) ([]*domain.Slot, error) {
	out := make([]*domain.Slot, 0)
	for _, s := range r.slots {
		if s.Date == date && s.Status == domain.SlotAvailable {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) GetDistinctAvailableDates(_ context.Context, from, to types.DateString) ([]types.DateString, error) {
	r.lastFrom, r.lastTo = from, to
	seen := map[types.DateString]struct{}{}
	out := make([]types.DateString, 0)
	for _, s := range r.slots {
		if s.Status != domain.SlotAvailable || s.Date < from || s.Date > to {
			continue
		}
		if _, ok := seen[s.Date]; ok {
			continue
		}
		seen[s.Date] = struct{}{}
		out = append(out, s.Date)
	}
	return out, nil
}

func (r *fakeSlotRepo) Insert(_ context.Context, slots []*domain.Slot) ([]*domain.Slot, error) {
	out := make([]*domain.Slot, 0, len(slots))
	for _, s := range slots {
		created := *s
		created.ID = uuid.New()
		r.slots[created.ID] = &created
		out = append(out, &created)
	}
	return out, nil
}

func (r *fakeSlotRepo) Delete(_ context.Context, id uuid.UUID) error {
	s, ok := r.slots[id]
	if !ok {
		return slot.ErrSlotNotFound
	}
	if s.Status != domain.SlotAvailable {
		return slot.ErrSlotNotAvailable
	}
	delete(r.slots, id)
	return nil
}

type fakeRuleRepo struct {
	active []*domain.AvailabilityRule
}

func (r *fakeRuleRepo) GetActive(context.Context) ([]*domain.AvailabilityRule, error) {
	return r.active, nil
}

func (r *fakeRuleRepo) DeactivateAll(context.Context) error {
	r.active = nil
	return nil
}

func (r *fakeRuleRepo) InsertBatch(_ context.Context, rules []*domain.AvailabilityRule) ([]*domain.AvailabilityRule, error) {
	for _, rl := range rules {
		rl.ID = uuid.New()
		rl.IsActive = true
		r.active = append(r.active, rl)
	}
	return rules, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var testNow = time.Date(2026, time.September, 14, 9, 0, 0, 0, time.UTC)

func newTestService(slots *fakeSlotRepo, rules *fakeRuleRepo) *Service {
	return New(slots, rules, passthroughTxManager{}, fixedTime{now: testNow}, time.UTC, nopLogger{})
}

func addSlot(repo *fakeSlotRepo, date string, start string, status domain.SlotStatus) uuid.UUID {
	id := uuid.New()
	repo.slots[id] = &domain.Slot{
		ID:        id,
		Date:      types.DateString(date),
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString("23:59"),
		Status:    status,
	}
	return id
}

func TestAvailableDates_RangeAndClamping(t *testing.T) {
	slots := newFakeSlotRepo()
	addSlot(slots, "2026-09-15", "10:00", domain.SlotAvailable)
	addSlot(slots, "2026-09-15", "10:30", domain.SlotAvailable)
	addSlot(slots, "2026-09-16", "10:00", domain.SlotBooked)
	svc := newTestService(slots, &fakeRuleRepo{})

	dates, err := svc.AvailableDates(context.Background(), "", 0)
	require.NoError(t, err)

	// Default horizon is 4 weeks from today.
	assert.Equal(t, types.DateString("2026-09-14"), slots.lastFrom)
	assert.Equal(t, types.DateString("2026-10-11"), slots.lastTo)

	// Only the date with an available slot shows up, once.
	require.Len(t, dates, 1)
	assert.Equal(t, types.DateString("2026-09-15"), dates[0])

	_, err = svc.AvailableDates(context.Background(), "", 100)
	require.NoError(t, err)
	assert.Equal(t, types.DateString("2026-12-06"), slots.lastTo) // clamped to 12 weeks

	_, err = svc.AvailableDates(context.Background(), "", -5)
	require.NoError(t, err)
	assert.Equal(t, types.DateString("2026-09-20"), slots.lastTo) // clamped to 1 week
}

func TestAvailableDates_ExplicitFrom(t *testing.T) {
	slots := newFakeSlotRepo()
	svc := newTestService(slots, &fakeRuleRepo{})

	_, err := svc.AvailableDates(context.Background(), "2026-10-01", 1)
	require.NoError(t, err)
	assert.Equal(t, types.DateString("2026-10-01"), slots.lastFrom)
	assert.Equal(t, types.DateString("2026-10-07"), slots.lastTo)

	_, err = svc.AvailableDates(context.Background(), "not-a-date", 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAvailableSlots(t *testing.T) {
	slots := newFakeSlotRepo()
	open := addSlot(slots, "2026-09-15", "10:00", domain.SlotAvailable)
	addSlot(slots, "2026-09-15", "10:30", domain.SlotBooked)
	svc := newTestService(slots, &fakeRuleRepo{})

	got, err := svc.AvailableSlots(context.Background(), "2026-09-15")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, open, got[0].ID)

	_, err = svc.AvailableSlots(context.Background(), "15-09-2026")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateSlots(t *testing.T) {
	slots := newFakeSlotRepo()
	svc := newTestService(slots, &fakeRuleRepo{})

	created, err := svc.CreateSlots(context.Background(), []SlotInput{
		{Date: "2026-09-19", StartTime: "10:00", EndTime: "10:30"},
		{Date: "2026-09-19", StartTime: "10:30", EndTime: "11:00"},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	for _, s := range created {
		assert.Equal(t, domain.SlotAvailable, s.Status)
		assert.NotEqual(t, uuid.Nil, s.ID)
	}

	_, err = svc.CreateSlots(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateSlots(context.Background(), []SlotInput{
		{Date: "2026-09-19", StartTime: "11:00", EndTime: "10:00"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteSlot(t *testing.T) {
	slots := newFakeSlotRepo()
	open := addSlot(slots, "2026-09-15", "10:00", domain.SlotAvailable)
	booked := addSlot(slots, "2026-09-15", "10:30", domain.SlotBooked)
	svc := newTestService(slots, &fakeRuleRepo{})

	require.NoError(t, svc.DeleteSlot(context.Background(), open))

	err := svc.DeleteSlot(context.Background(), booked)
	assert.ErrorIs(t, err, ErrSlotBooked)

	err = svc.DeleteSlot(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestSaveWeeklyRules_ReplacesActiveSet(t *testing.T) {
	rules := &fakeRuleRepo{active: []*domain.AvailabilityRule{
		{ID: uuid.New(), DayOfWeek: 5, StartTime: "09:00", EndTime: "17:00", SlotDuration: 30, IsActive: true},
	}}
	svc := newTestService(newFakeSlotRepo(), rules)

	saved, err := svc.SaveWeeklyRules(context.Background(), []RuleInput{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", SlotDuration: 30},
		{DayOfWeek: 3, StartTime: "13:00", EndTime: "17:00", SlotDuration: 60},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)

	active, err := svc.GetRules(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, 1, active[0].DayOfWeek)
	assert.Equal(t, 3, active[1].DayOfWeek)
}

func TestSaveWeeklyRules_Validation(t *testing.T) {
	svc := newTestService(newFakeSlotRepo(), &fakeRuleRepo{})

	tests := []struct {
		name  string
		input RuleInput
	}{
		{"bad day", RuleInput{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00", SlotDuration: 30}},
		{"negative day", RuleInput{DayOfWeek: -1, StartTime: "09:00", EndTime: "17:00", SlotDuration: 30}},
		{"bad start", RuleInput{DayOfWeek: 1, StartTime: "9am", EndTime: "17:00", SlotDuration: 30}},
		{"inverted window", RuleInput{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00", SlotDuration: 30}},
		{"duration too short", RuleInput{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", SlotDuration: 1}},
		{"duration too long", RuleInput{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", SlotDuration: 9999}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SaveWeeklyRules(context.Background(), []RuleInput{tt.input})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
