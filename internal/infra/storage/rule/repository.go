package rule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/pkg/dbmetrics"
	"github.com/nailsbynatalia/booking-service/pkg/psqlbuilder"
)

var ruleColumns = []string{
	"id",
	"day_of_week",
	"start_time",
	"end_time",
	"slot_duration",
	"is_active",
	"effective_from",
	"effective_until",
	"created_at",
}

// Repository owns the availability_rules table.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a rule repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActive returns the active rule set ordered by day of week and
// start time. The generator reads these; it never writes them.
func (r *Repository) GetActive(ctx context.Context) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("availability_rules").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRules(rows)
}

// DeactivateAll flips every active rule off. Called inside the
// save-pattern transaction right before the new set is inserted, so the
// "at most one active rule set" invariant never breaks mid-save.
func (r *Repository) DeactivateAll(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_rules").
		Set("is_active", false).
		Where(squirrel.Eq{"is_active": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeactivateAll - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeactivateAll - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// InsertBatch creates rules as the new active set.
func (r *Repository) InsertBatch(ctx context.Context, rules []*domain.AvailabilityRule) ([]*domain.AvailabilityRule, error) {
	if len(rules) == 0 {
		return []*domain.AvailabilityRule{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("availability_rules").
		Columns("day_of_week", "start_time", "end_time", "slot_duration", "is_active", "effective_from", "effective_until")

	for _, rl := range rules {
		insertBuilder = insertBuilder.Values(
			rl.DayOfWeek,
			rl.StartTime,
			rl.EndTime,
			rl.SlotDuration,
			true,
			rl.EffectiveFrom,
			rl.EffectiveUntil,
		)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id, day_of_week, start_time, end_time, slot_duration, is_active, effective_from, effective_until, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: InsertBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: InsertBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRules(rows)
}

func (r *Repository) scanRules(rows *sql.Rows) ([]*domain.AvailabilityRule, error) {
	rules := make([]*domain.AvailabilityRule, 0)

	for rows.Next() {
		var rl domain.AvailabilityRule
		var createdAt sql.NullTime

		err := rows.Scan(
			&rl.ID,
			&rl.DayOfWeek,
			&rl.StartTime,
			&rl.EndTime,
			&rl.SlotDuration,
			&rl.IsActive,
			&rl.EffectiveFrom,
			&rl.EffectiveUntil,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRules - scan row: %v", ErrScanRow, err)
		}

		rl.CreatedAt = createdAt.Time
		rules = append(rules, &rl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
