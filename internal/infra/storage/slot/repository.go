package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/pkg/dbmetrics"
	"github.com/nailsbynatalia/booking-service/pkg/psqlbuilder"
	"github.com/nailsbynatalia/booking-service/pkg/types"
)

const sqlstateLockNotAvailable = "55P03"

var slotColumns = []string{
	"id",
	"date",
	"start_time",
	"end_time",
	"status",
	"rule_id",
	"booking_id",
	"created_at",
}

// Repository owns the availability_slots table. Status writes are
// restricted to the claim transaction (available→booked) and the
// booking lifecycle (booked→available); nothing else touches status or
// booking_id once a slot is booked.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a slot repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByIDs loads slots by id ordered by start time. Inside a
// transaction the rows are locked with FOR UPDATE NOWAIT: a claim that
// cannot take its locks immediately fails with ErrSlotLocked instead of
// queueing behind the competing claim.
func (r *Repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("availability_slots").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("date ASC, start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE NOWAIT")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == sqlstateLockNotAvailable {
			return nil, ErrSlotLocked
		}
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// GetByID loads a single slot.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("availability_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&s.Status,
		&s.RuleID,
		&s.BookingID,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	return &s, nil
}

// GetAvailableByDate returns the available slots of a date ordered by
// start time. Read path for the public booking flow; takes no locks.
func (r *Repository) GetAvailableByDate(ctx context.Context, date types.DateString) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("availability_slots").
		Where(squirrel.Eq{"date": date, "status": domain.SlotAvailable}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailableByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailableByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// GetDistinctAvailableDates returns the dates in [from, to] that still
// have at least one available slot, ascending.
func (r *Repository) GetDistinctAvailableDates(ctx context.Context, from, to types.DateString) ([]types.DateString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT date").
		From("availability_slots").
		Where(squirrel.Eq{"status": domain.SlotAvailable}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDistinctAvailableDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDistinctAvailableDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]types.DateString, 0)
	for rows.Next() {
		var d types.DateString
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%w: GetDistinctAvailableDates - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDistinctAvailableDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// InsertIgnoreDuplicates inserts candidate slots, skipping any (date,
// start_time) that already exists. This is what makes generation
// idempotent: re-running never duplicates or disturbs existing rows.
// Returns the number of rows actually created.
func (r *Repository) InsertIgnoreDuplicates(ctx context.Context, slots []*domain.Slot) (int64, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("availability_slots").
		Columns("date", "start_time", "end_time", "status", "rule_id")

	for _, s := range slots {
		insertBuilder = insertBuilder.Values(s.Date, s.StartTime, s.EndTime, s.Status, s.RuleID)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (date, start_time) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: InsertIgnoreDuplicates - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: InsertIgnoreDuplicates - execute insert: %v", ErrExecQuery, err)
	}

	created, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: InsertIgnoreDuplicates - get rows affected: %v", ErrExecQuery, err)
	}

	return created, nil
}

// MarkBooked flips the given slots to booked and points them at the
// owning booking. The status guard makes the write a compare-and-swap:
// if any slot is no longer available, fewer rows are affected and the
// caller must abort its transaction.
func (r *Repository) MarkBooked(ctx context.Context, ids []uuid.UUID, bookingID uuid.UUID) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("status", domain.SlotBooked).
		Set("booking_id", bookingID).
		Where(squirrel.Eq{"id": ids, "status": domain.SlotAvailable}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkBooked - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkBooked - get rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

// Release returns booked slots to availability and clears their
// booking reference. Only the booking lifecycle calls this.
func (r *Repository) Release(ctx context.Context, ids []uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("status", domain.SlotAvailable).
		Set("booking_id", nil).
		Where(squirrel.Eq{"id": ids, "status": domain.SlotBooked}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete removes a slot, but only while it is still available. The
// status guard closes the race against a concurrent claim: a claim that
// already flipped the slot to booked makes the delete affect zero rows.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_slots").
		Where(squirrel.Eq{"id": id, "status": domain.SlotAvailable}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if affected == 0 {
		// Distinguish "gone" from "exists but not available".
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrSlotNotAvailable
	}

	return nil
}

// GetBookedBookingIDs returns the distinct booking ids holding booked
// slots on the given date. Used by the reminder scan.
func (r *Repository) GetBookedBookingIDs(ctx context.Context, date types.DateString) ([]uuid.UUID, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT booking_id").
		From("availability_slots").
		Where(squirrel.Eq{"date": date, "status": domain.SlotBooked}).
		Where(squirrel.NotEq{"booking_id": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedBookingIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedBookingIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: GetBookedBookingIDs - scan booking_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedBookingIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// Insert creates slots unconditionally (admin manual insert). Unlike
// generation this surfaces duplicate (date, start_time) as an error.
func (r *Repository) Insert(ctx context.Context, slots []*domain.Slot) ([]*domain.Slot, error) {
	if len(slots) == 0 {
		return []*domain.Slot{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("availability_slots").
		Columns("date", "start_time", "end_time", "status", "rule_id")

	for _, s := range slots {
		insertBuilder = insertBuilder.Values(s.Date, s.StartTime, s.EndTime, s.Status, s.RuleID)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id, date, start_time, end_time, status, rule_id, booking_id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var s domain.Slot
		var createdAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&s.Status,
			&s.RuleID,
			&s.BookingID,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
