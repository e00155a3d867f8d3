package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/pkg/dbmetrics"
	"github.com/nailsbynatalia/booking-service/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"slot_ids",
	"service_id",
	"category",
	"status",
	"customer_name",
	"customer_phone",
	"customer_email",
	"customer_notes",
	"num_children",
	"children_ages",
	"address",
	"admin_notes",
	"decline_reason",
	"confirmed_at",
	"declined_at",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository owns the bookings table. The slot_ids column is the
// authoritative booking→slots link; slots carry a back-reference only.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a booking. Runs inside the claim transaction when one
// is carried by the context.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"slot_ids",
			"service_id",
			"category",
			"status",
			"customer_name",
			"customer_phone",
			"customer_email",
			"customer_notes",
			"num_children",
			"children_ages",
			"address",
		).
		Values(
			uuidArray(b.SlotIDs),
			b.ServiceID,
			b.Category,
			b.Status,
			b.CustomerName,
			b.CustomerPhone,
			b.CustomerEmail,
			b.CustomerNotes,
			b.NumChildren,
			b.ChildrenAges,
			b.Address,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID loads a booking.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByIDsWithStatus loads the bookings among ids that currently have
// the given status. Used by the reminder scan to keep only confirmed
// bookings.
func (r *Repository) GetByIDsWithStatus(ctx context.Context, ids []uuid.UUID, status domain.BookingStatus) ([]*domain.Booking, error) {
	if len(ids) == 0 {
		return []*domain.Booking{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": ids, "status": status}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDsWithStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDsWithStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListWithFilter returns a page of bookings plus the unpaged total,
// newest first. Backs the admin dashboard listing.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	where := squirrel.Eq{}
	if filter.Status != nil {
		where["status"] = *filter.Status
	}
	if filter.Category != nil {
		where["category"] = *filter.Category
	}

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - scan count: %v", ErrScanRow, err)
	}

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// UpdateStatus moves a booking to a new status and stamps the matching
// transition timestamp. Transition validity is the caller's job; this
// is a plain row write that participates in the caller's transaction.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus, declineReason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	switch status {
	case domain.StatusConfirmed:
		updateBuilder = updateBuilder.Set("confirmed_at", squirrel.Expr("NOW()"))
	case domain.StatusDeclined:
		updateBuilder = updateBuilder.Set("declined_at", squirrel.Expr("NOW()"))
		if declineReason != nil {
			updateBuilder = updateBuilder.Set("decline_reason", *declineReason)
		}
	case domain.StatusCancelled:
		updateBuilder = updateBuilder.Set("cancelled_at", squirrel.Expr("NOW()"))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateAdminNotes replaces the admin annotation on a booking.
func (r *Repository) UpdateAdminNotes(ctx context.Context, id uuid.UUID, notes string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("admin_notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateAdminNotes - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateAdminNotes - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateAdminNotes - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var slotIDs pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&slotIDs,
		&b.ServiceID,
		&b.Category,
		&b.Status,
		&b.CustomerName,
		&b.CustomerPhone,
		&b.CustomerEmail,
		&b.CustomerNotes,
		&b.NumChildren,
		&b.ChildrenAges,
		&b.Address,
		&b.AdminNotes,
		&b.DeclineReason,
		&b.ConfirmedAt,
		&b.DeclinedAt,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.SlotIDs, err = parseUUIDs(slotIDs)
	if err != nil {
		return nil, err
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// uuidArray adapts a uuid slice to lib/pq's array binding for the
// uuid[] column.
func uuidArray(ids []uuid.UUID) pq.StringArray {
	out := make(pq.StringArray, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func parseUUIDs(raw pq.StringArray) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid uuid %q in slot_ids: %v", s, err)
		}
		out[i] = id
	}
	return out, nil
}
