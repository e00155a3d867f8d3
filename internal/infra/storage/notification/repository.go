package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	"github.com/nailsbynatalia/booking-service/pkg/dbmetrics"
	"github.com/nailsbynatalia/booking-service/pkg/psqlbuilder"
)

var notificationColumns = []string{
	"id",
	"booking_id",
	"type",
	"channel",
	"recipient",
	"sent_at",
	"error",
	"created_at",
}

// Repository owns the booking_notifications log. UNIQUE(booking_id,
// type) plus ON CONFLICT DO NOTHING makes record creation idempotent
// across repeated reminder scans.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a notification repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateIgnoreDuplicates inserts notification records, skipping any
// (booking_id, type) pair already logged. Returns the number created.
func (r *Repository) CreateIgnoreDuplicates(ctx context.Context, records []*domain.Notification) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("booking_notifications").
		Columns("booking_id", "type", "channel", "recipient")

	for _, n := range records {
		insertBuilder = insertBuilder.Values(n.BookingID, n.Type, n.Channel, n.Recipient)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (booking_id, type) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateIgnoreDuplicates - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CreateIgnoreDuplicates - execute insert: %v", ErrExecQuery, err)
	}

	created, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateIgnoreDuplicates - get rows affected: %v", ErrExecQuery, err)
	}

	return created, nil
}

// GetUnsentByBookingIDs returns records for the given bookings that
// have not been delivered yet. The scan re-attempts these.
func (r *Repository) GetUnsentByBookingIDs(ctx context.Context, bookingIDs []uuid.UUID, notificationType string) ([]*domain.Notification, error) {
	if len(bookingIDs) == 0 {
		return []*domain.Notification{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(notificationColumns...).
		From("booking_notifications").
		Where(squirrel.Eq{"booking_id": bookingIDs, "type": notificationType, "sent_at": nil}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetUnsentByBookingIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUnsentByBookingIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanNotifications(rows)
}

// MarkSent stamps a record as delivered.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_notifications").
		Set("sent_at", squirrel.Expr("NOW()")).
		Set("error", nil).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkSent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkSent - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkSent - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkFailed records a delivery failure; the row stays unsent so a
// later scan retries it.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, deliveryErr string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_notifications").
		Set("error", deliveryErr).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkFailed - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkFailed - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) scanNotifications(rows *sql.Rows) ([]*domain.Notification, error) {
	records := make([]*domain.Notification, 0)

	for rows.Next() {
		var n domain.Notification
		var createdAt sql.NullTime

		err := rows.Scan(
			&n.ID,
			&n.BookingID,
			&n.Type,
			&n.Channel,
			&n.Recipient,
			&n.SentAt,
			&n.Error,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanNotifications - scan row: %v", ErrScanRow, err)
		}

		n.CreatedAt = createdAt.Time
		records = append(records, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanNotifications - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
