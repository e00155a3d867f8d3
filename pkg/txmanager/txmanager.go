// Package txmanager runs functions inside database transactions and
// propagates the open transaction through the context. The serializable
// variant is the write gate for slot claims: lock conflicts and
// serialization failures come back as ErrConflict so callers can treat
// losing a race as a normal outcome.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/nailsbynatalia/booking-service/pkg/dbmetrics"
)

var (
	// ErrConflict means the transaction lost a race: either it could not
	// take a row lock (SQLSTATE 55P03) or the serializable check failed
	// at commit (SQLSTATE 40001). Safe to retry with fresh input.
	ErrConflict = errors.New("txmanager: transaction conflict")

	// ErrBegin is returned when the transaction cannot be started.
	ErrBegin = errors.New("txmanager: failed to begin transaction")

	// ErrCommit is returned when the commit fails for reasons other
	// than a conflict.
	ErrCommit = errors.New("txmanager: failed to commit transaction")
)

const (
	sqlstateSerializationFailure = "40001"
	sqlstateLockNotAvailable     = "55P03"
)

// IsConflictSQLState reports whether err is a PostgreSQL error that
// should be surfaced as a claim conflict.
func IsConflictSQLState(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == sqlstateSerializationFailure ||
		string(pqErr.Code) == sqlstateLockNotAvailable
}

// TxBeginner starts transactions; satisfied by *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager runs functions in transactions over an
// instrumented database handle.
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager creates a transaction manager.
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable runs fn inside a SERIALIZABLE transaction.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// Do runs fn inside a transaction at the default isolation level.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, nil, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBegin, err)
	}

	txCtx := dbmetrics.WithExecutor(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		if IsConflictSQLState(err) {
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if IsConflictSQLState(err) {
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return fmt.Errorf("%w: %v", ErrCommit, err)
	}

	return nil
}
